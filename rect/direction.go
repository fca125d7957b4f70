package rect

import "image"

// A Direction is one of the eight 45° directions on a grid with (0, 0) in
// the top left, so Down means increasing y.
type Direction uint8

// Directions in 45° clockwise order.
const (
	Right Direction = iota
	DownRight
	Down
	DownLeft
	Left
	UpLeft
	Up
	UpRight

	directionCount = 8
)

// Common turn amounts for Direction.Turn.
const (
	NoTurn      = 0
	RightTurn90 = +2
	LeftTurn90  = -2
	AboutTurn   = +4
)

var directionDeltas = [directionCount]image.Point{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var directionNames = [directionCount]string{
	"Right", "DownRight", "Down", "DownLeft",
	"Left", "UpLeft", "Up", "UpRight",
}

// Delta returns the unit translation of d.
func (d Direction) Delta() image.Point { return directionDeltas[d] }

// Turn rotates d clockwise in 45° increments; negatives turn the other
// way.
func (d Direction) Turn(clockwise int) Direction {
	n := (int(d) + clockwise) % directionCount
	if n < 0 {
		n += directionCount
	}
	return Direction(n)
}

// Move translates p one unit in d.
func (d Direction) Move(p image.Point) image.Point {
	return p.Add(directionDeltas[d])
}

// MoveN translates p by n units in d.
func (d Direction) MoveN(p image.Point, n int) image.Point {
	return p.Add(directionDeltas[d].Mul(n))
}

// String returns the direction's name.
func (d Direction) String() string {
	if int(d) < directionCount {
		return directionNames[d]
	}
	return "Invalid"
}
