// Package svg renders traced outlines as a minimal SVG document: one
// evenodd-filled path element per colour, in render order.
package svg

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
	"strings"
)

const (
	publicID = "-//W3C//DTD SVG 20000303 Stylable//EN"
	systemID = "http://www.w3.org/TR/2000/03/WD-SVG-20000303/DTD/" +
		"svg-20000303-stylable.dtd"
)

// A PathScribe accumulates one colour's outlines as SVG path data. It is
// a scribe over integer lattice points.
//
// The tracer's Move is not recorded: every path it emits ends with a draw
// back to the moved-to point, so opening the subpath at the first draw
// target instead loses nothing, and the closing z restores the one
// segment that shifts.
type PathScribe struct {
	fill color.NRGBA
	d    strings.Builder
	down bool
}

// NewPathScribe creates a path scribe filled with the given colour.
func NewPathScribe(fill color.NRGBA) *PathScribe {
	return &PathScribe{fill: fill}
}

// Move is ignored; see the type comment.
func (s *PathScribe) Move(image.Point) {}

// Draw appends a line to the open subpath, opening one if necessary.
func (s *PathScribe) Draw(to image.Point) {
	if s.down {
		s.d.WriteByte('L')
	} else {
		s.down = true
		s.d.WriteByte('M')
	}
	s.d.WriteString(strconv.Itoa(to.X))
	s.d.WriteByte(' ')
	s.d.WriteString(strconv.Itoa(to.Y))
}

// Close closes the open subpath.
func (s *PathScribe) Close() {
	s.down = false
	s.d.WriteByte('z')
}

// Data returns the accumulated path data.
func (s *PathScribe) Data() string { return s.d.String() }

// A Document is an SVG document of filled paths over an integer-sized
// canvas.
type Document struct {
	width, height int
	paths         []*PathScribe
}

// NewDocument creates a document with the given viewBox dimensions.
func NewDocument(width, height int) *Document {
	return &Document{width: width, height: height}
}

// NewPath creates a path filled with the given colour and appends it to
// the document. Paths render in creation order, so a slicer's scribe
// factory can call NewPath directly: selection order is render order.
func (d *Document) NewPath(fill color.NRGBA) *PathScribe {
	p := NewPathScribe(fill)
	d.paths = append(d.paths, p)
	return p
}

// Encode writes the document to w.
func (d *Document) Encode(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"+
		"<!DOCTYPE svg PUBLIC %q %q>\n"+
		"<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"0 0 %d %d\">\n"+
		"  <g style=\"stroke: none; fill-rule: evenodd\">\n",
		publicID, systemID, d.width, d.height); err != nil {
		return err
	}
	for _, p := range d.paths {
		if _, err := fmt.Fprintf(w,
			"    <path style=\"fill: #%02x%02x%02x\" d=\"%s\"/>\n",
			p.fill.R, p.fill.G, p.fill.B, p.Data()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "  </g>\n</svg>\n")
	return err
}
