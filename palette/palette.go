// Package palette turns decoded images into indexed colour grids for
// tracing. Images must use 1-bit alpha: every pixel is either fully
// transparent or fully opaque. Distinct opaque colours are assigned
// indices from 1 upwards in scan order; index 0 is transparent.
//
// Importing this package registers decoders for PNG, GIF, JPEG, BMP, TIFF
// and WebP.
package palette

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/pxtrace/edges/rect"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// MaxColors bounds the palette size, including the transparent index 0.
// The tracing engine's layer optimisation is quadratic-ish in colour
// count; large palettes belong to a different tool.
const MaxColors = 19

var (
	// ErrUnsupportedAlpha reports a pixel that is neither fully
	// transparent nor fully opaque.
	ErrUnsupportedAlpha = errors.New("palette: alpha must be 0 or 255")

	// ErrTooManyColors reports an image with too many distinct opaque
	// colours.
	ErrTooManyColors = fmt.Errorf("palette: more than %d colours", MaxColors-1)
)

// A Grid is an indexed view of a decoded image. It implements rect.Grid;
// cell colours are palette indices, with 0 transparent.
type Grid struct {
	*rect.ByteGrid
	colors []color.NRGBA
}

// MaxColors returns the number of palette entries, including the
// transparent entry 0.
func (g *Grid) MaxColors() int { return len(g.colors) }

// RGBA returns the colour of a palette index. Index 0 is fully
// transparent.
func (g *Grid) RGBA(index int) color.NRGBA { return g.colors[index] }

// Decode reads an image from r and indexes its colours.
func Decode(r io.Reader) (*Grid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("palette: decoding image: %w", err)
	}
	return FromImage(img)
}

// Load reads an image file and indexes its colours.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// FromImage indexes the colours of a decoded image. It returns
// ErrUnsupportedAlpha if any pixel is partially transparent, and
// ErrTooManyColors if more than MaxColors-1 distinct opaque colours
// appear.
func FromImage(img image.Image) (*Grid, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	index := make(map[color.NRGBA]uint8)
	colors := []color.NRGBA{{}}
	data := make([]byte, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			if c.A == 0 {
				continue
			}
			if c.A != 255 {
				return nil, ErrUnsupportedAlpha
			}
			code, ok := index[c]
			if !ok {
				if len(colors) >= MaxColors {
					return nil, ErrTooManyColors
				}
				code = uint8(len(colors))
				index[c] = code
				colors = append(colors, c)
			}
			data[x+y*width] = code
		}
	}

	cells, err := rect.NewByteGrid(width, height, data)
	if err != nil {
		return nil, err
	}
	return &Grid{ByteGrid: cells, colors: colors}, nil
}
