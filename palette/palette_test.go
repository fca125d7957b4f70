package palette

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
)

func TestFromImage_Indexing(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(0, 0, red)
	img.SetNRGBA(1, 0, green)
	// (2, 0) stays transparent.
	img.SetNRGBA(0, 1, green)
	img.SetNRGBA(1, 1, red)
	img.SetNRGBA(2, 1, blue)

	g, err := FromImage(img)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, 4, g.MaxColors())

	// Indices are assigned in scan order, 0 reserved for transparent.
	assert.Equal(t, 1, g.Color(0, 0))
	assert.Equal(t, 2, g.Color(1, 0))
	assert.Equal(t, 0, g.Color(2, 0))
	assert.Equal(t, 2, g.Color(0, 1))
	assert.Equal(t, 1, g.Color(1, 1))
	assert.Equal(t, 3, g.Color(2, 1))

	assert.Equal(t, red, g.RGBA(1))
	assert.Equal(t, green, g.RGBA(2))
	assert.Equal(t, blue, g.RGBA(3))
	assert.Equal(t, color.NRGBA{}, g.RGBA(0))

	// Out-of-range reads follow the grid contract.
	assert.Equal(t, 0, g.Color(-1, 0))
	assert.Equal(t, 0, g.Color(3, 0))
}

func TestFromImage_PartialAlpha(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 128})
	_, err := FromImage(img)
	assert.ErrorIs(t, err, ErrUnsupportedAlpha)
}

func TestFromImage_TooManyColors(t *testing.T) {
	wide := image.NewNRGBA(image.Rect(0, 0, MaxColors, 1))
	for x := 0; x < MaxColors; x++ {
		wide.SetNRGBA(x, 0, color.NRGBA{R: uint8(x + 1), A: 255})
	}
	_, err := FromImage(wide)
	assert.ErrorIs(t, err, ErrTooManyColors)

	// One fewer distinct colour fits.
	ok := image.NewNRGBA(image.Rect(0, 0, MaxColors-1, 1))
	for x := 0; x < MaxColors-1; x++ {
		ok.SetNRGBA(x, 0, color.NRGBA{R: uint8(x + 1), A: 255})
	}
	g, err := FromImage(ok)
	require.NoError(t, err)
	assert.Equal(t, MaxColors, g.MaxColors())
}

func TestFromImage_OffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(5, 7, 7, 8))
	img.SetNRGBA(5, 7, red)
	img.SetNRGBA(6, 7, red)

	g, err := FromImage(img)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, 1, g.Height())
	assert.Equal(t, 1, g.Color(0, 0))
	assert.Equal(t, 1, g.Color(1, 0))
}

func TestDecode_PNG(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, red)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	g, err := Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Color(0, 0))
	assert.Equal(t, 0, g.Color(1, 0))
	assert.Equal(t, red, g.RGBA(1))
}

func TestDecode_Garbage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not an image")))
	assert.Error(t, err)
}
