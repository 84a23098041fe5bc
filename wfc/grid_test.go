package wfc

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	assert.Equal(t, 0, wrap(0, 4))
	assert.Equal(t, 3, wrap(3, 4))
	assert.Equal(t, 0, wrap(4, 4))
	assert.Equal(t, 1, wrap(5, 4))
	assert.Equal(t, 3, wrap(-1, 4))
	assert.Equal(t, 0, wrap(-4, 4))
	assert.Equal(t, 3, wrap(-5, 4))
	assert.Equal(t, 0, wrap(8, 4))
}

func TestPixelGridAtWrap(t *testing.T) {
	g, err := NewPixelGrid(3, 2)
	require.NoError(t, err)
	g.Set(0, 0, 1)
	g.Set(2, 0, 2)
	g.Set(0, 1, 3)

	assert.Equal(t, uint32(1), g.AtWrap(0, 0))
	assert.Equal(t, uint32(2), g.AtWrap(-1, 0), "x wraps to the right edge")
	assert.Equal(t, uint32(3), g.AtWrap(0, -1), "y wraps to the bottom edge")
	assert.Equal(t, uint32(1), g.AtWrap(3, 2), "coordinates wrap past the far edge")
	assert.Equal(t, uint32(1), g.AtWrap(-3, -2))
}

func TestPixelGridAtOutOfBounds(t *testing.T) {
	g, err := NewPixelGrid(2, 2)
	require.NoError(t, err)
	g.Set(1, 1, 9)
	assert.Equal(t, uint32(9), g.At(1, 1))
	assert.Equal(t, uint32(0), g.At(2, 1))
	assert.Equal(t, uint32(0), g.At(-1, 0))
}

func TestNewPixelGridInvalid(t *testing.T) {
	_, err := NewPixelGrid(0, 4)
	assert.ErrorIs(t, err, ErrEmptyGrid)
	_, err = NewPixelGrid(4, 0)
	assert.ErrorIs(t, err, ErrEmptyGrid)
	_, err = FromPixels([]uint32{1, 2, 3}, 2, 2)
	assert.ErrorIs(t, err, ErrEmptyGrid)
}

func TestFromImagePacking(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 4})
	img.SetNRGBA(1, 0, color.NRGBA{R: 255, G: 0, B: 0, A: 255})

	g, err := FromImage(img)
	require.NoError(t, err)
	assert.Equal(t, PackColor(1, 2, 3, 4), g.At(0, 0))
	assert.Equal(t, PackColor(255, 0, 0, 255), g.At(1, 0))

	r, gr, b, a := unpackColor(g.At(0, 0))
	assert.Equal(t, [4]uint8{1, 2, 3, 4}, [4]uint8{r, gr, b, a})
}

func TestToImageRoundTrip(t *testing.T) {
	pixels := []uint32{
		PackColor(10, 20, 30, 255),
		PackColor(0, 0, 0, 0),
	}
	img := ToImage(pixels, 2, 1)
	assert.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, img.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(1, 0))
}
