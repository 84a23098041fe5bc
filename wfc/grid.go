// Package wfc synthesizes tile-based images with the wave function
// collapse algorithm. A small sample image is scanned for NxN tiles,
// adjacency rules are derived from tile overlap, and a new grid is
// generated by entropy-ordered collapse with constraint propagation.
package wfc

import (
	"image"
	"image/color"
)

// PixelGrid is a width x height grid of packed 32-bit colors
// (r | g<<8 | b<<16 | a<<24) with toroidal coordinate access.
type PixelGrid struct {
	Width  int
	Height int
	pixels []uint32
}

// NewPixelGrid creates an all-zero grid of the given dimensions.
func NewPixelGrid(width, height int) (*PixelGrid, error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}
	return &PixelGrid{
		Width:  width,
		Height: height,
		pixels: make([]uint32, width*height),
	}, nil
}

// FromPixels wraps an existing flat row-major pixel slice.
func FromPixels(pixels []uint32, width, height int) (*PixelGrid, error) {
	if width < 1 || height < 1 || len(pixels) != width*height {
		return nil, ErrEmptyGrid
	}
	g := &PixelGrid{Width: width, Height: height, pixels: make([]uint32, len(pixels))}
	copy(g.pixels, pixels)
	return g, nil
}

// FromImage converts a decoded image into a PixelGrid.
func FromImage(img image.Image) (*PixelGrid, error) {
	bounds := img.Bounds()
	g, err := NewPixelGrid(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			g.pixels[y*g.Width+x] = PackColor(c.R, c.G, c.B, c.A)
		}
	}
	return g, nil
}

// At returns the pixel at (x, y), or 0 when out of bounds.
func (g *PixelGrid) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return 0
	}
	return g.pixels[y*g.Width+x]
}

// AtWrap returns the pixel at (x, y) with both coordinates wrapped
// toroidally, so any integer coordinate is valid.
func (g *PixelGrid) AtWrap(x, y int) uint32 {
	return g.pixels[wrap(y, g.Height)*g.Width+wrap(x, g.Width)]
}

func (g *PixelGrid) Set(x, y int, c uint32) {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return
	}
	g.pixels[y*g.Width+x] = c
}

func (g *PixelGrid) Pixels() []uint32 {
	return g.pixels
}

// wrap maps v into [0, max) treating the axis as a ring.
func wrap(v, max int) int {
	v %= max
	if v < 0 {
		v += max
	}
	return v
}

// PackColor packs RGBA channels into the grid's pixel format.
func PackColor(r, g, b, a uint8) uint32 {
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24
}

func unpackColor(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// ToImage converts a flat packed pixel slice into an NRGBA image.
func ToImage(pixels []uint32, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i, c := range pixels {
		r, g, b, a := unpackColor(c)
		img.Pix[i*4] = r
		img.Pix[i*4+1] = g
		img.Pix[i*4+2] = b
		img.Pix[i*4+3] = a
	}
	return img
}
