package wfc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompositeUndeterminedAveragesCandidates(t *testing.T) {
	p := &Params{Library: &Library{
		Tiles:     []Tile{{PackColor(200, 0, 0, 255)}, {PackColor(0, 100, 0, 255)}},
		Frequency: []uint32{1, 1},
		TileSize:  1,
	}}
	f, err := newField(1, 1, 2)
	require.NoError(t, err)

	pixels := p.Composite(f)
	require.Len(t, pixels, 1)
	assert.Equal(t, PackColor(100, 50, 0, 255), pixels[0])
}

func TestCompositeCollapsedShowsRepresentative(t *testing.T) {
	p := &Params{Library: &Library{
		Tiles:     []Tile{{red}, {blue}},
		Frequency: []uint32{1, 1},
		TileSize:  1,
	}}
	f, err := newField(2, 1, 2)
	require.NoError(t, err)
	require.NoError(t, f.collapse(0, 0))
	require.NoError(t, f.collapse(1, 1))

	assert.Equal(t, []uint32{red, blue}, p.Composite(f))
}

func TestCompositeContradictedCellIsTransparent(t *testing.T) {
	p := &Params{Library: &Library{
		Tiles:     []Tile{{red}},
		Frequency: []uint32{1},
		TileSize:  1,
	}}
	f, err := newField(1, 1, 1)
	require.NoError(t, err)
	f.cells[0].clear()

	assert.Equal(t, []uint32{0}, p.Composite(f))
}
