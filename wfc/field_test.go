package wfc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileSetBasics(t *testing.T) {
	s := newTileSet(70)
	assert.Equal(t, 0, s.count())
	s.add(0)
	s.add(69)
	assert.Equal(t, 2, s.count())
	assert.True(t, s.has(0))
	assert.True(t, s.has(69))
	assert.False(t, s.has(1))

	var ids []int
	for id := range s.all() {
		ids = append(ids, id)
	}
	assert.Equal(t, []int{0, 69}, ids)

	full := fullTileSet(70)
	assert.Equal(t, 70, full.count())
	changed := full.intersect(s)
	assert.True(t, changed)
	assert.Equal(t, 2, full.count())
	assert.False(t, full.intersect(s), "second intersect is a no-op")
}

func TestFieldInitAndNeighbors(t *testing.T) {
	f, err := newField(3, 2, 5)
	require.NoError(t, err)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			assert.Equal(t, 5, f.CandidateCount(x, y))
		}
	}
	assert.False(t, f.Done())

	// Toroidal neighbors of the top-left cell.
	assert.Equal(t, 3, f.neighbor(0, DirUp), "wraps to the bottom row")
	assert.Equal(t, 1, f.neighbor(0, DirRight))
	assert.Equal(t, 3, f.neighbor(0, DirDown))
	assert.Equal(t, 2, f.neighbor(0, DirLeft), "wraps to the right edge")
}

func TestFieldInvalidSize(t *testing.T) {
	_, err := newField(0, 3, 2)
	assert.ErrorIs(t, err, ErrInvalidField)
	_, err = newField(3, -1, 2)
	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestCollapsePrecondition(t *testing.T) {
	f, err := newField(2, 2, 3)
	require.NoError(t, err)
	require.NoError(t, f.collapse(0, 2))
	assert.Equal(t, []int{2}, f.Candidates(0, 0))
	assert.ErrorIs(t, f.collapse(0, 1), ErrTileNotPossible)
}

func TestQueueDiscardsStaleEntries(t *testing.T) {
	f, err := newField(2, 1, 3)
	require.NoError(t, err)
	f.push(0, 1.5)
	f.push(1, 2.0)
	f.push(0, 0.5) // newer, lower entry for cell 0

	require.NoError(t, f.collapse(0, 1))
	// Both entries for the collapsed cell are stale now.
	assert.Equal(t, 1, f.pop())
	assert.Equal(t, -1, f.pop())
}

func TestEntropyOrdering(t *testing.T) {
	p := &Params{Library: &Library{
		Tiles:     []Tile{{red}, {blue}, {0}},
		Frequency: []uint32{1, 1, 98},
		TileSize:  1,
	}}

	all := fullTileSet(3)
	two := newTileSet(3)
	two.add(0)
	two.add(1)

	// Probability concentrated on the frequent third tile pushes the
	// full set's entropy below the even two-tile split.
	assert.Less(t, p.entropy(all), p.entropy(two))
	assert.InDelta(t, 1.0, p.entropy(two), 1e-9)

	one := newTileSet(3)
	one.add(2)
	assert.Zero(t, p.entropy(one))
}
