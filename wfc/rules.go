package wfc

// Direction is one of the 4 axis-aligned neighbor offsets.
type Direction int8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

var dirOffsets = [4][2]int{
	{0, -1},
	{1, 0},
	{0, 1},
	{-1, 0},
}

// Offset returns the direction's unit (dx, dy).
func (d Direction) Offset() (int, int) {
	return dirOffsets[d][0], dirOffsets[d][1]
}

func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

func (d Direction) String() string {
	return [4]string{"up", "right", "down", "left"}[d]
}

// RuleTable records, for every tile and direction, the set of tiles
// that may appear in the adjacent cell. Stored dense: tile counts are
// small, and propagation wants O(1) set lookups.
type RuleTable struct {
	tileCount int
	allowed   [4][]tileSet
}

// Allowed reports whether b may sit in direction d of a.
func (r *RuleTable) Allowed(a int, d Direction, b int) bool {
	return r.allowed[d][a].has(b)
}

// AllowedSet returns the set of legal neighbors of a in direction d.
// The returned set is shared; callers must not mutate it.
func (r *RuleTable) AllowedSet(a int, d Direction) tileSet {
	return r.allowed[d][a]
}

func (r *RuleTable) TileCount() int {
	return r.tileCount
}

// overlapAgrees reports whether tiles a and b agree on every pixel of
// the region where a's sample window and b's sample window, shifted by
// (dx, dy), cover the same logical position. Positions outside the
// overlap are ignored, so a unit shift of a size-1 tile is vacuously
// compatible.
func overlapAgrees(a, b Tile, size, dx, dy int) bool {
	x0, x1 := max(0, dx), min(size, size+dx)
	y0, y1 := max(0, dy), min(size, size+dy)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if a[y*size+x] != b[(y-dy)*size+(x-dx)] {
				return false
			}
		}
	}
	return true
}

// buildRules derives the adjacency relation by running the overlap
// test for every ordered tile pair in all 4 directions. Symmetry
// (allowed(a, d, b) == allowed(b, opposite(d), a)) falls out of the
// same test run both ways. O(tileCount^2 * size^2), run once.
func buildRules(lib *Library) *RuleTable {
	n := len(lib.Tiles)
	r := &RuleTable{tileCount: n}
	for d := range r.allowed {
		r.allowed[d] = make([]tileSet, n)
		for a := 0; a < n; a++ {
			r.allowed[d][a] = newTileSet(n)
		}
	}
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			for d := DirUp; d <= DirLeft; d++ {
				dx, dy := d.Offset()
				if overlapAgrees(lib.Tiles[a], lib.Tiles[b], lib.TileSize, dx, dy) {
					r.allowed[d][a].add(b)
				}
			}
		}
	}
	return r
}
