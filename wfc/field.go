package wfc

import "container/heap"

// Field is the live generation state: one candidate tile set per
// output cell, row-major, toroidal neighbor addressing. Sets only
// shrink; a cell with one candidate is collapsed, an empty cell is a
// contradiction.
type Field struct {
	Width  int
	Height int

	tileCount    int
	cells        []tileSet
	queue        entropyQueue
	remaining    int // cells with more than one candidate
	contradicted bool
}

// entropyQueue is a min-heap of (entropy, cell) pairs with lazy
// deletion: shrinking a cell pushes a fresh entry without removing the
// old one, and stale entries are discarded at pop time.
type entropyEntry struct {
	entropy float64
	cell    int
}

type entropyQueue []entropyEntry

func (q entropyQueue) Len() int            { return len(q) }
func (q entropyQueue) Less(i, j int) bool  { return q[i].entropy < q[j].entropy }
func (q entropyQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *entropyQueue) Push(x interface{}) { *q = append(*q, x.(entropyEntry)) }
func (q *entropyQueue) Pop() interface{} {
	old := *q
	n := len(old)
	e := old[n-1]
	*q = old[:n-1]
	return e
}

func newField(width, height, tileCount int) (*Field, error) {
	if width < 1 || height < 1 {
		return nil, ErrInvalidField
	}
	f := &Field{Width: width, Height: height, tileCount: tileCount}
	f.reset()
	return f, nil
}

// reset returns every cell to the full candidate set. The entropy
// queue is cleared; the caller re-seeds it.
func (f *Field) reset() {
	f.cells = make([]tileSet, f.Width*f.Height)
	for i := range f.cells {
		f.cells[i] = fullTileSet(f.tileCount)
	}
	f.remaining = 0
	if f.tileCount > 1 {
		f.remaining = f.Width * f.Height
	}
	f.queue = f.queue[:0]
	f.contradicted = false
}

// Done reports whether no undetermined cells remain.
func (f *Field) Done() bool {
	return f.remaining == 0 && !f.contradicted
}

// Contradicted reports whether a propagation emptied a cell. A
// contradicted field must be reset before further use.
func (f *Field) Contradicted() bool {
	return f.contradicted
}

// Candidates returns the ids still possible for the cell at (x, y).
func (f *Field) Candidates(x, y int) []int {
	var ids []int
	for t := range f.cells[y*f.Width+x].all() {
		ids = append(ids, t)
	}
	return ids
}

// CandidateCount returns the size of the cell's candidate set.
func (f *Field) CandidateCount(x, y int) int {
	return f.cells[y*f.Width+x].count()
}

// collapse replaces the cell's set with the single chosen tile. The
// tile must be a member of the current set.
func (f *Field) collapse(cell, tile int) error {
	s := f.cells[cell]
	if !s.has(tile) {
		return ErrTileNotPossible
	}
	if s.count() > 1 {
		f.remaining--
	}
	s.clear()
	s.add(tile)
	return nil
}

// neighbor returns the cell index one step in direction d, wrapping at
// the field edges so every cell has exactly 4 neighbors.
func (f *Field) neighbor(cell int, d Direction) int {
	dx, dy := d.Offset()
	x := wrap(cell%f.Width+dx, f.Width)
	y := wrap(cell/f.Width+dy, f.Height)
	return y*f.Width + x
}

func (f *Field) push(cell int, entropy float64) {
	heap.Push(&f.queue, entropyEntry{entropy: entropy, cell: cell})
}

// pop returns the lowest-entropy cell that is still undetermined,
// discarding stale entries for cells that collapsed since they were
// pushed. Returns -1 when the queue runs dry.
func (f *Field) pop() int {
	for f.queue.Len() > 0 {
		e := heap.Pop(&f.queue).(entropyEntry)
		if f.cells[e.cell].count() > 1 {
			return e.cell
		}
	}
	return -1
}
