package wfc

import (
	"errors"
	"math"
	"math/rand"
)

// Params is the learned model: the tile library and the adjacency
// rules derived from one source grid. Immutable after Learn; any
// number of fields can be generated from the same Params.
type Params struct {
	Library *Library
	Rules   *RuleTable
}

// Learn extracts the tile library from the source grid and derives
// the adjacency rule table.
func Learn(grid *PixelGrid, tileSize int) (*Params, error) {
	lib, err := learnTiles(grid, tileSize)
	if err != nil {
		return nil, err
	}
	return &Params{Library: lib, Rules: buildRules(lib)}, nil
}

// NewField creates a fresh all-undetermined field and seeds its
// entropy queue.
func (p *Params) NewField(width, height int) (*Field, error) {
	f, err := newField(width, height, len(p.Library.Tiles))
	if err != nil {
		return nil, err
	}
	p.seedQueue(f)
	return f, nil
}

// Reset discards all progress on the field, including a contradicted
// state, and re-seeds the entropy queue. This is the only way to
// recover from ErrContradiction.
func (p *Params) Reset(f *Field) {
	f.reset()
	p.seedQueue(f)
}

func (p *Params) seedQueue(f *Field) {
	if f.tileCount <= 1 {
		return
	}
	e := p.entropy(f.cells[0])
	for cell := range f.cells {
		f.push(cell, e)
	}
}

// entropy computes frequency-weighted Shannon entropy of a candidate
// set. Fewer candidates do not always mean lower entropy: probability
// concentrated on one frequent tile scores below an even split over
// two rare ones.
func (p *Params) entropy(s tileSet) float64 {
	var total uint64
	for t := range s.all() {
		total += uint64(p.Library.Frequency[t])
	}
	if total == 0 {
		return 0
	}
	e := 0.0
	for t := range s.all() {
		pr := float64(p.Library.Frequency[t]) / float64(total)
		e -= pr * math.Log2(pr)
	}
	return e
}

// chooseTile picks a tile from the cell's candidates with probability
// proportional to learned frequency.
func (p *Params) chooseTile(s tileSet, rng *rand.Rand) int {
	var total int64
	for t := range s.all() {
		total += int64(p.Library.Frequency[t])
	}
	r := rng.Int63n(total)
	var acc int64
	for t := range s.all() {
		acc += int64(p.Library.Frequency[t])
		if r < acc {
			return t
		}
	}
	// Unreachable: the walk always crosses r before the set ends.
	panic("wfc: weighted choice ran past the candidate set")
}

// Step performs one generation tick: pop the lowest-entropy
// undetermined cell, collapse it to a frequency-weighted random
// choice, and propagate the consequences. Returns ErrContradiction if
// propagation empties a cell, leaving the field unusable until Reset.
// A nil return with Done() true means generation finished.
func (p *Params) Step(f *Field, rng *rand.Rand) error {
	if f.contradicted {
		return ErrContradiction
	}
	cell := f.pop()
	if cell < 0 {
		return nil
	}
	tile := p.chooseTile(f.cells[cell], rng)
	if err := f.collapse(cell, tile); err != nil {
		return err
	}
	return p.propagate(f, cell)
}

// propagate restores local arc-consistency after the given cell's set
// shrank. Work-stack driven, AC-3 style: every neighbor of a changed
// cell is restricted to the union of tiles its changed neighbor still
// allows; any neighbor that shrinks is pushed to be re-checked in
// turn. Sets only shrink, so the loop terminates. On an empty set the
// field is marked contradicted and ErrContradiction is returned
// immediately.
func (p *Params) propagate(f *Field, cell int) error {
	stack := []int{cell}
	scratch := newTileSet(f.tileCount)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for d := DirUp; d <= DirLeft; d++ {
			next := f.neighbor(cur, d)
			scratch.clear()
			for t := range f.cells[cur].all() {
				scratch.union(p.Rules.AllowedSet(t, d))
			}
			before := f.cells[next].count()
			if !f.cells[next].intersect(scratch) {
				continue
			}
			after := f.cells[next].count()
			if after == 0 {
				f.contradicted = true
				return ErrContradiction
			}
			if before > 1 && after == 1 {
				f.remaining--
			}
			if after > 1 {
				f.push(next, p.entropy(f.cells[next]))
			}
			stack = append(stack, next)
		}
	}
	return nil
}

// Generate runs the collapse loop to completion, restarting from
// scratch on every contradiction. maxRestarts caps the number of
// restarts; 0 means unbounded. Returns the collapsed field and how
// many restarts it took.
func (p *Params) Generate(width, height, maxRestarts int, rng *rand.Rand) (*Field, int, error) {
	f, err := p.NewField(width, height)
	if err != nil {
		return nil, 0, err
	}
	restarts := 0
	for !f.Done() {
		if err := p.Step(f, rng); err != nil {
			if !errors.Is(err, ErrContradiction) {
				return nil, restarts, err
			}
			restarts++
			if maxRestarts > 0 && restarts > maxRestarts {
				return nil, restarts, ErrTooManyRestarts
			}
			p.Reset(f)
		}
	}
	return f, restarts, nil
}
