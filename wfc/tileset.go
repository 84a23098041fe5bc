package wfc

import (
	"iter"
	"math/bits"
)

// tileSet is a fixed-capacity bitset over tile ids.
type tileSet []uint64

func newTileSet(tileCount int) tileSet {
	return make(tileSet, (tileCount+63)/64)
}

func fullTileSet(tileCount int) tileSet {
	s := newTileSet(tileCount)
	for i := range s {
		s[i] = ^uint64(0)
	}
	if rem := tileCount % 64; rem != 0 {
		s[len(s)-1] = (1 << rem) - 1
	}
	return s
}

func (s tileSet) has(id int) bool {
	return s[id/64]&(1<<(id%64)) != 0
}

func (s tileSet) add(id int) {
	s[id/64] |= 1 << (id % 64)
}

func (s tileSet) count() int {
	n := 0
	for _, w := range s {
		n += bits.OnesCount64(w)
	}
	return n
}

func (s tileSet) clone() tileSet {
	c := make(tileSet, len(s))
	copy(c, s)
	return c
}

func (s tileSet) clear() {
	for i := range s {
		s[i] = 0
	}
}

// union merges o into s.
func (s tileSet) union(o tileSet) {
	for i := range s {
		s[i] |= o[i]
	}
}

// intersect keeps only ids present in both sets and reports whether s
// changed.
func (s tileSet) intersect(o tileSet) bool {
	changed := false
	for i := range s {
		w := s[i] & o[i]
		if w != s[i] {
			changed = true
			s[i] = w
		}
	}
	return changed
}

// all iterates the ids in the set in ascending order.
func (s tileSet) all() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, w := range s {
			for w != 0 {
				b := bits.TrailingZeros64(w)
				if !yield(i*64 + b) {
					return
				}
				w &^= 1 << b
			}
		}
	}
}
