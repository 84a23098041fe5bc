package wfc

// Composite renders the field, fully or partially collapsed, to a
// flat pixel array of the field's dimensions. A collapsed cell shows
// its tile's representative color; an undetermined cell shows the
// per-channel mean of its candidates' representative colors, a fog
// that sharpens as generation proceeds. A contradicted (empty) cell
// renders transparent black.
func (p *Params) Composite(f *Field) []uint32 {
	pixels := make([]uint32, f.Width*f.Height)
	for i, s := range f.cells {
		n := s.count()
		if n == 0 {
			continue
		}
		var sr, sg, sb, sa uint32
		for t := range s.all() {
			r, g, b, a := unpackColor(p.Library.Representative(t))
			sr += uint32(r)
			sg += uint32(g)
			sb += uint32(b)
			sa += uint32(a)
		}
		c := uint32(n)
		pixels[i] = PackColor(uint8(sr/c), uint8(sg/c), uint8(sb/c), uint8(sa/c))
	}
	return pixels
}
