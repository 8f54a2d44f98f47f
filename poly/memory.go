package poly

// ApproxMemoryBytes estimates p's heap footprint in bytes, generalizing
// memory_in_bytes.hh: it sums a small fixed overhead per row plus the
// observed length of each row's coefficient slice, without trying to
// account for the underlying big.Int allocator's exact word count.
func (p *Poly) ApproxMemoryBytes() int {
	const rowOverhead = 48  // struct header + slice header, approximate
	const wordBytes = 8     // one machine word per small integer.Integer value
	const satRowOverhead = 24

	total := 0
	count := func(rows int, dim int) {
		total += rows * (rowOverhead + dim*wordBytes)
	}
	count(len(p.Cs.Sing), p.Dim)
	count(len(p.Cs.Sk), p.Dim)
	count(len(p.Gs.Sing), p.Dim)
	count(len(p.Gs.Sk), p.Dim)
	count(len(p.CsPending), p.Dim)
	count(len(p.GsPending), p.Dim)

	for _, ns := range p.Cs.NS {
		total += satRowOverhead + len(ns)*4
	}
	for _, ns := range p.Gs.NS {
		total += satRowOverhead + len(ns)*4
	}

	if p.SatC != nil {
		total += p.SatC.NumRows() * (satRowOverhead + (p.SatC.NumCols()+7)/8)
	}
	if p.SatG != nil {
		total += p.SatG.NumRows() * (satRowOverhead + (p.SatG.NumCols()+7)/8)
	}
	return total
}
