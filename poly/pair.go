package poly

// pair bundles two polyhedra of matching topology and dimension for
// operations that walk both representations together (intersection,
// hull, and the poly-poly comparisons of spec.md §4.6), generalizing
// Two_Poly.hh's convenience wrapper around a pair of Poly references.
type pair struct {
	A, B *Poly
}

func newPair(a, b *Poly) (pair, error) {
	if a.Dim != b.Dim {
		return pair{}, polyErrorf("pair", ErrDimMismatch)
	}
	if a.Topology != b.Topology {
		return pair{}, polyErrorf("pair", ErrTopologyMismatch)
	}
	return pair{A: a, B: b}, nil
}

// bothMinimized ensures both operands are converted before a structural
// comparison or combination step runs.
func (pr pair) bothMinimized() {
	pr.A.Minimize()
	pr.B.Minimize()
}

// eitherEmpty reports whether either operand is empty after
// minimization.
func (pr pair) eitherEmpty() bool {
	pr.bothMinimized()
	return pr.A.Status == Empty || pr.B.Status == Empty
}
