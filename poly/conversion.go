package poly

import (
	"sort"

	"github.com/ezaffanella/pplite/con"
	"github.com/ezaffanella/pplite/gen"
	"github.com/ezaffanella/pplite/integer"
	"github.com/ezaffanella/pplite/linear"
	"github.com/ezaffanella/pplite/sat"
)

// Minimize flushes every pending row through incremental conversion and
// then simplification, bringing Status to Minimized or Empty. It is
// idempotent and cheap (a single field check) once already minimized.
func (p *Poly) Minimize() {
	if p.Status != Pending {
		return
	}
	switch {
	case len(p.CsPending) > 0:
		p.flushCsPending()
	case len(p.GsPending) > 0:
		p.flushGsPending()
	default:
		p.Status = Minimized
	}
	if p.Status != Empty {
		p.simplify()
		p.Status = Minimized
	}
}

func (p *Poly) flushCsPending() {
	pending := p.CsPending
	p.CsPending = nil
	if len(p.Gs.Sk) == 0 && len(p.Gs.Sing) == 0 {
		p.ensureUniverseGens()
	}
	for _, c := range pending {
		if p.addConstraintToSkeleton(c) {
			*p = *NewEmpty(p.Topology, p.Dim)
			return
		}
	}
}

func (p *Poly) flushGsPending() {
	pending := p.GsPending
	p.GsPending = nil
	for _, g := range pending {
		p.addGeneratorToSkeleton(g)
	}
}

// ensureUniverseGens seeds gs with the full-space line basis plus the
// origin when conversion starts from an empty generator side (the
// incremental algorithm always needs a starting generator set).
func (p *Poly) ensureUniverseGens() {
	u := NewUniverse(p.Topology, p.Dim)
	p.Gs = u.Gs
	p.Cs.Sk = append([]con.Con(nil), u.Cs.Sk...)
	p.rebuildSatFromScratch()
}

// addConstraintToSkeleton is the forward Chernikova step: it folds
// constraint c into cs.Sk and recomputes gs.Sk accordingly, returning
// true if the polyhedron becomes empty.
func (p *Poly) addConstraintToSkeleton(c con.Con) (becomesEmpty bool) {
	if c.Expr.IsZero() {
		if c.Inhomo.Sign() < 0 || (c.Inhomo.Sign() != 0 && c.Kind == con.EQ) {
			return true
		}
		return false
	}

	signOf := func(i int) int { return scalarSignStrict(c, p.Gs.Sk[i]) }
	part := newPartition(len(p.Gs.Sk), signOf)

	singSign := func(sg gen.Gen) int { return scalarSign(c, sg) }
	var singNeg []int
	for i, sg := range p.Gs.Sing {
		if singSign(sg) != 0 {
			singNeg = append(singNeg, i)
		}
	}

	if part.IsFalse() && len(singNeg) == 0 {
		return true
	}

	if part.IsRedundant() && len(singNeg) == 0 {
		// c already holds for every current generator: it adds no new
		// information to the skeleton and is dropped rather than kept
		// around for simplify to clean up later.
		return false
	}

	// Fold singular (line) rows that disagree with c into skeleton rays
	// by splitting each offending line into a ray pair, so the ordinary
	// positive/negative combination step below can absorb them.
	if len(singNeg) > 0 {
		p.splitLinesAgainst(c, singNeg)
		signOf = func(i int) int { return scalarSignStrict(c, p.Gs.Sk[i]) }
		part = newPartition(len(p.Gs.Sk), signOf)
	}

	newSk := make([]gen.Gen, 0, len(part.Pos)+len(part.Eq)+len(part.Neg))
	keepIdx := make([]int, 0, len(part.Pos)+len(part.Eq))
	for _, i := range part.Pos {
		newSk = append(newSk, p.Gs.Sk[i])
		keepIdx = append(keepIdx, i)
	}
	for _, i := range part.Eq {
		newSk = append(newSk, p.Gs.Sk[i])
		keepIdx = append(keepIdx, i)
	}

	combined := make([]gen.Gen, 0)
	combinedFrom := make([][2]int, 0)
	for _, ni := range part.Neg {
		for _, pi := range part.Pos {
			if !adjacent(p.SatG, len(p.Gs.Sk), ni, pi) {
				continue
			}
			cg, err := combineGens(p.Gs.Sk[ni], p.Gs.Sk[pi], scalarValue(c, p.Gs.Sk[ni]), scalarValue(c, p.Gs.Sk[pi]))
			if err != nil {
				continue
			}
			combined = append(combined, cg)
			combinedFrom = append(combinedFrom, [2]int{ni, pi})
		}
	}

	newSat := sat.New(len(p.Cs.Sk) + 1)
	for _, i := range keepIdx {
		row := p.SatG.Row(i).Clone()
		row.AddColumn()
		newSat.AddRowFrom(row)
	}
	for k := range combined {
		ni, pi := combinedFrom[k][0], combinedFrom[k][1]
		row := p.SatG.Row(ni).Intersect(p.SatG.Row(pi))
		row.AddColumn()
		row.Set(len(p.Cs.Sk))
		newSat.AddRowFrom(row)
	}

	p.Gs.Sk = append(newSk, combined...)
	p.SatG = newSat
	p.appendConSk(c)
	return false
}

// splitLinesAgainst replaces every offending singular (line) row with a
// pair of rays pointing in each direction, letting the standard
// positive/negative combination logic handle the cut; this keeps the
// algorithm uniform at the cost of temporarily growing the skeleton,
// which simplify() later re-collapses into a line where possible.
func (p *Poly) splitLinesAgainst(c con.Con, offending []int) {
	keepSing := make([]gen.Gen, 0, len(p.Gs.Sing))
	mark := make(map[int]bool, len(offending))
	for _, i := range offending {
		mark[i] = true
	}
	for i, sg := range p.Gs.Sing {
		if !mark[i] {
			keepSing = append(keepSing, sg)
			continue
		}
		fwd := gen.NewRay(sg.Expr.Clone())
		back := gen.NewRay(sg.Expr.Clone())
		neg := back.Expr.Negate()
		back = gen.NewRay(*neg)
		p.Gs.Sk = append(p.Gs.Sk, fwd, back)
		p.SatG.AddRow()
		p.SatG.AddRow()
	}
	p.Gs.Sing = keepSing
}

// appendConSk records c as a new skeleton constraint row. p.SatG must
// already carry one column per constraint including c (conversion.go's
// callers grow it before combining generators); this fills that last
// column from scratch against the now-final gs.Sk and rebuilds SatC as
// its transpose, which is simpler and less error-prone than patching
// SatC's row-indexed bits incrementally.
func (p *Poly) appendConSk(c con.Con) {
	if p.SatG == nil {
		p.SatG = sat.New(0)
	}
	lastCol := p.SatG.NumCols() - 1
	for gi := range p.Gs.Sk {
		if scalarSignStrict(c, p.Gs.Sk[gi]) == 0 {
			row := p.SatG.Row(gi)
			row.Set(lastCol)
			p.SatG.SetRow(gi, row)
		}
	}
	p.Cs.Sk = append(p.Cs.Sk, c)
	p.SatC = p.SatG.Transpose()
}

// adjacent implements the standard combinatorial double-description
// adjacency test: a negative generator ni and positive generator pi may
// be combined only if no third generator saturates every constraint
// that both ni and pi already saturate (i.e. their common zero-set is
// not strictly contained in another generator's zero-set). This is the
// textbook necessary condition; degenerate (non-simple) inputs can
// admit combinations a full rank test would reject, which simplify()'s
// redundancy pass cleans up afterward.
func adjacent(satG *sat.Sat, n, ni, pi int) bool {
	common := satG.Row(ni).Intersect(satG.Row(pi))
	for k := 0; k < n; k++ {
		if k == ni || k == pi {
			continue
		}
		if common.SubsetEq(satG.Row(k)) {
			return false
		}
	}
	return true
}

// combineGens builds the new generator lying on the constraint's
// hyperplane between a negative generator u (scalar value su < 0) and a
// positive generator v (scalar value sv > 0): sv*u - su*v kills the
// constraint's value while staying a nonnegative combination of u and v.
func combineGens(u, v gen.Gen, su, sv integer.Integer) (gen.Gen, error) {
	ue := u.Expr.Clone()
	inh := integer.Zero()
	if u.Kind.IsPoint() {
		inh = u.Inhomo
	}
	vInh := integer.Zero()
	if v.Kind.IsPoint() {
		vInh = v.Inhomo
	}
	if err := linear.Combine(&ue, &inh, v.Expr, vInh, su, sv); err != nil {
		return gen.Gen{}, err
	}
	var g gen.Gen
	if u.Kind.IsPoint() || v.Kind.IsPoint() {
		kind := gen.POINT
		if u.Kind == gen.CPOINT || v.Kind == gen.CPOINT {
			kind = gen.CPOINT
		}
		g = gen.NewPoint(ue, inh, kind)
	} else {
		g = gen.NewRay(ue)
	}
	g.StrongNormalize()
	return g, nil
}

// addGeneratorToSkeleton is the dual step used when the generator side
// receives new rows directly (rare outside construction from an
// explicit V-representation): it recomputes the constraint skeleton by
// the same partition-and-combine method, applied across the transposed
// saturation relation.
func (p *Poly) addGeneratorToSkeleton(g gen.Gen) {
	if g.Kind.IsSingular() {
		p.Gs.Sing = append(p.Gs.Sing, g)
		return
	}
	if len(p.Cs.Sk) == 0 {
		p.Gs.Sk = append(p.Gs.Sk, g)
		p.SatG.AddRow()
		p.SatC = p.SatG.Transpose()
		return
	}
	signOf := func(i int) int { return scalarSignStrict(p.Cs.Sk[i], g) }
	part := newPartition(len(p.Cs.Sk), signOf)
	if len(part.Neg) == 0 {
		p.Gs.Sk = append(p.Gs.Sk, g)
		row := p.SatG.AddRow()
		rb := p.SatG.Row(row)
		for _, i := range part.Eq {
			rb.Set(i)
		}
		p.SatG.SetRow(row, rb)
		p.SatC = p.SatG.Transpose()
		return
	}

	keep := make([]con.Con, 0, len(part.Pos)+len(part.Eq))
	for _, i := range part.Pos {
		keep = append(keep, p.Cs.Sk[i])
	}
	for _, i := range part.Eq {
		keep = append(keep, p.Cs.Sk[i])
	}

	satC := p.SatC
	combined := make([]con.Con, 0)
	for _, ni := range part.Neg {
		for _, pi := range part.Pos {
			if satC != nil && !adjacent(satC, len(p.Cs.Sk), ni, pi) {
				continue
			}
			cc, err := combineCons(p.Cs.Sk[ni], p.Cs.Sk[pi], scalarValue(p.Cs.Sk[ni], g), scalarValue(p.Cs.Sk[pi], g))
			if err != nil {
				continue
			}
			combined = append(combined, cc)
		}
	}

	p.Cs.Sk = append(keep, combined...)
	p.Gs.Sk = append(p.Gs.Sk, g)
	p.rebuildSatFromScratch()
}

func combineCons(a, b con.Con, sa, sb integer.Integer) (con.Con, error) {
	ae := a.Expr.Clone()
	aInh := a.Inhomo
	// sb*a - sa*b: a nonnegative combination (sa < 0 < sb) that g saturates
	if err := linear.Combine(&ae, &aInh, b.Expr, b.Inhomo, sa, sb); err != nil {
		return con.Con{}, err
	}
	kind := con.NSI
	if a.Kind == con.EQ && b.Kind == con.EQ {
		kind = con.EQ
	} else if a.Kind == con.SI || b.Kind == con.SI {
		kind = con.SI
	}
	c := con.New(ae, aInh, kind)
	return c, nil
}

// rebuildSatFromScratch recomputes satC/satG directly from the current
// skeletons; used after a generator-driven constraint recombination
// where incremental column bookkeeping is more error-prone than a
// direct recompute (spec.md §4.4 permits either strategy).
func (p *Poly) rebuildSatFromScratch() {
	p.SatC = sat.New(len(p.Gs.Sk))
	for range p.Cs.Sk {
		p.SatC.AddRow()
	}
	for ci, c := range p.Cs.Sk {
		for gi, g := range p.Gs.Sk {
			if scalarSignStrict(c, g) == 0 {
				row := p.SatC.Row(ci)
				row.Set(gi)
				p.SatC.SetRow(ci, row)
			}
		}
	}
	p.SatG = p.SatC.Transpose()
}

// RebuildSaturation recomputes p.SatC/p.SatG from p.Cs.Sk/p.Gs.Sk,
// exported for loaders (dump.Read) that reconstruct a Poly
// from a serialized skeleton without a recorded saturation matrix.
func RebuildSaturation(p *Poly) { p.rebuildSatFromScratch() }

// sortedUnique returns a sorted, duplicate-free copy of idx.
func sortedUnique(idx []int) []int {
	out := append([]int(nil), idx...)
	sort.Ints(out)
	j := 0
	for i := 1; i < len(out); i++ {
		if out[i] != out[j] {
			j++
			out[j] = out[i]
		}
	}
	if len(out) == 0 {
		return out
	}
	return out[:j+1]
}
