package poly

import (
	"github.com/ezaffanella/pplite/con"
	"github.com/ezaffanella/pplite/gen"
	"github.com/ezaffanella/pplite/integer"
	"github.com/ezaffanella/pplite/linear"
	"github.com/ezaffanella/pplite/sat"
)

// Intersect adds every constraint of q to p in place (the cheapest of
// the binary operations: intersection is simply constraint-system
// union, spec.md §4.6).
func (p *Poly) Intersect(q *Poly) error {
	pr, err := newPair(p, q)
	if err != nil {
		return polyErrorf("Intersect", err)
	}
	_ = pr
	q.Minimize()
	if q.Status == Empty {
		*p = *NewEmpty(p.Topology, p.Dim)
		return nil
	}
	p.AddCons(append(append([]con.Con(nil), q.Cs.Sing...), q.Cs.Sk...))
	return nil
}

// Hull replaces p with the convex hull (poly-hull / join) of p and q:
// the smallest polyhedron containing both, computed by merging
// generator systems (the dual of Intersect, spec.md §4.6).
func (p *Poly) Hull(q *Poly) error {
	pr, err := newPair(p, q)
	if err != nil {
		return polyErrorf("Hull", err)
	}
	pr.bothMinimized()
	if p.Status == Empty {
		*p = *q.Clone()
		return nil
	}
	if q.Status == Empty {
		return nil
	}
	p.AddGens(append(append([]gen.Gen(nil), q.Gs.Sing...), q.Gs.Sk...))
	return nil
}

// TopologicalClosure returns the topological closure of p: every
// strict inequality relaxed to non-strict, and every closure point
// promoted to a point (spec.md §4.6; a no-op for Closed topology).
func (p *Poly) TopologicalClosure() *Poly {
	if p.Topology == Closed {
		return p.Clone()
	}
	p.Minimize()
	cp := NewUniverse(Closed, p.Dim)
	if p.Status == Empty {
		return NewEmpty(Closed, p.Dim)
	}
	for _, c := range append(append([]con.Con(nil), p.Cs.Sing...), p.Cs.Sk...) {
		if c.IsStrictPositivity() {
			continue
		}
		kind := c.Kind
		if kind == con.SI {
			kind = con.NSI
		}
		cp.AddCon(con.New(c.Expr.Clone(), c.Inhomo, kind))
	}
	for _, g := range append(append([]gen.Gen(nil), p.Gs.Sing...), p.Gs.Sk...) {
		kind := g.Kind
		if kind == gen.CPOINT {
			kind = gen.POINT
		}
		switch kind {
		case gen.LINE:
			cp.AddGen(gen.NewLine(g.Expr.Clone()))
		case gen.RAY:
			cp.AddGen(gen.NewRay(g.Expr.Clone()))
		default:
			cp.AddGen(gen.NewPoint(g.Expr.Clone(), g.Inhomo, kind))
		}
	}
	return cp
}

// AddSpaceDims appends n fresh unconstrained dimensions, optionally
// projecting (project=true folds the new dims to zero rather than
// leaving them free, matching add_space_dims(n, project) of spec.md
// §4.6).
func (p *Poly) AddSpaceDims(n int, project bool) {
	if n <= 0 {
		return
	}
	p.Minimize()
	newDim := p.Dim + n
	extendExpr := func(e linear.Expr) linear.Expr {
		e.Resize(newDim)
		return e
	}
	for i := range p.Cs.Sing {
		p.Cs.Sing[i].Expr = extendExpr(p.Cs.Sing[i].Expr)
	}
	for i := range p.Cs.Sk {
		p.Cs.Sk[i].Expr = extendExpr(p.Cs.Sk[i].Expr)
	}
	for i := range p.Gs.Sing {
		p.Gs.Sing[i].Expr = extendExpr(p.Gs.Sing[i].Expr)
	}
	for i := range p.Gs.Sk {
		p.Gs.Sk[i].Expr = extendExpr(p.Gs.Sk[i].Expr)
	}
	p.Dim = newDim
	if !project {
		for i := 0; i < n; i++ {
			p.Gs.Sing = append(p.Gs.Sing, gen.NewLine(unitExpr(newDim, newDim-n+i)))
		}
	} else {
		for i := 0; i < n; i++ {
			p.Cs.Sing = append(p.Cs.Sing, con.New(unitExpr(newDim, newDim-n+i), integer.Zero(), con.EQ))
		}
	}
	p.rebuildSatFromScratch()
	p.simplify()
}

// RemoveSpaceDims deletes the given (sorted, duplicate-free, 0-based)
// dimension indices, existentially quantifying them out first (the
// standard "project then drop the column" implementation, spec.md
// §4.6).
func (p *Poly) RemoveSpaceDims(dims []int) {
	if len(dims) == 0 {
		return
	}
	p.Minimize()
	for _, d := range dims {
		p.unconstrainDim(d)
	}
	remap := removedDimRemap(p.Dim, dims)
	remapExpr := func(e linear.Expr) linear.Expr {
		out := linear.NewExpr(p.Dim - len(dims))
		for i := 0; i < e.Len(); i++ {
			if n := remap[i]; n >= 0 {
				out.Set(linear.Var(n), e.Get(linear.Var(i)))
			}
		}
		return out
	}
	for i := range p.Cs.Sing {
		p.Cs.Sing[i].Expr = remapExpr(p.Cs.Sing[i].Expr)
	}
	for i := range p.Cs.Sk {
		p.Cs.Sk[i].Expr = remapExpr(p.Cs.Sk[i].Expr)
	}
	for i := range p.Gs.Sing {
		p.Gs.Sing[i].Expr = remapExpr(p.Gs.Sing[i].Expr)
	}
	for i := range p.Gs.Sk {
		p.Gs.Sk[i].Expr = remapExpr(p.Gs.Sk[i].Expr)
	}
	p.Dim -= len(dims)
}

func removedDimRemap(dim int, removed []int) []int {
	out := make([]int, dim)
	rm := make(map[int]bool, len(removed))
	for _, d := range removed {
		rm[d] = true
	}
	next := 0
	for i := 0; i < dim; i++ {
		if rm[i] {
			out[i] = -1
			continue
		}
		out[i] = next
		next++
	}
	return out
}

// unconstrainDim existentially quantifies dimension d: every row
// mentioning it is combined pairwise to cancel the coefficient, the
// same mechanism TimeElapse and Unconstrain use (spec.md §4.6).
func (p *Poly) unconstrainDim(d int) {
	v := linear.Var(d)
	pos := make([]int, 0)
	neg := make([]int, 0)
	zero := make([]con.Con, 0, len(p.Cs.Sk))
	for _, c := range p.Cs.Sk {
		s := c.Expr.Get(v).Sign()
		switch {
		case s > 0:
			pos = append(pos, len(zero))
			zero = append(zero, c)
		case s < 0:
			neg = append(neg, len(zero))
			zero = append(zero, c)
		default:
			zero = append(zero, c)
		}
	}
	combined := make([]con.Con, 0)
	for _, pi := range pos {
		for _, ni := range neg {
			cv := zero[pi].Expr.Get(v)
			cu := zero[ni].Expr.Get(v).Neg()
			ce := zero[pi].Expr.Clone()
			inh := zero[pi].Inhomo
			// cu*pos + cv*neg: both weights positive, coefficient on v cancels
			if err := linear.Combine(&ce, &inh, zero[ni].Expr, zero[ni].Inhomo, cv.Neg(), cu); err != nil {
				continue
			}
			kind := con.NSI
			if zero[pi].Kind == con.EQ && zero[ni].Kind == con.EQ {
				kind = con.EQ
			}
			combined = append(combined, con.New(ce, inh, kind))
		}
	}
	kept := make([]con.Con, 0, len(zero))
	drop := make(map[int]bool)
	for _, i := range pos {
		drop[i] = true
	}
	for _, i := range neg {
		drop[i] = true
	}
	for i, c := range zero {
		if !drop[i] {
			kept = append(kept, c)
		}
	}
	p.Cs.Sk = append(kept, combined...)
	p.Gs.Sing = append(p.Gs.Sing, gen.NewLine(unitExpr(p.Dim, d)))
	p.rebuildSatFromScratch()
	p.simplify()
}

// Unconstrain removes every constraint's dependency on dimension v,
// making p unbounded along that axis while preserving its projection
// onto the other axes (spec.md §4.6).
func (p *Poly) Unconstrain(v linear.Var) {
	assertDim("Unconstrain", int(v)+1, p.Dim)
	p.Minimize()
	p.unconstrainDim(int(v))
}

// Concatenate appends q's dimensions after p's, forming the polyhedron
// whose points are exactly the concatenation of a point of p with a
// point of q (the direct/Cartesian product, spec.md §4.6).
func (p *Poly) Concatenate(q *Poly) error {
	if p.Topology != q.Topology {
		return polyErrorf("Concatenate", ErrTopologyMismatch)
	}
	p.Minimize()
	q.Minimize()
	shift := p.Dim
	newDim := p.Dim + q.Dim
	p.AddSpaceDims(q.Dim, false)
	for _, c := range append(append([]con.Con(nil), q.Cs.Sing...), q.Cs.Sk...) {
		e := linear.NewExpr(newDim)
		for i := 0; i < c.Expr.Len(); i++ {
			e.Set(linear.Var(shift+i), c.Expr.Get(linear.Var(i)))
		}
		p.AddCon(con.New(e, c.Inhomo, c.Kind))
	}
	return nil
}

// MapSpaceDims permutes/projects dimensions according to perm, where
// perm[i] is the new index of old dimension i, or -1 to drop it
// (spec.md §4.6 map_space_dims).
func (p *Poly) MapSpaceDims(perm []int) error {
	if len(perm) != p.Dim {
		return polyErrorf("MapSpaceDims", ErrDimMismatch)
	}
	p.Minimize()
	newDim := 0
	for _, n := range perm {
		if n+1 > newDim {
			newDim = n + 1
		}
	}
	remapExpr := func(e linear.Expr) linear.Expr {
		out := linear.NewExpr(newDim)
		for i := 0; i < e.Len() && i < len(perm); i++ {
			if n := perm[i]; n >= 0 {
				out.Set(linear.Var(n), e.Get(linear.Var(i)))
			}
		}
		return out
	}
	for i := range p.Cs.Sing {
		p.Cs.Sing[i].Expr = remapExpr(p.Cs.Sing[i].Expr)
	}
	for i := range p.Cs.Sk {
		p.Cs.Sk[i].Expr = remapExpr(p.Cs.Sk[i].Expr)
	}
	for i := range p.Gs.Sing {
		p.Gs.Sing[i].Expr = remapExpr(p.Gs.Sing[i].Expr)
	}
	for i := range p.Gs.Sk {
		p.Gs.Sk[i].Expr = remapExpr(p.Gs.Sk[i].Expr)
	}
	p.Dim = newDim
	return nil
}

// Fold merges the dimensions in group into a single dimension equal to
// their common value in every point where they agree, existentially
// removing disagreement (spec.md §4.6 fold_space_dims): implemented as
// Hull over the per-dimension identification followed by dimension
// removal.
func (p *Poly) Fold(group []linear.Var, into linear.Var) error {
	p.Minimize()
	for _, v := range group {
		if v == into {
			continue
		}
		e := linear.NewExpr(p.Dim)
		e.Set(into, integer.One())
		e.Set(v, integer.NewFromInt64(-1))
		p.AddCon(con.New(e, integer.Zero(), con.EQ))
	}
	dims := make([]int, 0, len(group))
	for _, v := range group {
		if v != into {
			dims = append(dims, int(v))
		}
	}
	p.RemoveSpaceDims(sortedUnique(dims))
	return nil
}

// Expand creates n new dimensions, each a copy of src, linked to src by
// equalities (the inverse of Fold, spec.md §4.6 expand_space_dim).
func (p *Poly) Expand(src linear.Var, n int) {
	p.Minimize()
	base := p.Dim
	p.AddSpaceDims(n, false)
	for i := 0; i < n; i++ {
		e := linear.NewExpr(p.Dim)
		e.Set(linear.Var(base+i), integer.One())
		e.Set(src, integer.NewFromInt64(-1))
		p.AddCon(con.New(e, integer.Zero(), con.EQ))
	}
}

// AffineImage replaces dimension v with (expr + inhomo) / denom applied
// to every point of p (spec.md §4.6 affine_image); denom must be
// positive.
func (p *Poly) AffineImage(v linear.Var, expr linear.Expr, inhomo integer.Integer, denom integer.Integer) error {
	if denom.Sign() <= 0 {
		return polyErrorf("AffineImage", ErrInvalidAffineImage)
	}
	p.Minimize()
	mapGen := func(g gen.Gen) gen.Gen {
		val := expr.DotProduct(g.Expr)
		if g.Kind.IsPoint() {
			val = val.Add(inhomo.Mul(g.Inhomo))
		}
		ng := g.Clone()
		ng.Expr.Set(v, val)
		if !denom.IsOne() {
			// Dividing dimension v by denom is done by multiplying every
			// other coordinate by it: a point's divisor absorbs the same
			// factor below, and a ray/line direction only keeps the ratio.
			for i := 0; i < ng.Expr.Len(); i++ {
				if linear.Var(i) == v {
					continue
				}
				ng.Expr.Set(linear.Var(i), ng.Expr.Get(linear.Var(i)).Mul(denom))
			}
		}
		if g.Kind.IsPoint() {
			ng.Inhomo = g.Inhomo.Mul(denom)
			ng.StrongNormalize()
		}
		return ng
	}
	gens := make([]gen.Gen, 0, len(p.Gs.Sing)+len(p.Gs.Sk))
	for _, g := range p.Gs.Sing {
		gens = append(gens, mapGen(g))
	}
	for _, g := range p.Gs.Sk {
		gens = append(gens, mapGen(g))
	}
	np := &Poly{Topology: p.Topology, Dim: p.Dim, Status: Pending}
	np.GsPending = gens
	np.SatC = sat.New(0)
	np.SatG = sat.New(0)
	*p = *np
	p.Minimize()
	return nil
}

// AffinePreimage is the dual of AffineImage, applied to the constraint
// system (spec.md §4.6 affine_preimage): every constraint's coefficient
// on v is substituted by (expr + inhomo)/denom.
func (p *Poly) AffinePreimage(v linear.Var, expr linear.Expr, inhomo integer.Integer, denom integer.Integer) error {
	if denom.Sign() <= 0 {
		return polyErrorf("AffinePreimage", ErrInvalidAffineImage)
	}
	p.Minimize()
	mapCon := func(c con.Con) con.Con {
		coeff := c.Expr.Get(v)
		if coeff.IsZero() {
			return c.Clone()
		}
		ne := c.Expr.Clone()
		ne.Set(v, integer.Zero())
		for i := 0; i < ne.Len(); i++ {
			ne.Set(linear.Var(i), ne.Get(linear.Var(i)).Mul(denom))
		}
		for i := 0; i < expr.Len(); i++ {
			ne.Set(linear.Var(i), ne.Get(linear.Var(i)).Add(coeff.Mul(expr.Get(linear.Var(i)))))
		}
		newInhomo := c.Inhomo.Mul(denom).Add(coeff.Mul(inhomo))
		return con.New(ne, newInhomo, c.Kind)
	}
	cons := make([]con.Con, 0, len(p.Cs.Sing)+len(p.Cs.Sk))
	for _, c := range p.Cs.Sing {
		cons = append(cons, mapCon(c))
	}
	for _, c := range p.Cs.Sk {
		cons = append(cons, mapCon(c))
	}
	np := &Poly{Topology: p.Topology, Dim: p.Dim, Status: Pending}
	np.CsPending = cons
	*p = *np
	p.Minimize()
	return nil
}

// TimeElapse replaces p with the smallest polyhedron containing, for
// every point x in p and every point y in q, the ray x + t*(y-x) for
// t >= 0 (spec.md §4.6 time_elapse_assign): computed as the conic hull
// of p's points with q's rays and lines added.
func (p *Poly) TimeElapse(q *Poly) error {
	pr, err := newPair(p, q)
	if err != nil {
		return polyErrorf("TimeElapse", err)
	}
	pr.bothMinimized()
	if p.Status == Empty || q.Status == Empty {
		return nil
	}
	p.AddGens(append(append([]gen.Gen(nil), q.Gs.Sing...), raysFromGens(q.Gs.Sk)...))
	return nil
}

// raysFromGens maps every generator of gs to a ray: lines and rays
// already bound the recession cone and pass through unchanged, while
// each point or closure point contributes the ray of its own direction
// (spec.md §4.6: "mapped rays from y's points"), not just the rays q
// already had.
func raysFromGens(gs []gen.Gen) []gen.Gen {
	out := make([]gen.Gen, 0, len(gs))
	for _, g := range gs {
		if g.Kind.IsPoint() {
			out = append(out, gen.NewRay(g.Expr.Clone()))
			continue
		}
		out = append(out, g)
	}
	return out
}
