package poly

import (
	"sort"

	"github.com/ezaffanella/pplite/con"
	"github.com/ezaffanella/pplite/gen"
	"github.com/ezaffanella/pplite/itv"
	"github.com/ezaffanella/pplite/linear"
	"github.com/ezaffanella/pplite/rational"
)

// WidenCertificate is the lexicographically ordered progress tuple used
// to prove termination of a widening sequence (spec.md §3): affine
// dimension, lineality dimension, skeleton constraint count, the
// (sorted) multiset of non-skeleton support sizes, skeleton point
// count, and a per-dimension count of how many skeleton rays/lines have
// a zero coefficient there. A widening step that leaves every component
// unchanged relative to the previous iterate has stabilized: the
// caller's up-to-a-fixpoint loop may stop.
type WidenCertificate struct {
	AffineDim       int
	LinealityDim    int
	NumSkeletonCons int
	NSSupportSizes  []int
	NumSkeletonPts  int
	RayZeroCoords   []int

	// Stabilized reports whether this certificate equals the one built
	// from the receiver before the widening step that produced it.
	Stabilized bool

	// KeptConstraints and BBoxStable are legacy bookkeeping retained for
	// callers that only care about the H79/boxed-H79 step itself.
	KeptConstraints int
	BBoxStable      bool
}

func buildCertificate(p *Poly) *WidenCertificate {
	p.Minimize()
	cert := &WidenCertificate{
		AffineDim:    p.Dim - len(p.Cs.Sing),
		LinealityDim: len(p.Gs.Sing),
	}
	if p.Status == Empty {
		return cert
	}
	cert.NumSkeletonCons = len(p.Cs.Sk)

	sizes := make([]int, 0, len(p.Cs.NS)+len(p.Gs.NS))
	for _, ns := range p.Cs.NS {
		sizes = append(sizes, len(ns))
	}
	for _, ns := range p.Gs.NS {
		sizes = append(sizes, len(ns))
	}
	sort.Ints(sizes)
	cert.NSSupportSizes = sizes

	for _, g := range p.Gs.Sk {
		if g.Kind.IsPoint() {
			cert.NumSkeletonPts++
		}
	}

	cert.RayZeroCoords = make([]int, p.Dim)
	countZero := func(e linear.Expr) {
		for d := 0; d < p.Dim; d++ {
			if e.Get(linear.Var(d)).IsZero() {
				cert.RayZeroCoords[d]++
			}
		}
	}
	for _, g := range p.Gs.Sk {
		if g.Kind == gen.RAY {
			countZero(g.Expr)
		}
	}
	for _, g := range p.Gs.Sing {
		countZero(g.Expr)
	}
	return cert
}

// stabilizedAgainst reports whether cert and prev agree on every
// component of the lexicographic tuple.
func (cert *WidenCertificate) stabilizedAgainst(prev *WidenCertificate) bool {
	if prev == nil {
		return false
	}
	return cert.AffineDim == prev.AffineDim &&
		cert.LinealityDim == prev.LinealityDim &&
		cert.NumSkeletonCons == prev.NumSkeletonCons &&
		cert.NumSkeletonPts == prev.NumSkeletonPts &&
		intsEqual(cert.NSSupportSizes, prev.NSSupportSizes) &&
		intsEqual(cert.RayZeroCoords, prev.RayZeroCoords)
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// WidenH79 replaces p (the older iterate) with the H79 widening of p
// with respect to q (the newer iterate, p ⊆ q): every constraint of p
// not satisfied by q (at the scalar-product level, using q's minimized
// generators) is dropped, so the result is the largest subset of p's
// constraint system still valid for q (spec.md §4.8, unguarded/"risky"
// variant).
func (p *Poly) WidenH79(q *Poly) (*WidenCertificate, error) {
	pr, err := newPair(p, q)
	if err != nil {
		return nil, polyErrorf("WidenH79", err)
	}
	pr.bothMinimized()
	prevCert := buildCertificate(p)

	if q.Status == Empty {
		cert := buildCertificate(p)
		cert.KeptConstraints = p.NumMinCons()
		cert.Stabilized = cert.stabilizedAgainst(prevCert)
		return cert, nil
	}
	if p.Status == Empty {
		*p = *q.Clone()
		cert := buildCertificate(p)
		cert.KeptConstraints = p.NumMinCons()
		cert.Stabilized = cert.stabilizedAgainst(prevCert)
		return cert, nil
	}

	var kept []con.Con
	for _, c := range append(append([]con.Con(nil), p.Cs.Sing...), p.Cs.Sk...) {
		if constraintHoldsForAllGens(c, q) {
			kept = append(kept, c)
		}
	}

	np := &Poly{Topology: p.Topology, Dim: p.Dim, Status: Pending}
	np.CsPending = kept
	*p = *np
	p.Minimize()

	cert := buildCertificate(p)
	cert.KeptConstraints = len(kept)
	cert.Stabilized = cert.stabilizedAgainst(prevCert)
	return cert, nil
}

func constraintHoldsForAllGens(c con.Con, q *Poly) bool {
	for _, g := range q.Gs.Sing {
		if scalarSign(c, g) != 0 {
			return false
		}
	}
	for _, g := range q.Gs.Sk {
		if scalarSignStrict(c, g) < 0 {
			return false
		}
	}
	return true
}

// WidenBoxedH79 runs WidenH79 and records in the certificate's
// BBoxStable whether p's bounding box before the step equals q's
// bounding box. The polyhedron it leaves in p is the plain H79 result:
// it is not intersected with any bounding box, so no per-axis bound
// that H79 drops is restored.
func (p *Poly) WidenBoxedH79(q *Poly) (*WidenCertificate, error) {
	beforeBox := boundingBox(p)
	cert, err := p.WidenH79(q)
	if err != nil {
		return nil, err
	}
	afterBox := boundingBox(q)
	if cert != nil {
		cert.BBoxStable = beforeBox != nil && afterBox != nil && beforeBox.Equal(afterBox)
	}
	return cert, nil
}

// BoundingBox computes the tightest axis-aligned interval enclosure of
// p, exported for the Boxed façade variant's cached box (DESIGN.md).
func BoundingBox(p *Poly) *itv.BBox { return boundingBox(p) }

func boundingBox(p *Poly) *itv.BBox {
	p.Minimize()
	if p.Status == Empty {
		return nil
	}
	box := itv.New(p.Dim)
	for i := 0; i < p.Dim; i++ {
		lo, hi := dimBounds(p, i)
		box.Set(i, itv.Interval{
			LowerIsInf: lo == nil,
			Lower:      derefOr(lo),
			UpperIsInf: hi == nil,
			Upper:      derefOr(hi),
		})
	}
	return box
}

func derefOr(r *rational.Rational) rational.Rational {
	if r == nil {
		return rational.FromInt64(0, 1)
	}
	return *r
}

// dimBounds reports the tightest known lower/upper bound of dimension i
// across p's generators, or nil on the unbounded side.
func dimBounds(p *Poly, i int) (*rational.Rational, *rational.Rational) {
	for _, g := range p.Gs.Sing {
		if g.Coefficient(linear.Var(i)).Sign() != 0 {
			return nil, nil
		}
	}
	var lo, hi *rational.Rational
	loInf, hiInf := false, false
	for _, g := range p.Gs.Sk {
		if !g.Kind.IsPoint() {
			c := g.Coefficient(linear.Var(i))
			s := c.Sign()
			if s > 0 {
				hiInf = true
			} else if s < 0 {
				loInf = true
			}
			continue
		}
		v := rational.FromInt(g.Coefficient(linear.Var(i)))
		d := rational.FromInt(g.Inhomo)
		val := v.Div(d)
		if lo == nil || val.Cmp(*lo) < 0 {
			c := val
			lo = &c
		}
		if hi == nil || val.Cmp(*hi) > 0 {
			c := val
			hi = &c
		}
	}
	if loInf {
		lo = nil
	}
	if hiInf {
		hi = nil
	}
	return lo, hi
}

// WidenBHRZ03 refines WidenBoxedH79 with three admission heuristics
// from spec.md §4.8, each trying to re-admit information plain H79
// would otherwise discard, provided the re-admitted row still holds for
// every generator of q:
//
//  1. combining constraints: a pair of p's original constraints, each
//     individually dropped by H79 (including the single-dimension-bound
//     case, the cheapest instance of combining a row with itself),
//     whose sum still holds for q.
//  2. evolving points: the direction in which one of p's original
//     skeleton points appears to have moved to reach a point of q,
//     re-admitted as a new ray (catches the common "counter advances by
//     a fixed step" loop-invariant pattern H79 alone would drop).
//  3. evolving rays: a ray present in q's skeleton with no parallel
//     counterpart in p's, re-admitted directly.
//
// The widening certificate of the result is compared against p's
// certificate from before the step to detect stabilization.
func (p *Poly) WidenBHRZ03(q *Poly) (*WidenCertificate, error) {
	pr, err := newPair(p, q)
	if err != nil {
		return nil, polyErrorf("WidenBHRZ03", err)
	}
	pr.bothMinimized()
	prevCert := buildCertificate(p)
	pOrig := p.Clone()

	cert, err := p.WidenBoxedH79(q)
	if err != nil {
		return nil, err
	}

	combiningConstraints(p, pOrig, q)
	evolvingPoints(p, pOrig, q)
	evolvingRays(p, pOrig, q)

	p.Minimize()
	final := buildCertificate(p)
	final.KeptConstraints = cert.KeptConstraints
	final.BBoxStable = cert.BBoxStable
	final.Stabilized = final.stabilizedAgainst(prevCert)
	return final, nil
}

// combiningConstraints re-admits a sum of two of p's original
// constraints when the sum still holds for every generator of q, even
// though neither summand individually survived H79 (spec.md §4.8
// "combining constraints"); a constraint touching only one dimension
// is tried on its own first, the degenerate case of combining a row
// with itself.
func combiningConstraints(p, pOrig, q *Poly) {
	cands := append(append([]con.Con(nil), pOrig.Cs.Sing...), pOrig.Cs.Sk...)
	for i := 0; i < len(cands); i++ {
		if isSingleDimBound(cands[i]) && constraintHoldsForAllGens(cands[i], q) {
			p.AddCon(cands[i].Clone())
			continue
		}
		for j := i + 1; j < len(cands); j++ {
			if cands[i].Kind == con.EQ || cands[j].Kind == con.EQ {
				continue
			}
			combined := sumCons(cands[i], cands[j])
			if constraintHoldsForAllGens(combined, q) {
				p.AddCon(combined)
			}
		}
	}
}

func sumCons(a, b con.Con) con.Con {
	e := a.Expr.Clone()
	if b.Expr.Len() > e.Len() {
		e.Resize(b.Expr.Len())
	}
	for i := 0; i < b.Expr.Len(); i++ {
		e.Set(linear.Var(i), e.Get(linear.Var(i)).Add(b.Expr.Get(linear.Var(i))))
	}
	kind := con.NSI
	if a.Kind == con.SI || b.Kind == con.SI {
		kind = con.SI
	}
	return con.New(e, a.Inhomo.Add(b.Inhomo), kind)
}

func isSingleDimBound(c con.Con) bool {
	nonzero := 0
	for _, v := range c.Expr.Coefficients() {
		if v.Sign() != 0 {
			nonzero++
		}
	}
	return nonzero == 1
}

// evolvingPoints re-admits, as a new ray, the direction along which one
// of p's original skeleton points appears to have moved to reach a
// point of q that is not already one of p's original skeleton points
// (spec.md §4.8 "evolving points").
func evolvingPoints(p, pOrig, q *Poly) {
	pPts := skeletonPoints(pOrig.Gs.Sk)
	var newPts []gen.Gen
	for _, qp := range skeletonPoints(q.Gs.Sk) {
		known := false
		for _, pp := range pPts {
			if _, differs := pointDelta(pp, qp); !differs {
				known = true
				break
			}
		}
		if !known {
			newPts = append(newPts, qp)
		}
	}
	for _, pp := range pPts {
		for _, qp := range newPts {
			dir, ok := pointDelta(pp, qp)
			if !ok {
				continue
			}
			p.AddGen(gen.NewRay(dir))
		}
	}
}

func skeletonPoints(gs []gen.Gen) []gen.Gen {
	out := make([]gen.Gen, 0, len(gs))
	for _, g := range gs {
		if g.Kind.IsPoint() {
			out = append(out, g)
		}
	}
	return out
}

// pointDelta returns a direction proportional to b-a (scaled to a
// common integer denominator), or false if the two points coincide.
func pointDelta(a, b gen.Gen) (linear.Expr, bool) {
	dim := a.Expr.Len()
	if b.Expr.Len() > dim {
		dim = b.Expr.Len()
	}
	e := linear.NewExpr(dim)
	nonzero := false
	for i := 0; i < dim; i++ {
		v := linear.Var(i)
		lhs := b.Expr.Get(v).Mul(a.Inhomo)
		rhs := a.Expr.Get(v).Mul(b.Inhomo)
		diff := lhs.Sub(rhs)
		if !diff.IsZero() {
			nonzero = true
		}
		e.Set(v, diff)
	}
	return e, nonzero
}

// evolvingRays re-admits any ray of q's skeleton with no parallel
// counterpart already among p's original rays, capturing a newly
// appeared unbounded direction (spec.md §4.8 "evolving rays").
func evolvingRays(p, pOrig, q *Poly) {
	pRays := skeletonRays(pOrig.Gs.Sk)
	for _, qr := range q.Gs.Sk {
		if qr.Kind != gen.RAY {
			continue
		}
		if containsParallelRay(pRays, qr) {
			continue
		}
		p.AddGen(qr.Clone())
	}
}

func skeletonRays(gs []gen.Gen) []gen.Gen {
	out := make([]gen.Gen, 0, len(gs))
	for _, g := range gs {
		if g.Kind == gen.RAY {
			out = append(out, g)
		}
	}
	return out
}

func containsParallelRay(rays []gen.Gen, r gen.Gen) bool {
	for _, pr := range rays {
		if pr.Expr.Cmp(r.Expr) == 0 {
			return true
		}
	}
	return false
}
