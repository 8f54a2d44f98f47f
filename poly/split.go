package poly

import (
	"github.com/ezaffanella/pplite/con"
	"github.com/ezaffanella/pplite/gen"
	"github.com/ezaffanella/pplite/integer"
	"github.com/ezaffanella/pplite/rational"
	"github.com/ezaffanella/pplite/sat"
)

// Split partitions p in place into the part satisfying beta and returns
// a second Poly holding the part violating beta (spec.md §4.7): p
// becomes p ∩ {beta}, the return value is p ∩ {¬beta}. Both sides share
// a single classification of p's minimized skeleton against beta and a
// single combine pass producing the new boundary generators, rather
// than running the incremental conversion twice over from an unrelated
// clone: only which surviving generators and which of the two cutting
// constraints is attached differs per side.
func (p *Poly) Split(beta con.Con) *Poly {
	p.Minimize()
	negP := &Poly{Topology: p.Topology, Dim: p.Dim, Status: Empty}
	if p.Status == Empty {
		return negP
	}

	notBeta := complementCon(beta)

	if beta.Expr.IsZero() {
		if beta.Inhomo.Sign() < 0 || (beta.Inhomo.Sign() != 0 && beta.Kind == con.EQ) {
			*negP = *p.Clone()
			*p = *NewEmpty(p.Topology, p.Dim)
		}
		return negP
	}

	// A singular (line) generator that disagrees with beta cannot lie in
	// either side's lineality space: fold it into a ray pair the same
	// way addConstraintToSkeleton's splitLinesAgainst does, so the usual
	// partition-and-combine step below can absorb it.
	workSk := append([]gen.Gen(nil), p.Gs.Sk...)
	var keepSing []gen.Gen
	for _, sg := range p.Gs.Sing {
		if scalarSign(beta, sg) == 0 {
			keepSing = append(keepSing, sg)
			continue
		}
		fwd := gen.NewRay(sg.Expr.Clone())
		backExpr := fwd.Expr.Clone()
		back := gen.NewRay(*backExpr.Negate())
		workSk = append(workSk, fwd, back)
	}

	part := newPartition(len(workSk), func(i int) int {
		return scalarSignStrict(beta, workSk[i])
	})

	if part.IsFalse() {
		*negP = *p.Clone()
		*p = *NewEmpty(p.Topology, p.Dim)
		return negP
	}
	if part.IsRedundant() {
		return negP
	}

	satWork := sat.New(len(p.Cs.Sk))
	for range workSk {
		satWork.AddRow()
	}
	for gi, g := range workSk {
		row := satWork.Row(gi)
		for ci, c := range p.Cs.Sk {
			if scalarSignStrict(c, g) == 0 {
				row.Set(ci)
			}
		}
		satWork.SetRow(gi, row)
	}

	combined := make([]gen.Gen, 0)
	for _, ni := range part.Neg {
		for _, pi := range part.Pos {
			if !adjacent(satWork, len(workSk), ni, pi) {
				continue
			}
			cg, err := combineGens(workSk[ni], workSk[pi], scalarValue(beta, workSk[ni]), scalarValue(beta, workSk[pi]))
			if err != nil {
				continue
			}
			combined = append(combined, cg)
		}
	}

	posSk := make([]gen.Gen, 0, len(part.Pos)+len(part.Eq)+len(combined))
	for _, i := range part.Pos {
		posSk = append(posSk, workSk[i])
	}
	for _, i := range part.Eq {
		posSk = append(posSk, workSk[i])
	}
	posSk = append(posSk, combined...)

	negSk := make([]gen.Gen, 0, len(part.Neg)+len(part.Eq)+len(combined))
	for _, i := range part.Neg {
		negSk = append(negSk, workSk[i])
	}
	for _, i := range part.Eq {
		negSk = append(negSk, workSk[i])
	}
	for _, cg := range combined {
		// a combined generator sits exactly on beta's boundary: the
		// strict complementary side excludes it as a genuine vertex, so
		// it only ever appears there as the coincident closure point.
		negSk = append(negSk, asClosurePoint(cg))
	}

	posSide := &Poly{Topology: p.Topology, Dim: p.Dim, Status: Minimized}
	posSide.Gs.Sk = posSk
	posSide.Gs.Sing = append([]gen.Gen(nil), keepSing...)
	posSide.Cs.Sk = append(append([]con.Con(nil), p.Cs.Sk...), beta.Clone())
	posSide.Cs.Sing = append([]con.Con(nil), p.Cs.Sing...)
	posSide.rebuildSatFromScratch()
	posSide.simplify()

	negSide := &Poly{Topology: p.Topology, Dim: p.Dim, Status: Minimized}
	negSide.Gs.Sk = negSk
	negSide.Gs.Sing = append([]gen.Gen(nil), keepSing...)
	negSide.Cs.Sk = append(append([]con.Con(nil), p.Cs.Sk...), notBeta.Clone())
	negSide.Cs.Sing = append([]con.Con(nil), p.Cs.Sing...)
	negSide.rebuildSatFromScratch()
	negSide.simplify()

	*p = *posSide
	*negP = *negSide
	return negP
}

func asClosurePoint(g gen.Gen) gen.Gen {
	if g.Kind != gen.POINT {
		return g
	}
	return gen.NewPoint(g.Expr.Clone(), g.Inhomo, gen.CPOINT)
}

// complementCon negates c: "expr+inhomo >= 0" becomes the strict
// "-expr-inhomo > 0" and vice versa. EQ has no single-constraint
// complement in general (its negation is a disjunction); this package
// approximates it as the corresponding non-strict negation, matching
// the rational split's documented use on inequalities only.
func complementCon(c con.Con) con.Con {
	e := c.Expr.Clone()
	neg := e.Negate()
	inh := c.Inhomo.Neg()
	kind := con.NSI
	if c.Kind == con.NSI {
		kind = con.SI
	}
	return con.New(*neg, inh, kind)
}

// IntegralSplit is the integer-hull analogue of Split (spec.md §4.7).
// beta must be a non-strict inequality or an equality; its bounds are
// derived internally from gcd(beta.Expr) rather than supplied by the
// caller, so both sides stay disjoint and exhaustive over the integer
// lattice beta.Expr can actually take:
//
//   - inequality "expr + inhomo >= 0": p becomes "expr >= k" and the
//     returned side becomes "expr <= k-g", where g = gcd(expr) and k is
//     the least multiple of g satisfying the original bound.
//   - equality "expr + inhomo == 0": produces the three-way integral
//     split ("<", "=", ">"); p becomes the unchanged "=" side and the
//     returned side is Hull("<", ">"), a single convex
//     over-approximation of the equality's complement (a true
//     non-convex complement cannot be represented by one Poly).
func (p *Poly) IntegralSplit(beta con.Con) (*Poly, error) {
	g := beta.Expr.Gcd()
	if g.IsZero() {
		g = integer.One()
	}
	b := beta.Inhomo.Neg() // beta says expr >= b (or expr == b for EQ)

	bOverG, err := rational.New(b, g)
	if err != nil {
		return nil, polyErrorf("IntegralSplit", err)
	}

	if beta.Kind != con.EQ {
		k := g.Mul(bOverG.RoundUp())
		lower := con.New(beta.Expr.Clone(), k.Neg(), con.NSI)
		upperExpr := beta.Expr.Clone()
		upper := con.New(*upperExpr.Negate(), k.Sub(g), con.NSI)
		other := p.Clone()
		p.AddCon(lower)
		other.AddCon(upper)
		return other, nil
	}

	ltExpr := beta.Expr.Clone()
	lt := con.New(*ltExpr.Negate(), b.Sub(g), con.NSI)
	gt := con.New(beta.Expr.Clone(), b.Add(g).Neg(), con.NSI)

	ltSide := p.Clone()
	ltSide.AddCon(lt)
	gtSide := p.Clone()
	gtSide.AddCon(gt)

	complement := ltSide
	if err := complement.Hull(gtSide); err != nil {
		return nil, polyErrorf("IntegralSplit", err)
	}

	p.AddCon(beta.Clone())
	return complement, nil
}
