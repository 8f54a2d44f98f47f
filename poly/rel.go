package poly

import (
	"strings"

	"github.com/ezaffanella/pplite/con"
	"github.com/ezaffanella/pplite/gen"
)

// Rel is a bitmask describing how a polyhedron relates to a query
// constraint or generator, generalizing Poly_Rel.hh/.cc.
type Rel uint8

const (
	// RelNothing means none of the other bits hold.
	RelNothing Rel = 0
	// RelSubsumes means the polyhedron's points all satisfy the query
	// constraint (or: the query generator is implied by the system).
	RelSubsumes Rel = 1 << iota
	// RelIsDisjoint means no point of the polyhedron satisfies the
	// query.
	RelIsDisjoint
	// RelStrictlySubsumes means RelSubsumes holds and at least one
	// point lies strictly inside (relevant to strict constraints only).
	RelStrictlySubsumes
	// RelSaturates means every generator of the polyhedron saturates
	// the query constraint (equality on the whole polyhedron).
	RelSaturates
)

// String renders the set bits for debug output, e.g. "SUBSUMES|SATURATES".
func (r Rel) String() string {
	if r == RelNothing {
		return "NOTHING"
	}
	var parts []string
	for _, b := range []struct {
		bit  Rel
		name string
	}{
		{RelSubsumes, "SUBSUMES"},
		{RelIsDisjoint, "IS_DISJOINT"},
		{RelStrictlySubsumes, "STRICTLY_SUBSUMES"},
		{RelSaturates, "SATURATES"},
	} {
		if r&b.bit != 0 {
			parts = append(parts, b.name)
		}
	}
	return strings.Join(parts, "|")
}

// Has reports whether all bits of mask are set in r.
func (r Rel) Has(mask Rel) bool { return r&mask == mask }

// RelationWithCon classifies p's relationship to a single constraint c
// by partitioning the generator skeleton against it, without mutating p.
func (p *Poly) RelationWithCon(c con.Con) Rel {
	p.Minimize()
	if p.Status == Empty {
		return RelSubsumes | RelSaturates
	}
	var r Rel
	allSat, anyNeg, anyPos, anyStrictPos, pointOnBoundary := true, false, false, false, false
	for _, g := range p.Gs.Sk {
		s := scalarSignStrict(c, g)
		switch {
		case s < 0:
			anyNeg = true
			allSat = false
		case s == 0:
			if g.Kind == gen.POINT {
				pointOnBoundary = true
			}
		default:
			allSat = false
			anyPos = true
			if c.Kind.IsStrict() {
				anyStrictPos = true
			}
		}
	}
	for _, sg := range p.Gs.Sing {
		// a line not parallel to the hyperplane reaches both of its sides
		if scalarSign(c, sg) != 0 {
			allSat = false
			anyNeg, anyPos = true, true
		}
	}
	if allSat {
		r |= RelSaturates | RelSubsumes
	} else if !anyNeg && c.Kind != con.EQ {
		r |= RelSubsumes
		if anyStrictPos {
			r |= RelStrictlySubsumes
		}
	}
	if !anyPos && !(pointOnBoundary && !c.Kind.IsStrict()) && !r.Has(RelSubsumes) {
		r |= RelIsDisjoint
	}
	return r
}

// RelationWithGen classifies how g relates to p's constraint system:
// whether g satisfies every constraint (is a point of p) and whether it
// saturates every constraint (lies on every facet, i.e. equals or is
// parallel to every boundary).
func (p *Poly) RelationWithGen(g gen.Gen) Rel {
	p.Minimize()
	if p.Status == Empty {
		return RelIsDisjoint
	}
	var r Rel
	allSat, anyNeg := true, false
	for _, c := range p.Cs.Sk {
		s := scalarSignStrict(c, g)
		if s != 0 {
			allSat = false
		}
		if s < 0 {
			anyNeg = true
		}
	}
	for _, sc := range p.Cs.Sing {
		if scalarSign(sc, g) != 0 {
			allSat = false
			anyNeg = true
		}
	}
	if allSat {
		r |= RelSaturates | RelSubsumes
	} else if !anyNeg {
		r |= RelSubsumes
	} else {
		r |= RelIsDisjoint
	}
	return r
}
