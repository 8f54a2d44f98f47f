package poly

import (
	"github.com/ezaffanella/pplite/con"
	"github.com/ezaffanella/pplite/gen"
	"github.com/ezaffanella/pplite/integer"
	"github.com/ezaffanella/pplite/linear"
	"github.com/ezaffanella/pplite/sat"
)

// Topology selects between topologically closed (C) and not-necessarily-
// closed (NNC) polyhedra.
type Topology int

const (
	// Closed polyhedra admit no strict inequalities or closure points.
	Closed Topology = iota
	// NNC polyhedra admit strict inequalities and closure points.
	NNC
)

// Status is the lifecycle state of a Poly (spec.md §4.4 "state machine").
type Status int

const (
	// Empty means the polyhedron contains no point; cs holds only the
	// canonical false constraint and gs is empty.
	Empty Status = iota
	// Minimized means both systems are mutually consistent, irredundant
	// representations of the same polyhedron.
	Minimized
	// Pending means pending rows have been added since the last
	// Minimize and conversion has not yet run.
	Pending
)

// String renders Status for debug/dump output.
func (s Status) String() string {
	switch s {
	case Empty:
		return "EMPTY"
	case Minimized:
		return "MINIMIZED"
	case Pending:
		return "PENDING"
	default:
		return "UNKNOWN"
	}
}

// String renders Topology for debug/dump output.
func (t Topology) String() string {
	if t == NNC {
		return "NNC"
	}
	return "CLOSED"
}

// ConSystem is the constraint-side system: singular rows (equalities),
// skeleton rows (irredundant inequalities), and non-skeleton supports
// (sets of skeleton indices materializing a strict constraint).
type ConSystem struct {
	Sing []con.Con
	Sk   []con.Con
	NS   [][]int // each NS[k] is a sorted, duplicate-free set of indices into Sk
}

// GenSystem is the generator-side system: singular rows (lines),
// skeleton rows (rays, closure-points, points), and non-skeleton
// supports.
type GenSystem struct {
	Sing []gen.Gen
	Sk   []gen.Gen
	NS   [][]int
}

// Poly is the double-description pair: a constraint system and a
// generator system of the same polyhedron, linked by two saturation
// matrices, plus pending rows awaiting conversion.
//
// Invariants (spec.md §3, enforced after Minimize):
//  1. Sing rows are strong-normalized and linearly independent.
//  2. Sk contains no singular row and no redundant row.
//  3. Every NS[k] refers only to Sk indices and is minimal; a
//     generator-side NS row may have size 1 (a skeleton point's
//     coincident closure point), a constraint-side NS row always pairs
//     a non-strict skeleton row with the positivity witness.
//  4. SatG == Transpose(SatC); SatC has rows indexed by cs.Sk and
//     columns by gs.Sk (and symmetrically for SatG).
//  5. Closed polyhedra have empty cs.NS and gs.NS.
//  6. NNC polyhedra carry exactly one positivity witness: either a
//     skeleton strict positivity in cs.Sk, or an empty-face cutter in
//     cs.NS.
//  7. Empty is represented by cs.Sing == {false constraint}, everything
//     else empty.
type Poly struct {
	Topology Topology
	Dim      int
	Status   Status

	Cs ConSystem
	Gs GenSystem

	SatC *sat.Sat // rows indexed by cs.Sk, columns by gs.Sk
	SatG *sat.Sat // rows indexed by gs.Sk, columns by cs.Sk

	CsPending []con.Con
	GsPending []gen.Gen
}

// NewUniverse returns the minimized universe polyhedron of the given
// space dimension (no constraints, one line per dimension plus the
// origin point, the NNC positivity implicit).
func NewUniverse(topology Topology, dim int) *Poly {
	p := &Poly{Topology: topology, Dim: dim, Status: Minimized}
	p.Gs.Sing = make([]gen.Gen, 0, dim)
	for i := 0; i < dim; i++ {
		p.Gs.Sing = append(p.Gs.Sing, gen.NewLine(unitExpr(dim, i)))
	}
	originKind := gen.POINT
	p.Gs.Sk = []gen.Gen{gen.Origin(dim, originKind)}
	if topology == NNC {
		p.Cs.Sk = []con.Con{con.StrictPositivity(dim)}
	}
	p.SatC = sat.New(len(p.Gs.Sk))
	p.SatG = sat.New(len(p.Cs.Sk))
	for range p.Cs.Sk {
		p.SatC.AddRow()
	}
	p.SatG.AddRow() // the origin point, always the sole entry of gs.Sk
	p.rebuildNonSkeletonSupports()
	return p
}

// NewEmpty returns the minimized empty polyhedron of the given space
// dimension (spec.md §3 invariant 7).
func NewEmpty(topology Topology, dim int) *Poly {
	p := &Poly{Topology: topology, Dim: dim, Status: Empty}
	p.Cs.Sing = []con.Con{con.False()}
	p.SatC = sat.New(0)
	p.SatG = sat.New(0)
	return p
}

// IsEmpty reports whether p is known to be empty without triggering
// minimization (a Pending polyhedron might still turn out empty once
// minimized; call Minimize first for a definitive answer).
func (p *Poly) IsEmpty() bool { return p.Status == Empty }

// Clone returns a deep, independent copy of p (value semantics for the
// polymorphic façade's Copy, spec.md §4.9).
func (p *Poly) Clone() *Poly {
	cp := &Poly{Topology: p.Topology, Dim: p.Dim, Status: p.Status}
	cp.Cs = cloneConSystem(p.Cs)
	cp.Gs = cloneGenSystem(p.Gs)
	if p.SatC != nil {
		cp.SatC = p.SatC.Clone()
	}
	if p.SatG != nil {
		cp.SatG = p.SatG.Clone()
	}
	cp.CsPending = cloneCons(p.CsPending)
	cp.GsPending = cloneGens(p.GsPending)
	return cp
}

func cloneConSystem(c ConSystem) ConSystem {
	out := ConSystem{Sing: cloneCons(c.Sing), Sk: cloneCons(c.Sk)}
	out.NS = make([][]int, len(c.NS))
	for i, ns := range c.NS {
		out.NS[i] = append([]int(nil), ns...)
	}
	return out
}

func cloneGenSystem(g GenSystem) GenSystem {
	out := GenSystem{Sing: cloneGens(g.Sing), Sk: cloneGens(g.Sk)}
	out.NS = make([][]int, len(g.NS))
	for i, ns := range g.NS {
		out.NS[i] = append([]int(nil), ns...)
	}
	return out
}

func cloneCons(cs []con.Con) []con.Con {
	out := make([]con.Con, len(cs))
	for i, c := range cs {
		out[i] = c.Clone()
	}
	return out
}

func cloneGens(gs []gen.Gen) []gen.Gen {
	out := make([]gen.Gen, len(gs))
	for i, g := range gs {
		out[i] = g.Clone()
	}
	return out
}

// NumMinGens returns the number of skeleton+materialized generators in
// the minimized representation (Minimize is called if needed).
func (p *Poly) NumMinGens() int {
	p.Minimize()
	if p.Status == Empty {
		return 0
	}
	return len(p.Gs.Sing) + len(p.Gs.Sk) + len(p.Gs.NS)
}

// NumMinCons returns the number of skeleton+materialized constraints in
// the minimized representation.
func (p *Poly) NumMinCons() int {
	p.Minimize()
	if p.Status == Empty {
		return 1
	}
	return len(p.Cs.Sing) + len(p.Cs.Sk) + len(p.Cs.NS)
}

// AddCon schedules c for incremental addition; any pending generator
// additions are flushed (converted) first, per spec.md §4.4's state
// machine note that pending may hold constraints or generators but not
// both simultaneously.
func (p *Poly) AddCon(c con.Con) {
	assertDim("AddCon", c.Dim(), p.Dim)
	if p.Status == Empty {
		return
	}
	if len(p.GsPending) > 0 {
		p.Minimize()
	}
	c.StrongNormalize()
	p.CsPending = append(p.CsPending, c)
	if p.Status == Minimized {
		p.Status = Pending
	}
}

// AddGen schedules g for incremental addition; symmetric to AddCon.
func (p *Poly) AddGen(g gen.Gen) {
	assertDim("AddGen", g.Dim(), p.Dim)
	if p.Status == Empty {
		// Adding a generator to an empty polyhedron materializes a new
		// universe-of-one-point polyhedron with g as its sole generator.
		*p = *pointOnly(p.Topology, p.Dim, g)
		return
	}
	if len(p.CsPending) > 0 {
		p.Minimize()
	}
	g.StrongNormalize()
	p.GsPending = append(p.GsPending, g)
	if p.Status == Minimized {
		p.Status = Pending
	}
}

func pointOnly(topology Topology, dim int, g gen.Gen) *Poly {
	p := &Poly{Topology: topology, Dim: dim, Status: Pending}
	p.GsPending = []gen.Gen{g}
	p.SatC = sat.New(0)
	p.SatG = sat.New(0)
	return p
}

// AddCons schedules every constraint in cs.
func (p *Poly) AddCons(cs []con.Con) {
	for _, c := range cs {
		p.AddCon(c)
	}
}

// AddGens schedules every generator in gs.
func (p *Poly) AddGens(gs []gen.Gen) {
	for _, g := range gs {
		p.AddGen(g)
	}
}

// unitExpr builds the expression with coefficient 1 on variable i and 0
// elsewhere, used to seed the lines/rays of the universe polyhedron.
func unitExpr(dim, i int) linear.Expr {
	e := linear.NewExpr(dim)
	e.Set(linear.Var(i), integer.One())
	return e
}
