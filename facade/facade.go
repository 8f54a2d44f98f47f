// Package facade is the polymorphic front-end over the double-
// description engine (spec.md §4.9): a single Polyhedron type tagged
// by Kind, dispatching every operation to the wrapped poly.Poly.
//
// Boxed and Factored are deliberately thin: this port implements only
// the plain DD domain, so those variants forward every operation
// unchanged, with Boxed additionally caching an interval bounding box.
// Full independent-domain implementations are out of scope.
package facade

import (
	"github.com/ezaffanella/pplite/con"
	"github.com/ezaffanella/pplite/gen"
	"github.com/ezaffanella/pplite/integer"
	"github.com/ezaffanella/pplite/itv"
	"github.com/ezaffanella/pplite/linear"
	"github.com/ezaffanella/pplite/poly"
)

// Kind tags which façade variant a Polyhedron was constructed as.
type Kind int

const (
	// KindPlain dispatches straight to poly.Poly.
	KindPlain Kind = iota
	// KindBoxed additionally maintains a cached interval bounding box.
	KindBoxed
	// KindFactored is the dispatch tag for a factored-product domain;
	// this port has no independent factor tracking, so it forwards to
	// the plain engine like KindPlain.
	KindFactored
	// KindStats accumulates per-operation call counters.
	KindStats
)

// String renders Kind for debug output.
func (k Kind) String() string {
	switch k {
	case KindBoxed:
		return "Boxed"
	case KindFactored:
		return "Factored"
	case KindStats:
		return "Stats"
	default:
		return "Plain"
	}
}

// Polyhedron is the tagged wrapper around a poly.Poly. The zero value
// is not usable; build one with NewPlain, NewBoxed, NewFactored, or
// NewStats.
type Polyhedron struct {
	kind  Kind
	core  *poly.Poly
	box   *itv.BBox // KindBoxed only; nil means stale/uncomputed
	stats *Counters // KindStats only
}

// NewPlain wraps p with no additional bookkeeping.
func NewPlain(p *poly.Poly) *Polyhedron { return &Polyhedron{kind: KindPlain, core: p} }

// NewBoxed wraps p, caching an interval bounding box alongside it.
func NewBoxed(p *poly.Poly) *Polyhedron { return &Polyhedron{kind: KindBoxed, core: p} }

// NewFactored wraps p under the Factored dispatch tag (forwarding
// only; see package doc).
func NewFactored(p *poly.Poly) *Polyhedron { return &Polyhedron{kind: KindFactored, core: p} }

// NewStats wraps p, counting every dispatched operation.
func NewStats(p *poly.Poly) *Polyhedron {
	return &Polyhedron{kind: KindStats, core: p, stats: &Counters{}}
}

// Kind reports which variant ph was built as.
func (ph *Polyhedron) Kind() Kind { return ph.kind }

// Core returns the underlying plain engine, for callers that need to
// drop down to operations the façade does not forward.
func (ph *Polyhedron) Core() *poly.Poly { return ph.core }

// Counters returns the accumulated call counters, or nil if ph is not
// a KindStats façade.
func (ph *Polyhedron) Counters() *Counters { return ph.stats }

// BoundingBox returns the cached interval enclosure of ph, computing
// and caching it on first use or after the last cache invalidation.
// Returns nil for an empty polyhedron. Valid for any Kind, not just
// KindBoxed, but only KindBoxed amortizes the cost across calls.
func (ph *Polyhedron) BoundingBox() *itv.BBox {
	if ph.kind == KindBoxed && ph.box != nil {
		return ph.box
	}
	box := poly.BoundingBox(ph.core)
	if ph.kind == KindBoxed {
		ph.box = box
	}
	return box
}

func (ph *Polyhedron) bump(op string) {
	if ph.stats != nil {
		ph.stats.bump(op)
	}
}

func (ph *Polyhedron) invalidateBox() {
	if ph.kind == KindBoxed {
		ph.box = nil
	}
}

// Clone returns an independent copy of ph, same Kind, fresh counters.
func (ph *Polyhedron) Clone() *Polyhedron {
	cp := &Polyhedron{kind: ph.kind, core: ph.core.Clone()}
	if ph.kind == KindStats {
		cp.stats = &Counters{}
	}
	return cp
}

// IsEmpty reports whether ph is known to be empty.
func (ph *Polyhedron) IsEmpty() bool {
	ph.bump("IsEmpty")
	return ph.core.IsEmpty()
}

// AddCon schedules c for incremental addition.
func (ph *Polyhedron) AddCon(c con.Con) {
	ph.bump("AddCon")
	ph.core.AddCon(c)
	ph.invalidateBox()
}

// AddGen schedules g for incremental addition.
func (ph *Polyhedron) AddGen(g gen.Gen) {
	ph.bump("AddGen")
	ph.core.AddGen(g)
	ph.invalidateBox()
}

// AddCons schedules every constraint in cs.
func (ph *Polyhedron) AddCons(cs []con.Con) {
	ph.bump("AddCons")
	ph.core.AddCons(cs)
	ph.invalidateBox()
}

// AddGens schedules every generator in gs.
func (ph *Polyhedron) AddGens(gs []gen.Gen) {
	ph.bump("AddGens")
	ph.core.AddGens(gs)
	ph.invalidateBox()
}

// Intersect meets ph with oh in place.
func (ph *Polyhedron) Intersect(oh *Polyhedron) error {
	ph.bump("Intersect")
	err := ph.core.Intersect(oh.core)
	ph.invalidateBox()
	return err
}

// Hull joins ph with oh (convex hull) in place.
func (ph *Polyhedron) Hull(oh *Polyhedron) error {
	ph.bump("Hull")
	err := ph.core.Hull(oh.core)
	ph.invalidateBox()
	return err
}

// TopologicalClosure returns the topological closure of ph as a new
// Polyhedron of the same Kind.
func (ph *Polyhedron) TopologicalClosure() *Polyhedron {
	ph.bump("TopologicalClosure")
	return ph.wrap(ph.core.TopologicalClosure())
}

// AddSpaceDims adds n new dimensions.
func (ph *Polyhedron) AddSpaceDims(n int, project bool) {
	ph.bump("AddSpaceDims")
	ph.core.AddSpaceDims(n, project)
	ph.invalidateBox()
}

// RemoveSpaceDims removes the listed dimensions.
func (ph *Polyhedron) RemoveSpaceDims(dims []int) {
	ph.bump("RemoveSpaceDims")
	ph.core.RemoveSpaceDims(dims)
	ph.invalidateBox()
}

// Unconstrain forgets every bound on dimension v.
func (ph *Polyhedron) Unconstrain(v linear.Var) {
	ph.bump("Unconstrain")
	ph.core.Unconstrain(v)
	ph.invalidateBox()
}

// Concatenate appends oh's dimensions after ph's, in place.
func (ph *Polyhedron) Concatenate(oh *Polyhedron) error {
	ph.bump("Concatenate")
	err := ph.core.Concatenate(oh.core)
	ph.invalidateBox()
	return err
}

// MapSpaceDims permutes/projects dimensions per perm.
func (ph *Polyhedron) MapSpaceDims(perm []int) error {
	ph.bump("MapSpaceDims")
	err := ph.core.MapSpaceDims(perm)
	ph.invalidateBox()
	return err
}

// Fold merges group into a single dimension into.
func (ph *Polyhedron) Fold(group []linear.Var, into linear.Var) error {
	ph.bump("Fold")
	err := ph.core.Fold(group, into)
	ph.invalidateBox()
	return err
}

// Expand duplicates src into n fresh dimensions.
func (ph *Polyhedron) Expand(src linear.Var, n int) {
	ph.bump("Expand")
	ph.core.Expand(src, n)
	ph.invalidateBox()
}

// AffineImage applies the forward affine transform v := (expr+inhomo)/denom.
func (ph *Polyhedron) AffineImage(v linear.Var, expr linear.Expr, inhomo, denom integer.Integer) error {
	ph.bump("AffineImage")
	err := ph.core.AffineImage(v, expr, inhomo, denom)
	ph.invalidateBox()
	return err
}

// AffinePreimage applies the inverse affine transform.
func (ph *Polyhedron) AffinePreimage(v linear.Var, expr linear.Expr, inhomo, denom integer.Integer) error {
	ph.bump("AffinePreimage")
	err := ph.core.AffinePreimage(v, expr, inhomo, denom)
	ph.invalidateBox()
	return err
}

// TimeElapse computes the time-elapse of ph with respect to oh.
func (ph *Polyhedron) TimeElapse(oh *Polyhedron) error {
	ph.bump("TimeElapse")
	err := ph.core.TimeElapse(oh.core)
	ph.invalidateBox()
	return err
}

// Split partitions ph by c, mutating ph to the c-satisfying part and
// returning the complement as a new Polyhedron of the same Kind.
func (ph *Polyhedron) Split(c con.Con) *Polyhedron {
	ph.bump("Split")
	comp := ph.core.Split(c)
	ph.invalidateBox()
	return ph.wrap(comp)
}

// RelationWithCon reports ph's saturation relation with c.
func (ph *Polyhedron) RelationWithCon(c con.Con) poly.Rel {
	ph.bump("RelationWithCon")
	return ph.core.RelationWithCon(c)
}

// RelationWithGen reports ph's saturation relation with g.
func (ph *Polyhedron) RelationWithGen(g gen.Gen) poly.Rel {
	ph.bump("RelationWithGen")
	return ph.core.RelationWithGen(g)
}

// NumMinCons returns the minimized constraint count.
func (ph *Polyhedron) NumMinCons() int {
	ph.bump("NumMinCons")
	return ph.core.NumMinCons()
}

// NumMinGens returns the minimized generator count.
func (ph *Polyhedron) NumMinGens() int {
	ph.bump("NumMinGens")
	return ph.core.NumMinGens()
}

// WidenH79 widens ph (the older iterate) against oh in place.
func (ph *Polyhedron) WidenH79(oh *Polyhedron) (*poly.WidenCertificate, error) {
	ph.bump("WidenH79")
	cert, err := ph.core.WidenH79(oh.core)
	ph.invalidateBox()
	return cert, err
}

// WidenBoxedH79 widens ph against oh using the boxed-stabilized variant.
func (ph *Polyhedron) WidenBoxedH79(oh *Polyhedron) (*poly.WidenCertificate, error) {
	ph.bump("WidenBoxedH79")
	cert, err := ph.core.WidenBoxedH79(oh.core)
	ph.invalidateBox()
	return cert, err
}

// WidenBHRZ03 widens ph against oh using the BHRZ03 approximation.
func (ph *Polyhedron) WidenBHRZ03(oh *Polyhedron) (*poly.WidenCertificate, error) {
	ph.bump("WidenBHRZ03")
	cert, err := ph.core.WidenBHRZ03(oh.core)
	ph.invalidateBox()
	return cert, err
}

func (ph *Polyhedron) wrap(p *poly.Poly) *Polyhedron {
	out := &Polyhedron{kind: ph.kind, core: p}
	if ph.kind == KindStats {
		out.stats = &Counters{}
	}
	return out
}
