package poly

import (
	"github.com/ezaffanella/pplite/con"
	"github.com/ezaffanella/pplite/gen"
	"github.com/ezaffanella/pplite/linear"
)

// ConIter lazily walks p's minimized constraint system one row at a
// time, generalizing mater_iterator.hh's on-demand materialization so
// callers that only need the first few constraints (e.g. "does this
// have any equality") never pay for materializing the rest.
type ConIter struct {
	p             *Poly
	includeSing   bool
	includeNS     bool
	stage         int // 0=sing, 1=sk, 2=ns
	i             int
}

// ConIterator returns a ConIter over p, triggering Minimize once on
// first use. By default it walks singular and skeleton rows only; call
// WithImplicit(true) to also walk materialized non-skeleton rows.
func (p *Poly) ConIterator() *ConIter {
	return &ConIter{p: p, includeSing: true}
}

// WithImplicit toggles whether materialized (non-skeleton) rows are
// also produced, returning the receiver for chaining.
func (it *ConIter) WithImplicit(on bool) *ConIter {
	it.includeNS = on
	return it
}

// Next advances the iterator and reports whether a row is available.
func (it *ConIter) Next() bool {
	it.p.Minimize()
	for {
		switch it.stage {
		case 0:
			if it.includeSing && it.i < len(it.p.Cs.Sing) {
				return true
			}
			it.stage, it.i = 1, 0
		case 1:
			if it.i < len(it.p.Cs.Sk) {
				return true
			}
			it.stage, it.i = 2, 0
		case 2:
			if it.includeNS && it.i < len(it.p.Cs.NS) {
				return true
			}
			return false
		default:
			return false
		}
	}
}

// Con returns the current row. Call only after Next returns true. A
// materialized non-skeleton row is reconstructed from its skeleton
// support on demand.
func (it *ConIter) Con() con.Con {
	switch it.stage {
	case 0:
		c := it.p.Cs.Sing[it.i]
		it.i++
		return c
	case 1:
		c := it.p.Cs.Sk[it.i]
		it.i++
		return c
	default:
		support := it.p.Cs.NS[it.i]
		it.i++
		return materializeCon(it.p, support)
	}
}

// materializeCon rebuilds the implicit strict constraint supported by
// the given skeleton indices as their sum, which saturates exactly the
// generators saturating every row in support.
func materializeCon(p *Poly, support []int) con.Con {
	var acc con.Con
	first := true
	for _, idx := range support {
		c := p.Cs.Sk[idx]
		if first {
			acc = c.Clone()
			first = false
			continue
		}
		e := acc.Expr.Clone()
		e.Resize(max(e.Len(), c.Expr.Len()))
		for i := 0; i < c.Expr.Len(); i++ {
			e.Set(linear.Var(i), e.Get(linear.Var(i)).Add(c.Expr.Get(linear.Var(i))))
		}
		acc = con.New(e, acc.Inhomo.Add(c.Inhomo), con.SI)
	}
	acc.Kind = con.SI
	return acc
}

// GenIter is the generator-side analogue of ConIter.
type GenIter struct {
	p           *Poly
	includeSing bool
	includeNS   bool
	stage       int
	i           int
}

// GenIterator returns a GenIter over p, triggering Minimize once on
// first use.
func (p *Poly) GenIterator() *GenIter {
	return &GenIter{p: p, includeSing: true}
}

// WithImplicit toggles whether materialized (non-skeleton) generators
// are also produced.
func (it *GenIter) WithImplicit(on bool) *GenIter {
	it.includeNS = on
	return it
}

// Next advances the iterator and reports whether a row is available.
func (it *GenIter) Next() bool {
	it.p.Minimize()
	for {
		switch it.stage {
		case 0:
			if it.includeSing && it.i < len(it.p.Gs.Sing) {
				return true
			}
			it.stage, it.i = 1, 0
		case 1:
			if it.i < len(it.p.Gs.Sk) {
				return true
			}
			it.stage, it.i = 2, 0
		case 2:
			if it.includeNS && it.i < len(it.p.Gs.NS) {
				return true
			}
			return false
		default:
			return false
		}
	}
}

// Gen returns the current row.
func (it *GenIter) Gen() gen.Gen {
	switch it.stage {
	case 0:
		g := it.p.Gs.Sing[it.i]
		it.i++
		return g
	case 1:
		g := it.p.Gs.Sk[it.i]
		it.i++
		return g
	default:
		support := it.p.Gs.NS[it.i]
		it.i++
		return materializeGen(it.p, support)
	}
}

func materializeGen(p *Poly, support []int) gen.Gen {
	var acc gen.Gen
	first := true
	for _, idx := range support {
		g := p.Gs.Sk[idx]
		if first {
			acc = g.Clone()
			first = false
			continue
		}
		e := acc.Expr.Clone()
		e.Resize(max(e.Len(), g.Expr.Len()))
		for i := 0; i < g.Expr.Len(); i++ {
			e.Set(linear.Var(i), e.Get(linear.Var(i)).Add(g.Expr.Get(linear.Var(i))))
		}
		acc = gen.NewPoint(e, acc.Inhomo.Add(g.Inhomo), gen.CPOINT)
	}
	acc.Kind = gen.CPOINT
	return acc
}
