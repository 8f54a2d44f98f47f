package linear

import (
	"strings"

	"github.com/ezaffanella/pplite/integer"
)

// Expr is a dense, finite sequence of Integer coefficients indexed by
// Var. Reading at an index beyond Len() yields integer.Zero(); this lets
// two Exprs of different lengths be combined or compared as if both had
// been zero-extended to the larger length.
type Expr struct {
	coeffs []integer.Integer
}

// NewExpr builds an Expr of the given space dimension, all coefficients
// zero.
func NewExpr(dim int) Expr {
	return Expr{coeffs: make([]integer.Integer, dim)}
}

// FromSlice builds an Expr that takes ownership of coeffs (callers must
// not mutate coeffs afterwards).
func FromSlice(coeffs []integer.Integer) Expr {
	return Expr{coeffs: coeffs}
}

// Len returns the declared space dimension of e (not necessarily the
// highest nonzero coefficient's index plus one).
func (e Expr) Len() int { return len(e.coeffs) }

// Get returns the coefficient of Var v, or zero if v is out of range.
func (e Expr) Get(v Var) integer.Integer {
	i := v.ID()
	if i < 0 || i >= len(e.coeffs) {
		return integer.Zero()
	}
	return e.coeffs[i]
}

// Set assigns the coefficient of Var v, growing e if necessary.
func (e *Expr) Set(v Var, val integer.Integer) {
	i := v.ID()
	if i < 0 {
		return
	}
	if i >= len(e.coeffs) {
		grown := make([]integer.Integer, i+1)
		copy(grown, e.coeffs)
		e.coeffs = grown
	}
	e.coeffs[i] = val
}

// Resize grows or truncates e to exactly dim coefficients, zero-filling
// on growth.
func (e *Expr) Resize(dim int) {
	if dim == len(e.coeffs) {
		return
	}
	grown := make([]integer.Integer, dim)
	copy(grown, e.coeffs)
	e.coeffs = grown
}

// Clone returns a deep, independent copy of e.
func (e Expr) Clone() Expr {
	cp := make([]integer.Integer, len(e.coeffs))
	copy(cp, e.coeffs)
	return Expr{coeffs: cp}
}

// IsZero reports whether every coefficient of e is zero.
func (e Expr) IsZero() bool {
	for _, c := range e.coeffs {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

// LastVar returns the highest Var with a nonzero coefficient and true,
// or (0, false) if e is the zero expression.
func (e Expr) LastVar() (Var, bool) {
	for i := len(e.coeffs) - 1; i >= 0; i-- {
		if !e.coeffs[i].IsZero() {
			return Var(i), true
		}
	}
	return 0, false
}

// Gcd returns the gcd of the absolute values of every coefficient of e
// (0 if e is the zero expression).
func (e Expr) Gcd() integer.Integer {
	g := integer.Zero()
	for _, c := range e.coeffs {
		g = g.Gcd(c)
	}
	return g
}

// DotProduct returns <e, o>, zero-extending the shorter operand.
func (e Expr) DotProduct(o Expr) integer.Integer {
	n := e.Len()
	if o.Len() > n {
		n = o.Len()
	}
	sum := integer.Zero()
	for i := 0; i < n; i++ {
		sum = sum.Add(e.Get(Var(i)).Mul(o.Get(Var(i))))
	}
	return sum
}

// Negate negates every coefficient of e in place and returns e.
func (e *Expr) Negate() *Expr {
	for i := range e.coeffs {
		e.coeffs[i] = e.coeffs[i].Neg()
	}
	return e
}

// DivideExact divides every coefficient of e by d in place (d must
// evenly divide every nonzero coefficient; callers pass d == e.Gcd() or
// a divisor of it).
func (e *Expr) DivideExact(d integer.Integer) error {
	if d.IsOne() {
		return nil
	}
	for i, c := range e.coeffs {
		if c.IsZero() {
			continue
		}
		q, err := c.ExactDiv(d)
		if err != nil {
			return linearErrorf("DivideExact", err)
		}
		e.coeffs[i] = q
	}
	return nil
}

// Cmp compares e and o lexicographically on coefficients, treating a
// shorter expression as zero-extended; this is consistent for Exprs of
// differing declared length (spec.md §4.1 "Compare").
func (e Expr) Cmp(o Expr) int {
	n := e.Len()
	if o.Len() > n {
		n = o.Len()
	}
	for i := 0; i < n; i++ {
		if c := e.Get(Var(i)).Cmp(o.Get(Var(i))); c != 0 {
			return c
		}
	}
	return 0
}

// String renders e as a space-separated coefficient list, for debugging
// and ascii dump.
func (e Expr) String() string {
	parts := make([]string, len(e.coeffs))
	for i, c := range e.coeffs {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Coefficients returns the backing slice directly; callers in this
// module use it for iteration without per-index bounds checks. External
// callers must treat the result as read-only.
func (e Expr) Coefficients() []integer.Integer { return e.coeffs }
