package con

import (
	"fmt"

	"github.com/ezaffanella/pplite/integer"
	"github.com/ezaffanella/pplite/linear"
)

// Type enumerates the three constraint kinds of spec.md §3.
type Type int

const (
	// EQ means <expr, x> + inhomo == 0.
	EQ Type = iota
	// NSI means <expr, x> + inhomo >= 0 (non-strict inequality).
	NSI
	// SI means <expr, x> + inhomo > 0 (strict inequality).
	SI
)

// String renders the constraint type keyword used by the ascii dump
// format (spec.md §6.2).
func (t Type) String() string {
	switch t {
	case EQ:
		return "EQ"
	case NSI:
		return "NSI"
	case SI:
		return "SI"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// IsSingular reports whether t is the singular (equality) kind.
func (t Type) IsSingular() bool { return t == EQ }

// IsStrict reports whether t is the strict-inequality kind.
func (t Type) IsStrict() bool { return t == SI }

// Con is a constraint row: <Expr, x> + Inhomo {relation} 0 where the
// relation is determined by Kind.
type Con struct {
	Expr   linear.Expr
	Inhomo integer.Integer
	Kind   Type
}

// New builds a Con and strong-normalizes it (spec.md §4.1).
func New(expr linear.Expr, inhomo integer.Integer, kind Type) Con {
	c := Con{Expr: expr, Inhomo: inhomo, Kind: kind}
	c.StrongNormalize()
	return c
}

// False returns the canonical 0-dimensional false constraint "1 = 0",
// used to represent an EMPTY polyhedron (spec.md §3 invariant 7).
func False() Con {
	return Con{Expr: linear.NewExpr(0), Inhomo: integer.One(), Kind: EQ}
}

// IsFalse reports whether c is exactly the canonical false constraint.
func (c Con) IsFalse() bool {
	return c.Kind == EQ && c.Expr.IsZero() && c.Inhomo.IsOne()
}

// StrictPositivity returns the canonical strict-positivity constraint
// "1 > 0" of the given space dimension, used as the implicit NNC
// positivity witness.
func StrictPositivity(dim int) Con {
	return Con{Expr: linear.NewExpr(dim), Inhomo: integer.One(), Kind: SI}
}

// IsStrictPositivity reports whether c is exactly the canonical strict
// positivity constraint (zero expression, inhomo == 1, strict).
func (c Con) IsStrictPositivity() bool {
	return c.Kind == SI && c.Expr.IsZero() && c.Inhomo.IsOne()
}

// StrongNormalize divides (Expr, Inhomo) by their common gcd and, for
// equalities, flips sign so the first nonzero coefficient (or Inhomo,
// if Expr is zero) is positive.
func (c *Con) StrongNormalize() {
	_ = linear.StrongNormalize(&c.Expr, &c.Inhomo, c.Kind == EQ)
}

// Clone returns a deep copy of c.
func (c Con) Clone() Con {
	return Con{Expr: c.Expr.Clone(), Inhomo: c.Inhomo, Kind: c.Kind}
}

// Dim returns the declared space dimension of c.
func (c Con) Dim() int { return c.Expr.Len() }

// Equal reports whether c and o are identical after normalization
// (same kind, same expression, same inhomogeneous term).
func (c Con) Equal(o Con) bool {
	return c.Kind == o.Kind && c.Inhomo.Equal(o.Inhomo) && c.Expr.Cmp(o.Expr) == 0
}

// Coefficient returns the coefficient of space dimension v.
func (c Con) Coefficient(v linear.Var) integer.Integer { return c.Expr.Get(v) }

// String renders c for debugging, e.g. "2 x0 - x1 + 3 >= 0".
func (c Con) String() string {
	rel := map[Type]string{EQ: "= 0", NSI: ">= 0", SI: "> 0"}[c.Kind]
	return fmt.Sprintf("%s + %s %s", c.Expr.String(), c.Inhomo.String(), rel)
}
