package gen

import (
	"fmt"

	"github.com/ezaffanella/pplite/integer"
	"github.com/ezaffanella/pplite/linear"
)

// Type enumerates the four generator kinds of spec.md §3.
type Type int

const (
	// LINE is the singular generator kind (a bidirectional direction).
	LINE Type = iota
	// RAY is a non-singular, non-strict (closed) direction.
	RAY
	// POINT is a non-singular, strict (closed) vertex; Inhomo is its
	// strictly positive divisor.
	POINT
	// CPOINT is the topological-closure counterpart of POINT: a vertex
	// that only belongs to the closure of an NNC polyhedron.
	CPOINT
)

// String renders the generator type keyword used by the ascii dump
// format.
func (t Type) String() string {
	switch t {
	case LINE:
		return "LINE"
	case RAY:
		return "RAY"
	case POINT:
		return "POINT"
	case CPOINT:
		return "CPOINT"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// IsSingular reports whether t is the singular (LINE) kind.
func (t Type) IsSingular() bool { return t == LINE }

// IsClosure reports whether t is the closure-point kind.
func (t Type) IsClosure() bool { return t == CPOINT }

// IsPoint reports whether t is POINT or CPOINT (a vertex, not a ray/line).
func (t Type) IsPoint() bool { return t == POINT || t == CPOINT }

// Gen is a generator row.
type Gen struct {
	Expr   linear.Expr
	Inhomo integer.Integer // divisor for POINT/CPOINT; unused (kept 0) for LINE/RAY
	Kind   Type
}

// NewLine builds a strong-normalized LINE generator.
func NewLine(expr linear.Expr) Gen {
	g := Gen{Expr: expr, Inhomo: integer.Zero(), Kind: LINE}
	g.StrongNormalize()
	return g
}

// NewRay builds a strong-normalized RAY generator.
func NewRay(expr linear.Expr) Gen {
	g := Gen{Expr: expr, Inhomo: integer.Zero(), Kind: RAY}
	g.StrongNormalize()
	return g
}

// NewPoint builds a strong-normalized POINT generator with the given
// strictly positive divisor.
func NewPoint(expr linear.Expr, divisor integer.Integer, kind Type) Gen {
	g := Gen{Expr: expr, Inhomo: divisor, Kind: kind}
	g.StrongNormalize()
	return g
}

// Origin returns the point at the origin of the given space dimension
// (divisor 1).
func Origin(dim int, kind Type) Gen {
	return Gen{Expr: linear.NewExpr(dim), Inhomo: integer.One(), Kind: kind}
}

// StrongNormalize divides (Expr, Inhomo) through by their common gcd; for
// LINE rows it additionally enforces a positive first nonzero
// coefficient. For POINT/CPOINT rows the divisor is forced positive.
func (g *Gen) StrongNormalize() {
	if g.Kind.IsPoint() && g.Inhomo.Sign() < 0 {
		g.Expr.Negate()
		g.Inhomo = g.Inhomo.Neg()
	}
	_ = linear.StrongNormalize(&g.Expr, &g.Inhomo, g.Kind.IsSingular())
	if g.Kind.IsPoint() && g.Inhomo.Sign() == 0 {
		g.Inhomo = integer.One()
	}
}

// Clone returns a deep copy of g.
func (g Gen) Clone() Gen {
	return Gen{Expr: g.Expr.Clone(), Inhomo: g.Inhomo, Kind: g.Kind}
}

// Dim returns the declared space dimension of g.
func (g Gen) Dim() int { return g.Expr.Len() }

// Equal reports whether g and o are identical after normalization.
func (g Gen) Equal(o Gen) bool {
	return g.Kind == o.Kind && g.Inhomo.Equal(o.Inhomo) && g.Expr.Cmp(o.Expr) == 0
}

// Coefficient returns the coefficient of space dimension v.
func (g Gen) Coefficient(v linear.Var) integer.Integer { return g.Expr.Get(v) }

// String renders g for debugging.
func (g Gen) String() string {
	if g.Kind.IsPoint() {
		return fmt.Sprintf("%s(%s)/%s", g.Kind, g.Expr.String(), g.Inhomo.String())
	}
	return fmt.Sprintf("%s(%s)", g.Kind, g.Expr.String())
}
