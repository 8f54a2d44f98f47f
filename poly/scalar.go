package poly

import (
	"github.com/ezaffanella/pplite/con"
	"github.com/ezaffanella/pplite/gen"
	"github.com/ezaffanella/pplite/integer"
)

// scalarSign computes the sign of the scalar product of a generator
// against a constraint: sum_i c.Expr[i]*g.Expr[i] plus the inhomogeneous
// cross terms, generalizing Scalar_Prod.hh's sp_sign for both equality
// and ray/point generators.
//
// For a point/closure-point g with divisor d (g.Inhomo), the product
// scales the constraint's inhomogeneous term by d; for a ray or line,
// the inhomogeneous term does not participate.
func scalarSign(c con.Con, g gen.Gen) int {
	return scalarValue(c, g).Sign()
}

// scalarValue returns the exact scalar product value (not just its
// sign), needed by combination steps that must compute new rows, not
// merely classify old ones.
func scalarValue(c con.Con, g gen.Gen) integer.Integer {
	sum := c.Expr.DotProduct(g.Expr)
	if g.Kind.IsPoint() {
		sum = sum.Add(c.Inhomo.Mul(g.Inhomo))
	}
	return sum
}

// scalarSignStrict accounts for strict inequalities and closure points
// in NNC topology: a closure point can never strictly satisfy a strict
// constraint, even when the raw scalar product is positive, because it
// approaches the boundary without reaching the interior.
func scalarSignStrict(c con.Con, g gen.Gen) int {
	s := scalarSign(c, g)
	if s > 0 && c.Kind == con.SI && g.Kind == gen.CPOINT {
		return 0
	}
	return s
}
