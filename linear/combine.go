package linear

import "github.com/ezaffanella/pplite/integer"

// Combine implements the row-combination primitive of spec.md §4.1: it
// requires cx != 0 and cy != 0, and overwrites (x, xInh) with
//
//	x'    = (cy'*x    - cx'*y)
//	xInh' = (cy'*xInh - cx'*yInh)
//
// where (cx', cy') = (cx/g, cy/g) and g = gcd(cx, cy). The caller is
// responsible for strong-normalizing the result afterwards (StrongNormalize).
//
// The nine specializations on whether each of cx', cy' is +1, -1, or
// "other" avoid any multiplication when both scale factors collapse to
// ±1 — the overwhelmingly common case in Gaussian elimination and in the
// adjacency-scan combination step of DD conversion.
func Combine(x *Expr, xInh *integer.Integer, y Expr, yInh integer.Integer, cx, cy integer.Integer) error {
	if cx.IsZero() || cy.IsZero() {
		return linearErrorf("Combine", ErrZeroCoefficient)
	}
	g := cx.Gcd(cy)
	cxp, _ := cx.ExactDiv(g)
	cyp, _ := cy.ExactDiv(g)

	n := x.Len()
	if y.Len() > n {
		n = y.Len()
	}
	x.Resize(n)

	switch combineCase(cxp, cyp) {
	case caseOnePlusOne: // cy'=1, cx'=1: x' = x - y
		for i := 0; i < n; i++ {
			x.coeffs[i] = x.Get(Var(i)).Sub(y.Get(Var(i)))
		}
		*xInh = xInh.Sub(yInh)
	case caseOneMinusOne: // cy'=1, cx'=-1: x' = x + y
		for i := 0; i < n; i++ {
			x.coeffs[i] = x.Get(Var(i)).Add(y.Get(Var(i)))
		}
		*xInh = xInh.Add(yInh)
	case caseMinusOnePlusOne: // cy'=-1, cx'=1: x' = -x - y
		for i := 0; i < n; i++ {
			x.coeffs[i] = x.Get(Var(i)).Add(y.Get(Var(i))).Neg()
		}
		*xInh = xInh.Add(yInh).Neg()
	case caseMinusOneMinusOne: // cy'=-1, cx'=-1: x' = y - x
		for i := 0; i < n; i++ {
			x.coeffs[i] = y.Get(Var(i)).Sub(x.Get(Var(i)))
		}
		*xInh = yInh.Sub(*xInh)
	case caseOneOther: // cy'=1, cx' general: x' = x - cx'*y
		for i := 0; i < n; i++ {
			x.coeffs[i] = x.Get(Var(i)).Sub(cxp.Mul(y.Get(Var(i))))
		}
		*xInh = xInh.Sub(cxp.Mul(yInh))
	case caseMinusOneOther: // cy'=-1, cx' general: x' = -x - cx'*y
		for i := 0; i < n; i++ {
			x.coeffs[i] = x.Get(Var(i)).Add(cxp.Mul(y.Get(Var(i)))).Neg()
		}
		*xInh = xInh.Add(cxp.Mul(yInh)).Neg()
	case caseOtherOne: // cx'=1, cy' general: x' = cy'*x - y
		for i := 0; i < n; i++ {
			x.coeffs[i] = cyp.Mul(x.Get(Var(i))).Sub(y.Get(Var(i)))
		}
		*xInh = cyp.Mul(*xInh).Sub(yInh)
	case caseOtherMinusOne: // cx'=-1, cy' general: x' = cy'*x + y
		for i := 0; i < n; i++ {
			x.coeffs[i] = cyp.Mul(x.Get(Var(i))).Add(y.Get(Var(i)))
		}
		*xInh = cyp.Mul(*xInh).Add(yInh)
	default: // both general: x' = cy'*x - cx'*y
		for i := 0; i < n; i++ {
			x.coeffs[i] = cyp.Mul(x.Get(Var(i))).Sub(cxp.Mul(y.Get(Var(i))))
		}
		*xInh = cyp.Mul(*xInh).Sub(cxp.Mul(yInh))
	}
	return nil
}

type combineKind int

const (
	caseGeneral combineKind = iota
	caseOnePlusOne
	caseOneMinusOne
	caseMinusOnePlusOne
	caseMinusOneMinusOne
	caseOneOther
	caseMinusOneOther
	caseOtherOne
	caseOtherMinusOne
)

// combineCase classifies the (cx', cy') pair into one of the 9 cases
// keyed by a 4-bit mask of "is cx' == 1", "is cx' == -1", "is cy' == 1",
// "is cy' == -1", matching spec.md §4.1's "switching on a 4-bit mask".
func combineCase(cxp, cyp integer.Integer) combineKind {
	const (
		bitCxOne = 1 << iota
		bitCxMinusOne
		bitCyOne
		bitCyMinusOne
	)
	mask := 0
	if cxp.IsOne() {
		mask |= bitCxOne
	}
	if cxp.IsMinusOne() {
		mask |= bitCxMinusOne
	}
	if cyp.IsOne() {
		mask |= bitCyOne
	}
	if cyp.IsMinusOne() {
		mask |= bitCyMinusOne
	}

	switch mask {
	case bitCxOne | bitCyOne:
		return caseOnePlusOne
	case bitCxMinusOne | bitCyOne:
		return caseOneMinusOne
	case bitCxOne | bitCyMinusOne:
		return caseMinusOnePlusOne
	case bitCxMinusOne | bitCyMinusOne:
		return caseMinusOneMinusOne
	case bitCyOne:
		return caseOneOther
	case bitCyMinusOne:
		return caseMinusOneOther
	case bitCxOne:
		return caseOtherOne
	case bitCxMinusOne:
		return caseOtherMinusOne
	default:
		return caseGeneral
	}
}

// StrongNormalize divides (e, inh) through by gcd(|coefficients|, |inh|)
// and, if isEquality is true, negates the result so its first nonzero
// coefficient (or, if all coefficients are zero, inh itself) is
// positive — spec.md §4.1.
func StrongNormalize(e *Expr, inh *integer.Integer, isEquality bool) error {
	g := e.Gcd().Gcd(*inh)
	if !g.IsZero() && !g.IsOne() {
		if err := e.DivideExact(g); err != nil {
			return linearErrorf("StrongNormalize", err)
		}
		q, err := inh.ExactDiv(g)
		if err != nil {
			return linearErrorf("StrongNormalize", err)
		}
		*inh = q
	}
	if isEquality {
		negate := false
		if v, ok := e.LastFirstNonzero(); ok {
			negate = v.Sign() < 0
		} else {
			negate = inh.Sign() < 0
		}
		if negate {
			e.Negate()
			*inh = inh.Neg()
		}
	}
	return nil
}

// LastFirstNonzero returns the first nonzero coefficient scanning from
// index 0 upward, and true, or (zero, false) if e is the zero
// expression.
func (e Expr) LastFirstNonzero() (integer.Integer, bool) {
	for _, c := range e.coeffs {
		if !c.IsZero() {
			return c, true
		}
	}
	return integer.Zero(), false
}
