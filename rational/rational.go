package rational

import (
	"fmt"
	"math/big"

	"github.com/ezaffanella/pplite/integer"
)

// Rational is a canonical (numerator, denominator) pair: denominator is
// always strictly positive and gcd(|numerator|, denominator) == 1. The
// zero value is 0/1.
type Rational struct {
	num integer.Integer
	den integer.Integer
}

// New builds a canonical Rational from num/den. It returns ErrDivByZero
// if den is zero.
func New(num, den integer.Integer) (Rational, error) {
	if den.IsZero() {
		return Rational{}, rationalErrorf("New", ErrDivByZero)
	}
	return normalize(num, den), nil
}

// FromInt builds the Rational x/1.
func FromInt(x integer.Integer) Rational {
	return Rational{num: x, den: integer.One()}
}

// FromInt64 builds the Rational n/d, panicking on d == 0 (a programming
// error per spec.md §7 "precondition violation").
func FromInt64(n, d int64) Rational {
	r, err := New(integer.NewFromInt64(n), integer.NewFromInt64(d))
	if err != nil {
		panic(err)
	}
	return r
}

func normalize(num, den integer.Integer) Rational {
	if den.Sign() < 0 {
		num, den = num.Neg(), den.Neg()
	}
	if num.IsZero() {
		return Rational{num: integer.Zero(), den: integer.One()}
	}
	g := num.Gcd(den)
	n, _ := num.ExactDiv(g)
	d, _ := den.ExactDiv(g)
	return Rational{num: n, den: d}
}

// Num returns the canonical numerator.
func (r Rational) Num() integer.Integer { return r.num }

// Den returns the canonical (always positive) denominator.
func (r Rational) Den() integer.Integer { return r.den }

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool { return r.num.IsZero() }

// Sign returns the sign of r.
func (r Rational) Sign() int { return r.num.Sign() }

// Add returns r + s.
func (r Rational) Add(s Rational) Rational {
	return normalize(r.num.Mul(s.den).Add(s.num.Mul(r.den)), r.den.Mul(s.den))
}

// Sub returns r - s.
func (r Rational) Sub(s Rational) Rational {
	return normalize(r.num.Mul(s.den).Sub(s.num.Mul(r.den)), r.den.Mul(s.den))
}

// Mul returns r * s.
func (r Rational) Mul(s Rational) Rational {
	return normalize(r.num.Mul(s.num), r.den.Mul(s.den))
}

// Neg returns -r.
func (r Rational) Neg() Rational { return Rational{num: r.num.Neg(), den: r.den} }

// Inv returns 1/r. Panics if r == 0 (precondition violation).
func (r Rational) Inv() Rational {
	if r.num.IsZero() {
		panic(rationalErrorf("Inv", ErrDivByZero))
	}
	return normalize(r.den, r.num)
}

// Div returns r / s.
func (r Rational) Div(s Rational) Rational { return r.Mul(s.Inv()) }

// Cmp compares r and s, returning -1, 0, +1.
func (r Rational) Cmp(s Rational) int {
	lhs := r.num.Mul(s.den)
	rhs := s.num.Mul(r.den)
	return lhs.Cmp(rhs)
}

// Equal reports whether r == s.
func (r Rational) Equal(s Rational) bool { return r.Cmp(s) == 0 }

// RoundDown returns the greatest Integer <= r (floor).
func (r Rational) RoundDown() integer.Integer {
	q, rem := quoRem(r.num, r.den)
	if rem.Sign() < 0 {
		q = q.Sub(integer.One())
	}
	return q
}

// RoundUp returns the least Integer >= r (ceiling).
func (r Rational) RoundUp() integer.Integer {
	q, rem := quoRem(r.num, r.den)
	if rem.Sign() > 0 {
		q = q.Add(integer.One())
	}
	return q
}

// quoRem performs truncated division num = q*den + rem, matching Go's
// big.Int.QuoRem truncation-toward-zero semantics; den is always > 0 in
// this package's canonical form.
func quoRem(num, den integer.Integer) (integer.Integer, integer.Integer) {
	var q, rem big.Int
	q.QuoRem(num.BigInt(), den.BigInt(), &rem)
	return integer.FromBigInt(&q), integer.FromBigInt(&rem)
}

// FromFloat64 converts f to the exact Rational it represents in IEEE-754
// binary64 (no rounding beyond what f already carries), used by the H/V
// "real" coefficient format (spec.md §6.3) which must convert doubles to
// exact rationals rather than re-rounding through decimal.
func FromFloat64(f float64) (Rational, error) {
	bf := new(big.Rat)
	if bf.SetFloat64(f) == nil {
		return Rational{}, rationalErrorf("FromFloat64", ErrDivByZero)
	}
	return normalize(integer.FromBigInt(bf.Num()), integer.FromBigInt(bf.Denom())), nil
}

// Float64 returns the nearest float64 approximation of r.
func (r Rational) Float64() float64 {
	return r.num.Float64() / r.den.Float64()
}

// String renders r as "num/den", or just "num" when the denominator is 1.
func (r Rational) String() string {
	if r.den.IsOne() {
		return r.num.String()
	}
	return fmt.Sprintf("%s/%s", r.num.String(), r.den.String())
}
