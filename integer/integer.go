package integer

import (
	"math/big"

	"github.com/remyoudompheng/bigfft"
)

// bigfftThreshold is the operand bit-length above which Mul dispatches to
// bigfft's Schönhage–Strassen multiplication instead of math/big's
// schoolbook/Karatsuba path. 4096 bits mirrors the crossover range where
// FFT-based multiplication starts to win for this class of workload.
const bigfftThreshold = 1 << 12

// Integer is an arbitrary-precision signed integer. The zero value is a
// valid representation of 0. Integer never represents ±∞.
type Integer struct {
	v big.Int
}

// NewFromInt64 builds an Integer from a native int64.
func NewFromInt64(x int64) Integer {
	var i Integer
	i.v.SetInt64(x)
	return i
}

// NewFromString parses a base-10 (optionally signed) string into an
// Integer. ok is false if s is not a valid integer literal.
func NewFromString(s string) (Integer, bool) {
	var i Integer
	_, ok := i.v.SetString(s, 10)
	return i, ok
}

// Zero returns the additive identity.
func Zero() Integer { return Integer{} }

// One returns the multiplicative identity.
func One() Integer { return NewFromInt64(1) }

// IsZero reports whether i == 0.
func (i Integer) IsZero() bool { return i.v.Sign() == 0 }

// IsOne reports whether i == 1.
func (i Integer) IsOne() bool { return i.v.Cmp(big.NewInt(1)) == 0 }

// IsMinusOne reports whether i == -1.
func (i Integer) IsMinusOne() bool { return i.v.Cmp(big.NewInt(-1)) == 0 }

// Sign returns -1, 0, or +1 according to the sign of i.
func (i Integer) Sign() int { return i.v.Sign() }

// Cmp compares i and j, returning a value analogous to big.Int.Cmp.
func (i Integer) Cmp(j Integer) int { return i.v.Cmp(&j.v) }

// Equal reports whether i == j.
func (i Integer) Equal(j Integer) bool { return i.v.Cmp(&j.v) == 0 }

// Add returns i + j.
func (i Integer) Add(j Integer) Integer {
	var r Integer
	r.v.Add(&i.v, &j.v)
	return r
}

// Sub returns i - j.
func (i Integer) Sub(j Integer) Integer {
	var r Integer
	r.v.Sub(&i.v, &j.v)
	return r
}

// Neg returns -i.
func (i Integer) Neg() Integer {
	var r Integer
	r.v.Neg(&i.v)
	return r
}

// Abs returns |i|.
func (i Integer) Abs() Integer {
	var r Integer
	r.v.Abs(&i.v)
	return r
}

// Mul returns i * j, dispatching to bigfft for large operands.
func (i Integer) Mul(j Integer) Integer {
	var r Integer
	if i.v.BitLen() > bigfftThreshold && j.v.BitLen() > bigfftThreshold {
		r.v.Set(bigfft.Mul(&i.v, &j.v))
		return r
	}
	r.v.Mul(&i.v, &j.v)
	return r
}

// ExactDiv returns i / j, requiring that j evenly divides i.
// It returns ErrDivByZero if j is zero and ErrNotExact if the division
// leaves a remainder.
func (i Integer) ExactDiv(j Integer) (Integer, error) {
	if j.IsZero() {
		return Integer{}, integerErrorf("ExactDiv", ErrDivByZero)
	}
	var q, rem big.Int
	q.QuoRem(&i.v, &j.v, &rem)
	if rem.Sign() != 0 {
		return Integer{}, integerErrorf("ExactDiv", ErrNotExact)
	}
	return Integer{v: q}, nil
}

// Gcd returns gcd(|i|, |j|). Gcd(0, 0) == 0, matching math/big.
func (i Integer) Gcd(j Integer) Integer {
	var r Integer
	r.v.GCD(nil, nil, new(big.Int).Abs(&i.v), new(big.Int).Abs(&j.v))
	return r
}

// Lcm returns lcm(|i|, |j|); Lcm(0, _) == 0.
func (i Integer) Lcm(j Integer) Integer {
	if i.IsZero() || j.IsZero() {
		return Integer{}
	}
	g := i.Gcd(j)
	q, _ := i.Abs().ExactDiv(g)
	return q.Mul(j.Abs())
}

// Int64 returns i as an int64, truncating if out of range (used only for
// bounded quantities such as row lengths and dimension indices).
func (i Integer) Int64() int64 { return i.v.Int64() }

// Float64 returns the nearest float64 approximation of i (used only by
// BBox volume caching and H/V real-format export, never in exact paths).
func (i Integer) Float64() float64 {
	f, _ := new(big.Float).SetInt(&i.v).Float64()
	return f
}

// String renders i in base 10.
func (i Integer) String() string { return i.v.String() }

// Hash returns a hash consistent with Equal: equal Integers always hash
// equally, regardless of how each was constructed.
func (i Integer) Hash() uint64 {
	words := i.v.Bits()
	var h uint64 = 1469598103934665603 // FNV-1a offset basis
	const prime uint64 = 1099511628211
	h ^= uint64(i.v.Sign() + 1)
	h *= prime
	for _, w := range words {
		h ^= uint64(w)
		h *= prime
	}
	return h
}

// BigInt returns a copy of the underlying math/big.Int. Callers must not
// depend on mutating the returned value affecting i.
func (i Integer) BigInt() *big.Int { return new(big.Int).Set(&i.v) }

// FromBigInt wraps a math/big.Int (copied) as an Integer.
func FromBigInt(b *big.Int) Integer {
	var r Integer
	r.v.Set(b)
	return r
}
