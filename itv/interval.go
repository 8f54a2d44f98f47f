package itv

import (
	"fmt"

	"github.com/ezaffanella/pplite/rational"
)

// Interval is a closed (by default) rational interval [Lower, Upper],
// with either bound optionally at infinity and optionally open (strict).
type Interval struct {
	LowerIsInf bool
	Lower      rational.Rational
	LowerOpen  bool

	UpperIsInf bool
	Upper      rational.Rational
	UpperOpen  bool
}

// Universe returns (-inf, +inf).
func Universe() Interval {
	return Interval{LowerIsInf: true, UpperIsInf: true}
}

// Point returns the degenerate closed interval [v, v].
func Point(v rational.Rational) Interval {
	return Interval{Lower: v, Upper: v}
}

// IsEmpty reports whether the interval cannot contain any point (either
// bound crossing, or degenerate with either bound open at that
// value).
func (iv Interval) IsEmpty() bool {
	if iv.LowerIsInf || iv.UpperIsInf {
		return false
	}
	c := iv.Lower.Cmp(iv.Upper)
	if c > 0 {
		return true
	}
	if c == 0 && (iv.LowerOpen || iv.UpperOpen) {
		return true
	}
	return false
}

// IsUniverse reports whether iv is unbounded on both sides.
func (iv Interval) IsUniverse() bool { return iv.LowerIsInf && iv.UpperIsInf }

// IsBounded reports whether both bounds are finite.
func (iv Interval) IsBounded() bool { return !iv.LowerIsInf && !iv.UpperIsInf }

// Contains reports whether v lies within iv.
func (iv Interval) Contains(v rational.Rational) bool {
	if !iv.LowerIsInf {
		c := v.Cmp(iv.Lower)
		if c < 0 || (c == 0 && iv.LowerOpen) {
			return false
		}
	}
	if !iv.UpperIsInf {
		c := v.Cmp(iv.Upper)
		if c > 0 || (c == 0 && iv.UpperOpen) {
			return false
		}
	}
	return true
}

// Join returns the smallest interval containing both iv and o (used by
// convex hull of bounding boxes and by H79 box-widening's input union).
func (iv Interval) Join(o Interval) Interval {
	var out Interval
	out.LowerIsInf = iv.LowerIsInf || o.LowerIsInf
	if !out.LowerIsInf {
		switch c := iv.Lower.Cmp(o.Lower); {
		case c < 0:
			out.Lower, out.LowerOpen = iv.Lower, iv.LowerOpen
		case c > 0:
			out.Lower, out.LowerOpen = o.Lower, o.LowerOpen
		default:
			out.Lower = iv.Lower
			out.LowerOpen = iv.LowerOpen && o.LowerOpen
		}
	}
	out.UpperIsInf = iv.UpperIsInf || o.UpperIsInf
	if !out.UpperIsInf {
		switch c := iv.Upper.Cmp(o.Upper); {
		case c > 0:
			out.Upper, out.UpperOpen = iv.Upper, iv.UpperOpen
		case c < 0:
			out.Upper, out.UpperOpen = o.Upper, o.UpperOpen
		default:
			out.Upper = iv.Upper
			out.UpperOpen = iv.UpperOpen && o.UpperOpen
		}
	}
	return out
}

// Meet returns the intersection of iv and o.
func (iv Interval) Meet(o Interval) Interval {
	var out Interval
	out.LowerIsInf = iv.LowerIsInf && o.LowerIsInf
	if !out.LowerIsInf {
		switch {
		case iv.LowerIsInf:
			out.Lower, out.LowerOpen = o.Lower, o.LowerOpen
		case o.LowerIsInf:
			out.Lower, out.LowerOpen = iv.Lower, iv.LowerOpen
		default:
			switch c := iv.Lower.Cmp(o.Lower); {
			case c > 0:
				out.Lower, out.LowerOpen = iv.Lower, iv.LowerOpen
			case c < 0:
				out.Lower, out.LowerOpen = o.Lower, o.LowerOpen
			default:
				out.Lower = iv.Lower
				out.LowerOpen = iv.LowerOpen || o.LowerOpen
			}
		}
	}
	out.UpperIsInf = iv.UpperIsInf && o.UpperIsInf
	if !out.UpperIsInf {
		switch {
		case iv.UpperIsInf:
			out.Upper, out.UpperOpen = o.Upper, o.UpperOpen
		case o.UpperIsInf:
			out.Upper, out.UpperOpen = iv.Upper, iv.UpperOpen
		default:
			switch c := iv.Upper.Cmp(o.Upper); {
			case c < 0:
				out.Upper, out.UpperOpen = iv.Upper, iv.UpperOpen
			case c > 0:
				out.Upper, out.UpperOpen = o.Upper, o.UpperOpen
			default:
				out.Upper = iv.Upper
				out.UpperOpen = iv.UpperOpen || o.UpperOpen
			}
		}
	}
	return out
}

// Equal reports structural equality (same bounds, same openness flags).
func (iv Interval) Equal(o Interval) bool {
	if iv.LowerIsInf != o.LowerIsInf || iv.UpperIsInf != o.UpperIsInf {
		return false
	}
	if !iv.LowerIsInf && (!iv.Lower.Equal(o.Lower) || iv.LowerOpen != o.LowerOpen) {
		return false
	}
	if !iv.UpperIsInf && (!iv.Upper.Equal(o.Upper) || iv.UpperOpen != o.UpperOpen) {
		return false
	}
	return true
}

// String renders iv for debugging, e.g. "[0, 3)" or "(-inf, +inf)".
func (iv Interval) String() string {
	lb, ub := "[", "]"
	if iv.LowerOpen {
		lb = "("
	}
	if iv.UpperOpen {
		ub = ")"
	}
	lo := "-inf"
	if !iv.LowerIsInf {
		lo = iv.Lower.String()
	}
	hi := "+inf"
	if !iv.UpperIsInf {
		hi = iv.Upper.String()
	}
	return fmt.Sprintf("%s%s, %s%s", lb, lo, hi, ub)
}
