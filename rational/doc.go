// Package rational provides the canonical rational number used for
// interval endpoints, volume computation, and H/V-representation real
// coefficient import.
//
// What
//
//   - Rational is a (numerator, denominator) pair kept in canonical form:
//     denominator > 0, gcd(|numerator|, denominator) == 1.
//   - RoundUp/RoundDown return the integer bounds used by integral split
//     (spec.md §4.7).
//
// Why
//
//	Most of PPLite's arithmetic stays in Integer (exact, denominator-free
//	linear expressions); Rational exists specifically for interval
//	endpoints (itv.Interval) and for reading "real" coefficients from the
//	H-representation exchange format, which must convert floats to exact
//	rationals rather than losing precision.
//
// Complexity
//
//	Add/Sub/Mul/Cmp: O(n^2) in the bit-length of numerator/denominator,
//	dominated by the GCD reduction to canonical form.
package rational
