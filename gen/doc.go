// Package gen defines Gen, the generator row of the double-description
// pair: LINE, RAY, POINT, or CPOINT (closure point).
//
// What
//
//   - Type enumerates LINE, RAY, POINT, CPOINT.
//   - Gen carries (Expr, Inhomo, Type); for POINT/CPOINT, Inhomo is the
//     strictly positive common divisor of the point's coordinates
//     (spec.md §3 "Generator (Gen)"). POINT/CPOINT rows always have
//     Inhomo >= 1 after normalization; RAY and LINE rows keep Inhomo 0.
//   - Strong normalization mirrors con.Con's: divide by gcd, and for
//     LINE rows (the singular kind on the generator side) enforce a
//     positive first nonzero coefficient.
//
// Why
//
//	Gen plays the same structural role on the generator side of the DD
//	pair that Con plays on the constraint side; the conversion algorithm
//	(poly package) is parameterized once and reused for both directions
//	by renaming LINE<->EQ, RAY/POINT<->NSI, CPOINT<->SI as appropriate.
package gen
