// Package con defines Con, the constraint row of the double-description
// pair: a typed linear expression of the form <expr, x> + inhomo {= , >= , > } 0.
//
// What
//
//   - Type enumerates EQ (equality), NSI (non-strict inequality, ">= 0"),
//     and SI (strict inequality, "> 0").
//   - Con carries (Expr, Inhomo, Type) plus a Topology-independent strong
//     normalization: divide through by gcd(|expr|, |inhomo|), and for EQ
//     additionally enforce that the first nonzero coefficient is
//     positive (spec.md §3 "Constraint (Con)").
//   - False() returns the canonical 0-dimensional false constraint 1 = 0
//     used to represent EMPTY (spec.md §3 invariant 7).
//   - StrictPositivity() returns the canonical 1 > 0 constraint used as
//     the implicit positivity witness for NNC polyhedra.
//
// Why
//
//	Con is the unit of work the conversion algorithm (poly package)
//	consumes from cs_pending and the unit the simplification algorithm
//	normalizes; keeping its invariants (canonical form) enforced at
//	construction time means every other package can assume constraints it
//	receives are already normalized.
package con
