// Package linear implements the dense linear-expression vector that
// underlies constraints and generators, and the row-combination
// primitive (Combine) that both Gaussian elimination and the Chernikova
// conversion algorithm are built from (spec.md §4.1).
//
// What
//
//   - Var is a strongly-typed space-dimension index (ported from the
//     original C++ Var.hh/Var.cc wrapper, instead of a bare int).
//   - Expr is a finite sequence of Integer coefficients indexed by Var;
//     reading beyond its length yields the additive identity, so two
//     Exprs of different lengths can still be compared/combined.
//   - Combine(x, xInh, y, yInh, cx, cy) implements the in-place row
//     combination x' = (cy*x - cx*y)/g, xInh' = (cy*xInh - cx*yInh)/g,
//     g = gcd(cx, cy), specialised into 9 cases by whether each of
//     cx/g and cy/g is +1, -1 or another value; only the cases where
//     both are ±1 need no multiplication at all.
//
// Why
//
//	Every elimination step in the library — Gaussian elimination of
//	singular rows, and the adjacency-scan combination step of the DD
//	conversion — reduces to one call of Combine. Factoring it here keeps
//	the ±1 fast path (spec.md's explicit performance requirement) in one
//	place instead of three.
//
// Complexity
//
//	Combine: O(d) in the space dimension, where d is the shared length of
//	the two expressions after zero-extension.
package linear
