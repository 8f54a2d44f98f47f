// Package sat implements Sat, the saturation matrix linking a
// polyhedron's constraint and generator skeleton rows (spec.md §3
// "Bits and Sat", §4.3).
//
// What
//
//   - Sat is a vector of bits.Bits rows. In this package a bit is 1 iff
//     the corresponding generator saturates the corresponding
//     constraint (a 0 bit means it does not); the set of common
//     saturators of two rows is therefore the bitwise AND of the rows,
//     and the adjacency scan of the conversion algorithm intersects rows.
//   - AddRow appends a new all-zero row; AddCols(n) extends every
//     existing row by n zero bits on the right.
//   - Transpose returns the dual matrix (rows indexed by columns).
//   - RemoveRows deletes rows at the given sorted row indices;
//     RemoveCols deletes columns at the given sorted column indices.
//
// Why
//
//	poly.Poly maintains two Sat values in lockstep, sat_c and sat_g,
//	each the transpose of the other (invariant 4 of spec.md §3); keeping
//	that pairing consistent is entirely the responsibility of the poly
//	package, which calls into Sat's primitives but owns the invariant.
//
// Complexity
//
//	AddRow/AddCols: O(rows). Transpose: O(rows*cols/64). RemoveRows:
//	O(rows). RemoveCols: O(cols) per row.
package sat
