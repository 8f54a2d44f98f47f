// Package bits implements the dense bitset of spec.md §3 "Bits": a
// fixed-word bitset supporting set/reset/iterate-set-bits/shift/
// union/intersect/subset/popcount, plus the prefix/suffix helpers and
// the index-renumbering remove_all used by saturation-matrix
// maintenance.
//
// What
//
//   - Bits wraps github.com/bits-and-blooms/bitset.BitSet, the dense
//     word-array bitset already used elsewhere in this dependency
//     graph (transitively, via consensys/gnark-crypto), rather than
//     hand-rolling a []uint64.
//   - SetUntil(k) / ResetFrom(k) implement the prefix/suffix bulk
//     operations spec.md calls out explicitly.
//   - ShiftRight(k) inserts k zero bits at the front (index 0) and
//     drops whatever shifts past the bitset's declared length.
//   - RemoveAll(sorted) deletes the bits at the given sorted, 0-based
//     positions and compacts the remainder, matching the original's
//     Index_Set::remove_all.
//
// Complexity
//
//	Word-parallel operations (Union, Intersect, Subset, CountOnes,
//	CountOnesInUnion) are O(n/64) in the bitset length n. Iteration
//	(NextSet) and RemoveAll are O(n) worst case.
package bits
