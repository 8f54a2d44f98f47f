// Package poly implements Poly, the double-description (DD) pair at the
// heart of PPLite: a constraint system and a generator system of the
// same convex polyhedron, kept consistent via a saturation matrix, with
// incremental Chernikova-style conversion and post-conversion
// simplification (spec.md §3, §4.2–§4.5).
//
// What
//
//   - Poly tracks Topology (Closed/NNC), space dimension, Status
//     (Empty/Minimized/Pending), two systems (cs, gs), two saturation
//     matrices (satC, satG), and two pending systems (csPending,
//     gsPending) for incremental accumulation.
//   - Minimize() runs conversion then simplification until both
//     representations are consistent and irredundant, transitioning
//     Status from Pending to Minimized or Empty.
//   - The convex operation table of spec.md §4.6 (Intersect, Hull,
//     TopologicalClosure, AddSpaceDims/RemoveSpaceDims, Concatenate,
//     MapSpaceDims/Fold/Expand, AffineImage/AffinePreimage, TimeElapse,
//     Unconstrain) is implemented in ops.go.
//   - Split (rational and integral) lives in split.go; the three
//     widening operators and the BHRZ03 certificate live in widen.go.
//
// Why
//
//	This is "the hard part" of PPLite (spec.md §1): every other package
//	(con, gen, bits, sat, linear, itv) exists to give Poly exact,
//	index-based, non-aliasing building blocks so that conversion and
//	simplification can be expressed as the incremental, one-row-at-a-time
//	algorithm of spec.md §4.4–§4.5 rather than a from-scratch
//	recomputation on every query.
//
// Concurrency
//
//	A single Poly is meant for single-threaded, single-instance use
//	(spec.md §5): Minimize is logically a query but mutates interior
//	state to materialize the dual representation. Two distinct Poly
//	values are fully independent and may be used from different
//	goroutines without synchronization; sharing one Poly across
//	goroutines requires external synchronization. Poly itself holds no
//	mutex: it has exactly one owner at a time (value semantics via
//	Clone for sharing, not concurrent mutation).
package poly
