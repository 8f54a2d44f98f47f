// Package itv implements Interval, a closed rational interval with
// possibly-infinite endpoints, and BBox, a bounding box (vector of
// intervals with an optional volume cache) — spec.md §3 "Interval and
// bounding box".
//
// What
//
//   - Interval tracks (Lower, LowerIsInf, UpperIsInf, Upper) plus, for
//     NNC-aware callers, whether each finite bound is open (strict) or
//     closed — needed so BBox widening (spec.md §4.8 Boxed H79) can
//     distinguish "x <= 3" from "x < 3".
//   - BBox is a dense []Interval with a lazily computed Volume() that is
//     invalidated on any mutation.
//
// Why
//
//	BBox backs the Boxed H79 widening (spec.md §4.8) and the facade's
//	Boxed variant (spec.md §4.9). The package also hosts a generic
//	maxInt helper built on golang.org/x/exp/constraints.
package itv
