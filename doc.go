// Package pplite is a Go port of PPLite, a double-description library
// for convex polyhedra over the rationals.
//
// A polyhedron is kept as a matched pair of representations — a
// constraint system (half-spaces and hyperplanes) and a generator
// system (vertices, rays, lines) — linked by a saturation matrix and
// converted incrementally as rows are added, rather than recomputed
// from scratch on every query (package poly).
//
// Subpackages:
//
//	integer/   exact arbitrary-precision arithmetic (math/big + bigfft)
//	rational/  canonical num/den pairs over integer
//	linear/    dense linear expressions indexed by Var
//	con/       constraint rows (equality, non-strict, strict)
//	gen/       generator rows (line, ray, point, closure point)
//	bits/      saturation-row bitsets (bits-and-blooms/bitset)
//	sat/       saturation matrices between a constraint and generator system
//	itv/       interval arithmetic and bounding boxes, for widening
//	poly/      the double-description engine: conversion, simplification,
//	           the convex operation set, splitting, and widening
//	dump/      reversible ascii textual serialization of a Poly
//	vhrep/     lcdd/cdd-compatible H/V-representation reader and writer
//	facade/    tagged-variant front-end (Plain/Boxed/Factored/Stats)
//	config/    explicit configuration object (default topology, widening
//	           choice), replacing the original's thread-local globals
//	cmd/pplite-lcdd/  H/V-representation conversion front-end
//
// A Poly is built empty or universal and grown by adding constraints
// or generators; Minimize reconciles both representations and leaves
// the object in one of three states: Empty, Minimized, or Pending
// (rows added since the last Minimize).
package pplite
