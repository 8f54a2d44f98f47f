package poly

import (
	"errors"
	"fmt"
)

// Sentinel errors for package poly.
var (
	// ErrDimMismatch indicates two operands of a binary operation have
	// different space dimensions where the operation requires equality.
	ErrDimMismatch = errors.New("poly: space dimension mismatch")

	// ErrTopologyMismatch indicates two operands of a binary operation
	// have different topologies where the operation requires the same.
	ErrTopologyMismatch = errors.New("poly: topology mismatch")

	// ErrDimOutOfRange indicates a Var argument is outside [0, dim).
	ErrDimOutOfRange = errors.New("poly: dimension index out of range")

	// ErrInvalidAffineImage indicates AffineImage was asked to invert a
	// transform with a zero coefficient on the assigned dimension in a
	// context requiring invertibility.
	ErrInvalidAffineImage = errors.New("poly: non-invertible affine image")

	// ErrParse indicates a malformed ascii dump, H-representation, or
	// V-representation input (spec.md §7 "Parse error").
	ErrParse = errors.New("poly: parse error")
)

func polyErrorf(method string, err error) error {
	return fmt.Errorf("poly.%s: %w", method, err)
}

// WrapParseErr wraps err as an ErrParse-tagged error attributed to
// method, for use by sibling packages (dump, vhrep) whose loaders
// surface spec.md §7's "parse error" category without duplicating the
// sentinel.
func WrapParseErr(method string, err error) error {
	return fmt.Errorf("%s: %w: %w", method, ErrParse, err)
}

// assertDim panics if got != want — a precondition violation in the
// sense of spec.md §7 ("asymmetric space dimensions... is a programming
// bug"), not a recoverable error.
func assertDim(method string, got, want int) {
	if got != want {
		panic(polyErrorf(method, fmt.Errorf("%w: got %d want %d", ErrDimMismatch, got, want)))
	}
}
