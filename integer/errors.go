package integer

import (
	"errors"
	"fmt"
)

// Sentinel errors for package integer.
var (
	// ErrDivByZero indicates a division (ExactDiv) by zero.
	ErrDivByZero = errors.New("integer: division by zero")

	// ErrNotExact indicates ExactDiv was called with a divisor that does
	// not evenly divide the dividend.
	ErrNotExact = errors.New("integer: division is not exact")
)

// integerErrorf wraps an inner error with method context, following the
// package-prefixed wrapping convention used throughout this module.
func integerErrorf(method string, err error) error {
	return fmt.Errorf("integer.%s: %w", method, err)
}
