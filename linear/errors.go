package linear

import (
	"errors"
	"fmt"
)

// ErrZeroCoefficient indicates Combine was called with a zero scale
// factor, which violates its precondition (cx != 0, cy != 0).
var ErrZeroCoefficient = errors.New("linear: combine requires non-zero coefficients")

func linearErrorf(method string, err error) error {
	return fmt.Errorf("linear.%s: %w", method, err)
}
