package rational

import (
	"errors"
	"fmt"
)

// ErrDivByZero indicates division by (or construction of) a zero
// denominator.
var ErrDivByZero = errors.New("rational: zero denominator")

func rationalErrorf(method string, err error) error {
	return fmt.Errorf("rational.%s: %w", method, err)
}
