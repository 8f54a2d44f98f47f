package rational_test

import (
	"testing"

	"github.com/ezaffanella/pplite/integer"
	"github.com/ezaffanella/pplite/rational"
	"github.com/stretchr/testify/require"
)

func TestCanonicalForm(t *testing.T) {
	r, err := rational.New(integer.NewFromInt64(4), integer.NewFromInt64(-6))
	require.NoError(t, err)
	require.Equal(t, "-2/3", r.String())
}

func TestArithmetic(t *testing.T) {
	a := rational.FromInt64(1, 2)
	b := rational.FromInt64(1, 3)
	require.True(t, a.Add(b).Equal(rational.FromInt64(5, 6)))
	require.True(t, a.Sub(b).Equal(rational.FromInt64(1, 6)))
	require.True(t, a.Mul(b).Equal(rational.FromInt64(1, 6)))
	require.True(t, a.Div(b).Equal(rational.FromInt64(3, 2)))
}

func TestRoundUpDown(t *testing.T) {
	r := rational.FromInt64(7, 2) // 3.5
	require.True(t, r.RoundDown().Equal(integer.NewFromInt64(3)))
	require.True(t, r.RoundUp().Equal(integer.NewFromInt64(4)))

	neg := rational.FromInt64(-7, 2) // -3.5
	require.True(t, neg.RoundDown().Equal(integer.NewFromInt64(-4)))
	require.True(t, neg.RoundUp().Equal(integer.NewFromInt64(-3)))
}

func TestDivByZero(t *testing.T) {
	_, err := rational.New(integer.One(), integer.Zero())
	require.ErrorIs(t, err, rational.ErrDivByZero)
}

func TestFromFloat64(t *testing.T) {
	r, err := rational.FromFloat64(0.5)
	require.NoError(t, err)
	require.True(t, r.Equal(rational.FromInt64(1, 2)))
}
