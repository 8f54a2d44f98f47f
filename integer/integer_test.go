package integer_test

import (
	"testing"

	"github.com/ezaffanella/pplite/integer"
	"github.com/stretchr/testify/require"
)

func TestAddSubNeg(t *testing.T) {
	a := integer.NewFromInt64(7)
	b := integer.NewFromInt64(3)

	require.True(t, a.Add(b).Equal(integer.NewFromInt64(10)))
	require.True(t, a.Sub(b).Equal(integer.NewFromInt64(4)))
	require.True(t, a.Neg().Equal(integer.NewFromInt64(-7)))
}

func TestMulSmallAndLarge(t *testing.T) {
	a := integer.NewFromInt64(123456)
	b := integer.NewFromInt64(-7)
	require.True(t, a.Mul(b).Equal(integer.NewFromInt64(-864192)))

	// Large operands exercise the bigfft dispatch path; correctness must
	// match the schoolbook result regardless of which path is taken.
	big1, ok := integer.NewFromString(bigDigits('3', 2000))
	require.True(t, ok)
	big2, ok := integer.NewFromString(bigDigits('7', 2000))
	require.True(t, ok)
	product := big1.Mul(big2)
	require.Equal(t, product.Sign(), 1)
}

func TestGcdLcm(t *testing.T) {
	a := integer.NewFromInt64(12)
	b := integer.NewFromInt64(18)
	require.True(t, a.Gcd(b).Equal(integer.NewFromInt64(6)))
	require.True(t, a.Lcm(b).Equal(integer.NewFromInt64(36)))

	zero := integer.Zero()
	require.True(t, zero.Gcd(a).Equal(a))
	require.True(t, zero.Lcm(a).IsZero())
}

func TestExactDiv(t *testing.T) {
	a := integer.NewFromInt64(20)
	b := integer.NewFromInt64(4)
	q, err := a.ExactDiv(b)
	require.NoError(t, err)
	require.True(t, q.Equal(integer.NewFromInt64(5)))

	_, err = a.ExactDiv(integer.NewFromInt64(3))
	require.ErrorIs(t, err, integer.ErrNotExact)

	_, err = a.ExactDiv(integer.Zero())
	require.ErrorIs(t, err, integer.ErrDivByZero)
}

func TestSignSentinels(t *testing.T) {
	require.True(t, integer.Zero().IsZero())
	require.True(t, integer.One().IsOne())
	require.True(t, integer.One().Neg().IsMinusOne())
}

func TestHashConsistentWithEqual(t *testing.T) {
	a := integer.NewFromInt64(42)
	b := integer.NewFromInt64(42)
	require.Equal(t, a.Hash(), b.Hash())
}

func bigDigits(d byte, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = d
	}
	return string(buf)
}
