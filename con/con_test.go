package con_test

import (
	"testing"

	"github.com/ezaffanella/pplite/con"
	"github.com/ezaffanella/pplite/integer"
	"github.com/ezaffanella/pplite/linear"
	"github.com/stretchr/testify/require"
)

func expr(vals ...int64) linear.Expr {
	coeffs := make([]integer.Integer, len(vals))
	for i, v := range vals {
		coeffs[i] = integer.NewFromInt64(v)
	}
	return linear.FromSlice(coeffs)
}

func TestStrongNormalizeGcd(t *testing.T) {
	c := con.New(expr(4, -6), integer.NewFromInt64(2), con.NSI)
	require.True(t, c.Expr.Get(0).Equal(integer.NewFromInt64(2)))
	require.True(t, c.Expr.Get(1).Equal(integer.NewFromInt64(-3)))
	require.True(t, c.Inhomo.Equal(integer.NewFromInt64(1)))
}

func TestEqualitySignNormalization(t *testing.T) {
	c := con.New(expr(-2, 4), integer.NewFromInt64(-6), con.EQ)
	require.True(t, c.Expr.Get(0).Equal(integer.NewFromInt64(1)))
	require.True(t, c.Expr.Get(1).Equal(integer.NewFromInt64(-2)))
	require.True(t, c.Inhomo.Equal(integer.NewFromInt64(3)))
}

func TestFalseAndPositivity(t *testing.T) {
	f := con.False()
	require.True(t, f.IsFalse())

	p := con.StrictPositivity(2)
	require.True(t, p.IsStrictPositivity())
	require.Equal(t, con.SI, p.Kind)
}
