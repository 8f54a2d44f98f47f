package gen_test

import (
	"testing"

	"github.com/ezaffanella/pplite/gen"
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

func TestPointDivisorPositive(t *testing.T) {
	p := gen.NewPoint(expr(-2, 4), integer.NewFromInt64(-2), gen.POINT)
	require.True(t, p.Inhomo.Sign() > 0)
}

func TestLineSignNormalization(t *testing.T) {
	l := gen.NewLine(expr(-1, 2))
	require.True(t, l.Expr.Get(0).Equal(integer.NewFromInt64(1)))
	require.True(t, l.Expr.Get(1).Equal(integer.NewFromInt64(-2)))
}

func TestOrigin(t *testing.T) {
	o := gen.Origin(2, gen.POINT)
	require.True(t, o.Expr.IsZero())
	require.True(t, o.Inhomo.IsOne())
}
