package linear_test

import (
	"testing"

	"github.com/ezaffanella/pplite/integer"
	"github.com/ezaffanella/pplite/linear"
	"github.com/stretchr/testify/require"
)

func mkExpr(vals ...int64) linear.Expr {
	coeffs := make([]integer.Integer, len(vals))
	for i, v := range vals {
		coeffs[i] = integer.NewFromInt64(v)
	}
	return linear.FromSlice(coeffs)
}

func TestCombineUnitFastPaths(t *testing.T) {
	x := mkExpr(2, 4)
	xInh := integer.NewFromInt64(1)
	y := mkExpr(1, 1)
	yInh := integer.NewFromInt64(3)

	err := linear.Combine(&x, &xInh, y, yInh, integer.One(), integer.One())
	require.NoError(t, err)
	// cx'=1, cy'=1: x' = x - y
	require.True(t, x.Get(0).Equal(integer.NewFromInt64(1)))
	require.True(t, x.Get(1).Equal(integer.NewFromInt64(3)))
	require.True(t, xInh.Equal(integer.NewFromInt64(-2)))
}

func TestCombineGeneral(t *testing.T) {
	x := mkExpr(6, 9)
	xInh := integer.NewFromInt64(3)
	y := mkExpr(4, 2)
	yInh := integer.NewFromInt64(6)

	// cx=2, cy=4, g=2 -> cx'=1, cy'=2: x' = 2x - y? no: formula is
	// x' = cy'*x - cx'*y with cx'=1, cy'=2 -> 2*x - y
	err := linear.Combine(&x, &xInh, y, yInh, integer.NewFromInt64(2), integer.NewFromInt64(4))
	require.NoError(t, err)
	require.True(t, x.Get(0).Equal(integer.NewFromInt64(8)))  // 2*6-4
	require.True(t, x.Get(1).Equal(integer.NewFromInt64(16))) // 2*9-2
	require.True(t, xInh.Equal(integer.NewFromInt64(0)))      // 2*3-6
}

func TestCombineZeroCoefficientError(t *testing.T) {
	x := mkExpr(1)
	xInh := integer.Zero()
	y := mkExpr(1)
	yInh := integer.Zero()
	err := linear.Combine(&x, &xInh, y, yInh, integer.Zero(), integer.One())
	require.ErrorIs(t, err, linear.ErrZeroCoefficient)
}

func TestStrongNormalizeGcdAndSign(t *testing.T) {
	e := mkExpr(-4, 6)
	inh := integer.NewFromInt64(-10)
	err := linear.StrongNormalize(&e, &inh, false)
	require.NoError(t, err)
	require.True(t, e.Get(0).Equal(integer.NewFromInt64(-2)))
	require.True(t, e.Get(1).Equal(integer.NewFromInt64(3)))
	require.True(t, inh.Equal(integer.NewFromInt64(-5)))

	// Equality normalization additionally enforces a positive leading coeff.
	e2 := mkExpr(-2, 3)
	inh2 := integer.NewFromInt64(-5)
	err = linear.StrongNormalize(&e2, &inh2, true)
	require.NoError(t, err)
	require.True(t, e2.Get(0).Equal(integer.NewFromInt64(2)))
	require.True(t, e2.Get(1).Equal(integer.NewFromInt64(-3)))
	require.True(t, inh2.Equal(integer.NewFromInt64(5)))
}

func TestCmpZeroExtension(t *testing.T) {
	a := mkExpr(1, 0, 0)
	b := mkExpr(1)
	require.Equal(t, 0, a.Cmp(b))
}
