package facade_test

import (
	"testing"

	"github.com/ezaffanella/pplite/con"
	"github.com/ezaffanella/pplite/facade"
	"github.com/ezaffanella/pplite/integer"
	"github.com/ezaffanella/pplite/linear"
	"github.com/ezaffanella/pplite/poly"
	"github.com/stretchr/testify/require"
)

func halfPlane(dim int, coeff, bound int64) con.Con {
	e := linear.NewExpr(dim)
	e.Set(linear.Var(0), integer.NewFromInt64(-coeff))
	return con.New(e, integer.NewFromInt64(bound), con.NSI)
}

func TestPlainDispatchesToCore(t *testing.T) {
	ph := facade.NewPlain(poly.NewUniverse(poly.Closed, 2))
	ph.AddCon(halfPlane(2, 1, 5))
	require.Equal(t, facade.KindPlain, ph.Kind())
	require.False(t, ph.IsEmpty())
}

func TestStatsCountsDispatchedCalls(t *testing.T) {
	ph := facade.NewStats(poly.NewUniverse(poly.Closed, 2))
	ph.AddCon(halfPlane(2, 1, 5))
	ph.AddCon(halfPlane(2, -1, 5))
	ph.IsEmpty()

	require.Equal(t, int64(2), ph.Counters().Count("AddCon"))
	require.Equal(t, int64(1), ph.Counters().Count("IsEmpty"))
	require.Equal(t, int64(3), ph.Counters().Total())
}

func TestBoxedCachesBoundingBox(t *testing.T) {
	ph := facade.NewBoxed(poly.NewUniverse(poly.Closed, 1))
	ph.AddCon(halfPlane(1, 1, 0))
	ph.AddCon(halfPlane(1, -1, 5))

	box := ph.BoundingBox()
	require.NotNil(t, box)

	cached := ph.BoundingBox()
	require.True(t, box.Equal(cached))
}

func TestBoxedInvalidatesOnMutation(t *testing.T) {
	ph := facade.NewBoxed(poly.NewUniverse(poly.Closed, 1))
	ph.AddCon(halfPlane(1, 1, 0))
	ph.AddCon(halfPlane(1, -1, 5))
	before := ph.BoundingBox()

	ph.AddCon(halfPlane(1, -1, 2))
	after := ph.BoundingBox()
	require.False(t, before.Equal(after))
}

func TestFactoredForwardsLikePlain(t *testing.T) {
	ph := facade.NewFactored(poly.NewUniverse(poly.Closed, 2))
	ph.AddCon(halfPlane(2, 1, 5))
	require.Equal(t, facade.KindFactored, ph.Kind())
	require.Equal(t, 1, ph.NumMinCons())
}

func TestSplitReturnsSameKind(t *testing.T) {
	ph := facade.NewStats(poly.NewUniverse(poly.Closed, 1))
	comp := ph.Split(halfPlane(1, 1, 0))
	require.Equal(t, facade.KindStats, comp.Kind())
	require.NotNil(t, comp.Counters())
}

func TestCloneIsIndependent(t *testing.T) {
	ph := facade.NewPlain(poly.NewUniverse(poly.Closed, 1))
	cp := ph.Clone()
	cp.AddCon(halfPlane(1, 1, 0))
	require.NotEqual(t, ph.NumMinCons(), cp.NumMinCons())
}
