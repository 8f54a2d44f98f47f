package poly_test

import (
	"testing"

	"github.com/ezaffanella/pplite/con"
	"github.com/ezaffanella/pplite/gen"
	"github.com/ezaffanella/pplite/integer"
	"github.com/ezaffanella/pplite/linear"
	"github.com/ezaffanella/pplite/poly"
	"github.com/stretchr/testify/require"
)

func unitExpr(dim, i int) linear.Expr {
	e := linear.NewExpr(dim)
	e.Set(linear.Var(i), integer.One())
	return e
}

func leCon(dim int, coeffs []int64, bound int64) con.Con {
	e := linear.NewExpr(dim)
	for i, c := range coeffs {
		e.Set(linear.Var(i), integer.NewFromInt64(-c))
	}
	return con.New(e, integer.NewFromInt64(bound), con.NSI)
}

func TestUniverseIsMinimizedAndUnbounded(t *testing.T) {
	p := poly.NewUniverse(poly.Closed, 2)
	require.False(t, p.IsEmpty())
	require.Equal(t, 2, p.Dim)
}

func TestEmptyPolyhedron(t *testing.T) {
	p := poly.NewEmpty(poly.Closed, 3)
	require.True(t, p.IsEmpty())
	require.Equal(t, 1, p.NumMinCons())
}

// TestSquareFromConstraints builds the square [0,2]x[0,2] from
// four inequalities and checks it has 4 minimal generators.
func TestSquareFromConstraints(t *testing.T) {
	p := poly.NewUniverse(poly.Closed, 2)
	// x0 >= 0
	p.AddCon(leCon(2, []int64{-1, 0}, 0))
	// x1 >= 0
	p.AddCon(leCon(2, []int64{0, -1}, 0))
	// 2 - x0 >= 0
	p.AddCon(leCon(2, []int64{1, 0}, 2))
	// 2 - x1 >= 0
	p.AddCon(leCon(2, []int64{0, 1}, 2))

	require.False(t, p.IsEmpty())
	require.Equal(t, 4, p.NumMinGens())
}

// TestContradictoryConstraintsYieldEmpty checks x >= 1 and x <= 0
// together produce the empty polyhedron.
func TestContradictoryConstraintsYieldEmpty(t *testing.T) {
	p := poly.NewUniverse(poly.Closed, 1)
	p.AddCon(leCon(1, []int64{-1}, -1)) // x - 1 >= 0  => x >= 1
	p.AddCon(leCon(1, []int64{1}, 0))   // 0 - x >= 0  => x <= 0
	p.Minimize()
	require.True(t, p.IsEmpty())
}

func TestIntersectionOfTwoHalfPlanes(t *testing.T) {
	a := poly.NewUniverse(poly.Closed, 1)
	a.AddCon(leCon(1, []int64{-1}, 0)) // x >= 0
	b := poly.NewUniverse(poly.Closed, 1)
	b.AddCon(leCon(1, []int64{1}, 5)) // x <= 5

	require.NoError(t, a.Intersect(b))
	require.False(t, a.IsEmpty())
	require.Equal(t, 2, a.NumMinCons())
}

func TestHullOfTwoPoints(t *testing.T) {
	a := poly.NewEmpty(poly.Closed, 1)
	a.AddGen(gen.NewPoint(unitExpr(1, 0), integer.One(), gen.POINT))
	b := poly.NewEmpty(poly.Closed, 1)
	zero := linear.NewExpr(1)
	b.AddGen(gen.NewPoint(zero, integer.One(), gen.POINT))

	require.NoError(t, a.Hull(b))
	require.False(t, a.IsEmpty())
	require.Equal(t, 2, a.NumMinGens())
}

func TestAddAndRemoveSpaceDims(t *testing.T) {
	p := poly.NewUniverse(poly.Closed, 1)
	p.AddCon(leCon(1, []int64{-1}, 0))
	require.Equal(t, 1, p.Dim)

	p.AddSpaceDims(2, false)
	require.Equal(t, 3, p.Dim)

	p.RemoveSpaceDims([]int{1, 2})
	require.Equal(t, 1, p.Dim)
}

func TestUnconstrainRemovesBound(t *testing.T) {
	p := poly.NewUniverse(poly.Closed, 2)
	p.AddCon(leCon(2, []int64{-1, 0}, 0))
	p.AddCon(leCon(2, []int64{1, 0}, 2))
	before := p.NumMinCons()
	p.Unconstrain(linear.Var(0))
	require.Less(t, p.NumMinCons(), before+1)
}

func TestTopologicalClosureNoopOnClosed(t *testing.T) {
	p := poly.NewUniverse(poly.Closed, 1)
	cp := p.TopologicalClosure()
	require.Equal(t, p.NumMinCons(), cp.NumMinCons())
}

func TestSplitPartitionsPolyhedron(t *testing.T) {
	p := poly.NewUniverse(poly.Closed, 1)
	p.AddCon(leCon(1, []int64{-1}, 0))
	p.AddCon(leCon(1, []int64{1}, 10))

	// split at x <= 5 / x >= 5 (approx; complementCon flips NSI<->SI)
	cut := leCon(1, []int64{1}, 5)
	neg := p.Split(cut)
	require.False(t, p.IsEmpty())
	require.NotNil(t, neg)
}

func TestWidenH79Stabilizes(t *testing.T) {
	older := poly.NewUniverse(poly.Closed, 1)
	older.AddCon(leCon(1, []int64{-1}, 0))
	older.AddCon(leCon(1, []int64{1}, 5))

	newer := poly.NewUniverse(poly.Closed, 1)
	newer.AddCon(leCon(1, []int64{-1}, 0))
	newer.AddCon(leCon(1, []int64{1}, 10))

	cert, err := older.WidenH79(newer)
	require.NoError(t, err)
	require.NotNil(t, cert)
	// the upper bound x<=5 does not hold for newer (x can be 10), so it
	// must be dropped; only x>=0 should survive.
	require.Equal(t, 1, older.NumMinCons())
}

func TestCloneIsIndependent(t *testing.T) {
	p := poly.NewUniverse(poly.Closed, 1)
	p.AddCon(leCon(1, []int64{-1}, 0))
	cp := p.Clone()
	cp.AddCon(leCon(1, []int64{1}, 1))
	require.NotEqual(t, p.NumMinCons(), cp.NumMinCons())
}

func TestRelationWithConOfUniverse(t *testing.T) {
	p := poly.NewUniverse(poly.Closed, 1)
	c := leCon(1, []int64{-1}, 0) // x >= 0
	r := p.RelationWithCon(c)
	require.True(t, r == poly.RelNothing || r.Has(poly.RelSubsumes) == false)
}

func TestConIteratorVisitsAllSkeletonRows(t *testing.T) {
	p := poly.NewUniverse(poly.Closed, 2)
	p.AddCon(leCon(2, []int64{-1, 0}, 0))
	p.AddCon(leCon(2, []int64{0, -1}, 0))

	it := p.ConIterator()
	count := 0
	for it.Next() {
		_ = it.Con()
		count++
	}
	require.Equal(t, p.NumMinCons(), count)
}

func TestApproxMemoryBytesPositive(t *testing.T) {
	p := poly.NewUniverse(poly.Closed, 3)
	require.Greater(t, p.ApproxMemoryBytes(), 0)
}

// TestDropRedundantConsRemovesSupersededBound is a regression test for a
// dropped-redundancy bug: x<=3 must not survive once x<=2 has been
// added, even though x<=3 was not redundant at the moment it was
// inserted (a ray still satisfied it at the time).
func TestDropRedundantConsRemovesSupersededBound(t *testing.T) {
	p := poly.NewUniverse(poly.Closed, 1)
	p.AddCon(leCon(1, []int64{-1}, 0)) // x >= 0
	p.Minimize()
	p.AddCon(leCon(1, []int64{1}, 3)) // x <= 3
	p.AddCon(leCon(1, []int64{1}, 2)) // x <= 2
	p.Minimize()

	require.Equal(t, 2, p.NumMinCons())
}

func TestNNCPositivityWitnessAndStrictConstraint(t *testing.T) {
	p := poly.NewUniverse(poly.NNC, 1)
	strict := con.New(unitExpr(1, 0), integer.Zero(), con.SI) // x > 0
	p.AddCon(strict)
	p.Minimize()

	require.False(t, p.IsEmpty())

	it := p.ConIterator().WithImplicit(true)
	sawStrict := false
	for it.Next() {
		c := it.Con()
		if c.Kind == con.SI && !c.IsStrictPositivity() {
			sawStrict = true
		}
	}
	require.True(t, sawStrict)
}

func TestNNCClosurePointMaterializes(t *testing.T) {
	p := poly.NewEmpty(poly.NNC, 1)
	p.AddGen(gen.NewPoint(unitExpr(1, 0), integer.One(), gen.POINT))
	p.Minimize()

	it := p.GenIterator().WithImplicit(true)
	sawClosurePoint := false
	for it.Next() {
		g := it.Gen()
		if g.Kind == gen.CPOINT {
			sawClosurePoint = true
		}
	}
	require.True(t, sawClosurePoint)
}

func TestTimeElapseMapsPointsToRays(t *testing.T) {
	p := poly.NewEmpty(poly.Closed, 1)
	p.AddGen(gen.NewPoint(unitExpr(1, 0), integer.One(), gen.POINT)) // {1}

	q := poly.NewEmpty(poly.Closed, 1)
	q.AddGen(gen.NewPoint(unitExpr(1, 0), integer.NewFromInt64(2), gen.POINT)) // {1/2}, point-only

	require.NoError(t, p.TimeElapse(q))
	require.False(t, p.IsEmpty())
	// q contributed no rays or lines of its own, only a point; TimeElapse
	// must still map that point to a ray, or p stays bounded at x=1
	// forever instead of becoming the unbounded ray x>=1.
	box := poly.BoundingBox(p)
	require.NotNil(t, box)
	require.True(t, box.Get(0).UpperIsInf)
}

func TestWidenBHRZ03StabilizesOnRepeatedWidening(t *testing.T) {
	older := poly.NewUniverse(poly.Closed, 1)
	older.AddCon(leCon(1, []int64{-1}, 0))
	older.AddCon(leCon(1, []int64{1}, 5))

	newer := poly.NewUniverse(poly.Closed, 1)
	newer.AddCon(leCon(1, []int64{-1}, 0))
	newer.AddCon(leCon(1, []int64{1}, 5))

	cert, err := older.WidenBHRZ03(newer)
	require.NoError(t, err)
	require.NotNil(t, cert)
	require.True(t, cert.Stabilized)
}

func TestIntegralSplitProducesDisjointIntegerBounds(t *testing.T) {
	p := poly.NewUniverse(poly.Closed, 1)
	p.AddCon(leCon(1, []int64{-1}, 0))  // x >= 0
	p.AddCon(leCon(1, []int64{1}, 10)) // x <= 10

	beta := leCon(1, []int64{-2}, -3) // 2x - 3 >= 0  => x >= 1.5
	other, err := p.IntegralSplit(beta)
	require.NoError(t, err)
	require.NotNil(t, other)
	require.False(t, p.IsEmpty())
}

func TestIntegralSplitEqualityThreeWay(t *testing.T) {
	p := poly.NewUniverse(poly.Closed, 1)
	p.AddCon(leCon(1, []int64{-1}, 0))
	p.AddCon(leCon(1, []int64{1}, 10))

	eq := con.New(unitExpr(1, 0), integer.NewFromInt64(-5), con.EQ) // x == 5
	complement, err := p.IntegralSplit(eq)
	require.NoError(t, err)
	require.NotNil(t, complement)
}
