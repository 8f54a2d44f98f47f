package bits_test

import (
	"testing"

	"github.com/ezaffanella/pplite/bits"
	"github.com/stretchr/testify/require"
)

func TestSetResetTest(t *testing.T) {
	b := bits.New(4)
	b.Set(1)
	b.Set(3)
	require.True(t, b.Test(1))
	require.True(t, b.Test(3))
	require.False(t, b.Test(0))
	b.Reset(1)
	require.False(t, b.Test(1))
}

func TestUnionIntersectSubset(t *testing.T) {
	a := bits.New(4)
	a.Set(0)
	a.Set(1)
	b := bits.New(4)
	b.Set(1)
	b.Set(2)

	u := a.Union(b)
	require.ElementsMatch(t, []int{0, 1, 2}, u.Indices())

	i := a.Intersect(b)
	require.ElementsMatch(t, []int{1}, i.Indices())

	require.True(t, i.SubsetEq(a))
	require.True(t, i.SubsetEq(b))
	require.False(t, a.SubsetEq(b))
}

func TestCountOnesAndUnion(t *testing.T) {
	a := bits.New(8)
	a.Set(0)
	a.Set(2)
	a.Set(4)
	b := bits.New(8)
	b.Set(2)
	b.Set(6)

	require.Equal(t, 3, a.CountOnes())
	require.Equal(t, 4, a.CountOnesInUnion(b))
}

func TestSetUntilResetFrom(t *testing.T) {
	b := bits.New(6)
	b.SetUntil(3)
	require.ElementsMatch(t, []int{0, 1, 2}, b.Indices())
	b.ResetFrom(1)
	require.ElementsMatch(t, []int{0}, b.Indices())
}

func TestShiftRight(t *testing.T) {
	b := bits.New(4)
	b.Set(0)
	b.Set(3)
	b.ShiftRight(1)
	// bit 0 -> 1, bit 3 -> 4 which is >= len(4) and dropped.
	require.ElementsMatch(t, []int{1}, b.Indices())
}

func TestRemoveAll(t *testing.T) {
	b := bits.New(5)
	b.Set(0)
	b.Set(2)
	b.Set(4)
	// remove positions 1 and 3 -> remaining positions 0,2,4 renumber to 0,1,2
	b.RemoveAll([]int{1, 3})
	require.Equal(t, 3, b.Len())
	require.ElementsMatch(t, []int{0, 1, 2}, b.Indices())
}
