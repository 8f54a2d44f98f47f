package itv_test

import (
	"testing"

	"github.com/ezaffanella/pplite/itv"
	"github.com/ezaffanella/pplite/rational"
	"github.com/stretchr/testify/require"
)

func TestIntervalEmpty(t *testing.T) {
	iv := itv.Interval{Lower: rational.FromInt64(3, 1), Upper: rational.FromInt64(3, 1), UpperOpen: true}
	require.True(t, iv.IsEmpty())
}

func TestIntervalContains(t *testing.T) {
	iv := itv.Interval{Lower: rational.FromInt64(0, 1), Upper: rational.FromInt64(1, 1)}
	require.True(t, iv.Contains(rational.FromInt64(1, 2)))
	require.True(t, iv.Contains(rational.FromInt64(1, 1)))
	require.False(t, iv.Contains(rational.FromInt64(2, 1)))
}

func TestIntervalJoinMeet(t *testing.T) {
	a := itv.Interval{Lower: rational.FromInt64(0, 1), Upper: rational.FromInt64(1, 1)}
	b := itv.Interval{Lower: rational.FromInt64(2, 1), Upper: rational.FromInt64(3, 1)}
	j := a.Join(b)
	require.True(t, j.Lower.Equal(rational.FromInt64(0, 1)))
	require.True(t, j.Upper.Equal(rational.FromInt64(3, 1)))

	m := a.Meet(b)
	require.True(t, m.IsEmpty())
}

func TestBBoxVolume(t *testing.T) {
	b := itv.New(2)
	b.Set(0, itv.Interval{Lower: rational.FromInt64(0, 1), Upper: rational.FromInt64(2, 1)})
	b.Set(1, itv.Interval{Lower: rational.FromInt64(0, 1), Upper: rational.FromInt64(3, 1)})
	vol, isInf := b.Volume()
	require.False(t, isInf)
	require.InDelta(t, 6.0, vol, 1e-9)
}

func TestBBoxUnbounded(t *testing.T) {
	b := itv.New(1)
	_, isInf := b.Volume()
	require.True(t, isInf)
}
