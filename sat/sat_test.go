package sat_test

import (
	"testing"

	"github.com/ezaffanella/pplite/sat"
	"github.com/stretchr/testify/require"
)

func TestAddRowAddCols(t *testing.T) {
	s := sat.New(2)
	i := s.AddRow()
	require.Equal(t, 0, i)
	row := s.Row(0)
	row.Set(1)
	s.SetRow(0, row)
	require.True(t, s.Row(0).Test(1))

	s.AddCols(2)
	require.Equal(t, 4, s.NumCols())
	require.Equal(t, 4, s.Row(0).Len())
}

func TestTransposeRoundtrip(t *testing.T) {
	s := sat.New(3)
	s.AddRow()
	s.AddRow()
	r0 := s.Row(0)
	r0.Set(0)
	r0.Set(2)
	s.SetRow(0, r0)
	r1 := s.Row(1)
	r1.Set(1)
	s.SetRow(1, r1)

	tr := s.Transpose()
	require.Equal(t, 3, tr.NumRows())
	require.Equal(t, 2, tr.NumCols())
	require.True(t, tr.Row(0).Test(0))
	require.True(t, tr.Row(2).Test(0))
	require.True(t, tr.Row(1).Test(1))

	back := tr.Transpose()
	require.True(t, back.Row(0).Equal(s.Row(0)))
	require.True(t, back.Row(1).Equal(s.Row(1)))
}

func TestRemoveRowsCols(t *testing.T) {
	s := sat.New(3)
	s.AddRow()
	s.AddRow()
	s.AddRow()
	for i := 0; i < 3; i++ {
		r := s.Row(i)
		r.Set(i)
		s.SetRow(i, r)
	}
	s.RemoveRows([]int{1})
	require.Equal(t, 2, s.NumRows())

	s.RemoveCols([]int{0})
	require.Equal(t, 2, s.NumCols())
}
