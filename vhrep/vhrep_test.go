package vhrep_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ezaffanella/pplite/poly"
	"github.com/ezaffanella/pplite/vhrep"
	"github.com/stretchr/testify/require"
)

func TestReadHRepresentationSquare(t *testing.T) {
	src := `H-representation
begin
4 3 integer
0 1 0
1 -1 0
0 0 1
1 0 -1
end
`
	doc, err := vhrep.Read(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, vhrep.HRepresentation, doc.Mode)
	require.Equal(t, 3, doc.NumCols)
	require.Len(t, doc.Rows, 4)

	p, err := vhrep.ToPoly(doc, poly.Closed)
	require.NoError(t, err)
	require.Equal(t, 2, p.Dim)
	require.False(t, p.IsEmpty())
}

func TestReadVRepresentationTriangle(t *testing.T) {
	src := `V-representation
begin
3 3 integer
1 0 0
1 1 0
1 0 1
end
`
	doc, err := vhrep.Read(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, vhrep.VRepresentation, doc.Mode)

	p, err := vhrep.ToPoly(doc, poly.Closed)
	require.NoError(t, err)
	require.Equal(t, 2, p.Dim)
	require.False(t, p.IsEmpty())
}

func TestReadRationalPoint(t *testing.T) {
	src := `V-representation
begin
1 3 rational
1 1/2 3/4
end
`
	doc, err := vhrep.Read(strings.NewReader(src))
	require.NoError(t, err)
	p, err := vhrep.ToPoly(doc, poly.Closed)
	require.NoError(t, err)
	require.Equal(t, 1, p.NumMinGens())
}

func TestLinearityMarksEqualities(t *testing.T) {
	src := `H-representation
linearity 1 1
begin
2 2 integer
0 1
1 -1
end
`
	doc, err := vhrep.Read(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, []int{0}, doc.Linearity)
}

func TestLinearityAfterEndIsError(t *testing.T) {
	src := `H-representation
begin
1 2 integer
0 1
end
linearity 1 1
`
	_, err := vhrep.Read(strings.NewReader(src))
	require.Error(t, err)
}

func TestReadMissingBeginIsError(t *testing.T) {
	_, err := vhrep.Read(strings.NewReader("H-representation\nend\n"))
	require.Error(t, err)
}

func TestWriteThenReadRoundTripsHRepresentation(t *testing.T) {
	e := poly.NewUniverse(poly.Closed, 2)

	var buf bytes.Buffer
	require.NoError(t, vhrep.Write(&buf, e, true, vhrep.FormatInteger))

	doc, err := vhrep.Read(&buf)
	require.NoError(t, err)
	require.Equal(t, vhrep.HRepresentation, doc.Mode)

	got, err := vhrep.ToPoly(doc, poly.Closed)
	require.NoError(t, err)
	require.Equal(t, e.Dim, got.Dim)
}

func TestWriteVRepresentationMarksLines(t *testing.T) {
	u := poly.NewUniverse(poly.Closed, 2)

	var buf bytes.Buffer
	require.NoError(t, vhrep.Write(&buf, u, false, vhrep.FormatInteger))

	out := buf.String()
	require.Contains(t, out, "V-representation")
	require.Contains(t, out, "linearity")
}
