package dump_test

import (
	"bytes"
	"testing"

	"github.com/ezaffanella/pplite/con"
	"github.com/ezaffanella/pplite/dump"
	"github.com/ezaffanella/pplite/integer"
	"github.com/ezaffanella/pplite/linear"
	"github.com/ezaffanella/pplite/poly"
	"github.com/stretchr/testify/require"
)

func halfPlane(dim int, coeff int64, bound int64) con.Con {
	e := linear.NewExpr(dim)
	e.Set(linear.Var(0), integer.NewFromInt64(-coeff))
	return con.New(e, integer.NewFromInt64(bound), con.NSI)
}

func TestRoundTripUniverse(t *testing.T) {
	p := poly.NewUniverse(poly.Closed, 2)
	p.AddCon(halfPlane(2, 1, 0))

	var buf bytes.Buffer
	require.NoError(t, dump.Write(&buf, p))

	got, err := dump.Read(&buf)
	require.NoError(t, err)
	require.Equal(t, p.Topology, got.Topology)
	require.Equal(t, p.Dim, got.Dim)
	require.Equal(t, p.NumMinCons(), got.NumMinCons())
	require.Equal(t, p.NumMinGens(), got.NumMinGens())
}

func TestRoundTripEmpty(t *testing.T) {
	p := poly.NewEmpty(poly.NNC, 3)

	var buf bytes.Buffer
	require.NoError(t, dump.Write(&buf, p))

	got, err := dump.Read(&buf)
	require.NoError(t, err)
	require.True(t, got.IsEmpty())
	require.Equal(t, 3, got.Dim)
}

func TestReadMalformedReturnsError(t *testing.T) {
	_, err := dump.Read(bytes.NewBufferString("not a dump\n"))
	require.Error(t, err)
}
