package config_test

import (
	"testing"

	"github.com/ezaffanella/pplite/config"
	"github.com/ezaffanella/pplite/poly"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatchesDocumentedConstants(t *testing.T) {
	c := config.Default()
	require.Equal(t, poly.Topology(config.DefaultTopology), c.Topology())
	require.Equal(t, config.DefaultWidening, c.Widening())
	require.Equal(t, config.DefaultWideningTokens, c.WideningTokens())
}

func TestNewAppliesOptionsInOrder(t *testing.T) {
	c := config.New(
		config.WithTopology(poly.NNC),
		config.WithWidening(config.WidenBoxedH79),
		config.WithWideningTokens(7),
	)
	require.Equal(t, poly.NNC, c.Topology())
	require.Equal(t, config.WidenBoxedH79, c.Widening())
	require.Equal(t, 7, c.WideningTokens())
}

func TestWithWideningPanicsOnUnknownSpec(t *testing.T) {
	require.Panics(t, func() {
		config.WithWidening(config.WideningSpec(99))
	})
}

func TestWithWideningTokensPanicsOnNegative(t *testing.T) {
	require.Panics(t, func() {
		config.WithWideningTokens(-1)
	})
}

func TestNewUniverseAndEmptyUseConfiguredTopology(t *testing.T) {
	c := config.New(config.WithTopology(poly.NNC))
	u := c.NewUniverse(2)
	e := c.NewEmpty(2)
	require.Equal(t, poly.NNC, u.Topology)
	require.Equal(t, poly.NNC, e.Topology)
}

func TestWidenToDispatchesToConfiguredOperator(t *testing.T) {
	c := config.New(config.WithWidening(config.WidenH79))
	p := poly.NewUniverse(poly.Closed, 1)
	q := poly.NewUniverse(poly.Closed, 1)
	cert, err := c.WidenTo(p, q)
	require.NoError(t, err)
	require.NotNil(t, cert)
}

func TestForGoroutineRegistersAndLooksUp(t *testing.T) {
	c := config.New(config.WithTopology(poly.NNC))
	h := config.ForGoroutine(c)
	defer config.Release(h)

	got := config.Lookup(h)
	require.Equal(t, poly.NNC, got.Topology())
}

func TestLookupUnknownHandleReturnsDefault(t *testing.T) {
	got := config.Lookup(config.Handle(999999))
	require.Equal(t, config.Default().Topology(), got.Topology())
}

func TestReleaseIsIdempotent(t *testing.T) {
	h := config.ForGoroutine(config.Default())
	config.Release(h)
	require.NotPanics(t, func() { config.Release(h) })
}
