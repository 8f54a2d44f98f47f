// Package config carries the handful of settings the C++ original kept
// as thread-local globals (default topology, widening choice): callers
// build a *Config explicitly and thread it through, rather than
// mutating hidden state. Option constructors validate and panic on
// nonsensical values; nothing in this package touches global mutable
// state except the optional goroutine-scoped registry in goroutine.go.
package config

import "github.com/ezaffanella/pplite/poly"

// WideningSpec selects which widening operator a caller's up-to-
// fixpoint loop should use by default.
type WideningSpec int

const (
	// WidenH79 is the unguarded ("risky") widening.
	WidenH79 WideningSpec = iota
	// WidenBoxedH79 adds bounding-box stabilization.
	WidenBoxedH79
	// WidenBHRZ03 additionally re-admits single-dimension bounds.
	WidenBHRZ03
)

func (w WideningSpec) String() string {
	switch w {
	case WidenBoxedH79:
		return "BoxedH79"
	case WidenBHRZ03:
		return "BHRZ03"
	default:
		return "H79"
	}
}

const (
	// DefaultTopology is the topology NewUniverse/NewEmpty use when a
	// caller doesn't specify one.
	DefaultTopology = poly.Closed
	// DefaultWidening is the widening operator WidenTo dispatches to.
	DefaultWidening = WidenH79
	// DefaultWideningTokens is the number of consecutive non-
	// stabilizing widening steps tolerated before a caller's loop
	// should fall back to a cruder (H79) widening to force convergence.
	DefaultWideningTokens = 3
)

// Config is an immutable bundle of PPLite-wide defaults. The zero
// value is not valid; build one with New or use Default().
type Config struct {
	topology       poly.Topology
	widening       WideningSpec
	wideningTokens int
}

// Option mutates a Config under construction.
type Option func(*Config)

// WithTopology sets the default topology new polyhedra are built with.
func WithTopology(t poly.Topology) Option {
	return func(c *Config) { c.topology = t }
}

// WithWidening sets the default widening operator.
func WithWidening(w WideningSpec) Option {
	if w != WidenH79 && w != WidenBoxedH79 && w != WidenBHRZ03 {
		panic("config: WithWidening: unknown widening spec")
	}
	return func(c *Config) { c.widening = w }
}

// WithWideningTokens sets the widening-delay token count: the number
// of iterations of an ascending chain a caller's analysis loop may run
// before widening kicks in, trading precision for guaranteed
// termination (spec.md §4.8 "widening tokens" terminology).
func WithWideningTokens(n int) Option {
	if n < 0 {
		panic("config: WithWideningTokens: n must be >= 0")
	}
	return func(c *Config) { c.wideningTokens = n }
}

// New builds a Config from documented defaults plus opts, applied in
// order (last writer wins).
func New(opts ...Option) *Config {
	c := &Config{
		topology:       DefaultTopology,
		widening:       DefaultWidening,
		wideningTokens: DefaultWideningTokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Default returns a Config built entirely from documented defaults.
func Default() *Config { return New() }

// Topology returns the configured default topology.
func (c *Config) Topology() poly.Topology { return c.topology }

// Widening returns the configured default widening operator.
func (c *Config) Widening() WideningSpec { return c.widening }

// WideningTokens returns the configured widening-delay token count.
func (c *Config) WideningTokens() int { return c.wideningTokens }

// WidenTo widens p (older iterate) against q (newer iterate) using
// the operator this Config selects.
func (c *Config) WidenTo(p, q *poly.Poly) (*poly.WidenCertificate, error) {
	switch c.widening {
	case WidenBoxedH79:
		return p.WidenBoxedH79(q)
	case WidenBHRZ03:
		return p.WidenBHRZ03(q)
	default:
		return p.WidenH79(q)
	}
}

// NewUniverse builds the universe polyhedron of dim using c's default
// topology.
func (c *Config) NewUniverse(dim int) *poly.Poly { return poly.NewUniverse(c.topology, dim) }

// NewEmpty builds the empty polyhedron of dim using c's default topology.
func (c *Config) NewEmpty(dim int) *poly.Poly { return poly.NewEmpty(c.topology, dim) }
