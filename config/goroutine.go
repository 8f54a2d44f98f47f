package config

import "sync"

// Handle identifies a scope registered with ForGoroutine. It is not
// tied to any actual goroutine id (Go exposes none); callers own the
// handle and pass it explicitly, which is the point: there is no
// hidden thread-local lookup, only an explicit key into a shared map.
type Handle uint64

var (
	registryMu sync.Mutex
	registry   = make(map[Handle]*Config)
	nextHandle Handle
)

// ForGoroutine registers cfg under a freshly minted Handle and returns
// it, for code migrating from the C++ original's implicit thread-local
// globals that still wants scoped-but-shared configuration. New code
// should prefer threading a *Config explicitly.
func ForGoroutine(cfg *Config) Handle {
	registryMu.Lock()
	defer registryMu.Unlock()
	nextHandle++
	h := nextHandle
	registry[h] = cfg
	return h
}

// Lookup returns the Config registered under h, or Default() if h is
// unknown (e.g. never registered, or already released).
func Lookup(h Handle) *Config {
	registryMu.Lock()
	defer registryMu.Unlock()
	if cfg, ok := registry[h]; ok {
		return cfg
	}
	return Default()
}

// Release forgets h's registration. Safe to call more than once.
func Release(h Handle) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, h)
}
