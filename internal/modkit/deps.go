// Package modkit provides module wiring and core deps
package modkit

import (
	"devfeed/internal/core/memo"
	"devfeed/internal/platform/config"
	"devfeed/internal/platform/logger"
	"devfeed/internal/platform/metrics"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf

	// Cache is the process wide memo cache every source reads through
	Cache *memo.Cache
	// Metrics may be nil, collectors treat a nil registry as a no-op
	Metrics *metrics.Registry
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// a nil Cache is replaced by the module that needs one
func (d Deps) ZeroOK() bool { return true }

// CacheOrNew returns the shared cache, or a fresh one observed by Metrics when unset
func (d Deps) CacheOrNew() *memo.Cache {
	if d.Cache != nil {
		return d.Cache
	}
	return memo.New(memo.WithObserver(d.Metrics))
}
