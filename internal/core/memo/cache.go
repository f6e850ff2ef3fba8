// Package memo is an in-process key/value store with per-entry expiry and a
// get-or-compute combinator used in front of every upstream call
package memo

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	perr "devfeed/internal/platform/errors"

	"golang.org/x/sync/singleflight"
)

// DefaultTTL applies when neither the cache nor the call site sets one
const DefaultTTL = time.Hour

// Cache events reported to an Observer
const (
	EventHit       = "hit"
	EventMiss      = "miss"
	EventExpired   = "expired"
	EventCompute   = "compute"
	EventCoalesced = "coalesced"
)

// Observer receives cache events, metrics.Registry satisfies it
type Observer interface {
	CacheEvent(event string)
}

type entry struct {
	value  any
	expiry time.Time
}

// Cache maps string keys to values that expire ttl after they were stored
// expired entries are dropped lazily by Get, there is no background sweep and no size bound
type Cache struct {
	mu    sync.Mutex
	items map[string]entry

	ttl      time.Duration
	now      func() time.Time
	coalesce bool
	flights  singleflight.Group
	observer Observer

	hits, misses, expired, computes, coalesced atomic.Uint64
}

// Option configures a Cache
type Option func(*Cache)

// WithDefaultTTL sets the ttl used by Set and by GetOrCompute calls passing 0
func WithDefaultTTL(d time.Duration) Option {
	return func(c *Cache) {
		if d > 0 {
			c.ttl = d
		}
	}
}

// WithClock replaces time.Now, for tests
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// WithCoalescing makes concurrent misses on one key share a single computation
// without it two callers racing on a cold key both run their compute function
func WithCoalescing(on bool) Option {
	return func(c *Cache) { c.coalesce = on }
}

// WithObserver reports hits, misses, expiries and computes to o
func WithObserver(o Observer) Option {
	return func(c *Cache) { c.observer = o }
}

// New returns an empty cache
func New(opts ...Option) *Cache {
	c := &Cache{
		items: make(map[string]entry),
		ttl:   DefaultTTL,
		now:   time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// DefaultTTL returns the ttl applied when callers do not pass one
func (c *Cache) DefaultTTL() time.Duration { return c.ttl }

// Get returns the value for key while it is fresh
// an entry is fresh strictly before its expiry, a stale entry is removed
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	e, ok := c.items[key]
	if ok && !c.now().Before(e.expiry) {
		delete(c.items, key)
		c.mu.Unlock()
		c.emit(EventExpired, &c.expired)
		c.emit(EventMiss, &c.misses)
		return nil, false
	}
	c.mu.Unlock()

	if !ok {
		c.emit(EventMiss, &c.misses)
		return nil, false
	}
	c.emit(EventHit, &c.hits)
	return e.value, true
}

// Set stores v under key with the default ttl, replacing any prior entry
func (c *Cache) Set(key string, v any) { c.SetTTL(key, v, 0) }

// SetTTL stores v under key expiring ttl from now, ttl <= 0 means the default
func (c *Cache) SetTTL(key string, v any, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.ttl
	}
	c.mu.Lock()
	c.items[key] = entry{value: v, expiry: c.now().Add(ttl)}
	c.mu.Unlock()
}

// Delete removes key, absent keys are ignored
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

// Clear drops every entry
func (c *Cache) Clear() {
	c.mu.Lock()
	c.items = make(map[string]entry)
	c.mu.Unlock()
}

// Len counts stored entries, including expired ones not yet read
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// GetOrCompute returns the fresh value under key, or runs fn and stores its result
// for ttl (0 means the default). Errors from fn are returned and never stored
func (c *Cache) GetOrCompute(ctx context.Context, key string, ttl time.Duration, fn func(context.Context) (any, error)) (any, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	if !c.coalesce {
		return c.compute(ctx, key, ttl, fn)
	}

	ch := c.flights.DoChan(key, func() (any, error) {
		// a flight that finished between our Get and DoChan may have filled the key
		if v, ok := c.peek(key); ok {
			return v, nil
		}
		// the flight outlives any one caller; each waiter still honours its own ctx below
		return c.compute(context.WithoutCancel(ctx), key, ttl, fn)
	})
	select {
	case res := <-ch:
		if res.Shared {
			c.emit(EventCoalesced, &c.coalesced)
		}
		return res.Val, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Cache) compute(ctx context.Context, key string, ttl time.Duration, fn func(context.Context) (any, error)) (any, error) {
	c.emit(EventCompute, &c.computes)
	v, err := fn(ctx)
	if err != nil {
		return nil, err
	}
	c.SetTTL(key, v, ttl)
	return v, nil
}

// peek reads a fresh value without touching counters
func (c *Cache) peek(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.items[key]
	if !ok || !c.now().Before(e.expiry) {
		return nil, false
	}
	return e.value, true
}

func (c *Cache) emit(event string, ctr *atomic.Uint64) {
	ctr.Add(1)
	if c.observer != nil {
		c.observer.CacheEvent(event)
	}
}

// Stats is a point in time view of cache counters
type Stats struct {
	Entries    int           `json:"entries" example:"12"`
	Hits       uint64        `json:"hits" example:"40"`
	Misses     uint64        `json:"misses" example:"12"`
	Expired    uint64        `json:"expired" example:"2"`
	Computes   uint64        `json:"computes" example:"12"`
	Coalesced  uint64        `json:"coalesced" example:"0"`
	DefaultTTL time.Duration `json:"default_ttl_ns" swaggertype:"integer" example:"3600000000000"`
	Coalescing bool          `json:"coalescing" example:"true"`
}

// Stats returns the current counters
func (c *Cache) Stats() Stats {
	return Stats{
		Entries:    c.Len(),
		Hits:       c.hits.Load(),
		Misses:     c.misses.Load(),
		Expired:    c.expired.Load(),
		Computes:   c.computes.Load(),
		Coalesced:  c.coalesced.Load(),
		DefaultTTL: c.ttl,
		Coalescing: c.coalesce,
	}
}

// Fetch is GetOrCompute with a typed result
func Fetch[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	v, err := c.GetOrCompute(ctx, key, ttl, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})
	if err != nil {
		return zero, err
	}
	t, ok := v.(T)
	if !ok {
		return zero, perr.Internalf("memo: key %q holds %T", key, v)
	}
	return t, nil
}
