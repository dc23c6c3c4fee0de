// Package querycache is a keyed cache of API read queries.
//
// Slots are addressed by tuple keys ([resource, filters..., page]) and can
// be invalidated by key prefix, so dropping every cached categories page
// is a single Invalidate(K("categories")) regardless of filter or page
// suffix. Concurrent reads of the same key coalesce into one in-flight
// fetch. Reads are retried on retryable failures up to the configured
// attempt budget; after the budget is exhausted a connectivity alert is
// surfaced exactly once until it is dismissed. Mutations never pass
// through the cache and are therefore never retried.
package querycache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/g-villarinho/flash-buy-admin/internal/apierr"
	"github.com/g-villarinho/flash-buy-admin/internal/metrics"
)

// FetchFunc loads the value for a cache slot from the API.
type FetchFunc func(ctx context.Context) (any, error)

// Options tune a single query.
type Options struct {
	// FreshFor serves the cached value without revalidation inside this
	// window. Zero means always revalidate, the default for entity reads.
	// Reference lookups that feed dropdowns use a bounded window since a
	// stale option there is low-cost.
	FreshFor time.Duration
	// NoRetry disables the retry loop for this query.
	NoRetry bool
}

// Config configures a Cache.
type Config struct {
	Retry RetryConfig
	// OnConnectivityLost is invoked once when a read exhausts its retry
	// budget; further failures stay silent until DismissConnectivityAlert.
	OnConnectivityLost func()
	Logger             zerolog.Logger
}

// Cache is a keyed query cache. The zero value is not usable; create one
// with New.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry

	retry              RetryConfig
	onConnectivityLost func()
	alerted            bool
	log                zerolog.Logger

	// overridable in tests
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

type entry struct {
	key       Key
	data      any
	fetchedAt time.Time
	freshFor  time.Duration
	stale     bool
	populated bool
	inflight  *call
}

// call is one in-flight fetch shared by every coalesced waiter.
type call struct {
	done chan struct{}
	data any
	err  error
}

// New creates a Cache.
func New(cfg Config) *Cache {
	retry := cfg.Retry
	if retry.MaxAttempts == 0 {
		retry = DefaultRetryConfig()
	}
	return &Cache{
		entries:            make(map[string]*entry),
		retry:              retry,
		onConnectivityLost: cfg.OnConnectivityLost,
		log:                cfg.Logger,
		now:                time.Now,
		sleep:              sleepCtx,
	}
}

// Query returns the value for key, fetching it when the slot is empty,
// stale, or outside its freshness window. Concurrent calls for the same
// key share a single fetch.
func (c *Cache) Query(ctx context.Context, key Key, fetch FetchFunc, opts Options) (any, error) {
	c.mu.Lock()
	id := key.String()
	e := c.entries[id]

	if e != nil && e.inflight != nil {
		pending := e.inflight
		c.mu.Unlock()
		select {
		case <-pending.done:
			return pending.data, pending.err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if e != nil && e.populated && !e.stale && e.freshFor > 0 && c.now().Sub(e.fetchedAt) < e.freshFor {
		data := e.data
		c.mu.Unlock()
		metrics.CacheHit()
		return data, nil
	}

	if e == nil {
		e = &entry{key: key}
		c.entries[id] = e
	}
	pending := &call{done: make(chan struct{})}
	e.inflight = pending
	c.mu.Unlock()

	metrics.CacheMiss()
	data, err := c.fetchWithRetry(ctx, key, fetch, opts)

	c.mu.Lock()
	pending.data, pending.err = data, err
	if err == nil {
		e.data = data
		e.fetchedAt = c.now()
		e.freshFor = opts.FreshFor
		e.stale = false
		e.populated = true
	}
	e.inflight = nil
	close(pending.done)
	c.mu.Unlock()

	return data, err
}

func (c *Cache) fetchWithRetry(ctx context.Context, key Key, fetch FetchFunc, opts Options) (any, error) {
	attempts := c.retry.MaxAttempts
	if opts.NoRetry {
		attempts = 1
	}

	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			metrics.QueryRetried()
			if sleepErr := c.sleep(ctx, c.retry.backoff(attempt-1)); sleepErr != nil {
				return nil, sleepErr
			}
		}

		var data any
		data, err = fetch(ctx)
		if err == nil {
			return data, nil
		}
		if !apierr.IsRetryable(err) {
			return nil, err
		}
		c.log.Warn().Stringer("key", key).Int("attempt", attempt+1).Err(err).Msg("read query failed")
	}

	if !opts.NoRetry {
		c.raiseConnectivityAlert()
	}
	return nil, err
}

// raiseConnectivityAlert fires the connectivity callback at most once
// until the alert is dismissed, so simultaneous failing queries do not
// stack duplicate alerts.
func (c *Cache) raiseConnectivityAlert() {
	c.mu.Lock()
	if c.alerted || c.onConnectivityLost == nil {
		c.mu.Unlock()
		return
	}
	c.alerted = true
	notify := c.onConnectivityLost
	c.mu.Unlock()
	notify()
}

// DismissConnectivityAlert re-arms the connectivity alert after the user
// closes it.
func (c *Cache) DismissConnectivityAlert() {
	c.mu.Lock()
	c.alerted = false
	c.mu.Unlock()
}

// Invalidate marks every slot under prefix stale and returns how many
// slots were touched. The next read of a stale slot refetches.
func (c *Cache) Invalidate(prefix Key) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, e := range c.entries {
		if e.key.HasPrefix(prefix) && e.populated && !e.stale {
			e.stale = true
			n++
		}
	}
	metrics.CacheInvalidated(n)
	return n
}

// Remove drops every slot under prefix entirely.
func (c *Cache) Remove(prefix Key) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for id, e := range c.entries {
		if e.key.HasPrefix(prefix) {
			delete(c.entries, id)
			n++
		}
	}
	return n
}

// Update rewrites the cached value at exactly key in place, without
// touching its freshness. It reports whether a populated slot existed.
func (c *Cache) Update(key Key, update func(old any) any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key.String()]
	if !ok || !e.populated {
		return false
	}
	e.data = update(e.data)
	return true
}

// UpdateMatching rewrites every populated slot under prefix in place and
// returns how many were rewritten. Used to patch a renamed store into all
// cached store lists without a refetch.
func (c *Cache) UpdateMatching(prefix Key, update func(key Key, old any) any) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, e := range c.entries {
		if e.key.HasPrefix(prefix) && e.populated {
			e.data = update(e.key, e.data)
			n++
		}
	}
	return n
}

// Peek returns the cached value at key without fetching or revalidating.
func (c *Cache) Peek(key Key) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key.String()]
	if !ok || !e.populated {
		return nil, false
	}
	return e.data, true
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Fetch is the typed entry point over Cache.Query.
func Fetch[T any](ctx context.Context, c *Cache, key Key, opts Options, fetch func(ctx context.Context) (T, error)) (T, error) {
	data, err := c.Query(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	}, opts)
	if err != nil {
		var zero T
		return zero, err
	}
	value, ok := data.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("querycache: slot %s holds %T", key, data)
	}
	return value, nil
}
