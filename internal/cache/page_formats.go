package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/TemirB/internetmarke/internal/domain"
	"github.com/TemirB/internetmarke/internal/observability"
)

const (
	PageFormatPrefix    = "PAGE_FORMAT"
	DefaultReferenceTTL = 24 * time.Hour
)

// Fetcher retrieves the full page format list from the remote service.
type Fetcher func(ctx context.Context) ([]domain.PageFormat, error)

// PageFormats caches the reference list of page formats.
//
// The check-then-fetch in Load is not atomic: two callers racing on a cold
// cache may both fetch. The fetch is idempotent and the second write stores
// equivalent data, so the race is benign.
type PageFormats struct {
	store   *Store[domain.PageFormatSpec]
	metrics observability.Metrics
}

// NewPageFormats creates the cache. Each call starts the store's expiry
// sweeper, so build one per process and share it.
func NewPageFormats(ttl time.Duration, metrics observability.Metrics) *PageFormats {
	if ttl <= 0 {
		ttl = DefaultReferenceTTL
	}
	if metrics == nil {
		metrics = observability.Noop{}
	}
	return &PageFormats{
		store:   NewStore[domain.PageFormatSpec](PageFormatPrefix, 0, ttl),
		metrics: metrics,
	}
}

// Load returns the cached id->PageFormat mapping, calling fetch only when the
// cache holds no unexpired page formats.
func (c *PageFormats) Load(ctx context.Context, fetch Fetcher) (map[int]domain.PageFormat, error) {
	if cached := c.snapshot(); len(cached) > 0 {
		c.metrics.IncCacheHit()
		return cached, nil
	}
	c.metrics.IncCacheMiss()
	return c.fetch(ctx, fetch)
}

// Lookup returns one page format and records a single hit or miss. On a miss
// the list is reloaded through fetch unless other entries are still fresh.
func (c *PageFormats) Lookup(ctx context.Context, id int, fetch Fetcher) (domain.PageFormat, error) {
	if spec, err := c.store.Get(strconv.Itoa(id)); err == nil {
		c.metrics.IncCacheHit()
		return domain.PageFormat{ID: id, PageFormatSpec: spec}, nil
	}
	c.metrics.IncCacheMiss()

	formats := c.snapshot()
	if len(formats) == 0 {
		var err error
		if formats, err = c.fetch(ctx, fetch); err != nil {
			return domain.PageFormat{}, err
		}
	}
	f, ok := formats[id]
	if !ok {
		return domain.PageFormat{}, fmt.Errorf("%w: page format %d", domain.ErrNotFound, id)
	}
	return f, nil
}

func (c *PageFormats) Get(id int) (domain.PageFormat, error) {
	spec, err := c.store.Get(strconv.Itoa(id))
	if err != nil {
		c.metrics.IncCacheMiss()
		return domain.PageFormat{}, err
	}
	c.metrics.IncCacheHit()
	return domain.PageFormat{ID: id, PageFormatSpec: spec}, nil
}

func (c *PageFormats) Clear() {
	c.store.Purge()
}

func (c *PageFormats) fetch(ctx context.Context, fetch Fetcher) (map[int]domain.PageFormat, error) {
	formats, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	out := make(map[int]domain.PageFormat, len(formats))
	for _, f := range formats {
		c.store.Set(strconv.Itoa(f.ID), f.PageFormatSpec)
		out[f.ID] = f
	}
	return out, nil
}

func (c *PageFormats) snapshot() map[int]domain.PageFormat {
	entries := c.store.Entries()
	out := make(map[int]domain.PageFormat, len(entries))
	for key, spec := range entries {
		id, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		out[id] = domain.PageFormat{ID: id, PageFormatSpec: spec}
	}
	return out
}
