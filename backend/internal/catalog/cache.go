package catalog

import (
	"context"
	"sync"

	"github.com/arvemy/YUScheduler/backend/internal/model"
)

// Cache is a fill-once-then-read catalog cache in front of any Provider.
// The first Load for a term populates the entry; every later Load returns
// the same immutable catalog without touching the underlying source.
// Failed loads are not cached, so a transient source error does not pin an
// empty term.
type Cache struct {
	provider Provider

	mu      sync.Mutex
	entries map[string]*model.Catalog
}

// NewCache wraps a provider with a per-term cache.
func NewCache(provider Provider) *Cache {
	return &Cache{
		provider: provider,
		entries:  make(map[string]*model.Catalog),
	}
}

// Terms passes through to the underlying provider: the set of available
// terms is cheap to list and may grow while the process runs.
func (c *Cache) Terms(ctx context.Context) ([]string, error) {
	return c.provider.Terms(ctx)
}

// Load returns the cached catalog for the term, filling it on first use.
// An empty "latest" request is resolved to the current latest term name
// before the cache is consulted, so a term added while the process runs
// takes effect on the next request instead of being pinned behind the
// first-ever latest.
func (c *Cache) Load(ctx context.Context, term string) (*model.Catalog, error) {
	if term == "" {
		terms, err := c.provider.Terms(ctx)
		if err != nil {
			return nil, err
		}
		if len(terms) == 0 {
			return nil, ErrNoTermData
		}
		term = terms[0]
	}

	c.mu.Lock()
	if cat, ok := c.entries[term]; ok {
		c.mu.Unlock()
		return cat, nil
	}
	c.mu.Unlock()

	cat, err := c.provider.Load(ctx, term)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	// Another request may have filled the entry meanwhile; both loads saw
	// the same immutable source, so keeping the first one is safe.
	if existing, ok := c.entries[term]; ok {
		cat = existing
	} else {
		c.entries[term] = cat
	}
	c.mu.Unlock()

	return cat, nil
}
