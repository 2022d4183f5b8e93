package embedding

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// cachedProvider wraps a Provider with an expirable LRU so repeated
// queries do not re-embed the same text. Safe because providers are
// deterministic for a pinned configuration.
type cachedProvider struct {
	inner Provider
	cache *expirable.LRU[string, []float32]
}

// Cached wraps the given provider with an LRU cache of the given size
// and entry TTL.
func Cached(inner Provider, size int, ttl time.Duration) Provider {
	return &cachedProvider{
		inner: inner,
		cache: expirable.NewLRU[string, []float32](size, nil, ttl),
	}
}

func (c *cachedProvider) Name() string { return c.inner.Name() }

func (c *cachedProvider) Prepare(corpus []string) error { return c.inner.Prepare(corpus) }

func (c *cachedProvider) Dimension() int { return c.inner.Dimension() }

func (c *cachedProvider) Embed(text string) ([]float32, error) {
	if vec, ok := c.cache.Get(text); ok {
		return vec, nil
	}
	vec, err := c.inner.Embed(text)
	if err != nil {
		return nil, err
	}
	c.cache.Add(text, vec)
	return vec, nil
}
