package embedding

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/patrickmn/go-cache"
)

// CachedProvider memoizes embeddings by text so repeated queries do not burn
// upstream quota. Errors are never cached.
type CachedProvider struct {
	inner Provider
	cache *cache.Cache
}

var _ Provider = &CachedProvider{}

func NewCachedProvider(inner Provider) *CachedProvider {
	// Default expiration 1 hour, purge expired entries every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &CachedProvider{
		inner: inner,
		cache: c,
	}
}

func (p *CachedProvider) Generate(ctx context.Context, text string) ([]float32, error) {
	key := cacheKey(text)
	if x, found := p.cache.Get(key); found {
		return x.([]float32), nil
	}

	vector, err := p.inner.Generate(ctx, text)
	if err != nil {
		return nil, err
	}

	p.cache.Set(key, vector, cache.DefaultExpiration)
	return vector, nil
}

func (p *CachedProvider) Dimensions() int {
	return p.inner.Dimensions()
}

func cacheKey(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}
