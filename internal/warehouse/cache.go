package warehouse

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/grip-data/review-insights/internal/model"
	"github.com/grip-data/review-insights/internal/store"
)

// DefaultCacheTTL matches the upstream dashboards: one day.
const DefaultCacheTTL = 24 * time.Hour

// CachedFetcher decorates a Fetcher with a read-through TTL cache. The
// cache is strictly best-effort: a cache failure logs a warning and
// falls through to the warehouse, never to the caller.
type CachedFetcher struct {
	inner Fetcher
	cache store.Cache
	ttl   time.Duration
}

// NewCached wraps inner with the given cache. A non-positive ttl uses
// DefaultCacheTTL.
func NewCached(inner Fetcher, cache store.Cache, ttl time.Duration) *CachedFetcher {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedFetcher{inner: inner, cache: cache, ttl: ttl}
}

// ReviewsKey is the cache key for one seller's review fetch.
func ReviewsKey(sellerName string) string { return "reviews:" + sellerName }

// Cache keys for the argument-free product fetches.
const (
	CatalogKey = "catalog_products"
	FlashKey   = "flash_products"
)

func (c *CachedFetcher) FetchReviews(ctx context.Context, sellerName string) ([]model.ReviewRecord, error) {
	return cached(ctx, c, ReviewsKey(sellerName), func() ([]model.ReviewRecord, error) {
		return c.inner.FetchReviews(ctx, sellerName)
	})
}

func (c *CachedFetcher) FetchCatalogProducts(ctx context.Context) ([]model.CatalogProductRecord, error) {
	return cached(ctx, c, CatalogKey, func() ([]model.CatalogProductRecord, error) {
		return c.inner.FetchCatalogProducts(ctx)
	})
}

func (c *CachedFetcher) FetchFlashProducts(ctx context.Context) ([]model.FlashProductRecord, error) {
	return cached(ctx, c, FlashKey, func() ([]model.FlashProductRecord, error) {
		return c.inner.FetchFlashProducts(ctx)
	})
}

func cached[T any](ctx context.Context, c *CachedFetcher, key string, fetch func() ([]T, error)) ([]T, error) {
	payload, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		zap.L().Warn("fetch cache read failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		var out []T
		if err := json.Unmarshal(payload, &out); err != nil {
			zap.L().Warn("fetch cache payload corrupt", zap.String("key", key), zap.Error(err))
		} else {
			return out, nil
		}
	}

	out, err := fetch()
	if err != nil {
		return nil, err
	}

	payload, err = json.Marshal(out)
	if err != nil {
		zap.L().Warn("fetch cache marshal failed", zap.String("key", key), zap.Error(err))
		return out, nil
	}
	if err := c.cache.Set(ctx, key, payload, c.ttl); err != nil {
		zap.L().Warn("fetch cache write failed", zap.String("key", key), zap.Error(err))
	}
	return out, nil
}
