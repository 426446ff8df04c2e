// Package warehouse fetches review and product rows from the analytics
// warehouse. Fetchers hold an injected pool and no ambient connection
// state; every result is an immutable snapshot for one request.
package warehouse

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/grip-data/review-insights/internal/db"
	"github.com/grip-data/review-insights/internal/model"
)

// DefaultThumbBaseURL prefixes warehouse image paths into servable
// thumbnail URLs.
const DefaultThumbBaseURL = "https://thumb-ssl.grip.show"

// Fetcher is the warehouse read interface consumed by the review
// service.
type Fetcher interface {
	FetchReviews(ctx context.Context, sellerName string) ([]model.ReviewRecord, error)
	FetchCatalogProducts(ctx context.Context) ([]model.CatalogProductRecord, error)
	FetchFlashProducts(ctx context.Context) ([]model.FlashProductRecord, error)
}

// SQLFetcher implements Fetcher against the warehouse over pgx.
type SQLFetcher struct {
	pool       db.Pool
	thumbBase  string
	monthsBack int
}

// Option configures a SQLFetcher.
type Option func(*SQLFetcher)

// WithThumbBaseURL overrides the thumbnail host prefix.
func WithThumbBaseURL(base string) Option {
	return func(f *SQLFetcher) { f.thumbBase = base }
}

// WithMonthsBack overrides the review lookback window.
func WithMonthsBack(months int) Option {
	return func(f *SQLFetcher) { f.monthsBack = months }
}

// New creates a SQLFetcher on the given pool.
func New(pool db.Pool, opts ...Option) *SQLFetcher {
	f := &SQLFetcher{
		pool:       pool,
		thumbBase:  DefaultThumbBaseURL,
		monthsBack: 6,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchReviews returns the seller's review rows from the lookback
// window, in warehouse order. Zero-length texts and zero-priced
// products are excluded in SQL, which is the upstream guarantee the
// core relies on.
func (f *SQLFetcher) FetchReviews(ctx context.Context, sellerName string) ([]model.ReviewRecord, error) {
	rows, err := f.pool.Query(ctx, reviewsQuery, sellerName, f.thumbBase, f.monthsBack)
	if err != nil {
		return nil, eris.Wrapf(err, "warehouse: fetch reviews for %s", sellerName)
	}
	defer rows.Close()

	var out []model.ReviewRecord
	for rows.Next() {
		var r model.ReviewRecord
		if err := rows.Scan(
			&r.ReviewID, &r.ProductID, &r.ProductInternalID,
			&r.SellerID, &r.SellerName,
			&r.ReviewerID, &r.ReviewerName,
			&r.Text, &r.Rating, &r.TextLength, &r.CreatedAt,
			&r.SellerComment, &r.ThumbnailURL, &r.CostPrice,
			&r.AttachedImageURLs,
		); err != nil {
			return nil, eris.Wrap(err, "warehouse: scan review row")
		}
		out = append(out, r)
	}
	return out, eris.Wrap(rows.Err(), "warehouse: iterate reviews")
}

// FetchCatalogProducts returns always-available products, one row per
// (product, category) pair; products without a category assignment
// come back with an empty category name.
func (f *SQLFetcher) FetchCatalogProducts(ctx context.Context) ([]model.CatalogProductRecord, error) {
	rows, err := f.pool.Query(ctx, catalogQuery, f.thumbBase)
	if err != nil {
		return nil, eris.Wrap(err, "warehouse: fetch catalog products")
	}
	defer rows.Close()

	var out []model.CatalogProductRecord
	for rows.Next() {
		var c model.CatalogProductRecord
		if err := rows.Scan(
			&c.ProductID, &c.CanonicalName, &c.CategoryName,
			&c.CostPrice, &c.ThumbnailURL,
		); err != nil {
			return nil, eris.Wrap(err, "warehouse: scan catalog row")
		}
		out = append(out, c)
	}
	return out, eris.Wrap(rows.Err(), "warehouse: iterate catalog products")
}

// FetchFlashProducts returns time-boxed flash products with their
// denormalized category levels.
func (f *SQLFetcher) FetchFlashProducts(ctx context.Context) ([]model.FlashProductRecord, error) {
	rows, err := f.pool.Query(ctx, flashQuery, f.thumbBase)
	if err != nil {
		return nil, eris.Wrap(err, "warehouse: fetch flash products")
	}
	defer rows.Close()

	var out []model.FlashProductRecord
	for rows.Next() {
		var p model.FlashProductRecord
		if err := rows.Scan(
			&p.ProductID, &p.LLMName,
			&p.Level2Category, &p.Level3Category, &p.Level4Category,
			&p.CostPrice, &p.ThumbnailURL, &p.RequestedAt,
		); err != nil {
			return nil, eris.Wrap(err, "warehouse: scan flash row")
		}
		out = append(out, p)
	}
	return out, eris.Wrap(rows.Err(), "warehouse: iterate flash products")
}
