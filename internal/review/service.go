package review

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/grip-data/review-insights/internal/model"
	"github.com/grip-data/review-insights/internal/warehouse"
)

// Summarizer is the opaque natural-language collaborator.
type Summarizer interface {
	Summarize(ctx context.Context, prompt string) (string, error)
}

// Service runs the aggregation pipeline for one seller per call:
// fetch, dedupe, classify, aggregate, and optionally sample and
// summarize. Processing is synchronous and request-scoped; fetched
// collections are treated as immutable snapshots.
type Service struct {
	fetcher    warehouse.Fetcher
	summarizer Summarizer
	sampleSize int
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithSampleSize overrides the summarization sample bound.
func WithSampleSize(n int) ServiceOption {
	return func(s *Service) {
		if n > 0 {
			s.sampleSize = n
		}
	}
}

// NewService builds a Service. summarizer may be nil for callers that
// never summarize (bucket and photo views).
func NewService(fetcher warehouse.Fetcher, summarizer Summarizer, opts ...ServiceOption) *Service {
	s := &Service{
		fetcher:    fetcher,
		summarizer: summarizer,
		sampleSize: DefaultSampleSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BuildCategoryBuckets produces the grouped category view for a
// seller. A seller with no reviews yields an empty, non-error result.
func (s *Service) BuildCategoryBuckets(ctx context.Context, sellerName string) ([]model.CategoryBucket, error) {
	reviews, err := s.fetchPrepared(ctx, sellerName)
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return nil, nil
	}

	catalog, err := s.fetcher.FetchCatalogProducts(ctx)
	if err != nil {
		return nil, err
	}
	flash, err := s.fetcher.FetchFlashProducts(ctx)
	if err != nil {
		return nil, err
	}

	buckets := BuildBuckets(reviews, BuildClassifications(catalog, flash))
	zap.L().Info("category buckets built",
		zap.String("seller", sellerName),
		zap.Int("reviews", len(reviews)),
		zap.Int("buckets", len(buckets)),
	)
	return buckets, nil
}

// BuildPhotoGallery produces the attached-photo view for a seller.
func (s *Service) BuildPhotoGallery(ctx context.Context, sellerName string) ([]model.PhotoEntry, error) {
	reviews, err := s.fetchPrepared(ctx, sellerName)
	if err != nil {
		return nil, err
	}
	return BuildPhotoGallery(reviews), nil
}

// BuildSample selects the summarization sample, renders the prompt
// from the template, and invokes the summarizer. A seller with no
// reviews short-circuits: empty result, no summarizer call. An empty
// template uses the built-in hashtag prompt.
func (s *Service) BuildSample(ctx context.Context, sellerName, template string) (*model.SampleResult, error) {
	reviews, err := s.fetchPrepared(ctx, sellerName)
	if err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return &model.SampleResult{}, nil
	}

	if template == "" {
		template = DefaultHashtagPrompt
	}
	sample := SelectSample(reviews, s.sampleSize)
	prompt := RenderPrompt(template, sample)

	if s.summarizer == nil {
		return nil, eris.New("review: no summarizer configured")
	}
	summary, err := s.summarizer.Summarize(ctx, prompt)
	if err != nil {
		return nil, eris.Wrapf(err, "review: summarize seller %s", sellerName)
	}

	zap.L().Info("sample summarized",
		zap.String("seller", sellerName),
		zap.Int("sample_size", len(sample)),
	)
	return &model.SampleResult{
		Reviews: sample,
		Prompt:  prompt,
		Summary: summary,
	}, nil
}

func (s *Service) fetchPrepared(ctx context.Context, sellerName string) ([]model.ReviewRecord, error) {
	raw, err := s.fetcher.FetchReviews(ctx, sellerName)
	if err != nil {
		return nil, eris.Wrapf(err, "review: fetch reviews for %s", sellerName)
	}
	return Prepare(raw), nil
}
