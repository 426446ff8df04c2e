package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grip-data/review-insights/internal/model"
	"github.com/grip-data/review-insights/internal/review"
)

type stubFetcher struct {
	reviews []model.ReviewRecord
	catalog []model.CatalogProductRecord
	flash   []model.FlashProductRecord
}

func (f *stubFetcher) FetchReviews(_ context.Context, _ string) ([]model.ReviewRecord, error) {
	return f.reviews, nil
}

func (f *stubFetcher) FetchCatalogProducts(_ context.Context) ([]model.CatalogProductRecord, error) {
	return f.catalog, nil
}

func (f *stubFetcher) FetchFlashProducts(_ context.Context) ([]model.FlashProductRecord, error) {
	return f.flash, nil
}

type stubSummarizer struct{ summary string }

func (s *stubSummarizer) Summarize(_ context.Context, _ string) (string, error) {
	return s.summary, nil
}

func testRouter(fetcher *stubFetcher, summarizer review.Summarizer) http.Handler {
	return buildRouter(review.NewService(fetcher, summarizer))
}

func TestServeHealth(t *testing.T) {
	router := testRouter(&stubFetcher{}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServeBuckets(t *testing.T) {
	fetcher := &stubFetcher{
		reviews: []model.ReviewRecord{
			{ReviewID: 1, ProductID: "P-1", ProductInternalID: 11, Text: "좋아요", TextLength: 3, ThumbnailURL: "https://t/1"},
		},
		catalog: []model.CatalogProductRecord{
			{ProductID: "P-1", CanonicalName: "셔츠", CategoryName: "상의"},
		},
	}
	router := testRouter(fetcher, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sellers/acme/buckets", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Seller  string                 `json:"seller"`
		Buckets []model.CategoryBucket `json:"buckets"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "acme", body.Seller)
	require.Len(t, body.Buckets, 1)
	assert.Equal(t, "상의", body.Buckets[0].Category)
}

func TestServePhotos(t *testing.T) {
	fetcher := &stubFetcher{
		reviews: []model.ReviewRecord{
			{ReviewID: 1, ReviewerName: "kim", AttachedImageURLs: []string{"https://img/1"}},
		},
	}
	router := testRouter(fetcher, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sellers/acme/photos", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Photos []model.PhotoEntry `json:"photos"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Photos, 1)
	assert.Equal(t, "kim", body.Photos[0].ReviewerName)
}

func TestServeHashtags(t *testing.T) {
	fetcher := &stubFetcher{
		reviews: []model.ReviewRecord{
			{ReviewID: 1, ProductInternalID: 11, Text: "좋아요", TextLength: 3},
		},
	}
	router := testRouter(fetcher, &stubSummarizer{summary: "#좋아요"})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sellers/acme/hashtags",
		strings.NewReader(`{"prompt":"요약: {reviews}"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Summary string               `json:"summary"`
		Sample  []model.ReviewRecord `json:"sample"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "#좋아요", body.Summary)
	assert.Len(t, body.Sample, 1)
}

func TestServeHashtags_NoReviews(t *testing.T) {
	router := testRouter(&stubFetcher{}, &stubSummarizer{summary: "unused"})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/sellers/acme/hashtags", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Summary string `json:"summary"`
		Sample  []any  `json:"sample"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.Summary)
	assert.Empty(t, body.Sample)
}

func TestServeHashtags_BadBody(t *testing.T) {
	router := testRouter(&stubFetcher{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/sellers/acme/hashtags", strings.NewReader("{not json"))
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
