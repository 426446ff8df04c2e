// Package review implements the review-to-category aggregation engine:
// deduplication and ordering of raw review rows, product classification
// across the two catalog schemes, category bucket aggregation, and
// deterministic sampling for summarization.
package review

import (
	"sort"

	"github.com/grip-data/review-insights/internal/model"
)

type dedupeKey struct {
	productInternalID int64
	text              string
}

// Dedupe collapses duplicate reviews keyed by (product_internal_id,
// text). The first record in fetch order wins; later duplicates are
// dropped regardless of their other fields. Dedup runs before any
// sorting, so a longer duplicate occurring later is still discarded.
func Dedupe(reviews []model.ReviewRecord) []model.ReviewRecord {
	if len(reviews) == 0 {
		return nil
	}
	seen := make(map[dedupeKey]struct{}, len(reviews))
	out := make([]model.ReviewRecord, 0, len(reviews))
	for _, r := range reviews {
		k := dedupeKey{r.ProductInternalID, r.Text}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, r)
	}
	return out
}

// SortByTextLength orders reviews by text_length descending. The sort
// is stable: ties keep the underlying fetch order.
func SortByTextLength(reviews []model.ReviewRecord) []model.ReviewRecord {
	out := make([]model.ReviewRecord, len(reviews))
	copy(out, reviews)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TextLength > out[j].TextLength
	})
	return out
}

// Prepare runs the full intake pass: dedupe in fetch order, then sort
// by text length. Empty input yields empty output.
func Prepare(reviews []model.ReviewRecord) []model.ReviewRecord {
	return SortByTextLength(Dedupe(reviews))
}
