package review

import (
	"github.com/grip-data/review-insights/internal/model"
)

// BuildBuckets joins the deduplicated, ordered review sequence with the
// classification map and folds it into category buckets. Buckets appear
// in first-seen category order; entries within a bucket keep the order
// of the input sequence. The pass is a total function: it never fails,
// it only produces fewer or empty buckets.
//
// Per review: a missing review thumbnail is a hard filter; the review
// contributes to no bucket at all. A product with no classification is
// silently excluded. A catalog product fans the same review out to
// every category it belongs to; a flash product fans out across its
// non-empty level values in level order.
func BuildBuckets(reviews []model.ReviewRecord, classifications map[string]model.ProductClassification) []model.CategoryBucket {
	var order []string
	entries := make(map[string][]model.ReviewDisplayEntry)

	for _, r := range reviews {
		if r.ThumbnailURL == "" {
			continue
		}
		pc, ok := classifications[r.ProductID]
		if !ok {
			continue
		}
		entry := displayEntry(r, pc)
		for _, name := range pc.BucketNames() {
			if _, seen := entries[name]; !seen {
				order = append(order, name)
			}
			entries[name] = append(entries[name], entry)
		}
	}

	buckets := make([]model.CategoryBucket, 0, len(order))
	for _, name := range order {
		buckets = append(buckets, model.CategoryBucket{
			Category: name,
			Entries:  entries[name],
		})
	}
	return buckets
}

func displayEntry(r model.ReviewRecord, pc model.ProductClassification) model.ReviewDisplayEntry {
	price := pc.CostPrice
	if price == 0 {
		price = r.CostPrice
	}
	return model.ReviewDisplayEntry{
		DisplayName:  pc.DisplayName,
		ReviewerName: r.ReviewerName,
		Text:         r.Text,
		CostPrice:    price,
		Rating:       r.Rating,
		ThumbnailURL: r.ThumbnailURL,
		ProductKind:  pc.ProductKind(),
	}
}
