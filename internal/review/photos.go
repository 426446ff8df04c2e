package review

import (
	"strings"

	"github.com/grip-data/review-insights/internal/model"
)

// BuildPhotoGallery collects attached review images for the photo view.
// URLs are trimmed and kept only when they carry an http(s) scheme;
// reviews without a usable image are skipped. Review order is
// preserved. An empty gallery is a valid result.
func BuildPhotoGallery(reviews []model.ReviewRecord) []model.PhotoEntry {
	var out []model.PhotoEntry
	for _, r := range reviews {
		var urls []string
		for _, u := range r.AttachedImageURLs {
			u = strings.TrimSpace(u)
			if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
				urls = append(urls, u)
			}
		}
		if len(urls) == 0 {
			continue
		}
		out = append(out, model.PhotoEntry{
			ReviewerName: r.ReviewerName,
			ProductID:    r.ProductID,
			Rating:       r.Rating,
			ImageURLs:    urls,
		})
	}
	return out
}
