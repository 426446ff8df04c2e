// Package model defines the data types shared across the review
// aggregation pipeline.
package model

import "time"

// ReviewRecord is one product review row fetched from the warehouse,
// one per (seller, product, reviewer). The fetch stage guarantees
// text_length > 0 and cost_price > 0; the pipeline trusts that.
type ReviewRecord struct {
	ReviewID          int64     `json:"review_id"`
	ProductID         string    `json:"product_id"`
	ProductInternalID int64     `json:"product_internal_id"`
	SellerID          int64     `json:"seller_id"`
	SellerName        string    `json:"seller_name"`
	ReviewerID        int64     `json:"reviewer_id"`
	ReviewerName      string    `json:"reviewer_name"`
	Text              string    `json:"text"`
	Rating            float64   `json:"rating"`
	TextLength        int       `json:"text_length"`
	CreatedAt         time.Time `json:"created_at"`
	SellerComment     string    `json:"seller_comment,omitempty"`
	ThumbnailURL      string    `json:"thumbnail_url,omitempty"`
	AttachedImageURLs []string  `json:"attached_image_urls,omitempty"`
	CostPrice         float64   `json:"cost_price,omitempty"`
}

// HasAttachedImage reports whether the review carries at least one
// non-empty attached image URL.
func (r ReviewRecord) HasAttachedImage() bool {
	for _, u := range r.AttachedImageURLs {
		if u != "" {
			return true
		}
	}
	return false
}

// CatalogProductRecord is one row of the always-available catalog.
// Categories are a many-to-many assignment, so the warehouse returns
// one row per (product, category) pair; CategoryName is empty for
// products with no assignment.
type CatalogProductRecord struct {
	ProductID     string  `json:"product_id"`
	CanonicalName string  `json:"canonical_name"`
	CategoryName  string  `json:"category_name,omitempty"`
	CostPrice     float64 `json:"cost_price"`
	ThumbnailURL  string  `json:"thumbnail_url,omitempty"`
}

// FlashProductRecord is one time-boxed flash product. LLMName is the
// denormalized display name assigned by the upstream labeling process;
// it is a distinct field from any catalog canonical name. The three
// category levels increase in specificity and each may be empty.
type FlashProductRecord struct {
	ProductID      string    `json:"product_id"`
	LLMName        string    `json:"llm_name"`
	Level2Category string    `json:"level2_category,omitempty"`
	Level3Category string    `json:"level3_category,omitempty"`
	Level4Category string    `json:"level4_category,omitempty"`
	CostPrice      float64   `json:"cost_price"`
	ThumbnailURL   string    `json:"thumbnail_url,omitempty"`
	RequestedAt    time.Time `json:"requested_at"`
}

// Levels returns the flash category levels in fixed specificity order.
// Empty levels are preserved in place; callers skip them.
func (f FlashProductRecord) Levels() [3]string {
	return [3]string{f.Level2Category, f.Level3Category, f.Level4Category}
}

// ProductKind tags which classification scheme produced a display entry.
type ProductKind string

const (
	// ProductKindCatalog labels always-available products.
	ProductKindCatalog ProductKind = "catalog"
	// ProductKindFlash labels time-boxed flash products.
	ProductKindFlash ProductKind = "flash"
)

// Label returns the merchandising label for the kind.
func (k ProductKind) Label() string {
	switch k {
	case ProductKindCatalog:
		return "상시상품"
	case ProductKindFlash:
		return "플래시상품"
	default:
		return string(k)
	}
}

// ReviewDisplayEntry is one review presented inside a category bucket.
type ReviewDisplayEntry struct {
	DisplayName  string      `json:"display_name"`
	ReviewerName string      `json:"reviewer_name"`
	Text         string      `json:"text"`
	CostPrice    float64     `json:"cost_price,omitempty"`
	Rating       float64     `json:"rating"`
	ThumbnailURL string      `json:"thumbnail_url"`
	ProductKind  ProductKind `json:"product_kind"`
}

// CategoryBucket holds the display entries for one category name.
// Entry order is the insertion order of the aggregation pass.
type CategoryBucket struct {
	Category string               `json:"category"`
	Entries  []ReviewDisplayEntry `json:"entries"`
}

// PhotoEntry is one review's attached photos for the gallery view.
type PhotoEntry struct {
	ReviewerName string   `json:"reviewer_name"`
	ProductID    string   `json:"product_id"`
	Rating       float64  `json:"rating"`
	ImageURLs    []string `json:"image_urls"`
}

/// SampleResult is the outcome of one summarization request: the
// selected reviews, the rendered prompt, and the generated text.
type SampleResult struct {
	Reviews []ReviewRecord `json:"reviews"`
	Prompt  string         `json:"prompt"`
	Summary string         `json:"summary"`
}
