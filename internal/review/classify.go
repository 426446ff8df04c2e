package review

import (
	"github.com/grip-data/review-insights/internal/model"
)

type catalogKey struct {
	productID string
	category  string
}

// catalogGroup accumulates the category set for one catalog product.
type catalogGroup struct {
	name       string
	price      float64
	categories []string
}

// BuildClassifications merges the two product sources into one
// classification record per product_id. Catalog rows are deduplicated
// by (product_id, category_name) and grouped into the category set;
// flash rows are deduplicated by product_id keeping the first row. The
// union is outer: a product present in only one source carries that
// source's fields, and a product in neither is absent from the map.
func BuildClassifications(catalog []model.CatalogProductRecord, flash []model.FlashProductRecord) map[string]model.ProductClassification {
	groups := make(map[string]*catalogGroup)
	seenPair := make(map[catalogKey]struct{})
	for _, c := range catalog {
		if c.ProductID == "" {
			continue
		}
		g, ok := groups[c.ProductID]
		if !ok {
			g = &catalogGroup{name: c.CanonicalName, price: c.CostPrice}
			groups[c.ProductID] = g
		}
		if c.CategoryName == "" {
			continue
		}
		k := catalogKey{c.ProductID, c.CategoryName}
		if _, dup := seenPair[k]; dup {
			continue
		}
		seenPair[k] = struct{}{}
		g.categories = append(g.categories, c.CategoryName)
	}

	// First flash row per product wins; the denormalized label is
	// assumed stable per product so the tie-break does not matter.
	flashByID := make(map[string]model.FlashProductRecord)
	for _, f := range flash {
		if f.ProductID == "" {
			continue
		}
		if _, dup := flashByID[f.ProductID]; dup {
			continue
		}
		flashByID[f.ProductID] = f
	}

	out := make(map[string]model.ProductClassification, len(groups)+len(flashByID))
	for id, g := range groups {
		var fp *model.FlashProductRecord
		if f, ok := flashByID[id]; ok {
			fp = &f
		}
		out[id] = model.ResolveClassification(id, g.name, g.categories, g.price, fp)
	}
	for id, f := range flashByID {
		if _, done := out[id]; done {
			continue
		}
		out[id] = model.ResolveClassification(id, "", nil, 0, &f)
	}
	return out
}
