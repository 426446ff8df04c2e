package model

// ClassificationKind says which scheme classified a product.
type ClassificationKind string

const (
	// ClassifiedByCatalog means the explicit catalog category set won.
	ClassifiedByCatalog ClassificationKind = "catalog"
	// ClassifiedByFlash means the denormalized flash levels apply.
	ClassifiedByFlash ClassificationKind = "flash"
	// Unclassified means neither scheme yielded a category.
	Unclassified ClassificationKind = "unclassified"
)

// ProductClassification is the per-product merge of the two catalog
// sources. Both sides are retained; Kind records which scheme is
// authoritative for bucket assignment.
type ProductClassification struct {
	ProductID   string             `json:"product_id"`
	Kind        ClassificationKind `json:"kind"`
	DisplayName string             `json:"display_name"`
	Categories  []string           `json:"categories,omitempty"`
	FlashLevels [3]string          `json:"flash_levels,omitempty"`
	CostPrice   float64            `json:"cost_price,omitempty"`
}

// ResolveClassification applies the precedence rule in one place: a
// non-empty catalog category set is authoritative and the flash levels
// are ignored for bucketing, even when both sources produced a row.
// With no catalog categories, the non-empty flash levels classify the
// product in level order. Either input side may be absent.
func ResolveClassification(productID string, catalogName string, categories []string, catalogPrice float64, flash *FlashProductRecord) ProductClassification {
	pc := ProductClassification{
		ProductID:   productID,
		DisplayName: catalogName,
		Categories:  categories,
		CostPrice:   catalogPrice,
	}
	if flash != nil {
		pc.FlashLevels = flash.Levels()
		if pc.DisplayName == "" {
			pc.DisplayName = flash.LLMName
		}
		if pc.CostPrice == 0 {
			pc.CostPrice = flash.CostPrice
		}
	}

	switch {
	case len(categories) > 0:
		pc.Kind = ClassifiedByCatalog
	case flash != nil && hasNonEmptyLevel(pc.FlashLevels):
		pc.Kind = ClassifiedByFlash
		pc.DisplayName = flash.LLMName
	default:
		pc.Kind = Unclassified
	}
	return pc
}

// BucketNames returns the category names this product's reviews fan out
// to, in assignment order. Catalog categories keep first-seen order;
// flash levels keep level order with empties skipped but no cross-level
// dedup. Unclassified products bucket nowhere.
func (pc ProductClassification) BucketNames() []string {
	switch pc.Kind {
	case ClassifiedByCatalog:
		return pc.Categories
	case ClassifiedByFlash:
		names := make([]string, 0, len(pc.FlashLevels))
		for _, lv := range pc.FlashLevels {
			if lv != "" {
				names = append(names, lv)
			}
		}
		return names
	default:
		return nil
	}
}

// ProductKind maps the classification scheme to the display tag.
// Unclassified products never render, so the zero mapping is unused.
func (pc ProductClassification) ProductKind() ProductKind {
	if pc.Kind == ClassifiedByFlash {
		return ProductKindFlash
	}
	return ProductKindCatalog
}

func hasNonEmptyLevel(levels [3]string) bool {
	for _, lv := range levels {
		if lv != "" {
			return true
		}
	}
	return false
}
