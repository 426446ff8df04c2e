package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveClassification_CatalogWinsOverFlash(t *testing.T) {
	flash := &FlashProductRecord{
		ProductID:      "p1",
		LLMName:        "flash name",
		Level2Category: "Shoes",
		Level3Category: "Sneakers",
	}

	pc := ResolveClassification("p1", "catalog name", []string{"Tops"}, 900, flash)
	assert.Equal(t, ClassifiedByCatalog, pc.Kind)
	assert.Equal(t, "catalog name", pc.DisplayName)
	assert.Equal(t, []string{"Tops"}, pc.BucketNames())
	// Flash levels stay on the record but never bucket.
	assert.Equal(t, [3]string{"Shoes", "Sneakers", ""}, pc.FlashLevels)
	assert.Equal(t, ProductKindCatalog, pc.ProductKind())
}

func TestResolveClassification_FlashFallback(t *testing.T) {
	flash := &FlashProductRecord{
		ProductID:      "p2",
		LLMName:        "flash name",
		Level2Category: "Shoes",
		Level3Category: "Sneakers",
		CostPrice:      500,
	}

	pc := ResolveClassification("p2", "", nil, 0, flash)
	assert.Equal(t, ClassifiedByFlash, pc.Kind)
	assert.Equal(t, "flash name", pc.DisplayName)
	assert.Equal(t, 500.0, pc.CostPrice)
	assert.Equal(t, []string{"Shoes", "Sneakers"}, pc.BucketNames())
	assert.Equal(t, ProductKindFlash, pc.ProductKind())
}

func TestResolveClassification_RepeatedLevelsKept(t *testing.T) {
	flash := &FlashProductRecord{
		ProductID:      "p3",
		Level2Category: "Shoes",
		Level3Category: "Shoes",
		Level4Category: "Sneakers",
	}

	pc := ResolveClassification("p3", "", nil, 0, flash)
	// No cross-level dedup: the repeated level value appears twice.
	assert.Equal(t, []string{"Shoes", "Shoes", "Sneakers"}, pc.BucketNames())
}

func TestResolveClassification_Unclassified(t *testing.T) {
	// Catalog row without categories and no flash side.
	pc := ResolveClassification("p4", "name", nil, 100, nil)
	assert.Equal(t, Unclassified, pc.Kind)
	assert.Empty(t, pc.BucketNames())

	// Flash row with all levels empty.
	pc = ResolveClassification("p5", "", nil, 0, &FlashProductRecord{ProductID: "p5", LLMName: "x"})
	assert.Equal(t, Unclassified, pc.Kind)
	assert.Empty(t, pc.BucketNames())
}

func TestHasAttachedImage(t *testing.T) {
	assert.False(t, ReviewRecord{}.HasAttachedImage())
	assert.False(t, ReviewRecord{AttachedImageURLs: []string{""}}.HasAttachedImage())
	assert.True(t, ReviewRecord{AttachedImageURLs: []string{"", "https://img"}}.HasAttachedImage())
}
