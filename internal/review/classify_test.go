package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grip-data/review-insights/internal/model"
)

func TestBuildClassifications_GroupsAndDedupesCatalogPairs(t *testing.T) {
	catalog := []model.CatalogProductRecord{
		{ProductID: "p1", CanonicalName: "shirt", CategoryName: "Tops"},
		{ProductID: "p1", CanonicalName: "shirt", CategoryName: "Sale"},
		{ProductID: "p1", CanonicalName: "shirt", CategoryName: "Tops"}, // duplicate pair
		{ProductID: "p2", CanonicalName: "shoes", CategoryName: "Shoes"},
	}

	out := BuildClassifications(catalog, nil)
	require.Len(t, out, 2)
	assert.Equal(t, []string{"Tops", "Sale"}, out["p1"].Categories)
	assert.Equal(t, []string{"Shoes"}, out["p2"].Categories)
}

func TestBuildClassifications_FlashFirstRowWins(t *testing.T) {
	flash := []model.FlashProductRecord{
		{ProductID: "p1", LLMName: "first", Level2Category: "Shoes"},
		{ProductID: "p1", LLMName: "second", Level2Category: "Bags"},
	}

	out := BuildClassifications(nil, flash)
	require.Len(t, out, 1)
	assert.Equal(t, "first", out["p1"].DisplayName)
	assert.Equal(t, []string{"Shoes"}, out["p1"].BucketNames())
}

func TestBuildClassifications_OuterUnion(t *testing.T) {
	catalog := []model.CatalogProductRecord{
		{ProductID: "p1", CanonicalName: "shirt", CategoryName: "Tops"},
	}
	flash := []model.FlashProductRecord{
		{ProductID: "p2", LLMName: "hat", Level2Category: "Accessories"},
	}

	out := BuildClassifications(catalog, flash)
	require.Len(t, out, 2)
	assert.Equal(t, model.ClassifiedByCatalog, out["p1"].Kind)
	assert.Equal(t, model.ClassifiedByFlash, out["p2"].Kind)
}

func TestBuildClassifications_PrecedenceWhenBothPresent(t *testing.T) {
	catalog := []model.CatalogProductRecord{
		{ProductID: "p1", CanonicalName: "shirt", CategoryName: "Tops"},
	}
	flash := []model.FlashProductRecord{
		{ProductID: "p1", LLMName: "llm shirt", Level2Category: "Shoes"},
	}

	out := BuildClassifications(catalog, flash)
	pc := out["p1"]
	assert.Equal(t, model.ClassifiedByCatalog, pc.Kind)
	assert.Equal(t, []string{"Tops"}, pc.BucketNames())
	// The flash side is retained on the record.
	assert.Equal(t, "Shoes", pc.FlashLevels[0])
}

func TestBuildClassifications_CatalogRowWithoutCategory(t *testing.T) {
	catalog := []model.CatalogProductRecord{
		{ProductID: "p1", CanonicalName: "shirt"},
	}

	out := BuildClassifications(catalog, nil)
	require.Len(t, out, 1)
	assert.Equal(t, model.Unclassified, out["p1"].Kind)
	assert.Empty(t, out["p1"].BucketNames())
}

func TestBuildClassifications_Empty(t *testing.T) {
	assert.Empty(t, BuildClassifications(nil, nil))
}
