package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryCategoryHasData(t *testing.T) {
	for _, category := range Categories {
		t.Run(category.ID, func(t *testing.T) {
			assert.True(t, IsValidCategory(category.ID))
			assert.NotEmpty(t, KnownBrands(category.ID))
			assert.NotEmpty(t, Prompts(category.ID))
			assert.NotEmpty(t, Subreddits(category.ID))
			assert.NotEmpty(t, Aggregators(category.ID))
			assert.NotEqual(t, category.ID, ContentLabel(category.ID))
		})
	}
}

func TestKnownBrands_Lowercase(t *testing.T) {
	// Extraction matches against lowercased text, so the canonical forms
	// must already be lowercase.
	for _, category := range Categories {
		for _, brand := range KnownBrands(category.ID) {
			assert.Equal(t, strings.ToLower(brand), brand, "category %s", category.ID)
		}
	}
}

func TestPrompts_MixOfQueryKinds(t *testing.T) {
	for _, category := range Categories {
		prompts := Prompts(category.ID)
		assert.Len(t, prompts, 15, "category %s", category.ID)

		var comparison, recommendation bool
		for _, p := range prompts {
			lower := strings.ToLower(p)
			if strings.Contains(lower, " vs ") || strings.Contains(lower, "compare") || strings.Contains(lower, "versus") {
				comparison = true
			} else if strings.Contains(lower, "should i") || strings.Contains(lower, "recommend") || strings.Contains(lower, "which") {
				recommendation = true
			}
		}
		assert.True(t, comparison, "category %s has no comparison prompts", category.ID)
		assert.True(t, recommendation, "category %s has no recommendation prompts", category.ID)
	}
}

func TestUnknownCategory(t *testing.T) {
	assert.False(t, IsValidCategory("nonsense"))
	assert.Nil(t, KnownBrands("nonsense"))
	assert.Nil(t, Prompts("nonsense"))
	assert.Equal(t, []string{"r/india"}, Subreddits("nonsense"))
	assert.Equal(t, "nonsense", ContentLabel("nonsense"))
}
