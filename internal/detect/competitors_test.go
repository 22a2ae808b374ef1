package detect

import (
	"testing"

	"github.com/brandlens/brandlens/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestExtractCompetitors_CatalogOrder(t *testing.T) {
	// Text order is nykaa first, but extraction follows the category
	// list order, so mamaearth comes out ahead with position 1.
	text := "Nykaa has a wide range, while Mamaearth focuses on natural ingredients"

	competitors := ExtractCompetitors(text, "BrandX", "beauty")

	assert.Len(t, competitors, 2)
	assert.Equal(t, "Mamaearth", competitors[0].Name)
	assert.Equal(t, 1, competitors[0].Position)
	assert.Equal(t, "Nykaa", competitors[1].Name)
	assert.Equal(t, 2, competitors[1].Position)
}

func TestExtractCompetitors_SkipsSelf(t *testing.T) {
	tests := []struct {
		name      string
		brandName string
		text      string
		excluded  string
	}{
		{
			name:      "exact match",
			brandName: "Mamaearth",
			text:      "Mamaearth and Plum are both popular",
			excluded:  "Mamaearth",
		},
		{
			name:      "target contains a known brand",
			brandName: "Mamaearth Baby",
			text:      "Mamaearth and FirstCry are both popular",
			excluded:  "Mamaearth",
		},
		{
			name:      "known brand contains the target",
			brandName: "Mamaearth",
			text:      "Mamaearth Baby and FirstCry sell baby products",
			excluded:  "Mamaearth Baby",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			category := "beauty"
			if tt.excluded != "Mamaearth" {
				category = "baby"
			}
			competitors := ExtractCompetitors(tt.text, tt.brandName, category)
			for _, c := range competitors {
				assert.NotEqual(t, tt.excluded, c.Name)
			}
		})
	}
}

func TestExtractCompetitors_UnknownCategory(t *testing.T) {
	competitors := ExtractCompetitors("Mamaearth is popular", "BrandX", "nonsense")
	assert.Empty(t, competitors)
}

func TestExtractCompetitors_Deterministic(t *testing.T) {
	text := "Top picks: 1. Plum 2. Minimalist 3. Nykaa 4. Biotique"

	first := ExtractCompetitors(text, "BrandX", "beauty")
	second := ExtractCompetitors(text, "BrandX", "beauty")

	assert.Equal(t, first, second)
	assert.Len(t, first, 4)
}

func TestExtractCompetitors_Sentiment(t *testing.T) {
	text := "Plum is the best and most trusted choice here"

	competitors := ExtractCompetitors(text, "BrandX", "beauty")

	assert.Len(t, competitors, 1)
	assert.Equal(t, models.SentimentPositive, competitors[0].Sentiment)
}

func TestEnrichResponse(t *testing.T) {
	response := models.AIResponse{
		Platform:     models.PlatformChatGPT,
		Prompt:       "best skincare brands in India",
		ResponseText: "Mamaearth and Plum lead the market",
	}

	enriched := EnrichResponse(response, "BrandX", "beauty")

	assert.Len(t, enriched.CompetitorsFound, 2)
	assert.Equal(t, response.Platform, enriched.Platform)
	assert.Equal(t, response.Prompt, enriched.Prompt)
	assert.Equal(t, response.ResponseText, enriched.ResponseText)
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"sugar cosmetics", "Sugar Cosmetics"},
		{"plum", "Plum"},
		{"heads up for tails", "Heads Up For Tails"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, TitleCase(tt.in))
	}
}
