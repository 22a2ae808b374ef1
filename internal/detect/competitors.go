package detect

import (
	"strings"

	"github.com/brandlens/brandlens/internal/catalog"
	"github.com/brandlens/brandlens/internal/models"
)

const competitorWindowRadius = 80

// ExtractCompetitors finds known competitor brands of the given category
// inside the response text. Brands are checked in the catalog's fixed
// order and positions assigned sequentially in that order, so output is
// deterministic for identical input. The target brand itself is skipped,
// including substring overlaps ("mamaearth" vs "mamaearth baby").
func ExtractCompetitors(text, brandName, category string) []models.CompetitorMention {
	normalizedText := strings.ToLower(text)
	normalizedBrand := strings.ToLower(strings.TrimSpace(brandName))

	var competitors []models.CompetitorMention
	position := 1

	for _, brand := range catalog.KnownBrands(category) {
		if brand == normalizedBrand || strings.Contains(brand, normalizedBrand) || strings.Contains(normalizedBrand, brand) {
			continue
		}

		index := strings.Index(normalizedText, brand)
		if index == -1 {
			continue
		}

		windowStart := max(0, index-competitorWindowRadius)
		windowEnd := min(len(normalizedText), index+len(brand)+competitorWindowRadius)
		sentiment := competitorLexicon.Classify(normalizedText[windowStart:windowEnd])

		competitors = append(competitors, models.CompetitorMention{
			Name:      TitleCase(brand),
			Position:  position,
			Sentiment: sentiment,
		})
		position++
	}

	return competitors
}

// EnrichResponse attaches competitor extraction to a provider response.
// All other fields pass through untouched; brand-mention detection has
// already happened at the provider boundary.
func EnrichResponse(response models.AIResponse, brandName, category string) models.AIResponse {
	response.CompetitorsFound = ExtractCompetitors(response.ResponseText, brandName, category)
	return response
}

// TitleCase uppercases the first letter of each space-separated token,
// matching how competitor names are reported ("sugar cosmetics" ->
// "Sugar Cosmetics").
func TitleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
