// Package gaps derives content gaps from an annotated response batch: the
// query/platform pairs where competitors show up in the AI answer but the
// audited brand does not.
package gaps

import (
	"sort"
	"strings"

	"github.com/brandlens/brandlens/internal/models"
)

var priorityRank = map[models.GapPriority]int{
	models.PriorityHigh:   3,
	models.PriorityMedium: 2,
	models.PriorityLow:    1,
}

// Identify returns one gap per response where the brand is absent and at
// least one competitor is present. Gaps are typed by the prompt's phrasing
// (comparison checks win over recommendation checks), prioritized by how
// many competitors crowd the answer, and upgraded to high when the same
// prompt misses the brand on two or more platforms. The result is sorted
// by priority, stable within equal priority.
func Identify(responses []models.AIResponse, brandName string) []models.Gap {
	var gaps []models.Gap

	for _, response := range responses {
		if response.BrandMentioned || len(response.CompetitorsFound) == 0 {
			continue
		}

		priority := models.PriorityLow
		switch {
		case len(response.CompetitorsFound) >= 2:
			priority = models.PriorityHigh
		case len(response.CompetitorsFound) == 1:
			priority = models.PriorityMedium
		}

		// Same prompt missing the brand on multiple platforms means AI
		// answers consistently skip it for that query, regardless of how
		// many competitors each individual answer named.
		if missesForPrompt(responses, response.Prompt) >= 2 {
			priority = models.PriorityHigh
		}

		names := make([]string, 0, len(response.CompetitorsFound))
		for _, c := range response.CompetitorsFound {
			names = append(names, c.Name)
		}

		gaps = append(gaps, models.Gap{
			Prompt:             response.Prompt,
			Platform:           response.Platform,
			Priority:           priority,
			Type:               classify(response.Prompt),
			CompetitorsPresent: names,
		})
	}

	sort.SliceStable(gaps, func(i, j int) bool {
		return priorityRank[gaps[i].Priority] > priorityRank[gaps[j].Priority]
	})

	return gaps
}

func classify(prompt string) models.GapType {
	p := strings.ToLower(prompt)
	switch {
	case strings.Contains(p, " vs ") || strings.Contains(p, "compare") || strings.Contains(p, "versus"):
		return models.GapComparison
	case strings.Contains(p, "should i") || strings.Contains(p, "recommend") || strings.Contains(p, "which"):
		return models.GapRecommendation
	default:
		return models.GapCategory
	}
}

func missesForPrompt(responses []models.AIResponse, prompt string) int {
	count := 0
	for _, r := range responses {
		if r.Prompt == prompt && !r.BrandMentioned && len(r.CompetitorsFound) > 0 {
			count++
		}
	}
	return count
}
