package scoring

import (
	"math"
	"sort"
	"strings"

	"github.com/brandlens/brandlens/internal/detect"
	"github.com/brandlens/brandlens/internal/models"
)

// maxRankedCompetitors caps how many competitors survive to the caller
const maxRankedCompetitors = 5

type competitorTally struct {
	mentionCount int
	platforms    []models.Platform
	seen         map[models.Platform]struct{}
}

// RankCompetitors aggregates every competitor mention across the batch and
// scores each competing brand on the same 0-100 scale as the audited brand:
// 60% mention rate across all queries, 40% platform spread. Aggregation
// keys are lowercased names and ordering is stable, so two runs over the
// same batch produce identical output.
func RankCompetitors(responses []models.AIResponse) []models.CompetitorResult {
	tallies := make(map[string]*competitorTally)
	var order []string

	for _, response := range responses {
		for _, competitor := range response.CompetitorsFound {
			key := strings.ToLower(competitor.Name)
			tally, ok := tallies[key]
			if !ok {
				tally = &competitorTally{seen: make(map[models.Platform]struct{})}
				tallies[key] = tally
				order = append(order, key)
			}
			tally.mentionCount++
			if _, ok := tally.seen[response.Platform]; !ok {
				tally.seen[response.Platform] = struct{}{}
				tally.platforms = append(tally.platforms, response.Platform)
			}
		}
	}

	results := make([]models.CompetitorResult, 0, len(order))
	for _, key := range order {
		tally := tallies[key]
		mentionRate := float64(tally.mentionCount) / float64(len(responses))
		platformFactor := float64(len(tally.platforms)) / models.PlatformCount
		score := int(math.Round(mentionRate*60 + platformFactor*40))

		results = append(results, models.CompetitorResult{
			Name:         detect.TitleCase(key),
			Score:        min(100, score),
			MentionCount: tally.mentionCount,
			Platforms:    tally.platforms,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > maxRankedCompetitors {
		results = results[:maxRankedCompetitors]
	}
	return results
}
