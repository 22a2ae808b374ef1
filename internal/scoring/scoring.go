// Package scoring aggregates an annotated response batch into the
// visibility score breakdown and the competitor ranking. Both entry
// points are pure and total: an empty batch yields zeros, never a
// division by zero.
package scoring

import (
	"math"

	"github.com/brandlens/brandlens/internal/models"
)

// Sub-score weights for the total. Mention frequency carries double the
// weight of the other three.
const (
	weightMentionFrequency = 0.4
	weightSentimentQuality = 0.2
	weightPlatformCoverage = 0.2
	weightPositionStrength = 0.2
)

// VisibilityScore computes the four sub-scores and their weighted total
// for a batch. Sub-scores are rounded individually for reporting, but the
// total is computed from the unrounded values and rounded once; keeping
// that order is what makes results reproducible against prior audits.
func VisibilityScore(responses []models.AIResponse) models.ScoreBreakdown {
	total := len(responses)
	if total == 0 {
		return models.ScoreBreakdown{}
	}

	var mentioned []models.AIResponse
	for _, r := range responses {
		if r.BrandMentioned {
			mentioned = append(mentioned, r)
		}
	}

	mentionFrequency := float64(len(mentioned)) / float64(total) * 100

	var sentimentQuality float64
	if len(mentioned) > 0 {
		var sum float64
		for _, r := range mentioned {
			sum += sentimentWeight(r)
		}
		sentimentQuality = sum / float64(len(mentioned)) * 100
	}

	platforms := make(map[models.Platform]struct{})
	for _, r := range mentioned {
		platforms[r.Platform] = struct{}{}
	}
	// Divided by the fixed platform count, not by how many platforms the
	// batch happened to query: a brand audited on one surface still only
	// covers a third of the answer space.
	platformCoverage := float64(len(platforms)) / models.PlatformCount * 100

	var positionStrength float64
	if len(mentioned) > 0 {
		var sum float64
		for _, r := range mentioned {
			sum += positionWeight(r)
		}
		positionStrength = sum / float64(len(mentioned)) * 100
	}

	weighted := math.Round(
		mentionFrequency*weightMentionFrequency +
			sentimentQuality*weightSentimentQuality +
			platformCoverage*weightPlatformCoverage +
			positionStrength*weightPositionStrength)

	return models.ScoreBreakdown{
		MentionFrequency: int(math.Round(mentionFrequency)),
		SentimentQuality: int(math.Round(sentimentQuality)),
		PlatformCoverage: int(math.Round(platformCoverage)),
		PositionStrength: int(math.Round(positionStrength)),
		Total:            min(100, int(weighted)),
	}
}

func sentimentWeight(r models.AIResponse) float64 {
	if r.MentionDetails == nil {
		return 0
	}
	switch r.MentionDetails.Sentiment {
	case models.SentimentPositive:
		return 1
	case models.SentimentNeutral:
		return 0.5
	default:
		return 0
	}
}

func positionWeight(r models.AIResponse) float64 {
	position := 1
	if r.MentionDetails != nil && r.MentionDetails.Position > 0 {
		position = r.MentionDetails.Position
	}
	switch position {
	case 1:
		return 1.0
	case 2:
		return 0.5
	case 3:
		return 0.33
	default:
		return 0.25
	}
}
