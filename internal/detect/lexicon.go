package detect

import (
	"strings"

	"github.com/brandlens/brandlens/internal/models"
)

// Lexicon is a fixed sentiment vocabulary. Matching is a plain substring
// test over an already-lowercased window, so multi-word entries like
// "highly rated" work and a longer word containing an entry still counts.
type Lexicon struct {
	Positive []string
	Negative []string
}

// brandLexicon scores the window around a target-brand mention
var brandLexicon = Lexicon{
	Positive: []string{"best", "top", "recommend", "excellent", "great", "popular", "trusted", "leading", "favorite", "outstanding", "highly rated"},
	Negative: []string{"worst", "avoid", "poor", "disappointing", "overpriced", "complaints", "issues", "problems", "controversial"},
}

// competitorLexicon scores the window around a competitor mention
var competitorLexicon = Lexicon{
	Positive: []string{"best", "top", "recommend", "excellent", "great", "popular", "trusted", "leading", "favorite", "highly rated", "premium"},
	Negative: []string{"worst", "avoid", "poor", "disappointing", "overpriced", "complaints", "issues", "problems"},
}

// Classify counts positive and negative vocabulary hits in a lowercased
// window and returns the majority polarity, neutral on a tie.
func (l Lexicon) Classify(window string) models.Sentiment {
	positive := 0
	for _, word := range l.Positive {
		if strings.Contains(window, word) {
			positive++
		}
	}

	negative := 0
	for _, word := range l.Negative {
		if strings.Contains(window, word) {
			negative++
		}
	}

	if positive > negative {
		return models.SentimentPositive
	}
	if negative > positive {
		return models.SentimentNegative
	}
	return models.SentimentNeutral
}
