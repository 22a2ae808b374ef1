// Package detect implements brand and competitor mention detection over
// raw AI answer text. Everything here is a pure function of its inputs:
// no I/O, no shared state, deterministic output for identical input.
package detect

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/brandlens/brandlens/internal/models"
)

const (
	snippetRadius   = 50
	sentimentRadius = 100
)

var listItemPattern = regexp.MustCompile(`\d+\.\s`)

// Detection is the outcome of scanning one response for the target brand
type Detection struct {
	Mentioned bool
	Sentiment models.Sentiment
	Position  int
	Snippet   string
}

// BrandMention scans text for the target brand name, case-insensitively.
// When the direct substring search fails it retries with all whitespace
// stripped from both sides, which catches drift like "m Caffeine" vs
// "mcaffeine". In that fallback the match index collapses to 0, so the
// snippet and position are approximations; downstream consumers rely on
// exactly this behavior, so it is kept as is.
func BrandMention(text, brandName string) Detection {
	normalizedText := strings.ToLower(text)
	normalizedBrand := strings.ToLower(strings.TrimSpace(brandName))

	index := strings.Index(normalizedText, normalizedBrand)
	mentioned := index != -1
	if !mentioned {
		mentioned = strings.Index(stripSpaces(normalizedText), stripSpaces(normalizedBrand)) != -1
	}

	if !mentioned {
		return Detection{Sentiment: models.SentimentNeutral}
	}

	matchIndex := 0
	if index != -1 {
		matchIndex = index
	}

	snippetStart := max(0, matchIndex-snippetRadius)
	snippetEnd := min(len(text), matchIndex+len(brandName)+snippetRadius)
	snippet := strings.TrimSpace(text[snippetStart:snippetEnd])

	// Position approximates "which numbered list item is this": count the
	// "<n>. " markers up to the match, so a mention inside item 3 reports
	// position 3. Unnumbered text defaults to 1.
	position := max(1, len(listItemPattern.FindAllString(normalizedText[:matchIndex], -1)))

	windowStart := max(0, matchIndex-sentimentRadius)
	windowEnd := min(len(normalizedText), matchIndex+len(normalizedBrand)+sentimentRadius)
	sentiment := brandLexicon.Classify(normalizedText[windowStart:windowEnd])

	return Detection{
		Mentioned: true,
		Sentiment: sentiment,
		Position:  position,
		Snippet:   snippet,
	}
}

// Details converts a positive detection into the mention details attached
// to a response. Returns nil when the brand was not mentioned.
func (d Detection) Details() *models.MentionDetails {
	if !d.Mentioned {
		return nil
	}
	return &models.MentionDetails{
		Sentiment:      d.Sentiment,
		Position:       d.Position,
		ContextSnippet: d.Snippet,
	}
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
