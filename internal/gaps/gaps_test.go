package gaps

import (
	"testing"

	"github.com/brandlens/brandlens/internal/models"
	"github.com/stretchr/testify/assert"
)

func missedResponse(platform models.Platform, prompt string, competitors ...string) models.AIResponse {
	r := models.AIResponse{Platform: platform, Prompt: prompt}
	for i, name := range competitors {
		r.CompetitorsFound = append(r.CompetitorsFound, models.CompetitorMention{
			Name:      name,
			Position:  i + 1,
			Sentiment: models.SentimentNeutral,
		})
	}
	return r
}

func TestIdentify_SkipsMentionedAndEmpty(t *testing.T) {
	responses := []models.AIResponse{
		{Platform: models.PlatformChatGPT, Prompt: "best skincare", BrandMentioned: true},
		{Platform: models.PlatformPerplexity, Prompt: "best skincare"},
	}

	assert.Empty(t, Identify(responses, "BrandX"))
}

func TestIdentify_PriorityByCompetitorCount(t *testing.T) {
	responses := []models.AIResponse{
		missedResponse(models.PlatformChatGPT, "best skincare brands", "Plum", "Nykaa"),
		missedResponse(models.PlatformChatGPT, "affordable skincare", "Plum"),
	}

	gaps := Identify(responses, "BrandX")

	assert.Len(t, gaps, 2)
	assert.Equal(t, models.PriorityHigh, gaps[0].Priority)
	assert.Equal(t, "best skincare brands", gaps[0].Prompt)
	assert.Equal(t, models.PriorityMedium, gaps[1].Priority)
}

func TestIdentify_CrossPlatformUpgrade(t *testing.T) {
	// One competitor would normally mean medium, but the same prompt
	// misses the brand on two platforms, so both gaps go high.
	responses := []models.AIResponse{
		missedResponse(models.PlatformChatGPT, "top skincare products", "Plum"),
		missedResponse(models.PlatformPerplexity, "top skincare products", "Nykaa"),
	}

	gaps := Identify(responses, "BrandX")

	assert.Len(t, gaps, 2)
	assert.Equal(t, models.PriorityHigh, gaps[0].Priority)
	assert.Equal(t, models.PriorityHigh, gaps[1].Priority)
}

func TestIdentify_GapTypes(t *testing.T) {
	tests := []struct {
		prompt   string
		expected models.GapType
	}{
		{"BrandX vs CompetitorY which is better", models.GapComparison},
		{"Compare skincare brands in India", models.GapComparison},
		{"Plum versus Minimalist for oily skin", models.GapComparison},
		{"Should I buy from Plum", models.GapRecommendation},
		{"Which serum do you recommend", models.GapRecommendation},
		{"best skincare brands in India", models.GapCategory},
	}

	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			responses := []models.AIResponse{
				missedResponse(models.PlatformChatGPT, tt.prompt, "Plum"),
			}
			gaps := Identify(responses, "BrandX")
			assert.Len(t, gaps, 1)
			assert.Equal(t, tt.expected, gaps[0].Type)
		})
	}
}

func TestIdentify_ComparisonWinsOverRecommendation(t *testing.T) {
	responses := []models.AIResponse{
		missedResponse(models.PlatformChatGPT, "Which is better, Plum vs Nykaa", "Plum"),
	}

	gaps := Identify(responses, "BrandX")

	assert.Equal(t, models.GapComparison, gaps[0].Type)
}

func TestIdentify_StableSort(t *testing.T) {
	responses := []models.AIResponse{
		missedResponse(models.PlatformChatGPT, "prompt one", "Plum"),
		missedResponse(models.PlatformChatGPT, "prompt two", "Plum", "Nykaa"),
		missedResponse(models.PlatformChatGPT, "prompt three", "Nykaa"),
	}

	gaps := Identify(responses, "BrandX")

	assert.Len(t, gaps, 3)
	assert.Equal(t, "prompt two", gaps[0].Prompt)
	// Equal priorities keep input order.
	assert.Equal(t, "prompt one", gaps[1].Prompt)
	assert.Equal(t, "prompt three", gaps[2].Prompt)
}

func TestIdentify_CompetitorsPresent(t *testing.T) {
	responses := []models.AIResponse{
		missedResponse(models.PlatformChatGPT, "best skincare", "Plum", "Nykaa"),
	}

	gaps := Identify(responses, "BrandX")

	assert.Equal(t, []string{"Plum", "Nykaa"}, gaps[0].CompetitorsPresent)
}
