// Package recommend turns identified gaps into a ranked action plan. The
// plan is assembled from fixed templates, conditionally emitted based on
// the gap mix, and interpolated with the category's catalog data and the
// top competitor. Output is deterministic for identical input.
package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/brandlens/brandlens/internal/catalog"
	"github.com/brandlens/brandlens/internal/models"
)

// maxRecommendations caps the returned plan
const maxRecommendations = 5

var impactRank = map[models.Impact]int{
	models.ImpactHigh:   3,
	models.ImpactMedium: 2,
	models.ImpactLow:    1,
}

// Generate builds up to five recommendations from the gap analysis. The
// Reddit-presence and website-optimization actions always fire, so the
// plan is never empty; the rest depend on which gap types showed up.
func Generate(gapList []models.Gap, brandName, category string, competitorNames []string) []models.Recommendation {
	subreddits := catalog.Subreddits(category)
	aggregators := catalog.Aggregators(category)

	topCompetitor := "competitors"
	if len(competitorNames) > 0 {
		topCompetitor = competitorNames[0]
	}

	var highGaps, categoryGaps, comparisonGaps []models.Gap
	for _, g := range gapList {
		if g.Priority == models.PriorityHigh {
			highGaps = append(highGaps, g)
		}
		switch g.Type {
		case models.GapCategory:
			categoryGaps = append(categoryGaps, g)
		case models.GapComparison:
			comparisonGaps = append(comparisonGaps, g)
		}
	}

	var recommendations []models.Recommendation

	if len(comparisonGaps) > 0 || len(highGaps) > 0 {
		recommendations = append(recommendations, models.Recommendation{
			Title: fmt.Sprintf("Create a detailed %q comparison article", brandName+" vs "+topCompetitor),
			Why: fmt.Sprintf("AI models heavily cite comparison articles when answering \"which is better\" queries. %s appears in %d queries where %s doesn't. Publishing an honest comparison gives AI models a source to cite your brand.",
				topCompetitor, len(highGaps), brandName),
			Difficulty: models.DifficultyMedium,
			Impact:     models.ImpactHigh,
			ActionDetail: fmt.Sprintf("Publish a 1,500+ word comparison on your blog covering: features, pricing, pros/cons, and use cases. Be balanced — AI models prefer objective content over promotional. Include a comparison table with specific data points. Target these specific queries: %s.",
				quotedPrompts(comparisonGaps, 3)),
		})
	}

	recommendations = append(recommendations, models.Recommendation{
		Title: fmt.Sprintf("Build authentic Reddit presence in %s", strings.Join(firstN(subreddits, 2), " and ")),
		Why:   "Reddit is the #1 source AI models cite — 40% of all LLM citations come from Reddit. Indian D2C brands have almost zero Reddit presence, making this the biggest untapped opportunity.",
		Difficulty: models.DifficultyMedium,
		Impact:     models.ImpactHigh,
		ActionDetail: fmt.Sprintf("Start by genuinely participating in %s. Answer real questions about your category. Share honest experiences (not promotional posts — Reddit communities detect and ban spam). After building credibility, naturally mention %s when relevant. Target: 2-3 genuine Reddit posts per week for 3 months.",
			strings.Join(subreddits, ", "), brandName),
	})

	if len(categoryGaps) > 0 {
		recommendations = append(recommendations, models.Recommendation{
			Title: fmt.Sprintf("Get listed on %s with detailed product pages", strings.Join(firstN(aggregators, 3), ", ")),
			Why: fmt.Sprintf("AI models pull data from aggregator and review sites. Your competitors appear on these platforms but %s is missing or has minimal presence. %d category queries don't mention your brand.",
				brandName, len(categoryGaps)),
			Difficulty: models.DifficultyEasy,
			Impact:     models.ImpactMedium,
			ActionDetail: fmt.Sprintf("Submit your brand and products to: %s. Ensure each listing has: detailed product descriptions with specific claims, customer review integration, pricing info, and high-quality images. Encourage existing customers to leave reviews on these platforms.",
				strings.Join(aggregators, ", ")),
		})
	}

	recommendations = append(recommendations, models.Recommendation{
		Title: "Optimize your website for AI extraction",
		Why: fmt.Sprintf("When AI is asked about %s, it pulls from your website. Most D2C sites are optimized for humans, not AI. Adding structured data, FAQ schema, and clear factual claims makes your site 3x more likely to be cited.",
			brandName),
		Difficulty: models.DifficultyEasy,
		Impact:     models.ImpactMedium,
		ActionDetail: fmt.Sprintf("Quick wins: (1) Add FAQ schema markup to your top 5 product pages with common questions and clear answers. (2) Create a comprehensive \"About %s\" page with founding story, key differentiators, awards, and specific statistics. (3) Add comparison tables with concrete numbers on product pages. (4) Ensure your meta descriptions include category keywords (\"best [category] in India\").",
			brandName),
	})

	if len(highGaps) >= 3 {
		recommendations = append(recommendations, models.Recommendation{
			Title: "Get featured in high-authority Indian publications",
			Why: fmt.Sprintf("Perplexity and Google AI heavily weight authoritative sources. %s is cited from publications that %s doesn't appear in. High-authority backlinks are the strongest signal for AI recommendation.",
				topCompetitor, brandName),
			Difficulty: models.DifficultyHard,
			Impact:     models.ImpactHigh,
			ActionDetail: fmt.Sprintf("Target these publications: YourStory, Inc42, BusinessToday, Economic Times Brand Equity, Mint. Pitch angles: founder story, product innovation, category insights (\"The state of %s in India 2025\"), or a data-driven industry report. Even one feature in a top publication can significantly boost AI citations.",
				category),
		})
	}

	if len(categoryGaps) >= 2 {
		recommendations = append(recommendations, models.Recommendation{
			Title: fmt.Sprintf("Publish a \"Best %s in India\" guide featuring your brand", catalog.ContentLabel(category)),
			Why: fmt.Sprintf("%d category-level queries (\"best [product] in India\") don't mention %s. Publishing authoritative category content positions your brand as a thought leader and gives AI models a source to cite.",
				len(categoryGaps), brandName),
			Difficulty:   models.DifficultyMedium,
			Impact:       models.ImpactMedium,
			ActionDetail: "Create a comprehensive, honest guide reviewing the top 10 brands in your category (including yours). Use specific metrics: ingredients, pricing, reviews, certifications. Don't make it purely self-promotional — AI prefers balanced content. Include quotes from real customers and link to third-party reviews.",
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return impactRank[recommendations[i].Impact] > impactRank[recommendations[j].Impact]
	})

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}

func quotedPrompts(gapList []models.Gap, limit int) string {
	var quoted []string
	for _, g := range firstN(gapList, limit) {
		quoted = append(quoted, fmt.Sprintf("%q", g.Prompt))
	}
	return strings.Join(quoted, ", ")
}

func firstN[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
