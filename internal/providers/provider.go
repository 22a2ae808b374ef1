// Package providers implements the AI platform clients. Each client
// answers one prompt on one surface and returns a fully-formed response
// record: brand mention detection already applied, competitor extraction
// left for the enrichment step. Transport and upstream failures never
// escape this boundary; they degrade into an empty-text, no-mention
// record so one slow platform lowers the score instead of aborting the
// audit.
package providers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/brandlens/brandlens/internal/cache"
	"github.com/brandlens/brandlens/internal/detect"
	"github.com/brandlens/brandlens/internal/models"
	"github.com/sirupsen/logrus"
)

// Provider is the contract for one AI answer surface
type Provider interface {
	Name() models.Platform
	IsEnabled() bool
	Query(ctx context.Context, prompt, brandName string) models.AIResponse
}

// CacheTTL is how long upstream answers are reused
const CacheTTL = 24 * time.Hour

const queryTimeout = 30 * time.Second

// cachedResponse returns a prior answer for this platform+prompt if one is
// stored. Mention detection is re-run against the requested brand, since
// the cache is keyed by prompt only and a different brand may ask the same
// question.
func cachedResponse(c cache.Cache, platform models.Platform, prompt, brandName string, start time.Time) (models.AIResponse, bool) {
	if c == nil {
		return models.AIResponse{}, false
	}

	data, found := c.Get(cache.Key(string(platform), prompt))
	if !found {
		return models.AIResponse{}, false
	}

	var response models.AIResponse
	if err := json.Unmarshal(data, &response); err != nil {
		logrus.Warnf("Discarding corrupt cache entry for %s: %v", platform, err)
		c.Delete(cache.Key(string(platform), prompt))
		return models.AIResponse{}, false
	}

	detection := detect.BrandMention(response.ResponseText, brandName)
	response.BrandMentioned = detection.Mentioned
	response.MentionDetails = detection.Details()
	response.CompetitorsFound = nil
	response.Cached = true
	response.LatencyMs = time.Since(start).Milliseconds()
	return response, true
}

func storeResponse(c cache.Cache, response models.AIResponse) {
	if c == nil {
		return
	}
	data, err := json.Marshal(response)
	if err != nil {
		return
	}
	c.Set(cache.Key(string(response.Platform), response.Prompt), data, CacheTTL)
}

// annotate builds the response record for a successful upstream answer
func annotate(platform models.Platform, prompt, text, brandName string, citations []string, start time.Time) models.AIResponse {
	detection := detect.BrandMention(text, brandName)
	return models.AIResponse{
		Platform:       platform,
		Prompt:         prompt,
		ResponseText:   text,
		Citations:      citations,
		BrandMentioned: detection.Mentioned,
		MentionDetails: detection.Details(),
		LatencyMs:      time.Since(start).Milliseconds(),
	}
}

// failed is the neutral record returned when the upstream call did not
// produce an answer
func failed(platform models.Platform, prompt string, start time.Time) models.AIResponse {
	return models.AIResponse{
		Platform:  platform,
		Prompt:    prompt,
		LatencyMs: time.Since(start).Milliseconds(),
	}
}
