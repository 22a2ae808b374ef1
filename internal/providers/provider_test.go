package providers

import (
	"testing"
	"time"

	"github.com/brandlens/brandlens/internal/cache"
	"github.com/brandlens/brandlens/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAnnotate(t *testing.T) {
	response := annotate(models.PlatformChatGPT, "best skincare", "1. BrandX is great", "BrandX", nil, time.Now())

	assert.Equal(t, models.PlatformChatGPT, response.Platform)
	assert.Equal(t, "best skincare", response.Prompt)
	assert.True(t, response.BrandMentioned)
	assert.NotNil(t, response.MentionDetails)
	assert.Equal(t, 1, response.MentionDetails.Position)
	assert.False(t, response.Cached)
}

func TestAnnotate_NoMention(t *testing.T) {
	response := annotate(models.PlatformChatGPT, "best skincare", "other brands only", "BrandX", nil, time.Now())

	assert.False(t, response.BrandMentioned)
	assert.Nil(t, response.MentionDetails)
}

func TestFailed(t *testing.T) {
	response := failed(models.PlatformPerplexity, "best skincare", time.Now())

	assert.Equal(t, models.PlatformPerplexity, response.Platform)
	assert.Empty(t, response.ResponseText)
	assert.False(t, response.BrandMentioned)
	assert.Nil(t, response.MentionDetails)
}

func TestCachedResponse_Miss(t *testing.T) {
	c := cache.NewMemoryCache(time.Minute, time.Minute)

	_, found := cachedResponse(c, models.PlatformChatGPT, "best skincare", "BrandX", time.Now())
	assert.False(t, found)

	_, found = cachedResponse(nil, models.PlatformChatGPT, "best skincare", "BrandX", time.Now())
	assert.False(t, found)
}

func TestCachedResponse_RedetectsForRequestedBrand(t *testing.T) {
	c := cache.NewMemoryCache(time.Minute, time.Minute)

	// Stored under BrandX's audit; a later audit for Plum reuses the
	// same upstream answer with detection re-run for Plum.
	original := annotate(models.PlatformChatGPT, "best skincare", "Plum and Nykaa lead, BrandX trails", "BrandX", nil, time.Now())
	original.CompetitorsFound = []models.CompetitorMention{{Name: "Plum", Position: 1, Sentiment: models.SentimentNeutral}}
	storeResponse(c, original)

	response, found := cachedResponse(c, models.PlatformChatGPT, "best skincare", "Plum", time.Now())

	assert.True(t, found)
	assert.True(t, response.Cached)
	assert.True(t, response.BrandMentioned)
	assert.Equal(t, original.ResponseText, response.ResponseText)
	// Competitor extraction is per-audit, never reused from the cache
	assert.Nil(t, response.CompetitorsFound)
}

func TestCachedResponse_DropsCorruptEntries(t *testing.T) {
	c := cache.NewMemoryCache(time.Minute, time.Minute)
	key := cache.Key(string(models.PlatformChatGPT), "best skincare")
	c.Set(key, []byte("{not json"), time.Minute)

	_, found := cachedResponse(c, models.PlatformChatGPT, "best skincare", "BrandX", time.Now())

	assert.False(t, found)
	_, stillThere := c.Get(key)
	assert.False(t, stillThere)
}
