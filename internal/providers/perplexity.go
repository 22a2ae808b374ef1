package providers

import (
	"context"
	"encoding/json"
	"time"

	"github.com/brandlens/brandlens/internal/cache"
	"github.com/brandlens/brandlens/internal/models"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

const perplexityAPIURL = "https://api.perplexity.ai/chat/completions"

// PerplexityProvider queries the Perplexity chat completions API
type PerplexityProvider struct {
	client *resty.Client
	apiKey string
	model  string
	cache  cache.Cache
}

var _ Provider = (*PerplexityProvider)(nil)

type perplexityRequest struct {
	Model       string              `json:"model"`
	Messages    []perplexityMessage `json:"messages"`
	MaxTokens   int                 `json:"max_tokens"`
	Temperature float64             `json:"temperature"`
}

type perplexityMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type perplexityResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Citations []string `json:"citations"`
}

// NewPerplexityProvider creates the Perplexity client. An empty API key
// leaves the provider disabled.
func NewPerplexityProvider(apiKey, model string, responseCache cache.Cache) *PerplexityProvider {
	if model == "" {
		model = "sonar"
	}
	return &PerplexityProvider{
		client: resty.New().SetTimeout(queryTimeout),
		apiKey: apiKey,
		model:  model,
		cache:  responseCache,
	}
}

func (p *PerplexityProvider) Name() models.Platform {
	return models.PlatformPerplexity
}

func (p *PerplexityProvider) IsEnabled() bool {
	return p.apiKey != ""
}

// Query asks Perplexity the prompt and annotates the answer with brand
// mention detection and citations. Upstream errors return a no-mention
// record.
func (p *PerplexityProvider) Query(ctx context.Context, prompt, brandName string) models.AIResponse {
	start := time.Now()

	if response, ok := cachedResponse(p.cache, p.Name(), prompt, brandName, start); ok {
		return response
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+p.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(perplexityRequest{
			Model:       p.model,
			Messages:    []perplexityMessage{{Role: "user", Content: prompt}},
			MaxTokens:   1000,
			Temperature: 0.3,
		}).
		Post(perplexityAPIURL)

	if err != nil {
		logrus.Errorf("Perplexity query failed: %v", err)
		return failed(p.Name(), prompt, start)
	}

	if resp.StatusCode() != 200 {
		logrus.Errorf("Perplexity API returned status %d: %s", resp.StatusCode(), resp.Body())
		return failed(p.Name(), prompt, start)
	}

	var parsed perplexityResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		logrus.Errorf("Perplexity response parse failed: %v", err)
		return failed(p.Name(), prompt, start)
	}

	var text string
	if len(parsed.Choices) > 0 {
		text = parsed.Choices[0].Message.Content
	}

	response := annotate(p.Name(), prompt, text, brandName, parsed.Citations, start)
	storeResponse(p.cache, response)
	return response
}
