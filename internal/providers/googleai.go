package providers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/brandlens/brandlens/internal/cache"
	"github.com/brandlens/brandlens/internal/models"
	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// GoogleAIProvider queries Gemini as a stand-in for Google's AI answer
// surface
type GoogleAIProvider struct {
	client *genai.Client
	model  string
	cache  cache.Cache
	apiKey string
}

var _ Provider = (*GoogleAIProvider)(nil)

// NewGoogleAIProvider creates the Gemini client. An empty API key leaves
// the provider disabled without constructing the underlying client.
func NewGoogleAIProvider(ctx context.Context, apiKey, model string, responseCache cache.Cache) (*GoogleAIProvider, error) {
	if model == "" {
		model = "gemini-1.5-flash"
	}

	provider := &GoogleAIProvider{
		model:  model,
		cache:  responseCache,
		apiKey: apiKey,
	}
	if apiKey == "" {
		return provider, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Google AI client: %w", err)
	}
	provider.client = client
	return provider, nil
}

func (p *GoogleAIProvider) Name() models.Platform {
	return models.PlatformGoogleAI
}

func (p *GoogleAIProvider) IsEnabled() bool {
	return p.apiKey != "" && p.client != nil
}

// Close releases the underlying client
func (p *GoogleAIProvider) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}

// Query asks Gemini the prompt and annotates the answer with brand
// mention detection. Upstream errors return a no-mention record.
func (p *GoogleAIProvider) Query(ctx context.Context, prompt, brandName string) models.AIResponse {
	start := time.Now()

	if response, ok := cachedResponse(p.cache, p.Name(), prompt, brandName, start); ok {
		return response
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	model := p.client.GenerativeModel(p.model)
	model.SetTemperature(0.3)
	model.SetMaxOutputTokens(1000)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		logrus.Errorf("Google AI query failed: %v", err)
		return failed(p.Name(), prompt, start)
	}

	text := extractText(resp)
	response := annotate(p.Name(), prompt, text, brandName, nil, start)
	storeResponse(p.cache, response)
	return response
}

func extractText(resp *genai.GenerateContentResponse) string {
	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				builder.WriteString(string(text))
			}
		}
	}
	return builder.String()
}
