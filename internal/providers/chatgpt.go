package providers

import (
	"context"
	"time"

	"github.com/brandlens/brandlens/internal/cache"
	"github.com/brandlens/brandlens/internal/models"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

// ChatGPTProvider queries OpenAI chat completions
type ChatGPTProvider struct {
	client *openai.Client
	model  string
	cache  cache.Cache
	apiKey string
}

var _ Provider = (*ChatGPTProvider)(nil)

// NewChatGPTProvider creates the ChatGPT client. An empty API key leaves
// the provider disabled.
func NewChatGPTProvider(apiKey, model string, responseCache cache.Cache) *ChatGPTProvider {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &ChatGPTProvider{
		client: openai.NewClient(apiKey),
		model:  model,
		cache:  responseCache,
		apiKey: apiKey,
	}
}

func (p *ChatGPTProvider) Name() models.Platform {
	return models.PlatformChatGPT
}

func (p *ChatGPTProvider) IsEnabled() bool {
	return p.apiKey != ""
}

// Query asks ChatGPT the prompt and annotates the answer with brand
// mention detection. Upstream errors return a no-mention record.
func (p *ChatGPTProvider) Query(ctx context.Context, prompt, brandName string) models.AIResponse {
	start := time.Now()

	if response, ok := cachedResponse(p.cache, p.Name(), prompt, brandName, start); ok {
		return response
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   1000,
		Temperature: 0.3,
	})
	if err != nil {
		logrus.Errorf("ChatGPT query failed: %v", err)
		return failed(p.Name(), prompt, start)
	}

	var text string
	if len(resp.Choices) > 0 {
		text = resp.Choices[0].Message.Content
	}

	response := annotate(p.Name(), prompt, text, brandName, nil, start)
	storeResponse(p.cache, response)
	return response
}
