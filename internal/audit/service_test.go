package audit

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/brandlens/brandlens/internal/config"
	"github.com/brandlens/brandlens/internal/detect"
	"github.com/brandlens/brandlens/internal/models"
	"github.com/brandlens/brandlens/internal/providers"
	"github.com/brandlens/brandlens/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// stubProvider answers every prompt with a fixed text and runs the same
// detection a real provider client would.
type stubProvider struct {
	platform models.Platform
	enabled  bool
	text     string
}

func (p *stubProvider) Name() models.Platform { return p.platform }
func (p *stubProvider) IsEnabled() bool       { return p.enabled }

func (p *stubProvider) Query(_ context.Context, prompt, brandName string) models.AIResponse {
	detection := detect.BrandMention(p.text, brandName)
	return models.AIResponse{
		Platform:       p.platform,
		Prompt:         prompt,
		ResponseText:   p.text,
		BrandMentioned: detection.Mentioned,
		MentionDetails: detection.Details(),
	}
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) CreateBrand(ctx context.Context, brand models.Brand) error {
	args := m.Called(ctx, brand)
	return args.Error(0)
}

func (m *mockStore) SaveAudit(ctx context.Context, brandID string, result models.AuditResult) error {
	args := m.Called(ctx, brandID, result)
	return args.Error(0)
}

func (m *mockStore) SaveQueries(ctx context.Context, auditID string, responses []models.AIResponse) error {
	args := m.Called(ctx, auditID, responses)
	return args.Error(0)
}

func (m *mockStore) SaveEmailCapture(ctx context.Context, capture models.EmailCapture) error {
	args := m.Called(ctx, capture)
	return args.Error(0)
}

func (m *mockStore) GetAudit(ctx context.Context, auditID string) (*storage.StoredAudit, error) {
	args := m.Called(ctx, auditID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.StoredAudit), args.Error(1)
}

func (m *mockStore) TrackedBrands(ctx context.Context) ([]storage.TrackedBrand, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.TrackedBrand), args.Error(1)
}

func (m *mockStore) Close() {
	m.Called()
}

func testConfig() *config.Config {
	return &config.Config{
		MaxConcurrentQueries: 4,
		AuditTimeout:         30 * time.Second,
		ProviderRatePerSec:   1000,
		ProviderBurst:        100,
	}
}

func TestRun_UnknownCategory(t *testing.T) {
	service := NewService(testConfig(), nil, nil, nil)

	result, err := service.Run(context.Background(), models.AuditRequest{
		BrandName: "BrandX",
		Category:  "nonsense",
	})

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestRun_FullAudit(t *testing.T) {
	mentioning := &stubProvider{
		platform: models.PlatformChatGPT,
		enabled:  true,
		text:     "1. BrandX is the best choice 2. Plum 3. Nykaa",
	}
	missing := &stubProvider{
		platform: models.PlatformPerplexity,
		enabled:  true,
		text:     "Popular picks are Plum and Minimalist",
	}

	service := NewService(testConfig(), []providers.Provider{mentioning, missing}, nil, nil)

	result, err := service.Run(context.Background(), models.AuditRequest{
		BrandName: "BrandX",
		Category:  "beauty",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, result.AuditID)
	assert.Equal(t, models.AuditCompleted, result.Status)
	assert.Equal(t, "BrandX", result.Brand.Name)

	// 15 prompts times 2 enabled platforms
	assert.Len(t, result.Responses, 30)

	// Half the batch mentions the brand at position 1
	assert.Equal(t, 50, result.ScoreBreakdown.MentionFrequency)
	assert.Equal(t, result.ScoreBreakdown.Total, result.VisibilityScore)

	// Every missing-platform response names competitors, so gaps exist
	assert.NotEmpty(t, result.Gaps)
	assert.NotEmpty(t, result.Recommendations)
	assert.LessOrEqual(t, len(result.Recommendations), 5)

	// Plum shows up on both platforms, Nykaa on one
	names := make([]string, 0, len(result.Competitors))
	for _, c := range result.Competitors {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, "Plum")
	assert.Contains(t, names, "Nykaa")
}

func TestRun_SkipsDisabledProviders(t *testing.T) {
	enabled := &stubProvider{platform: models.PlatformChatGPT, enabled: true, text: "BrandX leads"}
	disabled := &stubProvider{platform: models.PlatformGoogleAI, enabled: false, text: "BrandX leads"}

	service := NewService(testConfig(), []providers.Provider{enabled, disabled}, nil, nil)

	result, err := service.Run(context.Background(), models.AuditRequest{
		BrandName: "BrandX",
		Category:  "beauty",
	})

	assert.NoError(t, err)
	assert.Len(t, result.Responses, 15)
	for _, r := range result.Responses {
		assert.Equal(t, models.PlatformChatGPT, r.Platform)
	}
}

func TestRun_DeclaredCompetitorsForced(t *testing.T) {
	provider := &stubProvider{platform: models.PlatformChatGPT, enabled: true, text: "BrandX leads"}
	service := NewService(testConfig(), []providers.Provider{provider}, nil, nil)

	result, err := service.Run(context.Background(), models.AuditRequest{
		BrandName:   "BrandX",
		Category:    "beauty",
		Competitors: []string{"GhostBrand", " "},
	})

	assert.NoError(t, err)

	var ghost *models.CompetitorResult
	for i := range result.Competitors {
		if result.Competitors[i].Name == "GhostBrand" {
			ghost = &result.Competitors[i]
		}
	}
	assert.NotNil(t, ghost)
	assert.Equal(t, 0, ghost.Score)
	assert.Equal(t, 0, ghost.MentionCount)
	assert.Empty(t, ghost.Platforms)
}

func TestRun_PersistsThroughStore(t *testing.T) {
	provider := &stubProvider{platform: models.PlatformChatGPT, enabled: true, text: "BrandX leads"}

	store := &mockStore{}
	store.On("CreateBrand", mock.Anything, mock.Anything).Return(nil)
	store.On("SaveAudit", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	store.On("SaveQueries", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	service := NewService(testConfig(), []providers.Provider{provider}, store, nil)

	result, err := service.Run(context.Background(), models.AuditRequest{
		BrandName:  "BrandX",
		WebsiteURL: "https://brandx.example",
		Category:   "beauty",
	})

	assert.NoError(t, err)
	store.AssertExpectations(t)

	store.AssertCalled(t, "SaveQueries", mock.Anything, result.AuditID, mock.Anything)
}

func TestRun_StoreFailureDoesNotFailAudit(t *testing.T) {
	provider := &stubProvider{platform: models.PlatformChatGPT, enabled: true, text: "BrandX leads"}

	store := &mockStore{}
	store.On("CreateBrand", mock.Anything, mock.Anything).Return(assert.AnError)

	service := NewService(testConfig(), []providers.Provider{provider}, store, nil)

	result, err := service.Run(context.Background(), models.AuditRequest{
		BrandName: "BrandX",
		Category:  "beauty",
	})

	assert.NoError(t, err)
	assert.NotNil(t, result)
	store.AssertNotCalled(t, "SaveAudit", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetMetrics(t *testing.T) {
	provider := &stubProvider{platform: models.PlatformChatGPT, enabled: true, text: "BrandX leads"}
	service := NewService(testConfig(), []providers.Provider{provider}, nil, nil)

	_, err := service.Run(context.Background(), models.AuditRequest{
		BrandName: "BrandX",
		Category:  "beauty",
	})
	assert.NoError(t, err)

	var metrics Metrics
	assert.NoError(t, json.Unmarshal([]byte(service.GetMetrics()), &metrics))
	assert.Equal(t, 1, metrics.TotalAudits)
	assert.Equal(t, 15, metrics.PlatformCounts["chatgpt"])
	assert.Equal(t, 0, metrics.FailedQueries)
	assert.False(t, metrics.LastRun.IsZero())
}

func TestAppendDeclaredCompetitors_Dedupes(t *testing.T) {
	ranked := []models.CompetitorResult{{Name: "Plum", Score: 80}}

	result := appendDeclaredCompetitors(ranked, []string{"plum", "Nykaa"})

	assert.Len(t, result, 2)
	assert.Equal(t, "Plum", result[0].Name)
	assert.True(t, strings.EqualFold("Nykaa", result[1].Name))
}
