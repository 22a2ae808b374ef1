// Package audit orchestrates one visibility audit: fan out every prompt
// to every enabled AI platform, collect the answers, and run the scoring
// pipeline over the batch. Network calls live here and in the provider
// clients; everything downstream of collection is pure computation.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/brandlens/brandlens/internal/catalog"
	"github.com/brandlens/brandlens/internal/config"
	"github.com/brandlens/brandlens/internal/detect"
	"github.com/brandlens/brandlens/internal/gaps"
	"github.com/brandlens/brandlens/internal/models"
	"github.com/brandlens/brandlens/internal/providers"
	"github.com/brandlens/brandlens/internal/recommend"
	"github.com/brandlens/brandlens/internal/scoring"
	"github.com/brandlens/brandlens/internal/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Service runs visibility audits
type Service struct {
	config    *config.Config
	providers []providers.Provider
	store     storage.Store     // optional
	archive   storage.Archiver  // optional
	limiter   *rate.Limiter
	metrics   *Metrics
	mu        sync.RWMutex
}

// Metrics holds audit run metrics
type Metrics struct {
	TotalAudits     int            `json:"total_audits"`
	LastRun         time.Time      `json:"last_run"`
	LastRunDuration string         `json:"last_run_duration"`
	LastScore       int            `json:"last_score"`
	PlatformCounts  map[string]int `json:"platform_counts"`
	CacheHits       int            `json:"cache_hits"`
	FailedQueries   int            `json:"failed_queries"`
}

// NewService creates an audit service. store and archive may be nil; the
// audit then runs without persistence.
func NewService(cfg *config.Config, platformProviders []providers.Provider, store storage.Store, archive storage.Archiver) *Service {
	return &Service{
		config:    cfg,
		providers: platformProviders,
		store:     store,
		archive:   archive,
		limiter:   rate.NewLimiter(rate.Limit(cfg.ProviderRatePerSec), cfg.ProviderBurst),
		metrics: &Metrics{
			PlatformCounts: make(map[string]int),
		},
	}
}

// Run executes one full audit for the request and returns the completed
// result. Provider failures degrade the score but never abort the run;
// the only errors returned are an unknown category and an exhausted
// wall-clock budget before any answer arrived.
func (s *Service) Run(ctx context.Context, request models.AuditRequest) (*models.AuditResult, error) {
	start := time.Now()

	if !catalog.IsValidCategory(request.Category) {
		return nil, fmt.Errorf("unknown category %q", request.Category)
	}

	prompts := catalog.Prompts(request.Category)
	logrus.Infof("Starting audit for %q (%s): %d prompts across %d platforms",
		request.BrandName, request.Category, len(prompts), len(s.enabledProviders()))

	ctx, cancel := context.WithTimeout(ctx, s.config.AuditTimeout)
	defer cancel()

	responses := s.collectResponses(ctx, prompts, request.BrandName)

	// Competitor extraction happens here rather than in the providers so
	// one pass owns the category tables.
	for i := range responses {
		responses[i] = detect.EnrichResponse(responses[i], request.BrandName, request.Category)
	}

	breakdown := scoring.VisibilityScore(responses)
	competitors := scoring.RankCompetitors(responses)
	competitors = appendDeclaredCompetitors(competitors, request.Competitors)

	gapList := gaps.Identify(responses, request.BrandName)

	competitorNames := make([]string, 0, len(competitors))
	for _, c := range competitors {
		competitorNames = append(competitorNames, c.Name)
	}
	recommendations := recommend.Generate(gapList, request.BrandName, request.Category, competitorNames)

	// The response carries at most five competitors; declared ones past the
	// cut still informed the recommendations above.
	if len(competitors) > 5 {
		competitors = competitors[:5]
	}

	result := &models.AuditResult{
		AuditID:         uuid.NewString(),
		Status:          models.AuditCompleted,
		VisibilityScore: breakdown.Total,
		ScoreBreakdown:  breakdown,
		Competitors:     competitors,
		Gaps:            gapList,
		Recommendations: recommendations,
		Brand: models.BrandInfo{
			Name:     request.BrandName,
			Category: request.Category,
		},
		GeneratedAt: time.Now().UTC(),
		Responses:   responses,
	}

	s.persist(request, result)
	s.updateMetrics(result, time.Since(start))

	logrus.Infof("Audit %s completed in %v: score %d, %d gaps, %d recommendations",
		result.AuditID, time.Since(start), result.VisibilityScore, len(gapList), len(recommendations))
	return result, nil
}

// collectResponses fans the prompt set out to every enabled provider with
// bounded parallelism. Each call is isolated: a failed or timed-out call
// yields an empty-text record and never cancels its siblings.
func (s *Service) collectResponses(ctx context.Context, prompts []string, brandName string) []models.AIResponse {
	enabled := s.enabledProviders()

	var mu sync.Mutex
	responses := make([]models.AIResponse, 0, len(prompts)*len(enabled))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.config.MaxConcurrentQueries)

	for _, prompt := range prompts {
		for _, provider := range enabled {
			prompt, provider := prompt, provider
			group.Go(func() error {
				if err := s.limiter.Wait(groupCtx); err != nil {
					logrus.Warnf("Dropping %s query, audit budget exhausted: %v", provider.Name(), err)
					return nil
				}

				response := provider.Query(groupCtx, prompt, brandName)

				mu.Lock()
				responses = append(responses, response)
				mu.Unlock()
				return nil
			})
		}
	}

	// Workers only return nil; Wait is for completion, not errors
	_ = group.Wait()

	logrus.Infof("Collected %d responses", len(responses))
	return responses
}

func (s *Service) enabledProviders() []providers.Provider {
	var enabled []providers.Provider
	for _, p := range s.providers {
		if p.IsEnabled() {
			enabled = append(enabled, p)
		}
	}
	return enabled
}

// appendDeclaredCompetitors forces user-declared competitors into the
// result, with a zero score when the ranking never saw them.
func appendDeclaredCompetitors(ranked []models.CompetitorResult, declared []string) []models.CompetitorResult {
	for _, name := range declared {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		exists := false
		for _, r := range ranked {
			if strings.EqualFold(r.Name, name) {
				exists = true
				break
			}
		}
		if !exists {
			ranked = append(ranked, models.CompetitorResult{Name: name, Platforms: []models.Platform{}})
		}
	}
	return ranked
}

// persist writes the audit after compute. Failures are logged and never
// fail the audit itself.
func (s *Service) persist(request models.AuditRequest, result *models.AuditResult) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if s.store != nil {
		brand := models.Brand{
			ID:         uuid.NewString(),
			Name:       request.BrandName,
			WebsiteURL: request.WebsiteURL,
			Category:   request.Category,
		}
		if err := s.store.CreateBrand(ctx, brand); err != nil {
			logrus.Errorf("Failed to store brand: %v", err)
		} else if err := s.store.SaveAudit(ctx, brand.ID, *result); err != nil {
			logrus.Errorf("Failed to store audit: %v", err)
		} else if err := s.store.SaveQueries(ctx, result.AuditID, result.Responses); err != nil {
			logrus.Errorf("Failed to store query records: %v", err)
		}
	}

	if s.archive != nil {
		data, err := json.Marshal(result)
		if err != nil {
			logrus.Errorf("Failed to marshal audit report: %v", err)
			return
		}
		name := fmt.Sprintf("audit-%s-%s.json", result.GeneratedAt.Format("2006-01-02"), result.AuditID)
		if err := s.archive.Store(ctx, name, data); err != nil {
			logrus.Errorf("Failed to archive audit report: %v", err)
		}
	}
}

func (s *Service) updateMetrics(result *models.AuditResult, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.metrics.TotalAudits++
	s.metrics.LastRun = time.Now().UTC()
	s.metrics.LastRunDuration = duration.String()
	s.metrics.LastScore = result.VisibilityScore

	for _, r := range result.Responses {
		s.metrics.PlatformCounts[string(r.Platform)]++
		if r.Cached {
			s.metrics.CacheHits++
		}
		if r.ResponseText == "" {
			s.metrics.FailedQueries++
		}
	}
}

// GetMetrics returns current metrics as JSON
func (s *Service) GetMetrics() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, _ := json.MarshalIndent(s.metrics, "", "  ")
	return string(data)
}
