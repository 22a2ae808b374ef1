package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/brandlens/brandlens/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists brands, audits and per-query records
type PostgresStore struct {
	pool *pgxpool.Pool
}

var _ Store = (*PostgresStore)(nil)

// NewPostgresStore connects to the database and ensures the schema exists
func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("database URL is required")
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	store := &PostgresStore{pool: pool}
	if err := store.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	return store, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS brands (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			website_url TEXT,
			category TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS audits (
			id TEXT PRIMARY KEY,
			brand_id TEXT NOT NULL REFERENCES brands(id),
			status TEXT NOT NULL,
			visibility_score INT,
			score_breakdown JSONB,
			competitor_data JSONB,
			gap_data JSONB,
			recommendation_data JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			completed_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS ai_queries (
			id BIGSERIAL PRIMARY KEY,
			audit_id TEXT NOT NULL REFERENCES audits(id),
			platform TEXT NOT NULL,
			prompt TEXT NOT NULL,
			response TEXT,
			brand_mentioned BOOLEAN NOT NULL,
			mention_sentiment TEXT,
			mention_position INT,
			competitors_mentioned JSONB,
			cached BOOLEAN NOT NULL,
			latency_ms BIGINT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS email_captures (
			id TEXT PRIMARY KEY,
			audit_id TEXT NOT NULL REFERENCES audits(id),
			email TEXT NOT NULL,
			brand_name TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// CreateBrand inserts the audited brand
func (s *PostgresStore) CreateBrand(ctx context.Context, brand models.Brand) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO brands (id, name, website_url, category) VALUES ($1, $2, NULLIF($3, ''), $4)`,
		brand.ID, brand.Name, brand.WebsiteURL, brand.Category)
	if err != nil {
		return fmt.Errorf("failed to insert brand: %w", err)
	}
	return nil
}

// SaveAudit writes a completed audit with its derived data
func (s *PostgresStore) SaveAudit(ctx context.Context, brandID string, result models.AuditResult) error {
	breakdown, err := json.Marshal(result.ScoreBreakdown)
	if err != nil {
		return fmt.Errorf("failed to marshal score breakdown: %w", err)
	}
	competitors, err := json.Marshal(result.Competitors)
	if err != nil {
		return fmt.Errorf("failed to marshal competitors: %w", err)
	}
	gapData, err := json.Marshal(result.Gaps)
	if err != nil {
		return fmt.Errorf("failed to marshal gaps: %w", err)
	}
	recommendations, err := json.Marshal(result.Recommendations)
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO audits (id, brand_id, status, visibility_score, score_breakdown, competitor_data, gap_data, recommendation_data, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())`,
		result.AuditID, brandID, string(result.Status), result.VisibilityScore,
		breakdown, competitors, gapData, recommendations)
	if err != nil {
		return fmt.Errorf("failed to insert audit: %w", err)
	}
	return nil
}

// SaveQueries writes the per prompt x platform records for an audit
func (s *PostgresStore) SaveQueries(ctx context.Context, auditID string, responses []models.AIResponse) error {
	batch := &pgx.Batch{}
	for _, r := range responses {
		var sentiment *string
		var position *int
		if r.MentionDetails != nil {
			sentimentValue := string(r.MentionDetails.Sentiment)
			sentiment = &sentimentValue
			position = &r.MentionDetails.Position
		}

		competitors, err := json.Marshal(r.CompetitorsFound)
		if err != nil {
			return fmt.Errorf("failed to marshal competitor mentions: %w", err)
		}

		batch.Queue(
			`INSERT INTO ai_queries (audit_id, platform, prompt, response, brand_mentioned, mention_sentiment, mention_position, competitors_mentioned, cached, latency_ms)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			auditID, string(r.Platform), r.Prompt, r.ResponseText, r.BrandMentioned,
			sentiment, position, competitors, r.Cached, r.LatencyMs)
	}

	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()

	for range responses {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert query record: %w", err)
		}
	}
	return nil
}

// SaveEmailCapture records a report-by-email request
func (s *PostgresStore) SaveEmailCapture(ctx context.Context, capture models.EmailCapture) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO email_captures (id, audit_id, email, brand_name) VALUES ($1, $2, $3, $4)`,
		capture.ID, capture.AuditID, capture.Email, capture.BrandName)
	if err != nil {
		return fmt.Errorf("failed to insert email capture: %w", err)
	}
	return nil
}

// GetAudit loads one audit joined with its brand
func (s *PostgresStore) GetAudit(ctx context.Context, auditID string) (*StoredAudit, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT a.id, a.status, a.visibility_score, a.score_breakdown, a.competitor_data, a.gap_data, a.recommendation_data,
		        b.id, b.name, b.category
		 FROM audits a JOIN brands b ON a.brand_id = b.id
		 WHERE a.id = $1`, auditID)

	var stored StoredAudit
	var breakdown, competitors, gapData, recommendations []byte
	err := row.Scan(
		&stored.Result.AuditID, &stored.Result.Status, &stored.Result.VisibilityScore,
		&breakdown, &competitors, &gapData, &recommendations,
		&stored.BrandID, &stored.BrandName, &stored.Category)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load audit: %w", err)
	}

	if err := json.Unmarshal(breakdown, &stored.Result.ScoreBreakdown); err != nil {
		return nil, fmt.Errorf("failed to decode score breakdown: %w", err)
	}
	if err := json.Unmarshal(competitors, &stored.Result.Competitors); err != nil {
		return nil, fmt.Errorf("failed to decode competitors: %w", err)
	}
	if err := json.Unmarshal(gapData, &stored.Result.Gaps); err != nil {
		return nil, fmt.Errorf("failed to decode gaps: %w", err)
	}
	if err := json.Unmarshal(recommendations, &stored.Result.Recommendations); err != nil {
		return nil, fmt.Errorf("failed to decode recommendations: %w", err)
	}

	stored.Result.Brand = models.BrandInfo{Name: stored.BrandName, Category: stored.Category}
	return &stored, nil
}

// TrackedBrands returns brands with at least one captured email, newest
// capture winning per brand
func (s *PostgresStore) TrackedBrands(ctx context.Context) ([]TrackedBrand, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT DISTINCT ON (b.id) b.id, b.name, COALESCE(b.website_url, ''), b.category, e.email
		 FROM brands b
		 JOIN audits a ON a.brand_id = b.id
		 JOIN email_captures e ON e.audit_id = a.id
		 ORDER BY b.id, e.created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracked brands: %w", err)
	}
	defer rows.Close()

	var tracked []TrackedBrand
	for rows.Next() {
		var t TrackedBrand
		if err := rows.Scan(&t.Brand.ID, &t.Brand.Name, &t.Brand.WebsiteURL, &t.Brand.Category, &t.Email); err != nil {
			return nil, fmt.Errorf("failed to scan tracked brand: %w", err)
		}
		tracked = append(tracked, t)
	}
	return tracked, rows.Err()
}

// Close releases the connection pool
func (s *PostgresStore) Close() {
	s.pool.Close()
}
