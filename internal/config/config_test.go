package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Equal(t, "sonar", cfg.PerplexityModel)
	assert.Equal(t, 5, cfg.MaxConcurrentQueries)
	assert.Equal(t, 60*time.Second, cfg.AuditTimeout)
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
	assert.Equal(t, 20, cfg.DailyAuditLimit)
	assert.Equal(t, "weekly", cfg.ReportSchedule)
	assert.False(t, cfg.EnableTracking)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("MAX_CONCURRENT_QUERIES", "2")
	t.Setenv("AUDIT_TIMEOUT", "90s")
	t.Setenv("DAILY_AUDIT_LIMIT", "50")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, 2, cfg.MaxConcurrentQueries)
	assert.Equal(t, 90*time.Second, cfg.AuditTimeout)
	assert.Equal(t, 50, cfg.DailyAuditLimit)
}

func TestLoad_RequiresProviderKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("PERPLEXITY_API_KEY", "")
	t.Setenv("GOOGLE_AI_API_KEY", "")

	_, err := Load()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "at least one AI provider key")
}

func TestLoad_RejectsBadSchedule(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("REPORT_SCHEDULE", "hourly")

	_, err := Load()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "REPORT_SCHEDULE")
}

func TestLoad_TrackingNeedsDatabase(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("ENABLE_TRACKING", "true")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestEmailEnabled(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.EmailEnabled())

	cfg.SMTPHost = "smtp.example.com"
	cfg.SMTPUsername = "reports"
	cfg.SMTPPassword = "secret"
	assert.True(t, cfg.EmailEnabled())
}
