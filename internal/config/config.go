package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port  string
	Debug bool

	// AI provider credentials and models
	OpenAIAPIKey     string
	OpenAIModel      string
	PerplexityAPIKey string
	PerplexityModel  string
	GoogleAIAPIKey   string
	GoogleAIModel    string

	// Audit execution
	MaxConcurrentQueries int
	AuditTimeout         time.Duration
	ProviderRatePerSec   float64
	ProviderBurst        int

	// Response cache
	CacheTTL time.Duration

	// Per-IP daily quota on the audit endpoint
	DailyAuditLimit int

	// Persistence
	DatabaseURL string

	// Report archive (Azure Blob), optional
	StorageAccount   string
	StorageContainer string

	// Report email delivery, optional
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string

	// Scheduled re-audits for tracked brands
	ReportSchedule string // "daily" or "weekly"
	EnableTracking bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:  getEnv("PORT", "8080"),
		Debug: getBoolEnv("DEBUG", false),

		OpenAIAPIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:      getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		PerplexityAPIKey: getEnv("PERPLEXITY_API_KEY", ""),
		PerplexityModel:  getEnv("PERPLEXITY_MODEL", "sonar"),
		GoogleAIAPIKey:   getEnv("GOOGLE_AI_API_KEY", ""),
		GoogleAIModel:    getEnv("GOOGLE_AI_MODEL", "gemini-1.5-flash"),

		MaxConcurrentQueries: getIntEnv("MAX_CONCURRENT_QUERIES", 5),
		AuditTimeout:         getDurationEnv("AUDIT_TIMEOUT", 60*time.Second),
		ProviderRatePerSec:   getFloatEnv("PROVIDER_RATE_PER_SEC", 2.0),
		ProviderBurst:        getIntEnv("PROVIDER_BURST", 5),

		CacheTTL: getDurationEnv("CACHE_TTL", 24*time.Hour),

		DailyAuditLimit: getIntEnv("DAILY_AUDIT_LIMIT", 20),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		StorageAccount:   getEnv("AZURE_STORAGE_ACCOUNT", ""),
		StorageContainer: getEnv("AZURE_STORAGE_CONTAINER", "audits"),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getIntEnv("SMTP_PORT", 587),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		ReportSchedule: getEnv("REPORT_SCHEDULE", "weekly"),
		EnableTracking: getBoolEnv("ENABLE_TRACKING", false),
	}

	// Validate required configuration
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.OpenAIAPIKey == "" && c.PerplexityAPIKey == "" && c.GoogleAIAPIKey == "" {
		return fmt.Errorf("at least one AI provider key must be configured (OPENAI_API_KEY, PERPLEXITY_API_KEY or GOOGLE_AI_API_KEY)")
	}

	if c.ReportSchedule != "daily" && c.ReportSchedule != "weekly" {
		return fmt.Errorf("REPORT_SCHEDULE must be 'daily' or 'weekly'")
	}

	if c.MaxConcurrentQueries < 1 {
		return fmt.Errorf("MAX_CONCURRENT_QUERIES must be at least 1")
	}

	if c.DailyAuditLimit < 1 {
		return fmt.Errorf("DAILY_AUDIT_LIMIT must be at least 1")
	}

	if c.EnableTracking && c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required when ENABLE_TRACKING is set")
	}

	return nil
}

// EmailEnabled reports whether SMTP is configured for report delivery
func (c *Config) EmailEnabled() bool {
	return c.SMTPHost != "" && c.SMTPUsername != "" && c.SMTPPassword != ""
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(strings.TrimSpace(value)); err == nil {
			return parsed
		}
	}
	return defaultValue
}
