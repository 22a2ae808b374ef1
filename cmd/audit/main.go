// Command audit runs one visibility audit from the command line and
// prints the report to the terminal. Useful for trying categories and
// brands without standing up the HTTP server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/brandlens/brandlens/internal/audit"
	"github.com/brandlens/brandlens/internal/cache"
	"github.com/brandlens/brandlens/internal/config"
	"github.com/brandlens/brandlens/internal/models"
	"github.com/brandlens/brandlens/internal/providers"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	brandName := flag.String("brand", "", "brand name to audit (required)")
	category := flag.String("category", "", "brand category (required)")
	competitors := flag.String("competitors", "", "comma-separated competitor names")
	asJSON := flag.Bool("json", false, "print the raw JSON result")
	flag.Parse()

	if *brandName == "" || *category == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		logrus.Debug("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	logrus.SetLevel(logrus.WarnLevel)
	if cfg.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	ctx := context.Background()
	responseCache := cache.NewMemoryCache(cfg.CacheTTL, 10*time.Minute)

	googleAI, err := providers.NewGoogleAIProvider(ctx, cfg.GoogleAIAPIKey, cfg.GoogleAIModel, responseCache)
	if err != nil {
		logrus.Fatalf("Failed to initialize Google AI provider: %v", err)
	}
	defer googleAI.Close()

	auditService := audit.NewService(cfg, []providers.Provider{
		providers.NewChatGPTProvider(cfg.OpenAIAPIKey, cfg.OpenAIModel, responseCache),
		providers.NewPerplexityProvider(cfg.PerplexityAPIKey, cfg.PerplexityModel, responseCache),
		googleAI,
	}, nil, nil)

	request := models.AuditRequest{
		BrandName: *brandName,
		Category:  *category,
	}
	if *competitors != "" {
		request.Competitors = strings.Split(*competitors, ",")
	}

	result, err := auditService.Run(ctx, request)
	if err != nil {
		logrus.Fatalf("Audit failed: %v", err)
	}

	if *asJSON {
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(data))
		return
	}

	printReport(result)
}

func printReport(result *models.AuditResult) {
	line := strings.Repeat("=", 70)

	fmt.Println("\n" + line)
	fmt.Printf("AI VISIBILITY REPORT: %s\n", result.Brand.Name)
	fmt.Println(line)
	fmt.Printf("Generated: %s\n", result.GeneratedAt.Format("2006-01-02 15:04:05 UTC"))
	fmt.Printf("Visibility Score: %d/100\n\n", result.VisibilityScore)

	fmt.Println("Score Breakdown:")
	fmt.Printf("   %-20s %d\n", "Mention Frequency:", result.ScoreBreakdown.MentionFrequency)
	fmt.Printf("   %-20s %d\n", "Sentiment Quality:", result.ScoreBreakdown.SentimentQuality)
	fmt.Printf("   %-20s %d\n", "Platform Coverage:", result.ScoreBreakdown.PlatformCoverage)
	fmt.Printf("   %-20s %d\n", "Position Strength:", result.ScoreBreakdown.PositionStrength)

	if len(result.Competitors) > 0 {
		fmt.Println("\nCompetitors:")
		for i, c := range result.Competitors {
			fmt.Printf("   %d. %-25s score %3d (%d mentions on %d platforms)\n",
				i+1, c.Name, c.Score, c.MentionCount, len(c.Platforms))
		}
	}

	if len(result.Gaps) > 0 {
		fmt.Printf("\nContent Gaps (%d):\n", len(result.Gaps))
		for _, gap := range result.Gaps {
			fmt.Printf("   [%-6s] %s (%s)\n", gap.Priority, gap.Prompt, gap.Platform)
		}
	}

	if len(result.Recommendations) > 0 {
		fmt.Println("\nRecommended Actions:")
		for i, rec := range result.Recommendations {
			fmt.Printf("   %d. %s\n", i+1, rec.Title)
			fmt.Printf("      impact: %s | difficulty: %s\n", rec.Impact, rec.Difficulty)
		}
	}

	fmt.Println("\n" + line)
}
