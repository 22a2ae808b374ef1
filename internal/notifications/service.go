package notifications

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/brandlens/brandlens/internal/config"
	"github.com/brandlens/brandlens/internal/models"
	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Service delivers audit reports by email
type Service struct {
	config *config.Config
}

var _ Notifier = (*Service)(nil)

// NewService creates a new notification service
func NewService(cfg *config.Config) *Service {
	return &Service{config: cfg}
}

// IsEnabled reports whether SMTP delivery is configured
func (s *Service) IsEnabled() bool {
	return s.config.EmailEnabled()
}

// SendAuditReport emails the full audit report to the given address
func (s *Service) SendAuditReport(email string, result *models.AuditResult) error {
	if !s.IsEnabled() {
		logrus.Debug("Email delivery disabled - SMTP not configured")
		return nil
	}

	subject := fmt.Sprintf("AI Visibility Report for %s: %d/100", result.Brand.Name, result.VisibilityScore)

	htmlBody, err := s.buildReportHTML(result)
	if err != nil {
		return fmt.Errorf("failed to build report HTML: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.config.SMTPUsername)
	m.SetHeader("To", email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", s.buildReportText(result))
	m.AddAlternative("text/html", htmlBody)

	d := gomail.NewDialer(s.config.SMTPHost, s.config.SMTPPort, s.config.SMTPUsername, s.config.SMTPPassword)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send report email: %w", err)
	}

	logrus.Infof("Sent audit report %s to %s", result.AuditID, email)
	return nil
}

const reportTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>AI Visibility Report</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        .header { background-color: #4f46e5; color: white; padding: 20px; border-radius: 5px; }
        .score { font-size: 2.5em; font-weight: bold; }
        .section { background-color: #f5f5f5; padding: 15px; margin: 20px 0; border-radius: 5px; }
        .gap { border-left: 4px solid #f59e0b; padding: 10px; margin: 10px 0; background-color: #fafafa; }
        .gap.high { border-left-color: #ef4444; }
        .rec { border-left: 4px solid #4f46e5; padding: 10px; margin: 10px 0; background-color: #fafafa; }
        .rec-title { font-weight: bold; margin-bottom: 5px; }
        .meta { color: #666; font-size: 0.9em; }
        table { border-collapse: collapse; width: 100%; }
        th, td { text-align: left; padding: 6px 10px; border-bottom: 1px solid #ddd; }
    </style>
</head>
<body>
    <div class="header">
        <h1>AI Visibility Report: {{.Brand.Name}}</h1>
        <p class="score">{{.VisibilityScore}}/100</p>
        <p>Generated {{.GeneratedAt.Format "January 2, 2006 at 3:04 PM UTC"}}</p>
    </div>

    <div class="section">
        <h2>Score Breakdown</h2>
        <table>
            <tr><td>Mention Frequency</td><td>{{.ScoreBreakdown.MentionFrequency}}</td></tr>
            <tr><td>Sentiment Quality</td><td>{{.ScoreBreakdown.SentimentQuality}}</td></tr>
            <tr><td>Platform Coverage</td><td>{{.ScoreBreakdown.PlatformCoverage}}</td></tr>
            <tr><td>Position Strength</td><td>{{.ScoreBreakdown.PositionStrength}}</td></tr>
        </table>
    </div>

    {{if .Competitors}}
    <div class="section">
        <h2>Competitors</h2>
        <table>
            <tr><th>Brand</th><th>Score</th><th>Mentions</th></tr>
            {{range .Competitors}}
            <tr><td>{{.Name}}</td><td>{{.Score}}</td><td>{{.MentionCount}}</td></tr>
            {{end}}
        </table>
    </div>
    {{end}}

    {{if .Gaps}}
    <h2>Content Gaps</h2>
    {{range $index, $gap := .Gaps}}
        {{if lt $index 10}}
        <div class="gap {{$gap.Priority}}">
            <div>{{$gap.Prompt}}</div>
            <div class="meta">{{$gap.Platform}} | {{$gap.Priority}} priority | competitors: {{join $gap.CompetitorsPresent ", "}}</div>
        </div>
        {{end}}
    {{end}}
    {{end}}

    {{if .Recommendations}}
    <h2>Recommended Actions</h2>
    {{range .Recommendations}}
        <div class="rec">
            <div class="rec-title">{{.Title}}</div>
            <div class="meta">impact: {{.Impact}} | difficulty: {{.Difficulty}}</div>
            <p>{{.Why}}</p>
        </div>
    {{end}}
    {{end}}

    <hr>
    <p><small>This report was generated automatically by BrandLens.</small></p>
</body>
</html>
`

func (s *Service) buildReportHTML(result *models.AuditResult) (string, error) {
	t := template.New("report").Funcs(template.FuncMap{
		"join": strings.Join,
	})

	t, err := t.Parse(reportTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, result); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (s *Service) buildReportText(result *models.AuditResult) string {
	var text strings.Builder

	fmt.Fprintf(&text, "AI Visibility Report: %s\n", result.Brand.Name)
	fmt.Fprintf(&text, "Generated: %s\n\n", result.GeneratedAt.Format("2006-01-02 15:04:05 UTC"))

	text.WriteString("SCORE\n")
	text.WriteString("=====\n")
	fmt.Fprintf(&text, "Visibility Score: %d/100\n", result.VisibilityScore)
	fmt.Fprintf(&text, "Mention Frequency: %d\n", result.ScoreBreakdown.MentionFrequency)
	fmt.Fprintf(&text, "Sentiment Quality: %d\n", result.ScoreBreakdown.SentimentQuality)
	fmt.Fprintf(&text, "Platform Coverage: %d\n", result.ScoreBreakdown.PlatformCoverage)
	fmt.Fprintf(&text, "Position Strength: %d\n", result.ScoreBreakdown.PositionStrength)

	if len(result.Competitors) > 0 {
		text.WriteString("\nCOMPETITORS\n")
		text.WriteString("===========\n")
		for i, c := range result.Competitors {
			fmt.Fprintf(&text, "%d. %s - score %d (%d mentions)\n", i+1, c.Name, c.Score, c.MentionCount)
		}
	}

	if len(result.Gaps) > 0 {
		text.WriteString("\nCONTENT GAPS\n")
		text.WriteString("============\n")
		limit := min(10, len(result.Gaps))
		for i := 0; i < limit; i++ {
			gap := result.Gaps[i]
			fmt.Fprintf(&text, "\n%d. %s\n", i+1, gap.Prompt)
			fmt.Fprintf(&text, "   Platform: %s | Priority: %s\n", gap.Platform, gap.Priority)
			fmt.Fprintf(&text, "   Competitors present: %s\n", strings.Join(gap.CompetitorsPresent, ", "))
		}
	}

	if len(result.Recommendations) > 0 {
		text.WriteString("\nRECOMMENDED ACTIONS\n")
		text.WriteString("===================\n")
		for i, rec := range result.Recommendations {
			fmt.Fprintf(&text, "\n%d. %s (impact: %s, difficulty: %s)\n", i+1, rec.Title, rec.Impact, rec.Difficulty)
			fmt.Fprintf(&text, "   %s\n", rec.Why)
		}
	}

	text.WriteString("\n---\nThis report was generated automatically by BrandLens.\n")
	return text.String()
}
