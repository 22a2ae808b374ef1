package models

import "time"

// Platform identifies one of the AI answer surfaces we query
type Platform string

const (
	PlatformChatGPT    Platform = "chatgpt"
	PlatformPerplexity Platform = "perplexity"
	PlatformGoogleAI   Platform = "google_ai"
)

// PlatformCount is the number of surfaces an audit queries. Coverage math
// always divides by this, even when a provider is disabled.
const PlatformCount = 3

// Sentiment classifies the tone around a brand mention
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// MentionDetails describes how the target brand appeared in a response.
// Present on an AIResponse iff BrandMentioned is true.
type MentionDetails struct {
	Sentiment      Sentiment `json:"sentiment"`
	Position       int       `json:"position"` // 1-based rank among numbered list items
	ContextSnippet string    `json:"contextSnippet"`
}

// CompetitorMention is a known competitor found inside one response.
// Position is assigned in catalog iteration order, not textual order.
type CompetitorMention struct {
	Name      string    `json:"name"` // title-cased
	Position  int       `json:"position"`
	Sentiment Sentiment `json:"sentiment"`
}

// AIResponse is one prompt x platform query result, annotated with brand
// and competitor detection.
type AIResponse struct {
	Platform         Platform            `json:"platform"`
	Prompt           string              `json:"prompt"`
	ResponseText     string              `json:"responseText"` // empty on provider failure
	Citations        []string            `json:"citations,omitempty"`
	BrandMentioned   bool                `json:"brandMentioned"`
	MentionDetails   *MentionDetails     `json:"mentionDetails,omitempty"`
	CompetitorsFound []CompetitorMention `json:"competitorsFound"`
	Cached           bool                `json:"cached"`
	LatencyMs        int64               `json:"latencyMs"`
}

// ScoreBreakdown holds the four visibility sub-scores and their weighted
// total, all in [0,100].
type ScoreBreakdown struct {
	MentionFrequency int `json:"mentionFrequency"`
	SentimentQuality int `json:"sentimentQuality"`
	PlatformCoverage int `json:"platformCoverage"`
	PositionStrength int `json:"positionStrength"`
	Total            int `json:"total"`
}

// CompetitorResult is one ranked competing brand across the whole batch
type CompetitorResult struct {
	Name         string     `json:"name"`
	Score        int        `json:"score"`
	MentionCount int        `json:"mentionCount"`
	Platforms    []Platform `json:"platforms"`
}

// GapPriority ranks how urgently a gap should be addressed
type GapPriority string

const (
	PriorityHigh   GapPriority = "high"
	PriorityMedium GapPriority = "medium"
	PriorityLow    GapPriority = "low"
)

// GapType classifies what kind of query the brand was absent from
type GapType string

const (
	GapComparison     GapType = "missing_from_comparison"
	GapCategory       GapType = "missing_from_category"
	GapRecommendation GapType = "missing_from_recommendation"
)

// Gap is a query/platform pair where the brand is absent but at least one
// competitor is present.
type Gap struct {
	Prompt             string      `json:"prompt"`
	Platform           Platform    `json:"platform"`
	Priority           GapPriority `json:"priority"`
	Type               GapType     `json:"type"`
	CompetitorsPresent []string    `json:"competitorsPresent"`
}

// Difficulty and Impact rank recommendations for the end user
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type Impact string

const (
	ImpactLow    Impact = "low"
	ImpactMedium Impact = "medium"
	ImpactHigh   Impact = "high"
)

// Recommendation is one templated improvement action
type Recommendation struct {
	Title        string     `json:"title"`
	Why          string     `json:"why"`
	Difficulty   Difficulty `json:"difficulty"`
	Impact       Impact     `json:"impact"`
	ActionDetail string     `json:"actionDetail"`
}

// AuditStatus tracks an audit's lifecycle
type AuditStatus string

const (
	AuditPending   AuditStatus = "pending"
	AuditRunning   AuditStatus = "running"
	AuditCompleted AuditStatus = "completed"
	AuditFailed    AuditStatus = "failed"
)

// Brand is the audited brand
type Brand struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	WebsiteURL string    `json:"websiteUrl,omitempty"`
	Category   string    `json:"category"`
	CreatedAt  time.Time `json:"createdAt"`
}

// AuditRequest is the POST /api/audit payload
type AuditRequest struct {
	BrandName   string   `json:"brandName" validate:"required,min=1,max=100"`
	WebsiteURL  string   `json:"websiteUrl" validate:"omitempty,url"`
	Category    string   `json:"category" validate:"required"`
	Competitors []string `json:"competitors" validate:"omitempty,max=5,dive,min=1,max=100"`
}

// AuditResult is the completed output of one audit run
type AuditResult struct {
	AuditID         string             `json:"auditId"`
	Status          AuditStatus        `json:"status"`
	VisibilityScore int                `json:"visibilityScore"`
	ScoreBreakdown  ScoreBreakdown     `json:"scoreBreakdown"`
	Competitors     []CompetitorResult `json:"competitors"`
	Gaps            []Gap              `json:"gaps"`
	Recommendations []Recommendation   `json:"recommendations"`
	Brand           BrandInfo          `json:"brand"`
	GeneratedAt     time.Time          `json:"generatedAt"`
	Responses       []AIResponse       `json:"-"` // raw batch, persisted separately
}

// BrandInfo is the brand echo inside an AuditResult
type BrandInfo struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// EmailCapture records a user asking to receive an audit report by email
type EmailCapture struct {
	ID        string    `json:"id"`
	AuditID   string    `json:"auditId"`
	Email     string    `json:"email"`
	BrandName string    `json:"brandName"`
	CreatedAt time.Time `json:"createdAt"`
}
