package notifications

import "github.com/brandlens/brandlens/internal/models"

// Notifier defines the contract for delivering audit reports
type Notifier interface {
	SendAuditReport(email string, result *models.AuditResult) error
	IsEnabled() bool
}
