package storage

import (
	"context"

	"github.com/brandlens/brandlens/internal/models"
)

// Store is the durable audit record store. The audit pipeline only writes
// after compute; nothing in the scoring path reads from it.
type Store interface {
	CreateBrand(ctx context.Context, brand models.Brand) error
	SaveAudit(ctx context.Context, brandID string, result models.AuditResult) error
	SaveQueries(ctx context.Context, auditID string, responses []models.AIResponse) error
	SaveEmailCapture(ctx context.Context, capture models.EmailCapture) error
	GetAudit(ctx context.Context, auditID string) (*StoredAudit, error)
	TrackedBrands(ctx context.Context) ([]TrackedBrand, error)
	Close()
}

// StoredAudit is one persisted audit row joined with its brand
type StoredAudit struct {
	Result    models.AuditResult
	BrandID   string
	BrandName string
	Category  string
}

// TrackedBrand is a brand with a captured email, eligible for scheduled
// re-audits
type TrackedBrand struct {
	Brand models.Brand
	Email string
}

// Archiver stores full audit report documents for offline analysis
type Archiver interface {
	Store(ctx context.Context, name string, data []byte) error
	Retrieve(ctx context.Context, name string) ([]byte, error)
	List(ctx context.Context, prefix string) ([]string, error)
	Delete(ctx context.Context, name string) error
}
