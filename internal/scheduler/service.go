package scheduler

import (
	"context"

	"github.com/brandlens/brandlens/internal/audit"
	"github.com/brandlens/brandlens/internal/config"
	"github.com/brandlens/brandlens/internal/models"
	"github.com/brandlens/brandlens/internal/notifications"
	"github.com/brandlens/brandlens/internal/ratelimit"
	"github.com/brandlens/brandlens/internal/storage"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Service re-audits tracked brands on a fixed schedule and emails their
// owners refreshed reports. It also prunes the daily quota store.
type Service struct {
	config       *config.Config
	auditService *audit.Service
	store        storage.Store
	notifier     notifications.Notifier
	limiter      *ratelimit.DailyLimiter
	cron         *cron.Cron
}

// NewService creates a new scheduler service
func NewService(cfg *config.Config, auditService *audit.Service, store storage.Store, notifier notifications.Notifier, limiter *ratelimit.DailyLimiter) *Service {
	return &Service{
		config:       cfg,
		auditService: auditService,
		store:        store,
		notifier:     notifier,
		limiter:      limiter,
		cron:         cron.New(cron.WithSeconds()),
	}
}

// Start begins the scheduled runs
func (s *Service) Start() error {
	if s.config.EnableTracking && s.store != nil {
		var cronExpression string
		switch s.config.ReportSchedule {
		case "daily":
			// Run daily at 9 AM UTC
			cronExpression = "0 0 9 * * *"
		default:
			// Run weekly on Monday at 9 AM UTC
			cronExpression = "0 0 9 * * MON"
		}

		if _, err := s.cron.AddFunc(cronExpression, func() {
			logrus.Info("Starting scheduled re-audit run")
			if err := s.RunTrackedAudits(); err != nil {
				logrus.Errorf("Scheduled re-audit run failed: %v", err)
			}
		}); err != nil {
			return err
		}
	}

	// Quota entries expire at end of day; sweep shortly after midnight UTC
	if _, err := s.cron.AddFunc("0 5 0 * * *", func() {
		pruned := s.limiter.Prune()
		logrus.Debugf("Pruned %d expired rate-limit entries", pruned)
	}); err != nil {
		return err
	}

	s.cron.Start()
	logrus.Infof("Scheduler started (tracking=%t, schedule=%s)", s.config.EnableTracking, s.config.ReportSchedule)
	return nil
}

// RunTrackedAudits re-runs every tracked brand's audit and emails the
// refreshed report. One brand's failure never stops the rest.
func (s *Service) RunTrackedAudits() error {
	ctx := context.Background()

	tracked, err := s.store.TrackedBrands(ctx)
	if err != nil {
		return err
	}

	logrus.Infof("Re-auditing %d tracked brands", len(tracked))

	for _, t := range tracked {
		result, err := s.auditService.Run(ctx, models.AuditRequest{
			BrandName: t.Brand.Name,
			Category:  t.Brand.Category,
		})
		if err != nil {
			logrus.Errorf("Scheduled audit for %q failed: %v", t.Brand.Name, err)
			continue
		}

		if s.notifier != nil && s.notifier.IsEnabled() {
			if err := s.notifier.SendAuditReport(t.Email, result); err != nil {
				logrus.Errorf("Failed to email scheduled report for %q: %v", t.Brand.Name, err)
			}
		}
	}

	return nil
}

// Stop stops the scheduler
func (s *Service) Stop() {
	if s.cron != nil {
		s.cron.Stop()
		logrus.Info("Scheduler stopped")
	}
}
