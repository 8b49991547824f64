// Package scheduler runs the opt-in retention purge on a cron schedule.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Purger deletes turns older than the retention window. Implemented by
// *db.Client.
type Purger interface {
	PurgeOlderThan(ctx context.Context, days int) (int64, error)
}

// Scheduler triggers a retention purge on a fixed cron schedule.
type Scheduler struct {
	cron          *cron.Cron
	store         Purger
	retentionDays int
	logger        *slog.Logger
}

// New creates a scheduler purging turns older than retentionDays.
func New(store Purger, retentionDays int, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cron:          cron.New(cron.WithLocation(time.UTC)),
		store:         store,
		retentionDays: retentionDays,
		logger:        logger,
	}
}

// Start registers the purge job under spec (standard cron expression, UTC)
// and starts the scheduler.
func (s *Scheduler) Start(ctx context.Context, spec string) error {
	_, err := s.cron.AddFunc(spec, func() {
		deleted, err := s.store.PurgeOlderThan(ctx, s.retentionDays)
		if err != nil {
			s.logger.Error("scheduled purge failed", "error", err, "days", s.retentionDays)
			return
		}
		s.logger.Info("scheduled purge complete", "deleted", deleted, "days", s.retentionDays)
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("retention scheduler started", "schedule", spec, "days", s.retentionDays)
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("retention scheduler stopped")
}
