package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/calegrey/relister/internal/store"
)

// Scheduler manages the periodic comps cache sweep.
type Scheduler struct {
	cron  *cron.Cron
	store store.Store
	log   *slog.Logger
}

// NewScheduler creates a new Scheduler that purges expired comps cache
// entries on a fixed interval.
func NewScheduler(
	st store.Store,
	sweepInterval time.Duration,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:  c,
		store: st,
		log:   log,
	}

	if _, err := c.AddFunc(
		"@every "+sweepInterval.String(),
		s.runCacheSweep,
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) runCacheSweep() {
	ctx := context.Background()

	purged, err := s.store.PurgeExpiredComps(ctx)
	if err != nil {
		s.log.Error("comps cache sweep failed", "error", err)
		return
	}
	if purged > 0 {
		s.log.Info("comps cache sweep complete", "purged", purged)
	}
}
