package scheduler

import (
	"context"
	"log/slog"
	"time"

	"book_prices/internal/domain"
)

// Syncer defines the interface for one feed's sync.
type Syncer interface {
	Sync(ctx context.Context) (*domain.SyncStats, error)
}

// Scheduler runs every syncer once at start and then on each tick. Feeds are
// synced one after another so ingestion stays sequential.
type Scheduler struct {
	syncers    []Syncer
	interval   time.Duration
	runTimeout time.Duration
	logger     *slog.Logger
}

func NewScheduler(interval, runTimeout time.Duration, logger *slog.Logger, syncers ...Syncer) *Scheduler {
	return &Scheduler{
		syncers:    syncers,
		interval:   interval,
		runTimeout: runTimeout,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval, "feeds", len(s.syncers))

	s.runAll(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

// RunOnce syncs every feed a single time.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.runAll(ctx)
}

func (s *Scheduler) runAll(ctx context.Context) {
	for _, syncer := range s.syncers {
		if ctx.Err() != nil {
			return
		}
		s.runSync(ctx, syncer)
	}
}

func (s *Scheduler) runSync(ctx context.Context, syncer Syncer) {
	syncCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	if _, err := syncer.Sync(syncCtx); err != nil {
		s.logger.Error("sync failed", "error", err)
	}
}
