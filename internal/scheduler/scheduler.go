package scheduler

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/jobs"
	"github.com/wb-go/wbf/logger"
)

type jobRunner interface {
	Run(ctx context.Context, name string) (jobs.Report, error)
}

// Entry schedules one named job at a fixed interval.
type Entry struct {
	Job      string
	Interval time.Duration
}

type Scheduler struct {
	runner  jobRunner
	entries []Entry
	logger  logger.Logger
}

func New(runner jobRunner, log logger.Logger, entries ...Entry) *Scheduler {
	return &Scheduler{
		runner:  runner,
		entries: entries,
		logger:  log,
	}
}

// Start runs every entry on its own ticker and blocks until ctx is done.
func (s *Scheduler) Start(ctx context.Context) {
	var wg sync.WaitGroup
	for _, e := range s.entries {
		if e.Interval <= 0 {
			s.logger.Warn("job disabled, interval is not positive", logger.String("job", e.Job))
			continue
		}

		wg.Add(1)
		go func(e Entry) {
			defer wg.Done()
			s.loop(ctx, e)
		}(e)
	}

	s.logger.Info("scheduler started", logger.Int("jobs", len(s.entries)))
	wg.Wait()
	s.logger.Info("scheduler stopped")
}

func (s *Scheduler) loop(ctx context.Context, e Entry) {
	ticker := time.NewTicker(e.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx, e.Job)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context, name string) {
	_, err := s.runner.Run(ctx, name)
	switch {
	case err == nil:
	case errors.Is(err, jobs.ErrJobRunning):
		s.logger.Warn("previous run still in progress, tick skipped", logger.String("job", name))
	case ctx.Err() != nil:
	default:
		s.logger.Error("scheduled job failed",
			logger.String("job", name),
			logger.String("error", err.Error()),
		)
	}
}
