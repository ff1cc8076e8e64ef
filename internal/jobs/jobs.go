package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	NameExpireBookings   = "bookings:expire"
	NamePaymentReminders = "reminders:payment"
	NameTripReminders    = "reminders:trip"
	NameCompleteTrips    = "bookings:complete"
)

var (
	ErrUnknownJob = errors.New("unknown job")
	ErrJobRunning = errors.New("job is already running")
)

type bookingStore interface {
	ListExpiredPending(ctx context.Context, now time.Time) ([]*domain.Booking, error)
	CancelExpired(ctx context.Context, id string, now time.Time) (bool, error)
	ListAwaitingPayment(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
	ListConfirmedStartingBetween(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
	ListConfirmedEndedBefore(ctx context.Context, day time.Time) ([]*domain.Booking, error)
	Transition(ctx context.Context, id string, next domain.BookingStatus, reason string, now time.Time) (*domain.Booking, error)
}

// Job is one batch pass over the bookings table.
type Job interface {
	Name() string
	Run(ctx context.Context) (Report, error)
}

// Report summarises a single run. Processed counts state changes (or sent
// reminders), Notified counts delivered notifications.
type Report struct {
	Job       string        `json:"job"`
	Matched   int           `json:"matched"`
	Processed int           `json:"processed"`
	Notified  int           `json:"notified"`
	Skipped   int           `json:"skipped"`
	Failed    int           `json:"failed"`
	Duration  time.Duration `json:"duration"`
}

func (r Report) String() string {
	return fmt.Sprintf("%s: matched=%d processed=%d notified=%d skipped=%d failed=%d (%s)",
		r.Job, r.Matched, r.Processed, r.Notified, r.Skipped, r.Failed, r.Duration.Round(time.Millisecond))
}

type entry struct {
	job Job
	mu  sync.Mutex
}

// Registry runs jobs by name and refuses to start a job that is still running.
type Registry struct {
	entries map[string]*entry
	names   []string
	logger  logger.Logger
}

func NewRegistry(log logger.Logger, jobs ...Job) *Registry {
	r := &Registry{
		entries: make(map[string]*entry, len(jobs)),
		logger:  log,
	}
	for _, j := range jobs {
		r.entries[j.Name()] = &entry{job: j}
		r.names = append(r.names, j.Name())
	}
	return r
}

func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

func (r *Registry) Has(name string) bool {
	_, ok := r.entries[name]
	return ok
}

func (r *Registry) Run(ctx context.Context, name string) (Report, error) {
	e, ok := r.entries[name]
	if !ok {
		return Report{Job: name}, fmt.Errorf("%w: %s", ErrUnknownJob, name)
	}

	if !e.mu.TryLock() {
		return Report{Job: name}, fmt.Errorf("%w: %s", ErrJobRunning, name)
	}
	defer e.mu.Unlock()

	start := time.Now()
	rep, err := e.job.Run(ctx)
	rep.Job = name
	rep.Duration = time.Since(start)

	if err != nil {
		r.logger.Error("job failed",
			logger.String("job", name),
			logger.String("error", err.Error()),
		)
		return rep, err
	}

	r.logger.Info("job finished",
		logger.String("job", name),
		logger.Int("matched", rep.Matched),
		logger.Int("processed", rep.Processed),
		logger.Int("notified", rep.Notified),
		logger.Int("failed", rep.Failed),
		logger.Duration("duration", rep.Duration),
	)
	return rep, nil
}
