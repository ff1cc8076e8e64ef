package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// CompleteTrips marks confirmed bookings as completed once their tour has ended.
type CompleteTrips struct {
	store  bookingStore
	logger logger.Logger
	loc    *time.Location
	now    func() time.Time
}

func NewCompleteTrips(store bookingStore, loc *time.Location, log logger.Logger) *CompleteTrips {
	if loc == nil {
		loc = time.UTC
	}
	return &CompleteTrips{
		store:  store,
		logger: log,
		loc:    loc,
		now:    utcNow,
	}
}

func (j *CompleteTrips) Name() string { return NameCompleteTrips }

func (j *CompleteTrips) Run(ctx context.Context) (Report, error) {
	now := j.now()

	bookings, err := j.store.ListConfirmedEndedBefore(ctx, calendarDay(now, j.loc))
	if err != nil {
		return Report{}, fmt.Errorf("select finished bookings: %w", err)
	}

	rep := Report{Matched: len(bookings)}
	for _, b := range bookings {
		if err = ctx.Err(); err != nil {
			return rep, err
		}

		if _, err = j.store.Transition(ctx, b.ID, domain.BookingStatusCompleted, "", now); err != nil {
			rep.Failed++
			j.logger.Error("failed to complete booking",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		rep.Processed++
	}

	return rep, nil
}
