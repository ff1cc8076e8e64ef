package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// ExpireBookings cancels pending bookings whose payment deadline has passed
// and tells the customer. A failed notification never undoes a cancellation.
type ExpireBookings struct {
	store    bookingStore
	notifier ports.Notifier
	logger   logger.Logger
	now      func() time.Time
}

func NewExpireBookings(store bookingStore, notifier ports.Notifier, log logger.Logger) *ExpireBookings {
	return &ExpireBookings{
		store:    store,
		notifier: notifier,
		logger:   log,
		now:      utcNow,
	}
}

func (j *ExpireBookings) Name() string { return NameExpireBookings }

func (j *ExpireBookings) Run(ctx context.Context) (Report, error) {
	now := j.now()

	bookings, err := j.store.ListExpiredPending(ctx, now)
	if err != nil {
		return Report{}, fmt.Errorf("select expired bookings: %w", err)
	}

	rep := Report{Matched: len(bookings)}
	for _, b := range bookings {
		if err = ctx.Err(); err != nil {
			return rep, err
		}

		cancelled, err := j.store.CancelExpired(ctx, b.ID, now)
		if err != nil {
			rep.Failed++
			j.logger.Error("failed to cancel expired booking",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		if !cancelled {
			rep.Skipped++
			continue
		}
		rep.Processed++

		b.Status = domain.BookingStatusCancelled
		b.CancellationReason = domain.ReasonPaymentExpired
		j.logger.Info("booking expired",
			logger.String("booking_id", b.ID),
			logger.String("user_id", b.UserID),
			logger.String("tour_id", b.TourID),
		)

		if err = j.notifier.NotifyBookingCancelled(ctx, b.User, b.Tour, b, domain.ReasonPaymentExpired); err != nil {
			rep.Failed++
			j.logger.Error("failed to notify about expired booking",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		rep.Notified++
	}

	return rep, nil
}

func utcNow() time.Time { return time.Now().UTC() }
