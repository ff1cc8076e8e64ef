package jobs

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/service/ports"
	jnow "github.com/jinzhu/now"
	"github.com/wb-go/wbf/logger"
)

const DefaultPaymentReminderWindow = 6 * time.Hour

var DefaultTripReminderDays = []int{3, 1}

// PaymentReminders nudges customers whose payment deadline falls within the
// next window. Bookings are not modified.
type PaymentReminders struct {
	store    bookingStore
	notifier ports.Notifier
	logger   logger.Logger
	window   time.Duration
	now      func() time.Time
}

func NewPaymentReminders(store bookingStore, notifier ports.Notifier, window time.Duration, log logger.Logger) *PaymentReminders {
	if window <= 0 {
		window = DefaultPaymentReminderWindow
	}
	return &PaymentReminders{
		store:    store,
		notifier: notifier,
		logger:   log,
		window:   window,
		now:      utcNow,
	}
}

func (j *PaymentReminders) Name() string { return NamePaymentReminders }

func (j *PaymentReminders) Run(ctx context.Context) (Report, error) {
	now := j.now()

	bookings, err := j.store.ListAwaitingPayment(ctx, now, now.Add(j.window))
	if err != nil {
		return Report{}, fmt.Errorf("select bookings awaiting payment: %w", err)
	}

	rep := Report{Matched: len(bookings)}
	for _, b := range bookings {
		if err = ctx.Err(); err != nil {
			return rep, err
		}

		if err = j.notifier.NotifyPaymentReminder(ctx, b.User, b.Tour, b); err != nil {
			rep.Failed++
			j.logger.Error("failed to send payment reminder",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		rep.Processed++
		rep.Notified++
	}

	return rep, nil
}

// TripReminders tells customers with confirmed bookings that their tour
// starts in N days, once per configured offset. Each offset covers exactly
// one calendar day, so a booking matches at most one offset per run.
type TripReminders struct {
	store    bookingStore
	notifier ports.Notifier
	logger   logger.Logger
	days     []int
	loc      *time.Location
	now      func() time.Time
}

func NewTripReminders(
	store bookingStore,
	notifier ports.Notifier,
	days []int,
	loc *time.Location,
	log logger.Logger,
) *TripReminders {
	if loc == nil {
		loc = time.UTC
	}
	return &TripReminders{
		store:    store,
		notifier: notifier,
		logger:   log,
		days:     normalizeOffsets(days),
		loc:      loc,
		now:      utcNow,
	}
}

func (j *TripReminders) Name() string { return NameTripReminders }

func (j *TripReminders) Run(ctx context.Context) (Report, error) {
	today := calendarDay(j.now(), j.loc)

	var rep Report
	for _, days := range j.days {
		from := today.AddDate(0, 0, days)
		to := from.AddDate(0, 0, 1)

		bookings, err := j.store.ListConfirmedStartingBetween(ctx, from, to)
		if err != nil {
			return rep, fmt.Errorf("select bookings starting in %d days: %w", days, err)
		}
		rep.Matched += len(bookings)

		for _, b := range bookings {
			if err = ctx.Err(); err != nil {
				return rep, err
			}

			if err = j.notifier.NotifyTripReminder(ctx, b.User, b.Tour, b, days); err != nil {
				rep.Failed++
				j.logger.Error("failed to send trip reminder",
					logger.String("booking_id", b.ID),
					logger.Int("days_before", days),
					logger.String("error", err.Error()),
				)
				continue
			}
			rep.Processed++
			rep.Notified++
		}
	}

	return rep, nil
}

// calendarDay returns midnight UTC of t's calendar date in loc, matching how
// DATE columns are stored.
func calendarDay(t time.Time, loc *time.Location) time.Time {
	d := jnow.With(t.In(loc)).BeginningOfDay()
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func normalizeOffsets(days []int) []int {
	if len(days) == 0 {
		days = DefaultTripReminderDays
	}
	seen := make(map[int]struct{}, len(days))
	out := make([]int, 0, len(days))
	for _, d := range days {
		if d < 0 {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}
