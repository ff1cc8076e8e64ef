package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
	"gorm.io/datatypes"
)

const dateLayout = "02.01.2006"

// Channel is a delivery transport. Send returns the recipient address it used.
type Channel interface {
	Name() string
	Send(ctx context.Context, user *domain.User, text string) (string, error)
}

type logStore interface {
	Create(ctx context.Context, entry *domain.NotificationLog) error
}

// Dispatcher renders booking notifications, sends them over a channel and
// records every attempt in the notification log.
type Dispatcher struct {
	channel Channel
	store   logStore
	logger  logger.Logger
	now     func() time.Time
}

func NewDispatcher(channel Channel, store logStore, log logger.Logger) *Dispatcher {
	return &Dispatcher{
		channel: channel,
		store:   store,
		logger:  log,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (d *Dispatcher) NotifyBookingCreated(ctx context.Context, user *domain.User, tour *domain.Tour, b *domain.Booking) error {
	text := fmt.Sprintf(
		"*Booking received!*\n\nTour: %s\nStart date: %s\nParticipants: %d\nTotal: %s\nPlease pay before %s (UTC), otherwise the booking will be cancelled.",
		tourName(tour), tourStart(tour), b.NumberOfParticipants, b.TotalPrice.StringFixed(2), deadline(b),
	)
	return d.deliver(ctx, domain.NotificationBookingCreated, user, b, text, nil)
}

func (d *Dispatcher) NotifyBookingConfirmed(ctx context.Context, user *domain.User, tour *domain.Tour, b *domain.Booking) error {
	text := fmt.Sprintf(
		"*Booking confirmed!*\n\nTour: %s\nStart date: %s\nPaid: %s of %s",
		tourName(tour), tourStart(tour), b.AmountPaid.StringFixed(2), b.TotalPrice.StringFixed(2),
	)
	return d.deliver(ctx, domain.NotificationBookingConfirmed, user, b, text, nil)
}

func (d *Dispatcher) NotifyBookingCancelled(ctx context.Context, user *domain.User, tour *domain.Tour, b *domain.Booking, reason string) error {
	headline := "*Booking cancelled*"
	if reason == domain.ReasonPaymentExpired {
		headline = "*Booking cancelled (payment time expired)*"
	}
	text := fmt.Sprintf("%s\n\nTour: %s\nStart date: %s", headline, tourName(tour), tourStart(tour))
	return d.deliver(ctx, domain.NotificationBookingCancelled, user, b, text, map[string]any{"reason": reason})
}

func (d *Dispatcher) NotifyPaymentReminder(ctx context.Context, user *domain.User, tour *domain.Tour, b *domain.Booking) error {
	text := fmt.Sprintf(
		"*Payment reminder*\n\nTour: %s\nOutstanding: %s\nPay before %s (UTC) to keep your seats.",
		tourName(tour), b.Outstanding().StringFixed(2), deadline(b),
	)
	return d.deliver(ctx, domain.NotificationPaymentReminder, user, b, text, nil)
}

func (d *Dispatcher) NotifyTripReminder(ctx context.Context, user *domain.User, tour *domain.Tour, b *domain.Booking, daysBefore int) error {
	text := fmt.Sprintf(
		"*Your trip is coming up!*\n\nTour: %s\nStarts in %d day(s), on %s\nParticipants: %d",
		tourName(tour), daysBefore, tourStart(tour), b.NumberOfParticipants,
	)
	return d.deliver(ctx, domain.NotificationTripReminder, user, b, text, map[string]any{"days_before": daysBefore})
}

// deliver sends text and appends a log entry. A missing recipient is recorded
// as skipped and is not an error.
func (d *Dispatcher) deliver(
	ctx context.Context,
	kind domain.NotificationType,
	user *domain.User,
	b *domain.Booking,
	text string,
	extra map[string]any,
) error {
	entry := &domain.NotificationLog{
		ID:        uuid.New().String(),
		Type:      kind,
		Channel:   d.channel.Name(),
		CreatedAt: d.now(),
	}
	if user != nil {
		entry.UserID = user.ID
	} else if b != nil {
		entry.UserID = b.UserID
	}
	if b != nil {
		entry.BookingID = &b.ID
	}

	payload := map[string]any{"text": text}
	for k, v := range extra {
		payload[k] = v
	}
	if raw, err := json.Marshal(payload); err == nil {
		entry.Payload = datatypes.JSON(raw)
	}

	recipient, sendErr := d.channel.Send(ctx, user, text)
	entry.Recipient = recipient

	var result error
	switch {
	case sendErr == nil:
		entry.Status = domain.NotificationSent
	case errors.Is(sendErr, domain.ErrNoRecipient):
		entry.Status = domain.NotificationSkipped
		entry.Error = sendErr.Error()
		d.logger.Debug("notification skipped, no recipient",
			logger.String("type", string(kind)),
			logger.String("user_id", entry.UserID),
		)
	default:
		entry.Status = domain.NotificationFailed
		entry.Error = sendErr.Error()
		result = fmt.Errorf("%w: %s via %s: %v", domain.ErrNotificationDeliveryFailed, kind, entry.Channel, sendErr)
	}

	if err := d.store.Create(context.WithoutCancel(ctx), entry); err != nil {
		d.logger.Error("failed to record notification",
			logger.String("type", string(kind)),
			logger.String("user_id", entry.UserID),
			logger.String("error", err.Error()),
		)
	}

	return result
}

// tourName escapes the admin-entered name for Telegram's Markdown parser.
func tourName(t *domain.Tour) string {
	if t == nil {
		return "-"
	}
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, t.Name)
}

func tourStart(t *domain.Tour) string {
	if t == nil {
		return "-"
	}
	return time.Time(t.StartDate).Format(dateLayout)
}

func deadline(b *domain.Booking) string {
	if b.ExpiredAt == nil {
		return "-"
	}
	return b.ExpiredAt.UTC().Format("02.01.2006 15:04")
}
