package ports

import (
	"context"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
)

// Notifier delivers booking notifications. Implementations return
// domain.ErrNotificationDeliveryFailed when a message could not be sent.
type Notifier interface {
	NotifyBookingCreated(ctx context.Context, user *domain.User, tour *domain.Tour, booking *domain.Booking) error
	NotifyBookingConfirmed(ctx context.Context, user *domain.User, tour *domain.Tour, booking *domain.Booking) error
	NotifyBookingCancelled(ctx context.Context, user *domain.User, tour *domain.Tour, booking *domain.Booking, reason string) error
	NotifyPaymentReminder(ctx context.Context, user *domain.User, tour *domain.Tour, booking *domain.Booking) error
	NotifyTripReminder(ctx context.Context, user *domain.User, tour *domain.Tour, booking *domain.Booking, daysBefore int) error
}
