package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/jobs/mocks"
	portmocks "github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

var fixedNow = time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)

func testLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func pendingBooking(id string) *domain.Booking {
	expired := fixedNow.Add(-time.Minute)
	return &domain.Booking{
		ID:                   id,
		UserID:               "user-" + id,
		User:                 &domain.User{ID: "user-" + id},
		TourID:               "tour-1",
		Tour:                 &domain.Tour{ID: "tour-1", Name: "Lombok"},
		NumberOfParticipants: 2,
		Status:               domain.BookingStatusPending,
		PaidStatus:           domain.PaidStatusUnpaid,
		ExpiredAt:            &expired,
	}
}

func TestExpireBookings_CancelsAndNotifies(t *testing.T) {
	store := mocks.NewMockBookingStore(t)
	notifier := portmocks.NewMockNotifier(t)

	b1, b2 := pendingBooking("b1"), pendingBooking("b2")
	store.EXPECT().ListExpiredPending(mock.Anything, fixedNow).Return([]*domain.Booking{b1, b2}, nil).Once()
	store.EXPECT().CancelExpired(mock.Anything, "b1", fixedNow).Return(true, nil).Once()
	store.EXPECT().CancelExpired(mock.Anything, "b2", fixedNow).Return(true, nil).Once()
	notifier.EXPECT().
		NotifyBookingCancelled(mock.Anything, b1.User, b1.Tour, b1, domain.ReasonPaymentExpired).
		Return(nil).Once()
	notifier.EXPECT().
		NotifyBookingCancelled(mock.Anything, b2.User, b2.Tour, b2, domain.ReasonPaymentExpired).
		Return(nil).Once()

	job := NewExpireBookings(store, notifier, testLogger(t))
	job.now = func() time.Time { return fixedNow }

	rep, err := job.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, rep.Matched)
	assert.Equal(t, 2, rep.Processed)
	assert.Equal(t, 2, rep.Notified)
	assert.Equal(t, domain.BookingStatusCancelled, b1.Status)
	assert.Equal(t, domain.ReasonPaymentExpired, b1.CancellationReason)
}

func TestExpireBookings_SkipsAlreadyHandled(t *testing.T) {
	store := mocks.NewMockBookingStore(t)
	notifier := portmocks.NewMockNotifier(t)

	b := pendingBooking("b1")
	store.EXPECT().ListExpiredPending(mock.Anything, fixedNow).Return([]*domain.Booking{b}, nil).Once()
	store.EXPECT().CancelExpired(mock.Anything, "b1", fixedNow).Return(false, nil).Once()

	job := NewExpireBookings(store, notifier, testLogger(t))
	job.now = func() time.Time { return fixedNow }

	rep, err := job.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, rep.Skipped)
	assert.Zero(t, rep.Processed)
	assert.Zero(t, rep.Notified)
}

func TestExpireBookings_NotificationFailureKeepsCancellation(t *testing.T) {
	store := mocks.NewMockBookingStore(t)
	notifier := portmocks.NewMockNotifier(t)

	b1, b2 := pendingBooking("b1"), pendingBooking("b2")
	store.EXPECT().ListExpiredPending(mock.Anything, fixedNow).Return([]*domain.Booking{b1, b2}, nil).Once()
	store.EXPECT().CancelExpired(mock.Anything, mock.Anything, fixedNow).Return(true, nil).Twice()
	notifier.EXPECT().
		NotifyBookingCancelled(mock.Anything, b1.User, b1.Tour, b1, domain.ReasonPaymentExpired).
		Return(domain.ErrNotificationDeliveryFailed).Once()
	notifier.EXPECT().
		NotifyBookingCancelled(mock.Anything, b2.User, b2.Tour, b2, domain.ReasonPaymentExpired).
		Return(nil).Once()

	job := NewExpireBookings(store, notifier, testLogger(t))
	job.now = func() time.Time { return fixedNow }

	rep, err := job.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, rep.Processed)
	assert.Equal(t, 1, rep.Notified)
	assert.Equal(t, 1, rep.Failed)
}

func TestExpireBookings_CancelErrorContinues(t *testing.T) {
	store := mocks.NewMockBookingStore(t)
	notifier := portmocks.NewMockNotifier(t)

	b1, b2 := pendingBooking("b1"), pendingBooking("b2")
	store.EXPECT().ListExpiredPending(mock.Anything, fixedNow).Return([]*domain.Booking{b1, b2}, nil).Once()
	store.EXPECT().CancelExpired(mock.Anything, "b1", fixedNow).Return(false, errors.New("deadlock")).Once()
	store.EXPECT().CancelExpired(mock.Anything, "b2", fixedNow).Return(true, nil).Once()
	notifier.EXPECT().
		NotifyBookingCancelled(mock.Anything, b2.User, b2.Tour, b2, domain.ReasonPaymentExpired).
		Return(nil).Once()

	job := NewExpireBookings(store, notifier, testLogger(t))
	job.now = func() time.Time { return fixedNow }

	rep, err := job.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, rep.Failed)
	assert.Equal(t, 1, rep.Processed)
}

func TestExpireBookings_SelectError(t *testing.T) {
	store := mocks.NewMockBookingStore(t)
	notifier := portmocks.NewMockNotifier(t)

	store.EXPECT().ListExpiredPending(mock.Anything, fixedNow).Return(nil, errors.New("db down")).Once()

	job := NewExpireBookings(store, notifier, testLogger(t))
	job.now = func() time.Time { return fixedNow }

	_, err := job.Run(context.Background())
	assert.Error(t, err)
}

func TestExpireBookings_StopsOnCancelledContext(t *testing.T) {
	store := mocks.NewMockBookingStore(t)
	notifier := portmocks.NewMockNotifier(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store.EXPECT().ListExpiredPending(mock.Anything, fixedNow).Return([]*domain.Booking{pendingBooking("b1")}, nil).Once()

	job := NewExpireBookings(store, notifier, testLogger(t))
	job.now = func() time.Time { return fixedNow }

	_, err := job.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
