package notification_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/notification"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/notification/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"gorm.io/datatypes"
)

func testLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func fixtures() (*domain.User, *domain.Tour, *domain.Booking) {
	chatID := int64(42)
	user := &domain.User{ID: "user-1", Name: "Ann", Email: "ann@example.com", TelegramChatID: &chatID}
	tour := &domain.Tour{
		ID:        "tour-1",
		Name:      "Bali Escape",
		StartDate: datatypes.Date(time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC)),
	}
	expires := time.Date(2026, 10, 18, 12, 30, 0, 0, time.UTC)
	booking := &domain.Booking{
		ID:                   "booking-1",
		UserID:               user.ID,
		TourID:               tour.ID,
		NumberOfParticipants: 2,
		TotalPrice:           decimal.NewFromInt(300),
		AmountPaid:           decimal.NewFromInt(100),
		ExpiredAt:            &expires,
	}
	return user, tour, booking
}

func TestDispatcher_BookingCreated_Sent(t *testing.T) {
	channel := mocks.NewMockChannel(t)
	store := mocks.NewMockLogStore(t)
	user, tour, booking := fixtures()

	channel.EXPECT().Name().Return("telegram")
	channel.EXPECT().
		Send(mock.Anything, user, mock.MatchedBy(func(text string) bool {
			return assert.Contains(t, text, "Bali Escape") &&
				assert.Contains(t, text, "20.11.2026") &&
				assert.Contains(t, text, "300.00")
		})).
		Return("42", nil).
		Once()
	store.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(e *domain.NotificationLog) bool {
			return e.Type == domain.NotificationBookingCreated &&
				e.Status == domain.NotificationSent &&
				e.Channel == "telegram" &&
				e.Recipient == "42" &&
				e.UserID == "user-1" &&
				e.BookingID != nil && *e.BookingID == "booking-1" &&
				e.ID != ""
		})).
		Return(nil).
		Once()

	d := notification.NewDispatcher(channel, store, testLogger(t))
	require.NoError(t, d.NotifyBookingCreated(context.Background(), user, tour, booking))
}

func TestDispatcher_SendFailure(t *testing.T) {
	channel := mocks.NewMockChannel(t)
	store := mocks.NewMockLogStore(t)
	user, tour, booking := fixtures()

	channel.EXPECT().Name().Return("telegram")
	channel.EXPECT().Send(mock.Anything, user, mock.Anything).Return("42", errors.New("bot blocked")).Once()
	store.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(e *domain.NotificationLog) bool {
			return e.Status == domain.NotificationFailed && e.Error == "bot blocked"
		})).
		Return(nil).
		Once()

	d := notification.NewDispatcher(channel, store, testLogger(t))
	err := d.NotifyBookingConfirmed(context.Background(), user, tour, booking)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotificationDeliveryFailed)
}

func TestDispatcher_NoRecipient_Skipped(t *testing.T) {
	channel := mocks.NewMockChannel(t)
	store := mocks.NewMockLogStore(t)
	user, tour, booking := fixtures()
	user.TelegramChatID = nil

	channel.EXPECT().Name().Return("telegram")
	channel.EXPECT().Send(mock.Anything, user, mock.Anything).Return("", domain.ErrNoRecipient).Once()
	store.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(e *domain.NotificationLog) bool {
			return e.Status == domain.NotificationSkipped && e.Recipient == ""
		})).
		Return(nil).
		Once()

	d := notification.NewDispatcher(channel, store, testLogger(t))
	assert.NoError(t, d.NotifyPaymentReminder(context.Background(), user, tour, booking))
}

func TestDispatcher_CancelledPayloadCarriesReason(t *testing.T) {
	channel := mocks.NewMockChannel(t)
	store := mocks.NewMockLogStore(t)
	user, tour, booking := fixtures()

	channel.EXPECT().Name().Return("telegram")
	channel.EXPECT().
		Send(mock.Anything, user, mock.MatchedBy(func(text string) bool {
			return assert.Contains(t, text, "payment time expired")
		})).
		Return("42", nil).
		Once()

	var recorded *domain.NotificationLog
	store.EXPECT().
		Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, e *domain.NotificationLog) { recorded = e }).
		Return(nil).
		Once()

	d := notification.NewDispatcher(channel, store, testLogger(t))
	require.NoError(t, d.NotifyBookingCancelled(context.Background(), user, tour, booking, domain.ReasonPaymentExpired))

	require.NotNil(t, recorded)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(recorded.Payload, &payload))
	assert.Equal(t, domain.ReasonPaymentExpired, payload["reason"])
	assert.Equal(t, domain.NotificationBookingCancelled, recorded.Type)
}

func TestDispatcher_TripReminder_StoreErrorIgnored(t *testing.T) {
	channel := mocks.NewMockChannel(t)
	store := mocks.NewMockLogStore(t)
	user, tour, booking := fixtures()

	channel.EXPECT().Name().Return("telegram")
	channel.EXPECT().
		Send(mock.Anything, user, mock.MatchedBy(func(text string) bool {
			return assert.Contains(t, text, "3 day(s)")
		})).
		Return("42", nil).
		Once()
	store.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

	d := notification.NewDispatcher(channel, store, testLogger(t))
	assert.NoError(t, d.NotifyTripReminder(context.Background(), user, tour, booking, 3))
}

func TestDispatcher_NilTourRendersPlaceholder(t *testing.T) {
	channel := mocks.NewMockChannel(t)
	store := mocks.NewMockLogStore(t)
	user, _, booking := fixtures()

	channel.EXPECT().Name().Return("log")
	channel.EXPECT().
		Send(mock.Anything, user, mock.MatchedBy(func(text string) bool {
			return assert.Contains(t, text, "Tour: -")
		})).
		Return(user.Email, nil).
		Once()
	store.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

	d := notification.NewDispatcher(channel, store, testLogger(t))
	assert.NoError(t, d.NotifyBookingCreated(context.Background(), user, nil, booking))
}

func TestDispatcher_EscapesMarkdownInTourName(t *testing.T) {
	channel := mocks.NewMockChannel(t)
	store := mocks.NewMockLogStore(t)
	user, tour, booking := fixtures()
	tour.Name = "Bali_Sun *VIP* [2026] `deluxe`"

	channel.EXPECT().Name().Return("telegram")
	channel.EXPECT().
		Send(mock.Anything, user, mock.MatchedBy(func(text string) bool {
			return assert.Contains(t, text, "Tour: Bali\\_Sun \\*VIP\\* \\[2026] \\`deluxe\\`") &&
				assert.True(t, strings.HasPrefix(text, "*Booking confirmed!*"))
		})).
		Return("42", nil).
		Once()
	store.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

	d := notification.NewDispatcher(channel, store, testLogger(t))
	require.NoError(t, d.NotifyBookingConfirmed(context.Background(), user, tour, booking))
}

func TestLogChannel_Send(t *testing.T) {
	ch := notification.NewLogChannel(testLogger(t))
	user, _, _ := fixtures()

	recipient, err := ch.Send(context.Background(), user, "hello")
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", recipient)
	assert.Equal(t, "log", ch.Name())

	_, err = ch.Send(context.Background(), nil, "hello")
	assert.ErrorIs(t, err, domain.ErrNoRecipient)
}
