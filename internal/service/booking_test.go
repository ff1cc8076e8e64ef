package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

var testNow = time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// waitFor blocks until an async notification fired.
func waitFor(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("notification was not sent")
	}
}

type bookingDeps struct {
	bookings *mocks.MockBookingRepo
	users    *mocks.MockUserRepo
	notifier *mocks.MockNotifier
	svc      *BookingService
}

func newBookingDeps(t *testing.T) bookingDeps {
	d := bookingDeps{
		bookings: mocks.NewMockBookingRepo(t),
		users:    mocks.NewMockUserRepo(t),
		notifier: mocks.NewMockNotifier(t),
	}
	d.svc = NewBookingService(d.bookings, d.users, d.notifier, 0, newTestLogger(t))
	d.svc.now = func() time.Time { return testNow }
	return d
}

func TestBookingService_Book(t *testing.T) {
	d := newBookingDeps(t)

	user := &domain.User{ID: "u1", Name: "alice"}
	tour := &domain.Tour{ID: "t1", Name: "Raja Ampat", Price: decimal.NewFromInt(250), MaxParticipants: 10}
	done := make(chan struct{})

	d.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	d.bookings.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*domain.Booking"), testNow).
		Run(func(_ context.Context, b *domain.Booking, _ time.Time) {
			b.TotalPrice = tour.TotalFor(b.NumberOfParticipants)
			b.Tour = tour
		}).
		Return(nil)
	d.notifier.EXPECT().
		NotifyBookingCreated(mock.Anything, user, tour, mock.Anything).
		Run(func(context.Context, *domain.User, *domain.Tour, *domain.Booking) { close(done) }).
		Return(nil)

	booking, err := d.svc.Book(context.Background(), domain.CreateBookingInput{
		UserID:       "u1",
		TourID:       "t1",
		BookingDate:  testNow,
		Participants: 2,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, domain.PaidStatusUnpaid, booking.PaidStatus)
	assert.True(t, booking.AmountPaid.IsZero())
	assert.True(t, decimal.NewFromInt(500).Equal(booking.TotalPrice))
	require.NotNil(t, booking.ExpiredAt)
	assert.Equal(t, testNow.Add(DefaultPaymentWindow), *booking.ExpiredAt)

	waitFor(t, done)
}

func TestBookingService_Book_Validation(t *testing.T) {
	d := newBookingDeps(t)

	_, err := d.svc.Book(context.Background(), domain.CreateBookingInput{UserID: "u1", TourID: "t1", BookingDate: testNow})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = d.svc.Book(context.Background(), domain.CreateBookingInput{UserID: "u1", TourID: "t1", Participants: 1})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Book_CapacityExceeded(t *testing.T) {
	d := newBookingDeps(t)

	d.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	d.bookings.EXPECT().Create(mock.Anything, mock.Anything, testNow).Return(domain.ErrCapacityExceeded)

	_, err := d.svc.Book(context.Background(), domain.CreateBookingInput{
		UserID: "u1", TourID: "t1", BookingDate: testNow, Participants: 50,
	})

	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestBookingService_Book_UserNotFound(t *testing.T) {
	d := newBookingDeps(t)

	d.users.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	_, err := d.svc.Book(context.Background(), domain.CreateBookingInput{
		UserID: "ghost", TourID: "t1", BookingDate: testNow, Participants: 1,
	})

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestBookingService_Book_NotificationFailureIgnored(t *testing.T) {
	d := newBookingDeps(t)

	done := make(chan struct{})
	d.users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	d.bookings.EXPECT().Create(mock.Anything, mock.Anything, testNow).Return(nil)
	d.notifier.EXPECT().
		NotifyBookingCreated(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(context.Context, *domain.User, *domain.Tour, *domain.Booking) { close(done) }).
		Return(domain.ErrNotificationDeliveryFailed)

	booking, err := d.svc.Book(context.Background(), domain.CreateBookingInput{
		UserID: "u1", TourID: "t1", BookingDate: testNow, Participants: 1,
	})

	require.NoError(t, err)
	assert.NotNil(t, booking)
	waitFor(t, done)
}

func TestBookingService_Get_Ownership(t *testing.T) {
	d := newBookingDeps(t)

	b := &domain.Booking{ID: "b1", UserID: "owner"}
	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(b, nil)

	_, err := d.svc.Get(context.Background(), domain.Actor{UserID: "stranger"}, "b1")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	got, err := d.svc.Get(context.Background(), domain.Actor{UserID: "admin", Admin: true}, "b1")
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestBookingService_RecordPayment_Confirms(t *testing.T) {
	d := newBookingDeps(t)

	owner := domain.Actor{UserID: "u1"}
	amount := decimal.NewFromInt(500)
	paid := &domain.Booking{
		ID:         "b1",
		UserID:     "u1",
		User:       &domain.User{ID: "u1"},
		Tour:       &domain.Tour{ID: "t1"},
		Status:     domain.BookingStatusConfirmed,
		PaidStatus: domain.PaidStatusPaid,
		TotalPrice: amount,
		AmountPaid: amount,
	}
	done := make(chan struct{})

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.Booking{ID: "b1", UserID: "u1"}, nil)
	d.bookings.EXPECT().ApplyPayment(mock.Anything, "b1", amount, testNow).Return(paid, true, nil)
	d.notifier.EXPECT().
		NotifyBookingConfirmed(mock.Anything, paid.User, paid.Tour, paid).
		Run(func(context.Context, *domain.User, *domain.Tour, *domain.Booking) { close(done) }).
		Return(nil)

	got, err := d.svc.RecordPayment(context.Background(), owner, "b1", amount)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, got.Status)
	waitFor(t, done)
}

func TestBookingService_RecordPayment_SecondPaymentDoesNotReconfirm(t *testing.T) {
	d := newBookingDeps(t)

	amount := decimal.NewFromInt(100)
	b := &domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingStatusConfirmed, PaidStatus: domain.PaidStatusPaid}

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.Booking{ID: "b1", UserID: "u1"}, nil)
	d.bookings.EXPECT().ApplyPayment(mock.Anything, "b1", amount, testNow).Return(b, false, nil)

	_, err := d.svc.RecordPayment(context.Background(), domain.Actor{UserID: "u1"}, "b1", amount)

	require.NoError(t, err)
}

func TestBookingService_RecordPayment_Expired(t *testing.T) {
	d := newBookingDeps(t)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.Booking{ID: "b1", UserID: "u1"}, nil)
	d.bookings.EXPECT().ApplyPayment(mock.Anything, "b1", mock.Anything, testNow).Return(nil, false, domain.ErrBookingExpired)

	_, err := d.svc.RecordPayment(context.Background(), domain.Actor{UserID: "u1"}, "b1", decimal.NewFromInt(1))

	assert.ErrorIs(t, err, domain.ErrBookingExpired)
}

func TestBookingService_Cancel(t *testing.T) {
	tests := []struct {
		name   string
		actor  domain.Actor
		reason string
	}{
		{name: "customer", actor: domain.Actor{UserID: "u1"}, reason: domain.ReasonCustomerRequest},
		{name: "admin", actor: domain.Actor{UserID: "a1", Admin: true}, reason: domain.ReasonAdminAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newBookingDeps(t)

			cancelled := &domain.Booking{ID: "b1", UserID: "u1", Status: domain.BookingStatusCancelled, CancellationReason: tt.reason}
			done := make(chan struct{})

			d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.Booking{ID: "b1", UserID: "u1"}, nil)
			d.bookings.EXPECT().
				Transition(mock.Anything, "b1", domain.BookingStatusCancelled, tt.reason, testNow).
				Return(cancelled, nil)
			d.notifier.EXPECT().
				NotifyBookingCancelled(mock.Anything, mock.Anything, mock.Anything, cancelled, tt.reason).
				Run(func(context.Context, *domain.User, *domain.Tour, *domain.Booking, string) { close(done) }).
				Return(nil)

			got, err := d.svc.Cancel(context.Background(), tt.actor, "b1")

			require.NoError(t, err)
			assert.Equal(t, domain.BookingStatusCancelled, got.Status)
			waitFor(t, done)
		})
	}
}

func TestBookingService_Cancel_Terminal(t *testing.T) {
	d := newBookingDeps(t)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(&domain.Booking{ID: "b1", UserID: "u1"}, nil)
	d.bookings.EXPECT().
		Transition(mock.Anything, "b1", domain.BookingStatusCancelled, domain.ReasonCustomerRequest, testNow).
		Return(nil, domain.ErrInvalidTransition)

	_, err := d.svc.Cancel(context.Background(), domain.Actor{UserID: "u1"}, "b1")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingService_SetStatus_PartialFailure(t *testing.T) {
	d := newBookingDeps(t)

	done := make(chan struct{})
	confirmed := &domain.Booking{ID: "b1", Status: domain.BookingStatusConfirmed}

	d.bookings.EXPECT().
		Transition(mock.Anything, "b1", domain.BookingStatusConfirmed, domain.ReasonAdminAction, testNow).
		Return(confirmed, nil).Once()
	d.bookings.EXPECT().
		Transition(mock.Anything, "b2", domain.BookingStatusConfirmed, domain.ReasonAdminAction, testNow).
		Return(nil, domain.ErrInvalidTransition).Once()
	d.bookings.EXPECT().
		Transition(mock.Anything, "b3", domain.BookingStatusConfirmed, domain.ReasonAdminAction, testNow).
		Return(nil, domain.ErrBookingNotFound).Once()
	d.notifier.EXPECT().
		NotifyBookingConfirmed(mock.Anything, mock.Anything, mock.Anything, confirmed).
		Run(func(context.Context, *domain.User, *domain.Tour, *domain.Booking) { close(done) }).
		Return(nil).Once()

	res, err := d.svc.SetStatus(context.Background(), []string{"b1", "b2", "b1", "b3"}, domain.BookingStatusConfirmed)

	require.NoError(t, err)
	assert.Equal(t, []string{"b1"}, res.Updated)
	assert.Len(t, res.Failed, 2)
	assert.Contains(t, res.Failed, "b2")
	assert.Contains(t, res.Failed, "b3")
	waitFor(t, done)
}

func TestBookingService_SetStatus_Validation(t *testing.T) {
	d := newBookingDeps(t)

	_, err := d.svc.SetStatus(context.Background(), nil, domain.BookingStatusConfirmed)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = d.svc.SetStatus(context.Background(), []string{"b1"}, "archived")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_SetStatus_Completed_NoNotification(t *testing.T) {
	d := newBookingDeps(t)

	d.bookings.EXPECT().
		Transition(mock.Anything, "b1", domain.BookingStatusCompleted, domain.ReasonAdminAction, testNow).
		Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusCompleted}, nil)

	res, err := d.svc.SetStatus(context.Background(), []string{"b1"}, domain.BookingStatusCompleted)

	require.NoError(t, err)
	assert.Equal(t, []string{"b1"}, res.Updated)
	assert.Empty(t, res.Failed)
}

func TestBookingService_List_InvalidFilter(t *testing.T) {
	d := newBookingDeps(t)

	_, _, err := d.svc.List(context.Background(), domain.BookingFilter{Status: "archived"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, _, err = d.svc.List(context.Background(), domain.BookingFilter{PaidStatus: "overpaid"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_List(t *testing.T) {
	d := newBookingDeps(t)

	filter := domain.BookingFilter{Status: domain.BookingStatusPending}
	d.bookings.EXPECT().List(mock.Anything, filter).Return([]*domain.Booking{{ID: "b1"}}, int64(1), nil)

	items, total, err := d.svc.List(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, int64(1), total)
}

func TestBookingService_ListByUser_Error(t *testing.T) {
	d := newBookingDeps(t)

	d.bookings.EXPECT().ListByUser(mock.Anything, "u1").Return(nil, errors.New("db down"))

	_, err := d.svc.ListByUser(context.Background(), "u1")
	assert.Error(t, err)
}
