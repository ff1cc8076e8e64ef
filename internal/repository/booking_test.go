package repository_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestBookingRepository_Create(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewBookingRepo(db)
	ctx := context.Background()

	user := seedUser(t, db, "anna@example.com")
	tour := seedTour(t, db, func(tr *domain.Tour) {
		tr.Price = decimal.RequireFromString("1500.50")
		tr.MaxParticipants = 5
	})

	b := newBooking(user.ID, tour.ID, 2, baseNow)
	require.NoError(t, repo.Create(ctx, b, baseNow))

	assert.True(t, decimal.RequireFromString("3001").Equal(b.TotalPrice), "total %s", b.TotalPrice)
	require.NotNil(t, b.Tour)
	assert.Equal(t, 2, b.Tour.BookedParticipants)
	assert.Equal(t, 2, bookedSeats(t, db, tour.ID))

	// a later price change must not touch existing bookings
	require.NoError(t, db.Model(&domain.Tour{}).Where("id = ?", tour.ID).
		Update("price", decimal.NewFromInt(9999)).Error)

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("3001").Equal(got.TotalPrice))
	assert.Equal(t, domain.BookingStatusPending, got.Status)
	assert.Equal(t, domain.PaidStatusUnpaid, got.PaidStatus)
	require.NotNil(t, got.User)
	assert.Equal(t, user.Email, got.User.Email)
	require.NotNil(t, got.ExpiredAt)
	assert.True(t, got.ExpiredAt.Equal(baseNow.Add(30*time.Minute)))
}

func TestBookingRepository_Create_Rejections(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewBookingRepo(db)
	ctx := context.Background()

	user := seedUser(t, db, "anna@example.com")
	small := seedTour(t, db, func(tr *domain.Tour) { tr.MaxParticipants = 5 })
	closed := seedTour(t, db, func(tr *domain.Tour) {
		until := baseNow.Add(-time.Hour)
		tr.AvailableUntil = &until
	})
	upcoming := seedTour(t, db, func(tr *domain.Tour) {
		from := baseNow.Add(24 * time.Hour)
		tr.AvailableFrom = &from
	})

	seedBooking(t, db, user.ID, small.ID, 4, baseNow)

	tests := []struct {
		name    string
		tourID  string
		n       int
		wantErr error
	}{
		{"over capacity", small.ID, 2, domain.ErrCapacityExceeded},
		{"window closed", closed.ID, 1, domain.ErrValidation},
		{"window not open", upcoming.ID, 1, domain.ErrValidation},
		{"unknown tour", "00000000-0000-0000-0000-000000000000", 1, domain.ErrTourNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Create(ctx, newBooking(user.ID, tt.tourID, tt.n, baseNow), baseNow)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	assert.Equal(t, 4, bookedSeats(t, db, small.ID))
	assert.Equal(t, 0, bookedSeats(t, db, closed.ID))

	var count int64
	require.NoError(t, db.Model(&domain.Booking{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestBookingRepository_Create_ConcurrentNeverOverbooks(t *testing.T) {
	db := newFileTestDB(t, 10)
	repo := repository.NewBookingRepo(db)
	ctx := context.Background()

	user := seedUser(t, db, "anna@example.com")
	tour := seedTour(t, db, func(tr *domain.Tour) { tr.MaxParticipants = 10 })

	const attempts = 25
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
		other     []error
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.Create(ctx, newBooking(user.ID, tour.ID, 1, baseNow), baseNow)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domain.ErrCapacityExceeded):
				rejected++
			default:
				other = append(other, err)
			}
		}()
	}
	wg.Wait()

	require.Empty(t, other)
	assert.Equal(t, 10, succeeded)
	assert.Equal(t, attempts-10, rejected)
	assert.Equal(t, 10, bookedSeats(t, db, tour.ID))

	var seats int64
	require.NoError(t, db.Model(&domain.Booking{}).
		Where("tour_id = ?", tour.ID).
		Select("COALESCE(SUM(number_of_participants), 0)").
		Scan(&seats).Error)
	assert.EqualValues(t, 10, seats)
}

func TestBookingRepository_ApplyPayment(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewBookingRepo(db)
	ctx := context.Background()

	user := seedUser(t, db, "anna@example.com")
	tour := seedTour(t, db, nil)

	t.Run("partial then rest", func(t *testing.T) {
		b := seedBooking(t, db, user.ID, tour.ID, 2, baseNow)

		got, confirmed, err := repo.ApplyPayment(ctx, b.ID, decimal.NewFromInt(50), baseNow.Add(time.Minute))
		require.NoError(t, err)
		assert.True(t, confirmed)
		assert.Equal(t, domain.BookingStatusConfirmed, got.Status)
		assert.Equal(t, domain.PaidStatusPartiallyPaid, got.PaidStatus)
		assert.True(t, decimal.NewFromInt(50).Equal(got.AmountPaid))

		got, confirmed, err = repo.ApplyPayment(ctx, b.ID, decimal.NewFromInt(150), baseNow.Add(2*time.Minute))
		require.NoError(t, err)
		assert.False(t, confirmed)
		assert.Equal(t, domain.PaidStatusPaid, got.PaidStatus)
		assert.True(t, decimal.NewFromInt(200).Equal(got.AmountPaid))

		_, _, err = repo.ApplyPayment(ctx, b.ID, decimal.NewFromInt(1), baseNow.Add(3*time.Minute))
		assert.ErrorIs(t, err, domain.ErrBookingNotPending)
	})

	t.Run("overpayment", func(t *testing.T) {
		b := seedBooking(t, db, user.ID, tour.ID, 1, baseNow)

		_, _, err := repo.ApplyPayment(ctx, b.ID, decimal.NewFromInt(101), baseNow)
		assert.ErrorIs(t, err, domain.ErrValidation)

		got, err := repo.GetByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusPending, got.Status)
		assert.True(t, got.AmountPaid.IsZero())
	})

	t.Run("after deadline", func(t *testing.T) {
		b := seedBooking(t, db, user.ID, tour.ID, 1, baseNow)

		_, _, err := repo.ApplyPayment(ctx, b.ID, decimal.NewFromInt(100), baseNow.Add(31*time.Minute))
		assert.ErrorIs(t, err, domain.ErrBookingExpired)
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, _, err := repo.ApplyPayment(ctx, "missing", decimal.NewFromInt(1), baseNow)
		assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	})
}

func TestBookingRepository_Transition(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewBookingRepo(db)
	ctx := context.Background()

	user := seedUser(t, db, "anna@example.com")
	tour := seedTour(t, db, nil)

	t.Run("cancel releases seats", func(t *testing.T) {
		b := seedBooking(t, db, user.ID, tour.ID, 3, baseNow)
		before := bookedSeats(t, db, tour.ID)

		got, err := repo.Transition(ctx, b.ID, domain.BookingStatusCancelled, domain.ReasonCustomerRequest, baseNow)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCancelled, got.Status)
		assert.Equal(t, domain.ReasonCustomerRequest, got.CancellationReason)
		assert.Equal(t, before-3, bookedSeats(t, db, tour.ID))

		_, err = repo.Transition(ctx, b.ID, domain.BookingStatusCancelled, domain.ReasonAdminAction, baseNow)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		assert.Equal(t, before-3, bookedSeats(t, db, tour.ID))
	})

	t.Run("complete keeps seats", func(t *testing.T) {
		b := seedBooking(t, db, user.ID, tour.ID, 2, baseNow)
		_, _, err := repo.ApplyPayment(ctx, b.ID, decimal.NewFromInt(200), baseNow)
		require.NoError(t, err)
		before := bookedSeats(t, db, tour.ID)

		got, err := repo.Transition(ctx, b.ID, domain.BookingStatusCompleted, "", baseNow)
		require.NoError(t, err)
		assert.Equal(t, domain.BookingStatusCompleted, got.Status)
		assert.Equal(t, before, bookedSeats(t, db, tour.ID))

		_, err = repo.Transition(ctx, b.ID, domain.BookingStatusPending, "", baseNow)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("pending cannot complete", func(t *testing.T) {
		b := seedBooking(t, db, user.ID, tour.ID, 1, baseNow)

		_, err := repo.Transition(ctx, b.ID, domain.BookingStatusCompleted, "", baseNow)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, err := repo.Transition(ctx, "missing", domain.BookingStatusCancelled, "", baseNow)
		assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	})
}

func TestBookingRepository_CancelExpired(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewBookingRepo(db)
	ctx := context.Background()

	user := seedUser(t, db, "anna@example.com")
	tour := seedTour(t, db, nil)

	expired := seedBooking(t, db, user.ID, tour.ID, 2, baseNow)
	fresh := seedBooking(t, db, user.ID, tour.ID, 1, baseNow.Add(time.Hour))
	require.Equal(t, 3, bookedSeats(t, db, tour.ID))

	now := baseNow.Add(45 * time.Minute)

	ok, err := repo.CancelExpired(ctx, expired.ID, now)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, bookedSeats(t, db, tour.ID))

	got, err := repo.GetByID(ctx, expired.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, got.Status)
	assert.Equal(t, domain.ReasonPaymentExpired, got.CancellationReason)

	ok, err = repo.CancelExpired(ctx, expired.ID, now)
	require.NoError(t, err)
	assert.False(t, ok, "second run must be a no-op")
	assert.Equal(t, 1, bookedSeats(t, db, tour.ID))

	ok, err = repo.CancelExpired(ctx, fresh.ID, now)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, bookedSeats(t, db, tour.ID))
}

func TestBookingRepository_CancelExpired_SkipsPaid(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewBookingRepo(db)
	ctx := context.Background()

	user := seedUser(t, db, "anna@example.com")
	tour := seedTour(t, db, nil)
	b := seedBooking(t, db, user.ID, tour.ID, 1, baseNow)

	_, _, err := repo.ApplyPayment(ctx, b.ID, decimal.NewFromInt(100), baseNow.Add(10*time.Minute))
	require.NoError(t, err)

	ok, err := repo.CancelExpired(ctx, b.ID, baseNow.Add(time.Hour))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, bookedSeats(t, db, tour.ID))
}

func TestBookingRepository_PaymentWindows(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewBookingRepo(db)
	ctx := context.Background()

	user := seedUser(t, db, "anna@example.com")
	tour := seedTour(t, db, nil)

	early := seedBooking(t, db, user.ID, tour.ID, 1, baseNow)                  // deadline 10:30
	late := seedBooking(t, db, user.ID, tour.ID, 1, baseNow.Add(time.Hour))    // deadline 11:30
	paid := seedBooking(t, db, user.ID, tour.ID, 1, baseNow.Add(-time.Minute)) // deadline 10:29
	_, _, err := repo.ApplyPayment(ctx, paid.ID, decimal.NewFromInt(100), baseNow)
	require.NoError(t, err)

	expiredList, err := repo.ListExpiredPending(ctx, baseNow.Add(45*time.Minute))
	require.NoError(t, err)
	require.Len(t, expiredList, 1)
	assert.Equal(t, early.ID, expiredList[0].ID)
	require.NotNil(t, expiredList[0].User)
	require.NotNil(t, expiredList[0].Tour)

	awaiting, err := repo.ListAwaitingPayment(ctx, baseNow.Add(time.Hour), baseNow.Add(2*time.Hour))
	require.NoError(t, err)
	require.Len(t, awaiting, 1)
	assert.Equal(t, late.ID, awaiting[0].ID)

	// bounds are inclusive
	awaiting, err = repo.ListAwaitingPayment(ctx, baseNow.Add(30*time.Minute), baseNow.Add(90*time.Minute))
	require.NoError(t, err)
	assert.Len(t, awaiting, 2)
}

func TestBookingRepository_ConfirmedTripQueries(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewBookingRepo(db)
	ctx := context.Background()

	user := seedUser(t, db, "anna@example.com")
	soon := seedTour(t, db, func(tr *domain.Tour) {
		tr.StartDate = datatypes.Date(day(2026, 10, 21))
		tr.EndDate = datatypes.Date(day(2026, 10, 24))
	})
	later := seedTour(t, db, func(tr *domain.Tour) {
		tr.StartDate = datatypes.Date(day(2026, 10, 25))
		tr.EndDate = datatypes.Date(day(2026, 10, 28))
	})
	finished := seedTour(t, db, func(tr *domain.Tour) {
		tr.StartDate = datatypes.Date(day(2026, 10, 10))
		tr.EndDate = datatypes.Date(day(2026, 10, 17))
	})

	confirm := func(tourID string) *domain.Booking {
		b := seedBooking(t, db, user.ID, tourID, 1, baseNow)
		_, _, err := repo.ApplyPayment(ctx, b.ID, decimal.NewFromInt(100), baseNow)
		require.NoError(t, err)
		return b
	}

	soonBooking := confirm(soon.ID)
	confirm(later.ID)
	finishedBooking := confirm(finished.ID)
	seedBooking(t, db, user.ID, soon.ID, 1, baseNow) // pending, never reminded

	starting, err := repo.ListConfirmedStartingBetween(ctx, day(2026, 10, 21), day(2026, 10, 22))
	require.NoError(t, err)
	require.Len(t, starting, 1)
	assert.Equal(t, soonBooking.ID, starting[0].ID)
	require.NotNil(t, starting[0].Tour)
	assert.Equal(t, soon.ID, starting[0].Tour.ID)

	ended, err := repo.ListConfirmedEndedBefore(ctx, day(2026, 10, 18))
	require.NoError(t, err)
	require.Len(t, ended, 1)
	assert.Equal(t, finishedBooking.ID, ended[0].ID)
}

func TestBookingRepository_List(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewBookingRepo(db)
	ctx := context.Background()

	anna := seedUser(t, db, "anna@example.com")
	bob := seedUser(t, db, "bob@example.com")
	tour := seedTour(t, db, nil)

	a1 := seedBooking(t, db, anna.ID, tour.ID, 1, baseNow)
	seedBooking(t, db, anna.ID, tour.ID, 1, baseNow.Add(time.Minute))
	seedBooking(t, db, bob.ID, tour.ID, 1, baseNow.Add(2*time.Minute))
	_, err := repo.Transition(ctx, a1.ID, domain.BookingStatusCancelled, domain.ReasonAdminAction, baseNow)
	require.NoError(t, err)

	items, total, err := repo.List(ctx, domain.BookingFilter{Status: domain.BookingStatusPending})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, items, 2)

	items, total, err = repo.List(ctx, domain.BookingFilter{UserID: anna.ID, Page: domain.Page{Limit: 1}})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, items, 1)

	mine, err := repo.ListByUser(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, bob.ID, mine[0].UserID)
}
