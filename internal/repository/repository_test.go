package repository_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/repository"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/storage"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var baseNow = time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// newTestDB opens a private in-memory sqlite database with the schema applied.
// A single connection keeps the database alive for the whole test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&_foreign_keys=1&_loc=UTC&_busy_timeout=5000", uuid.NewString())
	return openTestDB(t, dsn, 1)
}

// newFileTestDB opens a sqlite file under t.TempDir with a production-sized pool.
func newFileTestDB(t *testing.T, maxOpen int) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_foreign_keys=1&_loc=UTC&_busy_timeout=5000",
		filepath.Join(t.TempDir(), "flymora.db"))
	return openTestDB(t, dsn, maxOpen)
}

func openTestDB(t *testing.T, dsn string, maxOpen int) *gorm.DB {
	t.Helper()

	db, err := storage.Open(context.Background(), storage.Options{
		Driver:       storage.DriverSQLite,
		DSN:          dsn,
		MaxOpenConns: maxOpen,
		MaxIdleConns: maxOpen,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close(db) })

	require.NoError(t, storage.Migrate(db, storage.DriverSQLite))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string, roles ...string) *domain.User {
	t.Helper()

	if len(roles) == 0 {
		roles = []string{domain.RoleCustomer}
	}
	u := &domain.User{
		ID:           uuid.NewString(),
		Name:         "Test " + email,
		Email:        email,
		PasswordHash: "hash",
		CreatedAt:    baseNow,
		UpdatedAt:    baseNow,
	}
	require.NoError(t, repository.NewUserRepo(db).Create(context.Background(), u, roles))
	return u
}

func seedTour(t *testing.T, db *gorm.DB, mutate func(*domain.Tour)) *domain.Tour {
	t.Helper()

	tour := &domain.Tour{
		ID:              uuid.NewString(),
		Name:            "Bali Explorer",
		Destination:     "Bali",
		Price:           decimal.NewFromInt(100),
		MaxParticipants: 10,
		StartDate:       datatypes.Date(day(2026, 11, 1)),
		EndDate:         datatypes.Date(day(2026, 11, 5)),
		CreatedAt:       baseNow,
		UpdatedAt:       baseNow,
	}
	if mutate != nil {
		mutate(tour)
	}
	require.NoError(t, repository.NewTourRepo(db).Create(context.Background(), tour))
	return tour
}

func newBooking(userID, tourID string, participants int, now time.Time) *domain.Booking {
	expires := now.Add(30 * time.Minute)
	return &domain.Booking{
		ID:                   uuid.NewString(),
		UserID:               userID,
		TourID:               tourID,
		BookingDate:          datatypes.Date(day(2026, 11, 1)),
		NumberOfParticipants: participants,
		AmountPaid:           decimal.Zero,
		Status:               domain.BookingStatusPending,
		PaidStatus:           domain.PaidStatusUnpaid,
		ExpiredAt:            &expires,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// seedBooking books through the repository so the tour counters stay consistent.
func seedBooking(t *testing.T, db *gorm.DB, userID, tourID string, participants int, now time.Time) *domain.Booking {
	t.Helper()

	b := newBooking(userID, tourID, participants, now)
	require.NoError(t, repository.NewBookingRepo(db).Create(context.Background(), b, now))
	return b
}

func bookedSeats(t *testing.T, db *gorm.DB, tourID string) int {
	t.Helper()

	tour, err := repository.NewTourRepo(db).GetByID(context.Background(), tourID)
	require.NoError(t, err)
	return tour.BookedParticipants
}
