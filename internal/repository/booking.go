package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/retry"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookingRepository struct {
	db       *gorm.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *gorm.DB) *BookingRepository {
	return &BookingRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

// Create reserves seats on the tour and inserts the booking in one transaction.
// The tour row is locked and the counter update is guarded, so concurrent
// bookings can never push booked_participants past max_participants.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking, now time.Time) error {
	return transact(ctx, r.db, r.strategy, func(tx *gorm.DB) error {
		var tour domain.Tour
		if err := tx.Clauses(forUpdate).First(&tour, "id = ?", b.TourID).Error; err != nil {
			return translate(err, domain.ErrTourNotFound, "lock tour")
		}

		if !tour.IsBookableAt(now) {
			return fmt.Errorf("%w: tour is not available for booking", domain.ErrValidation)
		}
		if err := tour.CanReserve(b.NumberOfParticipants); err != nil {
			return err
		}

		res := tx.Model(&domain.Tour{}).
			Where("id = ? AND booked_participants + ? <= max_participants", tour.ID, b.NumberOfParticipants).
			Updates(map[string]any{
				"booked_participants": gorm.Expr("booked_participants + ?", b.NumberOfParticipants),
				"updated_at":          now,
			})
		if res.Error != nil {
			return fmt.Errorf("reserve seats: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrCapacityExceeded
		}

		b.TotalPrice = tour.TotalFor(b.NumberOfParticipants)
		if err := tx.Omit(clause.Associations).Create(b).Error; err != nil {
			return fmt.Errorf("insert booking: %w", err)
		}

		tour.BookedParticipants += b.NumberOfParticipants
		b.Tour = &tour
		return nil
	})
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Tour").
		First(&b, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, domain.ErrBookingNotFound, "get booking")
	}
	return &b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	var res []*domain.Booking
	err := r.db.WithContext(ctx).
		Preload("Tour").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&res).Error
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	return res, nil
}

func (r *BookingRepository) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, int64, error) {
	where := func(q *gorm.DB) *gorm.DB {
		if filter.Status != "" {
			q = q.Where("status = ?", filter.Status)
		}
		if filter.PaidStatus != "" {
			q = q.Where("paid_status = ?", filter.PaidStatus)
		}
		if filter.TourID != "" {
			q = q.Where("tour_id = ?", filter.TourID)
		}
		if filter.UserID != "" {
			q = q.Where("user_id = ?", filter.UserID)
		}
		return q
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Booking{}).Scopes(where).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count bookings: %w", err)
	}

	var res []*domain.Booking
	err := paginate(r.withParties(ctx).Scopes(where), filter.Page).
		Order("created_at DESC").
		Find(&res).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings: %w", err)
	}
	return res, total, nil
}

// ApplyPayment records a payment under a row lock. The returned flag is true
// when the payment confirmed a pending booking.
func (r *BookingRepository) ApplyPayment(
	ctx context.Context,
	id string,
	amount decimal.Decimal,
	now time.Time,
) (*domain.Booking, bool, error) {
	var confirmed bool
	err := transact(ctx, r.db, r.strategy, func(tx *gorm.DB) error {
		var b domain.Booking
		if err := tx.Clauses(forUpdate).First(&b, "id = ?", id).Error; err != nil {
			return translate(err, domain.ErrBookingNotFound, "lock booking")
		}

		var err error
		if confirmed, err = b.ApplyPayment(amount, now); err != nil {
			return err
		}

		return tx.Model(&domain.Booking{}).
			Where("id = ?", b.ID).
			Updates(map[string]any{
				"amount_paid": b.AmountPaid,
				"paid_status": b.PaidStatus,
				"status":      b.Status,
				"updated_at":  now,
			}).Error
	})
	if err != nil {
		return nil, false, err
	}

	b, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}
	return b, confirmed, nil
}

// Transition applies a state-machine move to one booking. Leaving an active
// status for cancelled returns the booking's seats to the tour.
func (r *BookingRepository) Transition(
	ctx context.Context,
	id string,
	next domain.BookingStatus,
	reason string,
	now time.Time,
) (*domain.Booking, error) {
	err := transact(ctx, r.db, r.strategy, func(tx *gorm.DB) error {
		var b domain.Booking
		if err := tx.Clauses(forUpdate).First(&b, "id = ?", id).Error; err != nil {
			return translate(err, domain.ErrBookingNotFound, "lock booking")
		}

		wasActive := b.Status.IsActive()
		if err := b.Transition(next, reason, now); err != nil {
			return err
		}

		err := tx.Model(&domain.Booking{}).
			Where("id = ?", b.ID).
			Updates(map[string]any{
				"status":              b.Status,
				"cancellation_reason": b.CancellationReason,
				"updated_at":          now,
			}).Error
		if err != nil {
			return fmt.Errorf("update booking status: %w", err)
		}

		if wasActive && next == domain.BookingStatusCancelled {
			return releaseSeats(tx, b.TourID, b.NumberOfParticipants, now)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

// CancelExpired cancels one booking if it is still pending past its deadline.
// It reports false when another run already handled the booking.
func (r *BookingRepository) CancelExpired(ctx context.Context, id string, now time.Time) (bool, error) {
	var cancelled bool
	err := transact(ctx, r.db, r.strategy, func(tx *gorm.DB) error {
		cancelled = false
		res := tx.Model(&domain.Booking{}).
			Where("id = ? AND status = ? AND expired_at IS NOT NULL AND expired_at < ?",
				id, domain.BookingStatusPending, now).
			Updates(map[string]any{
				"status":              domain.BookingStatusCancelled,
				"cancellation_reason": domain.ReasonPaymentExpired,
				"updated_at":          now,
			})
		if res.Error != nil {
			return fmt.Errorf("cancel expired booking: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil
		}

		var b domain.Booking
		if err := tx.Select("tour_id", "number_of_participants").First(&b, "id = ?", id).Error; err != nil {
			return fmt.Errorf("reload booking: %w", err)
		}
		if err := releaseSeats(tx, b.TourID, b.NumberOfParticipants, now); err != nil {
			return err
		}

		cancelled = true
		return nil
	})
	return cancelled, err
}

func (r *BookingRepository) ListExpiredPending(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	var res []*domain.Booking
	err := r.withParties(ctx).
		Where("status = ? AND expired_at IS NOT NULL AND expired_at < ?", domain.BookingStatusPending, now).
		Order("id").
		Find(&res).Error
	if err != nil {
		return nil, fmt.Errorf("list expired bookings: %w", err)
	}
	return res, nil
}

// ListAwaitingPayment returns pending bookings whose deadline lies in [from, to].
func (r *BookingRepository) ListAwaitingPayment(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	var res []*domain.Booking
	err := r.withParties(ctx).
		Where("status = ? AND expired_at IS NOT NULL AND expired_at >= ? AND expired_at <= ?",
			domain.BookingStatusPending, from, to).
		Order("id").
		Find(&res).Error
	if err != nil {
		return nil, fmt.Errorf("list bookings awaiting payment: %w", err)
	}
	return res, nil
}

// ListConfirmedStartingBetween returns confirmed bookings on tours starting in [from, to).
func (r *BookingRepository) ListConfirmedStartingBetween(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	tours := r.db.Model(&domain.Tour{}).
		Select("id").
		Where("start_date >= ? AND start_date < ?", from, to)

	var res []*domain.Booking
	err := r.withParties(ctx).
		Where("status = ? AND tour_id IN (?)", domain.BookingStatusConfirmed, tours).
		Order("id").
		Find(&res).Error
	if err != nil {
		return nil, fmt.Errorf("list bookings starting soon: %w", err)
	}
	return res, nil
}

// ListConfirmedEndedBefore returns confirmed bookings on tours that ended before day.
func (r *BookingRepository) ListConfirmedEndedBefore(ctx context.Context, day time.Time) ([]*domain.Booking, error) {
	tours := r.db.Model(&domain.Tour{}).
		Select("id").
		Where("end_date < ?", day)

	var res []*domain.Booking
	err := r.db.WithContext(ctx).
		Where("status = ? AND tour_id IN (?)", domain.BookingStatusConfirmed, tours).
		Order("id").
		Find(&res).Error
	if err != nil {
		return nil, fmt.Errorf("list finished bookings: %w", err)
	}
	return res, nil
}

func (r *BookingRepository) withParties(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("User").Preload("Tour")
}
