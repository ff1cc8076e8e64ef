package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/service/ports"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/logger"
	"gorm.io/datatypes"
)

const DefaultPaymentWindow = 30 * time.Minute

type BookingService struct {
	bookingRepo   ports.BookingRepo
	userRepo      ports.UserRepo
	notifier      ports.Notifier
	logger        logger.Logger
	paymentWindow time.Duration
	now           func() time.Time
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	userRepo ports.UserRepo,
	notifier ports.Notifier,
	paymentWindow time.Duration,
	logger logger.Logger,
) *BookingService {
	if paymentWindow <= 0 {
		paymentWindow = DefaultPaymentWindow
	}
	return &BookingService{
		bookingRepo:   bookingRepo,
		userRepo:      userRepo,
		notifier:      notifier,
		logger:        logger,
		paymentWindow: paymentWindow,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// Book reserves seats and creates a pending booking that must be paid
// within the payment window.
func (s *BookingService) Book(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if input.Participants < 1 {
		return nil, fmt.Errorf("%w: number of participants must be at least 1", domain.ErrValidation)
	}
	if input.BookingDate.IsZero() {
		return nil, fmt.Errorf("%w: booking_date is required", domain.ErrValidation)
	}

	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	now := s.now()
	expiresAt := now.Add(s.paymentWindow)
	booking := &domain.Booking{
		ID:                   uuid.New().String(),
		UserID:               input.UserID,
		TourID:               input.TourID,
		BookingDate:          datatypes.Date(input.BookingDate.UTC()),
		NumberOfParticipants: input.Participants,
		AmountPaid:           decimal.Zero,
		Status:               domain.BookingStatusPending,
		PaidStatus:           domain.PaidStatusUnpaid,
		Notes:                input.Notes,
		ExpiredAt:            &expiresAt,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err = s.bookingRepo.Create(ctx, booking, now); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("tour_id", booking.TourID),
		logger.String("user_id", booking.UserID),
		logger.Int("participants", booking.NumberOfParticipants),
	)

	s.notifyAsync(ctx, booking.ID, func(ctx context.Context) error {
		return s.notifier.NotifyBookingCreated(ctx, user, booking.Tour, booking)
	})

	return booking, nil
}

func (s *BookingService) Get(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if !actor.CanAccess(b.UserID) {
		return nil, domain.ErrForbidden
	}
	return b, nil
}

// RecordPayment applies a successful payment callback to the booking.
func (s *BookingService) RecordPayment(
	ctx context.Context,
	actor domain.Actor,
	id string,
	amount decimal.Decimal,
) (*domain.Booking, error) {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return nil, err
	}

	b, confirmed, err := s.bookingRepo.ApplyPayment(ctx, id, amount, s.now())
	if err != nil {
		return nil, fmt.Errorf("apply payment: %w", err)
	}

	s.logger.Info("payment recorded",
		logger.String("booking_id", b.ID),
		logger.String("amount", amount.String()),
		logger.String("paid_status", string(b.PaidStatus)),
	)

	if confirmed {
		s.notifyAsync(ctx, b.ID, func(ctx context.Context) error {
			return s.notifier.NotifyBookingConfirmed(ctx, b.User, b.Tour, b)
		})
	}

	return b, nil
}

// Cancel cancels an active booking on behalf of its owner or an admin.
func (s *BookingService) Cancel(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error) {
	if _, err := s.Get(ctx, actor, id); err != nil {
		return nil, err
	}

	reason := domain.ReasonCustomerRequest
	if actor.Admin {
		reason = domain.ReasonAdminAction
	}

	b, err := s.bookingRepo.Transition(ctx, id, domain.BookingStatusCancelled, reason, s.now())
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", b.ID),
		logger.String("reason", reason),
	)

	s.notifyAsync(ctx, b.ID, func(ctx context.Context) error {
		return s.notifier.NotifyBookingCancelled(ctx, b.User, b.Tour, b, reason)
	})

	return b, nil
}

// SetStatus moves each booking to status independently. Capacity is not
// re-checked; failures are collected per id and the rest still apply.
func (s *BookingService) SetStatus(
	ctx context.Context,
	ids []string,
	status domain.BookingStatus,
) (*domain.BulkStatusResult, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one booking id is required", domain.ErrValidation)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	result := &domain.BulkStatusResult{
		Updated: make([]string, 0, len(ids)),
		Failed:  make(map[string]string),
	}

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if err := ctx.Err(); err != nil {
			result.Failed[id] = err.Error()
			continue
		}

		b, err := s.bookingRepo.Transition(ctx, id, status, domain.ReasonAdminAction, s.now())
		if err != nil {
			s.logger.Warn("bulk status change skipped booking",
				logger.String("booking_id", id),
				logger.String("status", string(status)),
				logger.String("error", err.Error()),
			)
			result.Failed[id] = err.Error()
			continue
		}
		result.Updated = append(result.Updated, id)

		switch status {
		case domain.BookingStatusCancelled:
			s.notifyAsync(ctx, b.ID, func(ctx context.Context) error {
				return s.notifier.NotifyBookingCancelled(ctx, b.User, b.Tour, b, domain.ReasonAdminAction)
			})
		case domain.BookingStatusConfirmed:
			s.notifyAsync(ctx, b.ID, func(ctx context.Context) error {
				return s.notifier.NotifyBookingConfirmed(ctx, b.User, b.Tour, b)
			})
		}
	}

	s.logger.Info("bulk status change finished",
		logger.String("status", string(status)),
		logger.Int("updated", len(result.Updated)),
		logger.Int("failed", len(result.Failed)),
	)

	return result, nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

func (s *BookingService) List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, int64, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, 0, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, filter.Status)
	}
	if filter.PaidStatus != "" && !filter.PaidStatus.IsValid() {
		return nil, 0, fmt.Errorf("%w: unknown paid status %q", domain.ErrValidation, filter.PaidStatus)
	}
	return s.bookingRepo.List(ctx, filter)
}

// notifyAsync sends outside the request lifetime; failures are only logged.
func (s *BookingService) notifyAsync(ctx context.Context, bookingID string, send func(ctx context.Context) error) {
	ctx = context.WithoutCancel(ctx)
	go func() {
		if err := send(ctx); err != nil {
			s.logger.Error("failed to send booking notification",
				logger.String("booking_id", bookingID),
				logger.String("error", err.Error()),
			)
		}
	}()
}
