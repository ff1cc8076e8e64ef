package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// IsActive reports whether the booking still holds seats on its tour.
func (s BookingStatus) IsActive() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

// IsTerminal reports whether no further transition is possible.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusCompleted
}

// CanTransitionTo encodes the booking state machine:
// pending -> confirmed | cancelled, confirmed -> completed | cancelled.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return next == BookingStatusConfirmed || next == BookingStatusCancelled
	case BookingStatusConfirmed:
		return next == BookingStatusCompleted || next == BookingStatusCancelled
	}
	return false
}

type PaidStatus string

const (
	PaidStatusUnpaid        PaidStatus = "unpaid"
	PaidStatusPartiallyPaid PaidStatus = "partially_paid"
	PaidStatusPaid          PaidStatus = "paid"
)

func (s PaidStatus) IsValid() bool {
	return s == PaidStatusUnpaid || s == PaidStatusPartiallyPaid || s == PaidStatusPaid
}

const (
	ReasonPaymentExpired  = "payment_expired"
	ReasonCustomerRequest = "customer_request"
	ReasonAdminAction     = "admin_action"
)

type Booking struct {
	ID                   string          `gorm:"primaryKey" json:"id"`
	UserID               string          `json:"user_id"`
	User                 *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	TourID               string          `json:"tour_id"`
	Tour                 *Tour           `gorm:"foreignKey:TourID" json:"tour,omitempty"`
	BookingDate          datatypes.Date  `json:"booking_date"`
	NumberOfParticipants int             `json:"number_of_participants"`
	TotalPrice           decimal.Decimal `json:"total_price"`
	AmountPaid           decimal.Decimal `json:"amount_paid"`
	Status               BookingStatus   `json:"status"`
	PaidStatus           PaidStatus      `json:"paid_status"`
	Notes                string          `json:"notes"`
	CancellationReason   string          `json:"cancellation_reason,omitempty"`
	ExpiredAt            *time.Time      `json:"expired_at,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

func (b *Booking) IsExpiredAt(now time.Time) bool {
	return b.Status == BookingStatusPending && b.ExpiredAt != nil && now.After(*b.ExpiredAt)
}

func (b *Booking) Outstanding() decimal.Decimal {
	if rest := b.TotalPrice.Sub(b.AmountPaid); rest.IsPositive() {
		return rest
	}
	return decimal.Zero
}

// ApplyPayment adds amount to the booking. Any accepted payment confirms a
// pending booking; paid status follows the running total. It returns true when
// this payment moved the booking from pending to confirmed.
func (b *Booking) ApplyPayment(amount decimal.Decimal, now time.Time) (bool, error) {
	if !amount.IsPositive() {
		return false, fmt.Errorf("%w: payment amount must be positive", ErrValidation)
	}

	switch {
	case b.Status == BookingStatusPending:
		if b.IsExpiredAt(now) {
			return false, ErrBookingExpired
		}
	case b.Status == BookingStatusConfirmed && b.PaidStatus == PaidStatusPartiallyPaid:
	default:
		return false, ErrBookingNotPending
	}

	if amount.GreaterThan(b.Outstanding()) {
		return false, fmt.Errorf("%w: payment %s exceeds outstanding %s", ErrValidation, amount, b.Outstanding())
	}

	b.AmountPaid = b.AmountPaid.Add(amount)
	if b.AmountPaid.GreaterThanOrEqual(b.TotalPrice) {
		b.PaidStatus = PaidStatusPaid
	} else {
		b.PaidStatus = PaidStatusPartiallyPaid
	}

	confirmed := b.Status == BookingStatusPending
	b.Status = BookingStatusConfirmed
	b.UpdatedAt = now
	return confirmed, nil
}

// Transition moves the booking to next, recording reason on cancellation.
func (b *Booking) Transition(next BookingStatus, reason string, now time.Time) error {
	if !next.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, next)
	}
	if b.Status.IsTerminal() {
		return fmt.Errorf("%w: booking is already %s", ErrInvalidTransition, b.Status)
	}
	if !b.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, next)
	}
	b.Status = next
	if next == BookingStatusCancelled {
		b.CancellationReason = reason
	}
	b.UpdatedAt = now
	return nil
}

type CreateBookingInput struct {
	UserID       string
	TourID       string
	BookingDate  time.Time
	Participants int
	Notes        string
}

type BookingFilter struct {
	Status     BookingStatus
	PaidStatus PaidStatus
	TourID     string
	UserID     string
	Page
}

// BulkStatusResult reports a bulk status change per booking id.
type BulkStatusResult struct {
	Updated []string          `json:"updated"`
	Failed  map[string]string `json:"failed"`
}
