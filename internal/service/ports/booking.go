package ports

import (
	"context"
	"time"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking, now time.Time) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, int64, error)
	ApplyPayment(ctx context.Context, id string, amount decimal.Decimal, now time.Time) (*domain.Booking, bool, error)
	Transition(ctx context.Context, id string, next domain.BookingStatus, reason string, now time.Time) (*domain.Booking, error)
}
