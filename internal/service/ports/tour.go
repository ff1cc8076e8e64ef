package ports

import (
	"context"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
)

type TourRepo interface {
	Create(ctx context.Context, t *domain.Tour) error
	GetByID(ctx context.Context, id string) (*domain.Tour, error)
	GetDetails(ctx context.Context, id string) (*domain.TourDetails, error)
	List(ctx context.Context, filter domain.TourFilter) ([]*domain.Tour, int64, error)
	Update(ctx context.Context, id string, apply func(t *domain.Tour) error) (*domain.Tour, error)
	Delete(ctx context.Context, id string) error
}
