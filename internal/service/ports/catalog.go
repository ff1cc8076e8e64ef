package ports

import (
	"context"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
)

type CategoryRepo interface {
	Create(ctx context.Context, c *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id string) error
}

type ReviewRepo interface {
	Create(ctx context.Context, r *domain.Review) error
	ListByTour(ctx context.Context, tourID string) ([]*domain.Review, error)
	Delete(ctx context.Context, id string) error
}

type WishlistRepo interface {
	Add(ctx context.Context, w *domain.Wishlist) error
	Remove(ctx context.Context, userID, tourID string) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Wishlist, error)
}

type NotificationLogRepo interface {
	List(ctx context.Context, filter domain.NotificationFilter) ([]*domain.NotificationLog, error)
}
