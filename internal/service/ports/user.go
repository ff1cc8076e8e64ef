package ports

import (
	"context"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User, roleCodes []string) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, page domain.Page) ([]*domain.User, error)
	SetRoles(ctx context.Context, userID string, roleCodes []string) error
	Delete(ctx context.Context, id string) error
}

type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}
