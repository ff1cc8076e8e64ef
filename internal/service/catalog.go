package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/service/ports"
	"github.com/google/uuid"
)

// CatalogService covers categories, reviews and wishlists.
type CatalogService struct {
	categories ports.CategoryRepo
	reviews    ports.ReviewRepo
	wishlists  ports.WishlistRepo
	tours      ports.TourRepo
	now        func() time.Time
}

func NewCatalogService(
	categories ports.CategoryRepo,
	reviews ports.ReviewRepo,
	wishlists ports.WishlistRepo,
	tours ports.TourRepo,
) *CatalogService {
	return &CatalogService{
		categories: categories,
		reviews:    reviews,
		wishlists:  wishlists,
		tours:      tours,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *CatalogService) CreateCategory(ctx context.Context, name, slug, description string) (*domain.Category, error) {
	c, err := s.buildCategory(name, slug, description)
	if err != nil {
		return nil, err
	}

	now := s.now()
	c.ID = uuid.New().String()
	c.CreatedAt = now
	c.UpdatedAt = now

	if err = s.categories.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id, name, slug, description string) (*domain.Category, error) {
	existing, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}

	c, err := s.buildCategory(name, slug, description)
	if err != nil {
		return nil, err
	}
	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = s.now()

	if err = s.categories.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	return c, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *CatalogService) buildCategory(name, slug, description string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", domain.ErrValidation)
	}
	if slug == "" {
		slug = name
	}
	slug = domain.Slugify(slug)
	if slug == "" {
		return nil, fmt.Errorf("%w: category slug is empty", domain.ErrValidation)
	}
	return &domain.Category{Name: name, Slug: slug, Description: description}, nil
}

func (s *CatalogService) AddReview(ctx context.Context, userID, tourID string, rating int, comment string) (*domain.Review, error) {
	review := &domain.Review{
		ID:        uuid.New().String(),
		UserID:    userID,
		TourID:    tourID,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
		CreatedAt: s.now(),
	}
	if err := review.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.tours.GetByID(ctx, tourID); err != nil {
		return nil, fmt.Errorf("check tour: %w", err)
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return review, nil
}

func (s *CatalogService) ListReviews(ctx context.Context, tourID string) ([]*domain.Review, error) {
	return s.reviews.ListByTour(ctx, tourID)
}

func (s *CatalogService) DeleteReview(ctx context.Context, id string) error {
	return s.reviews.Delete(ctx, id)
}

func (s *CatalogService) AddToWishlist(ctx context.Context, userID, tourID string) error {
	if _, err := s.tours.GetByID(ctx, tourID); err != nil {
		return fmt.Errorf("check tour: %w", err)
	}
	return s.wishlists.Add(ctx, &domain.Wishlist{UserID: userID, TourID: tourID, CreatedAt: s.now()})
}

func (s *CatalogService) RemoveFromWishlist(ctx context.Context, userID, tourID string) error {
	return s.wishlists.Remove(ctx, userID, tourID)
}

func (s *CatalogService) Wishlist(ctx context.Context, userID string) ([]*domain.Wishlist, error) {
	return s.wishlists.ListByUser(ctx, userID)
}
