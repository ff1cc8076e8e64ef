package repository

import (
	"context"
	"fmt"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/storage"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepo(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if storage.IsUniqueViolation(err) {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	var c domain.Category
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translate(err, domain.ErrCategoryNotFound, "get category")
	}
	return &c, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	var res []*domain.Category
	if err := r.db.WithContext(ctx).Order("name").Find(&res).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return res, nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *domain.Category) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Category{ID: c.ID}).
		Select("name", "slug", "description", "updated_at").
		Updates(c)
	if res.Error != nil {
		if storage.IsUniqueViolation(res.Error) {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("update category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// Delete detaches the category from its tours before removing it.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&domain.Tour{}).
			Where("category_id = ?", id).
			Update("category_id", nil).Error
		if err != nil {
			return fmt.Errorf("detach tours: %w", err)
		}

		res := tx.Delete(&domain.Category{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("delete category: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrCategoryNotFound
		}
		return nil
	})
}

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepo(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(rv).Error; err != nil {
		if storage.IsUniqueViolation(err) {
			return domain.ErrAlreadyReviewed
		}
		return fmt.Errorf("insert review: %w", err)
	}
	return nil
}

func (r *ReviewRepository) ListByTour(ctx context.Context, tourID string) ([]*domain.Review, error) {
	var res []*domain.Review
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("tour_id = ?", tourID).
		Order("created_at DESC").
		Find(&res).Error
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return res, nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.Review{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete review: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

type WishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepo(db *gorm.DB) *WishlistRepository {
	return &WishlistRepository{db: db}
}

// Add is idempotent: re-adding a tour keeps the original entry.
func (r *WishlistRepository) Add(ctx context.Context, w *domain.Wishlist) error {
	err := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(w).Error
	if err != nil {
		return fmt.Errorf("add to wishlist: %w", err)
	}
	return nil
}

func (r *WishlistRepository) Remove(ctx context.Context, userID, tourID string) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND tour_id = ?", userID, tourID).
		Delete(&domain.Wishlist{}).Error
	if err != nil {
		return fmt.Errorf("remove from wishlist: %w", err)
	}
	return nil
}

func (r *WishlistRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Wishlist, error) {
	var res []*domain.Wishlist
	err := r.db.WithContext(ctx).
		Preload("Tour").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&res).Error
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}
	return res, nil
}
