package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// editableTourColumns excludes booked_participants, which only booking
// transactions may change.
var editableTourColumns = []string{
	"name", "description", "price", "duration", "destination", "category_id",
	"max_participants", "start_date", "end_date", "available_from", "available_until",
	"discount_percentage", "promo_end_date", "promo_label", "is_recommended",
	"recommendation_order", "updated_at",
}

type TourRepository struct {
	db *gorm.DB
}

func NewTourRepo(db *gorm.DB) *TourRepository {
	return &TourRepository{db: db}
}

func (r *TourRepository) Create(ctx context.Context, t *domain.Tour) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(t).Error; err != nil {
		return fmt.Errorf("insert tour: %w", err)
	}
	return nil
}

func (r *TourRepository) GetByID(ctx context.Context, id string) (*domain.Tour, error) {
	var t domain.Tour
	if err := r.db.WithContext(ctx).Preload("Category").First(&t, "id = ?", id).Error; err != nil {
		return nil, translate(err, domain.ErrTourNotFound, "get tour")
	}
	return &t, nil
}

func (r *TourRepository) GetDetails(ctx context.Context, id string) (*domain.TourDetails, error) {
	t, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var stats struct {
		Average float64
		Total   int
	}
	err = r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS total").
		Where("tour_id = ?", id).
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("review stats: %w", err)
	}

	return &domain.TourDetails{
		Tour:           *t,
		AvailableSeats: t.AvailableSeats(),
		AverageRating:  stats.Average,
		ReviewCount:    stats.Total,
	}, nil
}

func (r *TourRepository) List(ctx context.Context, filter domain.TourFilter) ([]*domain.Tour, int64, error) {
	where := func(q *gorm.DB) *gorm.DB {
		if filter.CategoryID != "" {
			q = q.Where("category_id = ?", filter.CategoryID)
		}
		if filter.Destination != "" {
			q = q.Where("LOWER(destination) = ?", strings.ToLower(filter.Destination))
		}
		if filter.Search != "" {
			q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Search)+"%")
		}
		if filter.Recommended != nil {
			q = q.Where("is_recommended = ?", *filter.Recommended)
		}
		return q
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Tour{}).Scopes(where).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count tours: %w", err)
	}

	order := "start_date ASC, name ASC"
	if filter.Recommended != nil && *filter.Recommended {
		order = "recommendation_order ASC, start_date ASC"
	}

	var res []*domain.Tour
	err := paginate(r.db.WithContext(ctx).Scopes(where), filter.Page).
		Preload("Category").
		Order(order).
		Find(&res).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list tours: %w", err)
	}
	return res, total, nil
}

// Update locks the tour, lets apply mutate it and persists the editable
// columns. apply sees the current booked count, so capacity checks made there
// cannot race with new bookings.
func (r *TourRepository) Update(ctx context.Context, id string, apply func(t *domain.Tour) error) (*domain.Tour, error) {
	var t domain.Tour
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(forUpdate).First(&t, "id = ?", id).Error; err != nil {
			return translate(err, domain.ErrTourNotFound, "lock tour")
		}
		if err := apply(&t); err != nil {
			return err
		}
		if err := tx.Model(&domain.Tour{ID: t.ID}).Select(editableTourColumns).Updates(&t).Error; err != nil {
			return fmt.Errorf("update tour: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Delete removes the tour together with its bookings, reviews and wishlist entries.
func (r *TourRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tour_id = ?", id).Delete(&domain.Booking{}).Error; err != nil {
			return fmt.Errorf("delete tour bookings: %w", err)
		}
		if err := tx.Where("tour_id = ?", id).Delete(&domain.Review{}).Error; err != nil {
			return fmt.Errorf("delete tour reviews: %w", err)
		}
		if err := tx.Where("tour_id = ?", id).Delete(&domain.Wishlist{}).Error; err != nil {
			return fmt.Errorf("delete tour wishlists: %w", err)
		}

		res := tx.Delete(&domain.Tour{}, "id = ?", id)
		if res.Error != nil {
			return fmt.Errorf("delete tour: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrTourNotFound
		}
		return nil
	})
}
