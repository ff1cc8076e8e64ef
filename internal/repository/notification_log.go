package repository

import (
	"context"
	"fmt"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	"gorm.io/gorm"
)

type NotificationLogRepository struct {
	db *gorm.DB
}

func NewNotificationLogRepo(db *gorm.DB) *NotificationLogRepository {
	return &NotificationLogRepository{db: db}
}

func (r *NotificationLogRepository) Create(ctx context.Context, entry *domain.NotificationLog) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("insert notification log: %w", err)
	}
	return nil
}

func (r *NotificationLogRepository) List(ctx context.Context, filter domain.NotificationFilter) ([]*domain.NotificationLog, error) {
	q := r.db.WithContext(ctx)
	if filter.UserID != "" {
		q = q.Where("user_id = ?", filter.UserID)
	}
	if filter.BookingID != "" {
		q = q.Where("booking_id = ?", filter.BookingID)
	}

	var res []*domain.NotificationLog
	if err := paginate(q, filter.Page).Order("created_at DESC").Find(&res).Error; err != nil {
		return nil, fmt.Errorf("list notification logs: %w", err)
	}
	return res, nil
}
