package service

import (
	"context"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/service/ports"
)

type NotificationLogService struct {
	repo ports.NotificationLogRepo
}

func NewNotificationLogService(repo ports.NotificationLogRepo) *NotificationLogService {
	return &NotificationLogService{repo: repo}
}

func (s *NotificationLogService) List(ctx context.Context, filter domain.NotificationFilter) ([]*domain.NotificationLog, error) {
	filter.Page = filter.Page.Normalize()
	return s.repo.List(ctx, filter)
}
