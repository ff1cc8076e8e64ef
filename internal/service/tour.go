package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/service/ports"
	"github.com/google/uuid"
)

type TourService struct {
	repo         ports.TourRepo
	categoryRepo ports.CategoryRepo
	now          func() time.Time
}

func NewTourService(repo ports.TourRepo, categoryRepo ports.CategoryRepo) *TourService {
	return &TourService{
		repo:         repo,
		categoryRepo: categoryRepo,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *TourService) Create(ctx context.Context, input domain.TourInput) (*domain.Tour, error) {
	if err := s.checkCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	now := s.now()
	tour := &domain.Tour{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	input.Apply(tour)

	if err := tour.Validate(); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, tour); err != nil {
		return nil, fmt.Errorf("create tour: %w", err)
	}

	return tour, nil
}

// Update rewrites the editable fields. Capacity may not drop below the seats
// already booked.
func (s *TourService) Update(ctx context.Context, id string, input domain.TourInput) (*domain.Tour, error) {
	if err := s.checkCategory(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	tour, err := s.repo.Update(ctx, id, func(t *domain.Tour) error {
		input.Apply(t)
		t.UpdatedAt = s.now()
		return t.Validate()
	})
	if err != nil {
		return nil, fmt.Errorf("update tour: %w", err)
	}

	return tour, nil
}

func (s *TourService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete tour: %w", err)
	}
	return nil
}

func (s *TourService) GetDetails(ctx context.Context, id string) (*domain.TourDetails, error) {
	return s.repo.GetDetails(ctx, id)
}

func (s *TourService) List(ctx context.Context, filter domain.TourFilter) ([]*domain.Tour, int64, error) {
	filter.Page = filter.Page.Normalize()
	return s.repo.List(ctx, filter)
}

func (s *TourService) checkCategory(ctx context.Context, id *string) error {
	if id == nil {
		return nil
	}
	if _, err := s.categoryRepo.GetByID(ctx, *id); err != nil {
		return fmt.Errorf("check category: %w", err)
	}
	return nil
}
