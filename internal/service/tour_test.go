package service

import (
	"context"
	"testing"
	"time"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validTourInput() domain.TourInput {
	return domain.TourInput{
		Name:            "Bromo Sunrise",
		Destination:     "East Java",
		Price:           decimal.RequireFromString("120.50"),
		MaxParticipants: 12,
		StartDate:       time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestTourService_Create(t *testing.T) {
	repo := mocks.NewMockTourRepo(t)
	categories := mocks.NewMockCategoryRepo(t)
	svc := NewTourService(repo, categories)

	catID := "c1"
	input := validTourInput()
	input.CategoryID = &catID

	categories.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Category{ID: "c1"}, nil)
	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Tour")).Return(nil)

	tour, err := svc.Create(context.Background(), input)

	require.NoError(t, err)
	assert.NotEmpty(t, tour.ID)
	assert.Equal(t, "Bromo Sunrise", tour.Name)
	assert.Zero(t, tour.BookedParticipants)
}

func TestTourService_Create_UnknownCategory(t *testing.T) {
	repo := mocks.NewMockTourRepo(t)
	categories := mocks.NewMockCategoryRepo(t)
	svc := NewTourService(repo, categories)

	catID := "missing"
	input := validTourInput()
	input.CategoryID = &catID

	categories.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrCategoryNotFound)

	_, err := svc.Create(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestTourService_Create_Invalid(t *testing.T) {
	svc := NewTourService(mocks.NewMockTourRepo(t), mocks.NewMockCategoryRepo(t))

	input := validTourInput()
	input.EndDate = input.StartDate.AddDate(0, 0, -1)

	_, err := svc.Create(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTourService_Update_CapacityBelowBooked(t *testing.T) {
	repo := mocks.NewMockTourRepo(t)
	svc := NewTourService(repo, mocks.NewMockCategoryRepo(t))

	input := validTourInput()
	input.MaxParticipants = 3

	stored := &domain.Tour{ID: "t1", Name: "old", MaxParticipants: 10, BookedParticipants: 5}
	repo.EXPECT().
		Update(mock.Anything, "t1", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, apply func(t *domain.Tour) error) (*domain.Tour, error) {
			if err := apply(stored); err != nil {
				return nil, err
			}
			return stored, nil
		})

	_, err := svc.Update(context.Background(), "t1", input)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTourService_Update_KeepsCounters(t *testing.T) {
	repo := mocks.NewMockTourRepo(t)
	svc := NewTourService(repo, mocks.NewMockCategoryRepo(t))

	stored := &domain.Tour{ID: "t1", Name: "old", MaxParticipants: 10, BookedParticipants: 5}
	repo.EXPECT().
		Update(mock.Anything, "t1", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, apply func(t *domain.Tour) error) (*domain.Tour, error) {
			if err := apply(stored); err != nil {
				return nil, err
			}
			return stored, nil
		})

	tour, err := svc.Update(context.Background(), "t1", validTourInput())

	require.NoError(t, err)
	assert.Equal(t, "Bromo Sunrise", tour.Name)
	assert.Equal(t, 5, tour.BookedParticipants)
	assert.Equal(t, "t1", tour.ID)
}

func TestTourService_List_NormalizesPage(t *testing.T) {
	repo := mocks.NewMockTourRepo(t)
	svc := NewTourService(repo, mocks.NewMockCategoryRepo(t))

	repo.EXPECT().
		List(mock.Anything, domain.TourFilter{Destination: "Bali", Page: domain.Page{Limit: domain.DefaultPageSize}}).
		Return(nil, int64(0), nil)

	_, _, err := svc.List(context.Background(), domain.TourFilter{Destination: "Bali"})
	require.NoError(t, err)
}

func TestTourService_Delete(t *testing.T) {
	repo := mocks.NewMockTourRepo(t)
	svc := NewTourService(repo, mocks.NewMockCategoryRepo(t))

	repo.EXPECT().Delete(mock.Anything, "t1").Return(domain.ErrTourNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), "t1"), domain.ErrTourNotFound)
}
