package service

import (
	"context"
	"testing"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogDeps struct {
	categories *mocks.MockCategoryRepo
	reviews    *mocks.MockReviewRepo
	wishlists  *mocks.MockWishlistRepo
	tours      *mocks.MockTourRepo
	svc        *CatalogService
}

func newCatalogDeps(t *testing.T) catalogDeps {
	d := catalogDeps{
		categories: mocks.NewMockCategoryRepo(t),
		reviews:    mocks.NewMockReviewRepo(t),
		wishlists:  mocks.NewMockWishlistRepo(t),
		tours:      mocks.NewMockTourRepo(t),
	}
	d.svc = NewCatalogService(d.categories, d.reviews, d.wishlists, d.tours)
	return d
}

func TestCatalogService_CreateCategory_SlugFromName(t *testing.T) {
	d := newCatalogDeps(t)

	d.categories.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(c *domain.Category) bool { return c.Slug == "island-hopping" })).
		Return(nil)

	c, err := d.svc.CreateCategory(context.Background(), " Island Hopping! ", "", "boats")

	require.NoError(t, err)
	assert.Equal(t, "Island Hopping!", c.Name)
	assert.Equal(t, "island-hopping", c.Slug)
	assert.NotEmpty(t, c.ID)
}

func TestCatalogService_CreateCategory_Invalid(t *testing.T) {
	d := newCatalogDeps(t)

	_, err := d.svc.CreateCategory(context.Background(), "  ", "", "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = d.svc.CreateCategory(context.Background(), "Name", "!!!", "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogService_UpdateCategory(t *testing.T) {
	d := newCatalogDeps(t)

	d.categories.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Category{ID: "c1", Name: "Old", Slug: "old"}, nil)
	d.categories.EXPECT().Update(mock.Anything, mock.Anything).Return(domain.ErrSlugTaken)

	_, err := d.svc.UpdateCategory(context.Background(), "c1", "Beach", "beach", "")
	assert.ErrorIs(t, err, domain.ErrSlugTaken)
}

func TestCatalogService_AddReview(t *testing.T) {
	d := newCatalogDeps(t)

	d.tours.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.Tour{ID: "t1"}, nil)
	d.reviews.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	r, err := d.svc.AddReview(context.Background(), "u1", "t1", 4, " lovely ")

	require.NoError(t, err)
	assert.Equal(t, 4, r.Rating)
	assert.Equal(t, "lovely", r.Comment)
}

func TestCatalogService_AddReview_Errors(t *testing.T) {
	d := newCatalogDeps(t)

	_, err := d.svc.AddReview(context.Background(), "u1", "t1", 6, "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	d.tours.EXPECT().GetByID(mock.Anything, "gone").Return(nil, domain.ErrTourNotFound)
	_, err = d.svc.AddReview(context.Background(), "u1", "gone", 5, "")
	assert.ErrorIs(t, err, domain.ErrTourNotFound)

	d.tours.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.Tour{ID: "t1"}, nil)
	d.reviews.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrAlreadyReviewed)
	_, err = d.svc.AddReview(context.Background(), "u1", "t1", 5, "")
	assert.ErrorIs(t, err, domain.ErrAlreadyReviewed)
}

func TestCatalogService_Wishlist(t *testing.T) {
	d := newCatalogDeps(t)

	d.tours.EXPECT().GetByID(mock.Anything, "t1").Return(&domain.Tour{ID: "t1"}, nil)
	d.wishlists.EXPECT().
		Add(mock.Anything, mock.MatchedBy(func(w *domain.Wishlist) bool { return w.UserID == "u1" && w.TourID == "t1" })).
		Return(nil)
	d.wishlists.EXPECT().Remove(mock.Anything, "u1", "t1").Return(nil)

	require.NoError(t, d.svc.AddToWishlist(context.Background(), "u1", "t1"))
	require.NoError(t, d.svc.RemoveFromWishlist(context.Background(), "u1", "t1"))
}

func TestCatalogService_AddToWishlist_UnknownTour(t *testing.T) {
	d := newCatalogDeps(t)

	d.tours.EXPECT().GetByID(mock.Anything, "gone").Return(nil, domain.ErrTourNotFound)

	err := d.svc.AddToWishlist(context.Background(), "u1", "gone")
	assert.ErrorIs(t, err, domain.ErrTourNotFound)
}
