package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/handler/dto"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/jobs"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/ginext"
)

type TourSvc interface {
	Create(ctx context.Context, input domain.TourInput) (*domain.Tour, error)
	Update(ctx context.Context, id string, input domain.TourInput) (*domain.Tour, error)
	Delete(ctx context.Context, id string) error
	GetDetails(ctx context.Context, id string) (*domain.TourDetails, error)
	List(ctx context.Context, filter domain.TourFilter) ([]*domain.Tour, int64, error)
}

type BookingSvc interface {
	Book(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	Get(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error)
	RecordPayment(ctx context.Context, actor domain.Actor, id string, amount decimal.Decimal) (*domain.Booking, error)
	Cancel(ctx context.Context, actor domain.Actor, id string) (*domain.Booking, error)
	SetStatus(ctx context.Context, ids []string, status domain.BookingStatus) (*domain.BulkStatusResult, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]*domain.Booking, int64, error)
}

type UserSvc interface {
	Register(ctx context.Context, input domain.RegisterUserInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, page domain.Page) ([]*domain.User, error)
	SetRoles(ctx context.Context, id string, roles []string) error
	Delete(ctx context.Context, id string) error
}

type CatalogSvc interface {
	CreateCategory(ctx context.Context, name, slug, description string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id, name, slug, description string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	AddReview(ctx context.Context, userID, tourID string, rating int, comment string) (*domain.Review, error)
	ListReviews(ctx context.Context, tourID string) ([]*domain.Review, error)
	DeleteReview(ctx context.Context, id string) error
	AddToWishlist(ctx context.Context, userID, tourID string) error
	RemoveFromWishlist(ctx context.Context, userID, tourID string) error
	Wishlist(ctx context.Context, userID string) ([]*domain.Wishlist, error)
}

type NotificationLogSvc interface {
	List(ctx context.Context, filter domain.NotificationFilter) ([]*domain.NotificationLog, error)
}

type JobRunner interface {
	Run(ctx context.Context, name string) (jobs.Report, error)
}

type Handler struct {
	tourService         TourSvc
	bookingService      BookingSvc
	userService         UserSvc
	catalogService      CatalogSvc
	notificationService NotificationLogSvc
	jobRunner           JobRunner
}

func NewHandler(
	tourService TourSvc,
	bookingService BookingSvc,
	userService UserSvc,
	catalogService CatalogSvc,
	notificationService NotificationLogSvc,
	jobRunner JobRunner,
) *Handler {
	return &Handler{
		tourService:         tourService,
		bookingService:      bookingService,
		userService:         userService,
		catalogService:      catalogService,
		notificationService: notificationService,
		jobRunner:           jobRunner,
	}
}

// pathID reads a uuid path parameter and writes 400 when it is malformed.
func pathID(c *ginext.Context, param, what string) (string, bool) {
	id := c.Param(param)
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + what + " id"})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrTourNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrReviewNotFound),
		errors.Is(err, jobs.ErrUnknownJob):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrBookingNotPending),
		errors.Is(err, domain.ErrBookingExpired),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrAlreadyReviewed),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrSlugTaken),
		errors.Is(err, jobs.ErrJobRunning):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrRoleNotFound):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
