package domain

import "errors"

var (
	ErrTourNotFound     = errors.New("tour not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrReviewNotFound   = errors.New("review not found")
	ErrRoleNotFound     = errors.New("role not found")
)

var (
	ErrCapacityExceeded  = errors.New("not enough seats left on this tour")
	ErrBookingNotPending = errors.New("booking is not awaiting payment")
	ErrBookingExpired    = errors.New("booking payment window has expired")
	ErrInvalidTransition = errors.New("booking status transition is not allowed")
	ErrAlreadyReviewed   = errors.New("user has already reviewed this tour")
)

var (
	ErrEmailTaken = errors.New("email is already registered")
	ErrSlugTaken  = errors.New("category slug is already taken")
)

var (
	ErrValidation = errors.New("validation error")
)

var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

var (
	ErrNotificationDeliveryFailed = errors.New("notification delivery failed")
	ErrNoRecipient                = errors.New("user has no notification recipient")
)
