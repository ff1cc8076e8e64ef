package dto

import (
	"fmt"
	"time"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

type TourRequest struct {
	Name                string          `json:"name" binding:"required"`
	Description         string          `json:"description"`
	Price               decimal.Decimal `json:"price"`
	Duration            string          `json:"duration"`
	Destination         string          `json:"destination" binding:"required"`
	CategoryID          *string         `json:"category_id" binding:"omitempty,uuid"`
	MaxParticipants     int             `json:"max_participants" binding:"required,gt=0"`
	StartDate           string          `json:"start_date" binding:"required"`
	EndDate             string          `json:"end_date" binding:"required"`
	AvailableFrom       *time.Time      `json:"available_from"`
	AvailableUntil      *time.Time      `json:"available_until"`
	DiscountPercentage  int             `json:"discount_percentage" binding:"gte=0,lte=100"`
	PromoEndDate        *time.Time      `json:"promo_end_date"`
	PromoLabel          string          `json:"promo_label"`
	IsRecommended       bool            `json:"is_recommended"`
	RecommendationOrder int             `json:"recommendation_order"`
}

func (r TourRequest) ToInput() (domain.TourInput, error) {
	start, err := time.Parse(DateLayout, r.StartDate)
	if err != nil {
		return domain.TourInput{}, fmt.Errorf("invalid start_date format, expected %s", DateLayout)
	}
	end, err := time.Parse(DateLayout, r.EndDate)
	if err != nil {
		return domain.TourInput{}, fmt.Errorf("invalid end_date format, expected %s", DateLayout)
	}
	return domain.TourInput{
		Name:                r.Name,
		Description:         r.Description,
		Price:               r.Price,
		Duration:            r.Duration,
		Destination:         r.Destination,
		CategoryID:          r.CategoryID,
		MaxParticipants:     r.MaxParticipants,
		StartDate:           start,
		EndDate:             end,
		AvailableFrom:       r.AvailableFrom,
		AvailableUntil:      r.AvailableUntil,
		DiscountPercentage:  r.DiscountPercentage,
		PromoEndDate:        r.PromoEndDate,
		PromoLabel:          r.PromoLabel,
		IsRecommended:       r.IsRecommended,
		RecommendationOrder: r.RecommendationOrder,
	}, nil
}

type TourListQuery struct {
	CategoryID  string `form:"category_id"`
	Destination string `form:"destination"`
	Search      string `form:"q"`
	Recommended *bool  `form:"recommended"`
	PageQuery
}

type PageQuery struct {
	Limit  int `form:"limit" binding:"gte=0"`
	Offset int `form:"offset" binding:"gte=0"`
}

func (q PageQuery) Page() domain.Page {
	return domain.Page{Limit: q.Limit, Offset: q.Offset}.Normalize()
}

type BookRequest struct {
	BookingDate          string `json:"booking_date" binding:"required"`
	NumberOfParticipants int    `json:"number_of_participants" binding:"required,gt=0"`
	Notes                string `json:"notes" binding:"max=1000"`
}

type PaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

type BulkStatusRequest struct {
	IDs    []string `json:"ids" binding:"required,min=1,dive,uuid"`
	Status string   `json:"status" binding:"required"`
}

type BookingListQuery struct {
	Status     string `form:"status"`
	PaidStatus string `form:"paid_status"`
	TourID     string `form:"tour_id" binding:"omitempty,uuid"`
	UserID     string `form:"user_id" binding:"omitempty,uuid"`
	PageQuery
}

type RegisterRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	Phone          string `json:"phone"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RolesRequest struct {
	Roles []string `json:"roles" binding:"required,min=1"`
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type ReviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment" binding:"max=2000"`
}

type NotificationListQuery struct {
	UserID    string `form:"user_id" binding:"omitempty,uuid"`
	BookingID string `form:"booking_id" binding:"omitempty,uuid"`
	PageQuery
}
