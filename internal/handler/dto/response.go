package dto

import (
	"encoding/json"
	"time"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/jobs"
)

type ListResponse[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}

type TourResponse struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Description         string     `json:"description"`
	Price               string     `json:"price"`
	EffectivePrice      string     `json:"effective_price"`
	Duration            string     `json:"duration"`
	Destination         string     `json:"destination"`
	CategoryID          *string    `json:"category_id,omitempty"`
	MaxParticipants     int        `json:"max_participants"`
	AvailableSeats      int        `json:"available_seats"`
	StartDate           string     `json:"start_date"`
	EndDate             string     `json:"end_date"`
	AvailableFrom       *time.Time `json:"available_from,omitempty"`
	AvailableUntil      *time.Time `json:"available_until,omitempty"`
	DiscountPercentage  int        `json:"discount_percentage"`
	PromoLabel          string     `json:"promo_label,omitempty"`
	PromoEndDate        *time.Time `json:"promo_end_date,omitempty"`
	IsRecommended       bool       `json:"is_recommended"`
	RecommendationOrder int        `json:"recommendation_order"`
}

type TourDetailsResponse struct {
	Tour          TourResponse `json:"tour"`
	AverageRating float64      `json:"average_rating"`
	ReviewCount   int          `json:"review_count"`
}

type BookingResponse struct {
	ID                   string        `json:"id"`
	TourID               string        `json:"tour_id"`
	UserID               string        `json:"user_id"`
	Tour                 *TourResponse `json:"tour,omitempty"`
	BookingDate          string        `json:"booking_date"`
	NumberOfParticipants int           `json:"number_of_participants"`
	TotalPrice           string        `json:"total_price"`
	AmountPaid           string        `json:"amount_paid"`
	Status               string        `json:"status"`
	PaidStatus           string        `json:"paid_status"`
	Notes                string        `json:"notes,omitempty"`
	CancellationReason   string        `json:"cancellation_reason,omitempty"`
	ExpiredAt            string        `json:"expired_at,omitempty"`
	CreatedAt            string        `json:"created_at"`
}

type BulkStatusResponse struct {
	Updated []string          `json:"updated"`
	Failed  map[string]string `json:"failed"`
}

type UserResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone,omitempty"`
	TelegramChatID *int64   `json:"telegram_chat_id,omitempty"`
	Roles          []string `json:"roles"`
	CreatedAt      string   `json:"created_at"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

type ReviewResponse struct {
	ID        string `json:"id"`
	TourID    string `json:"tour_id"`
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name,omitempty"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

type WishlistItemResponse struct {
	TourID  string        `json:"tour_id"`
	Tour    *TourResponse `json:"tour,omitempty"`
	AddedAt string        `json:"added_at"`
}

type NotificationResponse struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	BookingID *string         `json:"booking_id,omitempty"`
	Type      string          `json:"type"`
	Channel   string          `json:"channel"`
	Recipient string          `json:"recipient,omitempty"`
	Status    string          `json:"status"`
	Error     string          `json:"error,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	CreatedAt string          `json:"created_at"`
}

type JobReportResponse struct {
	Job        string `json:"job"`
	Matched    int    `json:"matched"`
	Processed  int    `json:"processed"`
	Notified   int    `json:"notified"`
	Skipped    int    `json:"skipped"`
	Failed     int    `json:"failed"`
	DurationMS int64  `json:"duration_ms"`
	Summary    string `json:"summary"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToTourResponse(t *domain.Tour) TourResponse {
	now := time.Now().UTC()
	return TourResponse{
		ID:                  t.ID,
		Name:                t.Name,
		Description:         t.Description,
		Price:               t.Price.StringFixed(2),
		EffectivePrice:      t.EffectivePrice(now).StringFixed(2),
		Duration:            t.Duration,
		Destination:         t.Destination,
		CategoryID:          t.CategoryID,
		MaxParticipants:     t.MaxParticipants,
		AvailableSeats:      t.AvailableSeats(),
		StartDate:           time.Time(t.StartDate).Format(DateLayout),
		EndDate:             time.Time(t.EndDate).Format(DateLayout),
		AvailableFrom:       t.AvailableFrom,
		AvailableUntil:      t.AvailableUntil,
		DiscountPercentage:  t.DiscountPercentage,
		PromoLabel:          t.PromoLabel,
		PromoEndDate:        t.PromoEndDate,
		IsRecommended:       t.IsRecommended,
		RecommendationOrder: t.RecommendationOrder,
	}
}

func ToTourDetailsResponse(d *domain.TourDetails) TourDetailsResponse {
	return TourDetailsResponse{
		Tour:          ToTourResponse(&d.Tour),
		AverageRating: d.AverageRating,
		ReviewCount:   d.ReviewCount,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:                   b.ID,
		TourID:               b.TourID,
		UserID:               b.UserID,
		BookingDate:          time.Time(b.BookingDate).Format(DateLayout),
		NumberOfParticipants: b.NumberOfParticipants,
		TotalPrice:           b.TotalPrice.StringFixed(2),
		AmountPaid:           b.AmountPaid.StringFixed(2),
		Status:               string(b.Status),
		PaidStatus:           string(b.PaidStatus),
		Notes:                b.Notes,
		CancellationReason:   b.CancellationReason,
		CreatedAt:            b.CreatedAt.Format(time.RFC3339),
	}
	if b.ExpiredAt != nil {
		resp.ExpiredAt = b.ExpiredAt.Format(time.RFC3339)
	}
	if b.Tour != nil {
		t := ToTourResponse(b.Tour)
		resp.Tour = &t
	}
	return resp
}

func ToBookingResponses(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, ToBookingResponse(b))
	}
	return resp
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Phone:          u.Phone,
		TelegramChatID: u.TelegramChatID,
		Roles:          u.RoleCodes(),
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}

func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
	}
}

func ToReviewResponse(r *domain.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:        r.ID,
		TourID:    r.TourID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
	if r.User != nil {
		resp.UserName = r.User.Name
	}
	return resp
}

func ToWishlistItemResponse(w *domain.Wishlist) WishlistItemResponse {
	resp := WishlistItemResponse{
		TourID:  w.TourID,
		AddedAt: w.CreatedAt.Format(time.RFC3339),
	}
	if w.Tour != nil {
		t := ToTourResponse(w.Tour)
		resp.Tour = &t
	}
	return resp
}

func ToNotificationResponse(n *domain.NotificationLog) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		BookingID: n.BookingID,
		Type:      string(n.Type),
		Channel:   n.Channel,
		Recipient: n.Recipient,
		Status:    string(n.Status),
		Error:     n.Error,
		Payload:   json.RawMessage(n.Payload),
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}

func ToJobReportResponse(r jobs.Report) JobReportResponse {
	return JobReportResponse{
		Job:        r.Job,
		Matched:    r.Matched,
		Processed:  r.Processed,
		Notified:   r.Notified,
		Skipped:    r.Skipped,
		Failed:     r.Failed,
		DurationMS: r.Duration.Milliseconds(),
		Summary:    r.String(),
	}
}
