package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Tour struct {
	ID                  string          `gorm:"primaryKey" json:"id"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	Price               decimal.Decimal `json:"price"`
	Duration            string          `json:"duration"`
	Destination         string          `json:"destination"`
	CategoryID          *string         `json:"category_id,omitempty"`
	Category            *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	MaxParticipants     int             `json:"max_participants"`
	BookedParticipants  int             `json:"booked_participants"`
	StartDate           datatypes.Date  `json:"start_date"`
	EndDate             datatypes.Date  `json:"end_date"`
	AvailableFrom       *time.Time      `json:"available_from,omitempty"`
	AvailableUntil      *time.Time      `json:"available_until,omitempty"`
	DiscountPercentage  int             `json:"discount_percentage"`
	PromoEndDate        *time.Time      `json:"promo_end_date,omitempty"`
	PromoLabel          string          `json:"promo_label"`
	IsRecommended       bool            `json:"is_recommended"`
	RecommendationOrder int             `json:"recommendation_order"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
}

// AvailableSeats never goes negative, even for rows written before capacity was lowered.
func (t *Tour) AvailableSeats() int {
	if left := t.MaxParticipants - t.BookedParticipants; left > 0 {
		return left
	}
	return 0
}

func (t *Tour) CanReserve(participants int) error {
	if participants < 1 {
		return fmt.Errorf("%w: number of participants must be at least 1", ErrValidation)
	}
	if t.BookedParticipants+participants > t.MaxParticipants {
		return fmt.Errorf("%w: requested %d, available %d", ErrCapacityExceeded, participants, t.AvailableSeats())
	}
	return nil
}

// IsBookableAt reports whether now falls inside the optional availability window.
func (t *Tour) IsBookableAt(now time.Time) bool {
	if t.AvailableFrom != nil && now.Before(*t.AvailableFrom) {
		return false
	}
	if t.AvailableUntil != nil && now.After(*t.AvailableUntil) {
		return false
	}
	return true
}

func (t *Tour) PromoActive(now time.Time) bool {
	return t.DiscountPercentage > 0 && t.PromoEndDate != nil && now.Before(*t.PromoEndDate)
}

// EffectivePrice is the advertised per-person price. Booking totals are always
// computed from Price.
func (t *Tour) EffectivePrice(now time.Time) decimal.Decimal {
	if !t.PromoActive(now) {
		return t.Price
	}
	off := t.Price.Mul(decimal.NewFromInt(int64(t.DiscountPercentage))).Div(decimal.NewFromInt(100))
	return t.Price.Sub(off).Round(2)
}

func (t *Tour) TotalFor(participants int) decimal.Decimal {
	return t.Price.Mul(decimal.NewFromInt(int64(participants)))
}

func (t *Tour) Validate() error {
	switch {
	case strings.TrimSpace(t.Name) == "":
		return fmt.Errorf("%w: name is required", ErrValidation)
	case t.Price.IsNegative():
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	case t.MaxParticipants < 1:
		return fmt.Errorf("%w: max_participants must be positive", ErrValidation)
	case t.MaxParticipants < t.BookedParticipants:
		return fmt.Errorf("%w: max_participants cannot be lower than %d booked seats", ErrValidation, t.BookedParticipants)
	case t.DiscountPercentage < 0 || t.DiscountPercentage > 100:
		return fmt.Errorf("%w: discount_percentage must be between 0 and 100", ErrValidation)
	case time.Time(t.EndDate).Before(time.Time(t.StartDate)):
		return fmt.Errorf("%w: end_date is before start_date", ErrValidation)
	case t.AvailableFrom != nil && t.AvailableUntil != nil && t.AvailableUntil.Before(*t.AvailableFrom):
		return fmt.Errorf("%w: available_until is before available_from", ErrValidation)
	}
	return nil
}

type TourDetails struct {
	Tour           Tour    `json:"tour"`
	AvailableSeats int     `json:"available_seats"`
	AverageRating  float64 `json:"average_rating"`
	ReviewCount    int     `json:"review_count"`
}

type TourFilter struct {
	CategoryID  string
	Destination string
	Search      string
	Recommended *bool
	Page
}

// TourInput carries the admin-editable fields of a tour.
type TourInput struct {
	Name                string
	Description         string
	Price               decimal.Decimal
	Duration            string
	Destination         string
	CategoryID          *string
	MaxParticipants     int
	StartDate           time.Time
	EndDate             time.Time
	AvailableFrom       *time.Time
	AvailableUntil      *time.Time
	DiscountPercentage  int
	PromoEndDate        *time.Time
	PromoLabel          string
	IsRecommended       bool
	RecommendationOrder int
}

// Apply copies the input onto t, leaving id, counters and timestamps alone.
func (in TourInput) Apply(t *Tour) {
	t.Name = in.Name
	t.Description = in.Description
	t.Price = in.Price
	t.Duration = in.Duration
	t.Destination = in.Destination
	t.CategoryID = in.CategoryID
	t.MaxParticipants = in.MaxParticipants
	t.StartDate = datatypes.Date(in.StartDate.UTC())
	t.EndDate = datatypes.Date(in.EndDate.UTC())
	t.AvailableFrom = in.AvailableFrom
	t.AvailableUntil = in.AvailableUntil
	t.DiscountPercentage = in.DiscountPercentage
	t.PromoEndDate = in.PromoEndDate
	t.PromoLabel = in.PromoLabel
	t.IsRecommended = in.IsRecommended
	t.RecommendationOrder = in.RecommendationOrder
}

// Page is a limit/offset window over a listing.
type Page struct {
	Limit  int
	Offset int
}

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}
