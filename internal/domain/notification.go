package domain

import (
	"time"

	"gorm.io/datatypes"
)

type NotificationType string

const (
	NotificationBookingCreated   NotificationType = "booking_created"
	NotificationBookingConfirmed NotificationType = "booking_confirmed"
	NotificationBookingCancelled NotificationType = "booking_cancelled"
	NotificationPaymentReminder  NotificationType = "payment_reminder"
	NotificationTripReminder     NotificationType = "trip_reminder"
)

type NotificationStatus string

const (
	NotificationSent    NotificationStatus = "sent"
	NotificationFailed  NotificationStatus = "failed"
	NotificationSkipped NotificationStatus = "skipped"
)

// NotificationLog is an append-only record of one delivery attempt.
type NotificationLog struct {
	ID        string             `gorm:"primaryKey" json:"id"`
	UserID    string             `json:"user_id"`
	BookingID *string            `json:"booking_id,omitempty"`
	Type      NotificationType   `json:"type"`
	Channel   string             `json:"channel"`
	Recipient string             `json:"recipient"`
	Status    NotificationStatus `json:"status"`
	Error     string             `json:"error,omitempty"`
	Payload   datatypes.JSON     `json:"payload"`
	CreatedAt time.Time          `json:"created_at"`
}

type NotificationFilter struct {
	UserID    string
	BookingID string
	Page
}
