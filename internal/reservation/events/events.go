// Package events publishes reservation lifecycle events. Publishing is
// best-effort: a failed publish is logged and never fails the reservation
// that triggered it.
package events

import (
	"context"
	"railbook/pkg/model"
	"time"
)

const (
	TypeBookingCreated   = "reservation.booking.created"
	TypeBookingCancelled = "reservation.booking.cancelled"

	SchemaVersion = "1"
)

// BookingCreated is emitted after a booking commits.
type BookingCreated struct {
	BookingID      int64                   `json:"booking_id"`
	UserID         string                  `json:"user_id"`
	TrainID        string                  `json:"train_id"`
	LineItems      []model.BookingLineItem `json:"line_items"`
	TotalFarePaise int64                   `json:"total_fare_paise"`
	SeatsReserved  int                     `json:"seats_reserved"`
	CreatedAt      time.Time               `json:"created_at"`
}

// BookingCancelled is emitted after a cancellation commits, whether or not
// the subsequent seat release succeeded.
type BookingCancelled struct {
	BookingID     int64               `json:"booking_id"`
	UserID        string              `json:"user_id"`
	TrainID       string              `json:"train_id"`
	Category      string              `json:"category"`
	Quantity      int                 `json:"quantity"`
	RefundPaise   int64               `json:"refund_paise"`
	SeatsReleased int                 `json:"seats_released"`
	Status        model.BookingStatus `json:"status"`
	CancelledAt   time.Time           `json:"cancelled_at"`
}

// Publisher emits reservation events to downstream consumers.
type Publisher interface {
	PublishBookingCreated(ctx context.Context, event BookingCreated) error
	PublishBookingCancelled(ctx context.Context, event BookingCancelled) error
	Close() error
}
