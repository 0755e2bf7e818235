package model

import (
	"time"
)

type BookingStatus string

const (
	StatusActive             BookingStatus = "active"
	StatusPartiallyCancelled BookingStatus = "partially_cancelled"
	StatusFullyCancelled     BookingStatus = "fully_cancelled"
)

// BookingLineItem records one category within a booking. UnitFarePaise is a
// snapshot taken at booking time and never changes afterwards, so refunds
// are computed against the price actually paid even if the train's fare
// changes later. 0 <= QuantityActive <= QuantityBooked at all times.
type BookingLineItem struct {
	Category       PassengerCategory `json:"category" bson:"category" validate:"required"`
	QuantityBooked int               `json:"quantity_booked" bson:"quantity_booked" validate:"required,min=1"`
	QuantityActive int               `json:"quantity_active" bson:"quantity_active" validate:"min=0,ltefield=QuantityBooked"`
	UnitFarePaise  int64             `json:"unit_fare_paise" bson:"unit_fare_paise" validate:"min=0"`
}

// Booking is a reservation of one or more tickets on a single train. IDs are
// a monotonically increasing counter scoped to the ledger; they are unique
// for the ledger's lifetime only and make no PNR-style collision claims.
// Bookings are never deleted; cancellation only drains line items.
type Booking struct {
	ID        int64             `json:"id" bson:"_id"`
	UserID    string            `json:"user_id" bson:"user_id" validate:"required"`
	TrainID   string            `json:"train_id" bson:"train_id" validate:"required"`
	LineItems []BookingLineItem `json:"line_items" bson:"line_items" validate:"required,min=1,dive"`
	Status    BookingStatus     `json:"status" bson:"status" validate:"required,oneof=active partially_cancelled fully_cancelled"`
	CreatedAt time.Time         `json:"created_at" bson:"created_at"`
}

// DeriveStatus recomputes the booking status from its line items. Status is
// derived state, never set independently: active while every item is fully
// active, fully cancelled when every item is drained, partial otherwise.
func (b *Booking) DeriveStatus() BookingStatus {
	allFull := true
	allEmpty := true
	for _, item := range b.LineItems {
		if item.QuantityActive != item.QuantityBooked {
			allFull = false
		}
		if item.QuantityActive != 0 {
			allEmpty = false
		}
	}
	switch {
	case allFull:
		return StatusActive
	case allEmpty:
		return StatusFullyCancelled
	default:
		return StatusPartiallyCancelled
	}
}

// ActiveSeats returns the number of physical seats this booking still holds.
func (b *Booking) ActiveSeats() int {
	seats := 0
	for _, item := range b.LineItems {
		if item.Category.OccupiesSeat() {
			seats += item.QuantityActive
		}
	}
	return seats
}

// LineItem returns the line item for the given category, if present.
func (b *Booking) LineItem(category PassengerCategory) (*BookingLineItem, bool) {
	for i := range b.LineItems {
		if b.LineItems[i].Category == category {
			return &b.LineItems[i], true
		}
	}
	return nil, false
}

// TotalFarePaise is the amount originally paid for the booking.
func (b *Booking) TotalFarePaise() int64 {
	var total int64
	for _, item := range b.LineItems {
		total += int64(item.QuantityBooked) * item.UnitFarePaise
	}
	return total
}
