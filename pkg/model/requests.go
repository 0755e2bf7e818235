package model

// BookingRequest is the payload for creating a booking. Passengers maps a
// category to the number of tickets requested; the passenger_counts
// validation is registered by the reservation validator.
type BookingRequest struct {
	UserID     string                    `json:"user_id" validate:"required,min=3,max=30"`
	TrainID    string                    `json:"train_id" validate:"required,min=4,max=12"`
	Passengers map[PassengerCategory]int `json:"passengers" validate:"required,passenger_counts"`
}

// SeatsNeeded is the number of physical seats the request consumes.
// Seatless categories are excluded.
func (r *BookingRequest) SeatsNeeded() int {
	seats := 0
	for category, quantity := range r.Passengers {
		if category.OccupiesSeat() {
			seats += quantity
		}
	}
	return seats
}

// TicketCount is the total number of tickets requested across categories.
func (r *BookingRequest) TicketCount() int {
	total := 0
	for _, quantity := range r.Passengers {
		total += quantity
	}
	return total
}

// BookingConfirmation is what a successful booking returns: the recorded
// booking plus the total charged for it, priced from the snapshotted unit
// fares.
type BookingConfirmation struct {
	Booking        *Booking `json:"booking"`
	TotalFarePaise int64    `json:"total_fare_paise"`
}

// CancellationRequest asks to cancel Quantity tickets of one category on a
// booking the caller owns.
type CancellationRequest struct {
	UserID   string            `json:"user_id" validate:"required,min=3,max=30"`
	Category PassengerCategory `json:"category" validate:"required,oneof=adult child senior infant"`
	Quantity int               `json:"quantity" validate:"required,min=1"`
}

// CancellationResult reports what a committed cancellation is owed: the
// refund against the snapshotted unit fare and how many physical seats go
// back to the train (zero when the category is seatless).
type CancellationResult struct {
	BookingID      int64         `json:"booking_id"`
	TrainID        string        `json:"train_id"`
	RefundPaise    int64         `json:"refund_paise"`
	SeatsToRelease int           `json:"seats_to_release"`
	Status         BookingStatus `json:"status"`
}
