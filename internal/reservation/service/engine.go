package service

import (
	"context"
	"errors"
	inventoryservice "railbook/internal/inventory/service"
	ledgerservice "railbook/internal/ledger/service"
	"railbook/internal/pricing"
	"railbook/internal/reservation/events"
	"railbook/internal/reservation/validator"
	"railbook/pkg/config"
	"railbook/pkg/model"
	"time"
)

// Engine coordinates inventory, pricing and the booking ledger so a booking
// either fully happens (seats held, booking recorded) or fully doesn't.
type Engine interface {
	Book(ctx context.Context, req *model.BookingRequest) (*model.BookingConfirmation, error)
	Cancel(ctx context.Context, bookingID int64, req *model.CancellationRequest) (*model.CancellationResult, error)
	GetBooking(ctx context.Context, bookingID int64) (*model.Booking, error)
	BookingsForUser(ctx context.Context, userID string, limit int, offset int64) ([]*model.Booking, int64, error)
}

type reservationEngine struct {
	cfg       *config.Config
	inventory inventoryservice.Inventory
	ledger    ledgerservice.Ledger
	validator *validator.RequestValidator
	publisher events.Publisher
}

func NewReservationEngine(
	cfg *config.Config,
	inventory inventoryservice.Inventory,
	ledger ledgerservice.Ledger,
	requestValidator *validator.RequestValidator,
	publisher events.Publisher,
) Engine {
	return &reservationEngine{
		cfg:       cfg,
		inventory: inventory,
		ledger:    ledger,
		validator: requestValidator,
		publisher: publisher,
	}
}

// Book reserves seats, prices the tickets against the train's current base
// fare and records the booking, returning it with the total charged. Seats
// are reserved before the booking is written; if the write fails the
// reservation is compensated by releasing the same seats, so no seats leak
// on the failure path.
func (e *reservationEngine) Book(ctx context.Context, req *model.BookingRequest) (*model.BookingConfirmation, error) {
	if err := e.validator.ValidateBookingRequest(req); err != nil {
		return nil, err
	}

	train, err := e.inventory.GetTrain(ctx, req.TrainID)
	if err != nil {
		return nil, err
	}

	// Seatless parties (infants only) skip the inventory step entirely.
	seatsNeeded := req.SeatsNeeded()
	if seatsNeeded > 0 {
		if err := e.inventory.Reserve(ctx, req.TrainID, seatsNeeded); err != nil {
			return nil, err
		}
	}

	lineItems, totalPaise, err := pricing.Quote(train.BaseFarePaise, req.Passengers)
	if err != nil {
		return nil, e.compensate(ctx, req.TrainID, seatsNeeded, err)
	}

	booking, err := e.ledger.CreateBooking(ctx, req.UserID, req.TrainID, lineItems)
	if err != nil {
		return nil, e.compensate(ctx, req.TrainID, seatsNeeded, err)
	}

	e.publishCreated(ctx, booking, totalPaise, seatsNeeded)
	return &model.BookingConfirmation{
		Booking:        booking,
		TotalFarePaise: totalPaise,
	}, nil
}

// compensate returns the seats taken by a failed booking attempt. If the
// release itself fails the seats are leaked until repaired; both errors are
// joined so neither failure is hidden.
func (e *reservationEngine) compensate(ctx context.Context, trainID string, seats int, cause error) error {
	if seats == 0 {
		return cause
	}

	if err := e.inventory.Release(context.WithoutCancel(ctx), trainID, seats); err != nil {
		e.cfg.Log.Error("Compensating seat release failed, seats leaked",
			"train_id", trainID,
			"seats", seats,
			"cause", cause,
			"release_error", err,
		)
		return errors.Join(cause, err)
	}

	e.cfg.Log.Warn("Booking failed, reserved seats returned",
		"train_id", trainID,
		"seats", seats,
		"cause", cause,
	)
	return cause
}

// Cancel drains tickets from a booking and returns the freed seats to the
// train. The ledger update commits first; a failure returning seats to
// inventory does NOT roll the cancellation back. Refunding twice because a
// retried cancellation was already committed would be worse than temporarily
// under-counting a train's availability, so the release failure is logged
// loudly and the committed result is returned.
func (e *reservationEngine) Cancel(ctx context.Context, bookingID int64, req *model.CancellationRequest) (*model.CancellationResult, error) {
	if err := e.validator.ValidateCancellationRequest(req); err != nil {
		return nil, err
	}

	result, err := e.ledger.CancelPartial(ctx, bookingID, req)
	if err != nil {
		return nil, err
	}

	if result.SeatsToRelease > 0 {
		if err := e.inventory.Release(context.WithoutCancel(ctx), result.TrainID, result.SeatsToRelease); err != nil {
			e.cfg.Log.Error("Seat release failed after committed cancellation, inventory under-counts availability",
				"booking_id", bookingID,
				"train_id", result.TrainID,
				"seats", result.SeatsToRelease,
				"error", err,
			)
		}
	}

	e.publishCancelled(ctx, req, result)
	return result, nil
}

func (e *reservationEngine) GetBooking(ctx context.Context, bookingID int64) (*model.Booking, error) {
	return e.ledger.GetBooking(ctx, bookingID)
}

func (e *reservationEngine) BookingsForUser(ctx context.Context, userID string, limit int, offset int64) ([]*model.Booking, int64, error) {
	return e.ledger.BookingsForUser(ctx, userID, limit, offset)
}

func (e *reservationEngine) publishCreated(ctx context.Context, booking *model.Booking, totalPaise int64, seatsReserved int) {
	event := events.BookingCreated{
		BookingID:      booking.ID,
		UserID:         booking.UserID,
		TrainID:        booking.TrainID,
		LineItems:      booking.LineItems,
		TotalFarePaise: totalPaise,
		SeatsReserved:  seatsReserved,
		CreatedAt:      booking.CreatedAt,
	}

	if err := e.publisher.PublishBookingCreated(context.WithoutCancel(ctx), event); err != nil {
		e.cfg.Log.Warn("Failed to publish booking created event", "booking_id", booking.ID, "error", err)
	}
}

func (e *reservationEngine) publishCancelled(ctx context.Context, req *model.CancellationRequest, result *model.CancellationResult) {
	event := events.BookingCancelled{
		BookingID:     result.BookingID,
		UserID:        req.UserID,
		TrainID:       result.TrainID,
		Category:      req.Category.String(),
		Quantity:      req.Quantity,
		RefundPaise:   result.RefundPaise,
		SeatsReleased: result.SeatsToRelease,
		Status:        result.Status,
		CancelledAt:   time.Now().UTC(),
	}

	if err := e.publisher.PublishBookingCancelled(context.WithoutCancel(ctx), event); err != nil {
		e.cfg.Log.Warn("Failed to publish booking cancelled event", "booking_id", result.BookingID, "error", err)
	}
}
