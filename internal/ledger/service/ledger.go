package service

import (
	"context"
	"errors"
	"fmt"
	ledgererrors "railbook/internal/ledger/errors"
	"railbook/internal/ledger/repository"
	"railbook/pkg/config"
	db "railbook/pkg/db/mongo"
	apperrors "railbook/pkg/errors"
	"railbook/pkg/model"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// Ledger is the booking record of truth. Bookings are append-and-mutate:
// created once, then only drained by partial cancellations, never deleted.
type Ledger interface {
	CreateBooking(ctx context.Context, userID, trainID string, lineItems []model.BookingLineItem) (*model.Booking, error)
	GetBooking(ctx context.Context, id int64) (*model.Booking, error)
	BookingsForUser(ctx context.Context, userID string, limit int, offset int64) ([]*model.Booking, int64, error)
	CancelPartial(ctx context.Context, bookingID int64, req *model.CancellationRequest) (*model.CancellationResult, error)
}

type ledgerService struct {
	cfg       *config.Config
	repo      repository.BookingRepository
	locks     repository.LockRepository
	txManager db.TransactionManager
}

func NewLedgerService(cfg *config.Config, repo repository.BookingRepository, locks repository.LockRepository, txManager db.TransactionManager) Ledger {
	return &ledgerService{
		cfg:       cfg,
		repo:      repo,
		locks:     locks,
		txManager: txManager,
	}
}

func (s *ledgerService) CreateBooking(ctx context.Context, userID, trainID string, lineItems []model.BookingLineItem) (*model.Booking, error) {
	if len(lineItems) == 0 {
		return nil, apperrors.InvalidInput("booking must have at least one line item")
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to allocate booking ID", err)
	}

	booking := &model.Booking{
		ID:        id,
		UserID:    userID,
		TrainID:   trainID,
		LineItems: lineItems,
		Status:    model.StatusActive,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, booking); err != nil {
		return nil, apperrors.Internal("Failed to record booking", err)
	}

	s.cfg.Log.Info("Booking recorded",
		"booking_id", booking.ID,
		"user_id", userID,
		"train_id", trainID,
		"total_fare_paise", booking.TotalFarePaise(),
	)
	return booking, nil
}

func (s *ledgerService) GetBooking(ctx context.Context, id int64) (*model.Booking, error) {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ledgererrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", fmt.Sprintf("%d", id))
		}
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}

	return booking, nil
}

func (s *ledgerService) BookingsForUser(ctx context.Context, userID string, limit int, offset int64) ([]*model.Booking, int64, error) {
	limit = config.NormalizePaginationLimit(limit)
	offset = config.NormalizeOffset(offset)

	bookings, err := s.repo.FindByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, apperrors.Internal("Failed to list bookings", err)
	}

	total, err := s.repo.CountByUser(ctx, userID)
	if err != nil {
		return nil, 0, apperrors.Internal("Failed to count bookings", err)
	}

	return bookings, total, nil
}

// CancelPartial drains req.Quantity tickets of req.Category from the booking
// inside a transaction guarded by a per-booking advisory lock. All checks run
// against the locked state, so concurrent cancellations cannot drain the same
// tickets twice. The refund is computed from the unit fare snapshotted at
// booking time.
func (s *ledgerService) CancelPartial(ctx context.Context, bookingID int64, req *model.CancellationRequest) (*model.CancellationResult, error) {
	lockID := fmt.Sprintf("booking:%d", bookingID)
	if err := s.locks.Acquire(ctx, lockID); err != nil {
		if errors.Is(err, ledgererrors.ErrLockHeld) {
			return nil, apperrors.Conflict("booking is being modified by another request")
		}
		return nil, apperrors.Internal("Failed to lock booking", err)
	}
	defer func() {
		if err := s.locks.Release(context.WithoutCancel(ctx), lockID); err != nil {
			s.cfg.Log.Warn("Failed to release booking lock", "lock_id", lockID, "error", err)
		}
	}()

	var result *model.CancellationResult
	err := s.txManager.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		booking, err := s.repo.FindByID(sessCtx, bookingID)
		if err != nil {
			if errors.Is(err, ledgererrors.ErrNotFound) {
				return apperrors.NotFoundWithID("Booking", fmt.Sprintf("%d", bookingID))
			}
			return apperrors.Internal("Failed to retrieve booking", err)
		}

		if booking.UserID != req.UserID {
			return apperrors.NotOwner(bookingID)
		}

		item, ok := booking.LineItem(req.Category)
		if !ok {
			return apperrors.CategoryNotInBooking(req.Category.String(), bookingID)
		}

		if req.Quantity > item.QuantityActive {
			return apperrors.OverCancellation(req.Category.String(), req.Quantity, item.QuantityActive)
		}

		item.QuantityActive -= req.Quantity
		booking.Status = booking.DeriveStatus()

		if err := s.repo.UpdateLineItems(sessCtx, bookingID, booking.LineItems, booking.Status); err != nil {
			return apperrors.Internal("Failed to update booking", err)
		}

		seatsToRelease := 0
		if req.Category.OccupiesSeat() {
			seatsToRelease = req.Quantity
		}

		result = &model.CancellationResult{
			BookingID:      bookingID,
			TrainID:        booking.TrainID,
			RefundPaise:    int64(req.Quantity) * item.UnitFarePaise,
			SeatsToRelease: seatsToRelease,
			Status:         booking.Status,
		}
		return nil
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		return nil, apperrors.Internal("Cancellation transaction failed", err)
	}

	s.cfg.Log.Info("Booking cancellation committed",
		"booking_id", bookingID,
		"category", req.Category,
		"quantity", req.Quantity,
		"refund_paise", result.RefundPaise,
		"status", result.Status,
	)
	return result, nil
}
