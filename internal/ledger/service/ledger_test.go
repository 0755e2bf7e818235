package service

import (
	"context"
	"io"
	ledgererrors "railbook/internal/ledger/errors"
	"railbook/pkg/config"
	db "railbook/pkg/db/mongo"
	apperrors "railbook/pkg/errors"
	"railbook/pkg/logger"
	"railbook/pkg/model"
	"testing"
)

type mockBookingRepository struct {
	bookings map[int64]*model.Booking
	nextID   int64

	nextIDErr error
	insertErr error
	updateErr error
}

func newMockBookingRepository() *mockBookingRepository {
	return &mockBookingRepository{bookings: make(map[int64]*model.Booking)}
}

func (m *mockBookingRepository) NextID(ctx context.Context) (int64, error) {
	if m.nextIDErr != nil {
		return 0, m.nextIDErr
	}
	m.nextID++
	return m.nextID, nil
}

func (m *mockBookingRepository) Insert(ctx context.Context, booking *model.Booking) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	copied := *booking
	copied.LineItems = append([]model.BookingLineItem(nil), booking.LineItems...)
	m.bookings[booking.ID] = &copied
	return nil
}

func (m *mockBookingRepository) FindByID(ctx context.Context, id int64) (*model.Booking, error) {
	booking, ok := m.bookings[id]
	if !ok {
		return nil, ledgererrors.ErrNotFound
	}
	copied := *booking
	copied.LineItems = append([]model.BookingLineItem(nil), booking.LineItems...)
	return &copied, nil
}

func (m *mockBookingRepository) FindByUser(ctx context.Context, userID string, limit int, offset int64) ([]*model.Booking, error) {
	var result []*model.Booking
	for _, booking := range m.bookings {
		if booking.UserID == userID {
			copied := *booking
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (m *mockBookingRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	for _, booking := range m.bookings {
		if booking.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (m *mockBookingRepository) UpdateLineItems(ctx context.Context, id int64, lineItems []model.BookingLineItem, status model.BookingStatus) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	booking, ok := m.bookings[id]
	if !ok {
		return ledgererrors.ErrNotFound
	}
	booking.LineItems = append([]model.BookingLineItem(nil), lineItems...)
	booking.Status = status
	return nil
}

type mockLockRepository struct {
	held       map[string]bool
	acquireErr error
}

func newMockLockRepository() *mockLockRepository {
	return &mockLockRepository{held: make(map[string]bool)}
}

func (m *mockLockRepository) Acquire(ctx context.Context, resourceID string) error {
	if m.acquireErr != nil {
		return m.acquireErr
	}
	if m.held[resourceID] {
		return ledgererrors.ErrLockHeld
	}
	m.held[resourceID] = true
	return nil
}

func (m *mockLockRepository) Release(ctx context.Context, resourceID string) error {
	delete(m.held, resourceID)
	return nil
}

// fakeTxManager runs the transaction body directly, with no session.
type fakeTxManager struct{}

func (fakeTxManager) ExecuteTransaction(ctx context.Context, fn db.TransactionFunc) error {
	return fn(nil)
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard}),
	}
}

func seedBooking(t *testing.T, svc Ledger) *model.Booking {
	t.Helper()
	booking, err := svc.CreateBooking(context.Background(), "alice", "MUDE101", []model.BookingLineItem{
		{Category: model.CategoryAdult, QuantityBooked: 2, QuantityActive: 2, UnitFarePaise: 100000},
		{Category: model.CategoryChild, QuantityBooked: 1, QuantityActive: 1, UnitFarePaise: 50000},
	})
	if err != nil {
		t.Fatalf("CreateBooking() unexpected error: %v", err)
	}
	return booking
}

func newTestLedger(t *testing.T) (Ledger, *mockBookingRepository, *mockLockRepository) {
	t.Helper()
	repo := newMockBookingRepository()
	locks := newMockLockRepository()
	svc := NewLedgerService(testConfig(), repo, locks, fakeTxManager{})
	return svc, repo, locks
}

func TestCreateBookingAssignsIncreasingIDs(t *testing.T) {
	svc, _, _ := newTestLedger(t)

	first := seedBooking(t, svc)
	second := seedBooking(t, svc)

	if first.ID <= 0 {
		t.Errorf("first booking ID = %d, want positive", first.ID)
	}
	if second.ID <= first.ID {
		t.Errorf("booking IDs not increasing: %d then %d", first.ID, second.ID)
	}
	if first.Status != model.StatusActive {
		t.Errorf("new booking status = %s, want %s", first.Status, model.StatusActive)
	}
}

func TestCreateBookingRejectsEmptyLineItems(t *testing.T) {
	svc, _, _ := newTestLedger(t)

	_, err := svc.CreateBooking(context.Background(), "alice", "MUDE101", nil)
	if !apperrors.HasCode(err, apperrors.CodeInvalidInput) {
		t.Errorf("CreateBooking() error = %v, want %s", err, apperrors.CodeInvalidInput)
	}
}

func TestGetBookingNotFound(t *testing.T) {
	svc, _, _ := newTestLedger(t)

	_, err := svc.GetBooking(context.Background(), 404)
	if !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Errorf("GetBooking() error = %v, want %s", err, apperrors.CodeNotFound)
	}
}

func TestCancelPartialRefundsSnapshotPrice(t *testing.T) {
	svc, repo, _ := newTestLedger(t)
	booking := seedBooking(t, svc)

	result, err := svc.CancelPartial(context.Background(), booking.ID, &model.CancellationRequest{
		UserID:   "alice",
		Category: model.CategoryAdult,
		Quantity: 1,
	})
	if err != nil {
		t.Fatalf("CancelPartial() unexpected error: %v", err)
	}

	if result.RefundPaise != 100000 {
		t.Errorf("refund = %d, want 100000", result.RefundPaise)
	}
	if result.SeatsToRelease != 1 {
		t.Errorf("seats to release = %d, want 1", result.SeatsToRelease)
	}
	if result.Status != model.StatusPartiallyCancelled {
		t.Errorf("status = %s, want %s", result.Status, model.StatusPartiallyCancelled)
	}

	stored := repo.bookings[booking.ID]
	if stored.LineItems[0].QuantityActive != 1 {
		t.Errorf("stored active adults = %d, want 1", stored.LineItems[0].QuantityActive)
	}
	if stored.LineItems[0].QuantityBooked != 2 {
		t.Errorf("stored booked adults = %d, want 2 (booked count never changes)", stored.LineItems[0].QuantityBooked)
	}
}

func TestCancelPartialDrainsToFullyCancelled(t *testing.T) {
	svc, _, _ := newTestLedger(t)
	booking := seedBooking(t, svc)

	steps := []struct {
		category model.PassengerCategory
		quantity int
		want     model.BookingStatus
	}{
		{model.CategoryAdult, 2, model.StatusPartiallyCancelled},
		{model.CategoryChild, 1, model.StatusFullyCancelled},
	}

	for _, step := range steps {
		result, err := svc.CancelPartial(context.Background(), booking.ID, &model.CancellationRequest{
			UserID:   "alice",
			Category: step.category,
			Quantity: step.quantity,
		})
		if err != nil {
			t.Fatalf("CancelPartial(%s) unexpected error: %v", step.category, err)
		}
		if result.Status != step.want {
			t.Errorf("CancelPartial(%s) status = %s, want %s", step.category, result.Status, step.want)
		}
	}
}

func TestCancelPartialWrongOwner(t *testing.T) {
	svc, repo, _ := newTestLedger(t)
	booking := seedBooking(t, svc)

	_, err := svc.CancelPartial(context.Background(), booking.ID, &model.CancellationRequest{
		UserID:   "mallory",
		Category: model.CategoryAdult,
		Quantity: 1,
	})
	if !apperrors.HasCode(err, apperrors.CodeNotOwner) {
		t.Fatalf("CancelPartial() error = %v, want %s", err, apperrors.CodeNotOwner)
	}

	// Rejection must not mutate the booking
	if repo.bookings[booking.ID].LineItems[0].QuantityActive != 2 {
		t.Error("rejected cancellation changed the booking")
	}
}

func TestCancelPartialCategoryNotInBooking(t *testing.T) {
	svc, _, _ := newTestLedger(t)
	booking := seedBooking(t, svc)

	_, err := svc.CancelPartial(context.Background(), booking.ID, &model.CancellationRequest{
		UserID:   "alice",
		Category: model.CategorySenior,
		Quantity: 1,
	})
	if !apperrors.HasCode(err, apperrors.CodeCategoryNotFound) {
		t.Errorf("CancelPartial() error = %v, want %s", err, apperrors.CodeCategoryNotFound)
	}
}

func TestCancelPartialOverCancellation(t *testing.T) {
	svc, repo, _ := newTestLedger(t)
	booking := seedBooking(t, svc)

	// Drain one adult first, then try to cancel two more
	if _, err := svc.CancelPartial(context.Background(), booking.ID, &model.CancellationRequest{
		UserID:   "alice",
		Category: model.CategoryAdult,
		Quantity: 1,
	}); err != nil {
		t.Fatalf("CancelPartial() unexpected error: %v", err)
	}

	_, err := svc.CancelPartial(context.Background(), booking.ID, &model.CancellationRequest{
		UserID:   "alice",
		Category: model.CategoryAdult,
		Quantity: 2,
	})
	if !apperrors.HasCode(err, apperrors.CodeOverCancellation) {
		t.Fatalf("CancelPartial() error = %v, want %s", err, apperrors.CodeOverCancellation)
	}

	// The failed attempt must not drain anything further
	if repo.bookings[booking.ID].LineItems[0].QuantityActive != 1 {
		t.Error("over-cancellation changed the booking")
	}
}

func TestCancelPartialNotFound(t *testing.T) {
	svc, _, _ := newTestLedger(t)

	_, err := svc.CancelPartial(context.Background(), 404, &model.CancellationRequest{
		UserID:   "alice",
		Category: model.CategoryAdult,
		Quantity: 1,
	})
	if !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Errorf("CancelPartial() error = %v, want %s", err, apperrors.CodeNotFound)
	}
}

func TestCancelPartialLockContention(t *testing.T) {
	svc, _, locks := newTestLedger(t)
	booking := seedBooking(t, svc)

	locks.held["booking:1"] = true

	_, err := svc.CancelPartial(context.Background(), booking.ID, &model.CancellationRequest{
		UserID:   "alice",
		Category: model.CategoryAdult,
		Quantity: 1,
	})
	if !apperrors.HasCode(err, apperrors.CodeConflict) {
		t.Errorf("CancelPartial() error = %v, want %s", err, apperrors.CodeConflict)
	}
}

func TestCancelPartialReleasesLock(t *testing.T) {
	svc, _, locks := newTestLedger(t)
	booking := seedBooking(t, svc)

	if _, err := svc.CancelPartial(context.Background(), booking.ID, &model.CancellationRequest{
		UserID:   "alice",
		Category: model.CategoryAdult,
		Quantity: 1,
	}); err != nil {
		t.Fatalf("CancelPartial() unexpected error: %v", err)
	}

	if len(locks.held) != 0 {
		t.Errorf("lock still held after cancellation: %v", locks.held)
	}
}

func TestBookingsForUser(t *testing.T) {
	svc, _, _ := newTestLedger(t)
	seedBooking(t, svc)
	seedBooking(t, svc)

	bookings, total, err := svc.BookingsForUser(context.Background(), "alice", 10, 0)
	if err != nil {
		t.Fatalf("BookingsForUser() unexpected error: %v", err)
	}
	if total != 2 || len(bookings) != 2 {
		t.Errorf("BookingsForUser() = %d bookings, total %d, want 2 and 2", len(bookings), total)
	}

	_, total, err = svc.BookingsForUser(context.Background(), "nobody", 10, 0)
	if err != nil {
		t.Fatalf("BookingsForUser() unexpected error: %v", err)
	}
	if total != 0 {
		t.Errorf("BookingsForUser(nobody) total = %d, want 0", total)
	}
}
