package service

import (
	"context"
	"io"
	inventoryerrors "railbook/internal/inventory/errors"
	"railbook/pkg/config"
	apperrors "railbook/pkg/errors"
	"railbook/pkg/logger"
	"railbook/pkg/model"
	"testing"
)

type mockTrainRepository struct {
	trains map[string]*model.Train

	reserveErr error
	releaseErr error
	insertErr  error

	reserved []int
	released []int
}

func newMockTrainRepository(trains ...*model.Train) *mockTrainRepository {
	m := &mockTrainRepository{trains: make(map[string]*model.Train)}
	for _, train := range trains {
		m.trains[train.ID] = train
	}
	return m
}

func (m *mockTrainRepository) FindByID(ctx context.Context, id string) (*model.Train, error) {
	train, ok := m.trains[id]
	if !ok {
		return nil, inventoryerrors.ErrNotFound
	}
	copied := *train
	return &copied, nil
}

func (m *mockTrainRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Train, error) {
	var all []*model.Train
	for _, train := range m.trains {
		copied := *train
		all = append(all, &copied)
	}
	return all, nil
}

func (m *mockTrainRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(m.trains)), nil
}

func (m *mockTrainRepository) InsertMany(ctx context.Context, trains []*model.Train) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	for _, train := range trains {
		m.trains[train.ID] = train
	}
	return nil
}

func (m *mockTrainRepository) Reserve(ctx context.Context, id string, seats int) error {
	if m.reserveErr != nil {
		return m.reserveErr
	}
	train, ok := m.trains[id]
	if !ok {
		return inventoryerrors.ErrNotFound
	}
	if train.AvailableSeats < seats {
		return inventoryerrors.ErrInsufficientSeats
	}
	train.AvailableSeats -= seats
	m.reserved = append(m.reserved, seats)
	return nil
}

func (m *mockTrainRepository) Release(ctx context.Context, id string, seats int) error {
	if m.releaseErr != nil {
		return m.releaseErr
	}
	train, ok := m.trains[id]
	if !ok {
		return inventoryerrors.ErrNotFound
	}
	if train.AvailableSeats+seats > train.TotalSeats {
		return inventoryerrors.ErrCorruption
	}
	train.AvailableSeats += seats
	m.released = append(m.released, seats)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard}),

		SeedMinFareRupees:     300,
		SeedMaxFareRupees:     5000,
		SeedMinSeats:          10,
		SeedMaxSeats:          200,
		SeedMinTrainsPerRoute: 2,
		SeedMaxTrainsPerRoute: 6,
	}
}

func testTrain(id string, available, total int) *model.Train {
	return &model.Train{
		ID:             id,
		Name:           "Rajdhani Mumbai Express",
		Origin:         "Mumbai",
		Destination:    "Delhi",
		BaseFarePaise:  100000,
		TotalSeats:     total,
		AvailableSeats: available,
	}
}

func TestGetTrainNotFound(t *testing.T) {
	svc := NewInventoryService(testConfig(), newMockTrainRepository())

	_, err := svc.GetTrain(context.Background(), "NOPE999")
	if !apperrors.HasCode(err, apperrors.CodeNotFound) {
		t.Errorf("GetTrain() error = %v, want %s", err, apperrors.CodeNotFound)
	}
}

func TestReserveDecrementsAvailability(t *testing.T) {
	repo := newMockTrainRepository(testTrain("MUDE101", 10, 10))
	svc := NewInventoryService(testConfig(), repo)

	if err := svc.Reserve(context.Background(), "MUDE101", 3); err != nil {
		t.Fatalf("Reserve() unexpected error: %v", err)
	}

	if got := repo.trains["MUDE101"].AvailableSeats; got != 7 {
		t.Errorf("available = %d, want 7", got)
	}
}

func TestReserveInsufficientSeats(t *testing.T) {
	repo := newMockTrainRepository(testTrain("MUDE101", 2, 10))
	svc := NewInventoryService(testConfig(), repo)

	err := svc.Reserve(context.Background(), "MUDE101", 5)
	if !apperrors.HasCode(err, apperrors.CodeInsufficientSeats) {
		t.Fatalf("Reserve() error = %v, want %s", err, apperrors.CodeInsufficientSeats)
	}

	// Failed reservation must not touch availability
	if got := repo.trains["MUDE101"].AvailableSeats; got != 2 {
		t.Errorf("available = %d, want 2", got)
	}

	appErr := apperrors.AsAppError(err)
	if appErr.Details["available"] != 2 {
		t.Errorf("error details available = %v, want 2", appErr.Details["available"])
	}
}

func TestReserveRejectsNonPositiveSeats(t *testing.T) {
	svc := NewInventoryService(testConfig(), newMockTrainRepository())

	for _, seats := range []int{0, -1} {
		err := svc.Reserve(context.Background(), "MUDE101", seats)
		if !apperrors.HasCode(err, apperrors.CodeInvalidInput) {
			t.Errorf("Reserve(%d) error = %v, want %s", seats, err, apperrors.CodeInvalidInput)
		}
	}
}

func TestReleaseReturnsSeats(t *testing.T) {
	repo := newMockTrainRepository(testTrain("MUDE101", 5, 10))
	svc := NewInventoryService(testConfig(), repo)

	if err := svc.Release(context.Background(), "MUDE101", 3); err != nil {
		t.Fatalf("Release() unexpected error: %v", err)
	}

	if got := repo.trains["MUDE101"].AvailableSeats; got != 8 {
		t.Errorf("available = %d, want 8", got)
	}
}

func TestReleaseBeyondCapacityIsCorruption(t *testing.T) {
	repo := newMockTrainRepository(testTrain("MUDE101", 9, 10))
	svc := NewInventoryService(testConfig(), repo)

	err := svc.Release(context.Background(), "MUDE101", 2)
	if !apperrors.HasCode(err, apperrors.CodeInventoryCorruption) {
		t.Fatalf("Release() error = %v, want %s", err, apperrors.CodeInventoryCorruption)
	}

	// Aborted release must leave the count untouched
	if got := repo.trains["MUDE101"].AvailableSeats; got != 9 {
		t.Errorf("available = %d, want 9", got)
	}
}

func TestEnsureSeededPopulatesEmptyCatalogue(t *testing.T) {
	repo := newMockTrainRepository()
	svc := NewInventoryService(testConfig(), repo)

	inserted, err := svc.EnsureSeeded(context.Background())
	if err != nil {
		t.Fatalf("EnsureSeeded() unexpected error: %v", err)
	}
	if inserted == 0 {
		t.Fatal("EnsureSeeded() inserted nothing into an empty catalogue")
	}

	// Second run must be a no-op
	again, err := svc.EnsureSeeded(context.Background())
	if err != nil {
		t.Fatalf("EnsureSeeded() second run unexpected error: %v", err)
	}
	if again != 0 {
		t.Errorf("EnsureSeeded() second run inserted %d trains, want 0", again)
	}
}
