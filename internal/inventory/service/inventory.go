package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	inventoryerrors "railbook/internal/inventory/errors"
	"railbook/internal/inventory/repository"
	"railbook/internal/inventory/seed"
	"railbook/pkg/config"
	apperrors "railbook/pkg/errors"
	"railbook/pkg/model"
	"time"
)

// Inventory owns the seat pools. All seat movement in the system goes through
// Reserve and Release so the available <= total invariant holds everywhere.
type Inventory interface {
	GetTrain(ctx context.Context, id string) (*model.Train, error)
	ListTrains(ctx context.Context, limit int, offset int64) ([]*model.Train, int64, error)
	Reserve(ctx context.Context, trainID string, seats int) error
	Release(ctx context.Context, trainID string, seats int) error
	EnsureSeeded(ctx context.Context) (int, error)
}

type inventoryService struct {
	cfg  *config.Config
	repo repository.TrainRepository
}

func NewInventoryService(cfg *config.Config, repo repository.TrainRepository) Inventory {
	return &inventoryService{
		cfg:  cfg,
		repo: repo,
	}
}

func (s *inventoryService) GetTrain(ctx context.Context, id string) (*model.Train, error) {
	train, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, inventoryerrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Train", id)
		}
		return nil, apperrors.Internal("Failed to retrieve train", err)
	}

	return train, nil
}

func (s *inventoryService) ListTrains(ctx context.Context, limit int, offset int64) ([]*model.Train, int64, error) {
	limit = config.NormalizePaginationLimit(limit)
	offset = config.NormalizeOffset(offset)

	// Fetch the page and total concurrently
	type countResult struct {
		total int64
		err   error
	}
	countCh := make(chan countResult, 1)
	go func() {
		total, err := s.repo.Count(ctx)
		countCh <- countResult{total: total, err: err}
	}()

	trains, err := s.repo.FindAll(ctx, limit, offset)
	if err != nil {
		<-countCh
		return nil, 0, apperrors.Internal("Failed to list trains", err)
	}

	count := <-countCh
	if count.err != nil {
		return nil, 0, apperrors.Internal("Failed to count trains", count.err)
	}

	return trains, count.total, nil
}

func (s *inventoryService) Reserve(ctx context.Context, trainID string, seats int) error {
	if seats <= 0 {
		return apperrors.InvalidInput("seats to reserve must be positive")
	}

	err := s.repo.Reserve(ctx, trainID, seats)
	if err != nil {
		switch {
		case errors.Is(err, inventoryerrors.ErrNotFound):
			return apperrors.NotFoundWithID("Train", trainID)
		case errors.Is(err, inventoryerrors.ErrInsufficientSeats):
			available := 0
			if train, lookupErr := s.repo.FindByID(ctx, trainID); lookupErr == nil {
				available = train.AvailableSeats
			}
			return apperrors.InsufficientSeats(trainID, seats, available)
		default:
			return apperrors.Internal("Failed to reserve seats", err)
		}
	}

	s.cfg.Log.Info("Seats reserved", "train_id", trainID, "seats", seats)
	return nil
}

func (s *inventoryService) Release(ctx context.Context, trainID string, seats int) error {
	if seats <= 0 {
		return apperrors.InvalidInput("seats to release must be positive")
	}

	err := s.repo.Release(ctx, trainID, seats)
	if err != nil {
		switch {
		case errors.Is(err, inventoryerrors.ErrNotFound):
			return apperrors.NotFoundWithID("Train", trainID)
		case errors.Is(err, inventoryerrors.ErrCorruption):
			return apperrors.InventoryCorruption(trainID,
				fmt.Sprintf("releasing %d seats would exceed total capacity on train %s", seats, trainID))
		default:
			return apperrors.Internal("Failed to release seats", err)
		}
	}

	s.cfg.Log.Info("Seats released", "train_id", trainID, "seats", seats)
	return nil
}

// EnsureSeeded populates the train catalogue when the collection is empty.
// Returns the number of trains inserted, zero when the catalogue already
// exists.
func (s *inventoryService) EnsureSeeded(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, apperrors.Internal("Failed to check train catalogue", err)
	}
	if count > 0 {
		return 0, nil
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	trains := seed.Generate(seed.Params{
		MinFareRupees:     s.cfg.SeedMinFareRupees,
		MaxFareRupees:     s.cfg.SeedMaxFareRupees,
		MinSeats:          s.cfg.SeedMinSeats,
		MaxSeats:          s.cfg.SeedMaxSeats,
		MinTrainsPerRoute: s.cfg.SeedMinTrainsPerRoute,
		MaxTrainsPerRoute: s.cfg.SeedMaxTrainsPerRoute,
	}, rng)

	if err := s.repo.InsertMany(ctx, trains); err != nil {
		return 0, apperrors.Internal("Failed to seed train catalogue", err)
	}

	s.cfg.Log.Info("Train catalogue seeded", "count", len(trains))
	return len(trains), nil
}
