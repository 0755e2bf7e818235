package repository

import (
	"context"
	"fmt"
	ledgererrors "railbook/internal/ledger/errors"
	"railbook/pkg/config"
	"railbook/pkg/model"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	LockCollectionName = "ReservationLocks"
)

// LockRepository provides short-lived advisory locks keyed by resource ID.
// Acquire relies on the unique _id index: whoever inserts first wins, a
// duplicate-key error means somebody else holds the lock. A TTL index on
// expires_at reaps locks orphaned by crashed processes.
type LockRepository interface {
	Acquire(ctx context.Context, resourceID string) error
	Release(ctx context.Context, resourceID string) error
}

type mongoLockRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoLockRepository(cfg *config.Config) LockRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoLockRepository{
		cfg:        cfg,
		collection: db.Collection(LockCollectionName),
	}
}

func (r *mongoLockRepository) Acquire(ctx context.Context, resourceID string) error {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	now := time.Now()
	lock := model.ReservationLock{
		ID:        resourceID,
		ExpiresAt: now.Add(r.cfg.ReservationLockTTL),
		CreatedAt: now,
	}

	_, err := r.collection.InsertOne(ctx, lock)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ledgererrors.ErrLockHeld
		}
		return fmt.Errorf("failed to acquire lock: %w", err)
	}

	return nil
}

func (r *mongoLockRepository) Release(ctx context.Context, resourceID string) error {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": resourceID}); err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}

	return nil
}
