package repository

import (
	"context"
	"errors"
	"fmt"
	inventoryerrors "railbook/internal/inventory/errors"
	"railbook/pkg/config"
	"railbook/pkg/model"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	CollectionName = "Trains"
)

type mongoTrainRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

type TrainRepository interface {
	FindByID(ctx context.Context, id string) (*model.Train, error)
	FindAll(ctx context.Context, limit int, offset int64) ([]*model.Train, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, trains []*model.Train) error
	Reserve(ctx context.Context, id string, seats int) error
	Release(ctx context.Context, id string, seats int) error
}

func NewMongoTrainRepository(cfg *config.Config) TrainRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoTrainRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoTrainRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		// Inside a transaction - cannot wrap SessionContext
		return ctx, func() {}
	}

	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, timeout)
}

func (r *mongoTrainRepository) FindByID(ctx context.Context, id string) (*model.Train, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var train model.Train
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&train)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, inventoryerrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find train: %w", err)
	}

	return &train, nil
}

func (r *mongoTrainRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Train, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(int64(limit)).
		SetSkip(offset)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find trains: %w", err)
	}
	defer cursor.Close(ctx)

	var trains []*model.Train
	if err = cursor.All(ctx, &trains); err != nil {
		return nil, fmt.Errorf("failed to decode trains: %w", err)
	}

	return trains, nil
}

func (r *mongoTrainRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count trains: %w", err)
	}

	return count, nil
}

func (r *mongoTrainRepository) InsertMany(ctx context.Context, trains []*model.Train) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	docs := make([]any, 0, len(trains))
	for _, train := range trains {
		docs = append(docs, train)
	}

	if _, err := r.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert trains: %w", err)
	}

	return nil
}

// Reserve atomically decrements available seats. The guard in the filter is
// what makes concurrent over-booking impossible: the decrement only matches
// while available >= seats.
func (r *mongoTrainRepository) Reserve(ctx context.Context, id string, seats int) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	filter := bson.M{
		"_id":             id,
		"available_seats": bson.M{"$gte": seats},
	}
	update := bson.M{"$inc": bson.M{"available_seats": -seats}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to reserve seats: %w", err)
	}

	if result.MatchedCount == 0 {
		if _, err := r.FindByID(ctx, id); err != nil {
			return err
		}
		return inventoryerrors.ErrInsufficientSeats
	}

	return nil
}

// Release atomically increments available seats, guarded so available can
// never exceed total. A matched-zero on an existing train means the caller's
// bookkeeping is wrong; the operation aborts without mutating anything.
func (r *mongoTrainRepository) Release(ctx context.Context, id string, seats int) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	filter := bson.M{
		"_id": id,
		"$expr": bson.M{
			"$lte": bson.A{
				bson.M{"$add": bson.A{"$available_seats", seats}},
				"$total_seats",
			},
		},
	}
	update := bson.M{"$inc": bson.M{"available_seats": seats}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to release seats: %w", err)
	}

	if result.MatchedCount == 0 {
		if _, err := r.FindByID(ctx, id); err != nil {
			return err
		}
		return inventoryerrors.ErrCorruption
	}

	return nil
}
