// File: database/repository/unavailability/crud.go
package unavailabilityRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"swatbarber/models"
)

func (r *mongoUnavailabilityRepo) Create(ctx context.Context, slot models.UnavailabilitySlot) (*models.UnavailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	if slot.CreatedAt.IsZero() {
		slot.CreatedAt = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, slot); err != nil {
		return nil, fmt.Errorf("failed to insert unavailability slot: %w", err)
	}
	return &slot, nil
}

func (r *mongoUnavailabilityRepo) GetByBarberFrom(ctx context.Context, barberName, fromDate string) ([]models.UnavailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"barberName": barberName,
		"date":       bson.M{"$gte": fromDate},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unavailability for barber %s: %w", barberName, err)
	}
	defer cursor.Close(ctx)

	var slots []models.UnavailabilitySlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding unavailability slots: %w", err)
	}
	return slots, nil
}

func (r *mongoUnavailabilityRepo) GetByBarberAndDate(ctx context.Context, barberName, date string) ([]models.UnavailabilitySlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"barberName": barberName, "date": date})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unavailability for barber %s on %s: %w", barberName, date, err)
	}
	defer cursor.Close(ctx)

	var slots []models.UnavailabilitySlot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding unavailability slots: %w", err)
	}
	return slots, nil
}

func (r *mongoUnavailabilityRepo) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// DeleteBefore removes every record dated strictly before date. Used by the
// nightly purge job.
func (r *mongoUnavailabilityRepo) DeleteBefore(ctx context.Context, date string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"date": bson.M{"$lt": date}})
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired unavailability: %w", err)
	}
	return res.DeletedCount, nil
}
