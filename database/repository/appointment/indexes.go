// FILE: database/repository/appointment/indexes.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the appointments collection.
func (r *mongoAppointmentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// Unique index on appointment ID
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Compound index for barberName and date (availability query pattern)
		{
			Keys:    bson.D{{Key: "barberName", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("barber_date_idx"),
		},
		// Compound index for the booking-group cascade query
		{
			Keys: bson.D{
				{Key: "barberName", Value: 1}, {Key: "date", Value: 1},
				{Key: "customerName", Value: 1}, {Key: "customerPhone", Value: 1},
			},
			Options: options.Index().SetName("booking_group_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
