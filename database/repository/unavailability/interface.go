// File: database/repository/unavailability/interface.go
package unavailabilityRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"swatbarber/database"
	"swatbarber/models"
)

// UnavailabilityRepository is the persistence contract for barber
// unavailability records.
type UnavailabilityRepository interface {
	EnsureIndexes() error
	Create(ctx context.Context, slot models.UnavailabilitySlot) (*models.UnavailabilitySlot, error)
	GetByBarberFrom(ctx context.Context, barberName, fromDate string) ([]models.UnavailabilitySlot, error)
	GetByBarberAndDate(ctx context.Context, barberName, date string) ([]models.UnavailabilitySlot, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteBefore(ctx context.Context, date string) (int64, error)
}

type mongoUnavailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoUnavailabilityRepo constructs a new MongoDB UnavailabilityRepository.
func NewMongoUnavailabilityRepo() UnavailabilityRepository {
	return &mongoUnavailabilityRepo{
		coll: database.DB().Collection("unavailable_slots"),
	}
}
