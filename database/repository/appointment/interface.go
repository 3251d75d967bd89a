// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"swatbarber/database"
	"swatbarber/models"
)

// AppointmentRepository is the persistence contract for appointment records.
type AppointmentRepository interface {
	EnsureIndexes() error
	Create(ctx context.Context, appt models.Appointment) (*models.Appointment, error)
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	GetAll(ctx context.Context) ([]models.Appointment, error)
	GetByBarber(ctx context.Context, barberName string) ([]models.Appointment, error)
	GetByBarberAndDate(ctx context.Context, barberName, date string) ([]models.Appointment, error)
	FindBookingGroup(ctx context.Context, appt models.Appointment, baseService string) ([]models.Appointment, error)
	UpdateStatus(ctx context.Context, id, status string) error
	UpdateFiles(ctx context.Context, id string, upd models.AppointmentFileUpdate) error
	DeleteByID(ctx context.Context, id string) error
	DeleteManyByID(ctx context.Context, ids []string) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
	DeleteByBarber(ctx context.Context, barberName string) (int64, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}
