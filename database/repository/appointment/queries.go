// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"swatbarber/models"
)

func (r *mongoAppointmentRepo) GetAll(ctx context.Context) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}

func (r *mongoAppointmentRepo) GetByBarber(ctx context.Context, barberName string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"barberName": barberName}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments for barber %s: %w", barberName, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}

func (r *mongoAppointmentRepo) GetByBarberAndDate(ctx context.Context, barberName, date string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"barberName": barberName, "date": date})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments for barber %s on %s: %w", barberName, date, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding appointments: %w", err)
	}
	return appts, nil
}

// FindBookingGroup returns every appointment belonging to the same booking as
// appt: same barber, date and customer identity, with a service field equal to
// the base service name or the base name followed by a duration-block suffix.
func (r *mongoAppointmentRepo) FindBookingGroup(ctx context.Context, appt models.Appointment, baseService string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	suffixPattern := fmt.Sprintf("^%s \\(Duration Block \\d+ of \\d+\\)$", regexp.QuoteMeta(baseService))
	filter := bson.M{
		"barberName":    appt.BarberName,
		"date":          appt.Date,
		"customerName":  appt.CustomerName,
		"customerPhone": appt.CustomerPhone,
		"$or": bson.A{
			bson.M{"service": baseService},
			bson.M{"service": bson.M{"$regex": primitive.Regex{Pattern: suffixPattern}}},
		},
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking group: %w", err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("error decoding booking group: %w", err)
	}
	return appts, nil
}
