// File: services/admin/unavailability.go
package admin

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"swatbarber/models"
	"swatbarber/services/booking"
	"swatbarber/utils"
)

// MarkTimeSlots records one unavailability entry per given slot label for a
// barber and date.
func (s *DefaultAdminService) MarkTimeSlots(ctx context.Context, barberName, date string, times []string, reason string) ([]models.UnavailabilitySlot, error) {
	if _, ok := models.GetBarberByName(barberName); !ok {
		return nil, ErrUnknownBarber
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, err
	}
	for _, label := range times {
		if !isGridSlot(label) {
			return nil, ErrInvalidSlot
		}
	}

	created := make([]models.UnavailabilitySlot, 0, len(times))
	for _, label := range times {
		slot, err := s.UnavailRepo.Create(ctx, models.UnavailabilitySlot{
			BarberName: barberName,
			Date:       date,
			Time:       label,
			WholeDay:   false,
			Reason:     reason,
		})
		if err != nil {
			return created, err
		}
		created = append(created, *slot)
	}

	booking.InvalidateAvailability(ctx, s.Cache, barberName, date)

	utils.GetLogger().Info("time slots marked unavailable",
		zap.String("barber", barberName),
		zap.String("date", date),
		zap.Int("count", len(created)))
	return created, nil
}

// MarkWholeDay records a whole-day unavailability entry for a barber.
func (s *DefaultAdminService) MarkWholeDay(ctx context.Context, barberName, date, reason string) (*models.UnavailabilitySlot, error) {
	if _, ok := models.GetBarberByName(barberName); !ok {
		return nil, ErrUnknownBarber
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, err
	}

	slot, err := s.UnavailRepo.Create(ctx, models.UnavailabilitySlot{
		BarberName: barberName,
		Date:       date,
		WholeDay:   true,
		Reason:     reason,
	})
	if err != nil {
		return nil, err
	}

	booking.InvalidateAvailability(ctx, s.Cache, barberName, date)

	utils.GetLogger().Info("whole day marked unavailable",
		zap.String("barber", barberName),
		zap.String("date", date))
	return slot, nil
}

// ListUnavailability returns a barber's unavailability from today onwards.
func (s *DefaultAdminService) ListUnavailability(ctx context.Context, barberName string) ([]models.UnavailabilitySlot, error) {
	if _, ok := models.GetBarberByName(barberName); !ok {
		return nil, ErrUnknownBarber
	}
	today := s.now().Format("2006-01-02")
	return s.UnavailRepo.GetByBarberFrom(ctx, barberName, today)
}

// ListUnavailabilityForDate returns a barber's unavailability on one date.
func (s *DefaultAdminService) ListUnavailabilityForDate(ctx context.Context, barberName, date string) ([]models.UnavailabilitySlot, error) {
	if _, ok := models.GetBarberByName(barberName); !ok {
		return nil, ErrUnknownBarber
	}
	return s.UnavailRepo.GetByBarberAndDate(ctx, barberName, date)
}

// RemoveUnavailability deletes one unavailability record.
func (s *DefaultAdminService) RemoveUnavailability(ctx context.Context, id string) error {
	err := s.UnavailRepo.DeleteByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrSlotNotFound
	}
	return err
}

func isGridSlot(label string) bool {
	for _, s := range models.TimeSlots {
		if s == label {
			return true
		}
	}
	return false
}
