// File: services/booking/interface.go
package booking

import (
	"context"
	"time"

	appointmentRepo "swatbarber/database/repository/appointment"
	unavailabilityRepo "swatbarber/database/repository/unavailability"
	"swatbarber/models"
)

// AvailabilityService resolves which grid slots are bookable for a barber on
// a date, and validates a concrete start-time choice against a service
// duration.
type AvailabilityService interface {
	AvailableSlots(ctx context.Context, barberName, date string, durationMinutes int) (*models.AvailabilityResponse, error)
	CheckSlot(ctx context.Context, barberName, date, timeLabel string, durationMinutes int) error
}

// SessionService drives the multi-step booking wizard. Draft state lives in
// Redis until Confirm or Cancel.
type SessionService interface {
	Start(ctx context.Context) (*models.BookingSession, error)
	Get(ctx context.Context, sessionID string) (*models.BookingSession, error)
	SelectBarber(ctx context.Context, sessionID, barberID string) (*models.BookingSession, error)
	SelectService(ctx context.Context, sessionID, serviceID string) (*models.BookingSession, error)
	SelectDateTime(ctx context.Context, sessionID, date, timeLabel string) (*models.BookingSession, error)
	SetCustomer(ctx context.Context, sessionID string, info models.CustomerInfo) (*models.BookingSession, error)
	Confirm(ctx context.Context, sessionID string) (*models.BookingReceipt, error)
	Cancel(ctx context.Context, sessionID string) error
}

// DefaultBookingService implements both AvailabilityService and
// SessionService over the appointment and unavailability repositories.
type DefaultBookingService struct {
	ApptRepo    appointmentRepo.AppointmentRepository
	UnavailRepo unavailabilityRepo.UnavailabilityRepository
	// Sessions holds wizard drafts; Cache holds availability responses.
	// Cache may be nil, in which case availability is always recomputed.
	Sessions KVStore
	Cache    KVStore
	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
