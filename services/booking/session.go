// File: services/booking/session.go
package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"swatbarber/models"
)

const (
	sessionPrefix = "bookingSession:"
	// SessionTTL bounds how long an abandoned wizard draft survives.
	SessionTTL = 30 * time.Minute
)

func (s *DefaultBookingService) saveSession(ctx context.Context, session *models.BookingSession) error {
	session.LastUpdatedAt = s.now()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Sessions.Set(ctx, sessionPrefix+session.SessionID, string(data), SessionTTL); err != nil {
		return fmt.Errorf("failed to save booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingService) loadSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Sessions.Get(ctx, sessionPrefix+sessionID)
	if errors.Is(err, ErrCacheMiss) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking session: %w", err)
	}
	return &session, nil
}

// Start opens a fresh wizard session at the barber-selection step.
func (s *DefaultBookingService) Start(ctx context.Context) (*models.BookingSession, error) {
	session := &models.BookingSession{
		SessionID: uuid.New().String(),
		Step:      models.StepBarber,
		CreatedAt: s.now(),
	}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get returns the current state of a wizard session.
func (s *DefaultBookingService) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.loadSession(ctx, sessionID)
}

// SelectBarber records the chosen barber and advances to service selection.
func (s *DefaultBookingService) SelectBarber(ctx context.Context, sessionID, barberID string) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var barber *models.Barber
	for i := range models.Barbers {
		if models.Barbers[i].ID == barberID || models.Barbers[i].Name == barberID {
			barber = &models.Barbers[i]
			break
		}
	}
	if barber == nil {
		return nil, ErrUnknownBarber
	}

	session.Barber = barber
	// Changing barber invalidates any previously chosen time.
	session.Date = ""
	session.Time = ""
	session.Step = models.StepService
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectService records the chosen service and advances to date/time
// selection.
func (s *DefaultBookingService) SelectService(ctx context.Context, sessionID, serviceID string) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Barber == nil {
		return nil, ErrInvalidStep
	}

	svc, ok := models.GetServiceByID(serviceID)
	if !ok {
		return nil, ErrUnknownService
	}

	session.Service = &svc
	session.Date = ""
	session.Time = ""
	session.Step = models.StepDateTime
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectDateTime records the chosen date and start time after validating the
// slot against current bookings, unavailability and the service duration.
func (s *DefaultBookingService) SelectDateTime(ctx context.Context, sessionID, date, timeLabel string) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Barber == nil || session.Service == nil {
		return nil, ErrInvalidStep
	}

	if err := s.CheckSlot(ctx, session.Barber.Name, date, timeLabel, session.Service.Duration); err != nil {
		return nil, err
	}

	session.Date = date
	session.Time = timeLabel
	session.Step = models.StepCustomer
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SetCustomer records customer contact details and advances to confirmation.
func (s *DefaultBookingService) SetCustomer(ctx context.Context, sessionID string, info models.CustomerInfo) (*models.BookingSession, error) {
	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Barber == nil || session.Service == nil || session.Date == "" || session.Time == "" {
		return nil, ErrInvalidStep
	}

	info.Name = strings.TrimSpace(info.Name)
	info.Phone = strings.TrimSpace(info.Phone)
	info.Email = strings.TrimSpace(info.Email)
	if info.Name == "" || info.Phone == "" {
		return nil, ErrIncompleteBooking
	}

	session.Customer = info
	session.Step = models.StepConfirm
	if err := s.saveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Cancel discards a wizard session.
func (s *DefaultBookingService) Cancel(ctx context.Context, sessionID string) error {
	return s.Sessions.Del(ctx, sessionPrefix+sessionID)
}
