// File: services/booking/confirm.go
package booking

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"swatbarber/models"
	"swatbarber/utils"
)

// BuildBlockAppointments expands a completed wizard draft into the sibling
// appointment records that represent the booking: one per 20-minute block,
// the first carrying the price plus the priority fee and the undecorated
// service name, the rest carrying the duration-block suffix at price zero.
func BuildBlockAppointments(session *models.BookingSession) ([]models.Appointment, error) {
	if session.Barber == nil || session.Service == nil || session.Date == "" ||
		session.Time == "" || session.Customer.Name == "" || session.Customer.Phone == "" {
		return nil, ErrIncompleteBooking
	}

	labels := ExpandDurationBlocks(session.Time, session.Service.Duration)
	if len(labels) == 0 {
		return nil, ErrInvalidSlot
	}

	appts := make([]models.Appointment, len(labels))
	for i, label := range labels {
		price := 0.0
		if i == 0 {
			price = session.Service.Price + models.PriorityFee
		}
		appts[i] = models.Appointment{
			BarberName:    session.Barber.Name,
			CustomerName:  session.Customer.Name,
			CustomerPhone: session.Customer.Phone,
			CustomerEmail: session.Customer.Email,
			Service:       BlockServiceName(session.Service.Name, i+1, len(labels)),
			Date:          session.Date,
			Time:          label,
			Status:        models.StatusPending,
			Price:         price,
		}
	}
	return appts, nil
}

// Confirm finalizes a wizard session: it re-validates the chosen slot, writes
// one appointment record per duration block, and discards the session. The
// block inserts run concurrently; if any insert fails the blocks that did
// land are deleted again so a partial booking never survives.
func (s *DefaultBookingService) Confirm(ctx context.Context, sessionID string) (*models.BookingReceipt, error) {
	logger := utils.GetLogger()

	session, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepConfirm {
		return nil, ErrInvalidStep
	}

	// The slot was checked when selected, but another customer may have taken
	// it while the customer filled in their details.
	if err := s.CheckSlot(ctx, session.Barber.Name, session.Date, session.Time, session.Service.Duration); err != nil {
		return nil, err
	}

	appts, err := BuildBlockAppointments(session)
	if err != nil {
		return nil, err
	}

	type insertResult struct {
		appt *models.Appointment
		err  error
	}
	results := make([]insertResult, len(appts))

	var wg sync.WaitGroup
	for i := range appts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			created, err := s.ApptRepo.Create(ctx, appts[i])
			results[i] = insertResult{appt: created, err: err}
		}(i)
	}
	wg.Wait()

	var inserted []string
	var firstErr error
	for _, res := range results {
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
			}
			continue
		}
		inserted = append(inserted, res.appt.ID)
	}

	if firstErr != nil {
		// Compensate: remove the sibling blocks that did insert so the
		// booking is all-or-nothing at the data layer too.
		if len(inserted) > 0 {
			if _, delErr := s.ApptRepo.DeleteManyByID(ctx, inserted); delErr != nil {
				logger.Error("booking: failed to roll back partial booking",
					zap.Strings("insertedIds", inserted), zap.Error(delErr))
			}
		}
		return nil, fmt.Errorf("failed to create appointment slots: %w", firstErr)
	}

	bookingID := results[0].appt.ID
	session.BookingID = bookingID
	session.Step = models.StepDone

	InvalidateAvailability(ctx, s.Cache, session.Barber.Name, session.Date)

	labels := make([]string, len(results))
	for i, res := range results {
		labels[i] = res.appt.Time
	}

	logger.Info("booking confirmed",
		zap.String("bookingId", bookingID),
		zap.String("barber", session.Barber.Name),
		zap.String("date", session.Date),
		zap.Int("blocks", len(labels)))

	// The draft is done; drop it from Redis. A failure here is harmless, the
	// TTL reaps it.
	if err := s.Cancel(ctx, sessionID); err != nil {
		logger.Warn("booking: failed to drop confirmed session", zap.Error(err))
	}

	return &models.BookingReceipt{
		BookingID:  bookingID,
		BarberName: session.Barber.Name,
		Service:    session.Service.Name,
		Date:       session.Date,
		Time:       session.Time,
		Slots:      labels,
		TotalPrice: session.Service.Price + models.PriorityFee,
		Customer:   session.Customer,
	}, nil
}
