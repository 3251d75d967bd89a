// File: services/booking/availability.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"swatbarber/models"
	"swatbarber/utils"
)

const (
	availabilityCachePrefix = "availability:"
	availabilityCacheTTL    = time.Minute
)

func availabilityCacheKey(barberName, date string, durationMinutes int) string {
	return fmt.Sprintf("%s%s:%s:%d", availabilityCachePrefix, barberName, date, durationMinutes)
}

// InvalidateAvailability drops every cached availability response for a
// barber/date, across all service durations. Called whenever a booking or an
// unavailability change alters that day's picture. A nil store is a no-op.
func InvalidateAvailability(ctx context.Context, store KVStore, barberName, date string) {
	if store == nil {
		return
	}
	logger := utils.GetLogger()
	keys, err := store.Keys(ctx, availabilityCachePrefix+barberName+":"+date+":*")
	if err != nil {
		logger.Warn("availability: cache key scan failed",
			zap.String("barber", barberName), zap.String("date", date), zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := store.Del(ctx, keys...); err != nil {
		logger.Warn("availability: cache invalidation failed",
			zap.String("barber", barberName), zap.String("date", date), zap.Error(err))
	}
}

// dayRestrictions is the per-barber, per-date picture availability is
// computed against.
type dayRestrictions struct {
	booked      map[string]bool
	unavailable map[string]bool
	wholeDay    bool
}

// loadRestrictions fetches booked and barber-unavailable times for a
// barber/date. Fetch failures fail open: the failing source contributes no
// restrictions and the error is logged.
func (s *DefaultBookingService) loadRestrictions(ctx context.Context, barberName, date string) dayRestrictions {
	logger := utils.GetLogger()
	res := dayRestrictions{
		booked:      make(map[string]bool),
		unavailable: make(map[string]bool),
	}

	appts, err := s.ApptRepo.GetByBarberAndDate(ctx, barberName, date)
	if err != nil {
		logger.Error("availability: failed to fetch appointments, failing open",
			zap.String("barber", barberName), zap.String("date", date), zap.Error(err))
	} else {
		for _, appt := range appts {
			if appt.Status != models.StatusCancelled {
				res.booked[appt.Time] = true
			}
		}
	}

	slots, err := s.UnavailRepo.GetByBarberAndDate(ctx, barberName, date)
	if err != nil {
		logger.Error("availability: failed to fetch unavailability, failing open",
			zap.String("barber", barberName), zap.String("date", date), zap.Error(err))
	} else {
		for _, slot := range slots {
			if slot.WholeDay {
				res.wholeDay = true
			} else if slot.Time != "" {
				res.unavailable[slot.Time] = true
			}
		}
	}

	return res
}

// AvailableSlots computes the bookable subset of the slot grid for a barber
// and date. When durationMinutes > 0, start times whose duration blocks would
// collide with a later booked/unavailable slot (or run off the grid) are
// reported as conflicts.
func (s *DefaultBookingService) AvailableSlots(ctx context.Context, barberName, date string, durationMinutes int) (*models.AvailabilityResponse, error) {
	if _, ok := models.GetBarberByName(barberName); !ok {
		return nil, ErrUnknownBarber
	}
	day, err := time.ParseInLocation("2006-01-02", date, s.now().Location())
	if err != nil {
		return nil, ErrOutsideWindow
	}

	now := s.now()
	isToday := day.Year() == now.Year() && day.YearDay() == now.YearDay()

	// Today's grid shifts as slots pass, so only other dates are cached.
	cacheable := s.Cache != nil && !isToday
	cacheKey := availabilityCacheKey(barberName, date, durationMinutes)
	if cacheable {
		if cached, err := s.Cache.Get(ctx, cacheKey); err == nil {
			var resp models.AvailabilityResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
		}
	}

	restr := s.loadRestrictions(ctx, barberName, date)

	resp := &models.AvailabilityResponse{
		BarberName: barberName,
		Date:       date,
		WholeDay:   restr.wholeDay,
		Slots:      make([]models.SlotStatus, 0, len(models.TimeSlots)),
	}

	for _, label := range models.TimeSlots {
		status := models.SlotStatus{Time: label, Available: true}
		switch {
		case restr.wholeDay || restr.unavailable[label]:
			status.Available = false
			status.Reason = "unavailable"
		case restr.booked[label]:
			status.Available = false
			status.Reason = "booked"
		case isToday && IsSlotPast(label, day, now):
			status.Available = false
			status.Reason = "past"
		case durationMinutes > 0 && s.hasDurationConflict(label, durationMinutes, restr):
			status.Available = false
			status.Reason = "conflict"
		}
		if status.Available {
			resp.Available = append(resp.Available, label)
		}
		resp.Slots = append(resp.Slots, status)
	}

	if cacheable {
		if data, err := json.Marshal(resp); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, string(data), availabilityCacheTTL); err != nil {
				utils.GetLogger().Warn("availability: cache write failed",
					zap.String("barber", barberName), zap.String("date", date), zap.Error(err))
			}
		}
	}

	return resp, nil
}

// hasDurationConflict reports whether booking durationMinutes starting at
// startLabel would overlap a later booked or unavailable slot, or run off the
// end of the grid.
func (s *DefaultBookingService) hasDurationConflict(startLabel string, durationMinutes int, restr dayRestrictions) bool {
	idx := SlotIndex(startLabel)
	if idx < 0 {
		return true
	}
	n := BlocksNeeded(durationMinutes)
	if idx+n > len(models.TimeSlots) {
		return true
	}
	for _, label := range models.TimeSlots[idx+1 : idx+n] {
		if restr.booked[label] || restr.unavailable[label] {
			return true
		}
	}
	return false
}

// CheckSlot validates a concrete start-time choice for a barber, date and
// service duration. Returns nil when the slot is bookable.
func (s *DefaultBookingService) CheckSlot(ctx context.Context, barberName, date, timeLabel string, durationMinutes int) error {
	if _, ok := models.GetBarberByName(barberName); !ok {
		return ErrUnknownBarber
	}
	if SlotIndex(timeLabel) < 0 {
		return ErrInvalidSlot
	}
	day, err := time.ParseInLocation("2006-01-02", date, s.now().Location())
	if err != nil {
		return ErrOutsideWindow
	}
	if err := s.checkWindow(day); err != nil {
		return err
	}

	restr := s.loadRestrictions(ctx, barberName, date)
	if restr.wholeDay {
		return ErrDayUnavailable
	}
	if restr.booked[timeLabel] || restr.unavailable[timeLabel] {
		return ErrSlotTaken
	}

	now := s.now()
	if day.Year() == now.Year() && day.YearDay() == now.YearDay() && IsSlotPast(timeLabel, day, now) {
		return ErrPastTime
	}

	if durationMinutes > 0 && s.hasDurationConflict(timeLabel, durationMinutes, restr) {
		return ErrDurationConflict
	}
	return nil
}

// checkWindow enforces the advance booking window: today through today plus
// BookingWindowDays.
func (s *DefaultBookingService) checkWindow(day time.Time) error {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return ErrOutsideWindow
	}
	if day.After(today.AddDate(0, 0, models.BookingWindowDays)) {
		return ErrOutsideWindow
	}
	return nil
}
