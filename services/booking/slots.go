// File: services/booking/slots.go
package booking

import (
	"fmt"
	"time"

	"swatbarber/models"
)

// SlotIndex returns the position of a slot label in the fixed grid, or -1 if
// the label is not a valid slot.
func SlotIndex(label string) int {
	for i, s := range models.TimeSlots {
		if s == label {
			return i
		}
	}
	return -1
}

// BlocksNeeded returns how many 20-minute blocks a service duration occupies.
func BlocksNeeded(durationMinutes int) int {
	if durationMinutes <= models.SlotMinutes {
		return 1
	}
	return (durationMinutes + models.SlotMinutes - 1) / models.SlotMinutes
}

// ExpandDurationBlocks produces the ordered sequence of consecutive slot
// labels a booking occupies, starting at startLabel. If the grid runs out
// before the required count the sequence is truncated; there is no wraparound
// into the next day.
func ExpandDurationBlocks(startLabel string, durationMinutes int) []string {
	idx := SlotIndex(startLabel)
	if idx < 0 {
		return nil
	}
	n := BlocksNeeded(durationMinutes)
	end := idx + n
	if end > len(models.TimeSlots) {
		end = len(models.TimeSlots)
	}
	out := make([]string, end-idx)
	copy(out, models.TimeSlots[idx:end])
	return out
}

// ParseSlotLabel converts a slot label such as "2:20 PM" into a time on the
// given date, in the date's location.
func ParseSlotLabel(label string, date time.Time) (time.Time, error) {
	t, err := time.ParseInLocation("3:04 PM", label, date.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid slot label %q: %w", label, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}

// IsSlotPast reports whether a slot on the given date has already started
// relative to now. Only meaningful when date is today; callers gate on that.
func IsSlotPast(label string, date, now time.Time) bool {
	slotTime, err := ParseSlotLabel(label, date)
	if err != nil {
		return false
	}
	return slotTime.Before(now)
}

// BlockServiceName decorates a service name for duration block k (1-based) of
// total. The first block keeps the undecorated name.
func BlockServiceName(service string, k, total int) string {
	if k <= 1 || total <= 1 {
		return service
	}
	return fmt.Sprintf("%s (Duration Block %d of %d)", service, k, total)
}
