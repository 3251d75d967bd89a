package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"swatbarber/models"
)

func fixedNow() time.Time {
	// A Friday morning, well inside business hours.
	return time.Date(2026, 9, 4, 8, 0, 0, 0, time.UTC)
}

func setupBookingService() (*DefaultBookingService, *mockAppointmentRepo, *mockUnavailabilityRepo) {
	apptRepo := newMockAppointmentRepo()
	unavailRepo := newMockUnavailabilityRepo()
	svc := &DefaultBookingService{
		ApptRepo:    apptRepo,
		UnavailRepo: unavailRepo,
		Sessions:    newMockKVStore(),
		Now:         fixedNow,
	}
	return svc, apptRepo, unavailRepo
}

func TestAvailableSlots_AllFree(t *testing.T) {
	svc, _, _ := setupBookingService()

	resp, err := svc.AvailableSlots(context.Background(), "Kean", "2026-09-05", 0)
	if err != nil {
		t.Fatalf("AvailableSlots failed: %v", err)
	}
	if len(resp.Available) != len(models.TimeSlots) {
		t.Fatalf("expected all %d slots available, got %d", len(models.TimeSlots), len(resp.Available))
	}
	if resp.WholeDay {
		t.Error("whole day should not be flagged")
	}
}

func TestAvailableSlots_ExcludesBooked(t *testing.T) {
	svc, apptRepo, _ := setupBookingService()
	apptRepo.Create(context.Background(), models.Appointment{
		BarberName: "Kean", Date: "2026-09-05", Time: "10:00 AM", Status: models.StatusPending,
	})
	apptRepo.Create(context.Background(), models.Appointment{
		BarberName: "Kean", Date: "2026-09-05", Time: "11:00 AM", Status: models.StatusCancelled,
	})

	resp, err := svc.AvailableSlots(context.Background(), "Kean", "2026-09-05", 0)
	if err != nil {
		t.Fatalf("AvailableSlots failed: %v", err)
	}
	for _, slot := range resp.Slots {
		switch slot.Time {
		case "10:00 AM":
			if slot.Available || slot.Reason != "booked" {
				t.Errorf("10:00 AM should be booked, got %+v", slot)
			}
		case "11:00 AM":
			// Cancelled appointments free the slot again.
			if !slot.Available {
				t.Errorf("11:00 AM should be available, got %+v", slot)
			}
		}
	}
}

func TestAvailableSlots_WholeDayUnavailable(t *testing.T) {
	svc, _, unavailRepo := setupBookingService()
	unavailRepo.Create(context.Background(), models.UnavailabilitySlot{
		BarberName: "Pao", Date: "2026-09-05", WholeDay: true, Reason: "vacation",
	})

	resp, err := svc.AvailableSlots(context.Background(), "Pao", "2026-09-05", 0)
	if err != nil {
		t.Fatalf("AvailableSlots failed: %v", err)
	}
	if !resp.WholeDay {
		t.Error("whole day flag should be set")
	}
	if len(resp.Available) != 0 {
		t.Fatalf("expected no available slots, got %d", len(resp.Available))
	}
}

func TestAvailableSlots_PastSlotsToday(t *testing.T) {
	svc, _, _ := setupBookingService()

	// fixedNow is 8:00 AM on 2026-09-04; every slot is still ahead.
	resp, err := svc.AvailableSlots(context.Background(), "Kean", "2026-09-04", 0)
	if err != nil {
		t.Fatalf("AvailableSlots failed: %v", err)
	}
	if len(resp.Available) != len(models.TimeSlots) {
		t.Fatalf("expected all slots available at 8:00 AM, got %d", len(resp.Available))
	}

	svc.Now = func() time.Time {
		return time.Date(2026, 9, 4, 12, 10, 0, 0, time.UTC)
	}
	resp, err = svc.AvailableSlots(context.Background(), "Kean", "2026-09-04", 0)
	if err != nil {
		t.Fatalf("AvailableSlots failed: %v", err)
	}
	for _, slot := range resp.Slots {
		if slot.Time == "9:00 AM" && (slot.Available || slot.Reason != "past") {
			t.Errorf("9:00 AM should be past, got %+v", slot)
		}
		if slot.Time == "12:20 PM" && !slot.Available {
			t.Errorf("12:20 PM should still be available, got %+v", slot)
		}
	}
}

func TestAvailableSlots_DurationConflict(t *testing.T) {
	svc, apptRepo, _ := setupBookingService()
	apptRepo.Create(context.Background(), models.Appointment{
		BarberName: "Gelo", Date: "2026-09-05", Time: "11:00 AM", Status: models.StatusConfirmed,
	})

	// 120 minutes needs 6 consecutive blocks; any start from 9:20 AM onward
	// would run into the 11:00 AM booking.
	resp, err := svc.AvailableSlots(context.Background(), "Gelo", "2026-09-05", 120)
	if err != nil {
		t.Fatalf("AvailableSlots failed: %v", err)
	}
	byTime := make(map[string]models.SlotStatus)
	for _, slot := range resp.Slots {
		byTime[slot.Time] = slot
	}

	if s := byTime["9:00 AM"]; !s.Available {
		t.Errorf("9:00 AM fits before the booking, got %+v", s)
	}
	if s := byTime["9:20 AM"]; s.Available || s.Reason != "conflict" {
		t.Errorf("9:20 AM should conflict with the 11:00 AM booking, got %+v", s)
	}
	if s := byTime["11:20 AM"]; !s.Available {
		t.Errorf("11:20 AM starts clear of the booking, got %+v", s)
	}
	// The last slots cannot fit 6 blocks before the grid ends.
	if s := byTime["8:20 PM"]; s.Available || s.Reason != "conflict" {
		t.Errorf("8:20 PM cannot fit a 120-minute service, got %+v", s)
	}
}

func TestAvailableSlots_FailsOpenOnFetchError(t *testing.T) {
	svc, apptRepo, _ := setupBookingService()
	apptRepo.fetchFn = func() error { return errFetchFailed }

	resp, err := svc.AvailableSlots(context.Background(), "Kean", "2026-09-05", 0)
	if err != nil {
		t.Fatalf("fetch errors should not surface: %v", err)
	}
	if len(resp.Available) != len(models.TimeSlots) {
		t.Fatalf("expected fail-open full grid, got %d slots", len(resp.Available))
	}
}

func TestAvailableSlots_UnknownBarber(t *testing.T) {
	svc, _, _ := setupBookingService()
	if _, err := svc.AvailableSlots(context.Background(), "Nobody", "2026-09-05", 0); !errors.Is(err, ErrUnknownBarber) {
		t.Fatalf("expected ErrUnknownBarber, got %v", err)
	}
}

func TestCheckSlot(t *testing.T) {
	svc, apptRepo, unavailRepo := setupBookingService()
	ctx := context.Background()

	apptRepo.Create(ctx, models.Appointment{
		BarberName: "Kean", Date: "2026-09-05", Time: "10:00 AM", Status: models.StatusPending,
	})
	unavailRepo.Create(ctx, models.UnavailabilitySlot{
		BarberName: "Kean", Date: "2026-09-05", Time: "3:00 PM",
	})

	cases := []struct {
		name    string
		barber  string
		date    string
		time    string
		dur     int
		wantErr error
	}{
		{"free slot", "Kean", "2026-09-05", "9:00 AM", 20, nil},
		{"booked slot", "Kean", "2026-09-05", "10:00 AM", 20, ErrSlotTaken},
		{"unavailable slot", "Kean", "2026-09-05", "3:00 PM", 20, ErrSlotTaken},
		{"duration runs into booking", "Kean", "2026-09-05", "9:40 AM", 30, ErrDurationConflict},
		{"off-grid label", "Kean", "2026-09-05", "9:10 AM", 20, ErrInvalidSlot},
		{"unknown barber", "Nobody", "2026-09-05", "9:00 AM", 20, ErrUnknownBarber},
		{"date in the past", "Kean", "2026-09-03", "9:00 AM", 20, ErrOutsideWindow},
		{"date beyond window", "Kean", "2026-09-25", "9:00 AM", 20, ErrOutsideWindow},
		{"window boundary", "Kean", "2026-09-19", "9:00 AM", 20, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := svc.CheckSlot(ctx, c.barber, c.date, c.time, c.dur)
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("CheckSlot = %v, want %v", err, c.wantErr)
			}
		})
	}
}

func TestCheckSlot_WholeDay(t *testing.T) {
	svc, _, unavailRepo := setupBookingService()
	ctx := context.Background()
	unavailRepo.Create(ctx, models.UnavailabilitySlot{
		BarberName: "Pao", Date: "2026-09-05", WholeDay: true,
	})

	if err := svc.CheckSlot(ctx, "Pao", "2026-09-05", "9:00 AM", 20); !errors.Is(err, ErrDayUnavailable) {
		t.Fatalf("expected ErrDayUnavailable, got %v", err)
	}
}

func TestCheckSlot_PastToday(t *testing.T) {
	svc, _, _ := setupBookingService()
	svc.Now = func() time.Time {
		return time.Date(2026, 9, 4, 12, 10, 0, 0, time.UTC)
	}

	if err := svc.CheckSlot(context.Background(), "Kean", "2026-09-04", "9:00 AM", 20); !errors.Is(err, ErrPastTime) {
		t.Fatalf("expected ErrPastTime, got %v", err)
	}
	if err := svc.CheckSlot(context.Background(), "Kean", "2026-09-04", "1:00 PM", 20); err != nil {
		t.Fatalf("future slot today should pass, got %v", err)
	}
}

func TestAvailableSlots_CachesFutureDates(t *testing.T) {
	svc, apptRepo, _ := setupBookingService()
	svc.Cache = newMockKVStore()

	fetches := 0
	apptRepo.fetchFn = func() error {
		fetches++
		return nil
	}

	for i := 0; i < 3; i++ {
		if _, err := svc.AvailableSlots(context.Background(), "Kean", "2026-09-05", 0); err != nil {
			t.Fatalf("AvailableSlots failed: %v", err)
		}
	}
	if fetches != 1 {
		t.Errorf("repo fetched %d times, want 1 (cached after the first call)", fetches)
	}

	// A different duration is a different cache entry.
	if _, err := svc.AvailableSlots(context.Background(), "Kean", "2026-09-05", 120); err != nil {
		t.Fatalf("AvailableSlots failed: %v", err)
	}
	if fetches != 2 {
		t.Errorf("repo fetched %d times, want 2 after a new duration", fetches)
	}
}

func TestAvailableSlots_NeverCachesToday(t *testing.T) {
	svc, apptRepo, _ := setupBookingService()
	svc.Cache = newMockKVStore()

	fetches := 0
	apptRepo.fetchFn = func() error {
		fetches++
		return nil
	}

	today := fixedNow().Format("2006-01-02")
	for i := 0; i < 2; i++ {
		if _, err := svc.AvailableSlots(context.Background(), "Kean", today, 0); err != nil {
			t.Fatalf("AvailableSlots failed: %v", err)
		}
	}
	if fetches != 2 {
		t.Errorf("repo fetched %d times, want 2 (today is recomputed every call)", fetches)
	}
}

func TestInvalidateAvailability_DropsBarberDateEntries(t *testing.T) {
	svc, apptRepo, _ := setupBookingService()
	store := newMockKVStore()
	svc.Cache = store

	fetches := 0
	apptRepo.fetchFn = func() error {
		fetches++
		return nil
	}

	if _, err := svc.AvailableSlots(context.Background(), "Kean", "2026-09-05", 0); err != nil {
		t.Fatalf("AvailableSlots failed: %v", err)
	}
	if _, err := svc.AvailableSlots(context.Background(), "Pao", "2026-09-05", 0); err != nil {
		t.Fatalf("AvailableSlots failed: %v", err)
	}

	InvalidateAvailability(context.Background(), store, "Kean", "2026-09-05")

	if _, err := svc.AvailableSlots(context.Background(), "Kean", "2026-09-05", 0); err != nil {
		t.Fatalf("AvailableSlots failed: %v", err)
	}
	if fetches != 3 {
		t.Errorf("repo fetched %d times, want 3 (Kean recomputed after invalidation)", fetches)
	}

	// Pao's entry survived the invalidation.
	if _, err := svc.AvailableSlots(context.Background(), "Pao", "2026-09-05", 0); err != nil {
		t.Fatalf("AvailableSlots failed: %v", err)
	}
	if fetches != 3 {
		t.Errorf("repo fetched %d times, want 3 (other barber stays cached)", fetches)
	}
}
