package models

import "testing"

func TestTimeSlotsGrid(t *testing.T) {
	if len(TimeSlots) != 37 {
		t.Fatalf("grid has %d slots, want 37", len(TimeSlots))
	}
	if TimeSlots[0] != "9:00 AM" || TimeSlots[len(TimeSlots)-1] != "9:00 PM" {
		t.Fatalf("grid bounds wrong: %s .. %s", TimeSlots[0], TimeSlots[len(TimeSlots)-1])
	}

	seen := make(map[string]bool, len(TimeSlots))
	for _, s := range TimeSlots {
		if seen[s] {
			t.Fatalf("duplicate slot label %q", s)
		}
		seen[s] = true
	}
}

func TestGetBarberByName(t *testing.T) {
	b, ok := GetBarberByName("Kean")
	if !ok || b.ID != "1" {
		t.Fatalf("Kean lookup failed: %+v %v", b, ok)
	}

	// Lookup is case-insensitive; the roster casing is returned.
	b, ok = GetBarberByName("kean")
	if !ok || b.Name != "Kean" {
		t.Fatalf("case-insensitive lookup failed: %+v %v", b, ok)
	}

	if _, ok := GetBarberByName("Nobody"); ok {
		t.Fatal("unknown barber resolved")
	}
}

func TestGetServiceByID(t *testing.T) {
	s, ok := GetServiceByID("1")
	if !ok || s.Name != "Sharp & Styled" || s.Price != 149 || s.Duration != 20 {
		t.Fatalf("service 1 lookup: %+v %v", s, ok)
	}

	perm, ok := GetServiceByID("3b")
	if !ok || perm.Name != "Korean Perms - Medium Perm" || perm.Price != 950 || perm.Duration != 120 {
		t.Fatalf("variant 3b lookup: %+v %v", perm, ok)
	}

	if _, ok := GetServiceByID("99"); ok {
		t.Fatal("unknown service resolved")
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range ValidStatuses {
		if !IsValidStatus(s) {
			t.Errorf("%q should be valid", s)
		}
	}
	if IsValidStatus("archived") {
		t.Error("archived should not be valid")
	}
}
