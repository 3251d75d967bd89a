package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"swatbarber/models"
	"swatbarber/services/booking"
)

type mockAppointmentRepo struct {
	appts  map[string]models.Appointment
	nextID int
}

func newMockAppointmentRepo() *mockAppointmentRepo {
	return &mockAppointmentRepo{appts: make(map[string]models.Appointment)}
}

func (m *mockAppointmentRepo) add(appt models.Appointment) models.Appointment {
	if appt.ID == "" {
		m.nextID++
		appt.ID = fmt.Sprintf("appt-%d", m.nextID)
	}
	if appt.Status == "" {
		appt.Status = models.StatusPending
	}
	m.appts[appt.ID] = appt
	return appt
}

func (m *mockAppointmentRepo) EnsureIndexes() error { return nil }

func (m *mockAppointmentRepo) Create(_ context.Context, appt models.Appointment) (*models.Appointment, error) {
	created := m.add(appt)
	return &created, nil
}

func (m *mockAppointmentRepo) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	if a, ok := m.appts[id]; ok {
		return &a, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockAppointmentRepo) GetAll(_ context.Context) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range m.appts {
		out = append(out, a)
	}
	return out, nil
}

func (m *mockAppointmentRepo) GetByBarber(_ context.Context, barberName string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range m.appts {
		if a.BarberName == barberName {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAppointmentRepo) GetByBarberAndDate(_ context.Context, barberName, date string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range m.appts {
		if a.BarberName == barberName && a.Date == date {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAppointmentRepo) FindBookingGroup(_ context.Context, appt models.Appointment, baseService string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range m.appts {
		if a.BarberName != appt.BarberName || a.Date != appt.Date ||
			a.CustomerName != appt.CustomerName || a.CustomerPhone != appt.CustomerPhone {
			continue
		}
		if a.Service == baseService || strings.HasPrefix(a.Service, baseService+" (Duration Block ") {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAppointmentRepo) UpdateStatus(_ context.Context, id, status string) error {
	a, ok := m.appts[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	a.Status = status
	m.appts[id] = a
	return nil
}

func (m *mockAppointmentRepo) UpdateFiles(_ context.Context, id string, upd models.AppointmentFileUpdate) error {
	a, ok := m.appts[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	if upd.ReceiptURL != nil {
		a.ReceiptURL = *upd.ReceiptURL
	}
	if upd.NotesURL != nil {
		a.NotesURL = *upd.NotesURL
	}
	if upd.Notes != nil {
		a.Notes = *upd.Notes
	}
	m.appts[id] = a
	return nil
}

func (m *mockAppointmentRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := m.appts[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(m.appts, id)
	return nil
}

func (m *mockAppointmentRepo) DeleteManyByID(_ context.Context, ids []string) (int64, error) {
	var n int64
	for _, id := range ids {
		if _, ok := m.appts[id]; ok {
			delete(m.appts, id)
			n++
		}
	}
	return n, nil
}

func (m *mockAppointmentRepo) DeleteAll(_ context.Context) (int64, error) {
	n := int64(len(m.appts))
	m.appts = make(map[string]models.Appointment)
	return n, nil
}

func (m *mockAppointmentRepo) DeleteByBarber(_ context.Context, barberName string) (int64, error) {
	var n int64
	for id, a := range m.appts {
		if a.BarberName == barberName {
			delete(m.appts, id)
			n++
		}
	}
	return n, nil
}

type mockUnavailabilityRepo struct {
	slots  map[string]models.UnavailabilitySlot
	nextID int
}

func newMockUnavailabilityRepo() *mockUnavailabilityRepo {
	return &mockUnavailabilityRepo{slots: make(map[string]models.UnavailabilitySlot)}
}

func (m *mockUnavailabilityRepo) EnsureIndexes() error { return nil }

func (m *mockUnavailabilityRepo) Create(_ context.Context, slot models.UnavailabilitySlot) (*models.UnavailabilitySlot, error) {
	if slot.ID == "" {
		m.nextID++
		slot.ID = fmt.Sprintf("unavail-%d", m.nextID)
	}
	m.slots[slot.ID] = slot
	return &slot, nil
}

func (m *mockUnavailabilityRepo) GetByBarberFrom(_ context.Context, barberName, fromDate string) ([]models.UnavailabilitySlot, error) {
	var out []models.UnavailabilitySlot
	for _, s := range m.slots {
		if s.BarberName == barberName && s.Date >= fromDate {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockUnavailabilityRepo) GetByBarberAndDate(_ context.Context, barberName, date string) ([]models.UnavailabilitySlot, error) {
	var out []models.UnavailabilitySlot
	for _, s := range m.slots {
		if s.BarberName == barberName && s.Date == date {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockUnavailabilityRepo) DeleteByID(_ context.Context, id string) error {
	if _, ok := m.slots[id]; !ok {
		return mongo.ErrNoDocuments
	}
	delete(m.slots, id)
	return nil
}

func (m *mockUnavailabilityRepo) DeleteBefore(_ context.Context, date string) (int64, error) {
	var n int64
	for id, s := range m.slots {
		if s.Date < date {
			delete(m.slots, id)
			n++
		}
	}
	return n, nil
}

// mockAvailabilityCache is an in-memory booking.KVStore for checking cache
// invalidation.
type mockAvailabilityCache struct {
	data map[string]string
}

func newMockAvailabilityCache() *mockAvailabilityCache {
	return &mockAvailabilityCache{data: make(map[string]string)}
}

func (m *mockAvailabilityCache) Get(_ context.Context, key string) (string, error) {
	if v, ok := m.data[key]; ok {
		return v, nil
	}
	return "", booking.ErrCacheMiss
}

func (m *mockAvailabilityCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	m.data[key] = value
	return nil
}

func (m *mockAvailabilityCache) Del(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

func (m *mockAvailabilityCache) Keys(_ context.Context, pattern string) ([]string, error) {
	prefix := strings.TrimSuffix(pattern, "*")
	var out []string
	for key := range m.data {
		if strings.HasPrefix(key, prefix) {
			out = append(out, key)
		}
	}
	return out, nil
}
