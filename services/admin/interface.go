// File: services/admin/interface.go
package admin

import (
	"context"
	"time"

	appointmentRepo "swatbarber/database/repository/appointment"
	unavailabilityRepo "swatbarber/database/repository/unavailability"
	"swatbarber/models"
	"swatbarber/services/booking"
)

// Roles carried in auth tokens and checked at the service boundary.
const (
	RoleBarber    = "barber"
	RoleAdmin     = "admin"
	RoleDeveloper = "developer"
)

// AdminService exposes the dashboard operations available to an
// authenticated barber or admin.
type AdminService interface {
	ListAppointments(ctx context.Context, role, barberName string) ([]models.Appointment, error)
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
	Dashboard(ctx context.Context, role, barberName, filter string) (*DashboardView, error)
	UpdateStatus(ctx context.Context, id, status string) error
	UpdateFiles(ctx context.Context, id string, upd models.AppointmentFileUpdate) error
	DeleteBooking(ctx context.Context, id string) (int, error)
	ClearAppointments(ctx context.Context, role, barberName string) (int64, error)

	MarkTimeSlots(ctx context.Context, barberName, date string, times []string, reason string) ([]models.UnavailabilitySlot, error)
	MarkWholeDay(ctx context.Context, barberName, date, reason string) (*models.UnavailabilitySlot, error)
	ListUnavailability(ctx context.Context, barberName string) ([]models.UnavailabilitySlot, error)
	ListUnavailabilityForDate(ctx context.Context, barberName, date string) ([]models.UnavailabilitySlot, error)
	RemoveUnavailability(ctx context.Context, id string) error
}

// DashboardView is one tab of the admin dashboard: the filtered appointment
// list plus the tab counters.
type DashboardView struct {
	Appointments []models.Appointment `json:"appointments"`
	Total        int                  `json:"total"`
	TodayCount   int                  `json:"todayCount"`
	PendingCount int                  `json:"pendingCount"`
	DoneCount    int                  `json:"doneCount"`
}

// DefaultAdminService implements AdminService over the appointment and
// unavailability repositories.
type DefaultAdminService struct {
	ApptRepo    appointmentRepo.AppointmentRepository
	UnavailRepo unavailabilityRepo.UnavailabilityRepository
	// Cache is the availability cache; may be nil. Unavailability changes
	// invalidate the affected barber/date entries.
	Cache booking.KVStore
	// Now is injectable for tests; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultAdminService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
