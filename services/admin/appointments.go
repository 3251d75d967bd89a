// File: services/admin/appointments.go
package admin

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"swatbarber/models"
	"swatbarber/services/booking"
	"swatbarber/utils"
)

// durationBlockSuffix matches the decoration appended to non-first blocks of
// a multi-slot booking.
var durationBlockSuffix = regexp.MustCompile(` \(Duration Block \d+ of \d+\)$`)

// BaseServiceName strips the duration-block suffix, if any, returning the
// undecorated service name shared by every block of a booking.
func BaseServiceName(service string) string {
	return durationBlockSuffix.ReplaceAllString(service, "")
}

// IsDurationBlock reports whether an appointment is a non-first block of a
// multi-slot booking.
func IsDurationBlock(appt models.Appointment) bool {
	return strings.Contains(appt.Service, "(Duration Block")
}

// ListAppointments returns every appointment visible to the caller: all of
// them for admins, only their own for barbers.
func (s *DefaultAdminService) ListAppointments(ctx context.Context, role, barberName string) ([]models.Appointment, error) {
	if role == RoleAdmin {
		return s.ApptRepo.GetAll(ctx)
	}
	if _, ok := models.GetBarberByName(barberName); !ok {
		return nil, ErrUnknownBarber
	}
	return s.ApptRepo.GetByBarber(ctx, barberName)
}

// GetAppointment returns one appointment by id.
func (s *DefaultAdminService) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.ApptRepo.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrAppointmentNotFound
	}
	return appt, err
}

// Dashboard returns one filtered tab of the dashboard plus the tab counters.
// Valid filters: "all", "today", "pending", "completed".
func (s *DefaultAdminService) Dashboard(ctx context.Context, role, barberName, filter string) (*DashboardView, error) {
	appts, err := s.ListAppointments(ctx, role, barberName)
	if err != nil {
		return nil, err
	}

	today := s.now().Format("2006-01-02")
	main := make([]models.Appointment, 0, len(appts))
	for _, appt := range appts {
		if !IsDurationBlock(appt) {
			main = append(main, appt)
		}
	}

	view := &DashboardView{
		Appointments: FilterDashboard(main, filter, today),
		Total:        len(main),
	}
	for _, appt := range main {
		switch {
		case appt.Status == models.StatusPending && appt.Date == today:
			view.TodayCount++
			view.PendingCount++
		case appt.Status == models.StatusPending:
			view.PendingCount++
		case appt.Status == models.StatusCompleted:
			view.DoneCount++
		}
	}
	return view, nil
}

// FilterDashboard applies a dashboard tab filter to a list of main (non
// duration-block) appointments and sorts the result by date, then slot time.
func FilterDashboard(main []models.Appointment, filter, today string) []models.Appointment {
	var filtered []models.Appointment
	for _, appt := range main {
		switch filter {
		case "today":
			if appt.Date == today && appt.Status == models.StatusPending {
				filtered = append(filtered, appt)
			}
		case "pending":
			if appt.Status == models.StatusPending {
				filtered = append(filtered, appt)
			}
		case "completed":
			if appt.Status == models.StatusCompleted {
				filtered = append(filtered, appt)
			}
		default:
			filtered = append(filtered, appt)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Date != filtered[j].Date {
			return filtered[i].Date < filtered[j].Date
		}
		return slotOrder(filtered[i].Time) < slotOrder(filtered[j].Time)
	})
	return filtered
}

// slotOrder maps a slot label to its grid position so same-day appointments
// sort chronologically. Unknown labels sort last.
func slotOrder(label string) int {
	for i, s := range models.TimeSlots {
		if s == label {
			return i
		}
	}
	return len(models.TimeSlots)
}

// UpdateStatus sets the status of one appointment. Any of the four values may
// be set from any other.
func (s *DefaultAdminService) UpdateStatus(ctx context.Context, id, status string) error {
	if !models.IsValidStatus(status) {
		return ErrInvalidStatus
	}
	err := s.ApptRepo.UpdateStatus(ctx, id, status)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrAppointmentNotFound
	}
	return err
}

// UpdateFiles attaches receipt/notes file URLs or free-text notes to an
// appointment.
func (s *DefaultAdminService) UpdateFiles(ctx context.Context, id string, upd models.AppointmentFileUpdate) error {
	err := s.ApptRepo.UpdateFiles(ctx, id, upd)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrAppointmentNotFound
	}
	return err
}

// DeleteBooking removes an appointment together with every duration-block
// sibling belonging to the same booking, returning how many records were
// deleted. Siblings are matched by barber, date, customer name and phone, and
// the base service name; if none are found the single record is deleted.
func (s *DefaultAdminService) DeleteBooking(ctx context.Context, id string) (int, error) {
	logger := utils.GetLogger()

	appt, err := s.ApptRepo.GetByID(ctx, id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, ErrAppointmentNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to fetch appointment for deletion: %w", err)
	}

	base := BaseServiceName(appt.Service)
	group, err := s.ApptRepo.FindBookingGroup(ctx, *appt, base)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve booking group: %w", err)
	}

	if len(group) == 0 {
		// No siblings matched; fall back to the single record.
		if err := s.ApptRepo.DeleteByID(ctx, id); err != nil {
			return 0, err
		}
		booking.InvalidateAvailability(ctx, s.Cache, appt.BarberName, appt.Date)
		return 1, nil
	}

	ids := make([]string, len(group))
	for i, g := range group {
		ids[i] = g.ID
	}
	deleted, err := s.ApptRepo.DeleteManyByID(ctx, ids)
	if err != nil {
		return 0, err
	}

	booking.InvalidateAvailability(ctx, s.Cache, appt.BarberName, appt.Date)

	logger.Info("booking deleted",
		zap.String("id", id),
		zap.String("baseService", base),
		zap.Int64("deleted", deleted))
	return int(deleted), nil
}

// ClearAppointments bulk-deletes appointments: all of them for admins, only
// the caller's for barbers. The role comes from the verified token, never
// from the request body.
func (s *DefaultAdminService) ClearAppointments(ctx context.Context, role, barberName string) (int64, error) {
	if role == RoleAdmin {
		return s.ApptRepo.DeleteAll(ctx)
	}
	if _, ok := models.GetBarberByName(barberName); !ok {
		return 0, ErrUnknownBarber
	}
	return s.ApptRepo.DeleteByBarber(ctx, barberName)
}
