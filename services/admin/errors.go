// File: services/admin/errors.go
package admin

import "errors"

var (
	// ErrAppointmentNotFound means no appointment matches the given ID.
	ErrAppointmentNotFound = errors.New("appointment not found")
	// ErrInvalidStatus means the status value is not one of the four allowed.
	ErrInvalidStatus = errors.New("invalid appointment status")
	// ErrForbidden means the caller's role does not permit the operation.
	ErrForbidden = errors.New("operation not permitted for this role")
	// ErrUnknownBarber means the barber is not on the shop roster.
	ErrUnknownBarber = errors.New("unknown barber")
	// ErrInvalidSlot means a time label is not on the slot grid.
	ErrInvalidSlot = errors.New("invalid time slot")
	// ErrSlotNotFound means no unavailability record matches the given ID.
	ErrSlotNotFound = errors.New("unavailability slot not found")
)
