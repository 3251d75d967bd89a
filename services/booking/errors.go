// File: services/booking/errors.go
package booking

import "errors"

var (
	// ErrSessionNotFound means the wizard session is missing or expired.
	ErrSessionNotFound = errors.New("booking session not found or expired")
	// ErrInvalidStep means the requested operation does not match the
	// session's current wizard step.
	ErrInvalidStep = errors.New("operation not valid for current booking step")
	// ErrUnknownBarber means the barber is not on the shop roster.
	ErrUnknownBarber = errors.New("unknown barber")
	// ErrUnknownService means the service ID is not in the catalogue.
	ErrUnknownService = errors.New("unknown service")
	// ErrInvalidSlot means the time label is not on the slot grid.
	ErrInvalidSlot = errors.New("invalid time slot")
	// ErrSlotTaken means the slot is already booked or marked unavailable.
	ErrSlotTaken = errors.New("time slot is no longer available")
	// ErrDayUnavailable means the barber marked the whole day unavailable.
	ErrDayUnavailable = errors.New("barber is unavailable for the whole day")
	// ErrPastTime means the slot has already passed today.
	ErrPastTime = errors.New("time slot has already passed")
	// ErrDurationConflict means the service duration would overlap a later
	// booked or unavailable slot, or run off the end of the day.
	ErrDurationConflict = errors.New("service duration conflicts with a later slot")
	// ErrOutsideWindow means the date is in the past or beyond the advance
	// booking window.
	ErrOutsideWindow = errors.New("date is outside the booking window")
	// ErrIncompleteBooking means required wizard fields are missing.
	ErrIncompleteBooking = errors.New("booking information is incomplete")
)
