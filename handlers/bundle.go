// File: handlers/bundle.go
package handlers

import (
	"swatbarber/services/auth"
)

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	AuthSvc auth.AuthService

	Booking        *BookingHandler
	Appointments   *AppointmentHandler
	Unavailability *UnavailabilityHandler
	Gallery        *GalleryHandler
	Auth           *AuthHandler
	Storage        *StorageHandler
}
