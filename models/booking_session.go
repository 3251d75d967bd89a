package models

import "time"

// Booking wizard steps, in order.
const (
	StepBarber   = "barber"
	StepService  = "service"
	StepDateTime = "datetime"
	StepCustomer = "customer"
	StepConfirm  = "confirm"
	StepDone     = "done"
)

// CustomerInfo holds the contact fields collected by the wizard.
type CustomerInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`
}

// BookingSession holds the draft state of the booking wizard between steps.
// It lives in Redis under a TTL and is discarded on confirm or cancel.
type BookingSession struct {
	SessionID     string       `json:"sessionId"`
	Step          string       `json:"step"`
	Barber        *Barber      `json:"barber,omitempty"`
	Service       *Service     `json:"service,omitempty"`
	Date          string       `json:"date,omitempty"` // YYYY-MM-DD
	Time          string       `json:"time,omitempty"` // slot label
	Customer      CustomerInfo `json:"customer"`
	BookingID     string       `json:"bookingId,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
	LastUpdatedAt time.Time    `json:"lastUpdatedAt"`
}

// SlotStatus describes one grid entry in an availability response.
type SlotStatus struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"` // "booked", "unavailable", "past" or "conflict"
}

// AvailabilityResponse is the payload for a barber/date availability query.
type AvailabilityResponse struct {
	BarberName string       `json:"barberName"`
	Date       string       `json:"date"`
	WholeDay   bool         `json:"wholeDayUnavailable"`
	Slots      []SlotStatus `json:"slots"`
	Available  []string     `json:"available"`
}

// BookingReceipt is the success payload returned once a booking is confirmed.
type BookingReceipt struct {
	BookingID  string       `json:"bookingId"`
	BarberName string       `json:"barberName"`
	Service    string       `json:"service"`
	Date       string       `json:"date"`
	Time       string       `json:"time"`
	Slots      []string     `json:"slots"`
	TotalPrice float64      `json:"totalPrice"` // includes the priority fee
	Customer   CustomerInfo `json:"customer"`
}
