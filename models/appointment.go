package models

import "time"

// Appointment statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidStatuses lists the accepted appointment statuses.
var ValidStatuses = []string{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

// Appointment represents one reserved 20-minute slot. A booking longer than
// one slot is stored as N sibling appointments sharing barber, date and
// customer identity; only the first carries the price and the undecorated
// service name, the rest carry a "(Duration Block k of N)" suffix.
type Appointment struct {
	ID            string    `bson:"id" json:"id"`
	BarberName    string    `bson:"barberName" json:"barberName"`
	CustomerName  string    `bson:"customerName" json:"customerName"`
	CustomerPhone string    `bson:"customerPhone" json:"customerPhone"`
	CustomerEmail string    `bson:"customerEmail" json:"customerEmail"`
	Service       string    `bson:"service" json:"service"`
	Date          string    `bson:"date" json:"date"` // YYYY-MM-DD
	Time          string    `bson:"time" json:"time"` // slot label, e.g. "9:00 AM"
	Status        string    `bson:"status" json:"status"`
	Price         float64   `bson:"price" json:"price"`
	ReceiptURL    string    `bson:"receiptUrl,omitempty" json:"receiptUrl,omitempty"`
	NotesURL      string    `bson:"notesUrl,omitempty" json:"notesUrl,omitempty"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// AppointmentFileUpdate carries the optional file / notes fields an admin may
// attach to an appointment after the fact. Nil means "leave unchanged".
type AppointmentFileUpdate struct {
	ReceiptURL *string `json:"receiptUrl,omitempty"`
	NotesURL   *string `json:"notesUrl,omitempty"`
	Notes      *string `json:"notes,omitempty"`
}

// IsValidStatus reports whether s is one of the four appointment statuses.
func IsValidStatus(s string) bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}
