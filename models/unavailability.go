package models

import "time"

// UnavailabilitySlot represents a barber's declared non-availability for a
// date. An empty Time with WholeDay set blocks every slot on that date.
type UnavailabilitySlot struct {
	ID         string    `bson:"id" json:"id"`
	BarberName string    `bson:"barberName" json:"barberName"`
	Date       string    `bson:"date" json:"date"` // YYYY-MM-DD
	Time       string    `bson:"time,omitempty" json:"time,omitempty"`
	WholeDay   bool      `bson:"wholeDay" json:"wholeDay"`
	Reason     string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}
