package models

import "strings"

// Barber is a member of the shop's static roster.
type Barber struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Specialties []string `json:"specialties"`
	Experience  string   `json:"experience"`
	Expertise   string   `json:"expertise"`
}

// Service is a bookable service from the shop's price list.
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"` // minutes
	Description string  `json:"description,omitempty"`
}

// PriorityFee is the fixed surcharge added to the first duration block of
// every online booking.
const PriorityFee = 20

// SlotMinutes is the width of one bookable slot.
const SlotMinutes = 20

// Barbers is the shop roster.
var Barbers = []Barber{
	{
		ID:          "1",
		Name:        "Kean",
		Specialties: []string{"Classic Cuts", "Beard Styling", "Hot Towel Shave"},
		Experience:  "Expert",
		Expertise:   "Classic cuts & hot towel shaves",
	},
	{
		ID:          "2",
		Name:        "Pao",
		Specialties: []string{"Modern Styles", "Fade Cuts", "Hair Washing"},
		Experience:  "Skilled",
		Expertise:   "Modern styles & precision fades",
	},
	{
		ID:          "3",
		Name:        "Gelo",
		Specialties: []string{"Traditional Cuts", "Mustache Grooming", "Scalp Treatment"},
		Experience:  "Skilled",
		Expertise:   "Traditional cuts & scalp treatments",
	},
}

// Services is the shop price list. Korean Perms is an umbrella entry; its
// bookable variants are listed in KoreanPermOptions.
var Services = []Service{
	{ID: "1", Name: "Sharp & Styled", Price: 149, Duration: 20, Description: "Modern / Classic Haircut"},
	{ID: "2", Name: "Clean Cut Duo", Price: 180, Duration: 30, Description: "Haircut + Shave"},
	{ID: "3", Name: "Korean Perms", Price: 1100, Duration: 120, Description: "Light Perm, Medium Perm, Afro Perm"},
	{ID: "4", Name: "SWAT Signature Edge", Price: 200, Duration: 30, Description: "Haircut + Hair Art"},
	{ID: "5", Name: "Little Trooper", Price: 170, Duration: 20, Description: "Kids Classic / Modern Haircuts"},
}

// KoreanPermOptions are the concrete variants behind the "Korean Perms" entry.
var KoreanPermOptions = []Service{
	{ID: "3a", Name: "Korean Perms - Light Perm", Price: 850, Duration: 120},
	{ID: "3b", Name: "Korean Perms - Medium Perm", Price: 950, Duration: 120},
	{ID: "3c", Name: "Korean Perms - Afro Perm", Price: 1100, Duration: 120},
}

// TimeSlots is the fixed grid of bookable slot labels covering shop hours
// (9:00 AM - 9:00 PM, 20-minute increments).
var TimeSlots = []string{
	"9:00 AM", "9:20 AM", "9:40 AM", "10:00 AM", "10:20 AM", "10:40 AM",
	"11:00 AM", "11:20 AM", "11:40 AM", "12:00 PM", "12:20 PM", "12:40 PM",
	"1:00 PM", "1:20 PM", "1:40 PM", "2:00 PM", "2:20 PM", "2:40 PM",
	"3:00 PM", "3:20 PM", "3:40 PM", "4:00 PM", "4:20 PM", "4:40 PM",
	"5:00 PM", "5:20 PM", "5:40 PM", "6:00 PM", "6:20 PM", "6:40 PM",
	"7:00 PM", "7:20 PM", "7:40 PM", "8:00 PM", "8:20 PM", "8:40 PM", "9:00 PM",
}

// BookingWindowDays is how far in advance appointments may be booked.
const BookingWindowDays = 15

// GetBarberByName returns the roster entry for a barber, if present.
// Matching is case-insensitive.
func GetBarberByName(name string) (Barber, bool) {
	for _, b := range Barbers {
		if strings.EqualFold(b.Name, name) {
			return b, true
		}
	}
	return Barber{}, false
}

// GetServiceByID resolves a service or Korean Perm variant by its catalogue ID.
func GetServiceByID(id string) (Service, bool) {
	for _, s := range Services {
		if s.ID == id {
			return s, true
		}
	}
	for _, s := range KoreanPermOptions {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}
