package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// ValidBookingStatus reports whether s is one of the four known states.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

type Booking struct {
	BaseNoDelete
	UserID              uuid.UUID     `db:"user_id"`
	TourID              uuid.UUID     `db:"tour_id"`
	Participants        int           `db:"participants"`
	TravelDate          time.Time     `db:"travel_date"`
	ContactNumber       string        `db:"contact_number"`
	ContactEmail        *string       `db:"contact_email"`
	SpecialRequirements *string       `db:"special_requirements"`
	TotalPrice          int64         `db:"total_price"` // tour price snapshot x participants
	Status              BookingStatus `db:"status"`
}
