package entity

import (
	"github.com/google/uuid"
)

// Rating is one user's score for one tour. At most one row per (user, tour).
type Rating struct {
	BaseNoDelete
	UserID uuid.UUID `db:"user_id"`
	TourID uuid.UUID `db:"tour_id"`
	Rating int       `db:"rating"` // 1-5
	Review *string   `db:"review"`
}
