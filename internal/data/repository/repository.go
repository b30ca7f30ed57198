package repository

import (
	"tourvista/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Tour        TourRepository
	Booking     BookingRepository
	Rating      RatingRepository
	SavedTour   SavedTourRepository
	Idempotency IdempotencyRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Tour:        NewTourRepository(db, log),
		Booking:     NewBookingRepository(db, log),
		Rating:      NewRatingRepository(db, log),
		SavedTour:   NewSavedTourRepository(db, log),
		Idempotency: NewIdempotencyRepository(db, log),
	}
}
