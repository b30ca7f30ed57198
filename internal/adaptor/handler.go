package adaptor

import (
	"tourvista/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Tour    *TourHandler
	Booking *BookingHandler
	Saved   *SavedTourHandler
	Admin   *AdminHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		Tour:    NewTourHandler(service.Tour, log),
		Booking: NewBookingHandler(service.Booking, log),
		Saved:   NewSavedTourHandler(service.Saved, log),
		Admin:   NewAdminHandler(service.Admin, service.Booking, log),
	}
}
