package usecase

import (
	"tourvista/internal/data/repository"
	"tourvista/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Tour    TourService
	Booking BookingService
	Saved   SavedTourService
	Admin   AdminService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		Tour:    NewTourService(repo, log),
		Booking: NewBookingService(repo, log),
		Saved:   NewSavedTourService(repo, log),
		Admin:   NewAdminService(repo, log),
	}
}
