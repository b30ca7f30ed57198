package usecase

import (
	"context"
	"fmt"

	"tourvista/internal/data/entity"
	"tourvista/internal/data/repository"
	"tourvista/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminService interface {
	ListUsers(ctx context.Context) ([]response.UserResponse, error)
	DeleteUser(ctx context.Context, userID string) error
	ListBookings(ctx context.Context) ([]response.BookingResponse, error)

	// ComputeStats folds the dashboard numbers from three independent list
	// reads. There is no transactional snapshot across them, concurrent
	// writes between the reads can skew the totals slightly.
	ComputeStats(ctx context.Context) (*response.StatsResponse, error)
}

type adminService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) ListUsers(ctx context.Context) ([]response.UserResponse, error) {
	users, err := s.repo.User.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]response.UserResponse, len(users))
	for i, user := range users {
		out[i] = response.UserToResponse(user)
	}
	return out, nil
}

func (s *adminService) DeleteUser(ctx context.Context, userID string) error {
	id, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	if err := s.repo.User.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete user", zap.Error(err), zap.String("user_id", userID))
		return err
	}

	return nil
}

func (s *adminService) ListBookings(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	// Tour titles resolved once per distinct tour
	titles := make(map[uuid.UUID]string)
	out := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		title, ok := titles[booking.TourID]
		if !ok {
			tour, err := s.repo.Tour.FindByID(ctx, booking.TourID)
			if err == nil && tour != nil {
				title = tour.Title
			}
			titles[booking.TourID] = title
		}
		out[i] = response.BookingToResponse(booking, title)
	}
	return out, nil
}

func (s *adminService) ComputeStats(ctx context.Context) (*response.StatsResponse, error) {
	users, err := s.repo.User.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("compute stats: %w", err)
	}

	tours, err := s.repo.Tour.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("compute stats: %w", err)
	}

	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("compute stats: %w", err)
	}

	stats := FoldStats(users, tours, bookings)

	s.log.Debug("Stats computed",
		zap.Int("total_users", stats.TotalUsers),
		zap.Int("total_bookings", stats.TotalBookings),
		zap.Int64("revenue", stats.Revenue))

	return stats, nil
}

// FoldStats derives the summary numbers by linear scan. Admin accounts do
// not count as customers, and only confirmed bookings contribute revenue.
func FoldStats(users []*entity.User, tours []*entity.Tour, bookings []*entity.Booking) *response.StatsResponse {
	stats := &response.StatsResponse{
		TotalTours:    len(tours),
		TotalBookings: len(bookings),
	}

	for _, user := range users {
		if user.Role != entity.RoleAdmin {
			stats.TotalUsers++
		}
	}

	for _, booking := range bookings {
		switch booking.Status {
		case entity.BookingStatusPending:
			stats.PendingBookings++
		case entity.BookingStatusConfirmed:
			stats.ConfirmedBookings++
			stats.Revenue += booking.TotalPrice
		}
	}

	return stats
}
