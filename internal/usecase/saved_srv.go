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

type SavedTourService interface {
	// ListSaved returns the tours a user bookmarked. Non-admin callers may
	// only read their own list.
	ListSaved(ctx context.Context, callerID uuid.UUID, callerRole string, targetUserID string) ([]response.TourResponse, error)
	// SaveTour bookmarks a tour. Saving an already-saved tour is a no-op.
	SaveTour(ctx context.Context, userID uuid.UUID, tourID string) error
	// RemoveSaved deletes the bookmark. Removing an absent bookmark is a
	// no-op, not an error.
	RemoveSaved(ctx context.Context, callerID uuid.UUID, targetUserID, tourID string) error
}

type savedTourService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSavedTourService(repo *repository.Repository, log *zap.Logger) SavedTourService {
	return &savedTourService{
		repo: repo,
		log:  log.With(zap.String("service", "saved_tour")),
	}
}

func (s *savedTourService) ListSaved(ctx context.Context, callerID uuid.UUID, callerRole string, targetUserID string) ([]response.TourResponse, error) {
	targetID, err := uuid.Parse(targetUserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", targetUserID, err)
	}

	if callerID != targetID && callerRole != string(entity.RoleAdmin) {
		return nil, fmt.Errorf("unauthorized to view this list")
	}

	tours, err := s.repo.SavedTour.FindToursByUserID(ctx, targetID)
	if err != nil {
		return nil, fmt.Errorf("list saved tours: %w", err)
	}

	return response.ToursToResponse(tours), nil
}

func (s *savedTourService) SaveTour(ctx context.Context, userID uuid.UUID, tourID string) error {
	id, err := uuid.Parse(tourID)
	if err != nil {
		return fmt.Errorf("invalid tour ID format %s: %w", tourID, err)
	}

	tour, err := s.repo.Tour.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("save tour: %w", err)
	}
	if tour == nil {
		return fmt.Errorf("tour %s not found", tourID)
	}

	if err := s.repo.SavedTour.Save(ctx, userID, id); err != nil {
		return fmt.Errorf("save tour: %w", err)
	}

	s.log.Info("Tour saved",
		zap.String("user_id", userID.String()),
		zap.String("tour_id", tourID))

	return nil
}

func (s *savedTourService) RemoveSaved(ctx context.Context, callerID uuid.UUID, targetUserID, tourID string) error {
	targetID, err := uuid.Parse(targetUserID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", targetUserID, err)
	}
	id, err := uuid.Parse(tourID)
	if err != nil {
		return fmt.Errorf("invalid tour ID format %s: %w", tourID, err)
	}

	if callerID != targetID {
		return fmt.Errorf("unauthorized to modify this list")
	}

	if err := s.repo.SavedTour.Remove(ctx, targetID, id); err != nil {
		return fmt.Errorf("remove saved tour: %w", err)
	}

	return nil
}
