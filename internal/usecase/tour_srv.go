package usecase

import (
	"context"
	"fmt"
	"time"

	"tourvista/internal/data/entity"
	"tourvista/internal/data/repository"
	"tourvista/internal/dto/request"
	"tourvista/internal/dto/response"
	"tourvista/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TourService interface {
	// Public catalog
	ListTours(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TourResponse], error)
	GetTour(ctx context.Context, tourID string) (*response.TourResponse, error)

	// Admin catalog management
	CreateTour(ctx context.Context, req *request.CreateTourRequest) (*response.TourResponse, error)
	UpdateTour(ctx context.Context, tourID string, req *request.UpdateTourRequest) (*response.TourResponse, error)
	DeleteTour(ctx context.Context, tourID string) error

	// Ratings
	RateTour(ctx context.Context, userID uuid.UUID, tourID string, req *request.RateTourRequest) (*response.RatingStatsResponse, error)
	ListRatings(ctx context.Context, tourID string) ([]response.RatingResponse, error)
	GetUserRating(ctx context.Context, tourID, userID string) (*response.RatingResponse, error)
}

type tourService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTourService(repo *repository.Repository, log *zap.Logger) TourService {
	return &tourService{
		repo: repo,
		log:  log.With(zap.String("service", "tour")),
	}
}

func (s *tourService) ListTours(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TourResponse], error) {
	limit := req.Limit()
	offset := req.Offset()

	tours, err := s.repo.Tour.FindPage(ctx, limit, offset)
	if err != nil {
		s.log.Error("Failed to list tours", zap.Error(err))
		return nil, fmt.Errorf("list tours: %w", err)
	}

	total, err := s.repo.Tour.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count tours", zap.Error(err))
		return nil, fmt.Errorf("count tours: %w", err)
	}

	return response.NewPaginatedResponse(response.ToursToResponse(tours), req.Page, limit, total), nil
}

func (s *tourService) GetTour(ctx context.Context, tourID string) (*response.TourResponse, error) {
	id, err := uuid.Parse(tourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID format %s: %w", tourID, err)
	}

	tour, err := s.repo.Tour.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get tour", zap.Error(err), zap.String("tour_id", tourID))
		return nil, fmt.Errorf("get tour: %w", err)
	}
	if tour == nil {
		return nil, fmt.Errorf("tour %s not found", tourID)
	}

	resp := response.TourToResponse(tour)
	return &resp, nil
}

func (s *tourService) CreateTour(ctx context.Context, req *request.CreateTourRequest) (*response.TourResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create tour validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	tour := &entity.Tour{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	applyTourRequest(tour, req)

	if err := s.repo.Tour.Create(ctx, tour); err != nil {
		s.log.Error("Failed to create tour", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("create tour: %w", err)
	}

	s.log.Info("Tour created",
		zap.String("tour_id", tour.ID.String()),
		zap.String("title", tour.Title))

	resp := response.TourToResponse(tour)
	return &resp, nil
}

func (s *tourService) UpdateTour(ctx context.Context, tourID string, req *request.UpdateTourRequest) (*response.TourResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update tour validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(tourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID format %s: %w", tourID, err)
	}

	tour, err := s.repo.Tour.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load tour for update", zap.Error(err), zap.String("tour_id", tourID))
		return nil, fmt.Errorf("update tour: %w", err)
	}
	if tour == nil {
		return nil, fmt.Errorf("tour %s not found", tourID)
	}

	applyTourRequest(tour, req)
	tour.UpdatedAt = time.Now()

	// Existing bookings keep their snapshot price, a price edit here
	// only affects bookings created afterwards.
	if err := s.repo.Tour.Update(ctx, tour); err != nil {
		s.log.Error("Failed to update tour", zap.Error(err), zap.String("tour_id", tourID))
		return nil, fmt.Errorf("update tour: %w", err)
	}

	s.log.Info("Tour updated", zap.String("tour_id", tourID))

	resp := response.TourToResponse(tour)
	return &resp, nil
}

func (s *tourService) DeleteTour(ctx context.Context, tourID string) error {
	id, err := uuid.Parse(tourID)
	if err != nil {
		return fmt.Errorf("invalid tour ID format %s: %w", tourID, err)
	}

	if err := s.repo.Tour.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete tour", zap.Error(err), zap.String("tour_id", tourID))
		return err
	}

	return nil
}

// RateTour upserts the caller's rating, then recomputes the tour's derived
// aggregates from the full rating set. After the call average_rating and
// total_ratings reflect exactly the stored ratings.
func (s *tourService) RateTour(ctx context.Context, userID uuid.UUID, tourID string, req *request.RateTourRequest) (*response.RatingStatsResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Rate tour validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(tourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID format %s: %w", tourID, err)
	}

	tour, err := s.repo.Tour.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load tour for rating", zap.Error(err), zap.String("tour_id", tourID))
		return nil, fmt.Errorf("rate tour: %w", err)
	}
	if tour == nil {
		return nil, fmt.Errorf("tour %s not found", tourID)
	}

	now := time.Now()
	rating := &entity.Rating{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID: userID,
		TourID: id,
		Rating: req.Rating,
		Review: req.Review,
	}

	if err := s.repo.Rating.Upsert(ctx, rating); err != nil {
		return nil, fmt.Errorf("rate tour: %w", err)
	}

	avgRating, totalRatings, err := s.repo.Rating.GetTourRatingStats(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("rate tour: %w", err)
	}

	if err := s.repo.Tour.UpdateRatingStats(ctx, id, avgRating, totalRatings); err != nil {
		return nil, fmt.Errorf("rate tour: %w", err)
	}

	s.log.Info("Tour rated",
		zap.String("tour_id", tourID),
		zap.String("user_id", userID.String()),
		zap.Int("rating", req.Rating),
		zap.Float64("average_rating", avgRating),
		zap.Int64("total_ratings", totalRatings),
	)

	return &response.RatingStatsResponse{
		AverageRating: avgRating,
		TotalRatings:  totalRatings,
	}, nil
}

func (s *tourService) ListRatings(ctx context.Context, tourID string) ([]response.RatingResponse, error) {
	id, err := uuid.Parse(tourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID format %s: %w", tourID, err)
	}

	ratings, err := s.repo.Rating.FindByTourID(ctx, id)
	if err != nil {
		s.log.Error("Failed to list ratings", zap.Error(err), zap.String("tour_id", tourID))
		return nil, fmt.Errorf("list ratings: %w", err)
	}

	return response.RatingsToResponse(ratings), nil
}

func (s *tourService) GetUserRating(ctx context.Context, tourID, userID string) (*response.RatingResponse, error) {
	tid, err := uuid.Parse(tourID)
	if err != nil {
		return nil, fmt.Errorf("invalid tour ID format %s: %w", tourID, err)
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	rating, err := s.repo.Rating.FindByUserAndTour(ctx, uid, tid)
	if err != nil {
		s.log.Error("Failed to get user rating",
			zap.Error(err),
			zap.String("tour_id", tourID),
			zap.String("user_id", userID))
		return nil, fmt.Errorf("get user rating: %w", err)
	}
	if rating == nil {
		return nil, fmt.Errorf("rating not found")
	}

	resp := response.RatingToResponse(rating)
	return &resp, nil
}

func applyTourRequest(tour *entity.Tour, req *request.CreateTourRequest) {
	tour.Title = req.Title
	tour.ShortDescription = req.ShortDescription
	tour.Description = req.Description
	tour.Price = req.Price
	tour.Duration = req.Duration
	tour.Image = req.Image
	tour.Gallery = req.Gallery
	tour.Region = req.Region
	tour.Category = req.Category
	tour.Overview = entity.TourOverview{
		Highlights: req.Overview.Highlights,
		Difficulty: req.Overview.Difficulty,
		GroupSize:  req.Overview.GroupSize,
	}
	tour.Itinerary = make([]entity.ItineraryDay, len(req.Itinerary))
	for i, day := range req.Itinerary {
		tour.Itinerary[i] = entity.ItineraryDay{
			Day:         day.Day,
			Title:       day.Title,
			Description: day.Description,
			Activities:  day.Activities,
		}
	}
	tour.Included = req.Included
	tour.Excluded = req.Excluded
	tour.Requirements = req.Requirements
	tour.PricingPolicy = req.PricingPolicy
	tour.ImportantInfo = req.ImportantInfo
}
