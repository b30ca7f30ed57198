package response

import (
	"time"

	"tourvista/internal/data/entity"
)

type RatingResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	TourID    string    `json:"tour_id"`
	Rating    int       `json:"rating"`
	Review    *string   `json:"review,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RatingStatsResponse is echoed after a rating submission so the client can
// refresh the aggregates without refetching the tour.
type RatingStatsResponse struct {
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int64   `json:"total_ratings"`
}

func RatingToResponse(rating *entity.Rating) RatingResponse {
	return RatingResponse{
		ID:        rating.ID.String(),
		UserID:    rating.UserID.String(),
		TourID:    rating.TourID.String(),
		Rating:    rating.Rating,
		Review:    rating.Review,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}
}

func RatingsToResponse(ratings []*entity.Rating) []RatingResponse {
	out := make([]RatingResponse, len(ratings))
	for i, rating := range ratings {
		out[i] = RatingToResponse(rating)
	}
	return out
}
