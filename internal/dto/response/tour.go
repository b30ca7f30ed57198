package response

import (
	"time"

	"tourvista/internal/data/entity"
)

type TourResponse struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"short_description"`
	Description      string   `json:"description"`
	Price            int64    `json:"price"`
	Duration         string   `json:"duration"`
	Image            string   `json:"image"`
	Gallery          []string `json:"gallery,omitempty"`
	Region           *string  `json:"region,omitempty"`
	Category         *string  `json:"category,omitempty"`

	Overview      entity.TourOverview   `json:"overview"`
	Itinerary     []entity.ItineraryDay `json:"itinerary,omitempty"`
	Included      []string              `json:"included,omitempty"`
	Excluded      []string              `json:"excluded,omitempty"`
	Requirements  []string              `json:"requirements,omitempty"`
	PricingPolicy []string              `json:"pricing_policy,omitempty"`
	ImportantInfo []string              `json:"important_info,omitempty"`

	AverageRating float64   `json:"average_rating"`
	TotalRatings  int64     `json:"total_ratings"`
	CreatedAt     time.Time `json:"created_at"`
}

func TourToResponse(tour *entity.Tour) TourResponse {
	return TourResponse{
		ID:               tour.ID.String(),
		Title:            tour.Title,
		ShortDescription: tour.ShortDescription,
		Description:      tour.Description,
		Price:            tour.Price,
		Duration:         tour.Duration,
		Image:            tour.Image,
		Gallery:          tour.Gallery,
		Region:           tour.Region,
		Category:         tour.Category,
		Overview:         tour.Overview,
		Itinerary:        tour.Itinerary,
		Included:         tour.Included,
		Excluded:         tour.Excluded,
		Requirements:     tour.Requirements,
		PricingPolicy:    tour.PricingPolicy,
		ImportantInfo:    tour.ImportantInfo,
		AverageRating:    tour.AverageRating,
		TotalRatings:     tour.TotalRatings,
		CreatedAt:        tour.CreatedAt,
	}
}

func ToursToResponse(tours []*entity.Tour) []TourResponse {
	out := make([]TourResponse, len(tours))
	for i, tour := range tours {
		out[i] = TourToResponse(tour)
	}
	return out
}
