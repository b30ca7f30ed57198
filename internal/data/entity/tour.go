package entity

// TourOverview groups the descriptive facts shown on the tour detail page.
type TourOverview struct {
	Highlights []string `json:"highlights"`
	Difficulty string   `json:"difficulty"`
	GroupSize  string   `json:"group_size"`
}

// ItineraryDay is one entry of the multi-day plan.
type ItineraryDay struct {
	Day         int      `json:"day"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Activities  []string `json:"activities,omitempty"`
}

type Tour struct {
	Base
	Title            string  `db:"title"`
	ShortDescription string  `db:"short_description"`
	Description      string  `db:"description"`
	Price            int64   `db:"price"` // integer, displayed as INR
	Duration         string  `db:"duration"`
	Image            string  `db:"image"`
	Gallery          []string `db:"gallery"`
	Region           *string `db:"region"`
	Category         *string `db:"category"`

	Overview      TourOverview   `db:"overview"`  // jsonb
	Itinerary     []ItineraryDay `db:"itinerary"` // jsonb
	Included      []string       `db:"included"`
	Excluded      []string       `db:"excluded"`
	Requirements  []string       `db:"requirements"`
	PricingPolicy []string       `db:"pricing_policy"`
	ImportantInfo []string       `db:"important_info"`

	// Derived from the rating set, written only by the rating flow
	AverageRating float64 `db:"average_rating"`
	TotalRatings  int64   `db:"total_ratings"`
}
