package request

type TourOverviewPayload struct {
	Highlights []string `json:"highlights" validate:"omitempty,dive,min=1"`
	Difficulty string   `json:"difficulty" validate:"omitempty,max=50"`
	GroupSize  string   `json:"group_size" validate:"omitempty,max=50"`
}

type ItineraryDayPayload struct {
	Day         int      `json:"day" validate:"required,min=1"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description" validate:"omitempty"`
	Activities  []string `json:"activities,omitempty"`
}

type CreateTourRequest struct {
	Title            string  `json:"title" validate:"required,min=3,max=200"`
	ShortDescription string  `json:"short_description" validate:"required,max=500"`
	Description      string  `json:"description" validate:"required"`
	Price            int64   `json:"price" validate:"required,gte=1"`
	Duration         string  `json:"duration" validate:"required,max=100"`
	Image            string  `json:"image" validate:"required,url"`
	Gallery          []string `json:"gallery,omitempty" validate:"omitempty,dive,url"`
	Region           *string `json:"region,omitempty" validate:"omitempty,max=100"`
	Category         *string `json:"category,omitempty" validate:"omitempty,max=100"`

	Overview      TourOverviewPayload   `json:"overview"`
	Itinerary     []ItineraryDayPayload `json:"itinerary,omitempty" validate:"omitempty,dive"`
	Included      []string              `json:"included,omitempty"`
	Excluded      []string              `json:"excluded,omitempty"`
	Requirements  []string              `json:"requirements,omitempty"`
	PricingPolicy []string              `json:"pricing_policy,omitempty"`
	ImportantInfo []string              `json:"important_info,omitempty"`
}

// UpdateTourRequest replaces the whole editable document, same shape as create
type UpdateTourRequest = CreateTourRequest

type RateTourRequest struct {
	Rating int     `json:"rating" validate:"required,gte=1,lte=5"`
	Review *string `json:"review,omitempty" validate:"omitempty,max=2000"`
}
