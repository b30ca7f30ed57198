package request

type SaveTourRequest struct {
	TourID string `json:"tour_id" validate:"required,uuid4"`
}
