package request

type CreateBookingRequest struct {
	TourID              string  `json:"tour" validate:"required,uuid4"`
	Participants        int     `json:"participants" validate:"required,gte=1,lte=10"`
	TravelDate          string  `json:"travel_date" validate:"required"` // YYYY-MM-DD, not in the past
	ContactNumber       string  `json:"contact_number" validate:"required,len=10,numeric"`
	SpecialRequirements *string `json:"special_requirements,omitempty" validate:"omitempty,max=1000"`
	Email               *string `json:"email,omitempty" validate:"omitempty,email"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed cancelled completed"`
}
