package response

import (
	"time"

	"tourvista/internal/data/entity"
	"tourvista/pkg/utils"
)

type BookingResponse struct {
	ID                  string               `json:"id"`
	Code                string               `json:"code"`
	UserID              string               `json:"user_id"`
	TourID              string               `json:"tour_id"`
	TourTitle           string               `json:"tour_title,omitempty"`
	Participants        int                  `json:"participants"`
	TravelDate          string               `json:"travel_date"`
	ContactNumber       string               `json:"contact_number"`
	ContactEmail        *string              `json:"contact_email,omitempty"`
	SpecialRequirements *string              `json:"special_requirements,omitempty"`
	TotalPrice          int64                `json:"total_price"`
	Status              entity.BookingStatus `json:"status"`
	CreatedAt           time.Time            `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking, tourTitle string) BookingResponse {
	return BookingResponse{
		ID:                  booking.ID.String(),
		Code:                utils.BookingCode(booking.ID),
		UserID:              booking.UserID.String(),
		TourID:              booking.TourID.String(),
		TourTitle:           tourTitle,
		Participants:        booking.Participants,
		TravelDate:          booking.TravelDate.Format("2006-01-02"),
		ContactNumber:       booking.ContactNumber,
		ContactEmail:        booking.ContactEmail,
		SpecialRequirements: booking.SpecialRequirements,
		TotalPrice:          booking.TotalPrice,
		Status:              booking.Status,
		CreatedAt:           booking.CreatedAt,
	}
}
