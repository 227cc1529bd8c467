package response

import (
	"time"

	"locallink/internal/data/entity"
)

type ReviewResponse struct {
	ID         string          `json:"id"`
	ReviewerID string          `json:"reviewer_id"`
	WorkerID   string          `json:"worker_id"`
	BookingID  string          `json:"booking_id"`
	Rating     int             `json:"rating"`
	Comment    string          `json:"comment"`
	Reviewer   UserSummary     `json:"reviewer"`
	Booking    *BookingSummary `json:"booking,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Helper converter
func ReviewToResponse(review *entity.Review, reviewer *entity.User, booking *entity.BookingRequest) ReviewResponse {
	resp := ReviewResponse{
		ID:         review.ID.String(),
		ReviewerID: review.ReviewerID.String(),
		WorkerID:   review.WorkerID.String(),
		BookingID:  review.BookingID.String(),
		Rating:     review.Rating,
		Comment:    review.Comment,
		Reviewer:   UserToSummary(reviewer),
		CreatedAt:  review.CreatedAt,
	}

	if booking != nil {
		resp.Booking = &BookingSummary{
			ID:              booking.ID.String(),
			ServiceCategory: booking.ServiceCategory,
			CreatedAt:       booking.CreatedAt,
		}
	}

	return resp
}
