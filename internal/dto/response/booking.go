package response

import (
	"time"

	"locallink/internal/data/entity"
)

type BookingResponse struct {
	ID              string                 `json:"id"`
	CustomerID      string                 `json:"customer_id"`
	WorkerID        string                 `json:"worker_id"`
	ServiceCategory entity.ServiceCategory `json:"service_category"`
	Message         string                 `json:"message"`
	ProposedDate    string                 `json:"proposed_date"`
	ProposedTime    string                 `json:"proposed_time"`
	Status          entity.BookingStatus   `json:"status"`
	Customer        UserSummary            `json:"customer"`
	Worker          WorkerProfileResponse  `json:"worker"`
	HasReview       bool                   `json:"has_review"`
	CreatedAt       time.Time              `json:"created_at"`
}

// BookingSummary is the slice of a booking embedded in a review.
type BookingSummary struct {
	ID              string                 `json:"id"`
	ServiceCategory entity.ServiceCategory `json:"service_category"`
	CreatedAt       time.Time              `json:"created_at"`
}

// Helper converter
func BookingToResponse(booking *entity.BookingRequest, customer *entity.User, worker WorkerProfileResponse, hasReview bool) BookingResponse {
	return BookingResponse{
		ID:              booking.ID.String(),
		CustomerID:      booking.CustomerID.String(),
		WorkerID:        booking.WorkerID.String(),
		ServiceCategory: booking.ServiceCategory,
		Message:         booking.Message,
		ProposedDate:    booking.ProposedDate.Format("2006-01-02"),
		ProposedTime:    booking.ProposedTime,
		Status:          booking.Status,
		Customer:        UserToSummary(customer),
		Worker:          worker,
		HasReview:       hasReview,
		CreatedAt:       booking.CreatedAt,
	}
}
