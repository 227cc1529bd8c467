package response

import (
	"time"

	"locallink/internal/data/entity"
)

type WorkerProfileResponse struct {
	ID                string                   `json:"id"`
	UserID            string                   `json:"user_id"`
	Bio               string                   `json:"bio"`
	ServiceCategory   entity.ServiceCategory   `json:"service_category"`
	HourlyRate        *float64                 `json:"hourly_rate,omitempty"`
	LocationLat       float64                  `json:"location_lat"`
	LocationLng       float64                  `json:"location_lng"`
	Neighborhood      string                   `json:"neighborhood"`
	RadiusMiles       float64                  `json:"radius_miles"`
	IsVerified        bool                     `json:"is_verified"`
	VerificationBadge entity.VerificationBadge `json:"verification_badge"`
	AvailabilityNotes *string                  `json:"availability_notes,omitempty"`
	User              UserSummary              `json:"user"`
	CreatedAt         time.Time                `json:"created_at"`
}

// WorkerSearchResult is a profile annotated with its distance from the
// search origin and rating aggregates, both rounded to one decimal.
type WorkerSearchResult struct {
	WorkerProfileResponse
	Distance      float64 `json:"distance"`
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
}

type WorkerDetailResponse struct {
	WorkerProfileResponse
	AverageRating float64          `json:"average_rating"`
	ReviewCount   int              `json:"review_count"`
	Reviews       []ReviewResponse `json:"reviews"`
}

// Helper converter
func WorkerToResponse(profile *entity.WorkerProfile, owner *entity.User) WorkerProfileResponse {
	return WorkerProfileResponse{
		ID:                profile.ID.String(),
		UserID:            profile.UserID.String(),
		Bio:               profile.Bio,
		ServiceCategory:   profile.ServiceCategory,
		HourlyRate:        profile.HourlyRate,
		LocationLat:       profile.LocationLat,
		LocationLng:       profile.LocationLng,
		Neighborhood:      profile.Neighborhood,
		RadiusMiles:       profile.RadiusMiles,
		IsVerified:        profile.IsVerified,
		VerificationBadge: profile.VerificationBadge,
		AvailabilityNotes: profile.AvailabilityNotes,
		User:              UserToSummary(owner),
		CreatedAt:         profile.CreatedAt,
	}
}
