package request

type CreateWorkerProfileRequest struct {
	Bio               string   `json:"bio" validate:"required,min=10"`
	ServiceCategory   string   `json:"service_category" validate:"required,oneof=BABYSITTING TUTORING HANDYMAN CLEANING LANDSCAPING PET_CARE OTHER"`
	HourlyRate        *float64 `json:"hourly_rate,omitempty" validate:"omitempty,gt=0"`
	LocationLat       *float64 `json:"location_lat" validate:"required,gte=-90,lte=90"`
	LocationLng       *float64 `json:"location_lng" validate:"required,gte=-180,lte=180"`
	Neighborhood      string   `json:"neighborhood" validate:"required,min=2"`
	RadiusMiles       *float64 `json:"radius_miles,omitempty" validate:"omitempty,gt=0"`
	AvailabilityNotes *string  `json:"availability_notes,omitempty"`
}

// UpdateWorkerProfileRequest is a partial update; absent fields keep their
// stored values.
type UpdateWorkerProfileRequest struct {
	Bio               *string  `json:"bio,omitempty" validate:"omitempty,min=10"`
	ServiceCategory   *string  `json:"service_category,omitempty" validate:"omitempty,oneof=BABYSITTING TUTORING HANDYMAN CLEANING LANDSCAPING PET_CARE OTHER"`
	HourlyRate        *float64 `json:"hourly_rate,omitempty" validate:"omitempty,gt=0"`
	LocationLat       *float64 `json:"location_lat,omitempty" validate:"omitempty,gte=-90,lte=90"`
	LocationLng       *float64 `json:"location_lng,omitempty" validate:"omitempty,gte=-180,lte=180"`
	Neighborhood      *string  `json:"neighborhood,omitempty" validate:"omitempty,min=2"`
	RadiusMiles       *float64 `json:"radius_miles,omitempty" validate:"omitempty,gt=0"`
	AvailabilityNotes *string  `json:"availability_notes,omitempty"`
}

// SearchWorkersRequest is filled from query parameters.
type SearchWorkersRequest struct {
	Lat          *float64 `validate:"required,gte=-90,lte=90"`
	Lng          *float64 `validate:"required,gte=-180,lte=180"`
	Radius       float64  `validate:"gt=0"`
	Category     *string  `validate:"omitempty,oneof=BABYSITTING TUTORING HANDYMAN CLEANING LANDSCAPING PET_CARE OTHER"`
	MinRating    *float64 `validate:"omitempty,gte=1,lte=5"`
	VerifiedOnly bool
}
