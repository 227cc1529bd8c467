package entity

import (
	"github.com/google/uuid"
)

type ServiceCategory string

const (
	CategoryBabysitting ServiceCategory = "BABYSITTING"
	CategoryTutoring    ServiceCategory = "TUTORING"
	CategoryHandyman    ServiceCategory = "HANDYMAN"
	CategoryCleaning    ServiceCategory = "CLEANING"
	CategoryLandscaping ServiceCategory = "LANDSCAPING"
	CategoryPetCare     ServiceCategory = "PET_CARE"
	CategoryOther       ServiceCategory = "OTHER"
)

type VerificationBadge string

const (
	BadgeNone           VerificationBadge = "NONE"
	BadgeIDVerified     VerificationBadge = "ID_VERIFIED"
	BadgeSkillChecked   VerificationBadge = "SKILL_CHECKED"
	BadgeFullyCertified VerificationBadge = "FULLY_CERTIFIED"
)

// DefaultRadiusMiles is applied when a profile is created without a service radius.
const DefaultRadiusMiles = 5

type WorkerProfile struct {
	Base
	UserID            uuid.UUID         `db:"user_id"`
	Bio               string            `db:"bio"`
	ServiceCategory   ServiceCategory   `db:"service_category"`
	HourlyRate        *float64          `db:"hourly_rate"`
	LocationLat       float64           `db:"location_lat"`
	LocationLng       float64           `db:"location_lng"`
	Neighborhood      string            `db:"neighborhood"`
	RadiusMiles       float64           `db:"radius_miles"`
	IsVerified        bool              `db:"is_verified"`
	VerificationBadge VerificationBadge `db:"verification_badge"`
	AvailabilityNotes *string           `db:"availability_notes"`
}
