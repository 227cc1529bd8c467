package response

import (
	"time"

	"locallink/internal/data/entity"
)

type UserResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Phone           *string         `json:"phone,omitempty"`
	ProfileImageURL *string         `json:"profile_image_url,omitempty"`
	Role            entity.UserRole `json:"role"`
	CreatedAt       time.Time       `json:"created_at"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// MeResponse is the authenticated caller's account, with the worker profile
// attached when one exists.
type MeResponse struct {
	UserResponse
	WorkerProfile *WorkerProfileResponse `json:"worker_profile,omitempty"`
}

// UserSummary is the trimmed-down identity embedded in other resources.
type UserSummary struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email,omitempty"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:              user.ID.String(),
		Name:            user.Name,
		Email:           user.Email,
		Phone:           user.Phone,
		ProfileImageURL: user.ProfileImageURL,
		Role:            user.Role,
		CreatedAt:       user.CreatedAt,
	}
}

func UserToSummary(user *entity.User) UserSummary {
	if user == nil {
		return UserSummary{}
	}
	return UserSummary{
		ID:              user.ID.String(),
		Name:            user.Name,
		Email:           user.Email,
		ProfileImageURL: user.ProfileImageURL,
	}
}
