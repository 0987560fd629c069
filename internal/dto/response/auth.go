package response

import (
	"time"

	"umkm-marketplace/internal/data/entity"
)

type UserResponse struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

type RegisterResponse struct {
	User UserResponse `json:"user"`
	Umkm UmkmResponse `json:"umkm"`
}

type LoginResponse struct {
	Token       string      `json:"token"`
	ExpiresAt   time.Time   `json:"expires_at"`
	UmkmProfile UmkmSummary `json:"umkm_profile"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:         user.ID.String(),
		Email:      user.Email,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
	}
}
