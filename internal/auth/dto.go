// AngelaMos | 2026
// dto.go

package auth

import (
	"github.com/bite-platform/bite-backend/internal/profile"
	"github.com/bite-platform/bite-backend/internal/user"
)

// RegisterRequest carries the universal account fields plus exactly one
// role-specific sub-object inside Profile. Tier is optional and
// defaults to the role's free tier.
type RegisterRequest struct {
	Email       string `json:"email"        validate:"required,email,max=255"`
	Password    string `json:"password"     validate:"required,min=8,max=128"`
	FullName    string `json:"full_name"    validate:"required,min=1,max=100"`
	PhoneNumber string `json:"phone_number" validate:"required,max=30"`
	City        string `json:"city"         validate:"required,max=100"`
	Country     string `json:"country"      validate:"required,max=100"`
	Role        string `json:"role"         validate:"required,oneof=student startup business investor"`
	Tier        string `json:"tier"         validate:"omitempty,max=50"`

	profile.NewProfile
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token"        validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=128"`
}

type AuthResponse struct {
	Token string            `json:"token"`
	User  user.UserResponse `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
