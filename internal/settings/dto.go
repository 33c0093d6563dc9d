// AngelaMos | 2026
// dto.go

package settings

import (
	"github.com/bite-platform/bite-backend/internal/user"
)

type UpdateProfileRequest struct {
	FullName    *string `json:"full_name,omitempty"    validate:"omitempty,min=1,max=100"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,max=30"`
	City        *string `json:"city,omitempty"         validate:"omitempty,max=100"`
	Country     *string `json:"country,omitempty"      validate:"omitempty,max=100"`
	Email       *string `json:"email,omitempty"        validate:"omitempty,email,max=255"`

	// Avatar is a base64 data URI; it is decoded into the blob store
	// and only the content key lands on the user row.
	Avatar *string `json:"avatar,omitempty" validate:"omitempty,max=4000000"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=128"`
}

type NotificationPreferences struct {
	EmailUpdates   bool `json:"email_updates"`
	MatchAlerts    bool `json:"match_alerts"`
	ProductNews    bool `json:"product_news"`
	SecurityAlerts bool `json:"security_alerts"`
	WeeklyDigest   bool `json:"weekly_digest"`
}

type ChangePasswordResponse struct {
	Token string `json:"token"`
}

type SubscriptionResponse struct {
	Role           string   `json:"role"`
	Tier           string   `json:"tier"`
	Paid           bool     `json:"paid"`
	AvailableTiers []string `json:"available_tiers"`
}

type ProfileResponse struct {
	User     user.UserResponse `json:"user"`
	RoleData any               `json:"role_data,omitempty"`
}
