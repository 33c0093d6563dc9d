// AngelaMos | 2026
// handler.go

package dashboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bite-platform/bite-backend/internal/core"
	"github.com/bite-platform/bite-backend/internal/middleware"
	"github.com/bite-platform/bite-backend/internal/profile"
	"github.com/bite-platform/bite-backend/internal/role"
	"github.com/bite-platform/bite-backend/internal/user"
)

type Handler struct {
	users    *user.Service
	profiles *profile.Service
}

func NewHandler(users *user.Service, profiles *profile.Service) *Handler {
	return &Handler{
		users:    users,
		profiles: profiles,
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.Get)
}

type dashboardResponse struct {
	User     user.UserResponse `json:"user"`
	RoleData any               `json:"role_data,omitempty"`
	Widgets  []Widget          `json:"dashboard_widgets"`
}

// Get composes the dashboard from the database row, not the token:
// a tier change by an admin shows up here on the next request even
// though the token still carries the old tier.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	u, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	userRole, _ := role.Parse(u.Role)

	roleData, err := h.profiles.FetchOrNil(r.Context(), userRole, u.ID)
	if err != nil {
		core.JSONError(w, err)
		return
	}

	core.OK(w, dashboardResponse{
		User:     user.ToUserResponse(u),
		RoleData: roleData,
		Widgets:  Compose(userRole, u.Tier, roleData),
	})
}
