// AngelaMos | 2026
// service.go

package profile

import (
	"context"
	"errors"
	"fmt"

	"github.com/bite-platform/bite-backend/internal/core"
	"github.com/bite-platform/bite-backend/internal/role"
)

// Service exposes role-scoped profile reads. Writes happen inside the
// registration transaction and go through Repository directly.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Fetch loads the profile row for the user's role and returns it as the
// role-specific struct. Admins have no profile row and get nil.
func (s *Service) Fetch(ctx context.Context, r role.Role, userID string) (any, error) {
	switch r {
	case role.Student:
		return s.repo.GetStudent(ctx, userID)
	case role.Startup:
		return s.repo.GetStartup(ctx, userID)
	case role.Business:
		return s.repo.GetBusiness(ctx, userID)
	case role.Investor:
		return s.repo.GetInvestor(ctx, userID)
	case role.Admin:
		return nil, nil
	default:
		return nil, fmt.Errorf("fetch profile: unknown role %q: %w", r, core.ErrInvalidInput)
	}
}

// FetchOrNil is Fetch with a missing row or unrecognized stored role
// softened to nil. The dashboard uses it so such a user still gets
// their base widgets instead of an error.
func (s *Service) FetchOrNil(ctx context.Context, r role.Role, userID string) (any, error) {
	data, err := s.Fetch(ctx, r, userID)
	if errors.Is(err, core.ErrNotFound) || errors.Is(err, core.ErrInvalidInput) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}
