// AngelaMos | 2026
// service.go

package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/bite-platform/bite-backend/internal/auth"
	"github.com/bite-platform/bite-backend/internal/avatar"
	"github.com/bite-platform/bite-backend/internal/core"
	"github.com/bite-platform/bite-backend/internal/middleware"
	"github.com/bite-platform/bite-backend/internal/profile"
	"github.com/bite-platform/bite-backend/internal/role"
	"github.com/bite-platform/bite-backend/internal/user"
)

type Service struct {
	users    *user.Service
	profiles *profile.Service
	avatars  *avatar.Service
	sessions *auth.Service
	rdb      *redis.Client
}

func NewService(
	users *user.Service,
	profiles *profile.Service,
	avatars *avatar.Service,
	sessions *auth.Service,
	rdb *redis.Client,
) *Service {
	return &Service{
		users:    users,
		profiles: profiles,
		avatars:  avatars,
		sessions: sessions,
		rdb:      rdb,
	}
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*ProfileResponse, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	roleData, err := s.profiles.FetchOrNil(ctx, u.RoleValue(), u.ID)
	if err != nil {
		return nil, err
	}

	return &ProfileResponse{
		User:     user.ToUserResponse(u),
		RoleData: roleData,
	}, nil
}

// UpdateProfile applies the edits and, when an avatar is included,
// stores it content-addressed before touching the user row.
func (s *Service) UpdateProfile(
	ctx context.Context,
	userID string,
	req UpdateProfileRequest,
) (*ProfileResponse, error) {
	if req.Avatar != nil {
		key, err := s.avatars.StoreDataURI(ctx, *req.Avatar)
		if err != nil {
			return nil, err
		}
		if err := s.users.SetAvatarKey(ctx, userID, &key); err != nil {
			return nil, err
		}
	}

	_, err := s.users.UpdateSettings(
		ctx,
		userID,
		req.FullName,
		req.PhoneNumber,
		req.City,
		req.Country,
		req.Email,
	)
	if err != nil {
		return nil, err
	}

	return s.GetProfile(ctx, userID)
}

// ChangePassword swaps the hash, revokes every outstanding session for
// the user, and hands back a fresh token so the caller stays logged in.
func (s *Service) ChangePassword(
	ctx context.Context,
	claims *middleware.SessionClaims,
	req ChangePasswordRequest,
) (*ChangePasswordResponse, error) {
	u, err := s.users.ChangePassword(
		ctx,
		claims.UserID,
		req.CurrentPassword,
		req.NewPassword,
	)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.RevokeUserSessions(ctx, claims.UserID); err != nil {
		return nil, err
	}

	token, err := s.sessions.IssueToken(u)
	if err != nil {
		return nil, err
	}

	return &ChangePasswordResponse{Token: token}, nil
}

func (s *Service) GetNotifications(
	ctx context.Context,
	userID string,
) (*NotificationPreferences, error) {
	raw, err := s.rdb.Get(ctx, core.RedisKey("notify", "prefs", userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return defaultNotifications(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get notification prefs: %w", err)
	}

	var prefs NotificationPreferences
	if err := json.Unmarshal(raw, &prefs); err != nil {
		return defaultNotifications(), nil
	}

	return &prefs, nil
}

func (s *Service) UpdateNotifications(
	ctx context.Context,
	userID string,
	prefs NotificationPreferences,
) error {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("update notification prefs: %w", err)
	}

	if err := s.rdb.Set(ctx, core.RedisKey("notify", "prefs", userID), raw, 0).Err(); err != nil {
		return fmt.Errorf("update notification prefs: %w", err)
	}

	return nil
}

func defaultNotifications() *NotificationPreferences {
	return &NotificationPreferences{
		EmailUpdates:   true,
		MatchAlerts:    true,
		SecurityAlerts: true,
	}
}

func (s *Service) GetSubscription(
	ctx context.Context,
	userID string,
) (*SubscriptionResponse, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	r := u.RoleValue()

	return &SubscriptionResponse{
		Role:           u.Role,
		Tier:           u.Tier,
		Paid:           role.IsPaidTier(r, u.Tier),
		AvailableTiers: role.Tiers(r),
	}, nil
}
