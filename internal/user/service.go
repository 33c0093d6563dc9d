// AngelaMos | 2026
// service.go

package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/bite-platform/bite-backend/internal/core"
	"github.com/bite-platform/bite-backend/internal/profile"
	"github.com/bite-platform/bite-backend/internal/role"
)

type Service struct {
	db     *sqlx.DB
	repo   Repository
	logger *slog.Logger
}

// NewService keeps the raw handle alongside the repository so account
// creation can open its own transaction.
func NewService(db *sqlx.DB, repo Repository, logger *slog.Logger) *Service {
	return &Service{
		db:     db,
		repo:   repo,
		logger: logger,
	}
}

// CreateAccount inserts the user row and its role profile in a single
// transaction. The unique index on email is the source of truth for
// duplicates: a concurrent registration loses here, not at a pre-check.
func (s *Service) CreateAccount(
	ctx context.Context,
	u *User,
	newProfile profile.NewProfile,
) (*User, error) {
	r, ok := role.Parse(u.Role)
	if !ok {
		return nil, core.ValidationError("invalid role")
	}

	err := core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		users := NewRepository(tx)
		if err := users.Create(ctx, u); err != nil {
			return err
		}

		if r.IsApplicant() {
			profiles := profile.NewRepository(tx)
			if err := profiles.Create(ctx, u.ID, r, newProfile); err != nil {
				return err
			}
		}

		return nil
	})
	if errors.Is(err, core.ErrDuplicateKey) {
		return nil, core.DuplicateError("an account with this email already exists")
	}
	if err != nil {
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.logger.Info("account created",
		"user_id", u.ID,
		"role", u.Role,
		"tier", u.Tier,
	)

	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return nil, core.NotFoundError("user not found")
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.GetByEmail(ctx, email)
}

// ExistsByEmail is a cheap pre-check for registration. It is advisory
// only; the unique index still decides under concurrency.
func (s *Service) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.repo.ExistsByEmail(ctx, email)
}

// UpdateSettings applies the account-holder's own profile edits. Email
// changes ride the same unique index as registration.
func (s *Service) UpdateSettings(
	ctx context.Context,
	id string,
	fullName, phoneNumber, city, country, email *string,
) (*User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if fullName != nil {
		u.FullName = *fullName
	}
	if phoneNumber != nil {
		u.PhoneNumber = *phoneNumber
	}
	if city != nil {
		u.City = *city
	}
	if country != nil {
		u.Country = *country
	}
	if email != nil {
		u.Email = *email
	}

	err = s.repo.UpdateProfile(ctx, u)
	if errors.Is(err, core.ErrDuplicateKey) {
		return nil, core.DuplicateError("email already in use")
	}
	if err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}

	return u, nil
}

// ChangePassword verifies the current password before storing the new
// hash. Session invalidation is the caller's concern.
func (s *Service) ChangePassword(
	ctx context.Context,
	id, currentPassword, newPassword string,
) (*User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	match, err := core.VerifyPassword(currentPassword, u.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("change password: %w", err)
	}
	if !match {
		return nil, core.UnauthorizedError("current password is incorrect")
	}

	hash, err := core.HashPassword(newPassword)
	if err != nil {
		return nil, fmt.Errorf("change password: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, id, hash); err != nil {
		return nil, fmt.Errorf("change password: %w", err)
	}

	s.logger.Info("password changed", "user_id", id)

	return u, nil
}

func (s *Service) SetAvatarKey(ctx context.Context, id string, key *string) error {
	err := s.repo.SetAvatarKey(ctx, id, key)
	if errors.Is(err, core.ErrNotFound) {
		return core.NotFoundError("user not found")
	}
	return err
}

// Admin surface.

func (s *Service) Update(
	ctx context.Context,
	id string,
	req UpdateUserRequest,
) (*User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		u.FullName = *req.FullName
	}
	if req.PhoneNumber != nil {
		u.PhoneNumber = *req.PhoneNumber
	}
	if req.City != nil {
		u.City = *req.City
	}
	if req.Country != nil {
		u.Country = *req.Country
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	return u, nil
}

// UpdateRole moves a user to a new role. Tiers are role-scoped, so the
// old tier is meaningless afterwards and drops back to Free.
func (s *Service) UpdateRole(
	ctx context.Context,
	id string,
	newRole string,
) (*User, error) {
	r, ok := role.Parse(newRole)
	if !ok {
		return nil, core.ValidationError("invalid role")
	}

	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u.Role = r.String()
	u.Tier = role.TierFree

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}

	s.logger.Info("role changed", "user_id", id, "role", u.Role)

	return u, nil
}

func (s *Service) UpdateTier(
	ctx context.Context,
	id string,
	tier string,
) (*User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !role.ValidTier(u.RoleValue(), tier) {
		return nil, core.ValidationError(
			fmt.Sprintf("tier %q is not available for role %q", tier, u.Role),
		)
	}

	u.Tier = tier

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("update tier: %w", err)
	}

	s.logger.Info("tier changed", "user_id", id, "tier", u.Tier)

	return u, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.repo.SoftDelete(ctx, id)
	if errors.Is(err, core.ErrNotFound) {
		return core.NotFoundError("user not found")
	}
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.logger.Info("user deleted", "user_id", id)

	return nil
}

func (s *Service) List(
	ctx context.Context,
	params ListUsersParams,
) ([]User, int, error) {
	params.Normalize()
	return s.repo.List(ctx, params)
}

// Password reset plumbing used by the auth service.

func (s *Service) SetResetToken(
	ctx context.Context,
	id, tokenHash string,
	expires time.Time,
) error {
	return s.repo.SetResetToken(ctx, id, tokenHash, expires)
}

func (s *Service) GetByResetTokenHash(
	ctx context.Context,
	tokenHash string,
) (*User, error) {
	return s.repo.GetByResetTokenHash(ctx, tokenHash)
}

// ResetPassword stores the new hash and burns the token in one
// statement, so a token can never be replayed.
func (s *Service) ResetPassword(
	ctx context.Context,
	id, passwordHash string,
) error {
	return s.repo.ClearResetToken(ctx, id, passwordHash)
}
