// AngelaMos | 2026
// service.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/bite-platform/bite-backend/internal/core"
	"github.com/bite-platform/bite-backend/internal/middleware"
	"github.com/bite-platform/bite-backend/internal/profile"
	"github.com/bite-platform/bite-backend/internal/role"
	"github.com/bite-platform/bite-backend/internal/user"
)

// UserProvider is the slice of the user service the auth flows need.
type UserProvider interface {
	CreateAccount(ctx context.Context, u *user.User, newProfile profile.NewProfile) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	GetByID(ctx context.Context, id string) (*user.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	SetResetToken(ctx context.Context, id, tokenHash string, expires time.Time) error
	GetByResetTokenHash(ctx context.Context, tokenHash string) (*user.User, error)
	ResetPassword(ctx context.Context, id, passwordHash string) error
}

// Mailer delivers the password reset email. The console implementation
// is used in development.
type Mailer interface {
	SendPasswordReset(ctx context.Context, toEmail, toName, resetURL string) error
}

// SessionRevoker invalidates issued tokens, one jti at a time or
// user-wide. Satisfied by *RevocationStore.
type SessionRevoker interface {
	Revoke(ctx context.Context, jti string, expiresAt time.Time) error
	RevokeUser(ctx context.Context, userID string) error
}

type Service struct {
	users       UserProvider
	jwt         *JWTManager
	revocations SessionRevoker
	mailer      Mailer
	clientURL   string
	logger      *slog.Logger
}

func NewService(
	users UserProvider,
	jwtManager *JWTManager,
	revocations SessionRevoker,
	mailer Mailer,
	clientURL string,
	logger *slog.Logger,
) *Service {
	return &Service{
		users:       users,
		jwt:         jwtManager,
		revocations: revocations,
		mailer:      mailer,
		clientURL:   clientURL,
		logger:      logger,
	}
}

// Register creates the account and logs the user straight in. The
// role/profile pairing is checked before any write so a mismatched
// payload never opens a transaction.
func (s *Service) Register(
	ctx context.Context,
	req RegisterRequest,
) (*AuthResponse, error) {
	r, ok := role.Parse(req.Role)
	if !ok || !r.IsApplicant() {
		return nil, core.ValidationError("invalid role")
	}

	if !req.NewProfile.Matches(r) {
		return nil, core.ValidationError(
			"profile data does not match the selected role",
		)
	}

	tier := req.Tier
	if tier == "" {
		tier = role.TierFree
	}
	if !role.ValidTier(r, tier) {
		return nil, core.ValidationError(
			fmt.Sprintf("tier %q is not available for role %q", tier, req.Role),
		)
	}

	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if exists {
		return nil, core.DuplicateError("an account with this email already exists")
	}

	hash, err := core.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	u := &user.User{
		ID:           uuid.New().String(),
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		PhoneNumber:  req.PhoneNumber,
		City:         req.City,
		Country:      req.Country,
		Role:         r.String(),
		Tier:         tier,
	}

	created, err := s.users.CreateAccount(ctx, u, req.NewProfile)
	if err != nil {
		return nil, err
	}

	token, err := s.IssueToken(created)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		"user_id", created.ID,
		"role", created.Role,
	)

	return &AuthResponse{
		Token: token,
		User:  user.ToUserResponse(created),
	}, nil
}

// Login authenticates via a timing-safe comparison: unknown emails
// still burn an argon2id verification so response times do not reveal
// whether the account exists.
func (s *Service) Login(
	ctx context.Context,
	req LoginRequest,
) (*AuthResponse, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, core.ErrNotFound) {
		return nil, fmt.Errorf("login: %w", err)
	}

	var hash *string
	if u != nil && !u.IsDeleted() {
		hash = &u.PasswordHash
	}

	match, err := core.VerifyPasswordTimingSafe(req.Password, hash)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if !match || hash == nil {
		return nil, core.UnauthorizedError("invalid email or password")
	}

	token, err := s.IssueToken(u)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", "user_id", u.ID)

	return &AuthResponse{
		Token: token,
		User:  user.ToUserResponse(u),
	}, nil
}

// IssueToken signs a fresh session token for u.
func (s *Service) IssueToken(u *user.User) (string, error) {
	token, _, err := s.jwt.CreateSessionToken(SessionTokenClaims{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
		Tier:   u.Tier,
	})
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	return token, nil
}

// Logout revokes the presented token's jti for its remaining lifetime.
func (s *Service) Logout(
	ctx context.Context,
	claims *middleware.SessionClaims,
) error {
	if claims == nil {
		return nil
	}

	if err := s.revocations.Revoke(ctx, claims.JTI, claims.ExpiresAt); err != nil {
		return err
	}

	s.logger.Info("user logged out", "user_id", claims.UserID)

	return nil
}

// RevokeUserSessions invalidates every outstanding token for userID.
// Password change and reset call this, then the caller is handed a
// fresh token where the flow allows one.
func (s *Service) RevokeUserSessions(ctx context.Context, userID string) error {
	return s.revocations.RevokeUser(ctx, userID)
}

// ForgotPassword always reports success: whether the email exists is
// not something this endpoint reveals.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, core.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("forgot password: %w", err)
	}
	if u.IsDeleted() {
		return nil
	}

	resetToken, err := core.GenerateResetToken()
	if err != nil {
		return fmt.Errorf("forgot password: %w", err)
	}

	err = s.users.SetResetToken(ctx, u.ID, resetToken.Hash, resetToken.ExpiresAt)
	if err != nil {
		return fmt.Errorf("forgot password: %w", err)
	}

	resetURL := fmt.Sprintf(
		"%s/reset-password?token=%s",
		s.clientURL,
		url.QueryEscape(resetToken.Token),
	)

	if mailErr := s.mailer.SendPasswordReset(ctx, u.Email, u.FullName, resetURL); mailErr != nil {
		// The token is stored, so the user can retry; do not leak the
		// failure to the caller.
		s.logger.Error("failed to send reset email",
			"user_id", u.ID,
			"error", mailErr,
		)
	}

	return nil
}

// ResetPassword consumes the token: one statement writes the new hash
// and clears the token, so it cannot be replayed.
func (s *Service) ResetPassword(
	ctx context.Context,
	req ResetPasswordRequest,
) error {
	tokenHash := core.HashToken(req.Token)

	u, err := s.users.GetByResetTokenHash(ctx, tokenHash)
	if errors.Is(err, core.ErrNotFound) {
		return core.ValidationError("reset token is invalid or expired")
	}
	if err != nil {
		return fmt.Errorf("reset password: %w", err)
	}

	if u.ResetTokenExpired() {
		return core.ValidationError("reset token is invalid or expired")
	}

	hash, err := core.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("reset password: %w", err)
	}

	if err := s.users.ResetPassword(ctx, u.ID, hash); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}

	// A stolen session token must not outlive the reset.
	if err := s.revocations.RevokeUser(ctx, u.ID); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}

	s.logger.Info("password reset", "user_id", u.ID)

	return nil
}
