// AngelaMos | 2026
// service_test.go

package auth

import (
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bite-platform/bite-backend/internal/core"
	"github.com/bite-platform/bite-backend/internal/profile"
	"github.com/bite-platform/bite-backend/internal/role"
	"github.com/bite-platform/bite-backend/internal/user"
)

type fakeUsers struct {
	byEmail     map[string]*user.User
	byResetHash map[string]*user.User
	created     []*user.User
	resetCalls  []string
	newHash     string
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{
		byEmail:     make(map[string]*user.User),
		byResetHash: make(map[string]*user.User),
	}
}

func (f *fakeUsers) CreateAccount(
	ctx context.Context,
	u *user.User,
	newProfile profile.NewProfile,
) (*user.User, error) {
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, core.DuplicateError("an account with this email already exists")
	}
	f.byEmail[u.Email] = u
	f.created = append(f.created, u)
	return u, nil
}

func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, core.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetByID(ctx context.Context, id string) (*user.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, core.ErrNotFound
}

func (f *fakeUsers) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeUsers) SetResetToken(
	ctx context.Context,
	id, tokenHash string,
	expires time.Time,
) error {
	u, err := f.GetByID(ctx, id)
	if err != nil {
		return err
	}
	u.ResetTokenHash = &tokenHash
	u.ResetTokenExpires = &expires
	f.byResetHash[tokenHash] = u
	return nil
}

func (f *fakeUsers) GetByResetTokenHash(
	ctx context.Context,
	tokenHash string,
) (*user.User, error) {
	u, ok := f.byResetHash[tokenHash]
	if !ok {
		return nil, core.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) ResetPassword(ctx context.Context, id, passwordHash string) error {
	f.resetCalls = append(f.resetCalls, id)
	f.newHash = passwordHash
	return nil
}

type fakeMailer struct {
	sent []string // reset URLs
}

func (f *fakeMailer) SendPasswordReset(
	ctx context.Context,
	toEmail, toName, resetURL string,
) error {
	f.sent = append(f.sent, resetURL)
	return nil
}

type fakeRevoker struct {
	jtis         []string
	revokedUsers []string
}

func (f *fakeRevoker) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	f.jtis = append(f.jtis, jti)
	return nil
}

func (f *fakeRevoker) RevokeUser(ctx context.Context, userID string) error {
	f.revokedUsers = append(f.revokedUsers, userID)
	return nil
}

func newTestService(t *testing.T) (*Service, *fakeUsers, *fakeMailer) {
	t.Helper()

	users := newFakeUsers()
	mail := &fakeMailer{}
	svc := NewService(
		users,
		newTestManager(t, time.Hour),
		&fakeRevoker{},
		mail,
		"https://app.example.com",
		slog.New(slog.DiscardHandler),
	)
	return svc, users, mail
}

func studentRequest() RegisterRequest {
	return RegisterRequest{
		Email:       "ada@example.com",
		Password:    "correct horse",
		FullName:    "Ada Lovelace",
		PhoneNumber: "+1 555 0100",
		City:        "London",
		Country:     "UK",
		Role:        "student",
		Tier:        role.TierFree,
		NewProfile: profile.NewProfile{
			Student: &profile.StudentInput{
				Institution:    "MIT",
				Degree:         "CS",
				GraduationYear: 2027,
				Skills:         "Go, SQL",
				CareerGoals:    "Backend engineering",
				Availability:   "Summer",
			},
		},
	}
}

func seedUser(t *testing.T, users *fakeUsers, email, password string) *user.User {
	t.Helper()

	hash, err := core.HashPassword(password)
	require.NoError(t, err)

	u := &user.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hash,
		FullName:     "Seeded User",
		Role:         "student",
		Tier:         role.TierFree,
	}
	users.byEmail[email] = u
	return u
}

func TestRegisterSuccess(t *testing.T) {
	svc, users, _ := newTestService(t)

	resp, err := svc.Register(context.Background(), studentRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ada@example.com", resp.User.Email)
	assert.Equal(t, "student", resp.User.Role)
	assert.Equal(t, role.TierFree, resp.User.Tier)

	require.Len(t, users.created, 1)
	assert.NotEqual(t, "correct horse", users.created[0].PasswordHash)

	match, err := core.VerifyPassword("correct horse", users.created[0].PasswordHash)
	require.NoError(t, err)
	assert.True(t, match)
}

func TestRegisterDefaultsTierToFree(t *testing.T) {
	svc, _, _ := newTestService(t)

	req := studentRequest()
	req.Tier = ""

	resp, err := svc.Register(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, role.TierFree, resp.User.Tier)
}

func TestRegisterRejectsMismatchedProfile(t *testing.T) {
	svc, users, _ := newTestService(t)

	req := studentRequest()
	req.Student = nil
	req.Startup = &profile.StartupInput{
		CompanyName:        "Acme",
		Industry:           "SaaS",
		CompanySize:        "1-10",
		TeamSize:           4,
		FundingStage:       "Seed",
		HiringNeeds:        "Engineers",
		ProjectDescription: "Platform",
	}

	_, err := svc.Register(context.Background(), req)

	appErr, ok := core.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Empty(t, users.created)
}

func TestRegisterRejectsCrossRoleTier(t *testing.T) {
	svc, users, _ := newTestService(t)

	req := studentRequest()
	req.Tier = role.TierProFounder

	_, err := svc.Register(context.Background(), req)

	appErr, ok := core.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Empty(t, users.created)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	svc, _, _ := newTestService(t)

	req := studentRequest()
	req.Role = "admin"

	_, err := svc.Register(context.Background(), req)

	appErr, ok := core.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, users, _ := newTestService(t)
	seedUser(t, users, "ada@example.com", "other password")

	_, err := svc.Register(context.Background(), studentRequest())

	appErr, ok := core.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "CONFLICT", appErr.Code)
	assert.Empty(t, users.created)
}

func TestLoginSuccess(t *testing.T) {
	svc, users, _ := newTestService(t)
	seedUser(t, users, "ada@example.com", "secret123")

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ada@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ada@example.com", resp.User.Email)
}

func TestLoginFailureIsIndistinct(t *testing.T) {
	svc, users, _ := newTestService(t)
	seedUser(t, users, "ada@example.com", "secret123")

	_, wrongPassword := svc.Login(context.Background(), LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong",
	})
	_, unknownEmail := svc.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})

	// Same code and message whichever field was wrong.
	wrongErr, ok := core.AsAppError(wrongPassword)
	require.True(t, ok)
	unknownErr, ok := core.AsAppError(unknownEmail)
	require.True(t, ok)

	assert.Equal(t, wrongErr.Code, unknownErr.Code)
	assert.Equal(t, wrongErr.Message, unknownErr.Message)
	assert.NotContains(t, unknownErr.Message, "email")
}

func TestLoginRejectsDeletedAccount(t *testing.T) {
	svc, users, _ := newTestService(t)
	u := seedUser(t, users, "ada@example.com", "secret123")
	now := time.Now()
	u.DeletedAt = &now

	_, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ada@example.com",
		Password: "secret123",
	})

	appErr, ok := core.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "UNAUTHORIZED", appErr.Code)
}

func TestForgotPasswordUnknownEmailSilent(t *testing.T) {
	svc, _, mail := newTestService(t)

	err := svc.ForgotPassword(context.Background(), "nobody@example.com")

	assert.NoError(t, err)
	assert.Empty(t, mail.sent)
}

func TestForgotPasswordSendsResetLink(t *testing.T) {
	svc, users, mail := newTestService(t)
	u := seedUser(t, users, "ada@example.com", "secret123")

	err := svc.ForgotPassword(context.Background(), "ada@example.com")
	require.NoError(t, err)

	require.NotNil(t, u.ResetTokenHash)
	require.NotNil(t, u.ResetTokenExpires)
	require.Len(t, mail.sent, 1)
	assert.True(t, strings.HasPrefix(
		mail.sent[0],
		"https://app.example.com/reset-password?token=",
	))

	// The stored hash must not be the raw token from the link.
	assert.NotContains(t, mail.sent[0], *u.ResetTokenHash)
}

func TestResetPasswordRoundTrip(t *testing.T) {
	svc, users, mail := newTestService(t)
	u := seedUser(t, users, "ada@example.com", "old password")

	require.NoError(t, svc.ForgotPassword(context.Background(), "ada@example.com"))
	require.Len(t, mail.sent, 1)

	token := strings.TrimPrefix(
		mail.sent[0],
		"https://app.example.com/reset-password?token=",
	)

	err := svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Token:       token,
		NewPassword: "brand new password",
	})
	require.NoError(t, err)

	require.Equal(t, []string{u.ID}, users.resetCalls)

	match, err := core.VerifyPassword("brand new password", users.newHash)
	require.NoError(t, err)
	assert.True(t, match)
}

// Resetting the password cuts off every session issued before it; a
// leaked token does not survive the reset.
func TestResetPasswordRevokesOutstandingSessions(t *testing.T) {
	svc, users, mail := newTestService(t)
	u := seedUser(t, users, "ada@example.com", "old password")

	require.NoError(t, svc.ForgotPassword(context.Background(), "ada@example.com"))

	token := strings.TrimPrefix(
		mail.sent[0],
		"https://app.example.com/reset-password?token=",
	)

	err := svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Token:       token,
		NewPassword: "brand new password",
	})
	require.NoError(t, err)

	revoker := svc.revocations.(*fakeRevoker)
	assert.Equal(t, []string{u.ID}, revoker.revokedUsers)
}

func TestRevokeUserSessions(t *testing.T) {
	svc, _, _ := newTestService(t)

	require.NoError(t, svc.RevokeUserSessions(context.Background(), "user-9"))

	revoker := svc.revocations.(*fakeRevoker)
	assert.Equal(t, []string{"user-9"}, revoker.revokedUsers)
}

func TestResetPasswordExpiredToken(t *testing.T) {
	svc, users, mail := newTestService(t)
	u := seedUser(t, users, "ada@example.com", "old password")

	require.NoError(t, svc.ForgotPassword(context.Background(), "ada@example.com"))
	expired := time.Now().Add(-time.Minute)
	u.ResetTokenExpires = &expired

	token := strings.TrimPrefix(
		mail.sent[0],
		"https://app.example.com/reset-password?token=",
	)

	err := svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Token:       token,
		NewPassword: "brand new password",
	})

	appErr, ok := core.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Empty(t, users.resetCalls)
}

func TestResetPasswordBogusToken(t *testing.T) {
	svc, users, _ := newTestService(t)

	err := svc.ResetPassword(context.Background(), ResetPasswordRequest{
		Token:       "bogus",
		NewPassword: "brand new password",
	})

	appErr, ok := core.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Empty(t, users.resetCalls)
}
