// AngelaMos | 2026
// auth_test.go

package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bite-platform/bite-backend/internal/core"
	"github.com/bite-platform/bite-backend/internal/middleware"
)

type fakeVerifier struct {
	claims *middleware.SessionClaims
	err    error
}

func (f fakeVerifier) VerifyToken(
	ctx context.Context,
	token string,
) (*middleware.SessionClaims, error) {
	return f.claims, f.err
}

type fakeRevocations struct {
	revoked    map[string]bool
	userCutoff map[string]time.Time
}

func (f fakeRevocations) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return f.revoked[jti], nil
}

func (f fakeRevocations) IsUserRevoked(
	ctx context.Context,
	userID string,
	issuedAt time.Time,
) (bool, error) {
	cutoff, ok := f.userCutoff[userID]
	return ok && issuedAt.Before(cutoff), nil
}

func validClaims() *middleware.SessionClaims {
	return &middleware.SessionClaims{
		UserID:    "user-1",
		Email:     "ada@example.com",
		Role:      "student",
		Tier:      "Career+",
		JTI:       "jti-1",
		IssuedAt:  time.Now().Add(-time.Minute),
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func callAuthenticated(
	t *testing.T,
	mw func(http.Handler) http.Handler,
	token string,
) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()

	var seen *http.Request
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	mw(inner).ServeHTTP(rec, req)
	return rec, seen
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body core.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error.Code
}

func TestAuthenticatorMissingToken(t *testing.T) {
	mw := middleware.Authenticator(fakeVerifier{claims: validClaims()}, nil)

	rec, _ := callAuthenticated(t, mw, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec))
}

func TestAuthenticatorInvalidToken(t *testing.T) {
	mw := middleware.Authenticator(fakeVerifier{err: core.ErrTokenInvalid}, nil)

	rec, _ := callAuthenticated(t, mw, "bad-token")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "TOKEN_INVALID", errorCode(t, rec))
}

func TestAuthenticatorExpiredToken(t *testing.T) {
	mw := middleware.Authenticator(fakeVerifier{err: core.ErrTokenExpired}, nil)

	rec, _ := callAuthenticated(t, mw, "stale-token")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "TOKEN_EXPIRED", errorCode(t, rec))
}

func TestAuthenticatorRevokedToken(t *testing.T) {
	mw := middleware.Authenticator(
		fakeVerifier{claims: validClaims()},
		fakeRevocations{revoked: map[string]bool{"jti-1": true}},
	)

	rec, _ := callAuthenticated(t, mw, "revoked-token")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "TOKEN_REVOKED", errorCode(t, rec))
}

// A password change revokes the whole user, not individual jtis: any
// token issued before the cutoff is rejected even if its jti was
// never blacklisted.
func TestAuthenticatorUserRevokedBeforeCutoff(t *testing.T) {
	mw := middleware.Authenticator(
		fakeVerifier{claims: validClaims()},
		fakeRevocations{userCutoff: map[string]time.Time{"user-1": time.Now()}},
	)

	rec, _ := callAuthenticated(t, mw, "pre-reset-token")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "TOKEN_REVOKED", errorCode(t, rec))
}

func TestAuthenticatorUserCutoffBeforeIssuance(t *testing.T) {
	mw := middleware.Authenticator(
		fakeVerifier{claims: validClaims()},
		fakeRevocations{
			userCutoff: map[string]time.Time{"user-1": time.Now().Add(-time.Hour)},
		},
	)

	rec, _ := callAuthenticated(t, mw, "post-reset-token")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticatorPopulatesContext(t *testing.T) {
	mw := middleware.Authenticator(
		fakeVerifier{claims: validClaims()},
		fakeRevocations{},
	)

	rec, seen := callAuthenticated(t, mw, "good-token")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)

	ctx := seen.Context()
	assert.Equal(t, "user-1", middleware.GetUserID(ctx))
	assert.Equal(t, "ada@example.com", middleware.GetUserEmail(ctx))
	assert.Equal(t, "student", middleware.GetUserRole(ctx))
	assert.Equal(t, "Career+", middleware.GetUserTier(ctx))
	assert.True(t, middleware.IsAuthenticated(ctx))
	assert.False(t, middleware.IsAdmin(ctx))

	claims := middleware.GetClaims(ctx)
	require.NotNil(t, claims)
	assert.Equal(t, "jti-1", claims.JTI)
}

func TestRequireRole(t *testing.T) {
	authed := middleware.Authenticator(
		fakeVerifier{claims: validClaims()},
		nil,
	)

	allow := func(next http.Handler) http.Handler {
		return authed(middleware.RequireRole("student", "startup")(next))
	}
	deny := func(next http.Handler) http.Handler {
		return authed(middleware.RequireRole("investor")(next))
	}

	rec, _ := callAuthenticated(t, allow, "token")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = callAuthenticated(t, deny, "token")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(t, rec))
}

func TestRequireAdmin(t *testing.T) {
	claims := validClaims()
	claims.Role = "admin"

	authed := middleware.Authenticator(fakeVerifier{claims: claims}, nil)
	mw := func(next http.Handler) http.Handler {
		return authed(middleware.RequireAdmin(next))
	}

	rec, seen := callAuthenticated(t, mw, "token")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, middleware.IsAdmin(seen.Context()))
}
