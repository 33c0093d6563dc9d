// AngelaMos | 2026
// jwt_test.go

package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bite-platform/bite-backend/internal/config"
	"github.com/bite-platform/bite-backend/internal/core"
	"github.com/bite-platform/bite-backend/internal/role"
)

func newTestManager(t *testing.T, expire time.Duration) *JWTManager {
	t.Helper()

	dir := t.TempDir()
	privatePath := filepath.Join(dir, "private.pem")
	publicPath := filepath.Join(dir, "public.pem")

	require.NoError(t, GenerateKeyPair(privatePath, publicPath))

	manager, err := NewJWTManager(config.JWTConfig{
		PrivateKeyPath: privatePath,
		PublicKeyPath:  publicPath,
		SessionExpire:  expire,
		Issuer:         "bite-api",
		Audience:       "bite-clients",
	})
	require.NoError(t, err)

	return manager
}

func TestSessionTokenRoundTrip(t *testing.T) {
	manager := newTestManager(t, 168*time.Hour)

	token, jti, err := manager.CreateSessionToken(SessionTokenClaims{
		UserID: "user-1",
		Email:  "ada@example.com",
		Role:   role.Student.String(),
		Tier:   role.TierCareerPlus,
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, jti)

	claims, err := manager.VerifyToken(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "student", claims.Role)
	assert.Equal(t, role.TierCareerPlus, claims.Tier)
	assert.Equal(t, jti, claims.JTI)
	assert.WithinDuration(t, time.Now(), claims.IssuedAt, time.Minute)
	assert.WithinDuration(t, time.Now().Add(168*time.Hour), claims.ExpiresAt, time.Minute)
}

func TestVerifyTokenUniqueJTI(t *testing.T) {
	manager := newTestManager(t, time.Hour)

	claims := SessionTokenClaims{UserID: "user-1", Email: "a@b.c", Role: "student", Tier: "Free"}

	_, first, err := manager.CreateSessionToken(claims)
	require.NoError(t, err)
	_, second, err := manager.CreateSessionToken(claims)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyTokenExpired(t *testing.T) {
	manager := newTestManager(t, -time.Minute)

	token, _, err := manager.CreateSessionToken(SessionTokenClaims{
		UserID: "user-1",
		Email:  "a@b.c",
		Role:   "student",
		Tier:   "Free",
	})
	require.NoError(t, err)

	_, err = manager.VerifyToken(context.Background(), token)
	assert.True(t, errors.Is(err, core.ErrTokenExpired))
}

func TestVerifyTokenGarbage(t *testing.T) {
	manager := newTestManager(t, time.Hour)

	_, err := manager.VerifyToken(context.Background(), "not.a.token")
	assert.True(t, errors.Is(err, core.ErrTokenInvalid))
}

func TestVerifyTokenWrongKey(t *testing.T) {
	issuer := newTestManager(t, time.Hour)
	verifier := newTestManager(t, time.Hour)

	token, _, err := issuer.CreateSessionToken(SessionTokenClaims{
		UserID: "user-1",
		Email:  "a@b.c",
		Role:   "student",
		Tier:   "Free",
	})
	require.NoError(t, err)

	_, err = verifier.VerifyToken(context.Background(), token)
	assert.True(t, errors.Is(err, core.ErrTokenInvalid))
}
