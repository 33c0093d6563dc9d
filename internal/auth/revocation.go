// AngelaMos | 2026
// revocation.go

package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bite-platform/bite-backend/internal/core"
)

// RevocationStore keeps revocation state in redis: per-jti entries for
// logout, and a per-user cutoff timestamp for password change and
// reset. Entries live no longer than the tokens they invalidate.
type RevocationStore struct {
	rdb        *redis.Client
	sessionTTL time.Duration
}

func NewRevocationStore(rdb *redis.Client, sessionTTL time.Duration) *RevocationStore {
	return &RevocationStore{rdb: rdb, sessionTTL: sessionTTL}
}

// Revoke blacklists jti until expiresAt. A token already past expiry
// needs no entry.
func (s *RevocationStore) Revoke(
	ctx context.Context,
	jti string,
	expiresAt time.Time,
) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}

	err := s.rdb.Set(ctx, core.RedisKey("revoked", "jti", jti), "1", ttl).Err()
	if err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}

	return nil
}

func (s *RevocationStore) IsRevoked(
	ctx context.Context,
	jti string,
) (bool, error) {
	n, err := s.rdb.Exists(ctx, core.RedisKey("revoked", "jti", jti)).Result()
	if err != nil {
		return false, fmt.Errorf("check revocation: %w", err)
	}

	return n > 0, nil
}

// RevokeUser invalidates every token issued to userID before now. The
// cutoff outlives the longest-lived outstanding token, so nothing
// issued earlier can come back.
func (s *RevocationStore) RevokeUser(ctx context.Context, userID string) error {
	cutoff := strconv.FormatInt(time.Now().Unix(), 10)

	err := s.rdb.Set(ctx, core.RedisKey("revoked", "user", userID), cutoff, s.sessionTTL).Err()
	if err != nil {
		return fmt.Errorf("revoke user sessions: %w", err)
	}

	return nil
}

// IsUserRevoked reports whether a token issued at issuedAt predates
// the user's revocation cutoff. Second precision matches the jwt iat
// claim, so a token minted in the same second as the cutoff survives.
func (s *RevocationStore) IsUserRevoked(
	ctx context.Context,
	userID string,
	issuedAt time.Time,
) (bool, error) {
	val, err := s.rdb.Get(ctx, core.RedisKey("revoked", "user", userID)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check user revocation: %w", err)
	}

	cutoff, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return false, fmt.Errorf("check user revocation: %w", err)
	}

	return issuedAt.Unix() < cutoff, nil
}
