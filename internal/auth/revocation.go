package auth

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "auth:revoked:"

// RevocationStore tracks revoked token IDs in Redis. Entries expire with
// the token itself, so the set stays bounded.
type RevocationStore struct {
	client *redis.Client
}

// NewRevocationStore builds the store.
func NewRevocationStore(client *redis.Client) *RevocationStore {
	return &RevocationStore{client: client}
}

// Revoke marks a token ID as revoked until its expiry.
func (s *RevocationStore) Revoke(ctx context.Context, jti string, expiresAt time.Time) error {
	if s == nil || s.client == nil {
		return errors.New("revocation store not configured")
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, revokedKeyPrefix+jti, "1", ttl).Err()
}

// IsRevoked reports whether a token ID has been revoked. A missing store
// treats nothing as revoked.
func (s *RevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if s == nil || s.client == nil {
		return false, nil
	}
	_, err := s.client.Get(ctx, revokedKeyPrefix+jti).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
