package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionRegistry tracks per-user active tokens and the revocation blacklist
// in Redis. Key formats: token_<userId> and bl_<token>. Entries carry a TTL
// and evict themselves; expired entries read as absent.
type SessionRegistry struct {
	client *redis.Client
}

// NewSessionRegistry creates a SessionRegistry wrapping the given Redis client.
func NewSessionRegistry(client *redis.Client) *SessionRegistry {
	return &SessionRegistry{client: client}
}

// RecordActiveToken overwrites the user's active-token record. The record is
// advisory; authorization never consults it.
func (s *SessionRegistry) RecordActiveToken(ctx context.Context, userID int64, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, activeTokenKey(userID), token, ttl).Err(); err != nil {
		return fmt.Errorf("record active token: %w", err)
	}
	return nil
}

// ClearActiveToken removes the user's active-token record. No error if absent.
func (s *SessionRegistry) ClearActiveToken(ctx context.Context, userID int64) error {
	if err := s.client.Del(ctx, activeTokenKey(userID)).Err(); err != nil {
		return fmt.Errorf("clear active token: %w", err)
	}
	return nil
}

// Blacklist marks the token revoked for ttl. Re-blacklisting refreshes the
// entry, which only ever extends revocation.
func (s *SessionRegistry) Blacklist(ctx context.Context, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, blacklistKey(token), "true", ttl).Err(); err != nil {
		return fmt.Errorf("blacklist token: %w", err)
	}
	return nil
}

// IsBlacklisted reports whether the token is currently revoked.
func (s *SessionRegistry) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := s.client.Exists(ctx, blacklistKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("blacklist check: %w", err)
	}
	return n > 0, nil
}

func activeTokenKey(userID int64) string {
	return fmt.Sprintf("token_%d", userID)
}

func blacklistKey(token string) string {
	return "bl_" + token
}
