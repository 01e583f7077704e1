package ports

import (
	"context"
	"time"
)

// SessionRegistry tracks mutable server-side token state: the current active
// token per user and the revocation blacklist. Entries expire on their own;
// no sweep is needed.
type SessionRegistry interface {
	// RecordActiveToken overwrites the user's active-token record. The record
	// is advisory only; it is never consulted during authorization.
	RecordActiveToken(ctx context.Context, userID int64, token string, ttl time.Duration) error
	// ClearActiveToken removes the record. Idempotent.
	ClearActiveToken(ctx context.Context, userID int64) error
	// Blacklist revokes the token for ttl. Idempotent.
	Blacklist(ctx context.Context, token string, ttl time.Duration) error
	// IsBlacklisted reports whether the token is currently revoked. Expired
	// entries count as absent.
	IsBlacklisted(ctx context.Context, token string) (bool, error)
}
