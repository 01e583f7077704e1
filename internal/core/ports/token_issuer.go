package ports

import (
	"time"

	"github.com/staffhub/employee-system/internal/core/domain"
)

// TokenIssuer signs and verifies session tokens. Pure cryptographic
// operations over a fixed secret; no side effects.
type TokenIssuer interface {
	// Issue mints a signed token carrying {id, role} with a fixed lifetime.
	Issue(userID int64, roleName string) (string, error)
	// Verify checks signature and expiry. Fails with domain.ErrTokenMalformed
	// or domain.ErrTokenExpired; both are terminal.
	Verify(token string) (domain.Claims, error)
	// RemainingLifetime reports how long until the token's natural expiry.
	// Used to size blacklist entries; returns 0 when the expiry cannot be read.
	RemainingLifetime(token string) time.Duration
	// TTL is the configured token lifetime.
	TTL() time.Duration
}
