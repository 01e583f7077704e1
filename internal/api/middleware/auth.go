package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/staffhub/employee-system/internal/api/metrics"
	"github.com/staffhub/employee-system/internal/core/ports"
)

// Auth is the gate every authenticated request passes through, in order:
// bearer extraction (absent → 401), blacklist check (hit → 401), signature
// and expiry verification (fail → 403). On success the identity claims are
// injected into the request context. A single failed check is a hard
// rejection; there is no fallback path.
func Auth(sessions ports.SessionRegistry, issuer ports.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
			}
			token := parts[1]

			// Revocation wins over cryptographic validity: a logged-out token
			// is rejected here even though its signature still verifies.
			revoked, err := sessions.IsBlacklisted(c.Request().Context(), token)
			if err != nil {
				return err
			}
			if revoked {
				metrics.TokenRejectionsTotal.WithLabelValues("blacklisted").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
			}

			claims, err := issuer.Verify(token)
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "invalid token")
			}

			c.Set("user_id", claims.UserID)
			c.Set("role", claims.Role)
			c.Set("token", token)

			return next(c)
		}
	}
}
