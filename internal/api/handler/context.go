package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffhub/employee-system/internal/core/domain"
)

// ctxClaims extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call: a zero user id or an
// empty role means the middleware did not run, so the request cannot be
// trusted with any identity.
func ctxClaims(c echo.Context) (domain.Claims, error) {
	userID, _ := c.Get("user_id").(int64)
	role, _ := c.Get("role").(string)
	if userID == 0 || role == "" {
		return domain.Claims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return domain.Claims{UserID: userID, Role: role}, nil
}

// ctxToken returns the raw bearer token the Auth middleware validated.
func ctxToken(c echo.Context) (string, error) {
	token, _ := c.Get("token").(string)
	if token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "no token provided")
	}
	return token, nil
}
