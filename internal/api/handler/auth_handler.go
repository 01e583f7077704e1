package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffhub/employee-system/internal/api/metrics"
	"github.com/staffhub/employee-system/internal/core/domain"
	"github.com/staffhub/employee-system/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type signupRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role"     validate:"required"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:       u.ID,
		Username: u.Username,
		Role:     u.Role,
		Name:     u.Name,
		Email:    u.Email,
	}
}

// Signup creates a new user account under an existing role.
//
// @Summary      Sign up a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Signup(c.Request().Context(), req.Username, req.Password, req.Role, req.Name, req.Email)
	if err != nil {
		return err
	}

	metrics.SignupsTotal.WithLabelValues(user.Role).Inc()
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Login authenticates a user and returns a session token.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Token: token, User: toUserResponse(user)})
}

// Logout blacklists the presented token and clears the active-token record.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	actor, err := ctxClaims(c)
	if err != nil {
		return err
	}
	token, err := ctxToken(c)
	if err != nil {
		return err
	}

	if err := h.authService.Logout(c.Request().Context(), actor, token); err != nil {
		return err
	}

	metrics.SessionsRevokedTotal.Inc()
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out successfully"})
}
