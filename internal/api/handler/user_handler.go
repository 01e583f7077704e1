package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/staffhub/employee-system/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type updateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

// Me returns the caller's own profile.
//
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      404  {object}  map[string]string
// @Router       /me [get]
func (h *UserHandler) Me(c echo.Context) error {
	actor, err := ctxClaims(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetProfile(c.Request().Context(), actor.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Update patches a user's profile. Without a path id the caller updates
// their own profile; with one, policy decides whether the actor may touch
// the target.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                false  "Target user id (defaults to self)"
// @Param        body  body      updateUserRequest  true   "Fields to update"
// @Success      200   {object}  userResponse
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	actor, err := ctxClaims(c)
	if err != nil {
		return err
	}

	targetID := actor.UserID
	if raw := c.Param("id"); raw != "" {
		targetID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
		}
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.UpdateUser(c.Request().Context(), actor, targetID, ports.UserUpdate{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// ListEmployees returns all employee accounts. Manager-only.
//
// @Summary      List employees
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      403  {object}  map[string]string
// @Router       /employees [get]
func (h *UserHandler) ListEmployees(c echo.Context) error {
	actor, err := ctxClaims(c)
	if err != nil {
		return err
	}

	employees, err := h.userService.ListEmployees(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	out := make([]userResponse, 0, len(employees))
	for _, emp := range employees {
		out = append(out, toUserResponse(emp))
	}
	return c.JSON(http.StatusOK, out)
}

// DeleteEmployee removes an employee account. Manager-only; the target is
// resolved under the employee role, so a manager id yields 404.
//
// @Summary      Delete an employee
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Employee id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /employees/{id} [delete]
func (h *UserHandler) DeleteEmployee(c echo.Context) error {
	actor, err := ctxClaims(c)
	if err != nil {
		return err
	}

	employeeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid employee id")
	}

	if err := h.userService.DeleteEmployee(c.Request().Context(), actor, employeeID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Employee deleted successfully"})
}
