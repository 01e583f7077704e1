package ports

import (
	"context"

	"github.com/staffhub/employee-system/internal/core/domain"
)

type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*domain.User, error)
	UpdateUser(ctx context.Context, actor domain.Claims, targetID int64, patch UserUpdate) (*domain.User, error)
	ListEmployees(ctx context.Context, actor domain.Claims) ([]*domain.User, error)
	DeleteEmployee(ctx context.Context, actor domain.Claims, employeeID int64) error
}
