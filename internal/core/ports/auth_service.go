package ports

import (
	"context"

	"github.com/staffhub/employee-system/internal/core/domain"
)

type AuthService interface {
	Signup(ctx context.Context, username, password, role, name, email string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	Logout(ctx context.Context, actor domain.Claims, token string) error
}
