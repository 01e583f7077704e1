package ports

import (
	"context"

	"github.com/staffhub/employee-system/internal/core/domain"
)

// UserUpdate carries the patchable profile fields. Nil means leave unchanged.
type UserUpdate struct {
	Name  *string
	Email *string
}

// UserRepository defines the credential store: durable User and Role records.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, id int64, patch UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
	FindRoleByName(ctx context.Context, name string) (*domain.Role, error)
	ListByRole(ctx context.Context, roleName string) ([]*domain.User, error)
}
