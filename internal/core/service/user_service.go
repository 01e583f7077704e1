package service

import (
	"context"
	"fmt"

	"github.com/staffhub/employee-system/internal/core/domain"
	"github.com/staffhub/employee-system/internal/core/ports"
)

// UserService implements profile retrieval and the policy-gated user
// management operations.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// GetProfile returns the caller's own user record.
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, userID)
}

// UpdateUser patches the target's profile fields after checking policy:
// self-update is always allowed, a manager may edit any non-manager, and no
// one may edit another manager. The target is loaded first so a missing user
// reports not-found rather than forbidden.
func (s *UserService) UpdateUser(ctx context.Context, actor domain.Claims, targetID int64, patch ports.UserUpdate) (*domain.User, error) {
	target, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if !domain.CanUpdateUser(actor, target.ID, target.Role) {
		return nil, domain.ErrForbidden
	}

	return s.repo.Update(ctx, target.ID, patch)
}

// ListEmployees returns all users holding the employee role. Manager-only.
func (s *UserService) ListEmployees(ctx context.Context, actor domain.Claims) ([]*domain.User, error) {
	if !domain.CanListEmployees(actor) {
		return nil, domain.ErrForbidden
	}
	return s.repo.ListByRole(ctx, domain.RoleEmployee)
}

// DeleteEmployee removes an employee account. The target is resolved under
// the employee role, so an id that belongs to a manager reports not-found
// instead of deleting anything.
func (s *UserService) DeleteEmployee(ctx context.Context, actor domain.Claims, employeeID int64) error {
	if !domain.CanDeleteEmployee(actor) {
		return domain.ErrForbidden
	}

	target, err := s.repo.FindByID(ctx, employeeID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return domain.ErrEmployeeNotFound
		}
		return err
	}
	if target.Role != domain.RoleEmployee {
		return domain.ErrEmployeeNotFound
	}

	if err := s.repo.Delete(ctx, target.ID); err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}
