package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/staffhub/employee-system/internal/core/domain"
	"github.com/staffhub/employee-system/internal/core/ports"
)

// AuthService implements signup, login and logout.
type AuthService struct {
	repo     ports.UserRepository
	sessions ports.SessionRegistry
	issuer   ports.TokenIssuer
}

func NewAuthService(repo ports.UserRepository, sessions ports.SessionRegistry, issuer ports.TokenIssuer) *AuthService {
	return &AuthService{repo: repo, sessions: sessions, issuer: issuer}
}

// Signup creates a user under an existing role. The role is resolved by name
// so the role set stays open beyond the manager/employee seed.
func (s *AuthService) Signup(ctx context.Context, username, password, roleName, name, email string) (*domain.User, error) {
	if username == "" || password == "" || roleName == "" {
		return nil, domain.ErrValidation
	}

	role, err := s.repo.FindRoleByName(ctx, roleName)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role.Name,
		Name:         name,
		Email:        email,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Login verifies credentials, mints a token and records it as the user's
// active token. A prior session stays valid until it expires or is logged
// out; re-login only overwrites the advisory active-token record.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	if err := s.sessions.RecordActiveToken(ctx, user.ID, token, s.issuer.TTL()); err != nil {
		return "", nil, fmt.Errorf("record active token: %w", err)
	}

	return token, user, nil
}

// Logout revokes the presented token. The blacklist entry lives for the
// token's remaining natural lifetime, so revocation holds exactly as long as
// the signature would otherwise verify. The active-token record is cleared
// as well; the two writes need not be atomic since a stale active-token
// record has no effect on authorization.
func (s *AuthService) Logout(ctx context.Context, actor domain.Claims, token string) error {
	ttl := s.issuer.RemainingLifetime(token)
	if ttl <= 0 {
		ttl = s.issuer.TTL()
	}

	if err := s.sessions.Blacklist(ctx, token, ttl); err != nil {
		return fmt.Errorf("blacklist token: %w", err)
	}
	if err := s.sessions.ClearActiveToken(ctx, actor.UserID); err != nil {
		return fmt.Errorf("clear active token: %w", err)
	}

	return nil
}
