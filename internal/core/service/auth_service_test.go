package service

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/staffhub/employee-system/internal/core/domain"
	"github.com/staffhub/employee-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users  map[string]*domain.User
	roles  map[string]*domain.Role
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		users: make(map[string]*domain.User),
		roles: map[string]*domain.Role{
			domain.RoleManager:  {ID: 1, Name: domain.RoleManager},
			domain.RoleEmployee: {ID: 2, Name: domain.RoleEmployee},
		},
	}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	copy := cloneUser(user)
	copy.ID = r.nextID
	r.users[copy.Username] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, id int64, patch ports.UserUpdate) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			if patch.Name != nil {
				u.Name = *patch.Name
			}
			if patch.Email != nil {
				u.Email = *patch.Email
			}
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	for name, u := range r.users {
		if u.ID == id {
			delete(r.users, name)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) FindRoleByName(_ context.Context, name string) (*domain.Role, error) {
	role, ok := r.roles[name]
	if !ok {
		return nil, domain.ErrInvalidRole
	}
	clone := *role
	return &clone, nil
}

func (r *stubUserRepo) ListByRole(_ context.Context, roleName string) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range r.users {
		if u.Role == roleName {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

type stubSessionRegistry struct {
	active        map[int64]string
	blacklisted   map[string]bool
	lastBlacklist time.Duration
}

func newStubSessionRegistry() *stubSessionRegistry {
	return &stubSessionRegistry{
		active:      make(map[int64]string),
		blacklisted: make(map[string]bool),
	}
}

func (s *stubSessionRegistry) RecordActiveToken(_ context.Context, userID int64, token string, _ time.Duration) error {
	s.active[userID] = token
	return nil
}

func (s *stubSessionRegistry) ClearActiveToken(_ context.Context, userID int64) error {
	delete(s.active, userID)
	return nil
}

func (s *stubSessionRegistry) Blacklist(_ context.Context, token string, ttl time.Duration) error {
	s.blacklisted[token] = true
	s.lastBlacklist = ttl
	return nil
}

func (s *stubSessionRegistry) IsBlacklisted(_ context.Context, token string) (bool, error) {
	return s.blacklisted[token], nil
}

func newAuthFixture() (*AuthService, *stubUserRepo, *stubSessionRegistry, *JWTIssuer) {
	repo := newStubUserRepo()
	sessions := newStubSessionRegistry()
	issuer := NewJWTIssuer("secret", time.Hour)
	return NewAuthService(repo, sessions, issuer), repo, sessions, issuer
}

// ---------------------------------------------------------------------------
// Signup
// ---------------------------------------------------------------------------

func TestAuthService_Signup_Success(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	user, err := svc.Signup(context.Background(), "alice", "pw1", domain.RoleEmployee, "Alice", "alice@example.com")
	if err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected assigned id")
	}
	if user.PasswordHash == "pw1" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pw1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleEmployee {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestAuthService_Signup_MissingFields(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	if _, err := svc.Signup(context.Background(), "", "pw", domain.RoleEmployee, "", ""); err != domain.ErrValidation {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if _, err := svc.Signup(context.Background(), "bob", "", domain.RoleEmployee, "", ""); err != domain.ErrValidation {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestAuthService_Signup_UnknownRoleCreatesNoUser(t *testing.T) {
	svc, repo, _, _ := newAuthFixture()

	if _, err := svc.Signup(context.Background(), "bob", "pw", "director", "", ""); err != domain.ErrInvalidRole {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
	if len(repo.users) != 0 {
		t.Fatalf("no user should exist after invalid-role signup, got %d", len(repo.users))
	}
}

func TestAuthService_Signup_DuplicateUsername(t *testing.T) {
	svc, repo, _, _ := newAuthFixture()

	if _, err := svc.Signup(context.Background(), "bob", "pw", domain.RoleEmployee, "", ""); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}
	if _, err := svc.Signup(context.Background(), "bob", "pw2", domain.RoleManager, "", ""); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
	if len(repo.users) != 1 {
		t.Fatalf("exactly one user should hold the username, got %d", len(repo.users))
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, sessions, issuer := newAuthFixture()

	created, err := svc.Signup(context.Background(), "carol", "s3cret", domain.RoleManager, "", "")
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	token, user, err := svc.Login(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user.ID != created.ID {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID != created.ID || claims.Role != domain.RoleManager {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if sessions.active[created.ID] != token {
		t.Fatalf("active token not recorded")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	_, _ = svc.Signup(context.Background(), "dave", "goodpass", domain.RoleEmployee, "", "")
	if _, _, err := svc.Login(context.Background(), "dave", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	if _, _, err := svc.Login(context.Background(), "ghost", "pw"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Relogin_DoesNotInvalidatePriorToken(t *testing.T) {
	svc, _, sessions, _ := newAuthFixture()

	created, _ := svc.Signup(context.Background(), "erin", "pw", domain.RoleEmployee, "", "")
	first, _, err := svc.Login(context.Background(), "erin", "pw")
	if err != nil {
		t.Fatalf("first login failed: %v", err)
	}
	second, _, err := svc.Login(context.Background(), "erin", "pw")
	if err != nil {
		t.Fatalf("second login failed: %v", err)
	}

	if sessions.active[created.ID] != second {
		t.Fatalf("active-token record should hold the newest token")
	}
	if revoked, _ := sessions.IsBlacklisted(context.Background(), first); revoked {
		t.Fatalf("re-login must not blacklist the prior token")
	}
}

// ---------------------------------------------------------------------------
// Logout
// ---------------------------------------------------------------------------

func TestAuthService_Logout_BlacklistsAndClears(t *testing.T) {
	svc, _, sessions, _ := newAuthFixture()

	created, _ := svc.Signup(context.Background(), "frank", "pw", domain.RoleEmployee, "", "")
	token, _, err := svc.Login(context.Background(), "frank", "pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	actor := domain.Claims{UserID: created.ID, Role: domain.RoleEmployee}
	if err := svc.Logout(context.Background(), actor, token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	if revoked, _ := sessions.IsBlacklisted(context.Background(), token); !revoked {
		t.Fatalf("token should be blacklisted after logout")
	}
	if _, ok := sessions.active[created.ID]; ok {
		t.Fatalf("active-token record should be cleared after logout")
	}
}

func TestAuthService_Logout_BlacklistTTLTracksRemainingLifetime(t *testing.T) {
	svc, _, sessions, _ := newAuthFixture()

	_, _ = svc.Signup(context.Background(), "gina", "pw", domain.RoleEmployee, "", "")
	token, _, err := svc.Login(context.Background(), "gina", "pw")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	actor := domain.Claims{UserID: 1, Role: domain.RoleEmployee}
	if err := svc.Logout(context.Background(), actor, token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	if sessions.lastBlacklist <= 55*time.Minute || sessions.lastBlacklist > time.Hour {
		t.Fatalf("blacklist TTL should track the token's remaining lifetime, got %v", sessions.lastBlacklist)
	}
}

func TestAuthService_Logout_UnreadableTokenFallsBackToFullTTL(t *testing.T) {
	svc, _, sessions, issuer := newAuthFixture()

	actor := domain.Claims{UserID: 1, Role: domain.RoleEmployee}
	if err := svc.Logout(context.Background(), actor, "opaque-garbage"); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if sessions.lastBlacklist != issuer.TTL() {
		t.Fatalf("expected fallback to full TTL %v, got %v", issuer.TTL(), sessions.lastBlacklist)
	}
}
