package domain

import "time"

const (
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

// User models an account in the employee-management system.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Name         string    `json:"name,omitempty"`
	Email        string    `json:"email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Role is a named access level. The seed set is manager and employee, but
// roles are resolved by name at signup so the set stays open.
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Claims is the authenticated identity attached to a request once the auth
// gate has accepted its bearer token.
type Claims struct {
	UserID int64
	Role   string
}
