package domain

import "errors"

var (
	// ErrValidation covers missing or malformed request input.
	ErrValidation = errors.New("missing required fields")
	// ErrUserExists reports a username collision at signup.
	ErrUserExists = errors.New("username already exists")
	// ErrInvalidRole reports a signup against a role that does not exist.
	ErrInvalidRole = errors.New("invalid role")
	// ErrInvalidCredentials covers unknown username or wrong password at login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated means no usable identity: missing or blacklisted token.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden covers bad token signature/expiry and policy denials.
	ErrForbidden = errors.New("access forbidden")
	// ErrUserNotFound reports a lookup miss on the credential store.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmployeeNotFound reports a delete target that is not an employee.
	ErrEmployeeNotFound = errors.New("employee not found")
)

// Token verification failures. Both are terminal; the auth gate maps them to
// a 403 while a missing or blacklisted token maps to a 401.
var (
	ErrTokenMalformed = errors.New("token malformed")
	ErrTokenExpired   = errors.New("token expired")
)
