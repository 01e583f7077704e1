package domain

// Access policy: pure decisions over (actor, target), no I/O. Evaluated after
// the auth gate and after the target entity has been loaded.

// CanListEmployees reports whether the actor may list employee accounts.
func CanListEmployees(actor Claims) bool {
	return actor.Role == RoleManager
}

// CanDeleteEmployee reports whether the actor may delete employee accounts.
func CanDeleteEmployee(actor Claims) bool {
	return actor.Role == RoleManager
}

// CanUpdateUser reports whether the actor may patch the target's profile.
// Self-update is always allowed. A manager may edit any non-manager; no one
// may edit another manager.
func CanUpdateUser(actor Claims, targetID int64, targetRole string) bool {
	if targetID == actor.UserID {
		return true
	}
	return actor.Role == RoleManager && targetRole != RoleManager
}
