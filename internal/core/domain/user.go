package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleUser      = "user"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrForbidden = errors.New("access forbidden")

// User models an account on the platform. Role gates the admin console,
// IsVerified gates every dashboard page. IsSuspended and IsActive are
// tracked for the admin console but deliberately not consulted by the
// route guard; login is where they take effect.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	IsVerified   bool      `json:"is_verified"`
	IsSuspended  bool      `json:"is_suspended"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidRole reports whether role is one of the known role values.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleModerator || role == RoleUser
}

// EffectiveRole returns the role used for authorization decisions,
// defaulting to RoleUser when the record carries no role.
func (u *User) EffectiveRole() string {
	if u.Role == "" {
		return RoleUser
	}
	return u.Role
}
