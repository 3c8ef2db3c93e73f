package domain

import "errors"

const (
	RoleCleaner = "cleaner"
	RoleDriver  = "driver"
)

var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrRoleMismatch = errors.New("role mismatch")
var ErrUserExists = errors.New("user already exists")

// ValidRole reports whether role is one of the two provisioned roles.
func ValidRole(role string) bool {
	return role == RoleCleaner || role == RoleDriver
}

// User models an authenticated actor. UserID is the externally chosen login
// identifier; ID is the storage-assigned key.
type User struct {
	ID           string `json:"id"`
	UserID       string `json:"user_id"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}
