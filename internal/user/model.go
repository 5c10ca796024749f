package user

import (
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveUser       = errors.New("user is inactive")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrInvalidRole        = errors.New("invalid role")
)

type Role string

const (
	RoleUser  Role = "user"  // player: books courts
	RoleOwner Role = "owner" // lists facilities and manages their bookings
	RoleAdmin Role = "admin" // approves facilities, views platform analytics
)

// SignupAllowed reports whether the role can be chosen at signup. Admin
// accounts are provisioned out of band.
func (r Role) SignupAllowed() bool {
	return r == RoleUser || r == RoleOwner
}

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleOwner || r == RoleAdmin
}

// User represents an account on the platform.
type User struct {
	ID           string // UUID
	Email        string
	PasswordHash string
	FullName     string
	Role         Role
	AvatarURL    *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLoginAt  *time.Time
}

// Filter defines filter options for the admin user list.
type Filter struct {
	Email    string
	Role     string
	IsActive *bool // pointer to distinguish false from unset

	Page     int
	PageSize int
}
