package model

import "time"

// Role determines which operations a user may invoke.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// UserStatus describes account standing.
type UserStatus string

const (
	UserStatusActive UserStatus = "active"
	UserStatusBanned UserStatus = "banned"
)

// User represents a registered customer or shop operator.
type User struct {
	ID               string     `json:"id"`
	Username         string     `json:"username"`
	Email            string     `json:"email"`
	PasswordHash     string     `json:"passwordHash"`
	Role             Role       `json:"role"`
	Status           UserStatus `json:"status"`
	BanReason        string     `json:"banReason,omitempty"`
	BanReasonDetails string     `json:"banReasonDetails,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// Banned reports whether the account is currently blocked.
func (u *User) Banned() bool {
	return u.Status == UserStatusBanned
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
