package dto

import "time"

// UserResponse is the account projection returned to clients. The password
// hash never leaves the service.
type UserResponse struct {
	ID               string    `json:"id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	Status           string    `json:"status"`
	BanReason        string    `json:"banReason,omitempty"`
	BanReasonDetails string    `json:"banReasonDetails,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// BanRequest carries the reason shown to the banned user and optional
// internal details.
type BanRequest struct {
	Reason  string `json:"reason"`
	Details string `json:"details"`
}

// RoleRequest changes an account role.
type RoleRequest struct {
	Role string `json:"role"`
}
