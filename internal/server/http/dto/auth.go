package dto

// RegisterRequest describes the signup payload.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest carries username or email plus password.
type LoginRequest struct {
	Identity string `json:"identity"`
	Password string `json:"password"`
}

// AuthResponse returns the session token together with the account profile.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
