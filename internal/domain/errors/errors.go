package errors

import (
	"errors"
	"fmt"
)

var (
	ErrAlreadyExists      = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrValidation         = errors.New("validation failed")

	ErrOrderLimitReached = errors.New("order limit reached")
	ErrMaintenance       = errors.New("maintenance mode is on")
	ErrTrackingRequired  = errors.New("tracking code required for carrier handoff")
	ErrTerminalStatus    = errors.New("order is in a terminal status")

	ErrEditRequestPending = errors.New("edit request already pending for order")
	ErrEditLinkNotFound   = errors.New("edit link not found or already used")
	ErrEditLinkExpired    = errors.New("edit link expired")

	ErrSelfRoleChange = errors.New("cannot change own role")
	ErrUserBanned     = errors.New("user is banned")
)

// BannedError carries the ban reason disclosed to the affected user on login.
type BannedError struct {
	Reason string
}

func (e *BannedError) Error() string {
	if e.Reason == "" {
		return "account is banned"
	}
	return fmt.Sprintf("account is banned: %s", e.Reason)
}

// Unwrap lets errors.Is match BannedError against ErrUserBanned.
func (e *BannedError) Unwrap() error {
	return ErrUserBanned
}
