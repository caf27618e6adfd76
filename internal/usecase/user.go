package usecase

import (
	"context"

	domainErrors "github.com/vantran/anishop/internal/domain/errors"
	"github.com/vantran/anishop/internal/domain/model"
	"github.com/vantran/anishop/internal/domain/repository"
)

// UserUseCase covers admin-side account management.
type UserUseCase struct {
	users repository.UserRepository
}

// NewUserUseCase constructs UserUseCase.
func NewUserUseCase(users repository.UserRepository) *UserUseCase {
	return &UserUseCase{users: users}
}

// List returns every account, admin-only.
func (u *UserUseCase) List(ctx context.Context, actor *model.User) ([]model.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return u.users.List(ctx)
}

// Ban blocks an account with a disclosed reason.
func (u *UserUseCase) Ban(ctx context.Context, actor *model.User, userID, reason, details string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if blank(reason) {
		return domainErrors.ErrValidation
	}
	return u.users.SetBan(ctx, userID, model.UserStatusBanned, reason, details)
}

// Unban restores a blocked account and clears the stored reason.
func (u *UserUseCase) Unban(ctx context.Context, actor *model.User, userID string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	return u.users.SetBan(ctx, userID, model.UserStatusActive, "", "")
}

// SetRole changes an account's role. An admin cannot change their own role.
func (u *UserUseCase) SetRole(ctx context.Context, actor *model.User, userID string, role model.Role) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if actor.ID == userID {
		return domainErrors.ErrSelfRoleChange
	}
	if role != model.RoleUser && role != model.RoleAdmin {
		return domainErrors.ErrValidation
	}
	return u.users.SetRole(ctx, userID, role)
}
