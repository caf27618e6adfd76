package repository

import (
	"context"

	"github.com/vantran/anishop/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	// GetByIdentity matches username exactly or email case-insensitively.
	GetByIdentity(ctx context.Context, usernameOrEmail string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	SetBan(ctx context.Context, id string, status model.UserStatus, reason, details string) error
	SetRole(ctx context.Context, id string, role model.Role) error
	ReplaceAll(ctx context.Context, users []model.User) error
}
