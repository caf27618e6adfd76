package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/vantran/anishop/internal/domain/errors"
	"github.com/vantran/anishop/internal/domain/model"
	"github.com/vantran/anishop/internal/domain/repository"
	pkgAuth "github.com/vantran/anishop/internal/pkg/auth"
)

const minPasswordLength = 6

// AuthUseCase handles user lifecycle and token management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.Strategy

	now   func() time.Time
	newID func() string
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{
		users:  users,
		hasher: hasher,
		tokens: strategy,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Register creates a new user account and returns an auth token.
func (u *AuthUseCase) Register(ctx context.Context, username, email, password string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || !strings.Contains(email, "@") {
		return nil, "", domainErrors.ErrValidation
	}
	if len(password) < minPasswordLength {
		return nil, "", domainErrors.ErrValidation
	}

	// Email duplicates are matched case-insensitively, backed by a unique
	// index on LOWER(email).
	for _, identity := range []string{username, email} {
		if _, err := u.users.GetByIdentity(ctx, identity); err == nil {
			return nil, "", domainErrors.ErrAlreadyExists
		} else if !errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", err
		}
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	usr := &model.User{
		ID:           u.newID(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         model.RoleUser,
		Status:       model.UserStatusActive,
		CreatedAt:    u.now(),
	}
	if err := u.users.Create(ctx, usr); err != nil {
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}
	return usr, token, nil
}

// Authenticate validates credentials and returns an auth token.
// Unknown identity and wrong password fail uniformly; a banned account gets
// a distinct error disclosing the ban reason.
func (u *AuthUseCase) Authenticate(ctx context.Context, identity, password string) (*model.User, string, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByIdentity(ctx, identity)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	if usr.Banned() {
		return nil, "", &domainErrors.BannedError{Reason: usr.BanReason}
	}

	token, err := u.tokens.IssueToken(usr.ID)
	if err != nil {
		return nil, "", err
	}
	return usr, token, nil
}

// ParseToken extracts user ID from provided token.
func (u *AuthUseCase) ParseToken(token string) (string, error) {
	if token == "" {
		return "", pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id string) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}
