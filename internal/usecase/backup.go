package usecase

import (
	"context"
	"errors"
	"time"

	domainErrors "github.com/vantran/anishop/internal/domain/errors"
	"github.com/vantran/anishop/internal/domain/model"
	"github.com/vantran/anishop/internal/domain/repository"
)

// BackupUseCase exports and restores the whole store as one snapshot
// document, admin-only.
type BackupUseCase struct {
	repos repository.Factory

	now func() time.Time
}

// NewBackupUseCase constructs BackupUseCase.
func NewBackupUseCase(repos repository.Factory) *BackupUseCase {
	return &BackupUseCase{repos: repos, now: time.Now}
}

// Export collects every collection into a snapshot.
func (u *BackupUseCase) Export(ctx context.Context, actor *model.User) (*model.Snapshot, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	users, err := u.repos.Users().List(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := u.repos.Orders().ListAll(ctx)
	if err != nil {
		return nil, err
	}
	tickets, err := u.repos.Tickets().ListAll(ctx)
	if err != nil {
		return nil, err
	}
	requests, err := u.repos.EditRequests().ListAll(ctx)
	if err != nil {
		return nil, err
	}
	vouchers, err := u.repos.Vouchers().List(ctx)
	if err != nil {
		return nil, err
	}

	settings, err := u.repos.Settings().Get(ctx)
	if err != nil {
		if !errors.Is(err, domainErrors.ErrNotFound) {
			return nil, err
		}
		defaults := model.DefaultSettings()
		settings = &defaults
	}

	return &model.Snapshot{
		Users:             users,
		Orders:            orders,
		SupportTickets:    tickets,
		OrderEditRequests: requests,
		Vouchers:          vouchers,
		Settings:          *settings,
		ExportedAt:        u.now(),
	}, nil
}

// Import replaces every collection with the snapshot's contents. Users go
// first so order foreign keys resolve.
func (u *BackupUseCase) Import(ctx context.Context, actor *model.User, snapshot *model.Snapshot) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if snapshot == nil {
		return domainErrors.ErrValidation
	}

	// Orders reference users, so they are cleared before the user rows are
	// swapped and reinserted afterwards.
	if err := u.repos.Orders().DeleteAll(ctx); err != nil {
		return err
	}
	if err := u.repos.Users().ReplaceAll(ctx, snapshot.Users); err != nil {
		return err
	}
	if err := u.repos.Vouchers().ReplaceAll(ctx, snapshot.Vouchers); err != nil {
		return err
	}
	if err := u.repos.Orders().ReplaceAll(ctx, snapshot.Orders); err != nil {
		return err
	}
	if err := u.repos.EditRequests().ReplaceAll(ctx, snapshot.OrderEditRequests); err != nil {
		return err
	}
	if err := u.repos.Tickets().ReplaceAll(ctx, snapshot.SupportTickets); err != nil {
		return err
	}
	return u.repos.Settings().Save(ctx, snapshot.Settings)
}
