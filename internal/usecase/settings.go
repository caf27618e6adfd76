package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/vantran/anishop/internal/domain/errors"
	"github.com/vantran/anishop/internal/domain/model"
	"github.com/vantran/anishop/internal/domain/repository"
)

// SettingsUseCase manages the single global settings document.
type SettingsUseCase struct {
	settings repository.SettingsRepository
}

// NewSettingsUseCase constructs SettingsUseCase.
func NewSettingsUseCase(settings repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{settings: settings}
}

// Get returns the current settings, falling back to defaults before the
// first save.
func (u *SettingsUseCase) Get(ctx context.Context) (model.Settings, error) {
	stored, err := u.settings.Get(ctx)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return model.DefaultSettings(), nil
		}
		return model.Settings{}, err
	}
	return *stored, nil
}

// Update applies a partial settings change, admin-only. Nil patch sections
// leave the stored value untouched.
func (u *SettingsUseCase) Update(ctx context.Context, actor *model.User, patch model.SettingsPatch) (model.Settings, error) {
	if err := requireAdmin(actor); err != nil {
		return model.Settings{}, err
	}

	current, err := u.Get(ctx)
	if err != nil {
		return model.Settings{}, err
	}

	if patch.MaintenanceMode != nil {
		current.MaintenanceMode = *patch.MaintenanceMode
	}
	if patch.OrderLimit != nil {
		if *patch.OrderLimit < 0 {
			return model.Settings{}, domainErrors.ErrValidation
		}
		current.OrderLimit = *patch.OrderLimit
	}
	if patch.ShopInfo != nil {
		current.ShopInfo = *patch.ShopInfo
	}
	if patch.SMTP != nil {
		current.SMTP = *patch.SMTP
	}
	if patch.BankInfo != nil {
		current.BankInfo = *patch.BankInfo
	}
	if patch.Announcement != nil {
		if patch.Announcement.Type != model.AnnouncementInfo && patch.Announcement.Type != model.AnnouncementWarning {
			return model.Settings{}, domainErrors.ErrValidation
		}
		current.Announcement = *patch.Announcement
	}

	if err := u.settings.Save(ctx, current); err != nil {
		return model.Settings{}, err
	}
	return current, nil
}
