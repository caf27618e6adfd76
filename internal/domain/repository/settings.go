package repository

import (
	"context"

	"github.com/vantran/anishop/internal/domain/model"
)

// SettingsRepository stores the single global settings document.
type SettingsRepository interface {
	Get(ctx context.Context) (*model.Settings, error)
	Save(ctx context.Context, settings model.Settings) error
}
