package usecase

import (
	"go.uber.org/fx"

	"github.com/vantran/anishop/internal/config"
	"github.com/vantran/anishop/internal/domain/repository"
	"github.com/vantran/anishop/internal/notify"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	NewUserUseCase,
	NewOrderUseCase,
	newEditRequestUseCase,
	NewTicketUseCase,
	NewVoucherUseCase,
	NewSettingsUseCase,
	NewBackupUseCase,
)

type editRequestParams struct {
	fx.In

	Requests repository.EditRequestRepository
	Orders   repository.OrderRepository
	Notifier notify.Notifier
	Config   *config.Config
}

func newEditRequestUseCase(p editRequestParams) *EditRequestUseCase {
	return NewEditRequestUseCase(p.Requests, p.Orders, p.Notifier, p.Config.PublicBaseURL, p.Config.EditLinkTTL)
}
