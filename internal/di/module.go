package di

import (
	"go.uber.org/fx"

	"github.com/vantran/anishop/internal/adapter/productinfo"
	"github.com/vantran/anishop/internal/app"
	"github.com/vantran/anishop/internal/config"
	"github.com/vantran/anishop/internal/logger"
	"github.com/vantran/anishop/internal/notify"
	"github.com/vantran/anishop/internal/pkg/auth"
	"github.com/vantran/anishop/internal/server/http/handlers"
	"github.com/vantran/anishop/internal/server/http/router"
	"github.com/vantran/anishop/internal/storage/postgres"
	"github.com/vantran/anishop/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		productinfo.Module,
		notify.Module,
		usecase.Module,
		fx.Provide(func(client productinfo.Client) app.ProductLookup { return client }),
		fx.Provide(func(facade *app.ShopFacade) handlers.ShopFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
