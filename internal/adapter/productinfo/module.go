package productinfo

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/vantran/anishop/internal/config"
)

// Module exposes product lookup client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	if p.Config.ProductLookupAddress == "" {
		return Disabled(), nil
	}
	return NewHTTPClient(p.Config.ProductLookupAddress, p.Logger)
}
