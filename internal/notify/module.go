package notify

import (
	"log/slog"

	"go.uber.org/fx"
)

// Module exposes the notification hub to fx graph.
var Module = fx.Provide(newNotifier)

type notifierParams struct {
	fx.In

	Logger *slog.Logger
}

func newNotifier(p notifierParams) Notifier {
	return NewHub(p.Logger)
}
