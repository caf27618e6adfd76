package config

import "go.uber.org/fx"

// Module loads configuration once at graph construction.
var Module = fx.Provide(Load)
