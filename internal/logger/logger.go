package logger

import (
	"log/slog"
	"os"
)

// New builds the process-wide JSON logger. Every line carries the service
// name so shop logs stay greppable next to the product-lookup sidecar.
func New() *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(handler).With(slog.String("service", "anishop"))
}
