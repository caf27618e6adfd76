package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vantran/anishop/internal/domain/model"
)

// RequestLogger logs each request after it completes. When the auth
// middleware has resolved an account the log line carries its id, which
// ties operator actions in the admin surface to a user record.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("latency", time.Since(start)),
		}
		if val, ok := c.Get(UserContextKey); ok {
			if user, ok := val.(*model.User); ok {
				attrs = append(attrs, slog.String("user_id", user.ID))
			}
		}

		if c.Writer.Status() >= 500 {
			logger.Error("http request", attrs...)
			return
		}
		logger.Info("http request", attrs...)
	}
}
