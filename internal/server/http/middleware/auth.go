package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/vantran/anishop/internal/domain/errors"
	"github.com/vantran/anishop/internal/domain/model"
	pkgAuth "github.com/vantran/anishop/internal/pkg/auth"
)

const (
	// UserContextKey is a gin context key for the authenticated account.
	UserContextKey = "currentUser"
	authCookieName = "anishop_token"
)

// UserLoader resolves a session token to a stored account. The account is
// re-read per request so bans and role changes take effect immediately.
type UserLoader interface {
	ParseToken(token string) (string, error)
	UserByID(ctx context.Context, id string) (*model.User, error)
}

// AuthRequired ensures the caller is authenticated and stores the loaded
// account in the request context.
func AuthRequired(loader UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		userID, err := loader.ParseToken(token)
		if err != nil {
			if errors.Is(err, pkgAuth.ErrInvalidToken) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		user, err := loader.UserByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				c.AbortWithStatus(http.StatusUnauthorized)
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}

// AdminRequired rejects non-admin callers. It must run after AuthRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(UserContextKey)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		user, ok := val.(*model.User)
		if !ok || !user.IsAdmin() {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes the session token cookie to the response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
