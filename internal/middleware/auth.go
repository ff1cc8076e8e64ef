package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/auth"
	"github.com/Abburizal/Flymora-Tours-Travels-sub000/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const (
	userIDKey = "user_id"
	rolesKey  = "roles"
)

type tokenParser interface {
	Parse(raw string) (*auth.Claims, error)
}

type userLoader interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Authenticate requires a valid bearer token and stores the caller in the context.
// Roles come from the user record, not the token, so a revoked role or a
// deleted account stops working on the next request.
func Authenticate(tokens tokenParser, users userLoader) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing bearer token"})
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(raw))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid or expired token"})
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.UserID)
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "account no longer exists"})
			return
		case err != nil:
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, ginext.H{"error": "internal server error"})
			return
		}

		c.Set(userIDKey, user.ID)
		c.Set(rolesKey, user.RoleCodes())
		c.Next()
	}
}

// RequireRole must run after Authenticate.
func RequireRole(role string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		for _, r := range c.GetStringSlice(rolesKey) {
			if r == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "forbidden"})
	}
}

func Actor(c *ginext.Context) domain.Actor {
	actor := domain.Actor{UserID: c.GetString(userIDKey)}
	for _, r := range c.GetStringSlice(rolesKey) {
		if r == domain.RoleAdmin {
			actor.Admin = true
		}
	}
	return actor
}

// SetActor is used by tests that bypass Authenticate.
func SetActor(c *ginext.Context, userID string, roles ...string) {
	c.Set(userIDKey, userID)
	c.Set(rolesKey, roles)
}
