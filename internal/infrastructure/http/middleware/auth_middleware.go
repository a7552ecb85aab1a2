package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/csiedev/meeting-records/pkg/jwt"
)

const (
	// ContextUserID is the Echo context key holding the caller's person ID
	ContextUserID = "user_id"
	// ContextEmail is the Echo context key holding the caller's email
	ContextEmail = "email"
	// ContextIsAdmin is the Echo context key holding the caller's admin flag
	ContextIsAdmin = "is_admin"
)

// Auth returns an Echo middleware that validates the bearer token and
// stores the caller's identity in the request context
func Auth(jwtManager *jwt.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization token")
			}

			claims, err := jwtManager.ValidateAccessToken(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(ContextUserID, claims.UserID)
			c.Set(ContextEmail, claims.Email)
			c.Set(ContextIsAdmin, claims.IsAdmin)
			return next(c)
		}
	}
}

// RequireAdmin rejects requests whose token lacks the admin flag. Must
// run after Auth.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !IsAdmin(c) {
				return echo.NewHTTPError(http.StatusForbidden, "admin privileges required")
			}
			return next(c)
		}
	}
}

// UserID returns the authenticated caller's person ID
func UserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(ContextUserID).(uuid.UUID)
	return id, ok
}

// IsAdmin reports whether the authenticated caller is an administrator
func IsAdmin(c echo.Context) bool {
	isAdmin, ok := c.Get(ContextIsAdmin).(bool)
	return ok && isAdmin
}

func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return parts[1]
		}
	}

	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie.Value
	}
	return ""
}
