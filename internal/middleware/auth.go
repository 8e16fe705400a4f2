package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ItsBhatt/devConnector/internal/identity"
	"github.com/labstack/echo/v4"
)

const userIDKey = "userID"

// AuthMiddleware resolves the bearer credential through provider and stores
// the resulting user ID in the context.
func AuthMiddleware(provider identity.Provider) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing Authorization header")
			}

			// Expecting "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization header format")
			}

			userID, err := provider.ResolveIdentity(c.Request().Context(), parts[1])
			if err != nil {
				if errors.Is(err, identity.ErrInvalidCredential) {
					return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token").SetInternal(err)
				}
				return echo.NewHTTPError(http.StatusInternalServerError, "Could not verify token").SetInternal(err)
			}

			SetUserID(c, userID)
			return next(c)
		}
	}
}

// SetUserID stores the authenticated user ID in the context
func SetUserID(c echo.Context, userID string) {
	c.Set(userIDKey, userID)
}

// UserID returns the authenticated user ID, or "" outside AuthMiddleware
func UserID(c echo.Context) string {
	id, _ := c.Get(userIDKey).(string)
	return id
}
