package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/profilehub/profile-service/internal/api/metrics"
	"github.com/profilehub/profile-service/internal/core/domain"
	"github.com/profilehub/profile-service/internal/core/ports"
)

// UserContextKey is where the resolved acting user is stored on the echo
// context for the remainder of the request.
const UserContextKey = "user"

// Auth resolves the bearer token against the user store and injects the
// acting user into the request context. Resolution happens once per request,
// ahead of any route-specific logic.
func Auth(users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return domain.ErrUnauthenticated
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			user, err := users.FindByToken(c.Request().Context(), token)
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return domain.ErrInvalidToken
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}
