package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/profilehub/profile-service/internal/api/middleware"
	"github.com/profilehub/profile-service/internal/core/domain"
)

// ctxUser extracts the acting user injected by the Auth middleware. A nil
// user means the middleware did not run for this route; treat the request as
// anonymous and reject it.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserContextKey).(*domain.User)
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}
