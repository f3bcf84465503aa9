package middleware

import (
	"vitacart/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// CurrentUser returns the account the auth middleware resolved for this
// request, or nil for guests.
func CurrentUser(c echo.Context) *entity.User {
	user, ok := c.Get(ContextKeyUser).(*entity.User)
	if !ok {
		return nil
	}

	return user
}
