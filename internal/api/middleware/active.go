package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireActive rejects tokens issued to clients that were deactivated
// before the token was minted. Deactivation after issuance takes effect at
// the next login, not mid-token.
func RequireActive() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			active, _ := c.Get("active").(bool)
			if !active {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid JWT Token")
			}
			return next(c)
		}
	}
}
