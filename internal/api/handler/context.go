package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

// ctxClientID extracts the tenant id placed on the context by the auth
// middleware. A missing or mistyped value means the route was mounted
// without the middleware, so the request cannot be trusted.
func ctxClientID(c echo.Context) (int64, error) {
	id, ok := c.Get("client_id").(int64)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}

// queryLimit reads the limit query parameter. An absent parameter returns 0,
// which the service resolves to its per-resource default. Explicit values are
// floored to 1, so ?limit=0 yields one item rather than the default page
// size, and non-numeric input coerces to 1.
func queryLimit(c echo.Context) int {
	raw := c.QueryParam("limit")
	if raw == "" {
		return 0
	}
	limit, _ := strconv.Atoi(raw)
	if limit < 1 {
		return 1
	}
	return limit
}
