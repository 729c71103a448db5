package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bilemo/catalog-api/internal/core/domain"
)

// httpStatusFor maps domain sentinels to the status and message of the error
// envelope. Unknown-client and wrong-password both render as "Invalid
// credentials" so the response does not leak which part failed.
func httpStatusFor(err error) (int, string, bool) {
	switch {
	case errors.Is(err, domain.ErrMissingCredentials):
		return http.StatusBadRequest, "Email and password are required", true
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrClientNotFound):
		return http.StatusUnauthorized, "Invalid credentials", true
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, "Too many failed login attempts, try again later", true
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, "Product not found", true
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found", true
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "Email already exists for this client", true
	}
	return 0, "", false
}

// NewHTTPErrorHandler returns the central Echo error handler. Handlers and
// services return plain errors; this is the single place they become JSON.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve domain.ValidationErrors
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, map[string]any{"errors": ve})
			return
		}

		if status, msg, ok := httpStatusFor(err); ok {
			_ = c.JSON(status, map[string]string{"error": msg})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg, ok := he.Message.(string)
			if !ok {
				msg = http.StatusText(he.Code)
			}
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Request().URL.Path).
			Msg("unhandled error")
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
