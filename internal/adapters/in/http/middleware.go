package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewAPIKeyMiddleware returns an echo middleware that requires every request
// to carry the shared secret in the X-API-Key header. Requests with a missing
// or wrong key are rejected with 403. The health endpoint stays open.
func NewAPIKeyMiddleware(apiSecret string) echo.MiddlewareFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		Skipper: func(ctx echo.Context) bool {
			return ctx.Path() == "/health"
		},
		KeyLookup: "header:X-API-Key",
		Validator: func(key string, _ echo.Context) (bool, error) {
			return subtle.ConstantTimeCompare([]byte(key), []byte(apiSecret)) == 1, nil
		},
		ErrorHandler: func(_ error, ctx echo.Context) error {
			return ctx.JSON(http.StatusForbidden, Error{
				Code:    http.StatusForbidden,
				Message: "Invalid API key",
			})
		},
	})
}
