package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"fotolio/internal/presentation"
	"fotolio/pkg/identifier"
)

const bearerPrefix = "Bearer "

// Auth authenticates the caller from a bearer token and stores the caller's
// user id in the request context under presentation.KeyUserID.
func Auth(cfg presentation.AuthConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				c.Response().Header().Set(presentation.ReasonTag, "missing bearer token")

				return c.NoContent(http.StatusUnauthorized)
			}

			userID, err := presentation.ParseToken(cfg, strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				c.Response().Header().Set(presentation.ReasonTag, "invalid token")

				return c.NoContent(http.StatusUnauthorized)
			}

			if !identifier.Valid(userID) {
				c.Response().Header().Set(presentation.ReasonTag, "malformed subject")

				return c.NoContent(http.StatusUnauthorized)
			}

			c.Set(presentation.KeyUserID, userID)

			return next(c)
		}
	}
}
