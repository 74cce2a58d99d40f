package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"fotolio/internal/application/usecase"
)

// respondError maps domain errors onto HTTP statuses. Storage faults stay
// opaque to the caller.
func respondError(c echo.Context, err error) error {
	var invalid *usecase.InvalidInputError

	switch {
	case errors.As(err, &invalid):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": invalid.Error()})
	case errors.Is(err, usecase.ErrEmailTaken):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "internal server error",
		})
	}
}
