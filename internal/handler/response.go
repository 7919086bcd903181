package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"flashcards/backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return Error(c, http.StatusBadRequest, "invalid request")
	case errors.Is(err, service.ErrNotFound):
		return Error(c, http.StatusNotFound, "resource not found")
	case errors.Is(err, service.ErrConflict):
		return Error(c, http.StatusConflict, "conflict")
	case errors.Is(err, service.ErrUnauthorized):
		return Error(c, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, service.ErrGoogleAuth):
		return Error(c, http.StatusUnauthorized, "google authentication failed")
	case errors.Is(err, service.ErrAINotConfigured):
		return Error(c, http.StatusBadRequest, "ai provider not configured")
	default:
		c.Logger().Error(err)
		return Error(c, http.StatusInternalServerError, "internal error")
	}
}

// Error returns a JSON error response with the given status and message
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}
