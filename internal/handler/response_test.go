package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"flashcards/backend/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestError(t *testing.T) {
	c, rec := newTestContext(t)

	require.NoError(t, Error(c, http.StatusBadRequest, "invalid limit"))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"error":"invalid limit"}`, rec.Body.String())
}

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"invalid", service.ErrInvalid, http.StatusBadRequest, "invalid request"},
		{"not found", service.ErrNotFound, http.StatusNotFound, "resource not found"},
		{"conflict", service.ErrConflict, http.StatusConflict, "conflict"},
		{"unauthorized", service.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{"google auth", service.ErrGoogleAuth, http.StatusUnauthorized, "google authentication failed"},
		{"ai not configured", service.ErrAINotConfigured, http.StatusBadRequest, "ai provider not configured"},
		{"unknown", errors.New("db gone"), http.StatusInternalServerError, "internal error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(t)

			require.NoError(t, writeServiceError(c, tt.err))
			require.Equal(t, tt.status, rec.Code)
			require.JSONEq(t, `{"error":"`+tt.body+`"}`, rec.Body.String())
		})
	}
}

func TestWriteServiceError_WrappedError(t *testing.T) {
	c, rec := newTestContext(t)

	wrapped := errors.Join(service.ErrGoogleAuth, errors.New("audience mismatch"))
	require.NoError(t, writeServiceError(c, wrapped))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
