package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"flashcards/backend/internal/logger"
	"flashcards/backend/internal/service"
)

// RequestLoggerMiddleware logs HTTP requests using logger.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			latency := time.Since(start)
			remoteIP := c.RealIP()
			userAgent := req.UserAgent()

			status := res.Status
			result := "ok"
			if status >= 400 {
				result = "failed"
			}

			fields := []any{
				"module", "http",
				"action", "request",
				"resource", "http",
				"result", result,
				"method", req.Method,
				"path", req.URL.Path,
				"status_code", status,
				"duration_ms", latency.Milliseconds(),
				"remote_ip", remoteIP,
				"user_agent", userAgent,
			}

			switch {
			case status >= 500:
				logger.Error("http request", fields...)
			case status >= 400:
				logger.Warn("http request", fields...)
			default:
				logger.Debug("http request", fields...)
			}

			return nil
		}
	}
}

// SessionAuthMiddleware rejects requests that do not carry a valid session
// cookie. It guards the management endpoints (import, stats, AI settings).
func SessionAuthMiddleware(authService service.AuthService, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var token string
			if cookie, err := c.Cookie(cookieName); err == nil {
				token = cookie.Value
			}

			if _, err := authService.ResolveSession(c.Request().Context(), token); err != nil {
				logger.Warn("auth missing",
					"module", "http",
					"action", "request",
					"resource", "auth",
					"result", "failed",
					"method", c.Request().Method,
					"path", c.Request().URL.Path,
					"remote_ip", c.RealIP(),
				)
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			}

			return next(c)
		}
	}
}
