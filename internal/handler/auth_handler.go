package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"flashcards/backend/internal/model"
	"flashcards/backend/internal/service"
)

type AuthHandler struct {
	service      service.AuthService
	cookieName   string
	cookieSecure bool
}

func NewAuthHandler(service service.AuthService, cookieName string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		service:      service,
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
	}
}

func (h *AuthHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/auth/google", h.Google)
	g.GET("/auth/me", h.Me)
	g.POST("/auth/logout", h.Logout)
}

type googleLoginRequest struct {
	Credential string `json:"credential"`
}

type userResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Name      *string `json:"name"`
	AvatarURL *string `json:"avatar_url"`
}

func toUserResponse(u model.User) userResponse {
	return userResponse{
		ID:        idToString(u.ID),
		Email:     u.Email,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
	}
}

// Google signs a user in with a Google ID token.
// @Summary Google sign-in
// @Description Verify a Google ID token, upsert the user and set the session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body googleLoginRequest true "Google credential"
// @Success 200 {object} userResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /auth/google [post]
func (h *AuthHandler) Google(c echo.Context) error {
	var req googleLoginRequest
	if err := c.Bind(&req); err != nil || req.Credential == "" {
		return Error(c, http.StatusBadRequest, "credential is required")
	}

	result, err := h.service.LoginWithGoogle(c.Request().Context(), req.Credential)
	if err != nil {
		return writeServiceError(c, err)
	}

	c.SetCookie(h.sessionCookie(result.Token, result.ExpiresAt))
	return c.JSON(http.StatusOK, toUserResponse(result.User))
}

// Me returns the user behind the session cookie.
// @Summary Current user
// @Description Resolve the session cookie to the signed-in user
// @Tags auth
// @Produce json
// @Success 200 {object} userResponse
// @Failure 401 {object} errorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := h.service.ResolveSession(c.Request().Context(), h.cookieValue(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Logout revokes the current session.
// @Summary Log out
// @Description Revoke the session behind the cookie and clear it
// @Tags auth
// @Produce json
// @Success 200 {object} okResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.service.Logout(c.Request().Context(), h.cookieValue(c)); err != nil {
		return writeServiceError(c, err)
	}

	c.SetCookie(h.expiredCookie())
	return c.JSON(http.StatusOK, okResponse{OK: true})
}

func (h *AuthHandler) cookieValue(c echo.Context) string {
	cookie, err := c.Cookie(h.cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (h *AuthHandler) sessionCookie(token string, expiresAt time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *AuthHandler) expiredCookie() *http.Cookie {
	return &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
}
