package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"flashcards/backend/internal/service"
)

type AIHandler struct {
	service service.SettingsService
}

func NewAIHandler(service service.SettingsService) *AIHandler {
	return &AIHandler{service: service}
}

func (h *AIHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/ai/settings", h.GetSettings)
	g.PUT("/ai/settings", h.UpdateSettings)
	g.POST("/ai/test", h.Test)
}

type aiSettingsResponse struct {
	Provider string `json:"provider"`
	APIKey   string `json:"apiKey"`
	BaseURL  string `json:"baseUrl"`
	Model    string `json:"model"`
}

type aiSettingsRequest struct {
	Provider string `json:"provider"`
	APIKey   string `json:"apiKey"`
	BaseURL  string `json:"baseUrl"`
	Model    string `json:"model"`
}

type aiTestRequest struct {
	Provider string `json:"provider"`
	APIKey   string `json:"apiKey"`
	BaseURL  string `json:"baseUrl"`
	Model    string `json:"model"`
}

type aiTestResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// GetSettings returns the AI configuration.
// @Summary Get AI settings
// @Description Get the AI provider configuration with masked API keys
// @Tags ai
// @Produce json
// @Success 200 {object} aiSettingsResponse
// @Failure 500 {object} errorResponse
// @Router /ai/settings [get]
func (h *AIHandler) GetSettings(c echo.Context) error {
	settings, err := h.service.GetAISettings(c.Request().Context())
	if err != nil {
		c.Logger().Error(err)
		return Error(c, http.StatusInternalServerError, "failed to get settings")
	}

	return c.JSON(http.StatusOK, aiSettingsResponse{
		Provider: settings.Provider,
		APIKey:   settings.APIKey,
		BaseURL:  settings.BaseURL,
		Model:    settings.Model,
	})
}

// UpdateSettings updates the AI configuration.
// @Summary Update AI settings
// @Description Update the AI provider configuration; a masked API key keeps the stored one
// @Tags ai
// @Accept json
// @Produce json
// @Param request body aiSettingsRequest true "AI settings"
// @Success 200 {object} aiSettingsResponse
// @Failure 400 {object} errorResponse
// @Router /ai/settings [put]
func (h *AIHandler) UpdateSettings(c echo.Context) error {
	var req aiSettingsRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}

	settings := &service.AISettings{
		Provider: req.Provider,
		APIKey:   req.APIKey,
		BaseURL:  req.BaseURL,
		Model:    req.Model,
	}
	if err := h.service.SetAISettings(c.Request().Context(), settings); err != nil {
		c.Logger().Error(err)
		return Error(c, http.StatusInternalServerError, "failed to update settings")
	}

	return h.GetSettings(c)
}

// Test checks the AI connection.
// @Summary Test AI connection
// @Description Send a test message with the given provider configuration
// @Tags ai
// @Accept json
// @Produce json
// @Param request body aiTestRequest true "Provider configuration to test"
// @Success 200 {object} aiTestResponse
// @Failure 400 {object} errorResponse
// @Router /ai/test [post]
func (h *AIHandler) Test(c echo.Context) error {
	var req aiTestRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}

	message, err := h.service.TestAI(c.Request().Context(), req.Provider, req.APIKey, req.BaseURL, req.Model)
	if err != nil {
		return c.JSON(http.StatusOK, aiTestResponse{Success: false, Error: err.Error()})
	}
	return c.JSON(http.StatusOK, aiTestResponse{Success: true, Message: message})
}
