package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"flashcards/backend/internal/service"
)

type StatsHandler struct {
	service service.StatsService
}

func NewStatsHandler(service service.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

func (h *StatsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/stats/overview", h.Overview)
}

// Overview returns table counts.
// @Summary Stats overview
// @Description Get counts of topics, entries, examples, users and active sessions
// @Tags stats
// @Produce json
// @Success 200 {object} service.StatsOverview
// @Failure 500 {object} errorResponse
// @Router /stats/overview [get]
func (h *StatsHandler) Overview(c echo.Context) error {
	overview, err := h.service.Overview(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, overview)
}
