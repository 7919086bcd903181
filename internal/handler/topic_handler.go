package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"flashcards/backend/internal/service"
)

type TopicHandler struct {
	service service.TopicService
}

func NewTopicHandler(service service.TopicService) *TopicHandler {
	return &TopicHandler{service: service}
}

func (h *TopicHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/topics", h.List)
}

type topicResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	IsSuggested bool   `json:"is_suggested"`
}

// List returns all topics.
// @Summary List topics
// @Description Get all topics ordered by id
// @Tags topics
// @Produce json
// @Success 200 {array} topicResponse
// @Failure 500 {object} errorResponse
// @Router /topics [get]
func (h *TopicHandler) List(c echo.Context) error {
	topics, err := h.service.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}

	response := make([]topicResponse, len(topics))
	for i, t := range topics {
		response[i] = topicResponse{
			ID:          idToString(t.ID),
			Name:        t.Name,
			IsSuggested: t.IsSuggested,
		}
	}
	return c.JSON(http.StatusOK, response)
}
