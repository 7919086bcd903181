package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"flashcards/backend/internal/model"
	"flashcards/backend/internal/service"
)

type EntryHandler struct {
	service   service.EntryService
	aiService service.AIService
}

func NewEntryHandler(service service.EntryService, aiService service.AIService) *EntryHandler {
	return &EntryHandler{service: service, aiService: aiService}
}

func (h *EntryHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/entries", h.List)
	g.GET("/entries/search", h.Search)
	g.GET("/entries/:id", h.GetByID)
}

// RegisterManagementRoutes registers the endpoints that mutate content and
// belong behind authentication.
func (h *EntryHandler) RegisterManagementRoutes(g *echo.Group) {
	g.POST("/entries/:id/generate-examples", h.GenerateExamples)
}

type entryResponse struct {
	ID        string  `json:"id"`
	Headword  string  `json:"headword"`
	MeaningEN *string `json:"meaning_en"`
	MeaningES *string `json:"meaning_es"`
	Notes     *string `json:"notes,omitempty"`
	Level     *string `json:"level,omitempty"`
}

type exampleResponse struct {
	ID     string  `json:"id"`
	TextEN string  `json:"text_en"`
	TextES *string `json:"text_es"`
	Rank   int     `json:"rank"`
}

type entryDetailResponse struct {
	entryResponse
	Examples []exampleResponse `json:"examples"`
}

type topicRefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type searchHitResponse struct {
	entryResponse
	TopicIDs     []string          `json:"topic_ids"`
	PrimaryTopic *topicRefResponse `json:"primary_topic"`
}

func toEntryResponse(e model.Entry) entryResponse {
	return entryResponse{
		ID:        idToString(e.ID),
		Headword:  e.Headword,
		MeaningEN: e.MeaningEN,
		MeaningES: e.MeaningES,
		Notes:     e.Notes,
		Level:     e.Level,
	}
}

// List returns entries with optional filters.
// @Summary List entries
// @Description Get entries ordered by id, optionally filtered by topic and substring query
// @Tags entries
// @Produce json
// @Param topic_id query int false "Filter by topic ID"
// @Param q query string false "Case-insensitive substring match on headword and meanings"
// @Param limit query int false "Limit (default 200, max 2000)"
// @Success 200 {array} entryResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /entries [get]
func (h *EntryHandler) List(c echo.Context) error {
	var params service.EntryListParams

	if raw := c.QueryParam("topic_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Error(c, http.StatusBadRequest, "invalid topic_id")
		}
		params.TopicID = &id
	}

	params.Query = c.QueryParam("q")

	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return Error(c, http.StatusBadRequest, "invalid limit")
		}
		params.Limit = limit
	}

	entries, err := h.service.List(c.Request().Context(), params)
	if err != nil {
		return writeServiceError(c, err)
	}

	response := make([]entryResponse, len(entries))
	for i, e := range entries {
		response[i] = toEntryResponse(e)
	}
	return c.JSON(http.StatusOK, response)
}

// Search returns ranked entry matches for a query.
// @Summary Search entries
// @Description Ranked search: exact headword matches first, then shorter headwords, then alphabetical
// @Tags entries
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Limit (default 20, max 50)"
// @Success 200 {array} searchHitResponse
// @Failure 400 {object} errorResponse
// @Router /entries/search [get]
func (h *EntryHandler) Search(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return Error(c, http.StatusBadRequest, "invalid limit")
		}
		limit = parsed
	}

	hits, err := h.service.Search(c.Request().Context(), c.QueryParam("q"), limit)
	if err != nil {
		return writeServiceError(c, err)
	}

	response := make([]searchHitResponse, len(hits))
	for i, hit := range hits {
		item := searchHitResponse{
			entryResponse: toEntryResponse(hit.Entry),
			TopicIDs:      idsToStrings(hit.TopicIDs),
		}
		if hit.PrimaryTopic != nil {
			item.PrimaryTopic = &topicRefResponse{
				ID:   idToString(hit.PrimaryTopic.ID),
				Name: hit.PrimaryTopic.Name,
			}
		}
		response[i] = item
	}
	return c.JSON(http.StatusOK, response)
}

// GetByID returns an entry with its example sentences.
// @Summary Get entry
// @Description Get a single entry with examples ordered by rank
// @Tags entries
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} entryDetailResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /entries/{id} [get]
func (h *EntryHandler) GetByID(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid id")
	}

	detail, err := h.service.GetDetail(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, toEntryDetailResponse(detail))
}

func toEntryDetailResponse(detail service.EntryDetail) entryDetailResponse {
	response := entryDetailResponse{
		entryResponse: toEntryResponse(detail.Entry),
		Examples:      make([]exampleResponse, len(detail.Examples)),
	}
	for i, ex := range detail.Examples {
		response.Examples[i] = exampleResponse{
			ID:     idToString(ex.ID),
			TextEN: ex.TextEN,
			TextES: ex.TextES,
			Rank:   ex.Rank,
		}
	}
	return response
}

type generateExamplesRequest struct {
	Count int `json:"count"`
}

// GenerateExamples asks the configured AI provider for example sentences.
// @Summary Generate example sentences
// @Description Generate and store example sentences for an entry via the configured AI provider
// @Tags entries
// @Accept json
// @Produce json
// @Param id path int true "Entry ID"
// @Param request body generateExamplesRequest false "Number of sentences to generate"
// @Success 200 {array} exampleResponse
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /entries/{id}/generate-examples [post]
func (h *EntryHandler) GenerateExamples(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid id")
	}

	var req generateExamplesRequest
	// Body is optional, a bare POST generates the default count.
	_ = c.Bind(&req)

	examples, err := h.aiService.GenerateExamples(c.Request().Context(), id, req.Count)
	if err != nil {
		return writeServiceError(c, err)
	}

	response := make([]exampleResponse, len(examples))
	for i, ex := range examples {
		response[i] = exampleResponse{
			ID:     idToString(ex.ID),
			TextEN: ex.TextEN,
			TextES: ex.TextES,
			Rank:   ex.Rank,
		}
	}
	return c.JSON(http.StatusOK, response)
}
