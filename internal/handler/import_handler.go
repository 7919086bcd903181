package handler

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"flashcards/backend/internal/service"
)

const maxCSVSize = 10 << 20

type ImportHandler struct {
	service     service.ImportService
	taskService service.ImportTaskService
}

func NewImportHandler(service service.ImportService, taskService service.ImportTaskService) *ImportHandler {
	return &ImportHandler{service: service, taskService: taskService}
}

func (h *ImportHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/import/csv", h.Import)
	g.GET("/import/status", h.Status)
	g.POST("/import/cancel", h.Cancel)
}

type importStartedResponse struct {
	Status string `json:"status"`
	TaskID string `json:"taskId"`
}

type importIdleResponse struct {
	Status string `json:"status"`
}

type importCancelledResponse struct {
	Cancelled bool `json:"cancelled"`
}

// Import uploads a CSV and seeds it in the background.
// @Summary Import CSV
// @Description Upload a vocabulary CSV and run the seeding import as a background task
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file to import"
// @Success 202 {object} importStartedResponse
// @Failure 400 {object} errorResponse
// @Failure 413 {object} errorResponse
// @Router /import/csv [post]
func (h *ImportHandler) Import(c echo.Context) error {
	req := c.Request()
	req.Body = http.MaxBytesReader(c.Response().Writer, req.Body, maxCSVSize)

	var reader io.Reader
	contentType := req.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/") {
		file, err := c.FormFile("file")
		if err != nil {
			if err == http.ErrMissingFile {
				return Error(c, http.StatusBadRequest, "missing file")
			}
			return Error(c, http.StatusBadRequest, "invalid request")
		}
		if file.Size > maxCSVSize {
			return Error(c, http.StatusRequestEntityTooLarge, "file too large")
		}
		src, err := file.Open()
		if err != nil {
			return Error(c, http.StatusBadRequest, "invalid request")
		}
		defer src.Close()
		reader = io.LimitReader(src, maxCSVSize)
	} else {
		reader = io.LimitReader(req.Body, maxCSVSize)
	}

	// The import outlives this request, so buffer the upload first.
	payload, err := io.ReadAll(reader)
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	if len(payload) == 0 {
		return Error(c, http.StatusBadRequest, "empty file")
	}

	taskID, taskCtx := h.taskService.Start(0)

	go h.runImport(taskCtx, payload)

	return c.JSON(http.StatusAccepted, importStartedResponse{Status: "started", TaskID: taskID})
}

func (h *ImportHandler) runImport(ctx context.Context, payload []byte) {
	result, err := h.service.Import(ctx, bytes.NewReader(payload), func(p service.ImportProgress) {
		h.taskService.Update(p.Total, p.Current, p.Headword)
	})
	if err != nil {
		h.taskService.Fail(err)
		return
	}
	h.taskService.Complete(result)
}

// Status returns the state of the current import task.
// @Summary Import status
// @Description Get progress of the running or last finished CSV import
// @Tags import
// @Produce json
// @Success 200 {object} service.ImportTask
// @Router /import/status [get]
func (h *ImportHandler) Status(c echo.Context) error {
	task := h.taskService.Get()
	if task == nil {
		return c.JSON(http.StatusOK, importIdleResponse{Status: "idle"})
	}
	return c.JSON(http.StatusOK, task)
}

// Cancel aborts the running import task.
// @Summary Cancel import
// @Description Cancel the currently running CSV import
// @Tags import
// @Produce json
// @Success 200 {object} importCancelledResponse
// @Router /import/cancel [post]
func (h *ImportHandler) Cancel(c echo.Context) error {
	cancelled := h.taskService.Cancel()
	return c.JSON(http.StatusOK, importCancelledResponse{Cancelled: cancelled})
}
