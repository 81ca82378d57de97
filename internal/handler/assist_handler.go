package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/octobees/staff-directory/internal/dto"
	middleware "github.com/octobees/staff-directory/internal/middleware"
	"github.com/octobees/staff-directory/internal/service"
)

// AssistHandler forwards link-generation requests to the AI worker.
type AssistHandler struct {
	assist *service.AssistService
	worker WorkerPoster
}

// NewAssistHandler constructs an assist handler backed by an HTTP client.
// If `client == nil`, it automatically creates an ID-token client for Cloud Run → Cloud Run calls.
func NewAssistHandler(assist *service.AssistService, client *http.Client, workerBaseURL string) *AssistHandler {
	return &AssistHandler{assist: assist, worker: NewWorkerClient(client, workerBaseURL)}
}

// NewAssistHandlerWithWorker allows injecting a custom worker client (useful for tests).
func NewAssistHandlerWithWorker(assist *service.AssistService, worker WorkerPoster) *AssistHandler {
	return &AssistHandler{assist: assist, worker: worker}
}

// GenerateLinks handles POST /assist/links requests and forwards them to the worker.
func (h *AssistHandler) GenerateLinks(c echo.Context) error {
	var req dto.AssistLinksRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	payload, err := h.assist.BuildLinksPayload(req)
	if err != nil {
		return Error(c, http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	data, err := h.worker.PostJSON(ctx, "/links", payload, middleware.RequestIDFromContext(c))
	if err != nil {
		return Error(c, http.StatusBadGateway, err.Error())
	}
	if data == nil {
		data = map[string]any{"links": []string{}}
	}
	return Success(c, http.StatusOK, "links generated", data)
}
