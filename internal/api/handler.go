package api

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"community_sync/internal/domain"
)

// Ingester is the single inbound operation of the sync endpoint.
type Ingester interface {
	SyncArticle(ctx context.Context, req domain.SyncRequest) domain.SyncResult
}

type Handler struct {
	ingester Ingester
}

func NewHandler(ingester Ingester) *Handler {
	return &Handler{ingester: ingester}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/article", h.handleSyncArticle)
}

// syncResponse keeps the wire shape client applications already parse:
// "sc" is the success flag, "msg" carries soft-failure details.
type syncResponse struct {
	Success bool   `json:"sc"`
	Msg     string `json:"msg,omitempty"`
}

// handleSyncArticle always answers 200 once the body parsed; rejection
// and soft failure are signaled in the payload, not the status code.
func (h *Handler) handleSyncArticle(c echo.Context) error {
	ctx := c.Request().Context()

	var req domain.SyncRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}

	result := h.ingester.SyncArticle(ctx, req)

	switch result.Status {
	case domain.SyncAccepted:
		return c.JSON(http.StatusOK, syncResponse{Success: true})
	case domain.SyncSoftFailure:
		return c.JSON(http.StatusOK, syncResponse{Success: false, Msg: result.Message})
	default:
		return c.JSON(http.StatusOK, syncResponse{Success: false})
	}
}
