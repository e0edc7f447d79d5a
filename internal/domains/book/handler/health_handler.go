package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"library-backend/internal/domains/book/model"
)

// Prober is the probe the health endpoint runs against the external catalog.
type Prober interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	prober Prober
}

func NewHealthHandler(prober Prober) *HealthHandler {
	return &HealthHandler{prober: prober}
}

// Health - GET /health
// Always 200: the process answering is what app_status reports. Only the
// external status flips on probe failure.
func (h *HealthHandler) Health(c *gin.Context) {
	statuses := model.HealthResponse{
		AppStatus:         "ok",
		ExternalAPIStatus: "ok",
	}

	if err := h.prober.Ping(c.Request.Context()); err != nil {
		statuses.ExternalAPIStatus = "failed"
	}

	c.JSON(http.StatusOK, statuses)
}
