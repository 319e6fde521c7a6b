package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"imaut/internal/domain"
	"imaut/internal/infrastructure/http/v1/dto"
)

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	store domain.Pinger
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(store domain.Pinger) *HealthHandler {
	return &HealthHandler{store: store}
}

// Live handles liveness probe (is the process alive?).
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// Ready handles readiness probe (can the store be reached?).
// GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status: "error",
			Checks: map[string]string{"store": "unhealthy: " + err.Error()},
		})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status: "ok",
		Checks: map[string]string{"store": "healthy"},
	})
}
