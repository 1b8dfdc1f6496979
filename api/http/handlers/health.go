package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/SatyamKumarChoudhary/chat-bot/api/http/presenter"
	"github.com/SatyamKumarChoudhary/chat-bot/pkg/health"
)

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	svc     health.ReadinessUseCase
	timeout time.Duration
}

func NewHealthHandler(svc health.ReadinessUseCase) *HealthHandler {
	return &HealthHandler{svc: svc, timeout: time.Second}
}

type statusResponse struct {
	Status  string `json:"status"`
	Details string `json:"details,omitempty"`
}

// Health reports that the process is serving.
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} statusResponse
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, statusResponse{Status: "ok"})
}

// Ready checks that the model provider is reachable with the configured credentials.
// @Summary Readiness probe
// @Tags    health
// @Produce json
// @Success 200 {object} statusResponse
// @Failure 503 {object} statusResponse
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), h.timeout)
	defer cancel()
	if err := h.svc.Ready(ctx); err != nil {
		return presenter.JSON(c, http.StatusServiceUnavailable, statusResponse{
			Status:  "not_ready",
			Details: err.Error(),
		})
	}
	return presenter.JSON(c, http.StatusOK, statusResponse{Status: "ready"})
}
