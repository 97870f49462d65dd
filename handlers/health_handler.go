package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rebirthstudio/portfolio-backend/types"
)

// HealthHandler serves the probe and status routes under /health.
type HealthHandler struct {
	healthService HealthServiceInterface
}

// NewHealthHandler creates a HealthHandler backed by healthService.
func NewHealthHandler(healthService HealthServiceInterface) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
	}
}

// LivenessCheck answers 200 as long as the process serves requests.
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.Status(http.StatusOK)
}

// ReadinessCheck handles kubernetes readiness probe. A degraded email
// component still counts as ready: the endpoint answers with a config error.
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	health := h.healthService.CheckHealth(c.Request.Context())

	if health.Status == types.HealthStatusDown {
		c.JSON(http.StatusServiceUnavailable, health)
		return
	}

	c.JSON(http.StatusOK, health)
}

// DetailedHealth godoc
// @Summary      Detailed health, including email provider configuration
// @Tags         health
// @Produce      json
// @Success      200  {object}  types.HealthCheck
// @Router       /health [get]
func (h *HealthHandler) DetailedHealth(c *gin.Context) {
	health := h.healthService.CheckHealth(c.Request.Context())
	c.JSON(http.StatusOK, health)
}
