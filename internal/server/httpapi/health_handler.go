package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves liveness and readiness endpoints.
type HealthHandler struct {
	checks map[string]Pinger
}

// NewHealthHandler reports on every named dependency in checks.
func NewHealthHandler(checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// Root godoc
// @Summary Root
// @Tags health
// @Success 200
// @Router / [get]
func (h *HealthHandler) Root(c *gin.Context) {
	c.Status(http.StatusOK)
}

// Status godoc
// @Summary Service status
// @Tags health
// @Produce plain
// @Success 200 {string} string "ARI is running!"
// @Router /status [get]
func (h *HealthHandler) Status(c *gin.Context) {
	c.String(http.StatusOK, "ARI is running!")
}

// Check godoc
// @Summary Health check
// @Description Ping every dependency
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	body := gin.H{"status": "healthy"}
	for name, p := range h.checks {
		if err := p.Ping(ctx); err != nil {
			status = http.StatusServiceUnavailable
			body["status"] = "unhealthy"
			body[name] = err.Error()
			continue
		}
		body[name] = "ok"
	}
	c.JSON(status, body)
}
