package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health godoc
// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	sendJSON(c, http.StatusOK, gin.H{"status": "ok"})
}

// HealthDB godoc
// @Summary Readiness probe with a store round trip
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health/db [get]
func (h *Handler) HealthDB(c *gin.Context) {
	if err := h.dbPing(c.Request.Context()); err != nil {
		sendJSON(c, http.StatusServiceUnavailable, gin.H{"db": "error", "detail": err.Error()})
		return
	}
	sendJSON(c, http.StatusOK, gin.H{"db": "ok"})
}
