package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pulseboard/internal/shared/logger"
)

const healthPingTimeout = 2 * time.Second

// Pinger reports whether the database answers.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db     Pinger
	logger logger.Interface
}

func NewHealthHandler(db Pinger, logger logger.Interface) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Errorw("database ping failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"service":  "pulseboard",
			"database": "unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"service":  "pulseboard",
		"database": "ok",
	})
}
