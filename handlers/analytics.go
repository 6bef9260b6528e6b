package handlers

import (
	"net/http"

	"clearbook/models"
	"clearbook/services/analytics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AnalyticsHandler ingests beacon events from the client. Ingest always
// answers 202: tracking must never surface a failure to the page.
type AnalyticsHandler struct {
	emitter analytics.Emitter
	logger  *zap.Logger
}

func NewAnalyticsHandler(emitter analytics.Emitter, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{emitter: emitter, logger: logger}
}

// Ingest handles POST /api/analytics.
func (h *AnalyticsHandler) Ingest(c *gin.Context) {
	var event models.AnalyticsEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		h.logger.Debug("analytics: dropped malformed beacon", zap.Error(err))
		c.JSON(http.StatusAccepted, gin.H{"accepted": false})
		return
	}
	if event.Event == "" {
		c.JSON(http.StatusAccepted, gin.H{"accepted": false})
		return
	}

	h.emitter.Track(event)
	c.JSON(http.StatusAccepted, gin.H{"accepted": true})
}
