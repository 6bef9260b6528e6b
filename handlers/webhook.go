package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"clearbook/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// WebhookHandler receives Stripe events. Signature verification is
// fail-closed: an unverifiable payload is rejected before any parsing.
type WebhookHandler struct {
	secret    string
	processor *booking.PaymentEventProcessor
	logger    *zap.Logger
}

func NewWebhookHandler(secret string, processor *booking.PaymentEventProcessor, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{secret: secret, processor: processor, logger: logger}
}

// HandleStripeEvent verifies and dispatches one webhook delivery.
func (h *WebhookHandler) HandleStripeEvent(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, 65536))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), h.secret)
	if err != nil {
		h.logger.Warn("webhook signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "signature verification failed"})
		return
	}

	switch event.Type {
	case "payment_intent.succeeded":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed event payload"})
			return
		}
		if err := h.processor.HandleSucceeded(c.Request.Context(), &intent); err != nil {
			h.logger.Error("failed to process succeeded payment", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "event processing failed"})
			return
		}
	case "payment_intent.payment_failed":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "malformed event payload"})
			return
		}
		h.processor.HandleFailed(&intent)
	default:
		h.logger.Debug("unhandled webhook event type", zap.String("type", string(event.Type)))
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
