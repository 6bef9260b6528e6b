package handlers

import (
	"net/http"

	"clearbook/models"
	"clearbook/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentsHandler creates payment intents directly from a booking draft,
// without a wizard session. Callers that manage their own flow state use
// this instead of the session-bound endpoint.
type PaymentsHandler struct {
	payments booking.PaymentHandler
	logger   *zap.Logger
}

func NewPaymentsHandler(payments booking.PaymentHandler, logger *zap.Logger) *PaymentsHandler {
	return &PaymentsHandler{payments: payments, logger: logger}
}

// CreateIntent handles POST /api/payments/create-payment-intent.
func (h *PaymentsHandler) CreateIntent(c *gin.Context) {
	var input struct {
		Service         models.ServiceOption   `json:"service" binding:"required"`
		CustomerDetails models.CustomerDetails `json:"customerDetails"`
		Date            string                 `json:"date"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Service.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "service price must be positive"})
		return
	}

	draft := models.BookingDraft{
		Service:         &input.Service,
		Date:            input.Date,
		CustomerDetails: input.CustomerDetails,
	}

	result, err := h.payments.CreateIntent(c.Request.Context(), int64(input.Service.Price)*100, draft)
	if err != nil {
		h.logger.Error("failed to create payment intent", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create payment intent"})
		return
	}

	c.JSON(http.StatusOK, result)
}
