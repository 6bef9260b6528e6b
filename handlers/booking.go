package handlers

import (
	"errors"
	"net/http"

	"clearbook/models"
	"clearbook/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the wizard over HTTP.
type BookingHandler struct {
	svc    booking.WizardService
	logger *zap.Logger
}

func NewBookingHandler(svc booking.WizardService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, logger: logger}
}

// StartSession creates a new booking session, optionally pre-filled from a
// pricing-page handoff.
func (h *BookingHandler) StartSession(c *gin.Context) {
	var input struct {
		Handoff *models.PricingSelection `json:"handoff"`
	}
	if err := c.ShouldBindJSON(&input); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.svc.StartSession(c.Request.Context(), input.Handoff)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start booking session", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sessionID": session.SessionID,
		"session":   session,
	})
}

// GetSession returns the live wizard state.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.svc.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SelectService records the chosen volume tier (step 1).
func (h *BookingHandler) SelectService(c *gin.Context) {
	var input struct {
		ServiceID string `json:"serviceID" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.svc.SelectService(c.Request.Context(), c.Param("sessionID"), input.ServiceID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SubmitDetails submits the customer details (step 2). Out-of-coverage
// postcodes block the transition and come back with alternate links.
func (h *BookingHandler) SubmitDetails(c *gin.Context) {
	var input struct {
		CustomerDetails models.CustomerDetails `json:"customerDetails" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.svc.SubmitDetails(c.Request.Context(), c.Param("sessionID"), input.CustomerDetails)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// CreatePaymentIntent asks the payment provider for an intent covering the
// draft price (step 3) and relays the client secret.
func (h *BookingHandler) CreatePaymentIntent(c *gin.Context) {
	result, err := h.svc.CreatePaymentIntent(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ConfirmPayment records the client-side card confirmation outcome (step 3).
func (h *BookingHandler) ConfirmPayment(c *gin.Context) {
	var input models.PaymentResult
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.svc.ConfirmPayment(c.Request.Context(), c.Param("sessionID"), input)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// CompleteScheduling acknowledges the external calendar selection (step 4),
// returning the completed booking snapshot.
func (h *BookingHandler) CompleteScheduling(c *gin.Context) {
	record, err := h.svc.CompleteScheduling(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": record})
}

// GetConfirmation serves the confirmation view snapshot.
func (h *BookingHandler) GetConfirmation(c *gin.Context) {
	record, err := h.svc.GetCompletedBooking(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": record})
}

// Back steps the wizard backwards without clearing entered data.
func (h *BookingHandler) Back(c *gin.Context) {
	session, err := h.svc.Back(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Reset clears the draft and returns to step 1.
func (h *BookingHandler) Reset(c *gin.Context) {
	session, err := h.svc.ResetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Cancel discards the session entirely.
func (h *BookingHandler) Cancel(c *gin.Context) {
	if err := h.svc.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

// renderError maps service errors onto the HTTP surface. Every failure path
// leaves entered data intact server-side and tells the caller how to
// recover.
func (h *BookingHandler) renderError(c *gin.Context, err error) {
	var coverageErr *booking.OutOfCoverageError
	var detailsErr *booking.DetailsValidationError
	var paymentErr *booking.PaymentFailedError

	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
	case errors.As(err, &coverageErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":    "postcode outside instant-booking coverage",
			"coverage": coverageErr.Result,
			"alternatives": gin.H{
				"quoteForm":     "/quote-selection",
				"coverageAreas": "/service-areas",
			},
		})
	case errors.As(err, &detailsErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "customer details failed validation",
			"errors": detailsErr.Errors,
		})
	case errors.As(err, &paymentErr):
		c.JSON(http.StatusPaymentRequired, gin.H{
			"error": paymentErr.Error(),
			"retry": true,
		})
	case errors.Is(err, booking.ErrWrongStep), errors.Is(err, booking.ErrNoService):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.logger.Error("booking handler failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
