package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates all route handler functions so route
// registration stays in one place.
type HandlerBundle struct {
	// Booking wizard endpoints.
	StartBookingSession    gin.HandlerFunc
	GetBookingSession      gin.HandlerFunc
	SelectService          gin.HandlerFunc
	SubmitDetails          gin.HandlerFunc
	CreatePaymentIntent    gin.HandlerFunc
	ConfirmPayment         gin.HandlerFunc
	CompleteScheduling     gin.HandlerFunc
	GetBookingConfirmation gin.HandlerFunc
	StepBack               gin.HandlerFunc
	ResetSession           gin.HandlerFunc
	CancelSession          gin.HandlerFunc

	// Payment endpoints.
	CreateStandalonePaymentIntent gin.HandlerFunc

	// Webhook endpoints.
	StripeWebhook gin.HandlerFunc

	// Form relay endpoints.
	SubmitForm gin.HandlerFunc

	// Analytics endpoints.
	IngestAnalyticsEvent gin.HandlerFunc

	// Catalogue and coverage endpoints.
	ListServices  gin.HandlerFunc
	ListItems     gin.HandlerFunc
	QuoteItems    gin.HandlerFunc
	CheckCoverage gin.HandlerFunc
}
