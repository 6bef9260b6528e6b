package routes

import (
	"net/http"
	"time"

	"clearbook/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", hb.StartBookingSession)
		bookingGroup.GET("/session/:sessionID", hb.GetBookingSession)
		bookingGroup.PUT("/session/:sessionID/service", hb.SelectService)
		bookingGroup.PUT("/session/:sessionID/details", hb.SubmitDetails)
		bookingGroup.POST("/session/:sessionID/payment-intent", hb.CreatePaymentIntent)
		bookingGroup.POST("/session/:sessionID/payment-result", hb.ConfirmPayment)
		bookingGroup.POST("/session/:sessionID/schedule", hb.CompleteScheduling)
		bookingGroup.GET("/session/:sessionID/confirmation", hb.GetBookingConfirmation)
		bookingGroup.POST("/session/:sessionID/back", hb.StepBack)
		bookingGroup.POST("/session/:sessionID/reset", hb.ResetSession)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelSession)
	}
}

// RegisterPaymentRoutes registers the sessionless payment intent endpoint.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.POST("/create-payment-intent", hb.CreateStandalonePaymentIntent)
	}
}

// RegisterWebhookRoutes registers payment provider callbacks. These sit
// outside the rate limiter: deliveries come from Stripe, not browsers.
func RegisterWebhookRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/webhooks/stripe", hb.StripeWebhook)
}

// RegisterFormRoutes registers the form relay endpoints.
func RegisterFormRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/forms")
	{
		api.POST("/:formName", hb.SubmitForm)
	}
}

// RegisterAnalyticsRoutes registers the client beacon endpoint.
func RegisterAnalyticsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/analytics", hb.IngestAnalyticsEvent)
}

// RegisterCatalogRoutes registers the pricing catalogue and coverage
// endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	pricingGroup := r.Group("/api/pricing")
	{
		pricingGroup.GET("/services", hb.ListServices)
		pricingGroup.GET("/items", hb.ListItems)
		pricingGroup.POST("/quote", hb.QuoteItems)
	}
	r.POST("/api/coverage/check", hb.CheckCoverage)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Clearbook"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterWebhookRoutes(r, hb)
	RegisterFormRoutes(r, hb)
	RegisterAnalyticsRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterHealthRoute(r)
}
