// File: clearbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clearbook/config"
	"clearbook/handlers"
	"clearbook/middleware"
	"clearbook/routes"
	"clearbook/services/analytics"
	"clearbook/services/booking"
	"clearbook/services/forms"
	"clearbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeSecretKey

	// Analytics pipeline: queue publisher feeding the delivery worker.
	publisher := analytics.NewQueuePublisher(logger)
	defer publisher.Close()
	emitter := analytics.NewEmitter(publisher, logger)
	analyticsWorker := analytics.InitDeliveryWorker(logger)
	defer analyticsWorker.Shutdown()

	// Services.
	relayService := forms.NewRelayService(logger)

	paymentHandler := booking.NewStripePaymentHandler(logger)

	wizardService := &booking.DefaultWizardService{
		Store:      booking.NewRedisSessionStore(),
		Payments:   paymentHandler,
		Analytics:  emitter,
		Logger:     logger,
		SessionTTL: time.Duration(config.AppConfig.BookingSessionTTLMin) * time.Minute,
	}

	eventProcessor := booking.NewPaymentEventProcessor(logger, relayService)

	// Handlers.
	bookingHandler := handlers.NewBookingHandler(wizardService, logger)
	paymentsHandler := handlers.NewPaymentsHandler(paymentHandler, logger)
	webhookHandler := handlers.NewWebhookHandler(config.AppConfig.StripeWebhookSecret, eventProcessor, logger)
	formsHandler := handlers.NewFormsHandler(relayService, emitter, logger)
	analyticsHandler := handlers.NewAnalyticsHandler(emitter, logger)
	catalogHandler := handlers.NewCatalogHandler(emitter)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Booking wizard endpoints.
		StartBookingSession:    bookingHandler.StartSession,
		GetBookingSession:      bookingHandler.GetSession,
		SelectService:          bookingHandler.SelectService,
		SubmitDetails:          bookingHandler.SubmitDetails,
		CreatePaymentIntent:    bookingHandler.CreatePaymentIntent,
		ConfirmPayment:         bookingHandler.ConfirmPayment,
		CompleteScheduling:     bookingHandler.CompleteScheduling,
		GetBookingConfirmation: bookingHandler.GetConfirmation,
		StepBack:               bookingHandler.Back,
		ResetSession:           bookingHandler.Reset,
		CancelSession:          bookingHandler.Cancel,

		// Payment endpoints.
		CreateStandalonePaymentIntent: paymentsHandler.CreateIntent,

		// Webhook endpoints.
		StripeWebhook: webhookHandler.HandleStripeEvent,

		// Form relay endpoints.
		SubmitForm: formsHandler.Submit,

		// Analytics endpoints.
		IngestAnalyticsEvent: analyticsHandler.Ingest,

		// Catalogue and coverage endpoints.
		ListServices:  catalogHandler.ListServices,
		ListItems:     catalogHandler.ListItems,
		QuoteItems:    catalogHandler.Quote,
		CheckCoverage: catalogHandler.CheckCoverage,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
