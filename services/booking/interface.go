package booking

import (
	"context"
	"time"

	"clearbook/models"
	"clearbook/services/analytics"

	"go.uber.org/zap"
)

// WizardService drives the five-step booking flow. Transitions are strictly
// forward/backward by one step; the coverage gate on step 2 and the payment
// outcome on step 3 are the only conditions.
type WizardService interface {
	StartSession(ctx context.Context, handoff *models.PricingSelection) (*models.BookingSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
	SelectService(ctx context.Context, sessionID, serviceID string) (*models.BookingSession, error)
	SubmitDetails(ctx context.Context, sessionID string, details models.CustomerDetails) (*models.BookingSession, error)
	CreatePaymentIntent(ctx context.Context, sessionID string) (*models.PaymentIntentResult, error)
	ConfirmPayment(ctx context.Context, sessionID string, result models.PaymentResult) (*models.BookingSession, error)
	CompleteScheduling(ctx context.Context, sessionID string) (*models.CompletedBooking, error)
	GetCompletedBooking(ctx context.Context, sessionID string) (*models.CompletedBooking, error)
	Back(ctx context.Context, sessionID string) (*models.BookingSession, error)
	ResetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
	CancelSession(ctx context.Context, sessionID string) error
}

// DefaultWizardService is the production implementation.
type DefaultWizardService struct {
	Store      SessionStore
	Payments   PaymentHandler
	Analytics  analytics.Emitter
	Logger     *zap.Logger
	SessionTTL time.Duration
}
