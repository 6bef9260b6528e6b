package booking

import (
	"context"
	"fmt"
	"time"

	"clearbook/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentHandler creates payment intents for a booking draft. Confirmation
// of the card itself happens client-side against the provider; the wizard
// only learns the outcome via ConfirmPayment.
type PaymentHandler interface {
	CreateIntent(ctx context.Context, amountPence int64, draft models.BookingDraft) (*models.PaymentIntentResult, error)
}

// StripePaymentHandler backs PaymentHandler with Stripe payment intents.
type StripePaymentHandler struct {
	logger *zap.Logger
}

func NewStripePaymentHandler(logger *zap.Logger) *StripePaymentHandler {
	return &StripePaymentHandler{logger: logger}
}

// CreateIntent creates a gbp PaymentIntent carrying the booking details as
// metadata, so the webhook can reconstruct the booking record later.
func (h *StripePaymentHandler) CreateIntent(ctx context.Context, amountPence int64, draft models.BookingDraft) (*models.PaymentIntentResult, error) {
	if draft.Service == nil {
		return nil, ErrNoService
	}

	params := &stripe.PaymentIntentParams{
		Amount:       stripe.Int64(amountPence),
		Currency:     stripe.String(string(stripe.CurrencyGBP)),
		ReceiptEmail: stripe.String(draft.CustomerDetails.Email),
		Description:  stripe.String(fmt.Sprintf("1clickclearance - %s Booking", draft.Service.Name)),
	}
	params.Context = ctx
	params.AddMetadata("service_name", draft.Service.Name)
	params.AddMetadata("service_price", fmt.Sprintf("%d", draft.Service.Price))
	params.AddMetadata("customer_name", draft.CustomerDetails.Name)
	params.AddMetadata("customer_email", draft.CustomerDetails.Email)
	params.AddMetadata("customer_phone", draft.CustomerDetails.Phone)
	params.AddMetadata("booking_date", draft.Date)
	params.AddMetadata("collection_address", draft.CustomerDetails.Address)
	params.AddMetadata("postcode", draft.CustomerDetails.Postcode)
	params.AddMetadata("special_instructions", draft.CustomerDetails.SpecialInstructions)
	params.AddMetadata("booking_timestamp", time.Now().UTC().Format(time.RFC3339))

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	h.logger.Info("payment intent created",
		zap.String("paymentIntentId", intent.ID),
		zap.Int64("amountPence", amountPence),
	)

	return &models.PaymentIntentResult{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
	}, nil
}
