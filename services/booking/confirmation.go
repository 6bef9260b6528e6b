package booking

import (
	"context"

	"clearbook/services/forms"

	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

// PaymentEventProcessor turns verified payment webhook events into booking
// records. Succeeded intents are logged and forwarded through the form
// relay; failed intents are logged only.
type PaymentEventProcessor struct {
	Logger *zap.Logger
	Relay  forms.RelayService
}

func NewPaymentEventProcessor(logger *zap.Logger, relay forms.RelayService) *PaymentEventProcessor {
	return &PaymentEventProcessor{Logger: logger, Relay: relay}
}

// HandleSucceeded derives a booking record from the intent metadata written
// at intent creation and forwards it.
func (p *PaymentEventProcessor) HandleSucceeded(ctx context.Context, intent *stripe.PaymentIntent) error {
	record := map[string]any{
		"payment_intent_id":    intent.ID,
		"amount_paid":          intent.Amount / 100, // pence to pounds
		"currency":             string(intent.Currency),
		"customer_email":       intent.ReceiptEmail,
		"service_name":         intent.Metadata["service_name"],
		"service_price":        intent.Metadata["service_price"],
		"customer_name":        intent.Metadata["customer_name"],
		"customer_phone":       intent.Metadata["customer_phone"],
		"booking_date":         intent.Metadata["booking_date"],
		"collection_address":   intent.Metadata["collection_address"],
		"postcode":             intent.Metadata["postcode"],
		"special_instructions": intent.Metadata["special_instructions"],
		"booking_timestamp":    intent.Metadata["booking_timestamp"],
		"payment_status":       "completed",
	}

	p.Logger.Info("payment succeeded",
		zap.String("paymentIntentId", intent.ID),
		zap.Int64("amount", intent.Amount),
		zap.String("serviceName", intent.Metadata["service_name"]),
	)

	if p.Relay != nil {
		if _, err := p.Relay.Submit(ctx, "booking_completed", record); err != nil {
			// Forwarding is best-effort; the payment is already captured.
			p.Logger.Warn("failed to forward booking record", zap.Error(err))
		}
	}
	return nil
}

// HandleFailed logs a failed payment attempt.
func (p *PaymentEventProcessor) HandleFailed(intent *stripe.PaymentIntent) {
	var lastError string
	if intent.LastPaymentError != nil {
		lastError = intent.LastPaymentError.Msg
	}
	p.Logger.Info("payment failed",
		zap.String("paymentIntentId", intent.ID),
		zap.String("lastPaymentError", lastError),
	)
}
