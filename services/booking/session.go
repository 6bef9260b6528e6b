package booking

import (
	"context"
	"fmt"
	"time"

	"clearbook/models"
	"clearbook/services/coverage"
	"clearbook/services/pricing"
	"clearbook/services/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const totalSteps = 5

// StartSession creates a new wizard session. A valid pricing handoff
// pre-fills the service and skips service selection, mirroring the
// calculator-to-booking flow; otherwise the wizard starts at step 1.
func (s *DefaultWizardService) StartSession(ctx context.Context, handoff *models.PricingSelection) (*models.BookingSession, error) {
	session := &models.BookingSession{
		SessionID: uuid.New().String(),
		Step:      models.StepServiceSelection,
	}

	if handoff != nil {
		if svc, ok := pricing.ServiceFromSelection(*handoff); ok {
			session.Draft.Service = &svc
			session.Prefilled = handoff
			session.Step = models.StepCustomerDetails
		}
	}

	if err := s.Store.SaveSession(ctx, session, s.SessionTTL); err != nil {
		return nil, err
	}

	s.Analytics.TrackFormStart("booking_flow", nil)
	return session, nil
}

// GetSession fetches the live session for a wizard client.
func (s *DefaultWizardService) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.Store.GetSession(ctx, sessionID)
}

// SelectService records the chosen volume tier and advances to step 2.
func (s *DefaultWizardService) SelectService(ctx context.Context, sessionID, serviceID string) (*models.BookingSession, error) {
	session, err := s.Store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepServiceSelection {
		return nil, fmt.Errorf("%w: select service at step %d", ErrWrongStep, session.Step)
	}

	svc, ok := pricing.ServiceByID(serviceID)
	if !ok {
		return nil, fmt.Errorf("unknown service: %s", serviceID)
	}

	session.Draft.Service = &svc
	session.Step = models.StepCustomerDetails

	if err := s.Store.SaveSession(ctx, session, s.SessionTTL); err != nil {
		return nil, err
	}

	s.Analytics.TrackFormProgress("booking_flow", session.Step, totalSteps)
	return session, nil
}

// SubmitDetails validates the customer details and applies the postcode
// coverage gate. Validation or coverage failures leave the session on step
// 2 with previously entered data intact.
func (s *DefaultWizardService) SubmitDetails(ctx context.Context, sessionID string, details models.CustomerDetails) (*models.BookingSession, error) {
	session, err := s.Store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepCustomerDetails {
		return nil, fmt.Errorf("%w: submit details at step %d", ErrWrongStep, session.Step)
	}
	if session.Draft.Service == nil {
		return nil, ErrNoService
	}

	// Entered data is kept on the draft regardless of the outcome, so a
	// failed gate never discards user input.
	session.Draft.CustomerDetails = details

	result := validation.ValidateForm(map[string]any{
		"name":     details.Name,
		"email":    details.Email,
		"phone":    details.Phone,
		"address":  details.Address,
		"postcode": details.Postcode,
	}, validation.BookingDetailsRules())
	if !result.IsValid {
		if err := s.Store.SaveSession(ctx, session, s.SessionTTL); err != nil {
			return nil, err
		}
		for field := range result.Errors {
			s.Analytics.TrackFormValidationError("booking_flow", field, "invalid")
		}
		return nil, &DetailsValidationError{Errors: result.Errors}
	}

	verdict := coverage.ValidatePostcode(details.Postcode)
	if !verdict.IsValid {
		if err := s.Store.SaveSession(ctx, session, s.SessionTTL); err != nil {
			return nil, err
		}
		s.Analytics.TrackFormValidationError("booking_flow", "postcode", "out_of_coverage")
		return nil, &OutOfCoverageError{Result: verdict}
	}

	session.Step = models.StepPayment

	if err := s.Store.SaveSession(ctx, session, s.SessionTTL); err != nil {
		return nil, err
	}

	s.Analytics.TrackFormProgress("booking_flow", session.Step, totalSteps)
	return session, nil
}

// CreatePaymentIntent asks the payment collaborator for an intent covering
// the draft's price. The session is not mutated; a failed call changes
// nothing.
func (s *DefaultWizardService) CreatePaymentIntent(ctx context.Context, sessionID string) (*models.PaymentIntentResult, error) {
	session, err := s.Store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepPayment {
		return nil, fmt.Errorf("%w: create payment intent at step %d", ErrWrongStep, session.Step)
	}
	if session.Draft.Service == nil {
		return nil, ErrNoService
	}

	s.Analytics.TrackFormSubmit("payment_form", map[string]any{
		"name":  session.Draft.CustomerDetails.Name,
		"email": session.Draft.CustomerDetails.Email,
		"phone": session.Draft.CustomerDetails.Phone,
	})

	// Catalog prices are whole pounds; the provider wants pence.
	amountPence := int64(session.Draft.Service.Price) * 100
	return s.Payments.CreateIntent(ctx, amountPence, session.Draft)
}

// ConfirmPayment records the outcome of the client-side card confirmation.
// Success advances to scheduling; failure keeps the session on the payment
// step with the provider message recorded for display, and the caller may
// retry.
func (s *DefaultWizardService) ConfirmPayment(ctx context.Context, sessionID string, result models.PaymentResult) (*models.BookingSession, error) {
	session, err := s.Store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepPayment {
		return nil, fmt.Errorf("%w: confirm payment at step %d", ErrWrongStep, session.Step)
	}

	if !result.Succeeded {
		session.PaymentError = result.Error
		if err := s.Store.SaveSession(ctx, session, s.SessionTTL); err != nil {
			return nil, err
		}
		s.Analytics.TrackFormError("payment_form", result.Error)
		return session, &PaymentFailedError{Message: result.Error}
	}

	session.PaymentIntentID = result.PaymentIntentID
	session.AmountPaid = session.Draft.Service.Price
	session.PaymentError = ""
	session.Step = models.StepScheduling

	if err := s.Store.SaveSession(ctx, session, s.SessionTTL); err != nil {
		return nil, err
	}

	s.Analytics.TrackCTAClick("payment_completed", "payment_success", "/booking-scheduling")
	return session, nil
}

// CompleteScheduling is the manual acknowledgement that a time was picked
// in the external calendar. It writes the completed-booking snapshot under
// its short-lived key and clears the pending session: the handoff is
// write-once here and read-once on the confirmation view.
func (s *DefaultWizardService) CompleteScheduling(ctx context.Context, sessionID string) (*models.CompletedBooking, error) {
	session, err := s.Store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepScheduling {
		return nil, fmt.Errorf("%w: complete scheduling at step %d", ErrWrongStep, session.Step)
	}

	record := &models.CompletedBooking{
		Service:         session.Draft.Service,
		CustomerDetails: session.Draft.CustomerDetails,
		Prefilled:       session.Prefilled,
		PaymentIntentID: session.PaymentIntentID,
		AmountPaid:      session.AmountPaid,
		CompletedAt:     time.Now(),
	}

	if err := s.Store.SaveCompleted(ctx, sessionID, record, CompletedBookingTTL); err != nil {
		return nil, err
	}
	if err := s.Store.DeleteSession(ctx, sessionID); err != nil {
		s.Logger.Warn("failed to clear pending session after completion",
			zap.String("sessionId", sessionID), zap.Error(err))
	}

	s.Analytics.TrackFormSuccess("booking_flow", map[string]any{
		"amount_paid": record.AmountPaid,
	})
	return record, nil
}

// GetCompletedBooking reads the confirmation snapshot.
func (s *DefaultWizardService) GetCompletedBooking(ctx context.Context, sessionID string) (*models.CompletedBooking, error) {
	return s.Store.GetCompleted(ctx, sessionID)
}

// Back moves one step backwards from steps 2-4 without clearing any
// entered data.
func (s *DefaultWizardService) Back(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session, err := s.Store.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step <= models.StepServiceSelection || session.Step >= models.StepConfirmation {
		return nil, fmt.Errorf("%w: back at step %d", ErrWrongStep, session.Step)
	}

	session.Step--
	if err := s.Store.SaveSession(ctx, session, s.SessionTTL); err != nil {
		return nil, err
	}
	return session, nil
}

// ResetSession clears the draft and returns the wizard to step 1 ("book
// another service").
func (s *DefaultWizardService) ResetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	session := &models.BookingSession{
		SessionID: sessionID,
		Step:      models.StepServiceSelection,
	}
	if err := s.Store.SaveSession(ctx, session, s.SessionTTL); err != nil {
		return nil, err
	}
	return session, nil
}

// CancelSession discards the pending session entirely.
func (s *DefaultWizardService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Store.DeleteSession(ctx, sessionID)
}
