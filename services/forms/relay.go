// Package forms relays validated form submissions onward. The relay target
// is an external collaborator; this service validates, logs, and echoes a
// receipt the way that collaborator does.
package forms

import (
	"context"
	"time"

	"clearbook/services/validation"

	"go.uber.org/zap"
)

// SubmissionReceipt is echoed back to the submitter on success.
type SubmissionReceipt struct {
	Message     string    `json:"message"`
	FormName    string    `json:"formName"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// ValidationFailedError carries the field errors for a rejected submission.
type ValidationFailedError struct {
	Errors validation.Errors
}

func (e *ValidationFailedError) Error() string {
	return "form submission failed validation"
}

// RelayService accepts a named form payload and forwards it.
type RelayService interface {
	Submit(ctx context.Context, formName string, data map[string]any) (*SubmissionReceipt, error)
}

// DefaultRelayService validates known forms against their rule sets before
// relaying. Unknown form names are relayed as-is; the relay is a logging
// forward, matching the external handler it stands in for.
type DefaultRelayService struct {
	Logger *zap.Logger
}

func NewRelayService(logger *zap.Logger) *DefaultRelayService {
	return &DefaultRelayService{Logger: logger}
}

// ruleSetFor returns the rule set for a known form name.
func ruleSetFor(formName string) (validation.RuleSet, bool) {
	switch formName {
	case "contact":
		return validation.ContactFormRules(), true
	case "quote-request":
		return validation.QuoteFormRules(), true
	default:
		return nil, false
	}
}

func (s *DefaultRelayService) Submit(ctx context.Context, formName string, data map[string]any) (*SubmissionReceipt, error) {
	if rules, known := ruleSetFor(formName); known {
		result := validation.ValidateForm(data, rules)
		if !result.IsValid {
			return nil, &ValidationFailedError{Errors: result.Errors}
		}
	}

	s.Logger.Info("form submission received",
		zap.String("formName", formName),
		zap.Int("fields", len(data)),
	)

	return &SubmissionReceipt{
		Message:     "Form submission processed",
		FormName:    formName,
		SubmittedAt: time.Now(),
	}, nil
}
