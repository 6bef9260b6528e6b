package analytics

import (
	"sync"
	"time"

	"clearbook/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultEmitter maps domain actions to structured events and publishes
// them. The session identifier is created lazily and reused for the
// emitter's lifetime, correlating one server session's funnel.
type DefaultEmitter struct {
	publisher Publisher
	logger    *zap.Logger

	once      sync.Once
	sessionID string
}

func NewEmitter(publisher Publisher, logger *zap.Logger) *DefaultEmitter {
	return &DefaultEmitter{publisher: publisher, logger: logger}
}

// Track publishes a single event. It never fails; a missing publisher just
// drops the event.
func (e *DefaultEmitter) Track(event models.AnalyticsEvent) {
	if e.publisher == nil {
		return
	}
	event.Timestamp = time.Now()
	event.SessionID = e.getSessionID()
	e.publisher.Publish(event)
}

func (e *DefaultEmitter) getSessionID() string {
	e.once.Do(func() {
		e.sessionID = uuid.New().String()
	})
	return e.sessionID
}

func intPtr(v int) *int { return &v }

func (e *DefaultEmitter) TrackFormStart(formType string, formData map[string]any) {
	custom := map[string]any{"form_type": formType}
	for k, v := range formData {
		custom[k] = v
	}
	e.Track(models.AnalyticsEvent{
		Event:      "form_start",
		Category:   "forms",
		Action:     "start",
		Label:      formType,
		CustomData: custom,
	})
}

func (e *DefaultEmitter) TrackFormProgress(formType string, step int, totalSteps int) {
	custom := map[string]any{
		"form_type":    formType,
		"current_step": step,
		"total_steps":  totalSteps,
	}
	if totalSteps > 0 {
		custom["completion_rate"] = float64(step) / float64(totalSteps)
	}
	e.Track(models.AnalyticsEvent{
		Event:      "form_progress",
		Category:   "forms",
		Action:     "progress",
		Label:      formType,
		Value:      intPtr(step),
		CustomData: custom,
	})
}

func (e *DefaultEmitter) TrackFormValidationError(formType, field, errorType string) {
	e.Track(models.AnalyticsEvent{
		Event:    "form_validation_error",
		Category: "forms",
		Action:   "validation_error",
		Label:    formType,
		CustomData: map[string]any{
			"form_type":  formType,
			"field":      field,
			"error_type": errorType,
		},
	})
}

func (e *DefaultEmitter) TrackFormSubmit(formType string, formData map[string]any) {
	e.Track(models.AnalyticsEvent{
		Event:    "form_submit",
		Category: "forms",
		Action:   "submit",
		Label:    formType,
		CustomData: map[string]any{
			"form_type": formType,
			"form_data": SanitizeFormData(formData),
		},
	})
}

func (e *DefaultEmitter) TrackFormSuccess(formType string, responseData map[string]any) {
	custom := map[string]any{"form_type": formType}
	for k, v := range responseData {
		custom[k] = v
	}
	e.Track(models.AnalyticsEvent{
		Event:      "form_success",
		Category:   "conversions",
		Action:     "submit_success",
		Label:      formType,
		Value:      intPtr(1),
		CustomData: custom,
	})
}

func (e *DefaultEmitter) TrackFormError(formType, errMsg string) {
	e.Track(models.AnalyticsEvent{
		Event:    "form_error",
		Category: "forms",
		Action:   "submit_error",
		Label:    formType,
		CustomData: map[string]any{
			"form_type": formType,
			"error":     errMsg,
		},
	})
}

func (e *DefaultEmitter) TrackQuoteStart(quoteData map[string]any) {
	custom := map[string]any{"service_type": quoteData["serviceType"]}
	for k, v := range quoteData {
		custom[k] = v
	}
	e.Track(models.AnalyticsEvent{
		Event:      "quote_start",
		Category:   "quotes",
		Action:     "start",
		Label:      "quote_calculator",
		CustomData: custom,
	})
}

func (e *DefaultEmitter) TrackQuoteCalculation(quoteData map[string]any, estimatedPrice int) {
	custom := map[string]any{"estimated_price": estimatedPrice}
	for k, v := range quoteData {
		custom[k] = v
	}
	e.Track(models.AnalyticsEvent{
		Event:      "quote_calculation",
		Category:   "quotes",
		Action:     "calculate",
		Label:      "quote_calculator",
		Value:      intPtr(estimatedPrice),
		CustomData: custom,
	})
}

func (e *DefaultEmitter) TrackQuoteConversion(quoteData map[string]any, finalPrice int) {
	custom := map[string]any{
		"final_price":      finalPrice,
		"conversion_value": finalPrice,
	}
	for k, v := range quoteData {
		custom[k] = v
	}
	e.Track(models.AnalyticsEvent{
		Event:      "quote_conversion",
		Category:   "conversions",
		Action:     "quote_to_booking",
		Label:      "quote_calculator",
		Value:      intPtr(finalPrice),
		CustomData: custom,
	})
}

func (e *DefaultEmitter) TrackCalculatorInteraction(action string, itemData map[string]any) {
	e.Track(models.AnalyticsEvent{
		Event:      "calculator_interaction",
		Category:   "calculator",
		Action:     action,
		Label:      "item_calculator",
		CustomData: itemData,
	})
}

func (e *DefaultEmitter) TrackCalculatorConversion(selectedItems map[string]int, totalPrice int) {
	itemCount := 0
	for _, qty := range selectedItems {
		itemCount += qty
	}
	e.Track(models.AnalyticsEvent{
		Event:    "calculator_conversion",
		Category: "conversions",
		Action:   "calculator_to_booking",
		Label:    "item_calculator",
		Value:    intPtr(totalPrice),
		CustomData: map[string]any{
			"selected_items": selectedItems,
			"total_price":    totalPrice,
			"item_count":     itemCount,
		},
	})
}

func (e *DefaultEmitter) TrackPageView(page string, additionalData map[string]any) {
	custom := map[string]any{"page": page}
	for k, v := range additionalData {
		custom[k] = v
	}
	e.Track(models.AnalyticsEvent{
		Event:      "page_view",
		Category:   "navigation",
		Action:     "view",
		Label:      page,
		CustomData: custom,
	})
}

func (e *DefaultEmitter) TrackCTAClick(ctaType, location, destination string) {
	e.Track(models.AnalyticsEvent{
		Event:    "cta_click",
		Category: "engagement",
		Action:   "click",
		Label:    ctaType,
		CustomData: map[string]any{
			"cta_type":    ctaType,
			"location":    location,
			"destination": destination,
		},
	})
}
