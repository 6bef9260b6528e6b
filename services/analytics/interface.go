// Package analytics records funnel events. Tracking is strictly
// best-effort: events flow through a bounded queue to an external beacon
// endpoint, failures are dropped, and no error ever reaches a caller.
package analytics

import "clearbook/models"

// Publisher hands an event off for delivery. Implementations must be
// fire-and-forget: swallow failures, log at most.
type Publisher interface {
	Publish(event models.AnalyticsEvent)
}

// Emitter is the tracking API the rest of the server uses.
type Emitter interface {
	Track(event models.AnalyticsEvent)

	TrackFormStart(formType string, formData map[string]any)
	TrackFormProgress(formType string, step int, totalSteps int)
	TrackFormValidationError(formType, field, errorType string)
	TrackFormSubmit(formType string, formData map[string]any)
	TrackFormSuccess(formType string, responseData map[string]any)
	TrackFormError(formType, errMsg string)

	TrackQuoteStart(quoteData map[string]any)
	TrackQuoteCalculation(quoteData map[string]any, estimatedPrice int)
	TrackQuoteConversion(quoteData map[string]any, finalPrice int)

	TrackCalculatorInteraction(action string, itemData map[string]any)
	TrackCalculatorConversion(selectedItems map[string]int, totalPrice int)

	TrackPageView(page string, additionalData map[string]any)
	TrackCTAClick(ctaType, location, destination string)
}
