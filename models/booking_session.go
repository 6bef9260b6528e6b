package models

// Wizard step identifiers. The flow is strictly linear; see services/booking.
const (
	StepServiceSelection = 1
	StepCustomerDetails  = 2
	StepPayment          = 3
	StepScheduling       = 4
	StepConfirmation     = 5
)

// PricingSelection is the typed handoff from the pricing calculator into the
// wizard. Exactly one of the two modes is populated.
type PricingSelection struct {
	PricingType     string         `json:"pricingType"` // "volume" or "items"
	SelectedService *ServiceOption `json:"selectedService,omitempty"`
	SelectedItems   map[string]int `json:"selectedItems,omitempty"` // key "<name>_<price>" -> quantity
	CalculatedPrice int            `json:"calculatedPrice"`
}

// BookingSession is the server-side wizard state, stored in Redis under the
// session ID for the lifetime of one booking attempt.
type BookingSession struct {
	SessionID string            `json:"sessionId"`
	Step      int               `json:"step"`
	Draft     BookingDraft      `json:"draft"`
	Prefilled *PricingSelection `json:"prefilledData,omitempty"`

	// Payment state. PaymentError holds the provider message from the most
	// recent failed attempt; it is cleared on success.
	PaymentIntentID string `json:"paymentIntentId,omitempty"`
	AmountPaid      int    `json:"amountPaid,omitempty"`
	PaymentError    string `json:"paymentError,omitempty"`
}
