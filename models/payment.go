package models

// PaymentIntentResult is what the payment collaborator returns when an
// intent is created. The client secret is relayed to the caller so the card
// confirmation can happen against the provider directly.
type PaymentIntentResult struct {
	ClientSecret    string `json:"client_secret"`
	PaymentIntentID string `json:"payment_intent_id"`
}

// PaymentResult reports the outcome of a client-side card confirmation back
// to the wizard.
type PaymentResult struct {
	PaymentIntentID string `json:"paymentIntentId"`
	Succeeded       bool   `json:"succeeded"`
	Error           string `json:"error,omitempty"`
}
