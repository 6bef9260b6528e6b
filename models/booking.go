package models

import "time"

// CustomerDetails holds the contact and collection-address fields
// collected at step 2 of the booking wizard.
type CustomerDetails struct {
	Name                string `json:"name"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	Address             string `json:"address"`
	Postcode            string `json:"postcode"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

// BookingDraft is the in-progress, session-owned record of one booking.
// It is mutated only by the wizard and discarded on completion or reset.
type BookingDraft struct {
	Service         *ServiceOption  `json:"service"`
	Date            string          `json:"date,omitempty"`     // "YYYY-MM-DD", set by the external calendar flow
	TimeSlot        string          `json:"timeSlot,omitempty"` // e.g. "10:00 - 12:00"
	CustomerDetails CustomerDetails `json:"customerDetails"`
}

// CompletedBooking is the post-payment snapshot written when scheduling is
// acknowledged. It lives under a short-TTL key and backs the confirmation view.
type CompletedBooking struct {
	Service         *ServiceOption    `json:"service"`
	CustomerDetails CustomerDetails   `json:"customerDetails"`
	Prefilled       *PricingSelection `json:"prefilledData,omitempty"`
	PaymentIntentID string            `json:"paymentIntentId"`
	AmountPaid      int               `json:"amountPaid"` // Whole pounds
	CompletedAt     time.Time         `json:"completedAt"`
}
