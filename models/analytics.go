package models

import "time"

// AnalyticsEvent is a structured funnel event. Value is a pointer so that
// zero-valued events (step "start", for instance) are distinguishable from
// events that simply carry no value.
type AnalyticsEvent struct {
	Event      string         `json:"event"`
	Category   string         `json:"category"`
	Action     string         `json:"action"`
	Label      string         `json:"label,omitempty"`
	Value      *int           `json:"value,omitempty"`
	CustomData map[string]any `json:"custom_data,omitempty"`

	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"sessionId"`
}
