package analytics

import (
	"testing"

	"clearbook/models"

	"go.uber.org/zap"
)

// capturePublisher records every published event.
type capturePublisher struct {
	events []models.AnalyticsEvent
}

func (p *capturePublisher) Publish(event models.AnalyticsEvent) {
	p.events = append(p.events, event)
}

func TestTrackStampsTimestampAndSession(t *testing.T) {
	pub := &capturePublisher{}
	e := NewEmitter(pub, zap.NewNop())

	e.Track(models.AnalyticsEvent{Event: "page_view"})
	e.Track(models.AnalyticsEvent{Event: "cta_click"})

	if len(pub.events) != 2 {
		t.Fatalf("published %d events, want 2", len(pub.events))
	}
	first, second := pub.events[0], pub.events[1]
	if first.Timestamp.IsZero() {
		t.Fatal("timestamp not stamped")
	}
	if first.SessionID == "" {
		t.Fatal("session ID not stamped")
	}
	if first.SessionID != second.SessionID {
		t.Fatal("session ID should be stable across events")
	}
}

func TestTrackWithNilPublisherDrops(t *testing.T) {
	e := NewEmitter(nil, zap.NewNop())
	// Must not panic.
	e.Track(models.AnalyticsEvent{Event: "page_view"})
	e.TrackFormStart("contact", nil)
}

func TestTrackFormProgressCompletionRate(t *testing.T) {
	pub := &capturePublisher{}
	e := NewEmitter(pub, zap.NewNop())

	e.TrackFormProgress("booking_flow", 3, 5)

	ev := pub.events[0]
	if ev.Event != "form_progress" || ev.Category != "forms" {
		t.Fatalf("unexpected event shape: %+v", ev)
	}
	if ev.Value == nil || *ev.Value != 3 {
		t.Fatalf("value = %v, want 3", ev.Value)
	}
	if rate := ev.CustomData["completion_rate"]; rate != 0.6 {
		t.Fatalf("completion_rate = %v, want 0.6", rate)
	}
}

func TestTrackFormSubmitSanitizesFormData(t *testing.T) {
	pub := &capturePublisher{}
	e := NewEmitter(pub, zap.NewNop())

	e.TrackFormSubmit("contact", map[string]any{
		"email":   "jane@example.com",
		"phone":   "07911123456",
		"name":    "Jane Smith",
		"address": "12 Mill Road",
		"subject": "General",
	})

	data := pub.events[0].CustomData["form_data"].(map[string]any)
	for _, raw := range []string{"email", "phone", "name", "address"} {
		if _, ok := data[raw]; ok {
			t.Errorf("raw %q should be stripped", raw)
		}
	}
	if data["email_domain"] != "example.com" {
		t.Errorf("email_domain = %v", data["email_domain"])
	}
	if data["phone_length"] != 11 {
		t.Errorf("phone_length = %v", data["phone_length"])
	}
	if data["name_length"] != 10 {
		t.Errorf("name_length = %v", data["name_length"])
	}
	if data["address_provided"] != true {
		t.Error("address_provided missing")
	}
	// Non-PII fields pass through untouched.
	if data["subject"] != "General" {
		t.Errorf("subject = %v", data["subject"])
	}
}

func TestTrackCalculatorConversionItemCount(t *testing.T) {
	pub := &capturePublisher{}
	e := NewEmitter(pub, zap.NewNop())

	e.TrackCalculatorConversion(map[string]int{"Bag of Junk_12": 3, "TV_22": 1}, 65)

	ev := pub.events[0]
	if ev.Category != "conversions" || ev.Action != "calculator_to_booking" {
		t.Fatalf("unexpected event shape: %+v", ev)
	}
	if ev.CustomData["item_count"] != 4 {
		t.Fatalf("item_count = %v, want 4", ev.CustomData["item_count"])
	}
	if ev.Value == nil || *ev.Value != 65 {
		t.Fatalf("value = %v, want 65", ev.Value)
	}
}

func TestSanitizeFormDataEmptyValuesUntouched(t *testing.T) {
	data := SanitizeFormData(map[string]any{"email": "", "message": "hello"})
	if _, ok := data["email_provided"]; ok {
		t.Error("empty email should not be marked provided")
	}
	if data["message"] != "hello" {
		t.Errorf("message = %v", data["message"])
	}
}
