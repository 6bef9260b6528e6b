package validation

import "testing"

func TestValidateFieldRequiredEmpty(t *testing.T) {
	rules := []Rule{
		Required("Please enter your message"),
		MinLength(10, "Message must be at least 10 characters"),
	}

	// Empty value: only the required message, min-length is skipped.
	errs := ValidateField("", rules)
	if len(errs) != 1 || errs[0] != "Please enter your message" {
		t.Fatalf("expected only the required message, got %v", errs)
	}

	// Whitespace counts as empty.
	errs = ValidateField("   ", rules)
	if len(errs) != 1 || errs[0] != "Please enter your message" {
		t.Fatalf("expected only the required message for whitespace, got %v", errs)
	}

	// Nil counts as empty.
	errs = ValidateField(nil, rules)
	if len(errs) != 1 {
		t.Fatalf("expected one error for nil, got %v", errs)
	}
}

func TestValidateFieldEmptyNotRequired(t *testing.T) {
	rules := []Rule{Phone("Please enter a valid UK phone number (optional)")}
	if errs := ValidateField("", rules); len(errs) != 0 {
		t.Fatalf("empty optional field should be valid, got %v", errs)
	}
}

func TestValidateFieldCollectsAllFailures(t *testing.T) {
	rules := []Rule{
		Required(""),
		MinLength(10, "too short"),
		Pattern(AlphanumericPattern, "not alphanumeric"),
	}
	errs := ValidateField("a!", rules)
	if len(errs) != 2 {
		t.Fatalf("expected both failures collected, got %v", errs)
	}
	if errs[0] != "too short" || errs[1] != "not alphanumeric" {
		t.Fatalf("unexpected error order: %v", errs)
	}
}

func TestValidateFieldTrimsBeforeLengthChecks(t *testing.T) {
	rules := []Rule{MinLength(5, "too short")}
	if errs := ValidateField("  abc  ", rules); len(errs) != 1 {
		t.Fatalf("padded short value should fail min length, got %v", errs)
	}
	if errs := ValidateField("  abcde  ", rules); len(errs) != 0 {
		t.Fatalf("trimmed value meets min length, got %v", errs)
	}
}

func TestValidateFieldCustomRule(t *testing.T) {
	even := Custom(func(v any) bool {
		n, ok := v.(int)
		return ok && n%2 == 0
	}, "must be even")

	if errs := ValidateField(3, []Rule{even}); len(errs) != 1 || errs[0] != "must be even" {
		t.Fatalf("odd value should fail, got %v", errs)
	}
	if errs := ValidateField(4, []Rule{even}); len(errs) != 0 {
		t.Fatalf("even value should pass, got %v", errs)
	}
}

func TestPhonePattern(t *testing.T) {
	valid := []string{"07911123456", "01223456789", "+447911123456", "+44 7911123456"}
	invalid := []string{"12345", "00123456789", "079111234", "0791112345678"}

	for _, v := range valid {
		if !PhonePattern.MatchString(v) {
			t.Errorf("phone %q should be valid", v)
		}
	}
	for _, v := range invalid {
		if PhonePattern.MatchString(v) {
			t.Errorf("phone %q should be invalid", v)
		}
	}
}

func TestValidateFormNestedPaths(t *testing.T) {
	data := map[string]any{
		"serviceType":    "residential",
		"wasteType":      "furniture",
		"volumeEstimate": "small",
		"location":       "Cambridge",
		"accessibility":  "easy",
		"urgency":        "this_week",
		"contactInfo": map[string]any{
			"name":    "Jane Smith",
			"email":   "jane@example.com",
			"phone":   "07911123456",
			"address": "12 Mill Road, Cambridge",
		},
	}

	result := ValidateForm(data, QuoteFormRules())
	if !result.IsValid {
		t.Fatalf("expected valid quote form, got errors: %v", result.Errors)
	}

	// Drop the nested email and the dotted path must report it.
	contact := data["contactInfo"].(map[string]any)
	contact["email"] = ""
	result = ValidateForm(data, QuoteFormRules())
	if result.IsValid {
		t.Fatal("expected invalid form with missing nested email")
	}
	if msgs := result.Errors["contactInfo.email"]; len(msgs) != 1 || msgs[0] != "Please enter your email address" {
		t.Fatalf("unexpected nested email errors: %v", msgs)
	}
}

func TestValidateFormContactMessageRules(t *testing.T) {
	data := map[string]any{
		"name":    "Jane Smith",
		"email":   "jane@example.com",
		"subject": "General",
		"message": "short",
	}
	result := ValidateForm(data, ContactFormRules())
	if result.IsValid {
		t.Fatal("expected invalid contact form")
	}
	if msgs := result.Errors["message"]; len(msgs) != 1 || msgs[0] != "Message must be at least 10 characters" {
		t.Fatalf("unexpected message errors: %v", msgs)
	}
	// Optional phone was absent and must not appear in the errors.
	if _, ok := result.Errors["phone"]; ok {
		t.Fatal("optional phone should not produce errors when absent")
	}
}
