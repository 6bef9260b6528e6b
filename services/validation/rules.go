// Package validation implements the declarative form validation engine:
// tagged-variant rules evaluated per field, plus a stateful per-form wrapper
// with touched-field semantics.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// RuleKind discriminates the rule variants.
type RuleKind int

const (
	KindRequired RuleKind = iota
	KindMinLength
	KindMaxLength
	KindPattern
	KindCustom
)

// Rule is one validation constraint on a field. Exactly the fields relevant
// to its Kind are set; Message overrides the generic default when non-empty.
type Rule struct {
	Kind    RuleKind
	Length  int
	Pattern *regexp.Regexp
	Check   func(value any) bool
	Message string
}

// RuleSet maps field names (dotted paths allowed) to their ordered rules.
type RuleSet map[string][]Rule

// Errors maps field names to their collected error messages.
type Errors map[string][]string

// Result aggregates a full-form validation pass.
type Result struct {
	IsValid bool   `json:"isValid"`
	Errors  Errors `json:"errors"`
}

// Shared validation patterns.
var (
	EmailPattern        = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	PhonePattern        = regexp.MustCompile(`^(\+44\s?|0)[1-9]\d{8,9}$`)
	PostcodePattern     = regexp.MustCompile(`(?i)^[A-Z]{1,2}\d[A-Z\d]?\s?\d[A-Z]{2}$`)
	NamePattern         = regexp.MustCompile(`^[a-zA-Z\s'-]{2,50}$`)
	AlphanumericPattern = regexp.MustCompile(`^[a-zA-Z0-9\s]+$`)
)

// Rule constructors.

func Required(message string) Rule {
	if message == "" {
		message = "This field is required"
	}
	return Rule{Kind: KindRequired, Message: message}
}

func MinLength(length int, message string) Rule {
	if message == "" {
		message = fmt.Sprintf("Must be at least %d characters", length)
	}
	return Rule{Kind: KindMinLength, Length: length, Message: message}
}

func MaxLength(length int, message string) Rule {
	if message == "" {
		message = fmt.Sprintf("Must be no more than %d characters", length)
	}
	return Rule{Kind: KindMaxLength, Length: length, Message: message}
}

func Pattern(re *regexp.Regexp, message string) Rule {
	if message == "" {
		message = "Invalid format"
	}
	return Rule{Kind: KindPattern, Pattern: re, Message: message}
}

func Custom(check func(value any) bool, message string) Rule {
	if message == "" {
		message = "Invalid value"
	}
	return Rule{Kind: KindCustom, Check: check, Message: message}
}

// Common field rules with their default messages.

func Email(message string) Rule {
	if message == "" {
		message = "Please enter a valid email address"
	}
	return Pattern(EmailPattern, message)
}

func Phone(message string) Rule {
	if message == "" {
		message = "Please enter a valid UK phone number"
	}
	return Pattern(PhonePattern, message)
}

func Postcode(message string) Rule {
	if message == "" {
		message = "Please enter a valid UK postcode"
	}
	return Pattern(PostcodePattern, message)
}

func Name(message string) Rule {
	if message == "" {
		message = "Please enter a valid name (2-50 characters, letters only)"
	}
	return Pattern(NamePattern, message)
}

// ValidateField evaluates every rule against a single value. A failing
// required check on an empty value short-circuits the remaining rules; an
// empty value that is not required is valid outright. Non-empty values have
// all rules evaluated and every failure message collected.
func ValidateField(value any, rules []Rule) []string {
	var errs []string

	for _, rule := range rules {
		if isEmpty(value) {
			if rule.Kind == KindRequired {
				errs = append(errs, rule.Message)
			}
			continue
		}

		str := stringValue(value)

		switch rule.Kind {
		case KindRequired:
			// Non-empty value satisfies required.
		case KindMinLength:
			if len(str) < rule.Length {
				errs = append(errs, rule.Message)
			}
		case KindMaxLength:
			if len(str) > rule.Length {
				errs = append(errs, rule.Message)
			}
		case KindPattern:
			if rule.Pattern != nil && !rule.Pattern.MatchString(str) {
				errs = append(errs, rule.Message)
			}
		case KindCustom:
			if rule.Check != nil && !rule.Check(value) {
				errs = append(errs, rule.Message)
			}
		}
	}

	return errs
}

// ValidateForm validates every field declared in the rule set against data.
// Dotted field names resolve into nested maps.
func ValidateForm(data map[string]any, rules RuleSet) Result {
	errs := Errors{}
	valid := true

	for fieldName, fieldRules := range rules {
		value := GetPath(data, fieldName)
		fieldErrs := ValidateField(value, fieldRules)
		if len(fieldErrs) > 0 {
			errs[fieldName] = fieldErrs
			valid = false
		}
	}

	return Result{IsValid: valid, Errors: errs}
}

func isEmpty(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	return false
}

func stringValue(value any) string {
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}
	return fmt.Sprint(value)
}
