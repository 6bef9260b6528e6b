// Package coverage decides whether a postcode is inside the instant-booking
// service area. Matching is by outward-code prefix against a static list;
// it never calls out anywhere.
package coverage

import "strings"

// CoverageAreas lists the postcode prefixes covered for instant online
// bookings (roughly a 20-mile radius around the depot).
var CoverageAreas = []string{
	// Cambridge and surrounding areas
	"CB1", "CB2", "CB3", "CB4", "CB5", "CB6", "CB7", "CB8", "CB9",
	"CB10", "CB11", "CB21", "CB22", "CB23", "CB24", "CB25",

	// Essex areas
	"CO10", "CO9", "CM7", "CM6", "CM22", "CM23",

	// Suffolk areas
	"IP28", "IP29", "IP32", "IP33",

	// Hertfordshire areas
	"SG8", "SG9",
}

// Result is the verdict for one postcode check.
type Result struct {
	IsValid bool   `json:"isValid"`
	Message string `json:"message"`
	Type    string `json:"type"` // "success", "error" or "info"
	Area    string `json:"area,omitempty"`
}

const outOfAreaMessage = "Unfortunately you are currently out of the area we can provide immediate online bookings for. " +
	"Please use our quote form to tell us what you need and where you are located and we will do our best to help."

// ValidatePostcode checks a free-text postcode against the coverage list.
// A miss is reported as type "info" rather than "error": the input may be a
// perfectly valid postcode that we simply do not serve online.
func ValidatePostcode(postcode string) Result {
	clean := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(postcode)), " ", "")

	if len(clean) < 2 {
		return Result{
			IsValid: false,
			Message: "Please enter a valid postcode",
			Type:    "error",
		}
	}

	prefixes := []string{prefix(clean, 2), prefix(clean, 3), prefix(clean, 4)}

	inCoverage := false
	for _, p := range prefixes {
		for _, area := range CoverageAreas {
			if p == area {
				inCoverage = true
				break
			}
		}
	}

	if !inCoverage {
		return Result{
			IsValid: false,
			Message: outOfAreaMessage,
			Type:    "info",
		}
	}

	// Area label is first-match by declared region order, not most-specific.
	area := "our service area"
	switch {
	case strings.HasPrefix(clean, "CB"):
		area = "Cambridge area"
	case strings.HasPrefix(clean, "CO") || strings.HasPrefix(clean, "CM"):
		area = "Essex area"
	case strings.HasPrefix(clean, "IP"):
		area = "Suffolk area"
	case strings.HasPrefix(clean, "SG"):
		area = "Hertfordshire area"
	}

	return Result{
		IsValid: true,
		Message: "Great! We provide instant online bookings in the " + area + ".",
		Type:    "success",
		Area:    area,
	}
}

// InCoverage is a boolean shortcut over ValidatePostcode.
func InCoverage(postcode string) bool {
	return ValidatePostcode(postcode).IsValid
}

// AreaName returns the coverage area label for a postcode, or "Unknown".
func AreaName(postcode string) string {
	res := ValidatePostcode(postcode)
	if res.Area == "" {
		return "Unknown"
	}
	return res.Area
}

func prefix(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}
