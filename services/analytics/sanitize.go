package analytics

import "strings"

// SanitizeFormData strips PII from form payloads before transmission,
// replacing raw values with presence/length metadata only.
func SanitizeFormData(formData map[string]any) map[string]any {
	sanitized := make(map[string]any, len(formData))
	for k, v := range formData {
		sanitized[k] = v
	}

	if email, ok := sanitized["email"].(string); ok && email != "" {
		sanitized["email_provided"] = true
		if parts := strings.SplitN(email, "@", 2); len(parts) == 2 {
			sanitized["email_domain"] = parts[1]
		}
		delete(sanitized, "email")
	}

	if phone, ok := sanitized["phone"].(string); ok && phone != "" {
		sanitized["phone_provided"] = true
		sanitized["phone_length"] = len(phone)
		delete(sanitized, "phone")
	}

	if name, ok := sanitized["name"].(string); ok && name != "" {
		sanitized["name_provided"] = true
		sanitized["name_length"] = len(name)
		delete(sanitized, "name")
	}

	if _, ok := sanitized["address"]; ok {
		sanitized["address_provided"] = true
		delete(sanitized, "address")
	}

	return sanitized
}
