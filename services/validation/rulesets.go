package validation

// ContactFormRules validates the contact page form.
func ContactFormRules() RuleSet {
	return RuleSet{
		"name": {
			Required("Please enter your full name"),
			Name(""),
		},
		"email": {
			Required("Please enter your email address"),
			Email(""),
		},
		"phone": {
			Phone("Please enter a valid UK phone number (optional)"),
		},
		"subject": {
			Required("Please select a subject"),
		},
		"message": {
			Required("Please enter your message"),
			MinLength(10, "Message must be at least 10 characters"),
			MaxLength(1000, "Message must be no more than 1000 characters"),
		},
	}
}

// QuoteFormRules validates the manual quote request form, including the
// nested contact block.
func QuoteFormRules() RuleSet {
	return RuleSet{
		"serviceType": {
			Required("Please select a service type"),
		},
		"wasteType": {
			Required("Please select a waste type"),
		},
		"volumeEstimate": {
			Required("Please select an estimated volume"),
		},
		"location": {
			Required("Please enter your location"),
			MinLength(3, "Location must be at least 3 characters"),
		},
		"accessibility": {
			Required("Please select accessibility level"),
		},
		"urgency": {
			Required("Please select urgency level"),
		},
		"contactInfo.name": {
			Required("Please enter your full name"),
			Name(""),
		},
		"contactInfo.email": {
			Required("Please enter your email address"),
			Email(""),
		},
		"contactInfo.phone": {
			Required("Please enter your phone number"),
			Phone(""),
		},
		"contactInfo.address": {
			Required("Please enter your full address"),
			MinLength(10, "Address must be at least 10 characters"),
		},
	}
}

// BookingDetailsRules validates the wizard's customer-details step. The
// postcode coverage gate is applied separately by the booking service.
func BookingDetailsRules() RuleSet {
	return RuleSet{
		"name": {
			Required("Please enter your full name"),
			Name(""),
		},
		"email": {
			Required("Please enter your email address"),
			Email(""),
		},
		"phone": {
			Required("Please enter your phone number"),
			Phone(""),
		},
		"address": {
			Required("Please enter your collection address"),
		},
		"postcode": {
			Required("Please enter your postcode"),
		},
	}
}
