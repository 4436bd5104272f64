package booking

import "strings"

// Contact holds the booking-level contact details.
type Contact struct {
	Email string
	Phone string
}

// NewContact builds a Contact from raw field values, trimming once at the boundary.
func NewContact(email, phone string) Contact {
	return Contact{
		Email: strings.TrimSpace(email),
		Phone: strings.TrimSpace(phone),
	}
}

// Validate checks presence and shape of both fields.
func (c Contact) Validate() ValidationResult {
	var errs []string
	if c.Email == "" {
		errs = append(errs, "Email is required")
	} else if !IsValidEmail(c.Email) {
		errs = append(errs, "Valid email is required")
	}
	if c.Phone == "" {
		errs = append(errs, "Phone is required")
	} else if !IsValidPhone(c.Phone) {
		errs = append(errs, "Valid phone number is required")
	}
	return newValidationResult(errs)
}

// SubmissionContact is the external representation of a Contact.
type SubmissionContact struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// ToSubmission converts the contact to its submission format.
func (c Contact) ToSubmission() SubmissionContact {
	return SubmissionContact{Email: c.Email, PhoneNumber: c.Phone}
}
