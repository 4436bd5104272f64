package booking

import (
	"strings"
	"time"
)

// Passenger is an immutable value object describing one traveller. It is
// built fresh from submitted form data at submission time and discarded
// after serialization.
type Passenger struct {
	Title          string
	FirstName      string
	LastName       string
	DateOfBirth    string
	Gender         string
	Nationality    string
	PassportNumber string
	PassportExpiry string
}

// NewPassenger builds a Passenger from raw field values, trimming whitespace
// once at the boundary. Passport fields are optional.
func NewPassenger(title, firstName, lastName, dateOfBirth, gender, nationality, passportNumber, passportExpiry string) Passenger {
	return Passenger{
		Title:          strings.TrimSpace(title),
		FirstName:      strings.TrimSpace(firstName),
		LastName:       strings.TrimSpace(lastName),
		DateOfBirth:    strings.TrimSpace(dateOfBirth),
		Gender:         strings.TrimSpace(gender),
		Nationality:    strings.TrimSpace(nationality),
		PassportNumber: strings.TrimSpace(passportNumber),
		PassportExpiry: strings.TrimSpace(passportExpiry),
	}
}

// Validate checks that every required field is present and, when a passport
// expiry was supplied, that it clears the six-month validity window.
// All checks run; messages keep field order.
func (p Passenger) Validate(today time.Time) ValidationResult {
	var errs []string
	if p.Title == "" {
		errs = append(errs, "Title is required")
	}
	if p.FirstName == "" {
		errs = append(errs, "First name is required")
	}
	if p.LastName == "" {
		errs = append(errs, "Last name is required")
	}
	if p.DateOfBirth == "" {
		errs = append(errs, "Date of birth is required")
	}
	if p.Gender == "" {
		errs = append(errs, "Gender is required")
	}
	if p.Nationality == "" {
		errs = append(errs, "Nationality is required")
	}
	if p.PassportExpiry != "" {
		if ok, msg := ValidatePassportExpiry(p.PassportExpiry, today); !ok {
			errs = append(errs, msg)
		}
	}
	return newValidationResult(errs)
}

// SubmissionPassenger is the external representation of a Passenger. The
// snake_case field names are the submission boundary contract.
type SubmissionPassenger struct {
	Title          string `json:"title"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	DateOfBirth    string `json:"date_of_birth"`
	Gender         string `json:"gender"`
	Nationality    string `json:"nationality"`
	PassportNumber string `json:"passport_number"`
	PassportExpiry string `json:"passport_expiry"`
}

// ToSubmission converts the passenger to its submission format.
func (p Passenger) ToSubmission() SubmissionPassenger {
	return SubmissionPassenger{
		Title:          p.Title,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		DateOfBirth:    p.DateOfBirth,
		Gender:         p.Gender,
		Nationality:    p.Nationality,
		PassportNumber: p.PassportNumber,
		PassportExpiry: p.PassportExpiry,
	}
}
