package booking

import (
	"regexp"
	"strings"
	"time"
)

// ValidationResult is the outcome of validating an entity: a flag plus the
// ordered list of human-readable messages that produced it.
type ValidationResult struct {
	IsValid bool
	Errors  []string
}

func newValidationResult(errs []string) ValidationResult {
	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

var (
	emailPattern  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern  = regexp.MustCompile(`^[\d\-()+]{10,}$`)
	cardPattern   = regexp.MustCompile(`^\d{13,19}$`)
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2})$`)
	cvvPattern    = regexp.MustCompile(`^\d{3,4}$`)
)

// IsValidEmail reports whether email has a local@domain.tld shape.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidPhone reports whether phone, after stripping whitespace, is at least
// ten characters drawn from digits, dashes, parentheses and plus signs.
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(stripWhitespace(phone))
}

// IsValidCardNumber reports whether number, after stripping whitespace,
// is a 13-19 digit string.
func IsValidCardNumber(number string) bool {
	return cardPattern.MatchString(stripWhitespace(number))
}

// IsValidExpiry reports whether expiry is MM/YY with a month of 01-12 and
// the card still valid: the end of the expiry month must be strictly after now.
func IsValidExpiry(expiry string, now time.Time) bool {
	m := expiryPattern.FindStringSubmatch(expiry)
	if m == nil {
		return false
	}
	month := int(m[1][0]-'0')*10 + int(m[1][1]-'0')
	year := 2000 + int(m[2][0]-'0')*10 + int(m[2][1]-'0')

	// First instant after the expiry month; the card is valid through the
	// whole month printed on it.
	endOfMonth := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)
	return now.Before(endOfMonth)
}

// IsValidCVV reports whether cvv is a 3 or 4 digit string.
func IsValidCVV(cvv string) bool {
	return cvvPattern.MatchString(cvv)
}

// ValidatePassportExpiry checks a YYYY-MM-DD passport expiry date against
// today. A passport expiring on or before today+6 months fails: most
// destinations require six months of remaining validity, and the boundary
// day itself is rejected.
func ValidatePassportExpiry(expiry string, today time.Time) (bool, string) {
	parsed, err := time.Parse("2006-01-02", strings.TrimSpace(expiry))
	if err != nil {
		return false, "Please enter a valid passport expiry date"
	}

	day := truncateToDay(today)
	expiryDay := truncateToDay(parsed)
	sixMonthsOut := day.AddDate(0, 6, 0)

	if expiryDay.Before(day) {
		return false, "Passport has expired. Please check the expiry date."
	}
	if !expiryDay.After(sixMonthsOut) {
		return false, "Passport expires within 6 months. Many countries require 6 months validity."
	}
	return true, ""
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func stripWhitespace(s string) string {
	return strings.Join(strings.Fields(s), "")
}
