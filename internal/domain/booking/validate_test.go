package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"kwame@example.com", true},
		{"a@b.co", true},
		{"first.last@sub.domain.org", true},
		{"", false},
		{"no-at-sign.com", false},
		{"user@nodot", false},
		{"user name@example.com", false},
		{"user@exam ple.com", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidEmail(tt.email), "email %q", tt.email)
	}
}

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"0244123456", true},
		{"+233 24 412 3456", true},
		{"(024) 412-3456", true},
		{"123456789", false},
		{"02441234ab", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidPhone(tt.phone), "phone %q", tt.phone)
	}
}

func TestIsValidCardNumber(t *testing.T) {
	tests := []struct {
		number string
		want   bool
	}{
		{"4111111111111111", true},
		{"4111 1111 1111 1111", true},
		{"1234567890123", true},
		{"1234567890123456789", true},
		{"123456789012", false},
		{"12345678901234567890", false},
		{"4111-1111-1111-1111", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidCardNumber(tt.number), "card %q", tt.number)
	}
}

func TestIsValidExpiry(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		expiry string
		want   bool
	}{
		{"future year", "01/28", true},
		{"current month still valid", "08/26", true},
		{"next month", "09/26", true},
		{"last month expired", "07/26", false},
		{"past year", "12/25", false},
		{"month zero", "00/28", false},
		{"month thirteen", "13/28", false},
		{"four digit year", "01/2028", false},
		{"missing slash", "0128", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidExpiry(tt.expiry, now))
		})
	}
}

func TestIsValidCVV(t *testing.T) {
	assert.True(t, IsValidCVV("123"))
	assert.True(t, IsValidCVV("1234"))
	assert.False(t, IsValidCVV("12"))
	assert.False(t, IsValidCVV("12345"))
	assert.False(t, IsValidCVV("12a"))
}

func TestValidatePassportExpiry(t *testing.T) {
	today := time.Date(2026, time.August, 15, 23, 59, 0, 0, time.UTC)

	tests := []struct {
		name    string
		expiry  string
		wantOK  bool
		wantMsg string
	}{
		{"well in the future", "2028-01-01", true, ""},
		{"one day past the window", "2027-02-16", true, ""},
		{"exactly six months out fails", "2027-02-15", false, "Passport expires within 6 months. Many countries require 6 months validity."},
		{"inside the window", "2026-12-01", false, "Passport expires within 6 months. Many countries require 6 months validity."},
		{"expires today", "2026-08-15", false, "Passport expires within 6 months. Many countries require 6 months validity."},
		{"already expired", "2026-08-14", false, "Passport has expired. Please check the expiry date."},
		{"unparseable", "31/08/2026", false, "Please enter a valid passport expiry date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, msg := ValidatePassportExpiry(tt.expiry, today)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
