package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/verick-air/service-booking/internal/domain"
)

// PaymentMethod is the closed set of supported payment methods.
type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodMobile PaymentMethod = "mobile"
)

// IsValid returns true if the payment method is recognized.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodMobile:
		return true
	}
	return false
}

// CardDetails carries the fields relevant only to card payments.
type CardDetails struct {
	Number string
	Name   string
	Expiry string
	CVV    string
}

// MobileDetails carries the fields relevant only to mobile money payments.
type MobileDetails struct {
	Provider string
	Number   string
}

const paymentStatusCompleted = "completed"

// Payment is a tagged variant over the supported payment methods: exactly one
// of Card or Mobile is set, matching Method. After the payment run succeeds it
// is enriched exactly once with the transaction identifier, completion status
// and a formatted payment timestamp.
type Payment struct {
	Method PaymentMethod
	Card   *CardDetails
	Mobile *MobileDetails

	TransactionID string
	Status        string
	PaymentDate   string
}

// NewCardPayment builds a card payment, trimming once at the boundary.
func NewCardPayment(number, name, expiry, cvv string) Payment {
	return Payment{
		Method: PaymentMethodCard,
		Card: &CardDetails{
			Number: strings.TrimSpace(number),
			Name:   strings.TrimSpace(name),
			Expiry: strings.TrimSpace(expiry),
			CVV:    strings.TrimSpace(cvv),
		},
	}
}

// NewMobilePayment builds a mobile money payment, trimming once at the boundary.
func NewMobilePayment(provider, number string) Payment {
	return Payment{
		Method: PaymentMethodMobile,
		Mobile: &MobileDetails{
			Provider: strings.TrimSpace(provider),
			Number:   strings.TrimSpace(number),
		},
	}
}

// Validate checks the method and its method-specific fields. A missing method
// is reported alone; otherwise every relevant field is checked in order.
func (p Payment) Validate(now time.Time) ValidationResult {
	if p.Method == "" {
		return newValidationResult([]string{"Payment method is required"})
	}

	var errs []string
	switch p.Method {
	case PaymentMethodCard:
		card := p.Card
		if card == nil {
			card = &CardDetails{}
		}
		if card.Number == "" {
			errs = append(errs, "Card number is required")
		} else if !IsValidCardNumber(card.Number) {
			errs = append(errs, "Valid card number is required")
		}
		if card.Name == "" {
			errs = append(errs, "Cardholder name is required")
		}
		if card.Expiry == "" {
			errs = append(errs, "Expiry date is required")
		} else if !IsValidExpiry(card.Expiry, now) {
			errs = append(errs, "Valid expiry date is required")
		}
		if card.CVV == "" {
			errs = append(errs, "CVV is required")
		} else if !IsValidCVV(card.CVV) {
			errs = append(errs, "Valid CVV is required")
		}
	case PaymentMethodMobile:
		mobile := p.Mobile
		if mobile == nil {
			mobile = &MobileDetails{}
		}
		if mobile.Provider == "" {
			errs = append(errs, "Mobile provider is required")
		}
		if mobile.Number == "" {
			errs = append(errs, "Mobile number is required")
		} else if !IsValidPhone(mobile.Number) {
			errs = append(errs, "Valid mobile number is required")
		}
	default:
		errs = append(errs, fmt.Sprintf("Unsupported payment method: %s", p.Method))
	}
	return newValidationResult(errs)
}

// Complete enriches the payment after a successful run. It may only be
// called once per payment.
func (p *Payment) Complete(transactionID string, at time.Time) error {
	if p.Status == paymentStatusCompleted {
		return domain.NewConflictError("payment has already been completed")
	}
	p.TransactionID = transactionID
	p.Status = paymentStatusCompleted
	p.PaymentDate = at.Format("Jan 2, 2006, 3:04 PM")
	return nil
}

// Completed reports whether the payment has been enriched with a transaction.
func (p Payment) Completed() bool {
	return p.Status == paymentStatusCompleted
}

// CardType detects the card brand from the leading digits of number.
func CardType(number string) string {
	cleaned := stripWhitespace(number)
	switch {
	case cleaned == "":
		return "Card"
	case strings.HasPrefix(cleaned, "4"):
		return "Visa"
	case len(cleaned) >= 2 && cleaned[0] == '5' && cleaned[1] >= '1' && cleaned[1] <= '5':
		return "MasterCard"
	case strings.HasPrefix(cleaned, "34"), strings.HasPrefix(cleaned, "37"):
		return "American Express"
	case strings.HasPrefix(cleaned, "6011"), strings.HasPrefix(cleaned, "65"):
		return "Discover"
	default:
		return "Credit Card"
	}
}

var mobileProviderNames = map[string]string{
	"mtn":        "MTN Mobile Money",
	"vodafone":   "Vodafone Cash",
	"airteltigo": "AirtelTigo Money",
}

// Display returns the human-readable payment method summary shown on the
// payment surface and the confirmation view.
func (p Payment) Display() string {
	switch p.Method {
	case PaymentMethodCard:
		lastFour := "****"
		if p.Card != nil && len(stripWhitespace(p.Card.Number)) >= 4 {
			n := stripWhitespace(p.Card.Number)
			lastFour = n[len(n)-4:]
		}
		var number string
		if p.Card != nil {
			number = p.Card.Number
		}
		return fmt.Sprintf("%s •••• %s", CardType(number), lastFour)
	case PaymentMethodMobile:
		var provider string
		if p.Mobile != nil {
			provider = p.Mobile.Provider
		}
		name, ok := mobileProviderNames[provider]
		if !ok {
			name = provider
		}
		return fmt.Sprintf("Mobile Money (%s)", name)
	}
	return "Unknown Payment Method"
}

// SubmissionCardDetails is the external representation of card details.
type SubmissionCardDetails struct {
	Number string `json:"number"`
	Name   string `json:"name"`
	Expiry string `json:"expiry"`
	CVV    string `json:"cvv"`
}

// SubmissionMobileDetails is the external representation of mobile details.
type SubmissionMobileDetails struct {
	Provider string `json:"provider"`
	Number   string `json:"number"`
}

// SubmissionPayment is the external representation of a Payment; exactly one
// of the detail blocks is present, matching the method.
type SubmissionPayment struct {
	Method        string                   `json:"method"`
	Amount        int64                    `json:"amount"`
	CardDetails   *SubmissionCardDetails   `json:"card_details,omitempty"`
	MobileDetails *SubmissionMobileDetails `json:"mobile_details,omitempty"`
	TransactionID string                   `json:"transaction_id,omitempty"`
	Status        string                   `json:"status,omitempty"`
	PaymentDate   string                   `json:"payment_date,omitempty"`
}

// ToSubmission converts the payment to its submission format with the booking
// total attached.
func (p Payment) ToSubmission(amount int64) SubmissionPayment {
	out := SubmissionPayment{
		Method:        string(p.Method),
		Amount:        amount,
		TransactionID: p.TransactionID,
		Status:        p.Status,
		PaymentDate:   p.PaymentDate,
	}
	switch p.Method {
	case PaymentMethodCard:
		if p.Card != nil {
			out.CardDetails = &SubmissionCardDetails{
				Number: stripWhitespace(p.Card.Number),
				Name:   p.Card.Name,
				Expiry: p.Card.Expiry,
				CVV:    p.Card.CVV,
			}
		}
	case PaymentMethodMobile:
		if p.Mobile != nil {
			out.MobileDetails = &SubmissionMobileDetails{
				Provider: p.Mobile.Provider,
				Number:   p.Mobile.Number,
			}
		}
	}
	return out
}
