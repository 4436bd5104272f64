package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verick-air/service-booking/internal/domain"
)

var paymentNow = time.Date(2026, time.August, 15, 10, 30, 0, 0, time.UTC)

func TestPaymentValidateCard(t *testing.T) {
	t.Run("valid card", func(t *testing.T) {
		p := NewCardPayment("4111 1111 1111 1111", "Kwame Mensah", "01/28", "123")
		result := p.Validate(paymentNow)
		assert.True(t, result.IsValid)
		assert.Empty(t, result.Errors)
	})

	t.Run("missing method reports only that", func(t *testing.T) {
		p := Payment{}
		result := p.Validate(paymentNow)
		assert.Equal(t, []string{"Payment method is required"}, result.Errors)
	})

	t.Run("empty card fields in order", func(t *testing.T) {
		p := NewCardPayment("", "", "", "")
		result := p.Validate(paymentNow)
		assert.Equal(t, []string{
			"Card number is required",
			"Cardholder name is required",
			"Expiry date is required",
			"CVV is required",
		}, result.Errors)
	})

	t.Run("malformed card fields", func(t *testing.T) {
		p := NewCardPayment("1234", "Kwame Mensah", "13/28", "12")
		result := p.Validate(paymentNow)
		assert.Equal(t, []string{
			"Valid card number is required",
			"Valid expiry date is required",
			"Valid CVV is required",
		}, result.Errors)
	})

	t.Run("expired card", func(t *testing.T) {
		p := NewCardPayment("4111111111111111", "Kwame Mensah", "07/26", "123")
		result := p.Validate(paymentNow)
		assert.Equal(t, []string{"Valid expiry date is required"}, result.Errors)
	})
}

func TestPaymentValidateMobile(t *testing.T) {
	t.Run("valid mobile", func(t *testing.T) {
		p := NewMobilePayment("mtn", "0244123456")
		result := p.Validate(paymentNow)
		assert.True(t, result.IsValid)
	})

	t.Run("empty mobile fields", func(t *testing.T) {
		p := NewMobilePayment("", "")
		result := p.Validate(paymentNow)
		assert.Equal(t, []string{
			"Mobile provider is required",
			"Mobile number is required",
		}, result.Errors)
	})

	t.Run("short mobile number", func(t *testing.T) {
		p := NewMobilePayment("vodafone", "12345")
		result := p.Validate(paymentNow)
		assert.Equal(t, []string{"Valid mobile number is required"}, result.Errors)
	})
}

func TestPaymentValidateUnknownMethod(t *testing.T) {
	p := Payment{Method: "crypto"}
	result := p.Validate(paymentNow)
	assert.Equal(t, []string{"Unsupported payment method: crypto"}, result.Errors)
}

func TestPaymentComplete(t *testing.T) {
	p := NewCardPayment("4111111111111111", "Kwame Mensah", "01/28", "123")
	assert.False(t, p.Completed())

	at := time.Date(2026, time.August, 15, 14, 5, 0, 0, time.UTC)
	require.NoError(t, p.Complete("TXN_ABC123DEF", at))

	assert.True(t, p.Completed())
	assert.Equal(t, "TXN_ABC123DEF", p.TransactionID)
	assert.Equal(t, "Aug 15, 2026, 2:05 PM", p.PaymentDate)

	// A second completion is rejected.
	err := p.Complete("TXN_OTHER0001", at)
	require.Error(t, err)
	assert.Equal(t, domain.CodeConflict, domain.CodeOf(err))
}

func TestCardType(t *testing.T) {
	tests := []struct {
		number string
		want   string
	}{
		{"4111111111111111", "Visa"},
		{"5100000000000000", "MasterCard"},
		{"5500000000000000", "MasterCard"},
		{"5600000000000000", "Credit Card"},
		{"340000000000000", "American Express"},
		{"370000000000000", "American Express"},
		{"6011000000000000", "Discover"},
		{"6500000000000000", "Discover"},
		{"9999999999999999", "Credit Card"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CardType(tt.number), "number %q", tt.number)
	}
}

func TestPaymentDisplay(t *testing.T) {
	card := NewCardPayment("4111 1111 1111 1234", "Kwame Mensah", "01/28", "123")
	assert.Equal(t, "Visa •••• 1234", card.Display())

	mobile := NewMobilePayment("mtn", "0244123456")
	assert.Equal(t, "Mobile Money (MTN Mobile Money)", mobile.Display())

	unknownProvider := NewMobilePayment("glo", "0244123456")
	assert.Equal(t, "Mobile Money (glo)", unknownProvider.Display())
}

func TestPaymentToSubmission(t *testing.T) {
	p := NewCardPayment("4111 1111 1111 1111", "Kwame Mensah", "01/28", "123")
	require.NoError(t, p.Complete("TXN_ABC123DEF", paymentNow))

	out := p.ToSubmission(6400)
	assert.Equal(t, "card", out.Method)
	assert.Equal(t, int64(6400), out.Amount)
	require.NotNil(t, out.CardDetails)
	assert.Equal(t, "4111111111111111", out.CardDetails.Number)
	assert.Nil(t, out.MobileDetails)
	assert.Equal(t, "completed", out.Status)
	assert.Equal(t, "TXN_ABC123DEF", out.TransactionID)
}
