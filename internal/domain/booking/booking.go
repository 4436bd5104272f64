package booking

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// StorageKey is the session store key holding the traveller's in-progress
// booking payload.
const StorageKey = "verick_booking_data"

// FlightDetails is the selected flight snapshot carried by a booking. It is
// denormalized at selection time so the booking stays self-contained even if
// the catalog changes.
type FlightDetails struct {
	ID            string
	Airline       string
	FlightNumber  string
	DepartureTime string
	ArrivalTime   string
	Duration      string
	Stops         string
	Aircraft      string
	Baggage       string
	From          string
	To            string
	Date          string
	Class         string
	TripType      TripType
	BasePrice     int64
}

// Booking is the aggregate assembled at submission time from the selected
// flight, passenger forms, contact details and payment details.
type Booking struct {
	Flight      FlightDetails
	Passengers  []Passenger
	Contact     Contact
	Payment     Payment
	Reference   string
	TotalAmount int64
}

// Validate runs every entity validator and flattens the messages into one
// ordered list: flight, passengers (prefixed with their 1-based position),
// contact, then payment. Nothing short-circuits across entities.
func (b *Booking) Validate(now time.Time) ValidationResult {
	var errs []string
	if b.Flight.ID == "" {
		errs = append(errs, "Flight selection is required")
	}
	if len(b.Passengers) == 0 {
		errs = append(errs, "At least one passenger is required")
	} else {
		for i, p := range b.Passengers {
			for _, msg := range p.Validate(now).Errors {
				errs = append(errs, fmt.Sprintf("Passenger %d: %s", i+1, msg))
			}
		}
	}
	errs = append(errs, b.Contact.Validate().Errors...)
	errs = append(errs, b.Payment.Validate(now).Errors...)
	return newValidationResult(errs)
}

// SubmissionMetadata carries submission bookkeeping fields.
type SubmissionMetadata struct {
	Timestamp string `json:"timestamp"`
}

// SubmissionBooking is the external representation of a booking sent to the
// reservation backend.
type SubmissionBooking struct {
	FlightID    string                `json:"flight_id"`
	Passengers  []SubmissionPassenger `json:"passengers"`
	ContactInfo SubmissionContact     `json:"contact_info"`
	PaymentInfo SubmissionPayment     `json:"payment_info"`
	Metadata    SubmissionMetadata    `json:"metadata"`
}

// ToSubmission converts the booking to its submission format. The payment
// block carries the booking total.
func (b *Booking) ToSubmission(at time.Time) SubmissionBooking {
	passengers := make([]SubmissionPassenger, 0, len(b.Passengers))
	for _, p := range b.Passengers {
		passengers = append(passengers, p.ToSubmission())
	}
	return SubmissionBooking{
		FlightID:    b.Flight.ID,
		Passengers:  passengers,
		ContactInfo: b.Contact.ToSubmission(),
		PaymentInfo: b.Payment.ToSubmission(b.TotalAmount),
		Metadata:    SubmissionMetadata{Timestamp: at.UTC().Format(time.RFC3339)},
	}
}

const (
	referenceCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	referenceLength  = 8

	transactionCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	transactionLength  = 9
)

func randomString(charset string, length int) (string, error) {
	out := make([]byte, length)
	max := big.NewInt(int64(len(charset)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random string: %w", err)
		}
		out[i] = charset[n.Int64()]
	}
	return string(out), nil
}

// GenerateReference produces a booking reference like "VRB-K7Q2M9XA".
func GenerateReference() (string, error) {
	s, err := randomString(referenceCharset, referenceLength)
	if err != nil {
		return "", err
	}
	return "VRB-" + s, nil
}

// GenerateTransactionID produces a transaction identifier like "TXN_4H7K2M9XQ".
func GenerateTransactionID() (string, error) {
	s, err := randomString(transactionCharset, transactionLength)
	if err != nil {
		return "", err
	}
	return "TXN_" + s, nil
}
