package application

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/verick-air/service-booking/internal/domain"
	"github.com/verick-air/service-booking/internal/domain/booking"
	"github.com/verick-air/service-booking/internal/gateway"
)

// --- Fakes ---

type fakePaymentRunner struct {
	runs   int
	result booking.PaymentResult
}

func (f *fakePaymentRunner) Run(_ context.Context, observe func(booking.PaymentStage)) (booking.PaymentResult, error) {
	f.runs++
	if observe != nil {
		observe(f.result.Stage)
	}
	return f.result, nil
}

type fakeRemote struct {
	submissions    int
	passportChecks int
	submitResult   gateway.SubmissionResult
	passportResult gateway.PassportCheckResult
	lastSubmission booking.SubmissionBooking
}

func (f *fakeRemote) SubmitBooking(_ context.Context, payload booking.SubmissionBooking) (gateway.SubmissionResult, error) {
	f.submissions++
	f.lastSubmission = payload
	return f.submitResult, nil
}

func (f *fakeRemote) ValidatePassport(_ context.Context, _, _ string) (gateway.PassportCheckResult, error) {
	f.passportChecks++
	return f.passportResult, nil
}

type fakeRepository struct {
	saves   int
	records map[string]*booking.Record
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{records: make(map[string]*booking.Record)}
}

func (f *fakeRepository) Save(_ context.Context, record *booking.Record) error {
	f.saves++
	f.records[record.Reference] = record
	return nil
}

func (f *fakeRepository) FindByReference(_ context.Context, reference string) (*booking.Record, error) {
	record, ok := f.records[reference]
	if !ok {
		return nil, domain.NewNotFoundError("Booking", reference)
	}
	return record, nil
}

type fakeProducer struct {
	published []string
}

func (f *fakeProducer) Publish(_ context.Context, eventType, _ string, _ interface{}) error {
	f.published = append(f.published, eventType)
	return nil
}

// --- Fixtures ---

var serviceNow = time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)

type serviceFixture struct {
	service  *BookingService
	payments *fakePaymentRunner
	remote   *fakeRemote
	store    *gateway.MemoryStore
	records  *fakeRepository
	producer *fakeProducer
}

func newServiceFixture() *serviceFixture {
	f := &serviceFixture{
		payments: &fakePaymentRunner{result: booking.PaymentResult{
			Stage:         booking.StageSucceeded,
			TransactionID: "TXN_TEST12345",
			Message:       "Payment successful!",
		}},
		remote: &fakeRemote{
			submitResult:   gateway.SubmissionResult{Success: true, Message: "Booking confirmed successfully"},
			passportResult: gateway.PassportCheckResult{Valid: true, Message: "Passport validation passed"},
		},
		store:    gateway.NewMemoryStore(),
		records:  newFakeRepository(),
		producer: &fakeProducer{},
	}
	f.service = NewBookingService(
		booking.NewStandardPricingStrategy(),
		f.payments,
		f.remote,
		f.store,
		f.records,
		f.producer,
		zap.NewNop(),
		WithClock(func() time.Time { return serviceNow }),
	)
	return f
}

func validRequest() SubmitBookingRequest {
	return SubmitBookingRequest{
		Flight: FlightSelection{
			ID:       "2",
			Airline:  "British Airways",
			From:     "Accra, Ghana (ACC)",
			To:       "London, UK (LHR)",
			TripType: "one-way",
			Price:    1945,
		},
		Passengers: []PassengerInput{{
			Title:       "Mr",
			FirstName:   "Kwame",
			LastName:    "Mensah",
			DateOfBirth: "1990-04-12",
			Gender:      "male",
			Nationality: "Ghanaian",
		}},
		Contact: ContactInput{Email: "kwame@example.com", Phone: "0244123456"},
		Payment: PaymentInput{
			Method:     "card",
			CardNumber: "4111 1111 1111 1111",
			CardName:   "Kwame Mensah",
			CardExpiry: "01/28",
			CardCVV:    "123",
		},
	}
}

// --- Tests ---

func TestSubmitBookingSuccess(t *testing.T) {
	f := newServiceFixture()

	confirmation, err := f.service.SubmitBooking(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Regexp(t, `^VRB-[A-Z0-9]{8}$`, confirmation.BookingID)
	assert.Equal(t, "TXN_TEST12345", confirmation.TransactionID)
	// 1945 + 5% tax + 50 fee, rounded once.
	assert.Equal(t, int64(2092), confirmation.TotalAmount)
	assert.Equal(t, "Booking confirmed successfully", confirmation.Message)
	assert.Equal(t, "/confirmation?bookingId="+confirmation.BookingID, confirmation.NavigateTo)

	assert.Equal(t, 1, f.payments.runs)
	assert.Equal(t, 1, f.remote.submissions)
	assert.Equal(t, 1, f.records.saves)
	assert.Equal(t, []string{"booking.confirmed"}, f.producer.published)

	// The submission payload carries the enriched payment block.
	assert.Equal(t, "TXN_TEST12345", f.remote.lastSubmission.PaymentInfo.TransactionID)
	assert.Equal(t, "completed", f.remote.lastSubmission.PaymentInfo.Status)
	assert.Equal(t, int64(2092), f.remote.lastSubmission.PaymentInfo.Amount)

	// The session store holds the confirmation payload.
	raw, ok, err := f.store.Get(context.Background(), booking.StorageKey)
	require.NoError(t, err)
	require.True(t, ok)
	var stored StoredBooking
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, confirmation.BookingID, stored.BookingID)
	assert.Equal(t, "2", stored.FlightID)
}

func TestSubmitBookingValidationFailure(t *testing.T) {
	f := newServiceFixture()

	req := validRequest()
	req.Passengers[0].FirstName = ""

	_, err := f.service.SubmitBooking(context.Background(), req)
	require.Error(t, err)

	assert.Equal(t, domain.CodeValidation, domain.CodeOf(err))
	assert.Equal(t, []string{"Passenger 1: First name is required"}, domain.DetailsOf(err))

	// No charge, no persistence, no events.
	assert.Zero(t, f.payments.runs)
	assert.Zero(t, f.remote.submissions)
	assert.Zero(t, f.records.saves)
	assert.Empty(t, f.producer.published)
	_, ok, _ := f.store.Get(context.Background(), booking.StorageKey)
	assert.False(t, ok)
}

func TestSubmitBookingPaymentCancelled(t *testing.T) {
	f := newServiceFixture()
	f.payments.result = booking.PaymentResult{
		Stage:        booking.StageCancelled,
		CancelReason: CancelReasonUser,
	}

	_, err := f.service.SubmitBooking(context.Background(), validRequest())
	require.Error(t, err)

	assert.Equal(t, domain.CodeUnprocessable, domain.CodeOf(err))
	assert.Contains(t, err.Error(), "Payment failed: Payment cancelled by user")

	assert.Zero(t, f.remote.submissions)
	assert.Zero(t, f.records.saves)
	assert.Empty(t, f.producer.published)
}

func TestSubmitBookingRemoteFailure(t *testing.T) {
	f := newServiceFixture()
	f.remote.submitResult = gateway.SubmissionResult{Success: false, Message: "Seat no longer available"}

	_, err := f.service.SubmitBooking(context.Background(), validRequest())
	require.Error(t, err)

	assert.Equal(t, domain.CodeUnprocessable, domain.CodeOf(err))
	assert.Contains(t, err.Error(), "Booking failed: Seat no longer available")

	assert.Zero(t, f.records.saves)
	assert.Empty(t, f.producer.published)
}

func TestSubmitBookingPassportRejected(t *testing.T) {
	f := newServiceFixture()
	f.remote.passportResult = gateway.PassportCheckResult{Valid: false, Message: "Passport not recognized"}

	req := validRequest()
	req.Passengers[0].PassportNumber = "G1234567"
	req.Passengers[0].PassportExpiry = "2030-01-01"

	_, err := f.service.SubmitBooking(context.Background(), req)
	require.Error(t, err)

	assert.Equal(t, domain.CodeValidation, domain.CodeOf(err))
	assert.Contains(t, err.Error(), "Passenger 1: Passport not recognized")
	assert.Equal(t, 1, f.remote.passportChecks)
	assert.Zero(t, f.payments.runs)
}

func TestSubmitBookingDefaultsMissingFlightPrice(t *testing.T) {
	f := newServiceFixture()

	req := validRequest()
	req.Flight.Price = 0

	confirmation, err := f.service.SubmitBooking(context.Background(), req)
	require.NoError(t, err)

	// ACC-LHR base fare 2100: 2100 + 105 tax + 50 fee.
	assert.Equal(t, int64(2255), confirmation.TotalAmount)
}

func TestCurrentBooking(t *testing.T) {
	f := newServiceFixture()

	_, err := f.service.CurrentBooking(context.Background())
	require.Error(t, err)
	assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))

	confirmation, err := f.service.SubmitBooking(context.Background(), validRequest())
	require.NoError(t, err)

	stored, err := f.service.CurrentBooking(context.Background())
	require.NoError(t, err)
	assert.Equal(t, confirmation.BookingID, stored.BookingID)
}

func TestGetBooking(t *testing.T) {
	f := newServiceFixture()

	confirmation, err := f.service.SubmitBooking(context.Background(), validRequest())
	require.NoError(t, err)

	record, err := f.service.GetBooking(context.Background(), confirmation.BookingID)
	require.NoError(t, err)
	assert.Equal(t, confirmation.BookingID, record.BookingID)
	assert.Equal(t, int64(2092), record.TotalAmount)
	assert.Equal(t, "TXN_TEST12345", record.TransactionID)

	_, err = f.service.GetBooking(context.Background(), "VRB-MISSING1")
	require.Error(t, err)
	assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))
}
