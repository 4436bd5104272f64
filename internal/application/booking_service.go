package application

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/verick-air/service-booking/internal/domain"
	"github.com/verick-air/service-booking/internal/domain/booking"
	"github.com/verick-air/service-booking/internal/events"
	"github.com/verick-air/service-booking/internal/gateway"
)

// FlightSelection is the selected flight snapshot carried by a submission
// request. Absent display fields fall back to the reference flight.
type FlightSelection struct {
	ID            string `json:"id"`
	Airline       string `json:"airline"`
	FlightNumber  string `json:"flight_number"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	Duration      string `json:"duration"`
	Stops         string `json:"stops"`
	Aircraft      string `json:"aircraft"`
	Baggage       string `json:"baggage"`
	From          string `json:"from"`
	To            string `json:"to"`
	Date          string `json:"date"`
	Class         string `json:"class"`
	TripType      string `json:"trip_type"`
	Price         int64  `json:"price"`
}

// PassengerInput is one traveller form in a submission request.
type PassengerInput struct {
	Title          string `json:"title"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	DateOfBirth    string `json:"date_of_birth"`
	Gender         string `json:"gender"`
	Nationality    string `json:"nationality"`
	PassportNumber string `json:"passport_number"`
	PassportExpiry string `json:"passport_expiry"`
}

// ContactInput is the contact form in a submission request.
type ContactInput struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// PaymentInput is the payment form in a submission request. Card and mobile
// fields are populated according to the method.
type PaymentInput struct {
	Method         string `json:"method"`
	CardNumber     string `json:"card_number"`
	CardName       string `json:"card_name"`
	CardExpiry     string `json:"card_expiry"`
	CardCVV        string `json:"card_cvv"`
	MobileProvider string `json:"mobile_provider"`
	MobileNumber   string `json:"mobile_number"`
}

// SubmitBookingRequest is the full booking submission.
type SubmitBookingRequest struct {
	Flight     FlightSelection `json:"flight"`
	Passengers []PassengerInput `json:"passengers"`
	Contact    ContactInput    `json:"contact"`
	Payment    PaymentInput    `json:"payment"`
}

// BookingConfirmation is the successful submission response.
type BookingConfirmation struct {
	BookingID     string `json:"booking_id"`
	TransactionID string `json:"transaction_id"`
	TotalAmount   int64  `json:"total_amount"`
	Message       string `json:"message"`
	NavigateTo    string `json:"navigate_to"`
}

// StoredBooking is the session store payload written under the booking data
// key after a confirmed submission, read back by the confirmation view.
type StoredBooking struct {
	BookingID string `json:"booking_id"`
	booking.SubmissionBooking
}

// RecordDTO is the response representation of a persisted booking record.
type RecordDTO struct {
	BookingID     string                    `json:"booking_id"`
	Payload       booking.SubmissionBooking `json:"payload"`
	TotalAmount   int64                     `json:"total_amount"`
	TransactionID string                    `json:"transaction_id"`
	CreatedAt     time.Time                 `json:"created_at"`
}

// RemoteServices is the upstream pair the submission pipeline talks to.
type RemoteServices interface {
	SubmitBooking(ctx context.Context, payload booking.SubmissionBooking) (gateway.SubmissionResult, error)
	ValidatePassport(ctx context.Context, passportNumber, nationality string) (gateway.PassportCheckResult, error)
}

// EventProducer publishes booking lifecycle events.
type EventProducer interface {
	Publish(ctx context.Context, eventType, key string, data interface{}) error
}

// BookingService orchestrates the booking submission pipeline: assembly,
// validation, the staged payment run, remote submission and persistence.
type BookingService struct {
	pricing  booking.PricingStrategy
	payments PaymentRunner
	remote   RemoteServices
	store    gateway.Store
	records  booking.Repository
	producer EventProducer
	logger   *zap.Logger
	now      func() time.Time
}

// ServiceOption customizes a BookingService.
type ServiceOption func(*BookingService)

// WithClock replaces the service clock, pinning time in tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *BookingService) { s.now = now }
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	pricing booking.PricingStrategy,
	payments PaymentRunner,
	remote RemoteServices,
	store gateway.Store,
	records booking.Repository,
	producer EventProducer,
	logger *zap.Logger,
	opts ...ServiceOption,
) *BookingService {
	s := &BookingService{
		pricing:  pricing,
		payments: payments,
		remote:   remote,
		store:    store,
		records:  records,
		producer: producer,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitBooking runs the full pipeline. Nothing is charged or persisted
// unless validation passes, and nothing is persisted unless the remote
// submission succeeds.
func (s *BookingService) SubmitBooking(ctx context.Context, req SubmitBookingRequest) (*BookingConfirmation, error) {
	now := s.now()
	bk := s.buildBooking(req)

	if result := bk.Validate(now); !result.IsValid {
		s.logger.Info("booking rejected",
			zap.Int("error_count", len(result.Errors)),
		)
		return nil, domain.NewValidationListError(result.Errors)
	}

	for i, p := range bk.Passengers {
		if p.PassportNumber == "" {
			continue
		}
		check, err := s.remote.ValidatePassport(ctx, p.PassportNumber, p.Nationality)
		if err != nil {
			return nil, fmt.Errorf("failed to validate passport: %w", err)
		}
		if !check.Valid {
			return nil, domain.NewValidationError(fmt.Sprintf("Passenger %d: %s", i+1, check.Message))
		}
	}

	result, err := s.payments.Run(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("payment run failed: %w", err)
	}
	if !result.Succeeded() {
		s.logger.Info("payment run did not succeed",
			zap.String("stage", result.Stage.String()),
			zap.String("reason", result.CancelReason),
		)
		return nil, domain.NewUnprocessableError("Payment failed: " + result.CancelReason)
	}

	if err := bk.Payment.Complete(result.TransactionID, now); err != nil {
		return nil, err
	}

	submission := bk.ToSubmission(now)
	remoteResult, err := s.remote.SubmitBooking(ctx, submission)
	if err != nil {
		return nil, fmt.Errorf("failed to submit booking: %w", err)
	}
	if !remoteResult.Success {
		return nil, domain.NewUnprocessableError("Booking failed: " + remoteResult.Message)
	}

	reference, err := booking.GenerateReference()
	if err != nil {
		return nil, err
	}
	bk.Reference = reference

	record := &booking.Record{
		Reference:     reference,
		Payload:       submission,
		TotalAmount:   bk.TotalAmount,
		TransactionID: result.TransactionID,
		CreatedAt:     now,
	}
	if err := s.records.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save booking record: %w", err)
	}

	if err := s.storeCurrentBooking(ctx, reference, submission); err != nil {
		return nil, err
	}

	s.publishConfirmed(ctx, bk, result.TransactionID, now)

	return &BookingConfirmation{
		BookingID:     reference,
		TransactionID: result.TransactionID,
		TotalAmount:   bk.TotalAmount,
		Message:       remoteResult.Message,
		NavigateTo:    "/confirmation?bookingId=" + reference,
	}, nil
}

// CurrentBooking returns the stored booking payload from the session store.
func (s *BookingService) CurrentBooking(ctx context.Context) (*StoredBooking, error) {
	raw, ok, err := s.store.Get(ctx, booking.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read current booking: %w", err)
	}
	if !ok {
		return nil, domain.NewNotFoundError("Booking", "current")
	}

	var stored StoredBooking
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, fmt.Errorf("failed to decode stored booking: %w", err)
	}
	return &stored, nil
}

// GetBooking retrieves a persisted booking record by reference.
func (s *BookingService) GetBooking(ctx context.Context, reference string) (*RecordDTO, error) {
	record, err := s.records.FindByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	return &RecordDTO{
		BookingID:     record.Reference,
		Payload:       record.Payload,
		TotalAmount:   record.TotalAmount,
		TransactionID: record.TransactionID,
		CreatedAt:     record.CreatedAt,
	}, nil
}

// --- Helpers ---

// Display fields of the reference flight, applied when a selection omits them.
const (
	defaultAirline       = "British Airways"
	defaultFlightNumber  = "BA 114"
	defaultDepartureTime = "08:30"
	defaultArrivalTime   = "19:45"
	defaultDuration      = "7h 15m"
	defaultStops         = "Non-stop"
	defaultAircraft      = "Boeing 777"
	defaultBaggage       = "2 x 23kg"
	defaultFrom          = "Accra, Ghana (ACC)"
	defaultTo            = "London, UK (LHR)"
)

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func (s *BookingService) buildBooking(req SubmitBookingRequest) *booking.Booking {
	tripType := booking.ParseTripType(req.Flight.TripType)
	from := orDefault(req.Flight.From, defaultFrom)
	to := orDefault(req.Flight.To, defaultTo)

	basePrice := req.Flight.Price
	if basePrice <= 0 {
		basePrice = booking.RouteBasePrice(from, to)
	}

	flight := booking.FlightDetails{
		ID:            req.Flight.ID,
		Airline:       orDefault(req.Flight.Airline, defaultAirline),
		FlightNumber:  orDefault(req.Flight.FlightNumber, defaultFlightNumber),
		DepartureTime: orDefault(req.Flight.DepartureTime, defaultDepartureTime),
		ArrivalTime:   orDefault(req.Flight.ArrivalTime, defaultArrivalTime),
		Duration:      orDefault(req.Flight.Duration, defaultDuration),
		Stops:         orDefault(req.Flight.Stops, defaultStops),
		Aircraft:      orDefault(req.Flight.Aircraft, defaultAircraft),
		Baggage:       orDefault(req.Flight.Baggage, defaultBaggage),
		From:          from,
		To:            to,
		Date:          req.Flight.Date,
		Class:         req.Flight.Class,
		TripType:      tripType,
		BasePrice:     basePrice,
	}

	passengers := make([]booking.Passenger, 0, len(req.Passengers))
	for _, p := range req.Passengers {
		passengers = append(passengers, booking.NewPassenger(
			p.Title, p.FirstName, p.LastName, p.DateOfBirth,
			p.Gender, p.Nationality, p.PassportNumber, p.PassportExpiry,
		))
	}

	var payment booking.Payment
	switch booking.PaymentMethod(req.Payment.Method) {
	case booking.PaymentMethodCard:
		payment = booking.NewCardPayment(req.Payment.CardNumber, req.Payment.CardName, req.Payment.CardExpiry, req.Payment.CardCVV)
	case booking.PaymentMethodMobile:
		payment = booking.NewMobilePayment(req.Payment.MobileProvider, req.Payment.MobileNumber)
	default:
		payment = booking.Payment{Method: booking.PaymentMethod(req.Payment.Method)}
	}

	quote := s.pricing.Quote(booking.PricingParams{
		BasePrice:  basePrice,
		TripType:   tripType,
		Passengers: len(passengers),
	})

	return &booking.Booking{
		Flight:      flight,
		Passengers:  passengers,
		Contact:     booking.NewContact(req.Contact.Email, req.Contact.Phone),
		Payment:     payment,
		TotalAmount: quote.Total,
	}
}

func (s *BookingService) storeCurrentBooking(ctx context.Context, reference string, submission booking.SubmissionBooking) error {
	stored := StoredBooking{BookingID: reference, SubmissionBooking: submission}
	raw, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to encode stored booking: %w", err)
	}
	if err := s.store.Set(ctx, booking.StorageKey, string(raw)); err != nil {
		return fmt.Errorf("failed to store current booking: %w", err)
	}
	return nil
}

func (s *BookingService) publishConfirmed(ctx context.Context, bk *booking.Booking, transactionID string, at time.Time) {
	evt := events.BookingConfirmedEvent{
		BookingID:     bk.Reference,
		TransactionID: transactionID,
		FlightID:      bk.Flight.ID,
		TotalAmount:   bk.TotalAmount,
		ContactEmail:  bk.Contact.Email,
		Passengers:    len(bk.Passengers),
		OccurredAt:    at.UTC(),
	}
	if err := s.producer.Publish(ctx, events.BookingConfirmed, bk.Reference, evt); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("event_type", events.BookingConfirmed),
			zap.String("booking_id", bk.Reference),
			zap.Error(err),
		)
	}
}
