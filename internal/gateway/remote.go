package gateway

import (
	"context"
	"time"

	"github.com/verick-air/service-booking/internal/domain/booking"
	"go.uber.org/zap"
)

// SubmissionResult is the reservation backend's answer to a booking submission.
type SubmissionResult struct {
	Success bool
	Message string
}

// PassportCheckResult is the passport service's answer to a validity check.
type PassportCheckResult struct {
	Valid   bool
	Message string
}

// StubRemoteServices simulates the reservation backend and the passport
// service with fixed delays and canned success responses. There is no real
// upstream in the demo deployment.
type StubRemoteServices struct {
	submissionDelay time.Duration
	logger          *zap.Logger
}

// NewStubRemoteServices creates the stub with the configured submission delay.
func NewStubRemoteServices(submissionDelay time.Duration, logger *zap.Logger) *StubRemoteServices {
	return &StubRemoteServices{submissionDelay: submissionDelay, logger: logger}
}

// SubmitBooking pretends to file the booking with the reservation backend.
func (s *StubRemoteServices) SubmitBooking(ctx context.Context, payload booking.SubmissionBooking) (SubmissionResult, error) {
	if s.submissionDelay > 0 {
		select {
		case <-time.After(s.submissionDelay):
		case <-ctx.Done():
			return SubmissionResult{}, ctx.Err()
		}
	}

	s.logger.Debug("booking submitted to stub backend",
		zap.String("flight_id", payload.FlightID),
		zap.Int("passengers", len(payload.Passengers)),
	)
	return SubmissionResult{Success: true, Message: "Booking confirmed successfully"}, nil
}

// ValidatePassport pretends to verify a passport with the passport service.
func (s *StubRemoteServices) ValidatePassport(ctx context.Context, passportNumber, nationality string) (PassportCheckResult, error) {
	if err := ctx.Err(); err != nil {
		return PassportCheckResult{}, err
	}

	s.logger.Debug("passport checked against stub service",
		zap.String("nationality", nationality),
	)
	return PassportCheckResult{Valid: true, Message: "Passport validation passed"}, nil
}
