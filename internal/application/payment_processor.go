package application

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/verick-air/service-booking/internal/domain/booking"
)

// CancelReasonUser is attached to runs aborted by the caller.
const CancelReasonUser = "Payment cancelled by user"

// PaymentRunner executes one mock payment run, reporting each stage through
// the observe callback as it is entered.
type PaymentRunner interface {
	Run(ctx context.Context, observe func(booking.PaymentStage)) (booking.PaymentResult, error)
}

// StagedPaymentProcessor walks the fixed payment stage sequence with a dwell
// in each stage, simulating a gateway round trip. Cancelling the context
// aborts the run from any non-terminal stage.
type StagedPaymentProcessor struct {
	dwells map[booking.PaymentStage]time.Duration
	settle time.Duration
	sleep  func(ctx context.Context, d time.Duration) error
	logger *zap.Logger
}

// ProcessorOption customizes a StagedPaymentProcessor.
type ProcessorOption func(*StagedPaymentProcessor)

// WithDwell overrides the dwell for one stage.
func WithDwell(stage booking.PaymentStage, d time.Duration) ProcessorOption {
	return func(p *StagedPaymentProcessor) {
		if stage == booking.StageSucceeded {
			p.settle = d
			return
		}
		p.dwells[stage] = d
	}
}

// WithSleeper replaces the dwell sleeper, letting tests run without waiting.
func WithSleeper(sleep func(ctx context.Context, d time.Duration) error) ProcessorOption {
	return func(p *StagedPaymentProcessor) { p.sleep = sleep }
}

// NewStagedPaymentProcessor creates a processor with the reference dwells.
func NewStagedPaymentProcessor(logger *zap.Logger, opts ...ProcessorOption) *StagedPaymentProcessor {
	p := &StagedPaymentProcessor{
		dwells: make(map[booking.PaymentStage]time.Duration, len(booking.ProcessingStages)),
		settle: booking.StageSucceeded.Info().Dwell,
		sleep:  sleepWithContext,
		logger: logger,
	}
	for _, stage := range booking.ProcessingStages {
		p.dwells[stage] = stage.Info().Dwell
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run walks validating, processing and confirming in order, then settles in
// the succeeded stage. A context cancellation between or during dwells ends
// the run in the cancelled stage; succeeded is terminal and cannot be
// cancelled retroactively.
func (p *StagedPaymentProcessor) Run(ctx context.Context, observe func(booking.PaymentStage)) (booking.PaymentResult, error) {
	notify := func(stage booking.PaymentStage) {
		if observe != nil {
			observe(stage)
		}
	}

	current := booking.StageIdle
	for _, stage := range booking.ProcessingStages {
		if err := ctx.Err(); err != nil {
			return p.cancelled(current, notify), nil
		}

		current = stage
		notify(stage)
		p.logger.Debug("payment stage entered",
			zap.String("stage", stage.String()),
			zap.String("message", stage.Info().Message),
		)

		if err := p.sleep(ctx, p.dwells[stage]); err != nil {
			return p.cancelled(current, notify), nil
		}
	}

	transactionID, err := booking.GenerateTransactionID()
	if err != nil {
		return booking.PaymentResult{}, err
	}

	notify(booking.StageSucceeded)
	p.logger.Debug("payment stage entered",
		zap.String("stage", booking.StageSucceeded.String()),
	)

	// The run already succeeded; the settle dwell only paces the handoff.
	_ = p.sleep(ctx, p.settle)

	return booking.PaymentResult{
		Stage:         booking.StageSucceeded,
		TransactionID: transactionID,
		Message:       booking.StageSucceeded.Info().Message,
	}, nil
}

func (p *StagedPaymentProcessor) cancelled(from booking.PaymentStage, notify func(booking.PaymentStage)) booking.PaymentResult {
	notify(booking.StageCancelled)
	p.logger.Info("payment run cancelled", zap.String("from_stage", from.String()))
	return booking.PaymentResult{
		Stage:        booking.StageCancelled,
		CancelReason: CancelReasonUser,
	}
}
