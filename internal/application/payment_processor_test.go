package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/verick-air/service-booking/internal/domain/booking"
)

func instantSleeper(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

func TestStagedPaymentProcessorRun(t *testing.T) {
	p := NewStagedPaymentProcessor(zap.NewNop(), WithSleeper(instantSleeper))

	var observed []booking.PaymentStage
	result, err := p.Run(context.Background(), func(stage booking.PaymentStage) {
		observed = append(observed, stage)
	})

	require.NoError(t, err)
	assert.True(t, result.Succeeded())
	assert.Regexp(t, `^TXN_[A-Z0-9]{9}$`, result.TransactionID)
	assert.Equal(t, "Payment successful!", result.Message)
	assert.Empty(t, result.CancelReason)

	assert.Equal(t, []booking.PaymentStage{
		booking.StageValidating,
		booking.StageProcessing,
		booking.StageConfirming,
		booking.StageSucceeded,
	}, observed)
}

func TestStagedPaymentProcessorCancelledUpfront(t *testing.T) {
	p := NewStagedPaymentProcessor(zap.NewNop(), WithSleeper(instantSleeper))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := p.Run(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, booking.StageCancelled, result.Stage)
	assert.Equal(t, CancelReasonUser, result.CancelReason)
	assert.Empty(t, result.TransactionID)
}

func TestStagedPaymentProcessorCancelledMidRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	// Cancel while the processing stage dwells.
	sleeper := func(ctx context.Context, _ time.Duration) error {
		return ctx.Err()
	}
	p := NewStagedPaymentProcessor(zap.NewNop(), WithSleeper(sleeper))

	var observed []booking.PaymentStage
	result, err := p.Run(ctx, func(stage booking.PaymentStage) {
		observed = append(observed, stage)
		if stage == booking.StageProcessing {
			cancel()
		}
	})

	require.NoError(t, err)
	assert.Equal(t, booking.StageCancelled, result.Stage)
	assert.Equal(t, []booking.PaymentStage{
		booking.StageValidating,
		booking.StageProcessing,
		booking.StageCancelled,
	}, observed)
}

func TestStagedPaymentProcessorDwellOverrides(t *testing.T) {
	var slept []time.Duration
	sleeper := func(_ context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	p := NewStagedPaymentProcessor(zap.NewNop(),
		WithSleeper(sleeper),
		WithDwell(booking.StageValidating, 10*time.Millisecond),
		WithDwell(booking.StageSucceeded, 0),
	)

	_, err := p.Run(context.Background(), nil)
	require.NoError(t, err)

	// Three stage dwells plus the settle dwell.
	require.Len(t, slept, 4)
	assert.Equal(t, 10*time.Millisecond, slept[0])
	assert.Equal(t, 2*time.Second, slept[1])
	assert.Equal(t, 2500*time.Millisecond, slept[2])
	assert.Equal(t, time.Duration(0), slept[3])
}
