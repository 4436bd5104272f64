package booking

import "time"

// PaymentStage represents the current state of a mock payment run.
type PaymentStage string

const (
	StageIdle       PaymentStage = "idle"
	StageValidating PaymentStage = "validating"
	StageProcessing PaymentStage = "processing"
	StageConfirming PaymentStage = "confirming"
	StageSucceeded  PaymentStage = "succeeded"
	StageCancelled  PaymentStage = "cancelled"
)

// stageTransitions defines the state machine for payment stage transitions.
// The run only moves forward; cancellation is reachable from every
// non-terminal stage.
var stageTransitions = map[PaymentStage][]PaymentStage{
	StageIdle:       {StageValidating, StageCancelled},
	StageValidating: {StageProcessing, StageCancelled},
	StageProcessing: {StageConfirming, StageCancelled},
	StageConfirming: {StageSucceeded, StageCancelled},
	StageSucceeded:  {},
	StageCancelled:  {},
}

// IsValid returns true if the stage is a recognized payment stage.
func (s PaymentStage) IsValid() bool {
	_, exists := stageTransitions[s]
	return exists
}

// CanTransitionTo returns true if a transition from this stage to the target is allowed.
func (s PaymentStage) CanTransitionTo(target PaymentStage) bool {
	allowed, exists := stageTransitions[s]
	if !exists {
		return false
	}
	for _, t := range allowed {
		if t == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible from this stage.
func (s PaymentStage) IsTerminal() bool {
	allowed, exists := stageTransitions[s]
	if !exists {
		return true
	}
	return len(allowed) == 0
}

// CanBeCancelled returns true if a run can still be cancelled from this stage.
func (s PaymentStage) CanBeCancelled() bool {
	return s.CanTransitionTo(StageCancelled)
}

// String returns the string representation of the stage.
func (s PaymentStage) String() string {
	return string(s)
}

// StageInfo is the presentation metadata for a payment stage: the status
// message and icon shown on the payment surface, and the reference dwell the
// stage holds before auto-advancing.
type StageInfo struct {
	Message string
	Icon    string
	Dwell   time.Duration
}

var stageInfo = map[PaymentStage]StageInfo{
	StageValidating: {Message: "Validating payment details...", Icon: "fa-check", Dwell: 1500 * time.Millisecond},
	StageProcessing: {Message: "Processing payment with bank...", Icon: "fa-university", Dwell: 2000 * time.Millisecond},
	StageConfirming: {Message: "Confirming transaction...", Icon: "fa-check-double", Dwell: 2500 * time.Millisecond},
	StageSucceeded:  {Message: "Payment successful!", Icon: "fa-check-circle", Dwell: 1000 * time.Millisecond},
}

// Info returns the presentation metadata for the stage; zero value for
// stages without any (idle, cancelled).
func (s PaymentStage) Info() StageInfo {
	return stageInfo[s]
}

// ProcessingStages lists the auto-advancing stages of a run, in order.
var ProcessingStages = []PaymentStage{StageValidating, StageProcessing, StageConfirming}

// PaymentResult is the terminal outcome of one payment run.
type PaymentResult struct {
	Stage         PaymentStage
	TransactionID string
	Message       string
	CancelReason  string
}

// Succeeded reports whether the run reached the terminal success stage.
func (r PaymentResult) Succeeded() bool {
	return r.Stage == StageSucceeded
}
