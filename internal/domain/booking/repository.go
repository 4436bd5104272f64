package booking

import (
	"context"
	"time"
)

// Record is a confirmed booking as persisted by the repository.
type Record struct {
	Reference     string
	Payload       SubmissionBooking
	TotalAmount   int64
	TransactionID string
	CreatedAt     time.Time
}

// Repository defines the persistence interface for confirmed bookings.
type Repository interface {
	Save(ctx context.Context, record *Record) error
	FindByReference(ctx context.Context, reference string) (*Record, error)
}
