package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/verick-air/service-booking/internal/domain"
	"github.com/verick-air/service-booking/internal/domain/booking"
)

// BookingRecordModel is the GORM model for the booking_records table. The
// submission payload is stored whole as jsonb; the columns only carry what
// lookups and reporting need.
type BookingRecordModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Reference     string          `gorm:"uniqueIndex;not null;size:20"`
	Payload       json.RawMessage `gorm:"type:jsonb;not null"`
	TotalAmount   int64           `gorm:"not null"`
	TransactionID string          `gorm:"not null;size:20"`
	CreatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (BookingRecordModel) TableName() string {
	return "booking_records"
}

// GormBookingRepository is the GORM-based implementation of booking.Repository.
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository.
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// Save persists a confirmed booking record.
func (r *GormBookingRepository) Save(ctx context.Context, record *booking.Record) error {
	payload, err := json.Marshal(record.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal booking payload: %w", err)
	}

	model := BookingRecordModel{
		ID:            uuid.New(),
		Reference:     record.Reference,
		Payload:       payload,
		TotalAmount:   record.TotalAmount,
		TransactionID: record.TransactionID,
		CreatedAt:     record.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		return fmt.Errorf("failed to save booking record: %w", err)
	}
	return nil
}

// FindByReference retrieves a booking record by its booking reference.
func (r *GormBookingRepository) FindByReference(ctx context.Context, reference string) (*booking.Record, error) {
	var model BookingRecordModel
	if err := r.db.WithContext(ctx).Where("reference = ?", reference).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Booking", reference)
		}
		return nil, fmt.Errorf("failed to find booking by reference: %w", err)
	}

	var payload booking.SubmissionBooking
	if err := json.Unmarshal(model.Payload, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking payload: %w", err)
	}

	return &booking.Record{
		Reference:     model.Reference,
		Payload:       payload,
		TotalAmount:   model.TotalAmount,
		TransactionID: model.TransactionID,
		CreatedAt:     model.CreatedAt,
	}, nil
}
