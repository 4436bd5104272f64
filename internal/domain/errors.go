package domain

import (
	"errors"
	"fmt"
)

// ErrorCode classifies domain errors for transport-layer mapping.
type ErrorCode string

const (
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeConflict      ErrorCode = "CONFLICT"
	CodeUnprocessable ErrorCode = "UNPROCESSABLE"
)

// Error is a domain-level error carrying a machine-readable code and,
// for validation failures, the full ordered list of messages.
type Error struct {
	Code    ErrorCode
	Message string
	Details []string
}

func (e *Error) Error() string {
	return e.Message
}

// NewValidationError creates a single-message validation error.
func NewValidationError(message string) *Error {
	return &Error{Code: CodeValidation, Message: message}
}

// NewValidationListError creates a validation error carrying an ordered
// list of field messages, preserving their original order.
func NewValidationListError(details []string) *Error {
	return &Error{
		Code:    CodeValidation,
		Message: "Please fix the following errors",
		Details: details,
	}
}

// NewNotFoundError creates an error for a missing resource.
func NewNotFoundError(resource, id string) *Error {
	return &Error{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s %s not found", resource, id),
	}
}

// NewConflictError creates an error for an operation that conflicts with
// the current state of the resource.
func NewConflictError(message string) *Error {
	return &Error{Code: CodeConflict, Message: message}
}

// NewUnprocessableError creates an error for a request that is well-formed
// but cannot be completed (cancelled payment, failed remote submission).
func NewUnprocessableError(message string) *Error {
	return &Error{Code: CodeUnprocessable, Message: message}
}

// CodeOf extracts the ErrorCode from err, or empty string for non-domain errors.
func CodeOf(err error) ErrorCode {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// DetailsOf extracts the detail list from err, or nil for non-domain errors.
func DetailsOf(err error) []string {
	var de *Error
	if errors.As(err, &de) {
		return de.Details
	}
	return nil
}
