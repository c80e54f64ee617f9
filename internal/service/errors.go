package service

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownBooking: the identifier is present in neither partition.
	ErrUnknownBooking = errors.New("unknown booking")
	// ErrAlreadyConfirmed: confirming twice is a conflict, not a no-op.
	ErrAlreadyConfirmed = errors.New("booking already confirmed")
	// ErrOptionNotAvailable: the chosen room was not among the offered options.
	ErrOptionNotAvailable = errors.New("option not available")
)

// Validation rule names reported to callers.
const (
	RuleDateFormat = "date_format"
	RuleDateOrder  = "date_order"
	RuleGuestCount = "guest_count"
	RuleRoomType   = "room_type"
)

// ValidationError names the rule an inquiry violated. Always recoverable
// and never retried automatically.
type ValidationError struct {
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed (%s): %s", e.Rule, e.Message)
}

func newValidationError(rule, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Rule: rule, Message: fmt.Sprintf(format, args...)}
}

// IsValidationError unwraps err into a ValidationError, or nil.
func IsValidationError(err error) *ValidationError {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr
	}
	return nil
}

// ExtractionError marks an upstream extraction failure, distinct from
// validation because the cause is external.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// IsExtractionError unwraps err into an ExtractionError, or nil.
func IsExtractionError(err error) *ExtractionError {
	var extractionErr *ExtractionError
	if errors.As(err, &extractionErr) {
		return extractionErr
	}
	return nil
}
