package core

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors - centralized error definitions
var (
	// Input schema errors
	ErrDataFormat     = errors.New("malformed dataset")
	ErrMissingColumns = fmt.Errorf("%w: required columns absent", ErrDataFormat)
	ErrEmptyDataset   = fmt.Errorf("%w: no data rows", ErrDataFormat)

	// Statistical preconditions
	ErrInsufficientData = errors.New("insufficient data for analysis")

	// Contract violations
	ErrNumericDomain = errors.New("numeric domain violation")
)

// Error constructors with context
func NewDataFormatError(detail string) error {
	return fmt.Errorf("%w: %s", ErrDataFormat, detail)
}

func NewMissingColumnsError(columns []string) error {
	return fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(columns, ", "))
}

// NewInsufficientDataError reports which group broke a test's minimum-size
// precondition so callers never have to guess.
func NewInsufficientDataError(group string, got, need int) error {
	return fmt.Errorf("%w: group %q has %d observations, need at least %d", ErrInsufficientData, group, got, need)
}

func NewInsufficientPairsError(got, need int) error {
	return fmt.Errorf("%w: %d paired observations, need at least %d", ErrInsufficientData, got, need)
}

func NewNumericError(operation string, value float64) error {
	return fmt.Errorf("%w: %s of %g", ErrNumericDomain, operation, value)
}

func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

// Error checking helpers
func IsDataFormatError(err error) bool {
	return errors.Is(err, ErrDataFormat)
}

func IsInsufficientDataError(err error) bool {
	return errors.Is(err, ErrInsufficientData)
}

func IsNumericError(err error) bool {
	return errors.Is(err, ErrNumericDomain)
}
