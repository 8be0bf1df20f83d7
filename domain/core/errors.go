package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	ErrNotFound      = errors.New("resource not found")
	ErrUnknownSite   = fmt.Errorf("%w: launch site", ErrNotFound)
	ErrMissingColumn = errors.New("required column missing")
	ErrInvalidRecord = errors.New("invalid launch record")
	ErrNoRecords     = errors.New("no launch records")
	ErrInvertedRange = errors.New("payload range low bound exceeds high bound")
)

// NewMissingColumnError names the columns a source lacks.
func NewMissingColumnError(source string, columns []string) error {
	return fmt.Errorf("%w in %s: %v", ErrMissingColumn, source, columns)
}

// NewInvalidRecordError wraps a row-level failure with its 1-based row number.
func NewInvalidRecordError(row int, err error) error {
	return fmt.Errorf("%w at row %d: %v", ErrInvalidRecord, row, err)
}

// IsNotFoundError reports whether err is, or wraps, ErrNotFound.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsSchemaError reports whether err came from malformed source data.
func IsSchemaError(err error) bool {
	return errors.Is(err, ErrMissingColumn) ||
		errors.Is(err, ErrInvalidRecord) ||
		errors.Is(err, ErrNoRecords)
}
