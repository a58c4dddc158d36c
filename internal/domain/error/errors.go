package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidAmount      = 4002
	CodeInvalidRequest     = 4003
	CodeNotFound           = 4040

	// 5xxx - Server errors
	CodeInternalServer = 5000
	CodeStorage        = 5003
)

// Base error types
var (
	// ErrInvalidAmount is returned when a payment amount is empty, non-numeric or not positive
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrStorage wraps failures of the underlying record store
	ErrStorage = errors.New("storage error")

	// ErrStoreClosed is returned when an operation reaches a store that was closed
	ErrStoreClosed = errors.New("store is closed")

	// ErrInternalServer is returned for unexpected failures
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrTransactionNotFound):
		return CodeNotFound
	case errors.Is(err, ErrStorage), errors.Is(err, ErrStoreClosed):
		return CodeStorage
	default:
		return CodeInternalServer
	}
}

// StorageError describes a failed store operation
type StorageError struct {
	Operation string
	Table     string
	Err       error
}

// Error implements the error interface for StorageError
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s on %s failed: %v", e.Operation, e.Table, e.Err)
}

// Unwrap returns the underlying error
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is reports StorageError as an ErrStorage
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// LogFields returns a map of fields for structured logging
func (e *StorageError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "storage_error",
		"operation":  e.Operation,
		"table":      e.Table,
		"error":      e.Err.Error(),
		"error_code": CodeStorage,
	}
}

// NewStorageError creates a storage error for the given operation and table
func NewStorageError(operation, table string, err error) error {
	return &StorageError{
		Operation: operation,
		Table:     table,
		Err:       err,
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrTransactionNotFound)
}

// IsStorageError checks if the error came from the record store
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorage)
}
