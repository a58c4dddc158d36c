package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInvalidAmount.Error() != "invalid amount" {
		t.Errorf("ErrInvalidAmount has unexpected message: %s", ErrInvalidAmount.Error())
	}
	if ErrTransactionNotFound.Error() != "transaction not found" {
		t.Errorf("ErrTransactionNotFound has unexpected message: %s", ErrTransactionNotFound.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"InvalidRequest", ErrInvalidRequest, 4003},
		{"NotFound", ErrTransactionNotFound, 4040},
		{"Storage", NewStorageError("insert", "transactions", errors.New("disk full")), 5003},
		{"StoreClosed", ErrStoreClosed, 5003},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidAmount), 4002},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestStorageError(t *testing.T) {
	base := errors.New("database is locked")
	err := NewStorageError("query", "events", base)

	expected := "storage query on events failed: database is locked"
	if err.Error() != expected {
		t.Errorf("StorageError.Error() = %s, want %s", err.Error(), expected)
	}
	if !errors.Is(err, ErrStorage) {
		t.Error("StorageError should match ErrStorage")
	}
	if !errors.Is(err, base) {
		t.Error("StorageError should unwrap to the cause")
	}
	if !IsStorageError(fmt.Errorf("outer: %w", err)) {
		t.Error("IsStorageError should see through wrapping")
	}

	var se *StorageError
	if !errors.As(err, &se) {
		t.Fatal("errors.As should find StorageError")
	}
	fields := se.LogFields()
	if fields["table"] != "events" || fields["operation"] != "query" {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestIsNotFoundError(t *testing.T) {
	if !IsNotFoundError(fmt.Errorf("lookup: %w", ErrTransactionNotFound)) {
		t.Error("wrapped not found should be detected")
	}
	if IsNotFoundError(ErrInvalidAmount) {
		t.Error("invalid amount is not a not-found error")
	}
}
