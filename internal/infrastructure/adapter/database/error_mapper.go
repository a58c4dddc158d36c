package database

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	errs "github.com/amirhossein-jamali/pocket-wallet/internal/domain/error"
)

// Table names used in error reports
const (
	TableTransactions   = "transactions"
	TableEvents         = "events"
	TableSchemaVersions = "schema_versions"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error. Failures keep the
// original error reachable through errors.Unwrap.
func (m *ErrorMapper) MapError(err error, operation, table string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if table == TableTransactions {
			return errs.ErrTransactionNotFound
		}
		return errs.NewStorageError(operation, table, err)
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return errs.NewStorageError(operation, table, err)
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "database is closed") ||
		strings.Contains(errMsg, "sql: database is closed") {
		return errs.ErrStoreClosed
	}

	return errs.NewStorageError(operation, table, err)
}
