package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassifier_Classify(t *testing.T) {
	c := NewErrorClassifier()

	testCases := []struct {
		err      error
		expected ErrorType
	}{
		{nil, ""},
		{errors.New("UNIQUE constraint failed: events.id"), DuplicateKeyError},
		{errors.New("database is locked"), LockError},
		{errors.New("read tcp: i/o timeout"), TransientError},
		{errors.New("sql: database is closed"), ConnectionError},
		{errors.New("NOT NULL constraint failed: transactions.type"), ConstraintError},
		{errors.New("something else"), UnknownError},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, c.Classify(tc.err), "%v", tc.err)
	}
}
