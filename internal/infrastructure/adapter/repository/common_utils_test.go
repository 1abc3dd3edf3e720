package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	errs "github.com/jbdata/ledger-engine/internal/domain/error"
)

func TestErrorClassifier_Wrap(t *testing.T) {
	classifier := NewErrorClassifier()

	testCases := []struct {
		name string
		err  error
		kind error
	}{
		{"value too long", &pgconn.PgError{Code: "22001", Message: "value too long for type character varying(3)"}, errs.ErrInvalidRequest},
		{"numeric overflow", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "22003", Message: "numeric field overflow"}), errs.ErrInvalidRequest},
		{"data error seen only as text", errors.New("ERROR: numeric field overflow (SQLSTATE 22003)"), errs.ErrInvalidRequest},
		{"duplicate key", gorm.ErrDuplicatedKey, errs.ErrDuplicateTransaction},
		{"unique violation on sqlite", errors.New("UNIQUE constraint failed: transactions.reference"), errs.ErrDuplicateTransaction},
		{"connection refused", errors.New("dial tcp: connection refused"), errs.ErrDatabaseConnection},
		{"not null", errors.New("NOT NULL constraint failed: transactions.status"), errs.ErrConstraintViolation},
		{"anything else", errors.New("syntax error at or near"), errs.ErrDatabaseQuery},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := classifier.Wrap("create transaction", tc.err)

			assert.ErrorIs(t, err, tc.kind)
			assert.ErrorIs(t, err, tc.err)
		})
	}

	t.Run("Data errors are validation errors", func(t *testing.T) {
		err := classifier.Wrap("create transaction", &pgconn.PgError{Code: "22001"})

		assert.True(t, errs.IsValidationError(err))
		assert.Equal(t, DataError, classifier.Classify(&pgconn.PgError{Code: "22001"}))
	})

	t.Run("Other SQLSTATE classes are not data errors", func(t *testing.T) {
		assert.False(t, classifier.IsDataError(&pgconn.PgError{Code: "23505"}))
		assert.False(t, classifier.IsDataError(nil))
	})
}
