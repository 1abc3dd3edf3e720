package database

import (
	"errors"

	errs "github.com/jbdata/ledger-engine/internal/domain/error"
	"github.com/jbdata/ledger-engine/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// ErrorMapper maps connection-level database errors to domain errors
type ErrorMapper struct {
	classifier *repository.ErrorClassifier
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{classifier: repository.NewErrorClassifier()}
}

// MapError maps a database error raised by operation to a domain error
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrTransactionNotFound
	}
	return m.classifier.Wrap(operation, err)
}

// IsTransient reports whether retrying the operation may succeed
func (m *ErrorMapper) IsTransient(err error) bool {
	switch m.classifier.Classify(err) {
	case repository.TransientError, repository.LockError, repository.ConnectionError:
		return true
	}
	return false
}
