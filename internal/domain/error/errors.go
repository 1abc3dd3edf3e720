package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest        = 4000
	CodeInvalidDeliveryStatus = 4001
	CodeInvalidTransaction    = 4002
	CodeUnauthorized          = 4010
	CodeForbidden             = 4030
	CodeTransactionNotFound   = 4040
	CodeNoPendingOrders       = 4041
	CodeIllegalTransition     = 4090
	CodePaymentNotSuccessful  = 4091
	CodeExportInProgress      = 4092
	CodeDuplicateTransaction  = 4093

	// 5xxx - Server errors
	CodeInternalServer    = 5000
	CodeDatabase          = 5001
	CodeClaimConflict     = 5002
	CodeTransactionFailed = 5003
)

// Base error types
var (
	// ErrTransactionNotFound is returned when no transaction carries the requested reference
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNoPendingOrders is the empty-batch signal of the export workflow
	ErrNoPendingOrders = errors.New("no pending orders found to export")

	// ErrInvalidDeliveryStatus is returned for a delivery status outside the known set
	ErrInvalidDeliveryStatus = errors.New("invalid delivery status")

	// ErrInvalidPaymentStatus is returned for a payment status outside the known set
	ErrInvalidPaymentStatus = errors.New("invalid payment status")

	// ErrInvalidReference is returned when a transaction reference is empty
	ErrInvalidReference = errors.New("transaction reference cannot be empty")

	// ErrNegativeAmount is returned when a monetary field is negative
	ErrNegativeAmount = errors.New("monetary amount cannot be negative")

	// ErrIllegalTransition is returned in strict mode for a move outside the transition table
	ErrIllegalTransition = errors.New("illegal delivery status transition")

	// ErrPaymentNotSuccessful is returned in strict mode when the payment did not succeed
	ErrPaymentNotSuccessful = errors.New("delivery updates require a successful payment")

	// ErrExportInProgress is returned when another export holds the export lock
	ErrExportInProgress = errors.New("an export is already in progress")

	// ErrClaimConflict is returned when a batch claim did not update every captured row
	ErrClaimConflict = errors.New("batch claim conflict")

	// ErrDuplicateTransaction is returned when a reference is already recorded
	ErrDuplicateTransaction = errors.New("transaction with this reference already exists")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnauthorized is returned when no principal accompanies the request
	ErrUnauthorized = errors.New("authentication required")

	// ErrForbidden is returned when the principal lacks the admin role
	ErrForbidden = errors.New("admin access required")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrDatabaseQuery is returned when a store query fails
	ErrDatabaseQuery = errors.New("database query error")

	// ErrTransactionFailed is returned when a store transaction cannot begin or commit
	ErrTransactionFailed = errors.New("store transaction failed")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInvalidDeliveryStatus):
		return CodeInvalidDeliveryStatus
	case errors.Is(err, ErrInvalidPaymentStatus),
		errors.Is(err, ErrInvalidReference),
		errors.Is(err, ErrNegativeAmount):
		return CodeInvalidTransaction
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrNoPendingOrders):
		return CodeNoPendingOrders
	case errors.Is(err, ErrIllegalTransition):
		return CodeIllegalTransition
	case errors.Is(err, ErrPaymentNotSuccessful):
		return CodePaymentNotSuccessful
	case errors.Is(err, ErrExportInProgress):
		return CodeExportInProgress
	case errors.Is(err, ErrDuplicateTransaction), errors.Is(err, ErrConstraintViolation):
		return CodeDuplicateTransaction
	case errors.Is(err, ErrClaimConflict):
		return CodeClaimConflict
	case errors.Is(err, ErrTransactionFailed):
		return CodeTransactionFailed
	case errors.Is(err, ErrDatabaseConnection), errors.Is(err, ErrDatabaseQuery):
		return CodeDatabase
	default:
		return CodeInternalServer
	}
}

// DeliveryTransitionError describes a delivery update rejected by strict mode
type DeliveryTransitionError struct {
	Reference string
	From      string
	To        string
	Err       error
}

// Error implements the error interface for DeliveryTransitionError
func (e *DeliveryTransitionError) Error() string {
	return fmt.Sprintf("delivery update rejected for %s (%s -> %s): %v", e.Reference, e.From, e.To, e.Err)
}

// Unwrap returns the underlying error
func (e *DeliveryTransitionError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *DeliveryTransitionError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "delivery_transition",
		"reference":  e.Reference,
		"from":       e.From,
		"to":         e.To,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewDeliveryTransitionError wraps cause with the attempted transition
func NewDeliveryTransitionError(reference, from, to string, cause error) error {
	return &DeliveryTransitionError{Reference: reference, From: from, To: to, Err: cause}
}

// ClaimConflictError reports a batch claim whose update count did not match the snapshot
type ClaimConflictError struct {
	Expected int
	Claimed  int64
}

// Error implements the error interface
func (e *ClaimConflictError) Error() string {
	return fmt.Sprintf("batch claim updated %d of %d captured orders", e.Claimed, e.Expected)
}

// Is checks if the target error is an ErrClaimConflict
func (e *ClaimConflictError) Is(target error) bool {
	return target == ErrClaimConflict
}

// LogFields returns a map of fields for structured logging
func (e *ClaimConflictError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "claim_conflict",
		"expected":   e.Expected,
		"claimed":    e.Claimed,
		"error_code": CodeClaimConflict,
	}
}

// NewClaimConflictError creates a claim conflict error
func NewClaimConflictError(expected int, claimed int64) error {
	return &ClaimConflictError{Expected: expected, Claimed: claimed}
}

// NotFoundError carries the reference that could not be resolved
type NotFoundError struct {
	Reference string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("transaction %q not found", e.Reference)
}

// Is checks if the target error is an ErrTransactionNotFound
func (e *NotFoundError) Is(target error) bool {
	return target == ErrTransactionNotFound
}

// NewNotFoundError creates a not-found error for reference
func NewNotFoundError(reference string) error {
	return &NotFoundError{Reference: reference}
}

// DatabaseError wraps a driver error with the operation that produced it
type DatabaseError struct {
	Operation string
	Kind      error
	Err       error
}

// Error implements the error interface
func (e *DatabaseError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Operation, e.Err)
}

// Unwrap exposes both the classification and the driver error
func (e *DatabaseError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// LogFields returns a map of fields for structured logging
func (e *DatabaseError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "database_error",
		"operation":  e.Operation,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Kind),
	}
}

// NewDatabaseError classifies err as kind for the given operation
func NewDatabaseError(operation string, kind, err error) error {
	return &DatabaseError{Operation: operation, Kind: kind, Err: err}
}

// IsNotFoundError checks if the error is a not found error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrTransactionNotFound)
}

// IsEmptyBatchError checks if the error is the export empty-batch signal
func IsEmptyBatchError(err error) bool {
	return errors.Is(err, ErrNoPendingOrders)
}

// IsValidationError checks if the error comes from malformed input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRequest) ||
		errors.Is(err, ErrInvalidDeliveryStatus) ||
		errors.Is(err, ErrInvalidPaymentStatus) ||
		errors.Is(err, ErrInvalidReference) ||
		errors.Is(err, ErrNegativeAmount)
}

// IsConflictError checks if the error is a rejected state change that the caller may resolve
func IsConflictError(err error) bool {
	return errors.Is(err, ErrIllegalTransition) ||
		errors.Is(err, ErrPaymentNotSuccessful) ||
		errors.Is(err, ErrExportInProgress)
}

// IsDuplicateTransactionError checks if the error is a duplicate reference error
func IsDuplicateTransactionError(err error) bool {
	return errors.Is(err, ErrDuplicateTransaction)
}
