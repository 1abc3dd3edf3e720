package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrTransactionNotFound.Error() != "transaction not found" {
		t.Errorf("ErrTransactionNotFound has unexpected message: %s", ErrTransactionNotFound.Error())
	}
	if ErrNoPendingOrders.Error() != "no pending orders found to export" {
		t.Errorf("ErrNoPendingOrders has unexpected message: %s", ErrNoPendingOrders.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidRequest", ErrInvalidRequest, 4000},
		{"InvalidDeliveryStatus", ErrInvalidDeliveryStatus, 4001},
		{"NegativeAmount", ErrNegativeAmount, 4002},
		{"Forbidden", ErrForbidden, 4030},
		{"TransactionNotFound", ErrTransactionNotFound, 4040},
		{"NoPendingOrders", ErrNoPendingOrders, 4041},
		{"IllegalTransition", ErrIllegalTransition, 4090},
		{"ExportInProgress", ErrExportInProgress, 4092},
		{"ClaimConflict", ErrClaimConflict, 5002},
		{"DatabaseQuery", ErrDatabaseQuery, 5001},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrTransactionNotFound), 4040},
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

func TestDeliveryTransitionError(t *testing.T) {
	err := NewDeliveryTransitionError("REF-1", "delivered", "pending", ErrIllegalTransition)

	expected := "delivery update rejected for REF-1 (delivered -> pending): illegal delivery status transition"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}
	if !errors.Is(err, ErrIllegalTransition) {
		t.Error("expected errors.Is to match ErrIllegalTransition")
	}
	if !IsConflictError(err) {
		t.Error("expected transition error to be a conflict")
	}

	var typed *DeliveryTransitionError
	if !errors.As(err, &typed) {
		t.Fatal("expected errors.As to extract DeliveryTransitionError")
	}
	fields := typed.LogFields()
	if fields["error_code"] != CodeIllegalTransition {
		t.Errorf("error_code = %v, want %d", fields["error_code"], CodeIllegalTransition)
	}
}

func TestClaimConflictError(t *testing.T) {
	err := NewClaimConflictError(3, 2)

	if !errors.Is(err, ErrClaimConflict) {
		t.Error("expected errors.Is to match ErrClaimConflict")
	}
	if err.Error() != "batch claim updated 2 of 3 captured orders" {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if IsConflictError(err) {
		t.Error("claim conflict is an operational failure, not a client conflict")
	}
}

func TestNotFoundError(t *testing.T) {
	err := fmt.Errorf("lookup: %w", NewNotFoundError("REF-404"))

	if !IsNotFoundError(err) {
		t.Error("expected wrapped NotFoundError to be a not found error")
	}
	if ErrorCode(err) != CodeTransactionNotFound {
		t.Errorf("ErrorCode = %d, want %d", ErrorCode(err), CodeTransactionNotFound)
	}
}

func TestDatabaseError(t *testing.T) {
	driverErr := errors.New("connection reset by peer")
	err := NewDatabaseError("count transactions", ErrDatabaseConnection, driverErr)

	if !errors.Is(err, ErrDatabaseConnection) {
		t.Error("expected errors.Is to match the classification")
	}
	if !errors.Is(err, driverErr) {
		t.Error("expected errors.Is to match the driver error")
	}
	if ErrorCode(err) != CodeDatabase {
		t.Errorf("ErrorCode = %d, want %d", ErrorCode(err), CodeDatabase)
	}
}

func TestHelpers(t *testing.T) {
	if !IsEmptyBatchError(fmt.Errorf("export: %w", ErrNoPendingOrders)) {
		t.Error("expected empty batch error")
	}
	if !IsValidationError(ErrInvalidDeliveryStatus) {
		t.Error("expected validation error")
	}
	if IsValidationError(ErrTransactionNotFound) {
		t.Error("not found is not a validation error")
	}
	if !IsDuplicateTransactionError(ErrDuplicateTransaction) {
		t.Error("expected duplicate transaction error")
	}
}
