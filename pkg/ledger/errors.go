package ledger

import (
	"errors"
	"fmt"
)

// Umbrella error values; the specific errors below wrap them so callers can match either.
var (
	ErrNotFound         = errors.New("not found")
	ErrInactiveResource = errors.New("inactive")
)

// Domain-level error values returned by the ledger service.
var (
	ErrAccountNotFound          = fmt.Errorf("account %w", ErrNotFound)
	ErrProductNotFound          = fmt.Errorf("product %w", ErrNotFound)
	ErrProviderNotFound         = fmt.Errorf("provider %w", ErrNotFound)
	ErrTransactionNotFound      = fmt.Errorf("transaction %w", ErrNotFound)
	ErrProductInactive          = fmt.Errorf("product %w", ErrInactiveResource)
	ErrInsufficientFunds        = errors.New("insufficient funds")
	ErrConflict                 = errors.New("concurrent modification")
	ErrDuplicateIdempotencyKey  = errors.New("duplicate idempotency key")
	ErrAccountExists            = errors.New("account already exists")
	ErrTransactionClosed        = errors.New("transaction closed")
	ErrInvalidTransition        = errors.New("invalid status transition")
	ErrInvalidAccountID         = errors.New("invalid account id")
	ErrInvalidProductID         = errors.New("invalid product id")
	ErrInvalidProviderID        = errors.New("invalid provider id")
	ErrInvalidTransactionID     = errors.New("invalid transaction id")
	ErrInvalidIdempotencyKey    = errors.New("invalid idempotency key")
	ErrInvalidTarget            = errors.New("invalid target")
	ErrInvalidAmount            = errors.New("invalid amount")
	ErrInvalidCategory          = errors.New("invalid category")
	ErrInvalidTransactionKind   = errors.New("invalid transaction kind")
	ErrInvalidTransactionStatus = errors.New("invalid transaction status")
	ErrInvalidOutcome           = errors.New("invalid settlement outcome")
	ErrInvalidPagination        = errors.New("invalid pagination")
	ErrInvalidEmail             = errors.New("invalid email")
	ErrInvalidName              = errors.New("invalid name")
	ErrInvalidMetadataJSON      = errors.New("invalid metadata json")
	ErrInvalidServiceConfig     = errors.New("invalid service config")
)

// IsRetryable reports whether the failure is transient and the whole operation may be retried.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsValidationError reports whether err stems from rejected caller input.
func IsValidationError(err error) bool {
	for _, candidate := range []error{
		ErrInvalidAccountID,
		ErrInvalidProductID,
		ErrInvalidProviderID,
		ErrInvalidTransactionID,
		ErrInvalidIdempotencyKey,
		ErrInvalidTarget,
		ErrInvalidAmount,
		ErrInvalidCategory,
		ErrInvalidTransactionKind,
		ErrInvalidTransactionStatus,
		ErrInvalidOutcome,
		ErrInvalidPagination,
		ErrInvalidEmail,
		ErrInvalidName,
		ErrInvalidMetadataJSON,
	} {
		if errors.Is(err, candidate) {
			return true
		}
	}
	return false
}

// OperationError wraps a failure with a stable operation code.
type OperationError struct {
	operation string
	subject   string
	code      string
	err       error
}

// Error returns the formatted error message.
func (operationError OperationError) Error() string {
	return fmt.Sprintf("%s.%s.%s: %v", operationError.operation, operationError.subject, operationError.code, operationError.err)
}

// Unwrap returns the underlying error.
func (operationError OperationError) Unwrap() error {
	return operationError.err
}

// Operation returns the operation segment.
func (operationError OperationError) Operation() string {
	return operationError.operation
}

// Subject returns the subject segment.
func (operationError OperationError) Subject() string {
	return operationError.subject
}

// Code returns the stable error code segment.
func (operationError OperationError) Code() string {
	return operationError.code
}

// WrapError wraps an error with operation, subject, and code metadata.
func WrapError(operation string, subject string, code string, err error) error {
	if err == nil {
		return nil
	}
	return OperationError{
		operation: operation,
		subject:   subject,
		code:      code,
		err:       err,
	}
}
