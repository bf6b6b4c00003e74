package ledger

import (
	"context"

	"github.com/shopspring/decimal"
)

// ServiceOption configures a Service instance.
type ServiceOption func(*Service)

// OperationLogger records domain-level events emitted by Service operations.
type OperationLogger interface {
	LogOperation(ctx context.Context, entry OperationLog)
}

// OperationLog describes a state-changing ledger operation.
type OperationLog struct {
	Operation      string
	AccountID      AccountID
	ProductID      ProductID
	TransactionID  TransactionID
	Amount         decimal.Decimal
	IdempotencyKey IdempotencyKey
	Status         string
	Error          error
}

// WithOperationLogger wires a logger that receives callbacks for every operation.
func WithOperationLogger(logger OperationLogger) ServiceOption {
	return func(service *Service) {
		service.logger = logger
	}
}

// WithEventPublisher wires a publisher notified after each committed transaction change.
func WithEventPublisher(publisher EventPublisher) ServiceOption {
	return func(service *Service) {
		service.publisher = publisher
	}
}

// WithPendingPurchases makes purchases start pending until settled by fulfillment.
func WithPendingPurchases() ServiceOption {
	return func(service *Service) {
		service.purchaseStatus = TransactionStatusPending
	}
}

// WithReferenceGenerator overrides how top-up references are generated when none is supplied.
func WithReferenceGenerator(generate func() (string, error)) ServiceOption {
	return func(service *Service) {
		if generate != nil {
			service.referenceFn = generate
		}
	}
}
