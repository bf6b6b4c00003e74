package ledger

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// EventPublisher is notified after a transaction change has committed.
type EventPublisher interface {
	PublishTransaction(ctx context.Context, event TransactionEvent) error
}

// TransactionEvent describes a committed transaction change.
type TransactionEvent struct {
	Transaction Transaction
	// Balance is the account balance right after the change committed.
	Balance    decimal.Decimal
	OccurredAt time.Time
}

func (service *Service) publish(ctx context.Context, transaction Transaction, balance decimal.Decimal) {
	if service.publisher == nil {
		return
	}
	event := TransactionEvent{
		Transaction: transaction,
		Balance:     balance,
		OccurredAt:  service.nowFn(),
	}
	if err := service.publisher.PublishTransaction(ctx, event); err != nil {
		service.logOperation(ctx, OperationLog{
			Operation:     operationPublish,
			AccountID:     transaction.AccountID,
			TransactionID: transaction.ID,
			Amount:        transaction.Amount,
			Error:         err,
		})
	}
}
