// Package oplog writes ledger operation records to zap.
package oplog

import (
	"context"

	"github.com/MarkoPoloResearchLab/topup/pkg/ledger"
	"go.uber.org/zap"
)

const messageOperation = "ledger operation"

// Logger implements ledger.OperationLogger.
type Logger struct {
	logger *zap.Logger
}

var _ ledger.OperationLogger = (*Logger)(nil)

// New returns a Logger writing to logger; nil selects a no-op logger.
func New(logger *zap.Logger) *Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Logger{logger: logger.Named("ledger")}
}

// LogOperation writes failures at error level and everything else at info.
func (operationLogger *Logger) LogOperation(_ context.Context, entry ledger.OperationLog) {
	fields := Fields(entry)
	if entry.Error != nil {
		operationLogger.logger.Error(messageOperation, fields...)
		return
	}
	operationLogger.logger.Info(messageOperation, fields...)
}

// Fields renders an operation record; empty identifiers are omitted.
func Fields(entry ledger.OperationLog) []zap.Field {
	fields := []zap.Field{
		zap.String("operation", entry.Operation),
		zap.String("status", entry.Status),
	}
	if !entry.AccountID.IsZero() {
		fields = append(fields, zap.String("account_id", entry.AccountID.String()))
	}
	if !entry.ProductID.IsZero() {
		fields = append(fields, zap.String("product_id", entry.ProductID.String()))
	}
	if !entry.TransactionID.IsZero() {
		fields = append(fields, zap.String("transaction_id", entry.TransactionID.String()))
	}
	if !entry.Amount.IsZero() {
		fields = append(fields, zap.String("amount", ledger.FormatMoney(entry.Amount)))
	}
	if !entry.IdempotencyKey.IsZero() {
		fields = append(fields, zap.String("idempotency_key", entry.IdempotencyKey.String()))
	}
	if entry.Error != nil {
		fields = append(fields, zap.Error(entry.Error))
	}
	return fields
}
