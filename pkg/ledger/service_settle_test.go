package ledger

import (
	"context"
	"errors"
	"testing"
)

func newPendingPurchase(test *testing.T) (*stubStore, *Service, Account, Transaction) {
	test.Helper()
	store := newStubStore(test)
	account := store.seedAccount(test, "100")
	product := store.seedProduct(test, "40", true)
	service := mustNewService(test, store, WithPendingPurchases())
	transaction, err := service.Purchase(context.Background(), account.ID, product.ID, mustTarget(test, purchaseTarget), "", IdempotencyKey{})
	if err != nil {
		test.Fatalf("purchase: %v", err)
	}
	return store, service, account, transaction
}

func TestSettleOutcomes(test *testing.T) {
	test.Parallel()
	testCases := []struct {
		name        string
		outcome     TransactionStatus
		viaProcess  bool
		wantBalance string
	}{
		{name: "success keeps debit", outcome: TransactionStatusSuccess, wantBalance: "60"},
		{name: "failed refunds", outcome: TransactionStatusFailed, wantBalance: "100"},
		{name: "cancelled refunds", outcome: TransactionStatusCancelled, wantBalance: "100"},
		{name: "failed after processing refunds", outcome: TransactionStatusFailed, viaProcess: true, wantBalance: "100"},
	}
	for _, testCase := range testCases {
		testCase := testCase
		test.Run(testCase.name, func(test *testing.T) {
			test.Parallel()
			store, service, account, transaction := newPendingPurchase(test)
			if testCase.viaProcess {
				processing, err := service.MarkProcessing(context.Background(), transaction.ID)
				if err != nil {
					test.Fatalf("mark processing: %v", err)
				}
				if processing.Status != TransactionStatusProcessing {
					test.Fatalf("expected processing, got %s", processing.Status)
				}
			}
			settled, err := service.Settle(context.Background(), transaction.ID, testCase.outcome)
			if err != nil {
				test.Fatalf("settle: %v", err)
			}
			if settled.Status != testCase.outcome {
				test.Fatalf("expected %s, got %s", testCase.outcome, settled.Status)
			}
			assertBalance(test, store, account.ID, testCase.wantBalance)
			if store.transactionCount() != 1 {
				test.Fatalf("settlement must not append rows, got %d", store.transactionCount())
			}
		})
	}
}

func TestSettleIsTerminal(test *testing.T) {
	test.Parallel()
	store, service, account, transaction := newPendingPurchase(test)
	if _, err := service.Settle(context.Background(), transaction.ID, TransactionStatusFailed); err != nil {
		test.Fatalf("settle: %v", err)
	}
	replayed, err := service.Settle(context.Background(), transaction.ID, TransactionStatusFailed)
	if err != nil {
		test.Fatalf("same outcome replay: %v", err)
	}
	if replayed.Status != TransactionStatusFailed {
		test.Fatalf("expected failed, got %s", replayed.Status)
	}
	assertBalance(test, store, account.ID, "100")

	_, err = service.Settle(context.Background(), transaction.ID, TransactionStatusSuccess)
	if !errors.Is(err, ErrTransactionClosed) {
		test.Fatalf(errorMismatchMessage, ErrTransactionClosed, err)
	}
	_, err = service.MarkProcessing(context.Background(), transaction.ID)
	if !errors.Is(err, ErrTransactionClosed) {
		test.Fatalf(errorMismatchMessage, ErrTransactionClosed, err)
	}
}

func TestSettleRejectsTopUpsAndBadOutcomes(test *testing.T) {
	test.Parallel()
	store := newStubStore(test)
	account := store.seedAccount(test, "0")
	service := mustNewService(test, store)
	if _, err := service.TopUp(context.Background(), account.ID, mustPositiveAmount(test, "10"), IdempotencyKey{}); err != nil {
		test.Fatalf("top up: %v", err)
	}
	topUp := store.allTransactions()[0]

	_, err := service.Settle(context.Background(), topUp.ID, TransactionStatusFailed)
	if !errors.Is(err, ErrTransactionClosed) {
		test.Fatalf(errorMismatchMessage, ErrTransactionClosed, err)
	}
	_, err = service.Settle(context.Background(), topUp.ID, TransactionStatusProcessing)
	if !errors.Is(err, ErrInvalidOutcome) {
		test.Fatalf(errorMismatchMessage, ErrInvalidOutcome, err)
	}
	_, err = service.Settle(context.Background(), TransactionID{value: "missing"}, TransactionStatusSuccess)
	if !errors.Is(err, ErrTransactionNotFound) {
		test.Fatalf(errorMismatchMessage, ErrTransactionNotFound, err)
	}
	assertBalance(test, store, account.ID, "10")
}

func TestSettleRollsBackRefundOnStatusFailure(test *testing.T) {
	test.Parallel()
	store, service, account, transaction := newPendingPurchase(test)
	store.failures().updateStatus = errStoreFailure

	_, err := service.Settle(context.Background(), transaction.ID, TransactionStatusCancelled)
	if !errors.Is(err, errStoreFailure) {
		test.Fatalf(errorMismatchMessage, errStoreFailure, err)
	}
	assertBalance(test, store, account.ID, "60")
}

func TestMarkProcessingReplay(test *testing.T) {
	test.Parallel()
	_, service, _, transaction := newPendingPurchase(test)
	for attempt := 0; attempt < 2; attempt++ {
		processing, err := service.MarkProcessing(context.Background(), transaction.ID)
		if err != nil {
			test.Fatalf("attempt %d: %v", attempt, err)
		}
		if processing.Status != TransactionStatusProcessing {
			test.Fatalf("expected processing, got %s", processing.Status)
		}
	}
}
