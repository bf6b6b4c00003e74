package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
)

const (
	purchaseTarget = "081234567890"
	purchaseNotes  = "monthly credit"
)

func TestPurchaseDebitsBalanceAndRecordsTransaction(test *testing.T) {
	test.Parallel()
	store := newStubStore(test)
	account := store.seedAccount(test, "50000")
	product := store.seedProduct(test, "25000", true)
	service := mustNewService(test, store)

	transaction, err := service.Purchase(context.Background(), account.ID, product.ID, mustTarget(test, purchaseTarget), purchaseNotes, IdempotencyKey{})
	if err != nil {
		test.Fatalf("purchase: %v", err)
	}
	assertBalance(test, store, account.ID, "25000")
	if store.transactionCount() != 1 {
		test.Fatalf("expected one transaction, got %d", store.transactionCount())
	}
	if !transaction.Amount.Equal(mustDecimal(test, "25000")) {
		test.Fatalf("expected amount 25000, got %s", transaction.Amount)
	}
	if transaction.Status != TransactionStatusSuccess || transaction.Kind != TransactionKindPurchase {
		test.Fatalf("unexpected transaction: %+v", transaction)
	}
	if transaction.ProductID != product.ID || transaction.Target != purchaseTarget || transaction.Notes != purchaseNotes {
		test.Fatalf("unexpected transaction fields: %+v", transaction)
	}
	if !transaction.SignedAmount().Equal(mustDecimal(test, "-25000")) {
		test.Fatalf("expected signed amount -25000, got %s", transaction.SignedAmount())
	}
}

func TestPurchaseInsufficientFundsLeavesNoTrace(test *testing.T) {
	test.Parallel()
	store := newStubStore(test)
	account := store.seedAccount(test, "10000")
	product := store.seedProduct(test, "25000", true)
	service := mustNewService(test, store)

	_, err := service.Purchase(context.Background(), account.ID, product.ID, mustTarget(test, purchaseTarget), "", IdempotencyKey{})
	if !errors.Is(err, ErrInsufficientFunds) {
		test.Fatalf(errorMismatchMessage, ErrInsufficientFunds, err)
	}
	assertBalance(test, store, account.ID, "10000")
	if store.transactionCount() != 0 {
		test.Fatalf("expected no transaction rows, got %d", store.transactionCount())
	}
}

func TestPurchaseInactiveProductFailsRegardlessOfBalance(test *testing.T) {
	test.Parallel()
	testCases := []struct {
		name    string
		balance string
	}{
		{name: "rich account", balance: "1000000"},
		{name: "empty account", balance: "0"},
	}
	for _, testCase := range testCases {
		testCase := testCase
		test.Run(testCase.name, func(test *testing.T) {
			test.Parallel()
			store := newStubStore(test)
			account := store.seedAccount(test, testCase.balance)
			product := store.seedProduct(test, "25000", false)
			service := mustNewService(test, store)

			_, err := service.Purchase(context.Background(), account.ID, product.ID, mustTarget(test, purchaseTarget), "", IdempotencyKey{})
			if !errors.Is(err, ErrInactiveResource) || !errors.Is(err, ErrProductInactive) {
				test.Fatalf(errorMismatchMessage, ErrProductInactive, err)
			}
			assertBalance(test, store, account.ID, testCase.balance)
			if store.transactionCount() != 0 {
				test.Fatalf("expected no transaction rows")
			}
		})
	}
}

func TestPurchaseNotFound(test *testing.T) {
	test.Parallel()
	store := newStubStore(test)
	account := store.seedAccount(test, "100")
	product := store.seedProduct(test, "10", true)
	service := mustNewService(test, store)

	_, err := service.Purchase(context.Background(), account.ID, ProductID{value: "missing"}, mustTarget(test, purchaseTarget), "", IdempotencyKey{})
	if !errors.Is(err, ErrProductNotFound) || !errors.Is(err, ErrNotFound) {
		test.Fatalf(errorMismatchMessage, ErrProductNotFound, err)
	}
	_, err = service.Purchase(context.Background(), AccountID{value: "missing"}, product.ID, mustTarget(test, purchaseTarget), "", IdempotencyKey{})
	if !errors.Is(err, ErrAccountNotFound) || !errors.Is(err, ErrNotFound) {
		test.Fatalf(errorMismatchMessage, ErrAccountNotFound, err)
	}
}

func TestPurchaseRejectsEmptyTarget(test *testing.T) {
	test.Parallel()
	store := newStubStore(test)
	account := store.seedAccount(test, "100")
	product := store.seedProduct(test, "10", true)
	service := mustNewService(test, store)

	_, err := service.Purchase(context.Background(), account.ID, product.ID, Target{}, "", IdempotencyKey{})
	if !errors.Is(err, ErrInvalidTarget) {
		test.Fatalf(errorMismatchMessage, ErrInvalidTarget, err)
	}
	assertBalance(test, store, account.ID, "100")
}

func TestPurchaseReplaysIdempotencyKey(test *testing.T) {
	test.Parallel()
	store := newStubStore(test)
	account := store.seedAccount(test, "100")
	product := store.seedProduct(test, "30", true)
	logger := &recorderLogger{}
	service := mustNewService(test, store, WithOperationLogger(logger))
	key := mustIdempotencyKey(test, "purchase-1")

	first, err := service.Purchase(context.Background(), account.ID, product.ID, mustTarget(test, purchaseTarget), "", key)
	if err != nil {
		test.Fatalf("first purchase: %v", err)
	}
	second, err := service.Purchase(context.Background(), account.ID, product.ID, mustTarget(test, purchaseTarget), "", key)
	if err != nil {
		test.Fatalf("replayed purchase: %v", err)
	}
	if first.ID != second.ID {
		test.Fatalf("expected replay to return %s, got %s", first.ID, second.ID)
	}
	if first.ReferenceID != key.String() {
		test.Fatalf("expected reference %q, got %q", key.String(), first.ReferenceID)
	}
	assertBalance(test, store, account.ID, "70")
	if store.transactionCount() != 1 {
		test.Fatalf("expected one transaction, got %d", store.transactionCount())
	}
	if got := logger.statuses(); len(got) != 2 || got[0] != operationStatusOK || got[1] != operationStatusReplayed {
		test.Fatalf("unexpected log statuses %v", got)
	}
}

func TestPurchaseReplayIgnoresLaterCatalogChanges(test *testing.T) {
	test.Parallel()
	store := newStubStore(test)
	account := store.seedAccount(test, "100")
	product := store.seedProduct(test, "30", true)
	service := mustNewService(test, store)
	key := mustIdempotencyKey(test, "purchase-catalog")

	first, err := service.Purchase(context.Background(), account.ID, product.ID, mustTarget(test, purchaseTarget), "", key)
	if err != nil {
		test.Fatalf("purchase: %v", err)
	}
	if _, err := service.SetProductActive(context.Background(), product.ID, false); err != nil {
		test.Fatalf("deactivate: %v", err)
	}
	replayed, err := service.Purchase(context.Background(), account.ID, product.ID, mustTarget(test, purchaseTarget), "", key)
	if err != nil {
		test.Fatalf("replay after deactivation: %v", err)
	}
	if replayed.ID != first.ID || !replayed.Amount.Equal(first.Amount) {
		test.Fatalf("expected stored transaction, got %+v", replayed)
	}
}

func TestPurchaseKeyOwnedByAnotherAccount(test *testing.T) {
	test.Parallel()
	store := newStubStore(test)
	owner := store.seedAccount(test, "100")
	other := store.seedAccount(test, "100")
	product := store.seedProduct(test, "30", true)
	service := mustNewService(test, store)
	key := mustIdempotencyKey(test, "shared-key")

	if _, err := service.Purchase(context.Background(), owner.ID, product.ID, mustTarget(test, purchaseTarget), "", key); err != nil {
		test.Fatalf("purchase: %v", err)
	}
	_, err := service.Purchase(context.Background(), other.ID, product.ID, mustTarget(test, purchaseTarget), "", key)
	if !errors.Is(err, ErrDuplicateIdempotencyKey) {
		test.Fatalf(errorMismatchMessage, ErrDuplicateIdempotencyKey, err)
	}
	assertBalance(test, store, other.ID, "100")
}

func TestPurchaseCapturesPriceSnapshot(test *testing.T) {
	test.Parallel()
	store := newStubStore(test)
	account := store.seedAccount(test, "100")
	product := store.seedProduct(test, "30", true)
	service := mustNewService(test, store)

	transaction, err := service.Purchase(context.Background(), account.ID, product.ID, mustTarget(test, purchaseTarget), "", IdempotencyKey{})
	if err != nil {
		test.Fatalf("purchase: %v", err)
	}
	if _, err := service.SetProductPrice(context.Background(), product.ID, mustPositiveAmount(test, "45")); err != nil {
		test.Fatalf("reprice: %v", err)
	}
	stored, err := service.Transaction(context.Background(), transaction.ID)
	if err != nil {
		test.Fatalf("transaction: %v", err)
	}
	if !stored.Amount.Equal(mustDecimal(test, "30")) {
		test.Fatalf("expected charged price 30, got %s", stored.Amount)
	}
	var snapshot map[string]string
	if err := json.Unmarshal([]byte(stored.Metadata.String()), &snapshot); err != nil {
		test.Fatalf("metadata: %v", err)
	}
	if snapshot["price"] != "30.00" || snapshot["product_name"] != product.Name {
		test.Fatalf("unexpected snapshot %v", snapshot)
	}
}

func TestPurchaseWithPendingPurchases(test *testing.T) {
	test.Parallel()
	store := newStubStore(test)
	account := store.seedAccount(test, "100")
	product := store.seedProduct(test, "30", true)
	service := mustNewService(test, store, WithPendingPurchases())

	transaction, err := service.Purchase(context.Background(), account.ID, product.ID, mustTarget(test, purchaseTarget), "", IdempotencyKey{})
	if err != nil {
		test.Fatalf("purchase: %v", err)
	}
	if transaction.Status != TransactionStatusPending {
		test.Fatalf("expected pending, got %s", transaction.Status)
	}
	assertBalance(test, store, account.ID, "70")
}

func TestPurchaseCancelledContextRollsBack(test *testing.T) {
	test.Parallel()
	store := newStubStore(test)
	account := store.seedAccount(test, "100")
	product := store.seedProduct(test, "30", true)
	service := mustNewService(test, store)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.Purchase(ctx, account.ID, product.ID, mustTarget(test, purchaseTarget), "", mustIdempotencyKey(test, "cancelled"))
	if !errors.Is(err, context.Canceled) {
		test.Fatalf(errorMismatchMessage, context.Canceled, err)
	}
	assertBalance(test, store, account.ID, "100")
	if store.transactionCount() != 0 {
		test.Fatalf("expected rollback to drop the transaction row")
	}
}

func TestPurchaseFailureAfterDebitRollsBack(test *testing.T) {
	test.Parallel()
	store := newStubStore(test)
	account := store.seedAccount(test, "100")
	product := store.seedProduct(test, "30", true)
	store.failures().insertTransaction = errStoreFailure
	service := mustNewService(test, store)

	_, err := service.Purchase(context.Background(), account.ID, product.ID, mustTarget(test, purchaseTarget), "", IdempotencyKey{})
	if !errors.Is(err, errStoreFailure) {
		test.Fatalf(errorMismatchMessage, errStoreFailure, err)
	}
	assertBalance(test, store, account.ID, "100")
}

func TestConcurrentPurchasesNeverOverdraw(test *testing.T) {
	test.Parallel()
	const (
		attempts   = 20
		affordable = 7
	)
	store := newStubStore(test)
	account := store.seedAccount(test, "70000")
	product := store.seedProduct(test, "10000", true)
	service := mustNewService(test, store)
	target := mustTarget(test, purchaseTarget)

	var (
		waitGroup    sync.WaitGroup
		resultsMutex sync.Mutex
		successes    int
		insufficient int
		unexpected   []error
	)
	start := make(chan struct{})
	for attempt := 0; attempt < attempts; attempt++ {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			<-start
			_, err := service.Purchase(context.Background(), account.ID, product.ID, target, "", IdempotencyKey{})
			resultsMutex.Lock()
			defer resultsMutex.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, ErrInsufficientFunds):
				insufficient++
			default:
				unexpected = append(unexpected, err)
			}
		}()
	}
	close(start)
	waitGroup.Wait()

	if len(unexpected) > 0 {
		test.Fatalf("unexpected errors: %v", unexpected)
	}
	if successes != affordable || insufficient != attempts-affordable {
		test.Fatalf("expected %d successes and %d failures, got %d and %d", affordable, attempts-affordable, successes, insufficient)
	}
	assertBalance(test, store, account.ID, "0")
	if store.transactionCount() != affordable {
		test.Fatalf("expected %d transaction rows, got %d", affordable, store.transactionCount())
	}
}

func TestLedgerSumMatchesBalance(test *testing.T) {
	test.Parallel()
	store := newStubStore(test)
	account := store.seedAccount(test, "0")
	product := store.seedProduct(test, "12.50", true)
	service := mustNewService(test, store, WithPendingPurchases())
	ctx := context.Background()

	if _, err := service.TopUp(ctx, account.ID, mustPositiveAmount(test, "100"), IdempotencyKey{}); err != nil {
		test.Fatalf("top up: %v", err)
	}
	var purchases []Transaction
	for index := 0; index < 3; index++ {
		transaction, err := service.Purchase(ctx, account.ID, product.ID, mustTarget(test, purchaseTarget), "", IdempotencyKey{})
		if err != nil {
			test.Fatalf("purchase %d: %v", index, err)
		}
		purchases = append(purchases, transaction)
	}
	if _, err := service.Settle(ctx, purchases[0].ID, TransactionStatusFailed); err != nil {
		test.Fatalf("settle failed: %v", err)
	}
	if _, err := service.Settle(ctx, purchases[1].ID, TransactionStatusSuccess); err != nil {
		test.Fatalf("settle success: %v", err)
	}

	assertBalance(test, store, account.ID, "75")
	if sum := LedgerSum(store.allTransactions()); !sum.Equal(mustDecimal(test, "75")) {
		test.Fatalf("expected ledger sum 75, got %s", sum)
	}
	reconciliation, err := service.Reconcile(ctx, account.ID)
	if err != nil {
		test.Fatalf("reconcile: %v", err)
	}
	if !reconciliation.Balanced() || reconciliation.TransactionCount != 4 {
		test.Fatalf("unexpected reconciliation %+v", reconciliation)
	}
}
