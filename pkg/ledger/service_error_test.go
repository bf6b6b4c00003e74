package ledger

import (
	"context"
	"errors"
	"testing"
)

const (
	errStoreMessage        = "store error"
	caseProductLookupError = "product lookup error"
	caseLockAccountError   = "lock account error"
	caseApplyDeltaError    = "apply delta error"
	caseConflict           = "version conflict"
	caseInsertError        = "insert transaction error"
	caseReferenceLookup    = "reference lookup error"
	errorMismatchMessage   = "expected %v, got %v"
)

var errStoreFailure = errors.New(errStoreMessage)

func TestPurchaseReturnsStoreErrors(test *testing.T) {
	test.Parallel()
	testCases := []struct {
		name      string
		configure func(failures *stubFailures)
		wantErr   error
	}{
		{
			name:      caseProductLookupError,
			configure: func(failures *stubFailures) { failures.getProduct = errStoreFailure },
			wantErr:   errStoreFailure,
		},
		{
			name:      caseLockAccountError,
			configure: func(failures *stubFailures) { failures.lockAccount = errStoreFailure },
			wantErr:   errStoreFailure,
		},
		{
			name:      caseApplyDeltaError,
			configure: func(failures *stubFailures) { failures.applyDelta = errStoreFailure },
			wantErr:   errStoreFailure,
		},
		{
			name:      caseConflict,
			configure: func(failures *stubFailures) { failures.applyDelta = ErrConflict },
			wantErr:   ErrConflict,
		},
		{
			name:      caseInsertError,
			configure: func(failures *stubFailures) { failures.insertTransaction = errStoreFailure },
			wantErr:   errStoreFailure,
		},
		{
			name:      caseReferenceLookup,
			configure: func(failures *stubFailures) { failures.findByReference = errStoreFailure },
			wantErr:   errStoreFailure,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		test.Run(testCase.name, func(test *testing.T) {
			test.Parallel()
			store := newStubStore(test)
			account := store.seedAccount(test, "100")
			product := store.seedProduct(test, "10", true)
			testCase.configure(store.failures())
			service := mustNewService(test, store)

			_, err := service.Purchase(context.Background(), account.ID, product.ID, mustTarget(test, purchaseTarget), "", mustIdempotencyKey(test, "store-errors"))
			if !errors.Is(err, testCase.wantErr) {
				test.Fatalf(errorMismatchMessage, testCase.wantErr, err)
			}
			assertBalance(test, store, account.ID, "100")
			if store.transactionCount() != 0 {
				test.Fatalf("expected no transaction rows")
			}
		})
	}
}

func TestConflictIsRetryable(test *testing.T) {
	test.Parallel()
	store := newStubStore(test)
	account := store.seedAccount(test, "100")
	product := store.seedProduct(test, "10", true)
	store.failures().applyDelta = ErrConflict
	service := mustNewService(test, store)

	_, err := service.Purchase(context.Background(), account.ID, product.ID, mustTarget(test, purchaseTarget), "", IdempotencyKey{})
	if !IsRetryable(err) {
		test.Fatalf("expected retryable error, got %v", err)
	}
	store.failures().applyDelta = nil
	if _, err := service.Purchase(context.Background(), account.ID, product.ID, mustTarget(test, purchaseTarget), "", IdempotencyKey{}); err != nil {
		test.Fatalf("retry: %v", err)
	}
	assertBalance(test, store, account.ID, "90")
}

func TestTopUpReturnsStoreErrors(test *testing.T) {
	test.Parallel()
	testCases := []struct {
		name      string
		configure func(failures *stubFailures)
	}{
		{name: caseLockAccountError, configure: func(failures *stubFailures) { failures.lockAccount = errStoreFailure }},
		{name: caseApplyDeltaError, configure: func(failures *stubFailures) { failures.applyDelta = errStoreFailure }},
		{name: caseInsertError, configure: func(failures *stubFailures) { failures.insertTransaction = errStoreFailure }},
		{name: caseReferenceLookup, configure: func(failures *stubFailures) { failures.findByReference = errStoreFailure }},
	}

	for _, testCase := range testCases {
		testCase := testCase
		test.Run(testCase.name, func(test *testing.T) {
			test.Parallel()
			store := newStubStore(test)
			account := store.seedAccount(test, "5")
			testCase.configure(store.failures())
			service := mustNewService(test, store)

			_, err := service.TopUp(context.Background(), account.ID, mustPositiveAmount(test, "10"), mustIdempotencyKey(test, "ref"))
			if !errors.Is(err, errStoreFailure) {
				test.Fatalf(errorMismatchMessage, errStoreFailure, err)
			}
			assertBalance(test, store, account.ID, "5")
		})
	}
}

func TestTopUpReferenceGeneratorFailure(test *testing.T) {
	test.Parallel()
	store := newStubStore(test)
	account := store.seedAccount(test, "0")
	service := mustNewService(test, store, WithReferenceGenerator(func() (string, error) {
		return "", errStoreFailure
	}))

	_, err := service.TopUp(context.Background(), account.ID, mustPositiveAmount(test, "10"), IdempotencyKey{})
	if !errors.Is(err, errStoreFailure) {
		test.Fatalf(errorMismatchMessage, errStoreFailure, err)
	}
	var operationError OperationError
	if !errors.As(err, &operationError) || operationError.Code() != "generate" {
		test.Fatalf("expected generate operation error, got %v", err)
	}
}

func TestListTransactionsReturnsStoreErrors(test *testing.T) {
	test.Parallel()
	store := newStubStore(test)
	account := store.seedAccount(test, "0")
	store.failures().listTransactions = errStoreFailure
	service := mustNewService(test, store)

	_, err := service.ListTransactions(context.Background(), account.ID, mustPage(test, 0, 0))
	if !errors.Is(err, errStoreFailure) {
		test.Fatalf(errorMismatchMessage, errStoreFailure, err)
	}
}

func TestNewServiceRequiresDependencies(test *testing.T) {
	test.Parallel()
	if _, err := NewService(nil, fixedClock); !errors.Is(err, ErrInvalidServiceConfig) {
		test.Fatalf(errorMismatchMessage, ErrInvalidServiceConfig, err)
	}
	if _, err := NewService(newStubStore(test), nil); !errors.Is(err, ErrInvalidServiceConfig) {
		test.Fatalf(errorMismatchMessage, ErrInvalidServiceConfig, err)
	}
}
