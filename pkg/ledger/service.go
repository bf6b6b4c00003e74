package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.jetify.com/typeid/v2"
)

// Service contains the domain logic over a Store.
type Service struct {
	store          Store
	nowFn          func() time.Time
	logger         OperationLogger
	publisher      EventPublisher
	referenceFn    func() (string, error)
	purchaseStatus TransactionStatus
}

// NewService wires a Service.
func NewService(store Store, now func() time.Time, options ...ServiceOption) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: store dependency is nil", ErrInvalidServiceConfig)
	}
	if now == nil {
		return nil, fmt.Errorf("%w: clock dependency is nil", ErrInvalidServiceConfig)
	}
	service := &Service{
		store:          store,
		nowFn:          now,
		referenceFn:    generateTopUpReference,
		purchaseStatus: TransactionStatusSuccess,
	}
	for _, option := range options {
		if option != nil {
			option(service)
		}
	}
	return service, nil
}

// OpenAccount creates an account with a zero balance.
func (service *Service) OpenAccount(ctx context.Context, email string, fullName string, phoneNumber string) (Account, error) {
	var account Account
	input, operationError := NewAccountInput(email, fullName, phoneNumber, service.nowFn())
	if operationError == nil {
		operationError = service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
			created, err := transactionStore.CreateAccount(ctx, input)
			if err != nil {
				return err
			}
			account = created
			return ctx.Err()
		})
	}
	service.logOperation(ctx, OperationLog{
		Operation: operationOpenAccount,
		AccountID: account.ID,
		Error:     operationError,
	})
	if operationError != nil {
		return Account{}, operationError
	}
	return account, nil
}

// UpdateProfile changes the holder's name or phone number. Balance and version stay as they are,
// so later top-ups default their target to the new phone number.
func (service *Service) UpdateProfile(ctx context.Context, accountID AccountID, fullName *string, phoneNumber *string) (Account, error) {
	var account Account
	update, operationError := NewProfileUpdate(accountID, fullName, phoneNumber, service.nowFn())
	if operationError == nil {
		operationError = service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
			updated, err := transactionStore.UpdateAccountProfile(ctx, update)
			if err != nil {
				return err
			}
			account = updated
			return ctx.Err()
		})
	}
	service.logOperation(ctx, OperationLog{
		Operation: operationUpdateProfile,
		AccountID: accountID,
		Error:     operationError,
	})
	if operationError != nil {
		return Account{}, operationError
	}
	return account, nil
}

// Account returns the current balance record.
func (service *Service) Account(ctx context.Context, accountID AccountID) (Account, error) {
	if accountID.IsZero() {
		return Account{}, fmt.Errorf("%w: empty value", ErrInvalidAccountID)
	}
	return service.store.GetAccount(ctx, accountID)
}

// Purchase debits the product price and records the purchase in one atomic unit.
// A key that was already applied for the same account returns the stored transaction.
func (service *Service) Purchase(ctx context.Context, accountID AccountID, productID ProductID, target Target, notes string, idempotencyKey IdempotencyKey) (Transaction, error) {
	var (
		transaction Transaction
		balance     decimal.Decimal
		replayed    bool
	)
	operationError := service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
		if !idempotencyKey.IsZero() {
			prior, found, err := findPrior(ctx, transactionStore, accountID, TransactionKindPurchase, idempotencyKey)
			if err != nil {
				return err
			}
			if found {
				transaction = prior
				replayed = true
				return nil
			}
		}
		product, err := transactionStore.GetProduct(ctx, productID)
		if err != nil {
			return err
		}
		if !product.IsActive {
			return ErrProductInactive
		}
		account, err := transactionStore.LockAccount(ctx, accountID)
		if err != nil {
			return err
		}
		price, err := NewPositiveAmount(product.Price)
		if err != nil {
			return err
		}
		input, err := NewPurchaseInput(accountID, product, price, service.purchaseStatus, target, idempotencyKey, notes, service.nowFn())
		if err != nil {
			return err
		}
		updated, err := transactionStore.ApplyDelta(ctx, BalanceDelta{
			AccountID:       accountID,
			Amount:          price.Negated(),
			Floor:           decimal.Zero,
			ExpectedVersion: account.Version,
			At:              input.CreatedAt,
		})
		if err != nil {
			return err
		}
		created, err := transactionStore.InsertTransaction(ctx, input)
		if err != nil {
			return err
		}
		transaction = created
		balance = updated.Balance
		return ctx.Err()
	})
	if errors.Is(operationError, ErrDuplicateIdempotencyKey) && !idempotencyKey.IsZero() {
		// A concurrent request with the same key committed first.
		prior, found, err := findPrior(ctx, service.store, accountID, TransactionKindPurchase, idempotencyKey)
		if err == nil && found {
			transaction = prior
			replayed = true
			operationError = nil
		}
	}
	logEntry := OperationLog{
		Operation:      operationPurchase,
		AccountID:      accountID,
		ProductID:      productID,
		TransactionID:  transaction.ID,
		Amount:         transaction.Amount,
		IdempotencyKey: idempotencyKey,
		Error:          operationError,
	}
	if replayed {
		logEntry.Status = operationStatusReplayed
	}
	service.logOperation(ctx, logEntry)
	if operationError != nil {
		return Transaction{}, operationError
	}
	if !replayed {
		service.publish(ctx, transaction, balance)
	}
	return transaction, nil
}

// TopUp credits the account and records a successful top-up transaction.
// When referenceID is zero a unique reference is generated.
func (service *Service) TopUp(ctx context.Context, accountID AccountID, amount PositiveAmount, referenceID IdempotencyKey) (Account, error) {
	var (
		account     Account
		transaction Transaction
		replayed    bool
	)
	reference := referenceID
	operationError := service.validateTopUp(accountID, amount)
	if operationError == nil && reference.IsZero() {
		reference, operationError = service.nextReference()
	}
	if operationError == nil {
		operationError = service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
			if !referenceID.IsZero() {
				prior, found, err := findPrior(ctx, transactionStore, accountID, TransactionKindTopUp, referenceID)
				if err != nil {
					return err
				}
				if found {
					current, err := transactionStore.GetAccount(ctx, accountID)
					if err != nil {
						return err
					}
					account = current
					transaction = prior
					replayed = true
					return nil
				}
			}
			locked, err := transactionStore.LockAccount(ctx, accountID)
			if err != nil {
				return err
			}
			if locked.Balance.Add(amount.Decimal()).GreaterThanOrEqual(maxAmountExclusive) {
				return fmt.Errorf("%w: balance would exceed %s", ErrInvalidAmount, maxAmountExclusive.String())
			}
			now := service.nowFn()
			updated, err := transactionStore.ApplyDelta(ctx, BalanceDelta{
				AccountID:       accountID,
				Amount:          amount.Decimal(),
				Floor:           decimal.Zero,
				ExpectedVersion: locked.Version,
				At:              now,
			})
			if err != nil {
				return err
			}
			input, err := NewTopUpInput(updated, amount, reference, now)
			if err != nil {
				return err
			}
			created, err := transactionStore.InsertTransaction(ctx, input)
			if err != nil {
				return err
			}
			account = updated
			transaction = created
			return ctx.Err()
		})
	}
	if errors.Is(operationError, ErrDuplicateIdempotencyKey) && !referenceID.IsZero() {
		_, found, err := findPrior(ctx, service.store, accountID, TransactionKindTopUp, referenceID)
		if err == nil && found {
			current, accountErr := service.store.GetAccount(ctx, accountID)
			if accountErr == nil {
				account = current
				replayed = true
				operationError = nil
			}
		}
	}
	logEntry := OperationLog{
		Operation:      operationTopUp,
		AccountID:      accountID,
		TransactionID:  transaction.ID,
		Amount:         amount.Decimal(),
		IdempotencyKey: reference,
		Error:          operationError,
	}
	if replayed {
		logEntry.Status = operationStatusReplayed
	}
	service.logOperation(ctx, logEntry)
	if operationError != nil {
		return Account{}, operationError
	}
	if !replayed {
		service.publish(ctx, transaction, account.Balance)
	}
	return account, nil
}

// MarkProcessing moves a pending purchase to processing.
func (service *Service) MarkProcessing(ctx context.Context, transactionID TransactionID) (Transaction, error) {
	var (
		transaction Transaction
		replayed    bool
	)
	operationError := service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
		current, err := transactionStore.LockTransaction(ctx, transactionID)
		if err != nil {
			return err
		}
		if current.Status == TransactionStatusProcessing {
			transaction = current
			replayed = true
			return nil
		}
		if current.Status.IsTerminal() {
			return fmt.Errorf("%w: status %s", ErrTransactionClosed, current.Status)
		}
		updated, err := transactionStore.UpdateTransactionStatus(ctx, transactionID, current.Status, TransactionStatusProcessing, service.nowFn())
		if err != nil {
			return err
		}
		transaction = updated
		return ctx.Err()
	})
	logEntry := OperationLog{
		Operation:     operationMarkProcessing,
		AccountID:     transaction.AccountID,
		TransactionID: transactionID,
		Amount:        transaction.Amount,
		Error:         operationError,
	}
	if replayed {
		logEntry.Status = operationStatusReplayed
	}
	service.logOperation(ctx, logEntry)
	if operationError != nil {
		return Transaction{}, operationError
	}
	return transaction, nil
}

// Settle moves a purchase to a terminal outcome. Failed and cancelled outcomes refund the
// debited amount in the same atomic unit as the status change.
func (service *Service) Settle(ctx context.Context, transactionID TransactionID, outcome TransactionStatus) (Transaction, error) {
	var (
		transaction Transaction
		balance     decimal.Decimal
		replayed    bool
	)
	var operationError error
	if !outcome.IsTerminal() {
		operationError = fmt.Errorf("%w: %q", ErrInvalidOutcome, outcome)
	} else {
		operationError = service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
			current, err := transactionStore.LockTransaction(ctx, transactionID)
			if err != nil {
				return err
			}
			if current.Kind != TransactionKindPurchase {
				return fmt.Errorf("%w: %s transactions are final", ErrTransactionClosed, current.Kind)
			}
			if current.Status.IsTerminal() {
				if current.Status == outcome {
					transaction = current
					replayed = true
					return nil
				}
				return fmt.Errorf("%w: status %s", ErrTransactionClosed, current.Status)
			}
			if !current.Status.CanTransitionTo(outcome) {
				return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, current.Status, outcome)
			}
			now := service.nowFn()
			if outcome.Refunds() {
				account, err := transactionStore.LockAccount(ctx, current.AccountID)
				if err != nil {
					return err
				}
				refunded, err := transactionStore.ApplyDelta(ctx, BalanceDelta{
					AccountID:       current.AccountID,
					Amount:          current.Amount,
					Floor:           decimal.Zero,
					ExpectedVersion: account.Version,
					At:              now,
				})
				if err != nil {
					return err
				}
				balance = refunded.Balance
			} else {
				account, err := transactionStore.GetAccount(ctx, current.AccountID)
				if err != nil {
					return err
				}
				balance = account.Balance
			}
			updated, err := transactionStore.UpdateTransactionStatus(ctx, transactionID, current.Status, outcome, now)
			if err != nil {
				return err
			}
			transaction = updated
			return ctx.Err()
		})
	}
	logEntry := OperationLog{
		Operation:     operationSettle,
		AccountID:     transaction.AccountID,
		TransactionID: transactionID,
		Amount:        transaction.Amount,
		Error:         operationError,
	}
	if replayed {
		logEntry.Status = operationStatusReplayed
	}
	service.logOperation(ctx, logEntry)
	if operationError != nil {
		return Transaction{}, operationError
	}
	if !replayed {
		service.publish(ctx, transaction, balance)
	}
	return transaction, nil
}

// Transaction returns a single transaction record.
func (service *Service) Transaction(ctx context.Context, transactionID TransactionID) (Transaction, error) {
	if transactionID.IsZero() {
		return Transaction{}, fmt.Errorf("%w: empty value", ErrInvalidTransactionID)
	}
	return service.store.GetTransaction(ctx, transactionID)
}

// ListTransactions returns an account's transactions, newest first.
func (service *Service) ListTransactions(ctx context.Context, accountID AccountID, page Page) ([]Transaction, error) {
	if _, err := service.store.GetAccount(ctx, accountID); err != nil {
		return nil, err
	}
	return service.store.ListTransactions(ctx, accountID, page)
}

// Reconcile compares the stored balance with the sum of the account's transaction log.
func (service *Service) Reconcile(ctx context.Context, accountID AccountID) (Reconciliation, error) {
	account, err := service.store.GetAccount(ctx, accountID)
	if err != nil {
		return Reconciliation{}, err
	}
	ledgerSum := decimal.Zero
	count := 0
	for offset := 0; ; offset += maxPageLimit {
		page, err := NewPage(maxPageLimit, offset)
		if err != nil {
			return Reconciliation{}, err
		}
		transactions, err := service.store.ListTransactions(ctx, accountID, page)
		if err != nil {
			return Reconciliation{}, err
		}
		ledgerSum = ledgerSum.Add(LedgerSum(transactions))
		count += len(transactions)
		if len(transactions) < maxPageLimit {
			break
		}
	}
	return Reconciliation{
		AccountID:        accountID,
		Balance:          account.Balance,
		LedgerSum:        ledgerSum,
		TransactionCount: count,
	}, nil
}

// Reconciliation is the outcome of Reconcile.
type Reconciliation struct {
	AccountID        AccountID
	Balance          decimal.Decimal
	LedgerSum        decimal.Decimal
	TransactionCount int
}

// Balanced reports whether the balance matches the transaction log.
func (reconciliation Reconciliation) Balanced() bool {
	return reconciliation.Balance.Equal(reconciliation.LedgerSum)
}

// LedgerSum totals the signed amounts of transactions that still affect the balance.
func LedgerSum(transactions []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, transaction := range transactions {
		if transaction.AffectsBalance() {
			total = total.Add(transaction.SignedAmount())
		}
	}
	return total
}

func (service *Service) validateTopUp(accountID AccountID, amount PositiveAmount) error {
	if accountID.IsZero() {
		return fmt.Errorf("%w: empty value", ErrInvalidAccountID)
	}
	if !amount.IsValid() {
		return fmt.Errorf("%w: must be greater than zero", ErrInvalidAmount)
	}
	return nil
}

func (service *Service) nextReference() (IdempotencyKey, error) {
	raw, err := service.referenceFn()
	if err != nil {
		return IdempotencyKey{}, WrapError("service", "reference", "generate", err)
	}
	return NewIdempotencyKey(raw)
}

func (service *Service) logOperation(ctx context.Context, entry OperationLog) {
	if service.logger == nil {
		return
	}
	if entry.Status == "" {
		if entry.Error != nil {
			entry.Status = operationStatusError
		} else {
			entry.Status = operationStatusOK
		}
	}
	service.logger.LogOperation(ctx, entry)
}

// findPrior looks up an applied key. A key owned by another account or kind is a duplicate.
func findPrior(ctx context.Context, store Store, accountID AccountID, kind TransactionKind, key IdempotencyKey) (Transaction, bool, error) {
	prior, err := store.FindTransactionByReference(ctx, key)
	if errors.Is(err, ErrTransactionNotFound) {
		return Transaction{}, false, nil
	}
	if err != nil {
		return Transaction{}, false, err
	}
	if prior.AccountID != accountID || prior.Kind != kind {
		return Transaction{}, false, fmt.Errorf("%w: %s", ErrDuplicateIdempotencyKey, key)
	}
	return prior, true, nil
}

func generateTopUpReference() (string, error) {
	reference, err := typeid.Generate(topUpReferencePrefix)
	if err != nil {
		return "", err
	}
	return reference.String(), nil
}
