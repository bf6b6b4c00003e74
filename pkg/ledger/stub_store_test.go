package ledger

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

var fixedTime = time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedTime
}

type stubFailures struct {
	withTx             error
	createAccount      error
	getAccount         error
	updateProfile      error
	lockAccount        error
	applyDelta         error
	getProduct         error
	insertTransaction  error
	findByReference    error
	lockTransaction    error
	updateStatus       error
	listTransactions   error
	listCatalog        error
	createCatalogEntry error
}

type stubShared struct {
	mutex        sync.Mutex
	sequence     int
	accounts     map[AccountID]Account
	providers    map[ProviderID]Provider
	products     map[ProductID]Product
	transactions []Transaction
	failures     stubFailures
	commits      int
	rollbacks    int
	// referenceMisses makes the next lookups by reference report nothing, as if a
	// concurrent writer had not committed yet.
	referenceMisses int
}

type stubSnapshot struct {
	sequence     int
	accounts     map[AccountID]Account
	providers    map[ProviderID]Provider
	products     map[ProductID]Product
	transactions []Transaction
}

// stubStore is an in-memory Store whose WithTx serializes callers and rolls back on error.
type stubStore struct {
	shared *stubShared
	inTx   bool
}

func newStubStore(test *testing.T) *stubStore {
	test.Helper()
	return &stubStore{shared: &stubShared{
		accounts:  map[AccountID]Account{},
		providers: map[ProviderID]Provider{},
		products:  map[ProductID]Product{},
	}}
}

func (store *stubStore) guard() func() {
	if store.inTx {
		return func() {}
	}
	store.shared.mutex.Lock()
	return store.shared.mutex.Unlock
}

func (store *stubStore) failures() *stubFailures {
	return &store.shared.failures
}

func (store *stubStore) WithTx(ctx context.Context, fn func(ctx context.Context, txStore Store) error) error {
	if store.inTx {
		return fn(ctx, store)
	}
	store.shared.mutex.Lock()
	defer store.shared.mutex.Unlock()
	if store.shared.failures.withTx != nil {
		return store.shared.failures.withTx
	}
	snapshot := store.shared.snapshot()
	if err := fn(ctx, &stubStore{shared: store.shared, inTx: true}); err != nil {
		store.shared.restore(snapshot)
		store.shared.rollbacks++
		return err
	}
	store.shared.commits++
	return nil
}

func (shared *stubShared) snapshot() stubSnapshot {
	snapshot := stubSnapshot{
		sequence:     shared.sequence,
		accounts:     make(map[AccountID]Account, len(shared.accounts)),
		providers:    make(map[ProviderID]Provider, len(shared.providers)),
		products:     make(map[ProductID]Product, len(shared.products)),
		transactions: append([]Transaction(nil), shared.transactions...),
	}
	for key, value := range shared.accounts {
		snapshot.accounts[key] = value
	}
	for key, value := range shared.providers {
		snapshot.providers[key] = value
	}
	for key, value := range shared.products {
		snapshot.products[key] = value
	}
	return snapshot
}

func (shared *stubShared) restore(snapshot stubSnapshot) {
	shared.sequence = snapshot.sequence
	shared.accounts = snapshot.accounts
	shared.providers = snapshot.providers
	shared.products = snapshot.products
	shared.transactions = snapshot.transactions
}

func (shared *stubShared) nextID(prefix string) string {
	shared.sequence++
	return fmt.Sprintf("%s-%d", prefix, shared.sequence)
}

func (store *stubStore) CreateAccount(ctx context.Context, input AccountInput) (Account, error) {
	defer store.guard()()
	if store.shared.failures.createAccount != nil {
		return Account{}, store.shared.failures.createAccount
	}
	for _, existing := range store.shared.accounts {
		if existing.Email == input.Email {
			return Account{}, ErrAccountExists
		}
	}
	account := Account{
		ID:          AccountID{value: store.shared.nextID("acct")},
		Email:       input.Email,
		FullName:    input.FullName,
		PhoneNumber: input.PhoneNumber,
		Balance:     decimal.Zero,
		CreatedAt:   input.CreatedAt,
		UpdatedAt:   input.CreatedAt,
	}
	store.shared.accounts[account.ID] = account
	return account, nil
}

func (store *stubStore) GetAccount(ctx context.Context, accountID AccountID) (Account, error) {
	defer store.guard()()
	if store.shared.failures.getAccount != nil {
		return Account{}, store.shared.failures.getAccount
	}
	account, ok := store.shared.accounts[accountID]
	if !ok {
		return Account{}, ErrAccountNotFound
	}
	return account, nil
}

func (store *stubStore) UpdateAccountProfile(ctx context.Context, update ProfileUpdate) (Account, error) {
	defer store.guard()()
	if store.shared.failures.updateProfile != nil {
		return Account{}, store.shared.failures.updateProfile
	}
	account, ok := store.shared.accounts[update.AccountID]
	if !ok {
		return Account{}, ErrAccountNotFound
	}
	if update.FullName != nil {
		account.FullName = *update.FullName
	}
	if update.PhoneNumber != nil {
		account.PhoneNumber = *update.PhoneNumber
	}
	account.UpdatedAt = update.At
	store.shared.accounts[account.ID] = account
	return account, nil
}

func (store *stubStore) LockAccount(ctx context.Context, accountID AccountID) (Account, error) {
	defer store.guard()()
	if store.shared.failures.lockAccount != nil {
		return Account{}, store.shared.failures.lockAccount
	}
	account, ok := store.shared.accounts[accountID]
	if !ok {
		return Account{}, ErrAccountNotFound
	}
	return account, nil
}

func (store *stubStore) ApplyDelta(ctx context.Context, delta BalanceDelta) (Account, error) {
	defer store.guard()()
	if store.shared.failures.applyDelta != nil {
		return Account{}, store.shared.failures.applyDelta
	}
	account, ok := store.shared.accounts[delta.AccountID]
	if !ok {
		return Account{}, ErrAccountNotFound
	}
	if delta.ExpectedVersion >= 0 && delta.ExpectedVersion != account.Version {
		return Account{}, ErrConflict
	}
	next := account.Balance.Add(delta.Amount)
	if next.LessThan(delta.Floor) {
		return Account{}, ErrInsufficientFunds
	}
	account.Balance = next
	account.Version++
	account.UpdatedAt = delta.At
	store.shared.accounts[account.ID] = account
	return account, nil
}

func (store *stubStore) GetProduct(ctx context.Context, productID ProductID) (Product, error) {
	defer store.guard()()
	if store.shared.failures.getProduct != nil {
		return Product{}, store.shared.failures.getProduct
	}
	product, ok := store.shared.products[productID]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	return product, nil
}

func (store *stubStore) GetProvider(ctx context.Context, providerID ProviderID) (Provider, error) {
	defer store.guard()()
	provider, ok := store.shared.providers[providerID]
	if !ok {
		return Provider{}, ErrProviderNotFound
	}
	return provider, nil
}

func (store *stubStore) ListCategories(ctx context.Context) ([]Category, error) {
	defer store.guard()()
	if store.shared.failures.listCatalog != nil {
		return nil, store.shared.failures.listCatalog
	}
	seen := map[Category]bool{}
	var categories []Category
	for _, provider := range store.shared.providers {
		if provider.IsActive && !seen[provider.Category] {
			seen[provider.Category] = true
			categories = append(categories, provider.Category)
		}
	}
	return categories, nil
}

func (store *stubStore) ListProviders(ctx context.Context, category Category) ([]Provider, error) {
	defer store.guard()()
	if store.shared.failures.listCatalog != nil {
		return nil, store.shared.failures.listCatalog
	}
	var providers []Provider
	for _, provider := range store.shared.providers {
		if provider.IsActive && provider.Category == category {
			providers = append(providers, provider)
		}
	}
	return providers, nil
}

func (store *stubStore) ListProducts(ctx context.Context, providerID ProviderID) ([]Product, error) {
	defer store.guard()()
	if store.shared.failures.listCatalog != nil {
		return nil, store.shared.failures.listCatalog
	}
	var products []Product
	for _, product := range store.shared.products {
		if product.IsActive && product.ProviderID == providerID {
			products = append(products, product)
		}
	}
	return products, nil
}

func (store *stubStore) CreateProvider(ctx context.Context, input ProviderInput) (Provider, error) {
	defer store.guard()()
	if store.shared.failures.createCatalogEntry != nil {
		return Provider{}, store.shared.failures.createCatalogEntry
	}
	provider := Provider{
		ID:        ProviderID{value: store.shared.nextID("prov")},
		Name:      input.Name,
		Category:  input.Category,
		LogoURL:   input.LogoURL,
		IsActive:  input.IsActive,
		CreatedAt: input.CreatedAt,
	}
	store.shared.providers[provider.ID] = provider
	return provider, nil
}

func (store *stubStore) CreateProduct(ctx context.Context, input ProductInput) (Product, error) {
	defer store.guard()()
	if store.shared.failures.createCatalogEntry != nil {
		return Product{}, store.shared.failures.createCatalogEntry
	}
	product := Product{
		ID:           ProductID{value: store.shared.nextID("prod")},
		ProviderID:   input.ProviderID,
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price.Decimal(),
		NominalValue: input.NominalValue,
		IsActive:     input.IsActive,
		CreatedAt:    input.CreatedAt,
	}
	store.shared.products[product.ID] = product
	return product, nil
}

func (store *stubStore) UpdateProduct(ctx context.Context, update ProductUpdate) (Product, error) {
	defer store.guard()()
	product, ok := store.shared.products[update.ID]
	if !ok {
		return Product{}, ErrProductNotFound
	}
	if update.Price != nil {
		product.Price = update.Price.Decimal()
	}
	if update.IsActive != nil {
		product.IsActive = *update.IsActive
	}
	store.shared.products[product.ID] = product
	return product, nil
}

func (store *stubStore) InsertTransaction(ctx context.Context, input TransactionInput) (Transaction, error) {
	defer store.guard()()
	if store.shared.failures.insertTransaction != nil {
		return Transaction{}, store.shared.failures.insertTransaction
	}
	if !input.ReferenceID.IsZero() {
		for _, existing := range store.shared.transactions {
			if existing.ReferenceID == input.ReferenceID.String() {
				return Transaction{}, ErrDuplicateIdempotencyKey
			}
		}
	}
	transaction := Transaction{
		ID:          TransactionID{value: store.shared.nextID("txn")},
		AccountID:   input.AccountID,
		Kind:        input.Kind,
		ProductID:   input.ProductID,
		Amount:      input.Amount.Decimal(),
		Status:      input.Status,
		Target:      input.Target,
		ReferenceID: input.ReferenceID.String(),
		Notes:       input.Notes,
		Metadata:    input.Metadata,
		CreatedAt:   input.CreatedAt,
		UpdatedAt:   input.CreatedAt,
	}
	store.shared.transactions = append(store.shared.transactions, transaction)
	return transaction, nil
}

func (store *stubStore) GetTransaction(ctx context.Context, transactionID TransactionID) (Transaction, error) {
	defer store.guard()()
	for _, transaction := range store.shared.transactions {
		if transaction.ID == transactionID {
			return transaction, nil
		}
	}
	return Transaction{}, ErrTransactionNotFound
}

func (store *stubStore) LockTransaction(ctx context.Context, transactionID TransactionID) (Transaction, error) {
	if store.shared.failures.lockTransaction != nil {
		return Transaction{}, store.shared.failures.lockTransaction
	}
	return store.GetTransaction(ctx, transactionID)
}

func (store *stubStore) FindTransactionByReference(ctx context.Context, referenceID IdempotencyKey) (Transaction, error) {
	defer store.guard()()
	if store.shared.failures.findByReference != nil {
		return Transaction{}, store.shared.failures.findByReference
	}
	if store.shared.referenceMisses > 0 {
		store.shared.referenceMisses--
		return Transaction{}, ErrTransactionNotFound
	}
	for _, transaction := range store.shared.transactions {
		if transaction.ReferenceID != "" && transaction.ReferenceID == referenceID.String() {
			return transaction, nil
		}
	}
	return Transaction{}, ErrTransactionNotFound
}

func (store *stubStore) UpdateTransactionStatus(ctx context.Context, transactionID TransactionID, from, to TransactionStatus, at time.Time) (Transaction, error) {
	defer store.guard()()
	if store.shared.failures.updateStatus != nil {
		return Transaction{}, store.shared.failures.updateStatus
	}
	for index, transaction := range store.shared.transactions {
		if transaction.ID != transactionID {
			continue
		}
		if transaction.Status != from {
			return Transaction{}, ErrConflict
		}
		transaction.Status = to
		transaction.UpdatedAt = at
		store.shared.transactions[index] = transaction
		return transaction, nil
	}
	return Transaction{}, ErrTransactionNotFound
}

func (store *stubStore) ListTransactions(ctx context.Context, accountID AccountID, page Page) ([]Transaction, error) {
	defer store.guard()()
	if store.shared.failures.listTransactions != nil {
		return nil, store.shared.failures.listTransactions
	}
	var newestFirst []Transaction
	for index := len(store.shared.transactions) - 1; index >= 0; index-- {
		if store.shared.transactions[index].AccountID == accountID {
			newestFirst = append(newestFirst, store.shared.transactions[index])
		}
	}
	if page.Offset() >= len(newestFirst) {
		return []Transaction{}, nil
	}
	end := page.Offset() + page.Limit()
	if end > len(newestFirst) {
		end = len(newestFirst)
	}
	return newestFirst[page.Offset():end], nil
}

func (store *stubStore) seedAccount(test *testing.T, balance string) Account {
	test.Helper()
	defer store.guard()()
	account := Account{
		ID:        AccountID{value: store.shared.nextID("acct")},
		Email:     fmt.Sprintf("user%d@example.com", store.shared.sequence),
		FullName:  "Test User",
		Balance:   mustDecimal(test, balance),
		CreatedAt: fixedTime,
		UpdatedAt: fixedTime,
	}
	store.shared.accounts[account.ID] = account
	return account
}

func (store *stubStore) seedProduct(test *testing.T, price string, isActive bool) Product {
	test.Helper()
	defer store.guard()()
	provider := Provider{
		ID:        ProviderID{value: store.shared.nextID("prov")},
		Name:      "Telkomsel",
		Category:  CategoryPulsa,
		IsActive:  true,
		CreatedAt: fixedTime,
	}
	store.shared.providers[provider.ID] = provider
	product := Product{
		ID:           ProductID{value: store.shared.nextID("prod")},
		ProviderID:   provider.ID,
		Name:         "Pulsa " + price,
		Price:        mustDecimal(test, price),
		NominalValue: price,
		IsActive:     isActive,
		CreatedAt:    fixedTime,
	}
	store.shared.products[product.ID] = product
	return product
}

func (store *stubStore) balance(test *testing.T, accountID AccountID) decimal.Decimal {
	test.Helper()
	defer store.guard()()
	account, ok := store.shared.accounts[accountID]
	if !ok {
		test.Fatalf("account %s missing", accountID)
	}
	return account.Balance
}

func (store *stubStore) transactionCount() int {
	defer store.guard()()
	return len(store.shared.transactions)
}

func (store *stubStore) allTransactions() []Transaction {
	defer store.guard()()
	return append([]Transaction(nil), store.shared.transactions...)
}

func mustNewService(test *testing.T, store Store, options ...ServiceOption) *Service {
	test.Helper()
	service, err := NewService(store, fixedClock, options...)
	if err != nil {
		test.Fatalf("new service: %v", err)
	}
	return service
}

func mustDecimal(test *testing.T, raw string) decimal.Decimal {
	test.Helper()
	value, err := decimal.NewFromString(raw)
	if err != nil {
		test.Fatalf("decimal %q: %v", raw, err)
	}
	return value
}

func mustPositiveAmount(test *testing.T, raw string) PositiveAmount {
	test.Helper()
	amount, err := ParsePositiveAmount(raw)
	if err != nil {
		test.Fatalf("amount %q: %v", raw, err)
	}
	return amount
}

func mustTarget(test *testing.T, raw string) Target {
	test.Helper()
	target, err := NewTarget(raw)
	if err != nil {
		test.Fatalf("target %q: %v", raw, err)
	}
	return target
}

func mustIdempotencyKey(test *testing.T, raw string) IdempotencyKey {
	test.Helper()
	key, err := NewIdempotencyKey(raw)
	if err != nil {
		test.Fatalf("idempotency key %q: %v", raw, err)
	}
	return key
}

func mustPage(test *testing.T, limit int, offset int) Page {
	test.Helper()
	page, err := NewPage(limit, offset)
	if err != nil {
		test.Fatalf("page: %v", err)
	}
	return page
}

func assertBalance(test *testing.T, store *stubStore, accountID AccountID, want string) {
	test.Helper()
	got := store.balance(test, accountID)
	if !got.Equal(mustDecimal(test, want)) {
		test.Fatalf("expected balance %s, got %s", want, got)
	}
}
