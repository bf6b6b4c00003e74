package pgstore

import (
	"context"
	"errors"
	"time"

	"github.com/MarkoPoloResearchLab/topup/pkg/ledger"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const (
	constraintAccountEmail         = "idx_accounts_email"
	constraintTransactionReference = "idx_transactions_reference"
	pgUniqueViolationCode          = "23505"
	errorOperationStore            = "store"
	errorSubjectAccount            = "account"
	errorSubjectBalance            = "balance"
	errorSubjectProvider           = "provider"
	errorSubjectProduct            = "product"
	errorSubjectTransaction        = "transaction"
	errorCodeApply                 = "apply_delta"
	errorCodeBegin                 = "begin"
	errorCodeCommit                = "commit"
	errorCodeCreate                = "create"
	errorCodeDuplicate             = "duplicate"
	errorCodeGet                   = "get"
	errorCodeInsert                = "insert"
	errorCodeInvalid               = "invalid"
	errorCodeList                  = "list"
	errorCodeLock                  = "lock"
	errorCodeLookup                = "lookup"
	errorCodeUpdate                = "update"
	errorCodeUpdateStatus          = "update_status"

	accountColumns = `
		account_id::text, email, full_name, coalesce(phone_number,''),
		balance::text, version, created_at, updated_at
	`

	providerColumns = `
		provider_id::text, name, category, coalesce(logo_url,''), is_active, created_at
	`

	productColumns = `
		product_id::text, provider_id::text, name, coalesce(description,''),
		price::text, nominal_value, is_active, created_at
	`

	transactionColumns = `
		transaction_id::text, account_id::text, kind, coalesce(product_id::text,''),
		amount::text, status, target, coalesce(reference_id,''), coalesce(notes,''),
		coalesce(metadata::text,'{}'), created_at, updated_at
	`

	sqlInsertAccount = `
		insert into accounts(account_id, email, full_name, phone_number, balance, version, created_at, updated_at)
		values($1, $2, $3, nullif($4,''), 0, 0, $5, $5)
		returning ` + accountColumns

	sqlSelectAccount = `select ` + accountColumns + ` from accounts where account_id = $1`

	sqlLockAccount = sqlSelectAccount + ` for update`

	// Balance and version are absent from the set list.
	sqlUpdateAccountProfile = `
		update accounts
		set full_name = coalesce($2::text, full_name),
			phone_number = case when $3::boolean then nullif($4::text,'') else phone_number end,
			updated_at = $5
		where account_id = $1
		returning ` + accountColumns

	// The floor and the version pin are evaluated by the same statement that writes the balance.
	sqlApplyDelta = `
		update accounts
		set balance = balance + $2::numeric, version = version + 1, updated_at = $4
		where account_id = $1
			and balance + $2::numeric >= $3::numeric
			and ($5::bigint < 0 or version = $5::bigint)
		returning ` + accountColumns

	sqlSelectAccountVersion = `select version from accounts where account_id = $1`

	sqlSelectProduct = `select ` + productColumns + ` from products where product_id = $1 for share`

	sqlSelectProvider = `select ` + providerColumns + ` from providers where provider_id = $1`

	sqlListCategories = `select distinct category from providers where is_active order by category`

	sqlListProviders = `
		select ` + providerColumns + ` from providers
		where category = $1 and is_active
		order by name
	`

	sqlListProducts = `
		select ` + productColumns + ` from products
		where provider_id = $1 and is_active
		order by price asc, name
	`

	sqlInsertProvider = `
		insert into providers(provider_id, name, category, logo_url, is_active, created_at)
		values($1, $2, $3, nullif($4,''), $5, $6)
		returning ` + providerColumns

	sqlInsertProduct = `
		insert into products(product_id, provider_id, name, description, price, nominal_value, is_active, created_at)
		values($1, $2, $3, nullif($4,''), $5::numeric, $6, $7, $8)
		returning ` + productColumns

	sqlUpdateProduct = `
		update products
		set price = coalesce($2::numeric, price), is_active = coalesce($3::boolean, is_active)
		where product_id = $1
		returning ` + productColumns

	sqlInsertTransaction = `
		insert into transactions(
			transaction_id, account_id, kind, product_id, amount, status, target,
			reference_id, notes, metadata, created_at, updated_at
		)
		values(
			$1, $2, $3, nullif($4,'')::uuid, $5::numeric, $6, $7,
			nullif($8,''), nullif($9,''),
			coalesce(nullif($10,''),'{}')::jsonb,
			$11, $11
		)
		returning ` + transactionColumns

	sqlSelectTransaction = `select ` + transactionColumns + ` from transactions where transaction_id = $1`

	sqlLockTransaction = sqlSelectTransaction + ` for update`

	sqlSelectTransactionByReference = `select ` + transactionColumns + ` from transactions where reference_id = $1`

	sqlUpdateTransactionStatus = `
		update transactions
		set status = $3, updated_at = $4
		where transaction_id = $1 and status = $2
		returning ` + transactionColumns

	sqlListTransactions = `
		select ` + transactionColumns + ` from transactions
		where account_id = $1
		order by created_at desc, transaction_id desc
		limit $2 offset $3
	`
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store implements ledger.Store on a pgx pool. Outside WithTx every statement autocommits.
type Store struct {
	pool *pgxpool.Pool
	db   querier
	inTx bool
}

// New returns a Store backed by a pgx pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool, db: pool}
}

// WithTx runs fn inside one database transaction. Nested calls join the outer transaction.
func (store *Store) WithTx(ctx context.Context, fn func(ctx context.Context, txStore ledger.Store) error) error {
	if store.inTx {
		return fn(ctx, store)
	}
	tx, err := store.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return wrapStoreError(errorSubjectTransaction, errorCodeBegin, err)
	}
	transactionStore := &Store{pool: store.pool, db: tx, inTx: true}
	if err := fn(ctx, transactionStore); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return wrapStoreError(errorSubjectTransaction, errorCodeCommit, err)
	}
	return nil
}

func (store *Store) CreateAccount(ctx context.Context, input ledger.AccountInput) (ledger.Account, error) {
	row := store.db.QueryRow(ctx, sqlInsertAccount,
		uuid.NewString(),
		input.Email,
		input.FullName,
		input.PhoneNumber,
		timeOrNow(input.CreatedAt),
	)
	account, err := scanAccount(row)
	if isUniqueViolation(err, constraintAccountEmail) {
		return ledger.Account{}, wrapStoreError(errorSubjectAccount, errorCodeDuplicate, ledger.ErrAccountExists)
	}
	if err != nil {
		return ledger.Account{}, wrapStoreError(errorSubjectAccount, errorCodeCreate, err)
	}
	return account, nil
}

func (store *Store) GetAccount(ctx context.Context, accountID ledger.AccountID) (ledger.Account, error) {
	return store.findAccount(ctx, sqlSelectAccount, accountID, errorCodeGet)
}

func (store *Store) UpdateAccountProfile(ctx context.Context, update ledger.ProfileUpdate) (ledger.Account, error) {
	if !isUUID(update.AccountID.String()) {
		return ledger.Account{}, wrapStoreError(errorSubjectAccount, errorCodeUpdate, ledger.ErrAccountNotFound)
	}
	phoneNumber := ""
	if update.PhoneNumber != nil {
		phoneNumber = *update.PhoneNumber
	}
	row := store.db.QueryRow(ctx, sqlUpdateAccountProfile,
		update.AccountID.String(),
		update.FullName,
		update.PhoneNumber != nil,
		phoneNumber,
		timeOrNow(update.At),
	)
	account, err := scanAccount(row)
	if err != nil {
		return ledger.Account{}, notFoundOr(errorSubjectAccount, errorCodeUpdate, ledger.ErrAccountNotFound, err)
	}
	return account, nil
}

func (store *Store) LockAccount(ctx context.Context, accountID ledger.AccountID) (ledger.Account, error) {
	return store.findAccount(ctx, sqlLockAccount, accountID, errorCodeLock)
}

// ApplyDelta writes the new balance with one conditional update. When no row matches, a
// follow-up read tells a missing account, a stale version and a breached floor apart.
func (store *Store) ApplyDelta(ctx context.Context, delta ledger.BalanceDelta) (ledger.Account, error) {
	if !isUUID(delta.AccountID.String()) {
		return ledger.Account{}, wrapStoreError(errorSubjectBalance, errorCodeApply, ledger.ErrAccountNotFound)
	}
	row := store.db.QueryRow(ctx, sqlApplyDelta,
		delta.AccountID.String(),
		delta.Amount.String(),
		delta.Floor.String(),
		timeOrNow(delta.At),
		delta.ExpectedVersion,
	)
	account, err := scanAccount(row)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return ledger.Account{}, wrapStoreError(errorSubjectBalance, errorCodeApply, err)
	}
	var version int64
	err = store.db.QueryRow(ctx, sqlSelectAccountVersion, delta.AccountID.String()).Scan(&version)
	if err != nil {
		return ledger.Account{}, notFoundOr(errorSubjectBalance, errorCodeApply, ledger.ErrAccountNotFound, err)
	}
	if delta.ExpectedVersion >= 0 && version != delta.ExpectedVersion {
		return ledger.Account{}, wrapStoreError(errorSubjectBalance, errorCodeApply, ledger.ErrConflict)
	}
	return ledger.Account{}, wrapStoreError(errorSubjectBalance, errorCodeApply, ledger.ErrInsufficientFunds)
}

func (store *Store) GetProduct(ctx context.Context, productID ledger.ProductID) (ledger.Product, error) {
	if !isUUID(productID.String()) {
		return ledger.Product{}, wrapStoreError(errorSubjectProduct, errorCodeGet, ledger.ErrProductNotFound)
	}
	product, err := scanProduct(store.db.QueryRow(ctx, sqlSelectProduct, productID.String()))
	if err != nil {
		return ledger.Product{}, notFoundOr(errorSubjectProduct, errorCodeGet, ledger.ErrProductNotFound, err)
	}
	return product, nil
}

func (store *Store) GetProvider(ctx context.Context, providerID ledger.ProviderID) (ledger.Provider, error) {
	if !isUUID(providerID.String()) {
		return ledger.Provider{}, wrapStoreError(errorSubjectProvider, errorCodeGet, ledger.ErrProviderNotFound)
	}
	provider, err := scanProvider(store.db.QueryRow(ctx, sqlSelectProvider, providerID.String()))
	if err != nil {
		return ledger.Provider{}, notFoundOr(errorSubjectProvider, errorCodeGet, ledger.ErrProviderNotFound, err)
	}
	return provider, nil
}

func (store *Store) ListCategories(ctx context.Context) ([]ledger.Category, error) {
	rows, err := store.db.Query(ctx, sqlListCategories)
	if err != nil {
		return nil, wrapStoreError(errorSubjectProvider, errorCodeList, err)
	}
	defer rows.Close()
	categories := make([]ledger.Category, 0, len(ledger.AllCategories()))
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, wrapStoreError(errorSubjectProvider, errorCodeList, err)
		}
		category, err := ledger.ParseCategory(name)
		if err != nil {
			return nil, wrapStoreError(errorSubjectProvider, errorCodeInvalid, err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreError(errorSubjectProvider, errorCodeList, err)
	}
	return categories, nil
}

func (store *Store) ListProviders(ctx context.Context, category ledger.Category) ([]ledger.Provider, error) {
	rows, err := store.db.Query(ctx, sqlListProviders, category.String())
	if err != nil {
		return nil, wrapStoreError(errorSubjectProvider, errorCodeList, err)
	}
	defer rows.Close()
	providers := make([]ledger.Provider, 0, 8)
	for rows.Next() {
		provider, err := scanProvider(rows)
		if err != nil {
			return nil, wrapStoreError(errorSubjectProvider, errorCodeInvalid, err)
		}
		providers = append(providers, provider)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreError(errorSubjectProvider, errorCodeList, err)
	}
	return providers, nil
}

func (store *Store) ListProducts(ctx context.Context, providerID ledger.ProviderID) ([]ledger.Product, error) {
	if !isUUID(providerID.String()) {
		return []ledger.Product{}, nil
	}
	rows, err := store.db.Query(ctx, sqlListProducts, providerID.String())
	if err != nil {
		return nil, wrapStoreError(errorSubjectProduct, errorCodeList, err)
	}
	defer rows.Close()
	products := make([]ledger.Product, 0, 8)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, wrapStoreError(errorSubjectProduct, errorCodeInvalid, err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreError(errorSubjectProduct, errorCodeList, err)
	}
	return products, nil
}

func (store *Store) CreateProvider(ctx context.Context, input ledger.ProviderInput) (ledger.Provider, error) {
	row := store.db.QueryRow(ctx, sqlInsertProvider,
		uuid.NewString(),
		input.Name,
		input.Category.String(),
		input.LogoURL,
		input.IsActive,
		timeOrNow(input.CreatedAt),
	)
	provider, err := scanProvider(row)
	if err != nil {
		return ledger.Provider{}, wrapStoreError(errorSubjectProvider, errorCodeCreate, err)
	}
	return provider, nil
}

func (store *Store) CreateProduct(ctx context.Context, input ledger.ProductInput) (ledger.Product, error) {
	row := store.db.QueryRow(ctx, sqlInsertProduct,
		uuid.NewString(),
		input.ProviderID.String(),
		input.Name,
		input.Description,
		input.Price.String(),
		input.NominalValue,
		input.IsActive,
		timeOrNow(input.CreatedAt),
	)
	product, err := scanProduct(row)
	if err != nil {
		return ledger.Product{}, wrapStoreError(errorSubjectProduct, errorCodeCreate, err)
	}
	return product, nil
}

func (store *Store) UpdateProduct(ctx context.Context, update ledger.ProductUpdate) (ledger.Product, error) {
	if !isUUID(update.ID.String()) {
		return ledger.Product{}, wrapStoreError(errorSubjectProduct, errorCodeUpdate, ledger.ErrProductNotFound)
	}
	var price *string
	if update.Price != nil {
		value := update.Price.String()
		price = &value
	}
	row := store.db.QueryRow(ctx, sqlUpdateProduct, update.ID.String(), price, update.IsActive)
	product, err := scanProduct(row)
	if err != nil {
		return ledger.Product{}, notFoundOr(errorSubjectProduct, errorCodeUpdate, ledger.ErrProductNotFound, err)
	}
	return product, nil
}

func (store *Store) InsertTransaction(ctx context.Context, input ledger.TransactionInput) (ledger.Transaction, error) {
	productID := ""
	if !input.ProductID.IsZero() {
		productID = input.ProductID.String()
	}
	row := store.db.QueryRow(ctx, sqlInsertTransaction,
		uuid.NewString(),
		input.AccountID.String(),
		input.Kind.String(),
		productID,
		input.Amount.String(),
		input.Status.String(),
		input.Target,
		input.ReferenceID.String(),
		input.Notes,
		input.Metadata.String(),
		timeOrNow(input.CreatedAt),
	)
	transaction, err := scanTransaction(row)
	if isUniqueViolation(err, constraintTransactionReference) {
		return ledger.Transaction{}, wrapStoreError(errorSubjectTransaction, errorCodeDuplicate, ledger.ErrDuplicateIdempotencyKey)
	}
	if err != nil {
		return ledger.Transaction{}, wrapStoreError(errorSubjectTransaction, errorCodeInsert, err)
	}
	return transaction, nil
}

func (store *Store) GetTransaction(ctx context.Context, transactionID ledger.TransactionID) (ledger.Transaction, error) {
	return store.findTransaction(ctx, sqlSelectTransaction, transactionID, errorCodeGet)
}

func (store *Store) LockTransaction(ctx context.Context, transactionID ledger.TransactionID) (ledger.Transaction, error) {
	return store.findTransaction(ctx, sqlLockTransaction, transactionID, errorCodeLock)
}

func (store *Store) FindTransactionByReference(ctx context.Context, referenceID ledger.IdempotencyKey) (ledger.Transaction, error) {
	if referenceID.IsZero() {
		return ledger.Transaction{}, wrapStoreError(errorSubjectTransaction, errorCodeLookup, ledger.ErrTransactionNotFound)
	}
	transaction, err := scanTransaction(store.db.QueryRow(ctx, sqlSelectTransactionByReference, referenceID.String()))
	if err != nil {
		return ledger.Transaction{}, notFoundOr(errorSubjectTransaction, errorCodeLookup, ledger.ErrTransactionNotFound, err)
	}
	return transaction, nil
}

func (store *Store) UpdateTransactionStatus(ctx context.Context, transactionID ledger.TransactionID, from, to ledger.TransactionStatus, at time.Time) (ledger.Transaction, error) {
	if !isUUID(transactionID.String()) {
		return ledger.Transaction{}, wrapStoreError(errorSubjectTransaction, errorCodeUpdateStatus, ledger.ErrTransactionNotFound)
	}
	row := store.db.QueryRow(ctx, sqlUpdateTransactionStatus, transactionID.String(), from.String(), to.String(), timeOrNow(at))
	transaction, err := scanTransaction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return ledger.Transaction{}, wrapStoreError(errorSubjectTransaction, errorCodeUpdateStatus, ledger.ErrConflict)
	}
	if err != nil {
		return ledger.Transaction{}, wrapStoreError(errorSubjectTransaction, errorCodeUpdateStatus, err)
	}
	return transaction, nil
}

func (store *Store) ListTransactions(ctx context.Context, accountID ledger.AccountID, page ledger.Page) ([]ledger.Transaction, error) {
	if !isUUID(accountID.String()) {
		return []ledger.Transaction{}, nil
	}
	rows, err := store.db.Query(ctx, sqlListTransactions, accountID.String(), page.Limit(), page.Offset())
	if err != nil {
		return nil, wrapStoreError(errorSubjectTransaction, errorCodeList, err)
	}
	defer rows.Close()
	transactions := make([]ledger.Transaction, 0, page.Limit())
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, wrapStoreError(errorSubjectTransaction, errorCodeInvalid, err)
		}
		transactions = append(transactions, transaction)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreError(errorSubjectTransaction, errorCodeList, err)
	}
	return transactions, nil
}

func (store *Store) findAccount(ctx context.Context, query string, accountID ledger.AccountID, code string) (ledger.Account, error) {
	if !isUUID(accountID.String()) {
		return ledger.Account{}, wrapStoreError(errorSubjectAccount, code, ledger.ErrAccountNotFound)
	}
	account, err := scanAccount(store.db.QueryRow(ctx, query, accountID.String()))
	if err != nil {
		return ledger.Account{}, notFoundOr(errorSubjectAccount, code, ledger.ErrAccountNotFound, err)
	}
	return account, nil
}

func (store *Store) findTransaction(ctx context.Context, query string, transactionID ledger.TransactionID, code string) (ledger.Transaction, error) {
	if !isUUID(transactionID.String()) {
		return ledger.Transaction{}, wrapStoreError(errorSubjectTransaction, code, ledger.ErrTransactionNotFound)
	}
	transaction, err := scanTransaction(store.db.QueryRow(ctx, query, transactionID.String()))
	if err != nil {
		return ledger.Transaction{}, notFoundOr(errorSubjectTransaction, code, ledger.ErrTransactionNotFound, err)
	}
	return transaction, nil
}

// scanAccount reads one row selected with accountColumns.
func scanAccount(row pgx.Row) (ledger.Account, error) {
	var (
		accountIDValue string
		balanceValue   string
		account        ledger.Account
	)
	if err := row.Scan(
		&accountIDValue,
		&account.Email,
		&account.FullName,
		&account.PhoneNumber,
		&balanceValue,
		&account.Version,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		return ledger.Account{}, err
	}
	accountID, err := ledger.NewAccountID(accountIDValue)
	if err != nil {
		return ledger.Account{}, err
	}
	balance, err := parseMoney(balanceValue)
	if err != nil {
		return ledger.Account{}, err
	}
	account.ID = accountID
	account.Balance = balance
	account.CreatedAt = account.CreatedAt.UTC()
	account.UpdatedAt = account.UpdatedAt.UTC()
	return account, nil
}

func scanProvider(row pgx.Row) (ledger.Provider, error) {
	var (
		providerIDValue string
		categoryValue   string
		provider        ledger.Provider
	)
	if err := row.Scan(
		&providerIDValue,
		&provider.Name,
		&categoryValue,
		&provider.LogoURL,
		&provider.IsActive,
		&provider.CreatedAt,
	); err != nil {
		return ledger.Provider{}, err
	}
	providerID, err := ledger.NewProviderID(providerIDValue)
	if err != nil {
		return ledger.Provider{}, err
	}
	category, err := ledger.ParseCategory(categoryValue)
	if err != nil {
		return ledger.Provider{}, err
	}
	provider.ID = providerID
	provider.Category = category
	provider.CreatedAt = provider.CreatedAt.UTC()
	return provider, nil
}

func scanProduct(row pgx.Row) (ledger.Product, error) {
	var (
		productIDValue  string
		providerIDValue string
		priceValue      string
		product         ledger.Product
	)
	if err := row.Scan(
		&productIDValue,
		&providerIDValue,
		&product.Name,
		&product.Description,
		&priceValue,
		&product.NominalValue,
		&product.IsActive,
		&product.CreatedAt,
	); err != nil {
		return ledger.Product{}, err
	}
	productID, err := ledger.NewProductID(productIDValue)
	if err != nil {
		return ledger.Product{}, err
	}
	providerID, err := ledger.NewProviderID(providerIDValue)
	if err != nil {
		return ledger.Product{}, err
	}
	price, err := parseMoney(priceValue)
	if err != nil {
		return ledger.Product{}, err
	}
	product.ID = productID
	product.ProviderID = providerID
	product.Price = price
	product.CreatedAt = product.CreatedAt.UTC()
	return product, nil
}

func scanTransaction(row pgx.Row) (ledger.Transaction, error) {
	var (
		transactionIDValue string
		accountIDValue     string
		kindValue          string
		productIDValue     string
		amountValue        string
		statusValue        string
		metadataValue      string
		transaction        ledger.Transaction
	)
	if err := row.Scan(
		&transactionIDValue,
		&accountIDValue,
		&kindValue,
		&productIDValue,
		&amountValue,
		&statusValue,
		&transaction.Target,
		&transaction.ReferenceID,
		&transaction.Notes,
		&metadataValue,
		&transaction.CreatedAt,
		&transaction.UpdatedAt,
	); err != nil {
		return ledger.Transaction{}, err
	}
	transactionID, err := ledger.NewTransactionID(transactionIDValue)
	if err != nil {
		return ledger.Transaction{}, err
	}
	accountID, err := ledger.NewAccountID(accountIDValue)
	if err != nil {
		return ledger.Transaction{}, err
	}
	kind, err := ledger.ParseTransactionKind(kindValue)
	if err != nil {
		return ledger.Transaction{}, err
	}
	status, err := ledger.ParseTransactionStatus(statusValue)
	if err != nil {
		return ledger.Transaction{}, err
	}
	amount, err := parseMoney(amountValue)
	if err != nil {
		return ledger.Transaction{}, err
	}
	metadata, err := ledger.NewMetadataJSON(metadataValue)
	if err != nil {
		return ledger.Transaction{}, err
	}
	if productIDValue != "" {
		productID, err := ledger.NewProductID(productIDValue)
		if err != nil {
			return ledger.Transaction{}, err
		}
		transaction.ProductID = productID
	}
	transaction.ID = transactionID
	transaction.AccountID = accountID
	transaction.Kind = kind
	transaction.Status = status
	transaction.Amount = amount
	transaction.Metadata = metadata
	transaction.CreatedAt = transaction.CreatedAt.UTC()
	transaction.UpdatedAt = transaction.UpdatedAt.UTC()
	return transaction, nil
}

func parseMoney(raw string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return ledger.NormalizeMoney(value), nil
}

func wrapStoreError(subject string, code string, err error) error {
	return ledger.WrapError(errorOperationStore, subject, code, err)
}

func notFoundOr(subject string, code string, notFound error, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return wrapStoreError(subject, code, notFound)
	}
	return wrapStoreError(subject, code, err)
}

func timeOrNow(value time.Time) time.Time {
	if value.IsZero() {
		return time.Now().UTC()
	}
	return value.UTC()
}

func isUUID(raw string) bool {
	_, err := uuid.Parse(raw)
	return err == nil
}

func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolationCode && pgErr.ConstraintName == constraint
	}
	return false
}
