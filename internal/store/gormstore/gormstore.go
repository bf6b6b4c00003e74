package gormstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MarkoPoloResearchLab/topup/pkg/ledger"
	gosqlite "github.com/glebarez/go-sqlite"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	constraintTransactionReference = "idx_transactions_reference"
	constraintAccountEmail         = "idx_accounts_email"
	defaultMetadataJSON            = "{}"
	pgUniqueViolationCode          = "23505"
	sqliteConstraintUnique         = 2067
	lockStrengthUpdate             = "UPDATE"
	lockStrengthShare              = "SHARE"
	errorOperationStore            = "store"
	errorSubjectAccount            = "account"
	errorSubjectBalance            = "balance"
	errorSubjectProvider           = "provider"
	errorSubjectProduct            = "product"
	errorSubjectTransaction        = "transaction"
	errorCodeCreate                = "create"
	errorCodeDuplicate             = "duplicate"
	errorCodeGet                   = "get"
	errorCodeInsert                = "insert"
	errorCodeInvalid               = "invalid"
	errorCodeList                  = "list"
	errorCodeLock                  = "lock"
	errorCodeLookup                = "lookup"
	errorCodeApply                 = "apply_delta"
	errorCodeUpdate                = "update"
	errorCodeUpdateStatus          = "update_status"
)

// Store implements ledger.Store using GORM.
type Store struct {
	db *gorm.DB
}

// New returns a Store backed by gorm.DB.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// AutoMigrate creates or updates the schema for every model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// WithTx executes fn within a transaction.
func (store *Store) WithTx(ctx context.Context, fn func(ctx context.Context, txStore ledger.Store) error) error {
	return store.db.WithContext(ctx).Transaction(func(transaction *gorm.DB) error {
		return fn(ctx, &Store{db: transaction})
	})
}

func (store *Store) CreateAccount(ctx context.Context, input ledger.AccountInput) (ledger.Account, error) {
	createdAt := timeOrNow(input.CreatedAt)
	model := Account{
		Email:       input.Email,
		FullName:    input.FullName,
		PhoneNumber: optionalString(input.PhoneNumber),
		Balance:     decimal.Zero,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	err := store.db.WithContext(ctx).Create(&model).Error
	if isUniqueViolation(err, constraintAccountEmail) {
		return ledger.Account{}, wrapStoreError(errorSubjectAccount, errorCodeDuplicate, ledger.ErrAccountExists)
	}
	if err != nil {
		return ledger.Account{}, wrapStoreError(errorSubjectAccount, errorCodeCreate, err)
	}
	return mapAccount(model)
}

func (store *Store) GetAccount(ctx context.Context, accountID ledger.AccountID) (ledger.Account, error) {
	return store.findAccount(ctx, accountID, "", errorCodeGet)
}

// UpdateAccountProfile writes contact fields and updated_at. Balance and version are not touched.
func (store *Store) UpdateAccountProfile(ctx context.Context, update ledger.ProfileUpdate) (ledger.Account, error) {
	if !isUUID(update.AccountID.String()) {
		return ledger.Account{}, wrapStoreError(errorSubjectAccount, errorCodeUpdate, ledger.ErrAccountNotFound)
	}
	columns := map[string]any{"updated_at": timeOrNow(update.At)}
	if update.FullName != nil {
		columns["full_name"] = *update.FullName
	}
	if update.PhoneNumber != nil {
		columns["phone_number"] = optionalString(*update.PhoneNumber)
	}
	result := store.db.WithContext(ctx).
		Model(&Account{}).
		Where("account_id = ?", update.AccountID.String()).
		UpdateColumns(columns)
	if result.Error != nil {
		return ledger.Account{}, wrapStoreError(errorSubjectAccount, errorCodeUpdate, result.Error)
	}
	if result.RowsAffected == 0 {
		return ledger.Account{}, wrapStoreError(errorSubjectAccount, errorCodeUpdate, ledger.ErrAccountNotFound)
	}
	return store.findAccount(ctx, update.AccountID, "", errorCodeGet)
}

func (store *Store) LockAccount(ctx context.Context, accountID ledger.AccountID) (ledger.Account, error) {
	return store.findAccount(ctx, accountID, lockStrengthUpdate, errorCodeLock)
}

// ApplyDelta locks the account row, checks the floor, and writes the new balance with a
// version-guarded update. A lost race surfaces as ledger.ErrConflict.
func (store *Store) ApplyDelta(ctx context.Context, delta ledger.BalanceDelta) (ledger.Account, error) {
	var model Account
	err := store.accountQuery(ctx, delta.AccountID, lockStrengthUpdate).Take(&model).Error
	if err != nil {
		return ledger.Account{}, notFoundOr(errorSubjectBalance, errorCodeApply, ledger.ErrAccountNotFound, err)
	}
	if delta.ExpectedVersion >= 0 && model.Version != delta.ExpectedVersion {
		return ledger.Account{}, wrapStoreError(errorSubjectBalance, errorCodeApply, ledger.ErrConflict)
	}
	next := ledger.NormalizeMoney(model.Balance).Add(delta.Amount)
	if next.LessThan(delta.Floor) {
		return ledger.Account{}, wrapStoreError(errorSubjectBalance, errorCodeApply, ledger.ErrInsufficientFunds)
	}
	updatedAt := timeOrNow(delta.At)
	result := store.db.WithContext(ctx).
		Model(&Account{}).
		Where("account_id = ? AND version = ?", model.AccountID, model.Version).
		UpdateColumns(map[string]any{
			"balance":    next,
			"version":    model.Version + 1,
			"updated_at": updatedAt,
		})
	if result.Error != nil {
		return ledger.Account{}, wrapStoreError(errorSubjectBalance, errorCodeApply, result.Error)
	}
	if result.RowsAffected == 0 {
		return ledger.Account{}, wrapStoreError(errorSubjectBalance, errorCodeApply, ledger.ErrConflict)
	}
	model.Balance = next
	model.Version++
	model.UpdatedAt = updatedAt
	return mapAccount(model)
}

func (store *Store) GetProduct(ctx context.Context, productID ledger.ProductID) (ledger.Product, error) {
	if !isUUID(productID.String()) {
		return ledger.Product{}, wrapStoreError(errorSubjectProduct, errorCodeGet, ledger.ErrProductNotFound)
	}
	var model Product
	err := store.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: lockStrengthShare}).
		Where("product_id = ?", productID.String()).
		Take(&model).Error
	if err != nil {
		return ledger.Product{}, notFoundOr(errorSubjectProduct, errorCodeGet, ledger.ErrProductNotFound, err)
	}
	return mapProduct(model)
}

func (store *Store) GetProvider(ctx context.Context, providerID ledger.ProviderID) (ledger.Provider, error) {
	if !isUUID(providerID.String()) {
		return ledger.Provider{}, wrapStoreError(errorSubjectProvider, errorCodeGet, ledger.ErrProviderNotFound)
	}
	var model Provider
	err := store.db.WithContext(ctx).Where("provider_id = ?", providerID.String()).Take(&model).Error
	if err != nil {
		return ledger.Provider{}, notFoundOr(errorSubjectProvider, errorCodeGet, ledger.ErrProviderNotFound, err)
	}
	return mapProvider(model)
}

func (store *Store) ListCategories(ctx context.Context) ([]ledger.Category, error) {
	var names []string
	err := store.db.WithContext(ctx).
		Model(&Provider{}).
		Distinct().
		Where("is_active = ?", true).
		Order("category").
		Pluck("category", &names).Error
	if err != nil {
		return nil, wrapStoreError(errorSubjectProvider, errorCodeList, err)
	}
	categories := make([]ledger.Category, 0, len(names))
	for _, name := range names {
		category, err := ledger.ParseCategory(name)
		if err != nil {
			return nil, wrapStoreError(errorSubjectProvider, errorCodeInvalid, err)
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func (store *Store) ListProviders(ctx context.Context, category ledger.Category) ([]ledger.Provider, error) {
	var rows []Provider
	err := store.db.WithContext(ctx).
		Where("category = ? AND is_active = ?", category.String(), true).
		Order("name").
		Find(&rows).Error
	if err != nil {
		return nil, wrapStoreError(errorSubjectProvider, errorCodeList, err)
	}
	providers := make([]ledger.Provider, 0, len(rows))
	for _, row := range rows {
		provider, err := mapProvider(row)
		if err != nil {
			return nil, err
		}
		providers = append(providers, provider)
	}
	return providers, nil
}

func (store *Store) ListProducts(ctx context.Context, providerID ledger.ProviderID) ([]ledger.Product, error) {
	if !isUUID(providerID.String()) {
		return []ledger.Product{}, nil
	}
	var rows []Product
	err := store.db.WithContext(ctx).
		Where("provider_id = ? AND is_active = ?", providerID.String(), true).
		Order("price ASC").
		Order("name").
		Find(&rows).Error
	if err != nil {
		return nil, wrapStoreError(errorSubjectProduct, errorCodeList, err)
	}
	products := make([]ledger.Product, 0, len(rows))
	for _, row := range rows {
		product, err := mapProduct(row)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

func (store *Store) CreateProvider(ctx context.Context, input ledger.ProviderInput) (ledger.Provider, error) {
	model := Provider{
		Name:      input.Name,
		Category:  input.Category.String(),
		LogoURL:   optionalString(input.LogoURL),
		IsActive:  input.IsActive,
		CreatedAt: timeOrNow(input.CreatedAt),
	}
	if err := store.db.WithContext(ctx).Create(&model).Error; err != nil {
		return ledger.Provider{}, wrapStoreError(errorSubjectProvider, errorCodeCreate, err)
	}
	return mapProvider(model)
}

func (store *Store) CreateProduct(ctx context.Context, input ledger.ProductInput) (ledger.Product, error) {
	model := Product{
		ProviderID:   input.ProviderID.String(),
		Name:         input.Name,
		Description:  optionalString(input.Description),
		Price:        input.Price.Decimal(),
		NominalValue: input.NominalValue,
		IsActive:     input.IsActive,
		CreatedAt:    timeOrNow(input.CreatedAt),
	}
	if err := store.db.WithContext(ctx).Create(&model).Error; err != nil {
		return ledger.Product{}, wrapStoreError(errorSubjectProduct, errorCodeCreate, err)
	}
	return mapProduct(model)
}

func (store *Store) UpdateProduct(ctx context.Context, update ledger.ProductUpdate) (ledger.Product, error) {
	if !isUUID(update.ID.String()) {
		return ledger.Product{}, wrapStoreError(errorSubjectProduct, errorCodeUpdate, ledger.ErrProductNotFound)
	}
	columns := map[string]any{}
	if update.Price != nil {
		columns["price"] = update.Price.Decimal()
	}
	if update.IsActive != nil {
		columns["is_active"] = *update.IsActive
	}
	if len(columns) > 0 {
		result := store.db.WithContext(ctx).
			Model(&Product{}).
			Where("product_id = ?", update.ID.String()).
			UpdateColumns(columns)
		if result.Error != nil {
			return ledger.Product{}, wrapStoreError(errorSubjectProduct, errorCodeUpdate, result.Error)
		}
		if result.RowsAffected == 0 {
			return ledger.Product{}, wrapStoreError(errorSubjectProduct, errorCodeUpdate, ledger.ErrProductNotFound)
		}
	}
	var model Product
	if err := store.db.WithContext(ctx).Where("product_id = ?", update.ID.String()).Take(&model).Error; err != nil {
		return ledger.Product{}, notFoundOr(errorSubjectProduct, errorCodeGet, ledger.ErrProductNotFound, err)
	}
	return mapProduct(model)
}

func (store *Store) InsertTransaction(ctx context.Context, input ledger.TransactionInput) (ledger.Transaction, error) {
	createdAt := timeOrNow(input.CreatedAt)
	model := Transaction{
		AccountID:   input.AccountID.String(),
		Kind:        input.Kind.String(),
		Amount:      input.Amount.Decimal(),
		Status:      input.Status.String(),
		Target:      input.Target,
		ReferenceID: optionalString(input.ReferenceID.String()),
		Notes:       optionalString(input.Notes),
		Metadata:    datatypesJSON(input.Metadata.String()),
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
	if !input.ProductID.IsZero() {
		model.ProductID = optionalString(input.ProductID.String())
	}
	err := store.db.WithContext(ctx).Create(&model).Error
	if isUniqueViolation(err, constraintTransactionReference) {
		return ledger.Transaction{}, wrapStoreError(errorSubjectTransaction, errorCodeDuplicate, ledger.ErrDuplicateIdempotencyKey)
	}
	if err != nil {
		return ledger.Transaction{}, wrapStoreError(errorSubjectTransaction, errorCodeInsert, err)
	}
	return mapTransaction(model)
}

func (store *Store) GetTransaction(ctx context.Context, transactionID ledger.TransactionID) (ledger.Transaction, error) {
	return store.findTransaction(ctx, transactionID, "", errorCodeGet)
}

func (store *Store) LockTransaction(ctx context.Context, transactionID ledger.TransactionID) (ledger.Transaction, error) {
	return store.findTransaction(ctx, transactionID, lockStrengthUpdate, errorCodeLock)
}

func (store *Store) FindTransactionByReference(ctx context.Context, referenceID ledger.IdempotencyKey) (ledger.Transaction, error) {
	if referenceID.IsZero() {
		return ledger.Transaction{}, wrapStoreError(errorSubjectTransaction, errorCodeLookup, ledger.ErrTransactionNotFound)
	}
	var model Transaction
	err := store.db.WithContext(ctx).Where("reference_id = ?", referenceID.String()).Take(&model).Error
	if err != nil {
		return ledger.Transaction{}, notFoundOr(errorSubjectTransaction, errorCodeLookup, ledger.ErrTransactionNotFound, err)
	}
	return mapTransaction(model)
}

func (store *Store) UpdateTransactionStatus(ctx context.Context, transactionID ledger.TransactionID, from, to ledger.TransactionStatus, at time.Time) (ledger.Transaction, error) {
	result := store.db.WithContext(ctx).
		Model(&Transaction{}).
		Where("transaction_id = ? AND status = ?", transactionID.String(), from.String()).
		UpdateColumns(map[string]any{
			"status":     to.String(),
			"updated_at": timeOrNow(at),
		})
	if result.Error != nil {
		return ledger.Transaction{}, wrapStoreError(errorSubjectTransaction, errorCodeUpdateStatus, result.Error)
	}
	if result.RowsAffected == 0 {
		return ledger.Transaction{}, wrapStoreError(errorSubjectTransaction, errorCodeUpdateStatus, ledger.ErrConflict)
	}
	return store.findTransaction(ctx, transactionID, "", errorCodeGet)
}

func (store *Store) ListTransactions(ctx context.Context, accountID ledger.AccountID, page ledger.Page) ([]ledger.Transaction, error) {
	if !isUUID(accountID.String()) {
		return []ledger.Transaction{}, nil
	}
	var rows []Transaction
	err := store.db.WithContext(ctx).
		Where("account_id = ?", accountID.String()).
		Order("created_at DESC").
		Order("transaction_id DESC").
		Limit(page.Limit()).
		Offset(page.Offset()).
		Find(&rows).Error
	if err != nil {
		return nil, wrapStoreError(errorSubjectTransaction, errorCodeList, err)
	}
	transactions := make([]ledger.Transaction, 0, len(rows))
	for _, row := range rows {
		transaction, err := mapTransaction(row)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, nil
}

func (store *Store) accountQuery(ctx context.Context, accountID ledger.AccountID, lockStrength string) *gorm.DB {
	query := store.db.WithContext(ctx)
	if lockStrength != "" {
		query = query.Clauses(clause.Locking{Strength: lockStrength})
	}
	return query.Where("account_id = ?", accountID.String())
}

func (store *Store) findAccount(ctx context.Context, accountID ledger.AccountID, lockStrength string, code string) (ledger.Account, error) {
	if !isUUID(accountID.String()) {
		return ledger.Account{}, wrapStoreError(errorSubjectAccount, code, ledger.ErrAccountNotFound)
	}
	var model Account
	if err := store.accountQuery(ctx, accountID, lockStrength).Take(&model).Error; err != nil {
		return ledger.Account{}, notFoundOr(errorSubjectAccount, code, ledger.ErrAccountNotFound, err)
	}
	return mapAccount(model)
}

func (store *Store) findTransaction(ctx context.Context, transactionID ledger.TransactionID, lockStrength string, code string) (ledger.Transaction, error) {
	if !isUUID(transactionID.String()) {
		return ledger.Transaction{}, wrapStoreError(errorSubjectTransaction, code, ledger.ErrTransactionNotFound)
	}
	query := store.db.WithContext(ctx)
	if lockStrength != "" {
		query = query.Clauses(clause.Locking{Strength: lockStrength})
	}
	var model Transaction
	if err := query.Where("transaction_id = ?", transactionID.String()).Take(&model).Error; err != nil {
		return ledger.Transaction{}, notFoundOr(errorSubjectTransaction, code, ledger.ErrTransactionNotFound, err)
	}
	return mapTransaction(model)
}

func wrapStoreError(subject string, code string, err error) error {
	return ledger.WrapError(errorOperationStore, subject, code, err)
}

func notFoundOr(subject string, code string, notFound error, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return wrapStoreError(subject, code, notFound)
	}
	return wrapStoreError(subject, code, err)
}

func mapAccount(row Account) (ledger.Account, error) {
	accountID, err := ledger.NewAccountID(row.AccountID)
	if err != nil {
		return ledger.Account{}, wrapStoreError(errorSubjectAccount, errorCodeInvalid, err)
	}
	return ledger.Account{
		ID:          accountID,
		Email:       row.Email,
		FullName:    row.FullName,
		PhoneNumber: stringOrEmpty(row.PhoneNumber),
		Balance:     ledger.NormalizeMoney(row.Balance),
		Version:     row.Version,
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
	}, nil
}

func mapProvider(row Provider) (ledger.Provider, error) {
	providerID, err := ledger.NewProviderID(row.ProviderID)
	if err != nil {
		return ledger.Provider{}, wrapStoreError(errorSubjectProvider, errorCodeInvalid, err)
	}
	category, err := ledger.ParseCategory(row.Category)
	if err != nil {
		return ledger.Provider{}, wrapStoreError(errorSubjectProvider, errorCodeInvalid, err)
	}
	return ledger.Provider{
		ID:        providerID,
		Name:      row.Name,
		Category:  category,
		LogoURL:   stringOrEmpty(row.LogoURL),
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt.UTC(),
	}, nil
}

func mapProduct(row Product) (ledger.Product, error) {
	productID, err := ledger.NewProductID(row.ProductID)
	if err != nil {
		return ledger.Product{}, wrapStoreError(errorSubjectProduct, errorCodeInvalid, err)
	}
	providerID, err := ledger.NewProviderID(row.ProviderID)
	if err != nil {
		return ledger.Product{}, wrapStoreError(errorSubjectProduct, errorCodeInvalid, err)
	}
	return ledger.Product{
		ID:           productID,
		ProviderID:   providerID,
		Name:         row.Name,
		Description:  stringOrEmpty(row.Description),
		Price:        ledger.NormalizeMoney(row.Price),
		NominalValue: row.NominalValue,
		IsActive:     row.IsActive,
		CreatedAt:    row.CreatedAt.UTC(),
	}, nil
}

func mapTransaction(row Transaction) (ledger.Transaction, error) {
	transactionID, err := ledger.NewTransactionID(row.TransactionID)
	if err != nil {
		return ledger.Transaction{}, wrapStoreError(errorSubjectTransaction, errorCodeInvalid, err)
	}
	accountID, err := ledger.NewAccountID(row.AccountID)
	if err != nil {
		return ledger.Transaction{}, wrapStoreError(errorSubjectTransaction, errorCodeInvalid, err)
	}
	kind, err := ledger.ParseTransactionKind(row.Kind)
	if err != nil {
		return ledger.Transaction{}, wrapStoreError(errorSubjectTransaction, errorCodeInvalid, err)
	}
	status, err := ledger.ParseTransactionStatus(row.Status)
	if err != nil {
		return ledger.Transaction{}, wrapStoreError(errorSubjectTransaction, errorCodeInvalid, err)
	}
	metadata, err := ledger.NewMetadataJSON(string(row.Metadata))
	if err != nil {
		return ledger.Transaction{}, wrapStoreError(errorSubjectTransaction, errorCodeInvalid, err)
	}
	transaction := ledger.Transaction{
		ID:          transactionID,
		AccountID:   accountID,
		Kind:        kind,
		Amount:      ledger.NormalizeMoney(row.Amount),
		Status:      status,
		Target:      row.Target,
		ReferenceID: stringOrEmpty(row.ReferenceID),
		Notes:       stringOrEmpty(row.Notes),
		Metadata:    metadata,
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
	}
	if row.ProductID != nil {
		productID, err := ledger.NewProductID(*row.ProductID)
		if err != nil {
			return ledger.Transaction{}, wrapStoreError(errorSubjectTransaction, errorCodeInvalid, err)
		}
		transaction.ProductID = productID
	}
	return transaction, nil
}

func datatypesJSON(raw string) datatypes.JSON {
	if raw == "" {
		return datatypes.JSON([]byte(defaultMetadataJSON))
	}
	return datatypes.JSON([]byte(raw))
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

func stringOrEmpty(value *string) string {
	if value == nil {
		return ""
	}
	return *value
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

// sqliteUniqueColumns maps index names to the column list SQLite reports for them.
var sqliteUniqueColumns = map[string]string{
	constraintAccountEmail:         "accounts.email",
	constraintTransactionReference: "transactions.reference_id",
}

func isUniqueViolation(err error, constraint string) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolationCode && pgErr.ConstraintName == constraint
	}
	var sqliteErr *gosqlite.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.Code() != sqliteConstraintUnique {
			return false
		}
		message := sqliteErr.Error()
		if strings.Contains(message, constraint) {
			return true
		}
		columns, known := sqliteUniqueColumns[constraint]
		return known && strings.Contains(message, columns)
	}
	return false
}
