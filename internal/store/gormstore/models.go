package gormstore

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Account represents the accounts table.
type Account struct {
	AccountID   string          `gorm:"type:uuid;primaryKey"`
	Email       string          `gorm:"not null;uniqueIndex:idx_accounts_email"`
	FullName    string          `gorm:"not null"`
	PhoneNumber *string         `gorm:""`
	Balance     decimal.Decimal `gorm:"type:numeric(15,2);not null;check:chk_accounts_balance_nonnegative,balance >= 0"`
	Version     int64           `gorm:"not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

func (Account) TableName() string { return "accounts" }

func (account *Account) BeforeCreate(tx *gorm.DB) error {
	if account.AccountID == "" {
		account.AccountID = uuid.NewString()
	}
	return nil
}

// Provider represents the providers table.
type Provider struct {
	ProviderID string    `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"not null"`
	Category   string    `gorm:"not null;index:idx_providers_category"`
	LogoURL    *string   `gorm:""`
	IsActive   bool      `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

func (Provider) TableName() string { return "providers" }

func (provider *Provider) BeforeCreate(tx *gorm.DB) error {
	if provider.ProviderID == "" {
		provider.ProviderID = uuid.NewString()
	}
	return nil
}

// Product represents the products table.
type Product struct {
	ProductID    string          `gorm:"type:uuid;primaryKey"`
	ProviderID   string          `gorm:"type:uuid;not null;index:idx_products_provider"`
	Name         string          `gorm:"not null"`
	Description  *string         `gorm:""`
	Price        decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	NominalValue string          `gorm:"not null"`
	IsActive     bool            `gorm:"not null"`
	CreatedAt    time.Time       `gorm:"not null"`
}

func (Product) TableName() string { return "products" }

func (product *Product) BeforeCreate(tx *gorm.DB) error {
	if product.ProductID == "" {
		product.ProductID = uuid.NewString()
	}
	return nil
}

// Transaction mirrors the transactions table.
type Transaction struct {
	TransactionID string          `gorm:"type:uuid;primaryKey"`
	AccountID     string          `gorm:"type:uuid;not null;index:idx_transactions_account_created,priority:1"`
	Kind          string          `gorm:"not null"`
	ProductID     *string         `gorm:"type:uuid"`
	Amount        decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	Status        string          `gorm:"not null"`
	Target        string          `gorm:"not null"`
	ReferenceID   *string         `gorm:"uniqueIndex:idx_transactions_reference"`
	Notes         *string         `gorm:""`
	Metadata      datatypes.JSON  `gorm:"not null"`
	CreatedAt     time.Time       `gorm:"not null;index:idx_transactions_account_created,priority:2,sort:desc"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

func (Transaction) TableName() string { return "transactions" }

func (transaction *Transaction) BeforeCreate(tx *gorm.DB) error {
	if transaction.TransactionID == "" {
		transaction.TransactionID = uuid.NewString()
	}
	return nil
}

// Models lists every table managed by the store, in dependency order.
func Models() []any {
	return []any{&Account{}, &Provider{}, &Product{}, &Transaction{}}
}
