package ledger

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Category groups providers in the storefront.
type Category string

const (
	CategoryGames      Category = "games"
	CategoryEMoney     Category = "e_money"
	CategoryPulsa      Category = "pulsa"
	CategoryData       Category = "data"
	CategoryTlpSms     Category = "tlp_sms"
	CategoryMasaAktif  Category = "masa_aktif"
	CategoryPLN        Category = "pln"
	CategoryVoucher    Category = "voucher"
	CategoryStreaming  Category = "streaming"
	CategoryPascabayar Category = "pascabayar"
)

var knownCategories = []Category{
	CategoryGames,
	CategoryEMoney,
	CategoryPulsa,
	CategoryData,
	CategoryTlpSms,
	CategoryMasaAktif,
	CategoryPLN,
	CategoryVoucher,
	CategoryStreaming,
	CategoryPascabayar,
}

// AllCategories returns every known category.
func AllCategories() []Category {
	categories := make([]Category, len(knownCategories))
	copy(categories, knownCategories)
	return categories
}

// ParseCategory validates a category name.
func ParseCategory(raw string) (Category, error) {
	normalized := Category(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range knownCategories {
		if normalized == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCategory, raw)
}

// String returns the category name.
func (category Category) String() string {
	return string(category)
}

// SortCategories orders categories by name in place.
func SortCategories(categories []Category) {
	sort.Slice(categories, func(left, right int) bool {
		return categories[left] < categories[right]
	})
}

// Provider is a brand or service offering products in one category.
type Provider struct {
	ID        ProviderID
	Name      string
	Category  Category
	LogoURL   string
	IsActive  bool
	CreatedAt time.Time
}

// Product is a priced, purchasable item.
type Product struct {
	ID           ProductID
	ProviderID   ProviderID
	Name         string
	Description  string
	Price        decimal.Decimal
	NominalValue string
	IsActive     bool
	CreatedAt    time.Time
}

// ProviderInput carries the fields for a new provider.
type ProviderInput struct {
	Name      string
	Category  Category
	LogoURL   string
	IsActive  bool
	CreatedAt time.Time
}

// NewProviderInput validates a provider definition.
func NewProviderInput(name string, category Category, logoURL string, isActive bool, createdAt time.Time) (ProviderInput, error) {
	normalizedName := strings.TrimSpace(name)
	if normalizedName == "" {
		return ProviderInput{}, fmt.Errorf("%w: empty provider name", ErrInvalidName)
	}
	if _, err := ParseCategory(category.String()); err != nil {
		return ProviderInput{}, err
	}
	return ProviderInput{
		Name:      normalizedName,
		Category:  category,
		LogoURL:   strings.TrimSpace(logoURL),
		IsActive:  isActive,
		CreatedAt: createdAt,
	}, nil
}

// ProductInput carries the fields for a new product.
type ProductInput struct {
	ProviderID   ProviderID
	Name         string
	Description  string
	Price        PositiveAmount
	NominalValue string
	IsActive     bool
	CreatedAt    time.Time
}

// NewProductInput validates a product definition.
func NewProductInput(providerID ProviderID, name string, description string, price PositiveAmount, nominalValue string, isActive bool, createdAt time.Time) (ProductInput, error) {
	if providerID.IsZero() {
		return ProductInput{}, fmt.Errorf("%w: empty value", ErrInvalidProviderID)
	}
	normalizedName := strings.TrimSpace(name)
	if normalizedName == "" {
		return ProductInput{}, fmt.Errorf("%w: empty product name", ErrInvalidName)
	}
	if !price.IsValid() {
		return ProductInput{}, fmt.Errorf("%w: price must be greater than zero", ErrInvalidAmount)
	}
	return ProductInput{
		ProviderID:   providerID,
		Name:         normalizedName,
		Description:  strings.TrimSpace(description),
		Price:        price,
		NominalValue: strings.TrimSpace(nominalValue),
		IsActive:     isActive,
		CreatedAt:    createdAt,
	}, nil
}

// ProductUpdate changes price and/or availability. Nil fields are left untouched.
type ProductUpdate struct {
	ID       ProductID
	Price    *PositiveAmount
	IsActive *bool
}

// CatalogReader is the read-only catalog surface shown to customers.
type CatalogReader interface {
	ListCategories(ctx context.Context) ([]Category, error)
	ListProviders(ctx context.Context, category Category) ([]Provider, error)
	ListProducts(ctx context.Context, providerID ProviderID) ([]Product, error)
}

// CatalogStore holds providers and products.
type CatalogStore interface {
	CatalogReader
	// GetProduct reads the product with a shared lock so price and availability hold until commit.
	GetProduct(ctx context.Context, productID ProductID) (Product, error)
	GetProvider(ctx context.Context, providerID ProviderID) (Provider, error)
	CreateProvider(ctx context.Context, input ProviderInput) (Provider, error)
	CreateProduct(ctx context.Context, input ProductInput) (Product, error)
	UpdateProduct(ctx context.Context, update ProductUpdate) (Product, error)
}
