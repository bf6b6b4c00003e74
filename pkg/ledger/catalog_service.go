package ledger

import (
	"context"
	"fmt"
)

// ListCategories returns the categories that have at least one active provider.
func (service *Service) ListCategories(ctx context.Context) ([]Category, error) {
	categories, err := service.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	SortCategories(categories)
	return categories, nil
}

// ListProviders returns active providers in a category.
func (service *Service) ListProviders(ctx context.Context, category Category) ([]Provider, error) {
	if _, err := ParseCategory(category.String()); err != nil {
		return nil, err
	}
	return service.store.ListProviders(ctx, category)
}

// ListProducts returns active products offered by a provider.
func (service *Service) ListProducts(ctx context.Context, providerID ProviderID) ([]Product, error) {
	if providerID.IsZero() {
		return nil, fmt.Errorf("%w: empty value", ErrInvalidProviderID)
	}
	return service.store.ListProducts(ctx, providerID)
}

// Product returns a single product, active or not.
func (service *Service) Product(ctx context.Context, productID ProductID) (Product, error) {
	if productID.IsZero() {
		return Product{}, fmt.Errorf("%w: empty value", ErrInvalidProductID)
	}
	return service.store.GetProduct(ctx, productID)
}

// Provider returns a single provider, active or not.
func (service *Service) Provider(ctx context.Context, providerID ProviderID) (Provider, error) {
	if providerID.IsZero() {
		return Provider{}, fmt.Errorf("%w: empty value", ErrInvalidProviderID)
	}
	return service.store.GetProvider(ctx, providerID)
}

// CreateProvider registers a provider.
func (service *Service) CreateProvider(ctx context.Context, input ProviderInput) (Provider, error) {
	var provider Provider
	operationError := service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
		created, err := transactionStore.CreateProvider(ctx, input)
		if err != nil {
			return err
		}
		provider = created
		return ctx.Err()
	})
	service.logOperation(ctx, OperationLog{Operation: operationCreateProvider, Error: operationError})
	if operationError != nil {
		return Provider{}, operationError
	}
	return provider, nil
}

// CreateProduct registers a product under an existing provider.
func (service *Service) CreateProduct(ctx context.Context, input ProductInput) (Product, error) {
	var product Product
	operationError := service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
		if _, err := transactionStore.GetProvider(ctx, input.ProviderID); err != nil {
			return err
		}
		created, err := transactionStore.CreateProduct(ctx, input)
		if err != nil {
			return err
		}
		product = created
		return ctx.Err()
	})
	service.logOperation(ctx, OperationLog{
		Operation: operationCreateProduct,
		ProductID: product.ID,
		Amount:    input.Price.Decimal(),
		Error:     operationError,
	})
	if operationError != nil {
		return Product{}, operationError
	}
	return product, nil
}

// SetProductActive enables or disables a product. Purchases re-check this flag at commit.
func (service *Service) SetProductActive(ctx context.Context, productID ProductID, isActive bool) (Product, error) {
	return service.updateProduct(ctx, ProductUpdate{ID: productID, IsActive: &isActive})
}

// SetProductPrice changes a product's price. Past transactions keep the price they were charged.
func (service *Service) SetProductPrice(ctx context.Context, productID ProductID, price PositiveAmount) (Product, error) {
	if !price.IsValid() {
		return Product{}, fmt.Errorf("%w: price must be greater than zero", ErrInvalidAmount)
	}
	return service.updateProduct(ctx, ProductUpdate{ID: productID, Price: &price})
}

func (service *Service) updateProduct(ctx context.Context, update ProductUpdate) (Product, error) {
	var product Product
	var operationError error
	if update.ID.IsZero() {
		operationError = fmt.Errorf("%w: empty value", ErrInvalidProductID)
	} else {
		operationError = service.store.WithTx(ctx, func(ctx context.Context, transactionStore Store) error {
			updated, err := transactionStore.UpdateProduct(ctx, update)
			if err != nil {
				return err
			}
			product = updated
			return ctx.Err()
		})
	}
	service.logOperation(ctx, OperationLog{
		Operation: operationUpdateProduct,
		ProductID: update.ID,
		Amount:    product.Price,
		Error:     operationError,
	})
	if operationError != nil {
		return Product{}, operationError
	}
	return product, nil
}
