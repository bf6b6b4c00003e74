package ledger

import (
	"context"
	"errors"
	"testing"
)

func TestCatalogAdministrationAndListing(test *testing.T) {
	test.Parallel()
	store := newStubStore(test)
	service := mustNewService(test, store)
	ctx := context.Background()

	pulsaInput, err := NewProviderInput("Telkomsel", CategoryPulsa, "", true, fixedTime)
	if err != nil {
		test.Fatalf("provider input: %v", err)
	}
	pulsa, err := service.CreateProvider(ctx, pulsaInput)
	if err != nil {
		test.Fatalf("create provider: %v", err)
	}
	gamesInput, err := NewProviderInput("Mobile Legends", CategoryGames, "", true, fixedTime)
	if err != nil {
		test.Fatalf("provider input: %v", err)
	}
	if _, err := service.CreateProvider(ctx, gamesInput); err != nil {
		test.Fatalf("create provider: %v", err)
	}
	hiddenInput, err := NewProviderInput("Retired", CategoryPLN, "", false, fixedTime)
	if err != nil {
		test.Fatalf("provider input: %v", err)
	}
	if _, err := service.CreateProvider(ctx, hiddenInput); err != nil {
		test.Fatalf("create provider: %v", err)
	}

	productInput, err := NewProductInput(pulsa.ID, "Pulsa 10.000", "", mustPositiveAmount(test, "10500"), "10000", true, fixedTime)
	if err != nil {
		test.Fatalf("product input: %v", err)
	}
	product, err := service.CreateProduct(ctx, productInput)
	if err != nil {
		test.Fatalf("create product: %v", err)
	}

	categories, err := service.ListCategories(ctx)
	if err != nil {
		test.Fatalf("categories: %v", err)
	}
	if len(categories) != 2 || categories[0] != CategoryGames || categories[1] != CategoryPulsa {
		test.Fatalf("unexpected categories %v", categories)
	}
	providers, err := service.ListProviders(ctx, CategoryPulsa)
	if err != nil || len(providers) != 1 || providers[0].ID != pulsa.ID {
		test.Fatalf("unexpected providers %v (%v)", providers, err)
	}
	if _, err := service.ListProviders(ctx, Category("lottery")); !errors.Is(err, ErrInvalidCategory) {
		test.Fatalf(errorMismatchMessage, ErrInvalidCategory, err)
	}

	products, err := service.ListProducts(ctx, pulsa.ID)
	if err != nil || len(products) != 1 {
		test.Fatalf("unexpected products %v (%v)", products, err)
	}
	if _, err := service.SetProductActive(ctx, product.ID, false); err != nil {
		test.Fatalf("deactivate: %v", err)
	}
	products, err = service.ListProducts(ctx, pulsa.ID)
	if err != nil || len(products) != 0 {
		test.Fatalf("expected inactive product hidden, got %v (%v)", products, err)
	}
	stored, err := service.Product(ctx, product.ID)
	if err != nil || stored.IsActive {
		test.Fatalf("expected inactive product, got %+v (%v)", stored, err)
	}
	owner, err := service.Provider(ctx, stored.ProviderID)
	if err != nil || owner.Category != CategoryPulsa {
		test.Fatalf("unexpected provider %+v (%v)", owner, err)
	}
	if _, err := service.Provider(ctx, ProviderID{}); !errors.Is(err, ErrInvalidProviderID) {
		test.Fatalf(errorMismatchMessage, ErrInvalidProviderID, err)
	}
}

func TestCreateProductRequiresProvider(test *testing.T) {
	test.Parallel()
	store := newStubStore(test)
	service := mustNewService(test, store)
	input, err := NewProductInput(ProviderID{value: "ghost"}, "Orphan", "", mustPositiveAmount(test, "1"), "1", true, fixedTime)
	if err != nil {
		test.Fatalf("product input: %v", err)
	}
	if _, err := service.CreateProduct(context.Background(), input); !errors.Is(err, ErrProviderNotFound) {
		test.Fatalf(errorMismatchMessage, ErrProviderNotFound, err)
	}
}

func TestCatalogInputValidation(test *testing.T) {
	test.Parallel()
	if _, err := NewProviderInput(" ", CategoryPulsa, "", true, fixedTime); !errors.Is(err, ErrInvalidName) {
		test.Fatalf(errorMismatchMessage, ErrInvalidName, err)
	}
	if _, err := NewProviderInput("X", Category("nope"), "", true, fixedTime); !errors.Is(err, ErrInvalidCategory) {
		test.Fatalf(errorMismatchMessage, ErrInvalidCategory, err)
	}
	if _, err := NewProductInput(ProviderID{}, "X", "", mustPositiveAmount(test, "1"), "", true, fixedTime); !errors.Is(err, ErrInvalidProviderID) {
		test.Fatalf(errorMismatchMessage, ErrInvalidProviderID, err)
	}
	if _, err := NewProductInput(ProviderID{value: "p"}, "X", "", PositiveAmount{}, "", true, fixedTime); !errors.Is(err, ErrInvalidAmount) {
		test.Fatalf(errorMismatchMessage, ErrInvalidAmount, err)
	}
}

func TestCatalogListingErrors(test *testing.T) {
	test.Parallel()
	store := newStubStore(test)
	store.failures().listCatalog = errStoreFailure
	service := mustNewService(test, store)
	if _, err := service.ListCategories(context.Background()); !errors.Is(err, errStoreFailure) {
		test.Fatalf(errorMismatchMessage, errStoreFailure, err)
	}
	if _, err := service.ListProducts(context.Background(), ProviderID{}); !errors.Is(err, ErrInvalidProviderID) {
		test.Fatalf(errorMismatchMessage, ErrInvalidProviderID, err)
	}
}
