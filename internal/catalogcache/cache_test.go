package catalogcache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MarkoPoloResearchLab/topup/pkg/ledger"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type memoryClient struct {
	mutex   sync.Mutex
	values  map[string]string
	ttls    map[string]time.Duration
	failGet error
	failSet error
}

func newMemoryClient() *memoryClient {
	return &memoryClient{values: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (client *memoryClient) Get(_ context.Context, key string) *redis.StringCmd {
	client.mutex.Lock()
	defer client.mutex.Unlock()
	if client.failGet != nil {
		return redis.NewStringResult("", client.failGet)
	}
	value, ok := client.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(value, nil)
}

func (client *memoryClient) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	client.mutex.Lock()
	defer client.mutex.Unlock()
	if client.failSet != nil {
		return redis.NewStatusResult("", client.failSet)
	}
	raw, ok := value.([]byte)
	if !ok {
		return redis.NewStatusResult("", errors.New("unexpected value type"))
	}
	client.values[key] = string(raw)
	client.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (client *memoryClient) Del(_ context.Context, keys ...string) *redis.IntCmd {
	client.mutex.Lock()
	defer client.mutex.Unlock()
	var removed int64
	for _, key := range keys {
		if _, ok := client.values[key]; ok {
			delete(client.values, key)
			removed++
		}
	}
	return redis.NewIntResult(removed, nil)
}

type countingCatalog struct {
	mutex      sync.Mutex
	calls      map[string]int
	categories []ledger.Category
	providers  []ledger.Provider
	products   []ledger.Product
	err        error
}

func (catalog *countingCatalog) count(name string) {
	catalog.mutex.Lock()
	defer catalog.mutex.Unlock()
	if catalog.calls == nil {
		catalog.calls = map[string]int{}
	}
	catalog.calls[name]++
}

func (catalog *countingCatalog) callCount(name string) int {
	catalog.mutex.Lock()
	defer catalog.mutex.Unlock()
	return catalog.calls[name]
}

func (catalog *countingCatalog) ListCategories(context.Context) ([]ledger.Category, error) {
	catalog.count("categories")
	return catalog.categories, catalog.err
}

func (catalog *countingCatalog) ListProviders(context.Context, ledger.Category) ([]ledger.Provider, error) {
	catalog.count("providers")
	return catalog.providers, catalog.err
}

func (catalog *countingCatalog) ListProducts(context.Context, ledger.ProviderID) ([]ledger.Product, error) {
	catalog.count("products")
	return catalog.products, catalog.err
}

func sampleCatalog(test *testing.T) *countingCatalog {
	test.Helper()
	providerID, err := ledger.NewProviderID("5b1f1a3c-1d2e-4f5a-8b9c-0d1e2f3a4b5c")
	if err != nil {
		test.Fatalf("provider id: %v", err)
	}
	productID, err := ledger.NewProductID("9a8b7c6d-5e4f-4a3b-9c2d-1e0f9a8b7c6d")
	if err != nil {
		test.Fatalf("product id: %v", err)
	}
	createdAt := time.Date(2024, time.January, 5, 8, 0, 0, 0, time.UTC)
	return &countingCatalog{
		categories: []ledger.Category{ledger.CategoryGames, ledger.CategoryPulsa},
		providers: []ledger.Provider{{
			ID:        providerID,
			Name:      "Telkomsel",
			Category:  ledger.CategoryPulsa,
			LogoURL:   "https://cdn.example.com/telkomsel.png",
			IsActive:  true,
			CreatedAt: createdAt,
		}},
		products: []ledger.Product{{
			ID:           productID,
			ProviderID:   providerID,
			Name:         "Pulsa 25k",
			Price:        decimal.RequireFromString("25500.50"),
			NominalValue: "25000",
			IsActive:     true,
			CreatedAt:    createdAt,
		}},
	}
}

func TestNewRequiresSource(test *testing.T) {
	test.Parallel()
	if _, err := New(nil, newMemoryClient()); !errors.Is(err, ErrNilSource) {
		test.Fatalf("expected %v, got %v", ErrNilSource, err)
	}
}

func TestListingsAreServedFromCacheAfterFirstRead(test *testing.T) {
	test.Parallel()
	ctx := context.Background()
	source := sampleCatalog(test)
	client := newMemoryClient()
	cache, err := New(source, client, WithTTL(time.Minute))
	if err != nil {
		test.Fatalf("new cache: %v", err)
	}
	provider := source.providers[0]

	for attempt := 0; attempt < 3; attempt++ {
		categories, err := cache.ListCategories(ctx)
		if err != nil || len(categories) != 2 || categories[1] != ledger.CategoryPulsa {
			test.Fatalf("unexpected categories %v (%v)", categories, err)
		}
		providers, err := cache.ListProviders(ctx, ledger.CategoryPulsa)
		if err != nil || len(providers) != 1 || providers[0].ID != provider.ID || providers[0].LogoURL != provider.LogoURL {
			test.Fatalf("unexpected providers %+v (%v)", providers, err)
		}
		products, err := cache.ListProducts(ctx, provider.ID)
		if err != nil || len(products) != 1 || !products[0].Price.Equal(decimal.RequireFromString("25500.50")) {
			test.Fatalf("unexpected products %+v (%v)", products, err)
		}
		if !products[0].CreatedAt.Equal(source.products[0].CreatedAt) {
			test.Fatalf("expected created_at %v, got %v", source.products[0].CreatedAt, products[0].CreatedAt)
		}
	}
	for _, name := range []string{"categories", "providers", "products"} {
		if source.callCount(name) != 1 {
			test.Fatalf("expected one %s source call, got %d", name, source.callCount(name))
		}
	}
	if client.ttls["topup:catalog:categories"] != time.Minute {
		test.Fatalf("expected ttl %v, got %v", time.Minute, client.ttls["topup:catalog:categories"])
	}
}

func TestInvalidateProviderForcesReload(test *testing.T) {
	test.Parallel()
	ctx := context.Background()
	source := sampleCatalog(test)
	cache, err := New(source, newMemoryClient(), WithKeyPrefix("test"))
	if err != nil {
		test.Fatalf("new cache: %v", err)
	}
	provider := source.providers[0]
	if _, err := cache.ListProducts(ctx, provider.ID); err != nil {
		test.Fatalf("list products: %v", err)
	}
	if err := cache.InvalidateProvider(ctx, provider); err != nil {
		test.Fatalf("invalidate: %v", err)
	}
	if _, err := cache.ListProducts(ctx, provider.ID); err != nil {
		test.Fatalf("list products: %v", err)
	}
	if source.callCount("products") != 2 {
		test.Fatalf("expected reload after invalidation, got %d calls", source.callCount("products"))
	}
}

func TestRedisFailuresFallBackToSource(test *testing.T) {
	test.Parallel()
	ctx := context.Background()
	core, logs := observer.New(zapcore.WarnLevel)
	source := sampleCatalog(test)
	client := newMemoryClient()
	client.failGet = errors.New("dial tcp: connection refused")
	client.failSet = errors.New("dial tcp: connection refused")
	cache, err := New(source, client, WithLogger(zap.New(core)))
	if err != nil {
		test.Fatalf("new cache: %v", err)
	}

	categories, err := cache.ListCategories(ctx)
	if err != nil || len(categories) != 2 {
		test.Fatalf("unexpected categories %v (%v)", categories, err)
	}
	if logs.FilterMessage("catalog cache read failed").Len() != 1 {
		test.Fatalf("expected read failure log, got %v", logs.All())
	}
	if logs.FilterMessage("catalog cache write failed").Len() != 1 {
		test.Fatalf("expected write failure log, got %v", logs.All())
	}
}

func TestCorruptEntryIsReplaced(test *testing.T) {
	test.Parallel()
	ctx := context.Background()
	source := sampleCatalog(test)
	client := newMemoryClient()
	client.values["topup:catalog:categories"] = `["not-a-category"]`
	cache, err := New(source, client)
	if err != nil {
		test.Fatalf("new cache: %v", err)
	}
	categories, err := cache.ListCategories(ctx)
	if err != nil || len(categories) != 2 {
		test.Fatalf("unexpected categories %v (%v)", categories, err)
	}
	if client.values["topup:catalog:categories"] != `["games","pulsa"]` {
		test.Fatalf("expected cache refresh, got %s", client.values["topup:catalog:categories"])
	}
}

func TestSourceErrorsAreNotCached(test *testing.T) {
	test.Parallel()
	ctx := context.Background()
	source := sampleCatalog(test)
	source.err = ledger.ErrInvalidCategory
	client := newMemoryClient()
	cache, err := New(source, client)
	if err != nil {
		test.Fatalf("new cache: %v", err)
	}
	if _, err := cache.ListProviders(ctx, ledger.Category("bogus")); !errors.Is(err, ledger.ErrInvalidCategory) {
		test.Fatalf("expected %v, got %v", ledger.ErrInvalidCategory, err)
	}
	if len(client.values) != 0 {
		test.Fatalf("expected nothing cached, got %v", client.values)
	}
}
