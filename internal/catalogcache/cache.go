// Package catalogcache serves catalog listings through a Redis read-through cache.
package catalogcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MarkoPoloResearchLab/topup/pkg/ledger"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	defaultTTL       = 5 * time.Minute
	defaultKeyPrefix = "topup:catalog"
	keyCategories    = "categories"
	keyProviders     = "providers"
	keyProducts      = "products"
)

// ErrNilSource reports a cache built without a backing catalog.
var ErrNilSource = errors.New("catalogcache: nil source")

// Client is the subset of *redis.Client used by the cache.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Connect opens a Redis client and verifies it answers PING.
func Connect(ctx context.Context, addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL sets how long a listing stays cached.
func WithTTL(ttl time.Duration) Option {
	return func(cache *Cache) {
		if ttl > 0 {
			cache.ttl = ttl
		}
	}
}

// WithKeyPrefix namespaces every cache key.
func WithKeyPrefix(prefix string) Option {
	return func(cache *Cache) {
		if prefix != "" {
			cache.prefix = prefix
		}
	}
}

// WithLogger reports Redis failures. The cache falls back to the source on any Redis error.
func WithLogger(logger *zap.Logger) Option {
	return func(cache *Cache) {
		if logger != nil {
			cache.logger = logger
		}
	}
}

// Cache implements ledger.CatalogReader in front of another CatalogReader.
type Cache struct {
	source ledger.CatalogReader
	client Client
	ttl    time.Duration
	prefix string
	logger *zap.Logger
}

var _ ledger.CatalogReader = (*Cache)(nil)

// New wraps source with a Redis read-through cache.
func New(source ledger.CatalogReader, client Client, options ...Option) (*Cache, error) {
	if source == nil {
		return nil, ErrNilSource
	}
	cache := &Cache{
		source: source,
		client: client,
		ttl:    defaultTTL,
		prefix: defaultKeyPrefix,
		logger: zap.NewNop(),
	}
	for _, option := range options {
		option(cache)
	}
	return cache, nil
}

type providerRecord struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	LogoURL   string    `json:"logo_url,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type productRecord struct {
	ID           string    `json:"id"`
	ProviderID   string    `json:"provider_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Price        string    `json:"price"`
	NominalValue string    `json:"nominal_value"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

func (cache *Cache) ListCategories(ctx context.Context) ([]ledger.Category, error) {
	key := cache.key(keyCategories)
	var names []string
	if cache.load(ctx, key, &names) {
		categories, err := decodeCategories(names)
		if err == nil {
			return categories, nil
		}
		cache.logger.Warn("catalog cache entry invalid", zap.String("key", key), zap.Error(err))
	}
	categories, err := cache.source.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	names = make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, category.String())
	}
	cache.store(ctx, key, names)
	return categories, nil
}

func (cache *Cache) ListProviders(ctx context.Context, category ledger.Category) ([]ledger.Provider, error) {
	key := cache.key(keyProviders, category.String())
	var records []providerRecord
	if cache.load(ctx, key, &records) {
		providers, err := decodeProviders(records)
		if err == nil {
			return providers, nil
		}
		cache.logger.Warn("catalog cache entry invalid", zap.String("key", key), zap.Error(err))
	}
	providers, err := cache.source.ListProviders(ctx, category)
	if err != nil {
		return nil, err
	}
	records = make([]providerRecord, 0, len(providers))
	for _, provider := range providers {
		records = append(records, providerRecord{
			ID:        provider.ID.String(),
			Name:      provider.Name,
			Category:  provider.Category.String(),
			LogoURL:   provider.LogoURL,
			IsActive:  provider.IsActive,
			CreatedAt: provider.CreatedAt,
		})
	}
	cache.store(ctx, key, records)
	return providers, nil
}

func (cache *Cache) ListProducts(ctx context.Context, providerID ledger.ProviderID) ([]ledger.Product, error) {
	key := cache.key(keyProducts, providerID.String())
	var records []productRecord
	if cache.load(ctx, key, &records) {
		products, err := decodeProducts(records)
		if err == nil {
			return products, nil
		}
		cache.logger.Warn("catalog cache entry invalid", zap.String("key", key), zap.Error(err))
	}
	products, err := cache.source.ListProducts(ctx, providerID)
	if err != nil {
		return nil, err
	}
	records = make([]productRecord, 0, len(products))
	for _, product := range products {
		records = append(records, productRecord{
			ID:           product.ID.String(),
			ProviderID:   product.ProviderID.String(),
			Name:         product.Name,
			Description:  product.Description,
			Price:        ledger.FormatMoney(product.Price),
			NominalValue: product.NominalValue,
			IsActive:     product.IsActive,
			CreatedAt:    product.CreatedAt,
		})
	}
	cache.store(ctx, key, records)
	return products, nil
}

// InvalidateProvider drops the cached listings that mention a provider.
func (cache *Cache) InvalidateProvider(ctx context.Context, provider ledger.Provider) error {
	if cache.client == nil {
		return nil
	}
	return cache.client.Del(ctx,
		cache.key(keyCategories),
		cache.key(keyProviders, provider.Category.String()),
		cache.key(keyProducts, provider.ID.String()),
	).Err()
}

func (cache *Cache) key(parts ...string) string {
	key := cache.prefix
	for _, part := range parts {
		key += ":" + part
	}
	return key
}

func (cache *Cache) load(ctx context.Context, key string, target any) bool {
	if cache.client == nil {
		return false
	}
	raw, err := cache.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		cache.logger.Warn("catalog cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if err := json.Unmarshal(raw, target); err != nil {
		cache.logger.Warn("catalog cache entry invalid", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (cache *Cache) store(ctx context.Context, key string, value any) {
	if cache.client == nil {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		cache.logger.Warn("catalog cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := cache.client.Set(ctx, key, raw, cache.ttl).Err(); err != nil {
		cache.logger.Warn("catalog cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func decodeCategories(names []string) ([]ledger.Category, error) {
	categories := make([]ledger.Category, 0, len(names))
	for _, name := range names {
		category, err := ledger.ParseCategory(name)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, nil
}

func decodeProviders(records []providerRecord) ([]ledger.Provider, error) {
	providers := make([]ledger.Provider, 0, len(records))
	for _, record := range records {
		providerID, err := ledger.NewProviderID(record.ID)
		if err != nil {
			return nil, err
		}
		category, err := ledger.ParseCategory(record.Category)
		if err != nil {
			return nil, err
		}
		providers = append(providers, ledger.Provider{
			ID:        providerID,
			Name:      record.Name,
			Category:  category,
			LogoURL:   record.LogoURL,
			IsActive:  record.IsActive,
			CreatedAt: record.CreatedAt,
		})
	}
	return providers, nil
}

func decodeProducts(records []productRecord) ([]ledger.Product, error) {
	products := make([]ledger.Product, 0, len(records))
	for _, record := range records {
		productID, err := ledger.NewProductID(record.ID)
		if err != nil {
			return nil, err
		}
		providerID, err := ledger.NewProviderID(record.ProviderID)
		if err != nil {
			return nil, err
		}
		price, err := decimal.NewFromString(record.Price)
		if err != nil {
			return nil, err
		}
		products = append(products, ledger.Product{
			ID:           productID,
			ProviderID:   providerID,
			Name:         record.Name,
			Description:  record.Description,
			Price:        price,
			NominalValue: record.NominalValue,
			IsActive:     record.IsActive,
			CreatedAt:    record.CreatedAt,
		})
	}
	return products, nil
}
