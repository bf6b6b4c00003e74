package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagEnvFile            = "env-file"
	flagDatabaseURL        = "database-url"
	flagStore              = "store"
	flagMigrate            = "migrate"
	flagListenAddr         = "listen-addr"
	flagNATSURL            = "nats-url"
	flagEventSubjectPrefix = "event-subject-prefix"
	flagRedisAddr          = "redis-addr"
	flagCatalogCacheTTL    = "catalog-cache-ttl"
	flagPendingPurchases   = "pending-purchases"
	flagLedgerAddr         = "ledger-addr"
	flagLedgerInsecure     = "ledger-insecure"
	flagLedgerTimeout      = "ledger-timeout"

	envPrefix              = "LEDGERD"
	defaultDatabaseURL     = "sqlite:///tmp/topup-ledger.db"
	defaultGRPCListenAddr  = ":7000"
	defaultLedgerAddr      = "localhost:7000"
	defaultLedgerTimeout   = 5 * time.Second
	defaultCatalogCacheTTL = 5 * time.Minute

	storeGorm = "gorm"
	storePgx  = "pgx"
)

// legacyEnv lists unprefixed variable names honoured alongside LEDGERD_*.
var legacyEnv = map[string]string{
	flagDatabaseURL: "DATABASE_URL",
	flagListenAddr:  "GRPC_LISTEN_ADDR",
	flagNATSURL:     "NATS_URL",
	flagRedisAddr:   "REDIS_ADDR",
	flagLedgerAddr:  "LEDGER_ADDR",
}

type runtimeConfig struct {
	DatabaseURL        string
	Store              string
	Migrate            bool
	ListenAddr         string
	NATSURL            string
	EventSubjectPrefix string
	RedisAddr          string
	CatalogCacheTTL    time.Duration
	PendingPurchases   bool
	LedgerAddr         string
	LedgerInsecure     bool
	LedgerTimeout      time.Duration
}

func loadConfig(cmd *cobra.Command, cfg *runtimeConfig) error {
	envFile, err := cmd.Flags().GetString(flagEnvFile)
	if err != nil {
		return err
	}
	if err := loadEnvFile(envFile); err != nil {
		return err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	for key, legacy := range legacyEnv {
		if err := v.BindEnv(key, envPrefix+"_"+strings.ToUpper(strings.ReplaceAll(key, "-", "_")), legacy); err != nil {
			return err
		}
	}

	cfg.DatabaseURL = strings.TrimSpace(v.GetString(flagDatabaseURL))
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = defaultDatabaseURL
	}
	cfg.Store = strings.ToLower(strings.TrimSpace(v.GetString(flagStore)))
	if cfg.Store == "" {
		cfg.Store = storeGorm
	}
	cfg.Migrate = v.GetBool(flagMigrate)
	cfg.ListenAddr = strings.TrimSpace(v.GetString(flagListenAddr))
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaultGRPCListenAddr
	}
	cfg.NATSURL = strings.TrimSpace(v.GetString(flagNATSURL))
	cfg.EventSubjectPrefix = strings.TrimSpace(v.GetString(flagEventSubjectPrefix))
	cfg.RedisAddr = strings.TrimSpace(v.GetString(flagRedisAddr))
	cfg.CatalogCacheTTL = v.GetDuration(flagCatalogCacheTTL)
	if cfg.CatalogCacheTTL <= 0 {
		cfg.CatalogCacheTTL = defaultCatalogCacheTTL
	}
	cfg.PendingPurchases = v.GetBool(flagPendingPurchases)
	cfg.LedgerAddr = strings.TrimSpace(v.GetString(flagLedgerAddr))
	if cfg.LedgerAddr == "" {
		cfg.LedgerAddr = defaultLedgerAddr
	}
	cfg.LedgerInsecure = v.GetBool(flagLedgerInsecure)
	cfg.LedgerTimeout = v.GetDuration(flagLedgerTimeout)
	if cfg.LedgerTimeout <= 0 {
		cfg.LedgerTimeout = defaultLedgerTimeout
	}
	return cfg.validate()
}

func (cfg *runtimeConfig) validate() error {
	switch cfg.Store {
	case storeGorm, storePgx:
	default:
		return fmt.Errorf("unsupported store %q (want %s or %s)", cfg.Store, storeGorm, storePgx)
	}
	if cfg.Store == storePgx && !isPostgresURL(cfg.DatabaseURL) {
		return fmt.Errorf("store %s requires a postgres database url", storePgx)
	}
	return nil
}

func loadEnvFile(path string) error {
	if strings.TrimSpace(path) == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}
