package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/MarkoPoloResearchLab/topup/internal/storefront"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	flagEnvFile        = "env-file"
	flagListenAddr     = "listen-addr"
	flagLedgerAddr     = "ledger-addr"
	flagLedgerInsecure = "ledger-insecure"
	flagLedgerTimeout  = "ledger-timeout"
	flagAllowedOrigins = "allowed-origins"
	flagJWTSigningKey  = "jwt-signing-key"
	flagJWTIssuer      = "jwt-issuer"
	flagHistoryLimit   = "history-limit"
	flagTokenTTL       = "ttl"
	envPrefix          = "STOREFRONT"
)

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "storefront: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := storefront.Config{}
	cmd := &cobra.Command{
		Use:           "storefront",
		Short:         "HTTP façade for the top-up ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd, &cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			logger, err := zap.NewProduction()
			if err != nil {
				return fmt.Errorf("zap init: %w", err)
			}
			defer func() { _ = logger.Sync() }()
			return storefront.Run(ctx, cfg, logger)
		},
	}

	cmd.PersistentFlags().String(flagEnvFile, "", "optional .env file loaded before reading the environment")
	cmd.PersistentFlags().String(flagJWTSigningKey, "", "HS256 signing key for bearer tokens (required)")
	cmd.PersistentFlags().String(flagJWTIssuer, "", "expected JWT issuer")
	cmd.Flags().String(flagListenAddr, "", "HTTP listen address")
	cmd.Flags().String(flagLedgerAddr, "", "ledgerd gRPC address")
	cmd.Flags().Bool(flagLedgerInsecure, false, "connect to ledgerd without TLS")
	cmd.Flags().Duration(flagLedgerTimeout, 0, "ledger RPC timeout (e.g. 3s)")
	cmd.Flags().String(flagAllowedOrigins, "", "comma-separated list of allowed CORS origins")
	cmd.Flags().Int(flagHistoryLimit, 0, "default transaction history page size")

	cmd.AddCommand(newTokenCommand(&cfg))
	return cmd
}

func newTokenCommand(cfg *storefront.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token <account-id>",
		Short: "Mint a bearer token for an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ttl, err := cmd.Flags().GetDuration(flagTokenTTL)
			if err != nil {
				return err
			}
			validator, err := storefront.NewTokenValidator([]byte(cfg.TokenSigningKey), cfg.TokenIssuer)
			if err != nil {
				return err
			}
			token, err := validator.Issue(args[0], ttl, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().Duration(flagTokenTTL, time.Hour, "token lifetime")
	return cmd
}

func loadConfig(cmd *cobra.Command, cfg *storefront.Config) error {
	envFile, err := cmd.Flags().GetString(flagEnvFile)
	if err != nil {
		return err
	}
	if strings.TrimSpace(envFile) != "" {
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	cfg.ListenAddr = strings.TrimSpace(v.GetString(flagListenAddr))
	cfg.LedgerAddress = strings.TrimSpace(v.GetString(flagLedgerAddr))
	cfg.LedgerInsecure = v.GetBool(flagLedgerInsecure)
	cfg.LedgerTimeout = v.GetDuration(flagLedgerTimeout)
	cfg.AllowedOrigins = storefront.ParseAllowedOrigins(v.GetString(flagAllowedOrigins))
	cfg.TokenSigningKey = v.GetString(flagJWTSigningKey)
	cfg.TokenIssuer = strings.TrimSpace(v.GetString(flagJWTIssuer))
	cfg.HistoryLimit = v.GetInt(flagHistoryLimit)

	return cfg.Validate()
}
