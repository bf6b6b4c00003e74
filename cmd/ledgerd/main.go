package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ledgerd: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := &runtimeConfig{}
	cmd := &cobra.Command{
		Use:           "ledgerd",
		Short:         "Top-up marketplace balance ledger",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd, cfg)
		},
	}

	cmd.PersistentFlags().String(flagEnvFile, "", "optional .env file loaded before reading the environment")
	cmd.PersistentFlags().String(flagDatabaseURL, defaultDatabaseURL, "database URL (postgres://, sqlite://, or a SQLite file path)")
	cmd.PersistentFlags().String(flagStore, storeGorm, "store implementation: gorm or pgx (pgx requires postgres)")
	cmd.PersistentFlags().Bool(flagMigrate, true, "apply schema migrations when opening the database")
	cmd.PersistentFlags().String(flagRedisAddr, "", "Redis address for the catalog cache (optional)")

	cmd.AddCommand(
		newServeCommand(cfg),
		newMigrateCommand(cfg),
		newSettleCommand(cfg),
		newProcessingCommand(cfg),
		newReconcileCommand(cfg),
		newCatalogCommand(cfg),
	)
	return cmd
}

func newServeCommand(cfg *runtimeConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the ledger over gRPC",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, cfg)
		},
	}
	cmd.Flags().String(flagListenAddr, defaultGRPCListenAddr, "gRPC listen address")
	cmd.Flags().String(flagNATSURL, "", "NATS URL for transaction events (optional)")
	cmd.Flags().String(flagEventSubjectPrefix, "", "subject prefix for transaction events")
	cmd.Flags().Duration(flagCatalogCacheTTL, defaultCatalogCacheTTL, "catalog cache TTL")
	cmd.Flags().Bool(flagPendingPurchases, false, "create purchases as pending until settled")
	return cmd
}
