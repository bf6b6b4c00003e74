package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MarkoPoloResearchLab/topup/api/topup/v1"
	"github.com/MarkoPoloResearchLab/topup/internal/grpcserver"
	"github.com/MarkoPoloResearchLab/topup/internal/oplog"
	"github.com/MarkoPoloResearchLab/topup/internal/store/migrations"
	"github.com/MarkoPoloResearchLab/topup/pkg/ledger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

func newMigrateCommand(cfg *runtimeConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate <up|down|status|reset>",
		Short: "Run goose migrations against the Postgres database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			command, err := migrations.ParseCommand(args[0])
			if err != nil {
				return err
			}
			if !isPostgresURL(cfg.DatabaseURL) {
				return fmt.Errorf("migrate requires a postgres database url")
			}
			return migrations.Run(cmd.Context(), cfg.DatabaseURL, command)
		},
	}
}

func newSettleCommand(cfg *runtimeConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settle <transaction-id> <success|failed|cancelled>",
		Short: "Settle a pending purchase through a running ledgerd",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLedgerClient(cmd.Context(), cfg, func(ctx context.Context, client topupv1.LedgerServiceClient) error {
				response, err := client.Settle(ctx, &topupv1.SettleRequest{TransactionId: args[0], Outcome: args[1]})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), response.Transaction)
			})
		},
	}
	addLedgerClientFlags(cmd)
	return cmd
}

func newProcessingCommand(cfg *runtimeConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "processing <transaction-id>",
		Short: "Mark a pending purchase as handed to fulfillment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withLedgerClient(cmd.Context(), cfg, func(ctx context.Context, client topupv1.LedgerServiceClient) error {
				response, err := client.MarkProcessing(ctx, &topupv1.MarkProcessingRequest{TransactionId: args[0]})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), response.Transaction)
			})
		},
	}
	addLedgerClientFlags(cmd)
	return cmd
}

func addLedgerClientFlags(cmd *cobra.Command) {
	cmd.Flags().String(flagLedgerAddr, defaultLedgerAddr, "ledgerd gRPC address")
	cmd.Flags().Bool(flagLedgerInsecure, false, "connect without TLS")
	cmd.Flags().Duration(flagLedgerTimeout, defaultLedgerTimeout, "RPC timeout")
}

func withLedgerClient(ctx context.Context, cfg *runtimeConfig, fn func(ctx context.Context, client topupv1.LedgerServiceClient) error) error {
	requestCtx, cancel := context.WithTimeout(ctx, cfg.LedgerTimeout)
	defer cancel()
	conn, err := grpcserver.Dial(requestCtx, cfg.LedgerAddr, cfg.LedgerInsecure)
	if err != nil {
		return err
	}
	defer conn.Close()
	return fn(requestCtx, topupv1.NewLedgerServiceClient(conn))
}

func newReconcileCommand(cfg *runtimeConfig) *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile <account-id>",
		Short: "Compare an account balance with the sum of its transaction log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			accountID, err := ledger.NewAccountID(args[0])
			if err != nil {
				return err
			}
			return withService(cmd.Context(), cfg, func(ctx context.Context, service *ledger.Service) error {
				reconciliation, err := service.Reconcile(ctx, accountID)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "account %s balance %s ledger %s transactions %d\n",
					accountID,
					ledger.FormatMoney(reconciliation.Balance),
					ledger.FormatMoney(reconciliation.LedgerSum),
					reconciliation.TransactionCount,
				)
				if !reconciliation.Balanced() {
					return fmt.Errorf("account %s is out of balance", accountID)
				}
				return nil
			})
		},
	}
}

func newCatalogCommand(cfg *runtimeConfig) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Administer providers and products",
	}

	addProvider := &cobra.Command{
		Use:   "add-provider <name> <category>",
		Short: "Register a provider",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			category, err := ledger.ParseCategory(args[1])
			if err != nil {
				return err
			}
			logoURL, _ := cmd.Flags().GetString("logo-url")
			input, err := ledger.NewProviderInput(args[0], category, logoURL, true, time.Time{})
			if err != nil {
				return err
			}
			return withService(cmd.Context(), cfg, func(ctx context.Context, service *ledger.Service) error {
				provider, err := service.CreateProvider(ctx, input)
				if err != nil {
					return err
				}
				if err := invalidateCatalog(ctx, cfg, service, provider); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "provider %s\n", provider.ID)
				return nil
			})
		},
	}
	addProvider.Flags().String("logo-url", "", "provider logo URL")

	addProduct := &cobra.Command{
		Use:   "add-product <provider-id> <name> <price> <nominal-value>",
		Short: "Register a product under a provider",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			providerID, err := ledger.NewProviderID(args[0])
			if err != nil {
				return err
			}
			price, err := ledger.ParsePositiveAmount(args[2])
			if err != nil {
				return err
			}
			description, _ := cmd.Flags().GetString("description")
			input, err := ledger.NewProductInput(providerID, args[1], description, price, args[3], true, time.Time{})
			if err != nil {
				return err
			}
			return withService(cmd.Context(), cfg, func(ctx context.Context, service *ledger.Service) error {
				product, err := service.CreateProduct(ctx, input)
				if err != nil {
					return err
				}
				if err := invalidateProductProvider(ctx, cfg, service, product); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "product %s\n", product.ID)
				return nil
			})
		},
	}
	addProduct.Flags().String("description", "", "product description")

	setPrice := &cobra.Command{
		Use:   "set-price <product-id> <price>",
		Short: "Change a product price",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := ledger.NewProductID(args[0])
			if err != nil {
				return err
			}
			price, err := ledger.ParsePositiveAmount(args[1])
			if err != nil {
				return err
			}
			return withService(cmd.Context(), cfg, func(ctx context.Context, service *ledger.Service) error {
				product, err := service.SetProductPrice(ctx, productID, price)
				if err != nil {
					return err
				}
				if err := invalidateProductProvider(ctx, cfg, service, product); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "product %s price %s\n", product.ID, ledger.FormatMoney(product.Price))
				return nil
			})
		},
	}

	setActive := &cobra.Command{
		Use:   "set-active <product-id> <true|false>",
		Short: "Enable or disable a product",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, err := ledger.NewProductID(args[0])
			if err != nil {
				return err
			}
			isActive, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("parse active flag: %w", err)
			}
			return withService(cmd.Context(), cfg, func(ctx context.Context, service *ledger.Service) error {
				product, err := service.SetProductActive(ctx, productID, isActive)
				if err != nil {
					return err
				}
				if err := invalidateProductProvider(ctx, cfg, service, product); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "product %s active %t\n", product.ID, product.IsActive)
				return nil
			})
		},
	}

	cmd.AddCommand(addProvider, addProduct, setPrice, setActive)
	return cmd
}

func withService(ctx context.Context, cfg *runtimeConfig, fn func(ctx context.Context, service *ledger.Service) error) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("logger init: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	service, err := ledger.NewService(store, func() time.Time { return time.Now().UTC() }, ledger.WithOperationLogger(oplog.New(logger)))
	if err != nil {
		return fmt.Errorf("ledger service init: %w", err)
	}
	return fn(ctx, service)
}

func invalidateProductProvider(ctx context.Context, cfg *runtimeConfig, service *ledger.Service, product ledger.Product) error {
	if cfg.RedisAddr == "" {
		return nil
	}
	provider, err := service.Provider(ctx, product.ProviderID)
	if err != nil {
		return err
	}
	return invalidateCatalog(ctx, cfg, service, provider)
}

// invalidateCatalog drops cached listings so a running ledgerd serves the change immediately.
func invalidateCatalog(ctx context.Context, cfg *runtimeConfig, service *ledger.Service, provider ledger.Provider) error {
	cache, closeCache, err := openCatalogCache(ctx, cfg, service, zap.NewNop())
	if err != nil {
		return err
	}
	defer closeCache()
	if cache == nil {
		return nil
	}
	return cache.InvalidateProvider(ctx, provider)
}

func printJSON(out io.Writer, message proto.Message) error {
	payload, err := protojson.MarshalOptions{Multiline: true, Indent: "  ", UseProtoNames: true}.Marshal(message)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, string(payload))
	return err
}
