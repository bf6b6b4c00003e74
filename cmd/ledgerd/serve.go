package main

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/MarkoPoloResearchLab/topup/api/topup/v1"
	"github.com/MarkoPoloResearchLab/topup/internal/catalogcache"
	"github.com/MarkoPoloResearchLab/topup/internal/events"
	"github.com/MarkoPoloResearchLab/topup/internal/grpcserver"
	"github.com/MarkoPoloResearchLab/topup/internal/oplog"
	"github.com/MarkoPoloResearchLab/topup/pkg/ledger"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

func runServer(ctx context.Context, cfg *runtimeConfig) error {
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

	serviceOptions := []ledger.ServiceOption{ledger.WithOperationLogger(oplog.New(logger))}
	if cfg.PendingPurchases {
		serviceOptions = append(serviceOptions, ledger.WithPendingPurchases())
	}
	if cfg.NATSURL != "" {
		conn, err := events.Connect(cfg.NATSURL)
		if err != nil {
			return fmt.Errorf("nats connect: %w", err)
		}
		defer func() { _ = conn.Drain() }()
		publisher, err := events.NewPublisher(conn, events.WithSubjectPrefix(cfg.EventSubjectPrefix))
		if err != nil {
			return err
		}
		serviceOptions = append(serviceOptions, ledger.WithEventPublisher(publisher))
		logger.Info("transaction events enabled", zap.String("nats_url", cfg.NATSURL))
	}

	service, err := ledger.NewService(store, func() time.Time { return time.Now().UTC() }, serviceOptions...)
	if err != nil {
		return fmt.Errorf("ledger service init: %w", err)
	}

	var serverOptions []grpcserver.ServerOption
	cache, closeCache, err := openCatalogCache(ctx, cfg, service, logger)
	if err != nil {
		return err
	}
	defer closeCache()
	if cache != nil {
		serverOptions = append(serverOptions, grpcserver.WithCatalogReader(cache))
		logger.Info("catalog cache enabled", zap.String("redis_addr", cfg.RedisAddr), zap.Duration("ttl", cfg.CatalogCacheTTL))
	}

	lis, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	grpcServer := grpc.NewServer()
	topupv1.RegisterLedgerServiceServer(grpcServer, grpcserver.NewLedgerServer(service, serverOptions...))

	errCh := make(chan error, 1)
	go func() {
		logger.Info("gRPC server starting", zap.String("listen_addr", cfg.ListenAddr), zap.String("store", cfg.Store))
		errCh <- grpcServer.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown requested")
		grpcServer.GracefulStop()
		if serveErr := <-errCh; serveErr != nil && serveErr != grpc.ErrServerStopped {
			return serveErr
		}
		return nil
	case serveErr := <-errCh:
		if serveErr == grpc.ErrServerStopped {
			return nil
		}
		return serveErr
	}
}

// openCatalogCache returns nil when no Redis address is configured.
func openCatalogCache(ctx context.Context, cfg *runtimeConfig, source ledger.CatalogReader, logger *zap.Logger) (*catalogcache.Cache, func(), error) {
	if cfg.RedisAddr == "" {
		return nil, func() {}, nil
	}
	client, err := catalogcache.Connect(ctx, cfg.RedisAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("redis connect: %w", err)
	}
	cache, err := catalogcache.New(source, client,
		catalogcache.WithTTL(cfg.CatalogCacheTTL),
		catalogcache.WithLogger(logger),
	)
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return cache, func() { _ = client.Close() }, nil
}
