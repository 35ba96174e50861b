package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/holiman/uint256"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ff-mint-engine/internal/adapter"
	"github.com/feral-file/ff-mint-engine/internal/api/middleware"
	"github.com/feral-file/ff-mint-engine/internal/api/server"
	"github.com/feral-file/ff-mint-engine/internal/config"
	"github.com/feral-file/ff-mint-engine/internal/logger"
	"github.com/feral-file/ff-mint-engine/internal/mint"
	"github.com/feral-file/ff-mint-engine/internal/payment"
	ethpayment "github.com/feral-file/ff-mint-engine/internal/providers/ethereum"
	"github.com/feral-file/ff-mint-engine/internal/providers/jetstream"
	"github.com/feral-file/ff-mint-engine/internal/registry"
	"github.com/feral-file/ff-mint-engine/internal/store"
	"github.com/feral-file/ff-mint-engine/internal/supply"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Tags: map[string]string{
			"service": "mint-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Feral File Mint Engine API")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}

	if err := store.Migrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store and registry
	dataStore := store.NewPGStore(db)
	tokenRegistry := registry.New(dataStore)

	// Seed the supply counter from the committed registry count so restarts
	// never re-assign a token number
	issued, err := tokenRegistry.IssuedCount(ctx)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to count issued tokens", zap.Error(err))
	}
	counter, err := supply.NewCounter(cfg.Mint.SupplyCap, issued)
	if err != nil {
		logger.FatalCtx(ctx, "Issued count exceeds supply cap",
			zap.Error(err),
			zap.Uint64("issued", issued),
			zap.Uint64("supply_cap", cfg.Mint.SupplyCap))
	}
	logger.InfoCtx(ctx, "Seeded supply counter",
		zap.Uint64("issued", issued),
		zap.Uint64("supply_cap", cfg.Mint.SupplyCap))

	// Restore the pause gate from its persisted state
	paused, err := dataStore.GetPauseState(ctx)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to read pause state", zap.Error(err))
	}

	primaryPrice, err := uint256.FromDecimal(cfg.Mint.PrimaryUnitPrice)
	if err != nil {
		logger.FatalCtx(ctx, "Invalid primary unit price", zap.Error(err), zap.String("value", cfg.Mint.PrimaryUnitPrice))
	}
	alternatePrice, err := uint256.FromDecimal(cfg.Mint.AlternateUnitPrice)
	if err != nil {
		logger.FatalCtx(ctx, "Invalid alternate unit price", zap.Error(err), zap.String("value", cfg.Mint.AlternateUnitPrice))
	}

	state, err := mint.NewState(mint.StateConfig{
		Paused:             paused,
		PrimaryUnitPrice:   primaryPrice,
		AlternateUnitPrice: alternatePrice,
		AltPaymentEnabled:  cfg.Mint.AltPaymentEnabled,
		Treasury:           cfg.Mint.Treasury,
		BaseURI:            cfg.Mint.BaseURI,
		MaxPerCall:         cfg.Mint.MaxPerCall,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to build issuance state", zap.Error(err))
	}

	// Initialize adapters
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()

	// Connect to NATS JetStream
	publisher, err := jetstream.NewPublisher(jetstream.Config{
		URL:             cfg.NATS.URL,
		StreamName:      cfg.NATS.StreamName,
		MaxReconnects:   cfg.NATS.MaxReconnects,
		ReconnectWait:   cfg.NATS.ReconnectWait,
		ConnectionName:  cfg.NATS.ConnectionName,
		PublishMaxRetry: cfg.NATS.PublishMaxRetry,
	}, adapter.NewNatsJetStream(), jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	defer publisher.Close()
	logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))

	// Connect to the Ethereum payment rail
	ethClient, err := adapter.NewEthClientDialer().Dial(ctx, cfg.Ethereum.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Ethereum", zap.Error(err), zap.String("rpc_url", cfg.Ethereum.RPCURL))
	}
	paymentClient, err := ethpayment.NewPaymentClient(ethpayment.Config{
		TokenContract:  cfg.Ethereum.TokenContract,
		OperatorKey:    cfg.Ethereum.OperatorKey,
		GasLimit:       cfg.Ethereum.GasLimit,
		ReceiptTimeout: cfg.Ethereum.ReceiptTimeout,
	}, ethClient, clock)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create payment client", zap.Error(err))
	}
	defer paymentClient.Close()
	logger.InfoCtx(ctx, "Connected to Ethereum", zap.String("rpc_url", cfg.Ethereum.RPCURL))

	// Wire the issuance engine
	validator := payment.NewValidator(paymentClient, paymentClient)
	engine := mint.NewEngine(state, counter, validator, tokenRegistry, publisher, clock)
	admin := mint.NewAdmin(state, dataStore, publisher, clock)

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	// Create and start server
	srv := server.New(serverConfig, engine, admin, tokenRegistry)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	// Use non-context logger for final message since original ctx is canceled
	logger.Info("API server stopped")
}
