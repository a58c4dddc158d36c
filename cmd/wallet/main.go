package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/live"
	coreport "github.com/amirhossein-jamali/pocket-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/pocket-wallet/internal/domain/usecase/wallet"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/random"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/pocket-wallet/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.IsProduction(), coreport.ParseLogLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Wallet stopped with error", map[string]any{
			"error": err.Error(),
		})
		_ = appLogger.Flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger coreport.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tp := timeProvider.NewRealTimeProvider()
	rnd := random.NewRealRandomSource()

	// The store opens lazily; Open below forces the first connection so a
	// bad configuration fails at startup
	manager := database.NewManager(cfg.DatabaseConfig(), appLogger, tp, repository.Builder(appLogger, tp))
	defer func() {
		if err := manager.Close(); err != nil {
			appLogger.Warn("Failed to close store", map[string]any{"error": err.Error()})
		}
	}()

	executor := live.NewExecutor(appLogger, cfg.View.QueueCapacity, cfg.View.TaskTimeout)
	defer executor.Shutdown()

	session := wallet.NewSession(manager, executor, tp, rnd, appLogger, cfg.View.StopTimeout)
	if err := session.Open(ctx); err != nil {
		return err
	}
	defer session.Close()

	router := routes.NewRouter(session, appLogger, tp, handler.Config{ReadTimeout: cfg.View.ReadTimeout})

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Ending the view cells closes open event streams, which Shutdown
	// would otherwise wait on
	server.RegisterOnShutdown(session.Close)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		appLogger.Info("Starting server", map[string]any{
			"addr":   server.Addr,
			"env":    cfg.Environment,
			"driver": cfg.Store.Driver,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			appLogger.Error("Server forced to shutdown", map[string]any{
				"error": err.Error(),
			})
		}

		// Queued writes land before the store closes
		if err := executor.Drain(shutdownCtx); err != nil {
			appLogger.Warn("Pending writes not drained", map[string]any{
				"error": err.Error(),
			})
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}
