package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	portsrepo "github.com/SscSPs/edu_billing_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/edu_billing_ledger/internal/core/services"
	"github.com/SscSPs/edu_billing_ledger/internal/handlers"
	"github.com/SscSPs/edu_billing_ledger/internal/platform/config"
	"github.com/SscSPs/edu_billing_ledger/internal/platform/pdf"
	"github.com/SscSPs/edu_billing_ledger/internal/repositories/database/memory"
	"github.com/SscSPs/edu_billing_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/edu_billing_ledger/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	var skipMigrations bool
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := bootstrap()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, logger, skipMigrations)
		},
	}
	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "Do not apply pending migrations on startup (postgres only)")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config, logger *slog.Logger, skipMigrations bool) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := openStore(ctx, cfg, logger, skipMigrations)
	if err != nil {
		return err
	}
	defer closeStore()

	renderer := pdf.NewCreditNoteRenderer(cfg.InstitutionName, 2)
	container := services.NewServiceContainer(cfg, repos, renderer)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	r, err := handlers.NewRouter(cfg, container, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed to run: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

// openStore builds the repositories for the configured driver. The returned
// func releases whatever the store holds.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger, skipMigrations bool) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.StoreDriver != config.StorePostgres {
		logger.Info("Using in-memory store; data is lost on restart")
		return memory.NewRepositoryProvider(memory.NewStore()), func() {}, nil
	}

	if !skipMigrations {
		if err := runMigrations(cfg, logger, migrateUp); err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}
	logger.Info("Database connection pool established.")
	return pgsql.NewRepositoryProvider(pool), func() { database.ClosePgxPool(pool) }, nil
}
