package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/aakhmedov/freightpay/internal/config"
	"github.com/aakhmedov/freightpay/internal/database"
	"github.com/aakhmedov/freightpay/internal/handlers"
	"github.com/aakhmedov/freightpay/internal/logger"
	"github.com/aakhmedov/freightpay/internal/repository"
	"github.com/aakhmedov/freightpay/internal/service"
	"go.uber.org/zap"
)

type App struct {
	server *http.Server
	db     *sql.DB
}

func NewApp() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Error("Database connection failed", zap.Error(err))
		return nil, err
	}

	txRepo := repository.NewTransactionRepository(db)
	escrowRepo := repository.NewEscrowRepository(db)
	commissionRepo := repository.NewCommissionRepository(db)

	ledgerService := service.NewLedgerService(txRepo, commissionRepo)
	commissionService := service.NewCommissionService(commissionRepo, txRepo, ledgerService)
	escrowService := service.NewEscrowService(escrowRepo, ledgerService, commissionService)

	handler := handlers.NewHandler(ledgerService, escrowService, commissionService, cfg.WebhookSecret)
	r := handlers.NewRouter(handler, cfg)

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: r,
	}

	return &App{
		server: server,
		db:     db,
	}, nil
}

func (a *App) Run() error {
	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	logger.Log.Info("shutting down server...")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("server shutdown failed", zap.Error(err))
		return err
	}

	logger.Log.Info("closing database connection...")
	if err := a.db.Close(); err != nil {
		logger.Log.Error("failed to close database", zap.Error(err))
		return err
	}

	return nil
}
