package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"pos-terminal/internal/auth"
	"pos-terminal/internal/catalog"
	"pos-terminal/internal/config"
	"pos-terminal/internal/domain"
	"pos-terminal/internal/httpserver"
	"pos-terminal/internal/pos"
	"pos-terminal/internal/repository/salelog"
	"pos-terminal/internal/sales"
	"pos-terminal/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	products, err := loadCatalog(cfg, logger)
	if err != nil {
		logger.Fatalf("load catalog: %v", err)
	}
	operators, err := seed.Operators()
	if err != nil {
		logger.Fatalf("seed operators: %v", err)
	}

	store := catalog.New(products, seed.Categories(), logger)
	ledger := sales.NewLedger()
	engine := pos.New(store, ledger, cfg.TaxRate, logger)
	authService := auth.New(operators, logger)

	deps := httpserver.Deps{
		Engine: engine,
		Auth:   authService,
	}

	if cfg.DBConnString != "" {
		pool, err := salelog.Connect(context.Background(), cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect sale archive: %v", err)
		}
		defer pool.Close()
		deps.Archive = salelog.NewPostgres(pool, logger)
		deps.Pool = pool
		logger.Printf("sale archive enabled")
	}

	srv := httpserver.New(cfg.HTTPAddr, logger, deps)

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s (tax rate %s)", cfg.HTTPAddr, cfg.TaxRate.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

func loadCatalog(cfg config.Config, logger *log.Logger) ([]domain.Product, error) {
	if cfg.CatalogPath == "" {
		return seed.Products()
	}
	f, err := os.Open(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	products, err := seed.FromCSV(f)
	if err != nil {
		return nil, err
	}
	logger.Printf("loaded %d products from %s", len(products), cfg.CatalogPath)
	return products, nil
}
