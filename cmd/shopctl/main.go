package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/yourusername/shop-catalog/config"
	"github.com/yourusername/shop-catalog/internal/delivery/cli"
	"github.com/yourusername/shop-catalog/internal/infrastructure/logger"
	"github.com/yourusername/shop-catalog/internal/infrastructure/parser"
	"github.com/yourusername/shop-catalog/internal/infrastructure/storage"
	"github.com/yourusername/shop-catalog/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flush, err := logger.Setup(cfg.LogMode, cfg.LogFile)
	if err != nil {
		return err
	}
	defer flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := storage.Open(ctx, storage.Options{
		Path:        cfg.DBPath,
		BusyTimeout: cfg.BusyTimeout,
		Workers:     cfg.LiveQueryWorkers,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			zap.L().Warn("close database", zap.Error(err))
		}
	}()

	productRepo := storage.NewSQLiteProductRepository(db)
	categoryRepo := storage.NewSQLiteCategoryRepository(db)
	cartRepo := storage.NewSQLiteCartRepository(db)

	catalog := usecase.NewCatalogUseCase(productRepo, categoryRepo, parser.NewExcelParser())
	cart := usecase.NewCartUseCase(cartRepo, productRepo)

	if cfg.SeedSampleData {
		if _, err := catalog.SeedSampleData(ctx); err != nil {
			return err
		}
	}

	return cli.NewHandler(catalog, cart).RootCommand().ExecuteContext(ctx)
}
