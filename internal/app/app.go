// Package app wires configuration, storage and services for the commands.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/MrJamesThe3rd/cardledger/internal/category"
	categoryStore "github.com/MrJamesThe3rd/cardledger/internal/category/store"
	"github.com/MrJamesThe3rd/cardledger/internal/config"
	"github.com/MrJamesThe3rd/cardledger/internal/database"
	"github.com/MrJamesThe3rd/cardledger/internal/export"
	"github.com/MrJamesThe3rd/cardledger/internal/importer"
	importerStore "github.com/MrJamesThe3rd/cardledger/internal/importer/store"
	"github.com/MrJamesThe3rd/cardledger/internal/payment"
	paymentStore "github.com/MrJamesThe3rd/cardledger/internal/payment/store"
	"github.com/MrJamesThe3rd/cardledger/internal/seed"
	seedStore "github.com/MrJamesThe3rd/cardledger/internal/seed/store"
)

type App struct {
	DB *sql.DB

	Imports    *importer.Service
	Payments   *payment.Service
	Categories *category.Service
	Export     *export.Service
}

// Open connects to the configured database, bootstraps its schema and
// reference data, and builds the services.
func Open(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := database.New(cfg.Driver(), cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	a, err := New(ctx, db, cfg.Driver(), cfg.Import.MaxFileSize)
	if err != nil {
		db.Close()
		return nil, err
	}

	slog.Info("database ready", "mode", cfg.DB.Mode)

	return a, nil
}

// New bootstraps db and builds the services on top of it.
func New(ctx context.Context, db *sql.DB, driver string, maxFileSize int64) (*App, error) {
	if err := database.EnsureSchema(ctx, db, driver); err != nil {
		return nil, err
	}

	data, err := seed.Load()
	if err != nil {
		return nil, err
	}

	if err := seed.NewService(seedStore.New(db), data).Apply(ctx); err != nil {
		return nil, err
	}

	payments := payment.NewService(paymentStore.New(db))

	return &App{
		DB:         db,
		Imports:    importer.NewService(importerStore.New(db), importer.Builtin(), maxFileSize),
		Payments:   payments,
		Categories: category.NewService(categoryStore.New(db)),
		Export:     export.NewService(payments),
	}, nil
}

func (a *App) Close() error {
	return a.DB.Close()
}
