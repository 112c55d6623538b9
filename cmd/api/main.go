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

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/cardledger/internal/app"
	"github.com/MrJamesThe3rd/cardledger/internal/config"
	cardledgerHttp "github.com/MrJamesThe3rd/cardledger/internal/http"
	categoryHandler "github.com/MrJamesThe3rd/cardledger/internal/http/category"
	exportHandler "github.com/MrJamesThe3rd/cardledger/internal/http/export"
	importHandler "github.com/MrJamesThe3rd/cardledger/internal/http/importcsv"
	paymentHandler "github.com/MrJamesThe3rd/cardledger/internal/http/payment"
	"github.com/MrJamesThe3rd/cardledger/internal/logging"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Open(ctx, cfg)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	var (
		importH   = importHandler.NewHandler(a.Imports, cfg.Import.UploadLimit)
		paymentH  = paymentHandler.NewHandler(a.Payments)
		categoryH = categoryHandler.NewHandler(a.Categories)
		exportH   = exportHandler.NewHandler(a.Export)
	)

	router := cardledgerHttp.New(cfg.CORS.AllowedOrigins, importH, paymentH, categoryH, exportH)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown failed", "error", err)
		}
	}()

	slog.Info("starting server", "app", cfg.App.Name, "addr", srv.Addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
