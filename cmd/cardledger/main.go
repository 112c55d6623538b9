package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/cardledger/cmd/cardledger/internal/commands"
	"github.com/MrJamesThe3rd/cardledger/internal/app"
	"github.com/MrJamesThe3rd/cardledger/internal/config"
	"github.com/MrJamesThe3rd/cardledger/internal/logging"
)

func main() {
	_ = godotenv.Load()

	open := func(ctx context.Context) (*app.App, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}

		// stdout carries command output, so logs go to stderr.
		slog.SetDefault(logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format))

		return app.Open(ctx, cfg)
	}

	if err := commands.NewRootCommand(open).Execute(); err != nil {
		os.Exit(1)
	}
}
