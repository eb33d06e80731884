package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/ChetanGaurkhede/client-store-rating/internal/client/cli"
	"github.com/ChetanGaurkhede/client-store-rating/internal/client/config"
	"github.com/ChetanGaurkhede/client-store-rating/internal/logging"
)

func main() {

	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
