package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/mediapp/client-go/internal/client/cli"
	"github.com/mediapp/client-go/internal/client/config"
	"github.com/mediapp/client-go/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(ctx)
}
