package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/socialecho/internal/client/cli"
	"github.com/dmitrijs2005/socialecho/internal/client/config"
	"github.com/dmitrijs2005/socialecho/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "failed to start", "error", err)
		os.Exit(1)
	}

	code := app.Run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
