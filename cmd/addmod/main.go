package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dmitrijs2005/socialecho/internal/admin/cli"
	"github.com/dmitrijs2005/socialecho/internal/admin/config"
	"github.com/dmitrijs2005/socialecho/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cfg := config.LoadConfig()
	logger := logging.NewConsoleLogger(os.Stderr, zerolog.WarnLevel, cfg.NoColor).
		With("run_id", uuid.NewString())

	code := cli.NewApp(cfg, logger).Run(ctx)
	stop()
	os.Exit(code)
}
