package main

import (
	"context"
	"os/signal"
	"syscall"

	service "github.com/0xpolycred/polymarket-apikey/internal"
	"github.com/0xpolycred/polymarket-apikey/internal/config"
	"github.com/0xpolycred/polymarket-apikey/internal/util"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.LoadConfig()
	if err != nil {
		fallback := util.NewLogger("info")
		fallback.Fatal().Err(err).Msg("failed to load config")
	}
	logger := util.NewLogger(cfg.LogLevel)

	app, err := service.NewApp(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize")
	}

	if err := app.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("credential bootstrap failed")
	}
}
