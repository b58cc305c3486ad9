package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"robux_topup/internal/application"
	"robux_topup/internal/config"
	"robux_topup/pkg/contextx"
	"robux_topup/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config.Load", logx.Error(err))
		os.Exit(1) //nolint:gocritic
	}

	log := logx.New(os.Stdout, cfg.Log.Format, cfg.Log.Level).With(
		slog.String(logx.FieldAppName, cfg.App.Name),
		slog.String(logx.FieldAppVersion, cfg.App.Version),
	)
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	if err := application.Run(ctx, cfg); err != nil {
		log.Error("application failed", logx.Error(err))
		cancel()
		os.Exit(1)
	}

	log.Info("application stopped")
}
