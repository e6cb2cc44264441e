package main

import (
	"log/slog"
	"os"

	"github.com/nfrund/lateslip-portal/internal/app"
	"github.com/nfrund/lateslip-portal/internal/config"
	"github.com/nfrund/lateslip-portal/internal/logging"
	"github.com/nfrund/lateslip-portal/internal/server"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	logging.New(cfg.LogFormat, cfg.LogLevel)

	ctx, stop := server.SignalContext()
	defer stop()

	injector := app.NewInjector(cfg)
	if err := app.Run(ctx, injector); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
	_ = injector.Shutdown()
}
