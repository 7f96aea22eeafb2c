// ABOUTME: Flag-less HTTP entrypoint for containers
// ABOUTME: Reads everything from the environment, provisions the index, and serves until SIGTERM
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harper/bezzie/internal/api"
	"github.com/harper/bezzie/internal/app"
	"github.com/harper/bezzie/internal/config"
	"github.com/harper/bezzie/internal/logger"
	"go.uber.org/zap"
)

func main() {
	if err := logger.Init(os.Getenv("BEZZIE_DEBUG") != "", false); err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.L().Fatal("invalid configuration", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		logger.L().Fatal("startup failed", zap.Error(err))
	}
	defer func() { _ = a.Close() }()

	if err := api.ListenAndServe(ctx, cfg.ListenAddr, api.NewServer(a.Service).Handler()); err != nil {
		logger.L().Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}
