package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/bububa/probe-go/internal/app"
	"github.com/bububa/probe-go/internal/config"
)

func main() {
	os.Exit(mainImpl())
}

func mainImpl() int {
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv(config.EnvConfigPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return app.ExitConfig
	}

	logger := newLogger(cfg)

	if err := cfg.CheckCredentials(); err != nil {
		logger.Error("credential check failed", "err", err)
		return app.ExitConfig
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen, closer, err := app.NewGenerator(ctx, cfg)
	if err != nil {
		logger.Error("generator init failed", "err", err)
		return app.ExitConfig
	}
	defer closer.Close()

	return app.Run(ctx, gen, cfg, os.Stdout, logger)
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}
