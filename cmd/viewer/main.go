package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/smasonuk/orbitcam/internal/config"
	"github.com/smasonuk/orbitcam/internal/logger"
	"github.com/smasonuk/orbitcam/internal/viewer"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting viewer",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.String("level", cfg.Logging.Level))

	if err := viewer.Run(cfg); err != nil {
		logger.Fatal("viewer stopped", zap.Error(err))
	}
	logger.Info("viewer closed")
}
