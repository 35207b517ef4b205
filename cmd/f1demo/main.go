package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"f1demo/internal/desktop"
	"f1demo/internal/game"
	"f1demo/internal/logging"
)

func main() {
	cfg, err := game.LoadConfigFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(2)
	}
	log, err := logging.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	if err := desktop.Run(cfg, log); err != nil {
		log.Error("run failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}
