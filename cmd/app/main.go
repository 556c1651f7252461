// File: cmd/app/main.go
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/uuid"

	"womens-health-tracker/internal/application"
	"womens-health-tracker/internal/config"
	"womens-health-tracker/internal/infra/cli"
	"womens-health-tracker/internal/infra/logging"
	"womens-health-tracker/internal/infra/storage"
	"womens-health-tracker/internal/usecase"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ---- CLI flags ----
	cfgPath := flag.String("config", "config.yaml", "path to YAML config file")
	devMode := flag.Bool("dev", false, "enable developer mode (verbose logging)")
	flag.Parse()

	cfg, err := config.LoadConfig(*cfgPath, *devMode)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Runtime.Dev {
		log.Printf("[DEV MODE] Enabled")
	}

	// ---- Logging ----
	logger := logging.New(cfg.Log, cfg.Runtime.Dev)
	ctx = logging.WithTraceID(ctx, uuid.NewString())

	// ---- Record store ----
	store, err := storage.NewJSONRecordStore(cfg.Storage.Path, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.Storage.Path).Msg("open record store")
	}

	// ---- Use cases ----
	trackerUC := usecase.NewTrackerUseCase(store, nil, logger)

	// ---- Facade ----
	facade := application.NewTrackerFacade(trackerUC)

	// ---- Interactive menu ----
	menu := cli.NewMenu(os.Stdin, os.Stdout, facade, logger)
	if err := menu.Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("menu loop")
	}
}
