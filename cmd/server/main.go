// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/myj-nikhil/earthlings-db-api/internal/adapter"
	"github.com/myj-nikhil/earthlings-db-api/internal/config"
	"github.com/myj-nikhil/earthlings-db-api/internal/handler"
	"github.com/myj-nikhil/earthlings-db-api/internal/logger"
	"github.com/myj-nikhil/earthlings-db-api/internal/server"
	"github.com/myj-nikhil/earthlings-db-api/internal/service"
	"github.com/myj-nikhil/earthlings-db-api/internal/store"
	"github.com/myj-nikhil/earthlings-db-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("earthlings-db-api")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}
	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	if err = run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(cfg *config.StructuredConfig, log *logger.Logger) error {
	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	provider, err := adapter.NewHTTPIdentityProvider(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("error creating identity provider: %w", err)
	}

	services, err := service.NewServices(storages, provider, *cfg, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	srv.RunServer()
	return nil
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
