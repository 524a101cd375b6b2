// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-site-gateway/internal/adapter"
	"github.com/MKhiriev/go-site-gateway/internal/config"
	"github.com/MKhiriev/go-site-gateway/internal/logger"
	"github.com/MKhiriev/go-site-gateway/internal/service"
	"github.com/MKhiriev/go-site-gateway/internal/store"
	"github.com/MKhiriev/go-site-gateway/internal/workers"
	"github.com/MKhiriev/go-site-gateway/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("site-fetcher")
	cfg, err := config.GetFetcherConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	datasets, err := service.SelectDatasets(service.Datasets(cfg.Endpoints), cfg.Workers.Datasets)
	if err != nil {
		log.Fatal().Err(err).Msg("error selecting datasets")
	}

	gatewayAdapter, err := adapter.NewHTTPGatewayAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating gateway adapter")
	}

	fileStorage := store.NewDatasetFileStorage(cfg.Workers.OutputDir, log)
	services := service.NewFetcherServices(gatewayAdapter, fileStorage, cfg, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err = workers.NewDatasetWorkers(services.FetchService, datasets, log).Run(ctx); err != nil {
		log.Error().Err(err).Msg("fetch run failed")
		stop()
		os.Exit(1)
	}

	log.Info().Int("datasets", len(datasets)).Str("dir", cfg.Workers.OutputDir).Msg("fetch run finished")
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
