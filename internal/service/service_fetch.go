// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-site-gateway/internal/adapter"
	"github.com/MKhiriev/go-site-gateway/internal/config"
	"github.com/MKhiriev/go-site-gateway/internal/logger"
	"github.com/MKhiriev/go-site-gateway/internal/store"
	"github.com/MKhiriev/go-site-gateway/internal/utils"
	"github.com/MKhiriev/go-site-gateway/models"
)

// fetchService signs a short-lived token per dataset, downloads it through
// the gateway adapter and writes it with the dataset file storage.
type fetchService struct {
	gatewayAdapter adapter.GatewayAdapter
	fileStorage    store.DatasetFileStorage

	tokenSignKey  string
	tokenDuration time.Duration

	logger *logger.Logger
}

func NewFetchService(gatewayAdapter adapter.GatewayAdapter, fileStorage store.DatasetFileStorage, appCfg config.App, workersCfg config.Workers, logger *logger.Logger) FetchService {
	return &fetchService{
		gatewayAdapter: gatewayAdapter,
		fileStorage:    fileStorage,
		tokenSignKey:   appCfg.AuthSecret,
		tokenDuration:  workersCfg.TokenDuration,
		logger:         logger,
	}
}

// Fetch implements [FetchService].
func (s *fetchService) Fetch(ctx context.Context, dataset models.Dataset) (string, int, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(dataset.Subject, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "fetchService.Fetch").Str("dataset", dataset.Name).Msg("error signing token")
		return "", 0, fmt.Errorf("%w: %w", ErrSigningToken, err)
	}

	items, err := s.gatewayAdapter.Fetch(ctx, dataset, token.String())
	if err != nil {
		log.Err(err).Str("func", "fetchService.Fetch").Str("dataset", dataset.Name).Msg("error fetching dataset")
		return "", 0, fmt.Errorf("%w %s: %w", ErrFetchingDataset, dataset.Name, err)
	}

	path, err := s.fileStorage.Save(ctx, dataset.FileName(), items)
	if err != nil {
		log.Err(err).Str("func", "fetchService.Fetch").Str("dataset", dataset.Name).Msg("error saving dataset")
		return "", 0, fmt.Errorf("%w %s: %w", ErrSavingDataset, dataset.Name, err)
	}

	return path, len(items), nil
}
