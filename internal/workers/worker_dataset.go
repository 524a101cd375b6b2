// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-site-gateway/internal/logger"
	"github.com/MKhiriev/go-site-gateway/internal/service"
	"github.com/MKhiriev/go-site-gateway/models"
)

// datasetWorker downloads a single dataset and writes it to disk.
type datasetWorker struct {
	fetchService service.FetchService
	dataset      models.Dataset

	logger *logger.Logger
}

func newDatasetWorker(fetchService service.FetchService, dataset models.Dataset, logger *logger.Logger) *datasetWorker {
	return &datasetWorker{
		fetchService: fetchService,
		dataset:      dataset,
		logger:       logger.WithDataset(dataset.Name),
	}
}

func (w *datasetWorker) Run(ctx context.Context) error {
	ctx = w.logger.WithContext(ctx)
	start := time.Now()

	path, count, err := w.fetchService.Fetch(ctx, w.dataset)
	if err != nil {
		w.logger.Err(err).Str("func", "datasetWorker.Run").Msg("dataset fetch failed")
		return err
	}

	w.logger.Info().
		Str("func", "datasetWorker.Run").
		Int("items", count).
		Str("path", path).
		Dur("duration", time.Since(start)).
		Msg("dataset saved")

	return nil
}
