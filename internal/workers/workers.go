// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-site-gateway/internal/logger"
	"github.com/MKhiriev/go-site-gateway/internal/service"
	"github.com/MKhiriev/go-site-gateway/models"
)

type Workers struct {
	workers []Worker

	logger *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{
		workers: workers,
		logger:  logger,
	}
}

// NewDatasetWorkers creates one worker per dataset, in dataset order.
func NewDatasetWorkers(fetchService service.FetchService, datasets []models.Dataset, logger *logger.Logger) *Workers {
	workers := make([]Worker, 0, len(datasets))
	for _, dataset := range datasets {
		workers = append(workers, newDatasetWorker(fetchService, dataset, logger))
	}

	return NewWorkers(logger, workers...)
}

// Run runs every worker sequentially and returns their errors joined, or nil.
// Workers not started before ctx is done are skipped.
func (w *Workers) Run(ctx context.Context) error {
	var errs []error

	for i, worker := range w.workers {
		if err := ctx.Err(); err != nil {
			errs = append(errs, fmt.Errorf("%w: %d worker(s) not started: %w", ErrRunInterrupted, len(w.workers)-i, err))
			break
		}

		if err := worker.Run(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		w.logger.Error().
			Str("func", "Workers.Run").
			Int("failed", len(errs)).
			Int("total", len(w.workers)).
			Msg("fetch run finished with errors")
	}

	return errors.Join(errs...)
}
