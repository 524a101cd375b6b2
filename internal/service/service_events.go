// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-site-gateway/internal/logger"
	"github.com/MKhiriev/go-site-gateway/internal/store"
	"github.com/MKhiriev/go-site-gateway/models"
)

type eventService struct {
	eventRepository store.DocumentRepository

	logger *logger.Logger
}

func NewEventService(eventRepository store.DocumentRepository, logger *logger.Logger) EventService {
	return &eventService{
		eventRepository: eventRepository,
		logger:          logger,
	}
}

// GetAllEvents implements [EventService].
func (s *eventService) GetAllEvents(ctx context.Context) ([]json.RawMessage, error) {
	log := logger.FromContext(ctx)

	query := models.Query{
		Limit:           models.DefaultPageSize,
		ExcludeStatuses: []string{models.EventStatusCanceled},
	}

	events, err := drainPages(ctx, repositoryPages(s.eventRepository.Find, query))
	if err != nil {
		log.Err(err).Str("func", "eventService.GetAllEvents").Msg("error retrieving events")
		return nil, ErrRetrieveEvents
	}

	return events, nil
}
