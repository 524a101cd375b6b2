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

type collectionService struct {
	collectionItemRepository store.DocumentRepository

	// collectionIDs maps collection type tokens to collection ids.
	collectionIDs map[string]string

	logger *logger.Logger
}

func NewCollectionService(collectionItemRepository store.DocumentRepository, collectionIDs map[string]string, logger *logger.Logger) CollectionService {
	return &collectionService{
		collectionItemRepository: collectionItemRepository,
		collectionIDs:            collectionIDs,
		logger:                   logger,
	}
}

func (s *collectionService) CollectionID(collectionType string) (string, error) {
	collectionID, ok := s.collectionIDs[collectionType]
	if !ok || collectionID == "" {
		return "", ErrInvalidCollectionType
	}

	return collectionID, nil
}

func (s *collectionService) GetCollection(ctx context.Context, collectionID string) ([]json.RawMessage, error) {
	query := models.Query{
		Limit:        models.DefaultPageSize,
		CollectionID: collectionID,
	}

	items, err := drainPages(ctx, repositoryPages(s.collectionItemRepository.Find, query))
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "collectionService.GetCollection").
			Str("collection_id", collectionID).
			Msg("error retrieving collection")
		return nil, ErrRetrieveCollection
	}

	return items, nil
}
