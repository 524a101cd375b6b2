// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the gateway: token
// verification, page-draining data services and app info, plus the fetch
// service used by the fetcher binary.
package service

import (
	"fmt"

	"github.com/MKhiriev/go-site-gateway/internal/adapter"
	"github.com/MKhiriev/go-site-gateway/internal/config"
	"github.com/MKhiriev/go-site-gateway/internal/logger"
	"github.com/MKhiriev/go-site-gateway/internal/store"
)

// Services groups everything the HTTP handlers call.
type Services struct {
	AuthService       AuthService
	EventService      EventService
	BlogService       BlogService
	CollectionService CollectionService
	MemberService     MemberService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:       NewAuthService(cfg.App, logger),
		EventService:      NewEventService(storages.EventRepository, logger),
		BlogService:       NewBlogService(storages.BlogPostRepository, storages.BlogCategoryRepository, storages.BlogTagRepository, logger),
		CollectionService: NewCollectionService(storages.CollectionItemRepository, cfg.Endpoints.CollectionIDs(), logger),
		MemberService:     NewMemberService(storages.MemberRepository, logger),
		AppInfoService:    appInfoService,
	}, nil
}

// FetcherServices groups the services of the fetcher binary.
type FetcherServices struct {
	FetchService FetchService
}

func NewFetcherServices(gatewayAdapter adapter.GatewayAdapter, fileStorage store.DatasetFileStorage, cfg *config.FetcherConfig, logger *logger.Logger) *FetcherServices {
	return &FetcherServices{
		FetchService: NewFetchService(gatewayAdapter, fileStorage, cfg.App, cfg.Workers, logger),
	}
}
