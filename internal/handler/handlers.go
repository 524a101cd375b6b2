// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler groups the transport handlers of the gateway server.
package handler

import (
	"github.com/MKhiriev/go-site-gateway/internal/config"
	"github.com/MKhiriev/go-site-gateway/internal/handler/http"
	"github.com/MKhiriev/go-site-gateway/internal/logger"
	"github.com/MKhiriev/go-site-gateway/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg.Endpoints, cfg.Server, logger),
	}, nil
}
