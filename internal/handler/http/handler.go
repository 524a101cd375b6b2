// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-site-gateway/internal/config"
	"github.com/MKhiriev/go-site-gateway/internal/logger"
	"github.com/MKhiriev/go-site-gateway/internal/service"
	"github.com/MKhiriev/go-site-gateway/internal/utils"
)

type Handler struct {
	services *service.Services

	// endpoints holds the expected token subject of every data endpoint.
	endpoints config.Endpoints

	// requestTimeout bounds each request when positive.
	requestTimeout time.Duration

	traceIDs *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, endpoints config.Endpoints, serverCfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		endpoints:      endpoints,
		requestTimeout: serverCfg.RequestTimeout,
		traceIDs:       utils.NewUUIDGenerator(),
		logger:         logger,
	}
}
