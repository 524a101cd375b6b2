// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-site-gateway/internal/config"
	"github.com/MKhiriev/go-site-gateway/internal/logger"
)

type appInfoService struct {
	version string
	logger  *logger.Logger
}

// NewAppInfoService returns the service backing the public version route.
// A version made only of whitespace counts as missing.
func NewAppInfoService(cfg config.App, log *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		log.Error().Str("func", "NewAppInfoService").Msg("gateway version is empty")
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{version: version, logger: log}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	logger.FromContext(ctx).Debug().Str("func", "*appInfoService.GetAppVersion").Str("version", s.version).Msg("version requested")
	return s.version
}
