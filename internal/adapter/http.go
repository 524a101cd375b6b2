// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-site-gateway/internal/config"
	"github.com/MKhiriev/go-site-gateway/internal/logger"
	"github.com/MKhiriev/go-site-gateway/internal/utils"
	"github.com/MKhiriev/go-site-gateway/models"
)

type httpGatewayAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPGatewayAdapter constructs the resty-based [GatewayAdapter].
// The base URL is taken from adapterCfg.HTTPAddress; a missing scheme
// defaults to http.
func NewHTTPGatewayAdapter(adapterCfg config.Adapter, logger *logger.Logger) (GatewayAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpGatewayAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Fetch implements [GatewayAdapter].
func (h *httpGatewayAdapter) Fetch(ctx context.Context, dataset models.Dataset, token string) ([]json.RawMessage, error) {
	log := logger.FromContext(ctx)

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetQueryParams(dataset.QueryParams).
		Get(dataset.Path)
	if err != nil {
		log.Err(err).Str("func", "httpGatewayAdapter.Fetch").Str("path", dataset.Path).Msg("gateway request failed")
		return nil, fmt.Errorf("%s request: %w", dataset.Name, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).
			Str("func", "httpGatewayAdapter.Fetch").
			Str("path", dataset.Path).
			Int("status", resp.StatusCode()).
			Msg("gateway answered with error")
		return nil, err
	}

	var items []json.RawMessage
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		log.Err(err).Str("func", "httpGatewayAdapter.Fetch").Str("path", dataset.Path).Msg("gateway response is not a JSON array")
		return nil, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	if items == nil {
		items = []json.RawMessage{}
	}

	return items, nil
}
