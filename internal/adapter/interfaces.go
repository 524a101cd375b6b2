// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the fetcher's client for the gateway HTTP API.
//
// Non-2xx answers are mapped to the sentinel errors in errors.go by
// mapHTTPError, so callers can use [errors.Is] without looking at status
// codes (e.g. [ErrUnauthorized] for a rejected token).
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-site-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/gateway_adapter_mock.go -package=mock

// GatewayAdapter downloads datasets from the gateway.
type GatewayAdapter interface {
	// Fetch GETs dataset.Path with dataset.QueryParams, authenticating with
	// the given bearer token, and returns the decoded JSON array. A null body
	// is returned as an empty slice.
	Fetch(ctx context.Context, dataset models.Dataset, token string) ([]json.RawMessage, error)
}
