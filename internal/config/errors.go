// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates missing application-level settings
	// (for example, an empty auth secret or version).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidEndpointConfigs indicates that an endpoint has no expected
	// JWT subject or a collection type has no collection ID.
	ErrInvalidEndpointConfigs = errors.New("invalid endpoint configuration")
	// ErrInvalidStorageConfigs indicates an empty content store DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates an empty listen address or a
	// negative request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid fetcher transport settings
	// (for example, missing gateway URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates invalid fetcher run settings
	// (for example, empty output directory or zero token duration).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
