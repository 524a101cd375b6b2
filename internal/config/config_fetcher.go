// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
)

// FetcherConfig is the fetcher-specific view of [StructuredConfig]. The
// fetcher needs the shared secret and endpoint subjects to sign tokens, but
// no storage or listen address.
type FetcherConfig struct {
	App       App
	Endpoints Endpoints
	Adapter   Adapter
	Workers   Workers
}

// GetFetcherConfig builds and validates the fetcher configuration from the
// same sources as [GetStructuredConfig].
func GetFetcherConfig() (*FetcherConfig, error) {
	return getFetcherConfig(os.Args[1:])
}

func getFetcherConfig(args []string) (*FetcherConfig, error) {
	cfg, err := loadConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	fetcherCfg := &FetcherConfig{
		App:       cfg.App,
		Endpoints: cfg.Endpoints,
		Adapter:   cfg.Adapter,
		Workers:   cfg.Workers,
	}

	return fetcherCfg, fetcherCfg.validate()
}
