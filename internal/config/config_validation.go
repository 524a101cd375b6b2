// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks that the merged [StructuredConfig] can run the gateway
// server. Every failure wraps one of the sentinel errors from errors.go.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.AuthSecret == "" {
		return fmt.Errorf("%w: empty auth secret", ErrInvalidAppConfigs)
	}
	if cfg.App.Version == "" {
		return fmt.Errorf("%w: empty version", ErrInvalidAppConfigs)
	}

	if err := cfg.Endpoints.validate(); err != nil {
		return err
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (e Endpoints) validate() error {
	subjects := map[string]string{
		"events":          e.EventsSubject,
		"blog posts":      e.BlogPostsSubject,
		"blog taxonomies": e.BlogTaxonomiesSubject,
		"collection":      e.CollectionSubject,
		"members":         e.MembersSubject,
	}
	for name, subject := range subjects {
		if subject == "" {
			return fmt.Errorf("%w: empty JWT subject for %s endpoint", ErrInvalidEndpointConfigs, name)
		}
	}

	for collType, id := range e.CollectionIDs() {
		if id == "" {
			return fmt.Errorf("%w: empty collection ID for %q", ErrInvalidEndpointConfigs, collType)
		}
	}

	return nil
}

func (cfg *FetcherConfig) validate() error {
	if cfg.App.AuthSecret == "" {
		return fmt.Errorf("%w: empty auth secret", ErrInvalidAppConfigs)
	}

	if err := cfg.Endpoints.validate(); err != nil {
		return err
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.OutputDir == "" || cfg.Workers.TokenDuration <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
