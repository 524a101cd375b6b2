// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Defaults applied to fields left empty by every source.
const (
	defaultHTTPAddress                    = "localhost:8080"
	defaultAdapterAddress                 = "http://localhost:8080"
	defaultAdapterRequestTimeout          = 30 * time.Second
	defaultOutputDir                      = "data"
	defaultTokenDuration                  = 5 * time.Minute
	defaultArticlesCollectionID           = "Articles"
	defaultArticlesCategoriesCollectionID = "ArticlesCategories"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := mergo.Merge(config, defaults()); err != nil {
		return nil, fmt.Errorf("error applying default configs: %w", err)
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagsCfg)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		Endpoints: Endpoints{
			ArticlesCollectionID:           defaultArticlesCollectionID,
			ArticlesCategoriesCollectionID: defaultArticlesCategoriesCollectionID,
		},
		Server: Server{
			HTTPAddress: defaultHTTPAddress,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultAdapterRequestTimeout,
		},
		Workers: Workers{
			OutputDir:     defaultOutputDir,
			TokenDuration: defaultTokenDuration,
		},
	}
}
