// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-site-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEndpoints() Endpoints {
	return Endpoints{
		EventsSubject:                  "events-sub",
		BlogPostsSubject:               "posts-sub",
		BlogTaxonomiesSubject:          "taxonomies-sub",
		CollectionSubject:              "collection-sub",
		MembersSubject:                 "members-sub",
		ArticlesCollectionID:           "Articles",
		ArticlesCategoriesCollectionID: "ArticlesCategories",
	}
}

func validServerConfig() *StructuredConfig {
	return &StructuredConfig{
		App:       App{AuthSecret: "secret", Version: "1.0.0"},
		Endpoints: validEndpoints(),
		Storage:   Storage{DB: DB{DSN: "gateway.db"}},
		Server:    Server{HTTPAddress: "localhost:8080"},
	}
}

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "empty secret", mutate: func(c *StructuredConfig) { c.App.AuthSecret = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "empty version", mutate: func(c *StructuredConfig) { c.App.Version = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "empty events subject", mutate: func(c *StructuredConfig) { c.Endpoints.EventsSubject = "" }, wantErr: ErrInvalidEndpointConfigs},
		{name: "empty members subject", mutate: func(c *StructuredConfig) { c.Endpoints.MembersSubject = "" }, wantErr: ErrInvalidEndpointConfigs},
		{name: "empty collection id", mutate: func(c *StructuredConfig) { c.Endpoints.ArticlesCollectionID = "" }, wantErr: ErrInvalidEndpointConfigs},
		{name: "empty dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty address", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "negative timeout", mutate: func(c *StructuredConfig) { c.Server.RequestTimeout = -time.Second }, wantErr: ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validServerConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFetcherConfig_Validate(t *testing.T) {
	valid := func() *FetcherConfig {
		return &FetcherConfig{
			App:       App{AuthSecret: "secret"},
			Endpoints: validEndpoints(),
			Adapter:   Adapter{HTTPAddress: "http://localhost:8080", RequestTimeout: time.Second},
			Workers:   Workers{OutputDir: "out", TokenDuration: time.Minute},
		}
	}

	tests := []struct {
		name    string
		mutate  func(cfg *FetcherConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*FetcherConfig) {}},
		{name: "empty secret", mutate: func(c *FetcherConfig) { c.App.AuthSecret = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "empty subject", mutate: func(c *FetcherConfig) { c.Endpoints.BlogPostsSubject = "" }, wantErr: ErrInvalidEndpointConfigs},
		{name: "empty gateway url", mutate: func(c *FetcherConfig) { c.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero timeout", mutate: func(c *FetcherConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "empty output dir", mutate: func(c *FetcherConfig) { c.Workers.OutputDir = "" }, wantErr: ErrInvalidWorkerConfigs},
		{name: "zero token duration", mutate: func(c *FetcherConfig) { c.Workers.TokenDuration = 0 }, wantErr: ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetFetcherConfig_AppliesDefaults(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_AUTH_SECRET":                   "secret",
		"ENDPOINTS_EVENTS_JWT_SUB":          "events-sub",
		"ENDPOINTS_BLOG_POSTS_JWT_SUB":      "posts-sub",
		"ENDPOINTS_BLOG_TAXONOMIES_JWT_SUB": "taxonomies-sub",
		"ENDPOINTS_COLLECTION_JWT_SUB":      "collection-sub",
		"ENDPOINTS_MEMBERS_JWT_SUB":         "members-sub",
	})

	cfg, err := getFetcherConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, defaultAdapterAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, defaultTokenDuration, cfg.Workers.TokenDuration)
	assert.Equal(t, defaultOutputDir, cfg.Workers.OutputDir)
}

func TestEndpoints_Identities(t *testing.T) {
	e := validEndpoints()

	assert.Equal(t, models.Endpoint{ID: models.EndpointFindEvents, Subject: "events-sub"}, e.Events())
	assert.Equal(t, models.Endpoint{ID: models.EndpointFindBlogPosts, Subject: "posts-sub"}, e.BlogPosts())
	assert.Equal(t, models.Endpoint{ID: models.EndpointFindBlogTaxonomies, Subject: "taxonomies-sub"}, e.BlogTaxonomies())
	assert.Equal(t, models.Endpoint{ID: models.EndpointFindCollection, Subject: "collection-sub"}, e.Collection())
	assert.Equal(t, models.Endpoint{ID: models.EndpointFindMembers, Subject: "members-sub"}, e.Members())
	assert.Equal(t, map[string]string{
		models.CollectionTypeArticles:           "Articles",
		models.CollectionTypeArticlesCategories: "ArticlesCategories",
	}, e.CollectionIDs())
}
