// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"

	"github.com/MKhiriev/go-site-gateway/models"
)

// StructuredConfig is the top-level configuration container shared by the
// gateway server and the fetcher. It is populated by merging environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the shared JWT secret and the application version.
	App App `envPrefix:"APP_"`

	// Endpoints holds the expected JWT subject of every gateway endpoint and
	// the collection identifiers served by the collection endpoint.
	Endpoints Endpoints `envPrefix:"ENDPOINTS_"`

	// Storage holds the content store connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and request timeout of the gateway.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the gateway location as seen by the fetcher.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds fetcher run settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// AuthSecret is the HMAC secret used to verify (gateway) and sign
	// (fetcher) endpoint tokens. Must be kept confidential.
	// Env: APP_AUTH_SECRET
	AuthSecret string `env:"AUTH_SECRET"`

	// Version is exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Endpoints binds every gateway endpoint to the JWT subject allowed to call it.
type Endpoints struct {
	// Env: ENDPOINTS_EVENTS_JWT_SUB
	EventsSubject string `env:"EVENTS_JWT_SUB"`
	// Env: ENDPOINTS_BLOG_POSTS_JWT_SUB
	BlogPostsSubject string `env:"BLOG_POSTS_JWT_SUB"`
	// Env: ENDPOINTS_BLOG_TAXONOMIES_JWT_SUB
	BlogTaxonomiesSubject string `env:"BLOG_TAXONOMIES_JWT_SUB"`
	// Env: ENDPOINTS_COLLECTION_JWT_SUB
	CollectionSubject string `env:"COLLECTION_JWT_SUB"`
	// Env: ENDPOINTS_MEMBERS_JWT_SUB
	MembersSubject string `env:"MEMBERS_JWT_SUB"`

	// ArticlesCollectionID is the store identifier of the "articles" collection.
	// Env: ENDPOINTS_ARTICLES_COLLECTION_ID
	ArticlesCollectionID string `env:"ARTICLES_COLLECTION_ID"`

	// ArticlesCategoriesCollectionID is the store identifier of the
	// "articles-category" collection.
	// Env: ENDPOINTS_ARTICLES_CATEGORIES_COLLECTION_ID
	ArticlesCategoriesCollectionID string `env:"ARTICLES_CATEGORIES_COLLECTION_ID"`
}

// Storage groups the content store settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the content store connection settings.
type DB struct {
	// DSN selects the driver by scheme: "postgres://" or "postgresql://"
	// use pgx, anything else is treated as a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the gateway.
type Server struct {
	// HTTPAddress is the "host:port" the gateway listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request. Zero disables it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the fetcher's view of the gateway.
type Adapter struct {
	// HTTPAddress is the gateway base URL (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds fetcher run settings.
type Workers struct {
	// OutputDir is the directory dataset files are written to.
	// Env: WORKERS_OUTPUT_DIR
	OutputDir string `env:"OUTPUT_DIR"`

	// TokenDuration is the lifetime of tokens signed for each request.
	// Env: WORKERS_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Datasets restricts the run to the named datasets; empty means all.
	// Env: WORKERS_DATASETS (comma separated)
	Datasets []string `env:"DATASETS" envSeparator:","`
}

// Events returns the identity of the events endpoint.
func (e Endpoints) Events() models.Endpoint {
	return models.Endpoint{ID: models.EndpointFindEvents, Subject: e.EventsSubject}
}

// BlogPosts returns the identity of the blog posts endpoint.
func (e Endpoints) BlogPosts() models.Endpoint {
	return models.Endpoint{ID: models.EndpointFindBlogPosts, Subject: e.BlogPostsSubject}
}

// BlogTaxonomies returns the identity of the blog taxonomies endpoint.
func (e Endpoints) BlogTaxonomies() models.Endpoint {
	return models.Endpoint{ID: models.EndpointFindBlogTaxonomies, Subject: e.BlogTaxonomiesSubject}
}

// Collection returns the identity of the collection endpoint.
func (e Endpoints) Collection() models.Endpoint {
	return models.Endpoint{ID: models.EndpointFindCollection, Subject: e.CollectionSubject}
}

// Members returns the identity of the members endpoint.
func (e Endpoints) Members() models.Endpoint {
	return models.Endpoint{ID: models.EndpointFindMembers, Subject: e.MembersSubject}
}

// CollectionIDs maps the collection type tokens accepted by the collection
// endpoint to store collection identifiers.
func (e Endpoints) CollectionIDs() map[string]string {
	return map[string]string{
		models.CollectionTypeArticles:           e.ArticlesCollectionID,
		models.CollectionTypeArticlesCategories: e.ArticlesCategoriesCollectionID,
	}
}

// GetStructuredConfig loads, merges, and validates the gateway server
// configuration. Sources are merged with the following priority (a field set
// by an earlier source is never overwritten by a later one):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func loadConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
