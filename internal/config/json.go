// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig].
type StructuredJSONConfig struct {
	App struct {
		AuthSecret string `json:"auth_secret"`
		Version    string `json:"version"`
	} `json:"app,omitempty"`

	Endpoints struct {
		EventsSubject                  string `json:"events_jwt_sub"`
		BlogPostsSubject               string `json:"blog_posts_jwt_sub"`
		BlogTaxonomiesSubject          string `json:"blog_taxonomies_jwt_sub"`
		CollectionSubject              string `json:"collection_jwt_sub"`
		MembersSubject                 string `json:"members_jwt_sub"`
		ArticlesCollectionID           string `json:"articles_collection_id"`
		ArticlesCategoriesCollectionID string `json:"articles_categories_collection_id"`
	} `json:"endpoints,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		OutputDir     string   `json:"output_dir"`
		TokenDuration Duration `json:"token_duration"`
		Datasets      []string `json:"datasets"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			AuthSecret: jsonCfg.App.AuthSecret,
			Version:    jsonCfg.App.Version,
		},
		Endpoints: Endpoints{
			EventsSubject:                  jsonCfg.Endpoints.EventsSubject,
			BlogPostsSubject:               jsonCfg.Endpoints.BlogPostsSubject,
			BlogTaxonomiesSubject:          jsonCfg.Endpoints.BlogTaxonomiesSubject,
			CollectionSubject:              jsonCfg.Endpoints.CollectionSubject,
			MembersSubject:                 jsonCfg.Endpoints.MembersSubject,
			ArticlesCollectionID:           jsonCfg.Endpoints.ArticlesCollectionID,
			ArticlesCategoriesCollectionID: jsonCfg.Endpoints.ArticlesCategoriesCollectionID,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			OutputDir:     jsonCfg.Workers.OutputDir,
			TokenDuration: time.Duration(jsonCfg.Workers.TokenDuration),
			Datasets:      jsonCfg.Workers.Datasets,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
