// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-site-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService verifies bearer tokens presented to gateway endpoints.
type AuthService interface {
	// ParseToken verifies tokenString with the shared secret and checks that
	// its subject matches endpoint.Subject. Any failure yields ErrInvalidToken.
	ParseToken(ctx context.Context, tokenString string, endpoint models.Endpoint) (models.Token, error)
}

type EventService interface {
	// GetAllEvents returns every event except canceled ones.
	GetAllEvents(ctx context.Context) ([]json.RawMessage, error)
}

type BlogService interface {
	GetPosts(ctx context.Context) ([]json.RawMessage, error)
	GetCategories(ctx context.Context) ([]json.RawMessage, error)
	GetTags(ctx context.Context) ([]json.RawMessage, error)
}

type CollectionService interface {
	// CollectionID resolves a collection type token ("articles",
	// "articles-category") to the configured collection id.
	CollectionID(collectionType string) (string, error)

	GetCollection(ctx context.Context, collectionID string) ([]json.RawMessage, error)
}

type MemberService interface {
	GetMembers(ctx context.Context) ([]json.RawMessage, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// FetchService downloads one dataset from the gateway and stores it locally.
type FetchService interface {
	// Fetch returns the written file path and the number of items.
	Fetch(ctx context.Context, dataset models.Dataset) (string, int, error)
}
