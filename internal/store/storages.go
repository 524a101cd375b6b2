// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-site-gateway/internal/logger"

// Storages groups the document repositories the services read from.
type Storages struct {
	EventRepository          DocumentRepository
	BlogPostRepository       DocumentRepository
	BlogCategoryRepository   DocumentRepository
	BlogTagRepository        DocumentRepository
	CollectionItemRepository DocumentRepository
	MemberRepository         DocumentRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		EventRepository:          NewEventRepository(db, logger),
		BlogPostRepository:       NewBlogPostRepository(db, logger),
		BlogCategoryRepository:   NewBlogCategoryRepository(db, logger),
		BlogTagRepository:        NewBlogTagRepository(db, logger),
		CollectionItemRepository: NewCollectionItemRepository(db, logger),
		MemberRepository:         NewMemberRepository(db, logger),
	}
}
