// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-site-gateway/internal/logger"
	"github.com/MKhiriev/go-site-gateway/models"
)

// documentRepository is the SQL implementation of [DocumentRepository] for
// a single document table.
type documentRepository struct {
	*DB
	table  documentTable
	logger *logger.Logger
}

func newDocumentRepository(db *DB, table documentTable, logger *logger.Logger) DocumentRepository {
	logger.Debug().Str("table", table.name).Msg("creating document repository")
	return &documentRepository{
		DB:     db,
		table:  table,
		logger: logger,
	}
}

func NewEventRepository(db *DB, logger *logger.Logger) DocumentRepository {
	return newDocumentRepository(db, eventsTable, logger)
}

func NewBlogPostRepository(db *DB, logger *logger.Logger) DocumentRepository {
	return newDocumentRepository(db, blogPostsTable, logger)
}

func NewBlogCategoryRepository(db *DB, logger *logger.Logger) DocumentRepository {
	return newDocumentRepository(db, blogCategoriesTable, logger)
}

func NewBlogTagRepository(db *DB, logger *logger.Logger) DocumentRepository {
	return newDocumentRepository(db, blogTagsTable, logger)
}

// NewCollectionItemRepository returns a repository over the shared
// collection_items table; queries are always scoped to Query.CollectionID.
func NewCollectionItemRepository(db *DB, logger *logger.Logger) DocumentRepository {
	return newDocumentRepository(db, collectionItemsTable, logger)
}

func NewMemberRepository(db *DB, logger *logger.Logger) DocumentRepository {
	return newDocumentRepository(db, membersTable, logger)
}

// Find returns one page of documents.
//
// One row more than the page size is requested; if it arrives, it is dropped
// and the page is marked HasNext with Next set to the following offset.
func (r *documentRepository) Find(ctx context.Context, query models.Query) (models.Page, error) {
	log := logger.FromContext(ctx)

	limit := query.Limit
	if limit == 0 {
		limit = models.DefaultPageSize
	}

	sqlQuery, args, err := buildFindDocumentsQuery(r.table, query, r.placeholder)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.Find").
			Str("table", r.table.name).
			Msg("failed to create query")
		return models.Page{}, err
	}

	rows, err := r.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).
			Str("func", "documentRepository.Find").
			Str("table", r.table.name).
			Uint64("offset", query.Offset).
			Bool("retryable", r.retryable(err)).
			Msg("failed to execute query for finding documents")
		return models.Page{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]json.RawMessage, 0, limit+1)

	for rows.Next() {
		var data []byte
		if scanErr := rows.Scan(&data); scanErr != nil {
			log.Err(scanErr).
				Str("func", "documentRepository.Find").
				Str("table", r.table.name).
				Msg("failed to scan document row")
			return models.Page{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		items = append(items, json.RawMessage(data))
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "documentRepository.Find").
			Str("table", r.table.name).
			Bool("retryable", r.retryable(rowsErr)).
			Msg("error occurred during rows iteration")
		return models.Page{}, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	page := models.Page{Items: items}
	if uint64(len(items)) > limit {
		page.Items = items[:limit]
		page.HasNext = true
		page.Next = query.Offset + limit
	}

	log.Debug().
		Str("func", "documentRepository.Find").
		Str("table", r.table.name).
		Uint64("offset", query.Offset).
		Int("count", len(page.Items)).
		Bool("has_next", page.HasNext).
		Msg("documents page fetched")

	return page, nil
}
