// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-site-gateway/models"
)

// Document tables created by the migrations.
const (
	tableEvents          = "events"
	tableBlogPosts       = "blog_posts"
	tableBlogCategories  = "blog_categories"
	tableBlogTags        = "blog_tags"
	tableCollectionItems = "collection_items"
	tableMembers         = "members"
)

const (
	columnData         = "data"
	columnStatus       = "status"
	columnCollectionID = "collection_id"
	columnPosition     = "position"
	columnID           = "id"
)

// documentTable describes which optional filter columns a table carries.
type documentTable struct {
	name          string
	hasStatus     bool
	hasCollection bool
}

var (
	eventsTable          = documentTable{name: tableEvents, hasStatus: true}
	blogPostsTable       = documentTable{name: tableBlogPosts}
	blogCategoriesTable  = documentTable{name: tableBlogCategories}
	blogTagsTable        = documentTable{name: tableBlogTags}
	collectionItemsTable = documentTable{name: tableCollectionItems, hasCollection: true}
	membersTable         = documentTable{name: tableMembers}
)

// buildFindDocumentsQuery renders
//
//	SELECT data FROM <table> [WHERE ...] ORDER BY position, id LIMIT <limit+1> OFFSET <offset>
//
// The extra row tells the caller whether another page exists. Filters the
// table has no column for are ignored.
func buildFindDocumentsQuery(table documentTable, query models.Query, placeholder sq.PlaceholderFormat) (string, []any, error) {
	limit := query.Limit
	if limit == 0 {
		limit = models.DefaultPageSize
	}

	builder := sq.Select(columnData).
		From(table.name).
		OrderBy(columnPosition, columnID).
		Limit(limit + 1).
		Offset(query.Offset).
		PlaceholderFormat(placeholder)

	if table.hasStatus && len(query.ExcludeStatuses) > 0 {
		builder = builder.Where(sq.NotEq{columnStatus: query.ExcludeStatuses})
	}

	if table.hasCollection {
		builder = builder.Where(sq.Eq{columnCollectionID: query.CollectionID})
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return sqlQuery, args, nil
}
