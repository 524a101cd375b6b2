// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// DefaultPageSize is the number of documents requested per page when the
// services drain a content source.
const DefaultPageSize uint64 = 50

// Page is a single slice of query results returned by a content source.
//
// Items are raw JSON documents passed through verbatim. HasNext reports
// whether another page exists; Next is the offset at which it starts.
type Page struct {
	Items   []json.RawMessage
	HasNext bool
	Next    uint64
}

// Query describes which documents to read from a content source and which
// page of them to return.
type Query struct {
	// Limit is the maximum number of documents in the returned page.
	Limit uint64

	// Offset is the position of the first document of the page.
	Offset uint64

	// ExcludeStatuses drops documents whose status is one of the listed
	// values. Only sources that carry a status (events) honour it.
	ExcludeStatuses []string

	// CollectionID selects the collection for collection queries.
	CollectionID string
}

// WithOffset returns a copy of q that starts at offset.
func (q Query) WithOffset(offset uint64) Query {
	q.Offset = offset
	return q
}
