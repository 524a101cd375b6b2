// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-site-gateway/models"
)

// pageFetcher reads the page starting at offset.
type pageFetcher func(ctx context.Context, offset uint64) (models.Page, error)

// drainPages reads pages sequentially, starting at offset 0, and
// concatenates their items in order.
//
// It stops after the first empty page or the first page without HasNext.
// The result is never nil. On error the items gathered so far are dropped.
func drainPages(ctx context.Context, fetch pageFetcher) ([]json.RawMessage, error) {
	items := make([]json.RawMessage, 0)

	var offset uint64
	for {
		page, err := fetch(ctx, offset)
		if err != nil {
			return nil, err
		}

		items = append(items, page.Items...)

		if len(page.Items) == 0 || !page.HasNext {
			return items, nil
		}

		offset = page.Next
	}
}

// repositoryPages adapts a repository Find to a pageFetcher for query.
func repositoryPages(find func(ctx context.Context, query models.Query) (models.Page, error), query models.Query) pageFetcher {
	return func(ctx context.Context, offset uint64) (models.Page, error) {
		return find(ctx, query.WithOffset(offset))
	}
}
