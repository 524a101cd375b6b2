// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-site-gateway/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// DocumentRepository reads one page of stored JSON documents.
//
// Documents are ordered by (position, id). The returned page holds at most
// query.Limit items; HasNext reports whether another page follows and Next
// is the offset of that page.
type DocumentRepository interface {
	Find(ctx context.Context, query models.Query) (models.Page, error)
}

// DatasetFileStorage persists a fetched dataset as a JSON array file.
type DatasetFileStorage interface {
	Save(ctx context.Context, fileName string, items []json.RawMessage) (string, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
