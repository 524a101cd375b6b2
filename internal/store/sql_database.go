// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the persistence layer: paginated SQL document
// repositories over PostgreSQL or SQLite, schema migrations, and the dataset
// file storage used by the fetcher.
package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-site-gateway/internal/config"
	"github.com/MKhiriev/go-site-gateway/internal/logger"
	"github.com/MKhiriev/go-site-gateway/migrations"
)

// Driver names registered with database/sql.
const (
	driverPostgres = "pgx"
	driverSQLite   = "sqlite3"
)

// DB wraps *sql.DB with the driver-specific pieces the repositories need:
// the SQL placeholder format and the error classifier.
type DB struct {
	*sql.DB
	driver             string
	placeholder        sq.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens a connection for cfg.DSN. postgres:// and postgresql://
// URLs are opened with pgx, anything else is treated as a SQLite file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

// Migrate applies the embedded schema migrations for the connection's driver.
func (db *DB) Migrate() error {
	switch db.driver {
	case driverPostgres:
		return migrations.Migrate(db.DB, migrations.DialectPostgres)
	case driverSQLite:
		return migrations.Migrate(db.DB, migrations.DialectSQLite)
	default:
		return ErrUnsupportedDriver
	}
}

// retryable reports whether err was classified as transient.
func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}

	return db.errorClassificator.Classify(err) == Retryable
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
