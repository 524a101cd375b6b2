// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed database call may succeed if
// attempted again. The gateway never retries on its own; the classification
// is logged so operators can tell outages from bad queries.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify reports [Retryable] for server errors in a transient class and
// for client errors pgconn marks as safe to retry (the query never reached
// the server). Everything else is [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}
	if pgconn.SafeToRetry(err) {
		return Retryable
	}
	return NonRetryable
}

// ClassifyPgError classifies by SQLSTATE class. Every gateway query is a
// read, so rollbacks (40), lost connections (08), server restarts (57) and
// resource exhaustion (53) are all worth another attempt. A cancelled
// statement is not: it was cancelled by the request deadline.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code
	if code == pgerrcode.QueryCanceled {
		return NonRetryable
	}

	switch {
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		pgerrcode.IsOperatorIntervention(code),
		pgerrcode.IsInsufficientResources(code):
		return Retryable
	default:
		return NonRetryable
	}
}
