// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Low-level database operation errors. Repository methods wrap the driver
// error with one of these so callers can match with [errors.Is].
var (
	// ErrBuildingSQLQuery is returned when the SELECT cannot be rendered.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when the query fails in the database.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when a document column cannot be scanned.
	ErrScanningRow = errors.New("failed to scan document row")

	// ErrScanningRows is returned when iteration over the result set fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan document rows")
)

// Dataset file storage errors.
var (
	// ErrEmptyFileName is returned when a dataset is saved without a name.
	ErrEmptyFileName = errors.New("empty dataset file name")

	// ErrWritingDatasetFile is returned when the dataset file cannot be
	// encoded, written or moved into place.
	ErrWritingDatasetFile = errors.New("error writing dataset file")
)

// ErrUnsupportedDriver is returned by Migrate for a connection opened with
// an unknown driver.
var ErrUnsupportedDriver = errors.New("unsupported database driver")
