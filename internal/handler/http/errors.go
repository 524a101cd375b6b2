// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Errors reported to callers in the "error" field of a 400 response.
var (
	// ErrMissingAuthorizationHeader is returned when the request carries no
	// Authorization header.
	ErrMissingAuthorizationHeader = errors.New("Unauthorized: missing Authorization header")

	// ErrMalformedAuthorizationHeader is returned when the header is not of
	// the form "Bearer <token>".
	ErrMalformedAuthorizationHeader = errors.New("Unauthorized: malformed Authorization header")

	ErrMissingTaxonomy   = errors.New("Missing taxonomy name.")
	ErrInvalidTaxonomy   = errors.New("Invalid taxonomy name.")
	ErrMissingCollection = errors.New("Missing collection ID parameter.")
)
