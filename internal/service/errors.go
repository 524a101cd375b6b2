// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Errors returned to HTTP callers verbatim. The data services log the
// underlying store error and return one of these instead.
var (
	ErrRetrieveEvents         = errors.New("failed to retrieve all events")
	ErrRetrievePosts          = errors.New("failed to retrieve posts")
	ErrRetrieveBlogCategories = errors.New("failed to retrieve blog categories")
	ErrRetrieveBlogTags       = errors.New("failed to retrieve blog tags")
	ErrRetrieveCollection     = errors.New("failed to retrieve collection")
	ErrRetrieveMembers        = errors.New("failed to retrieve members")

	ErrInvalidToken          = errors.New("Unauthorized: Invalid token.")
	ErrInvalidCollectionType = errors.New("Invalid collection type.")
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrUnknownDataset  = errors.New("unknown dataset")
	ErrFetchingDataset = errors.New("error fetching dataset")
	ErrSavingDataset   = errors.New("error saving dataset")
	ErrSigningToken    = errors.New("error signing dataset token")
)
