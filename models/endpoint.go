// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Endpoint identifiers used in logs and passed to token verification.
const (
	EndpointFindEvents         = "get_events"
	EndpointFindBlogPosts      = "get_blogPosts"
	EndpointFindBlogTaxonomies = "get_blogTaxonomies"
	EndpointFindCollection     = "get_collection"
	EndpointFindMembers        = "get_members"
)

// Endpoint binds a gateway route to the JWT subject that is allowed to call it.
type Endpoint struct {
	// ID is the stable endpoint identifier, e.g. "get_events".
	ID string

	// Subject is the expected "sub" claim of tokens presented to this endpoint.
	Subject string
}

// Taxonomy is one of the two blog classification facets.
type Taxonomy string

const (
	TaxonomyCategories Taxonomy = "categories"
	TaxonomyTags       Taxonomy = "tags"
)

// Collection type tokens accepted by the collection endpoint.
const (
	CollectionTypeArticles           = "articles"
	CollectionTypeArticlesCategories = "articles-category"
)

// Event statuses.
const (
	EventStatusCanceled = "CANCELED"
)
