// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Dataset names understood by the fetcher.
const (
	DatasetEvents             = "events"
	DatasetBlogPosts          = "blog_posts"
	DatasetBlogCategories     = "blog_categories"
	DatasetBlogTags           = "blog_tags"
	DatasetArticles           = "articles"
	DatasetArticlesCategories = "articles-category"
	DatasetMembers            = "members"
)

// Dataset describes one gateway download performed by the fetcher.
type Dataset struct {
	// Name identifies the dataset, e.g. "events".
	Name string

	// Path is the gateway route, e.g. "/api/events".
	Path string

	// QueryParams are appended to the request (tax=..., coll=...).
	QueryParams map[string]string

	// Subject is the "sub" claim signed into the request token.
	Subject string
}

// FileName is the name of the local file the dataset is written to.
func (d Dataset) FileName() string {
	return d.Name + "_data.json"
}
