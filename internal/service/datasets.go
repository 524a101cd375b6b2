// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-site-gateway/internal/config"
	"github.com/MKhiriev/go-site-gateway/models"
)

// Gateway routes and their selector parameters.
const (
	PathEvents         = "/api/events"
	PathBlogPosts      = "/api/blog/posts"
	PathBlogTaxonomies = "/api/blog/taxonomies"
	PathCollections    = "/api/collections"
	PathMembers        = "/api/members"
	PathVersion        = "/api/version/"

	ParamTaxonomy   = "tax"
	ParamCollection = "coll"
)

// Datasets lists every dataset the fetcher can download, in download order,
// with the subjects taken from endpoints.
func Datasets(endpoints config.Endpoints) []models.Dataset {
	return []models.Dataset{
		{
			Name:    models.DatasetEvents,
			Path:    PathEvents,
			Subject: endpoints.EventsSubject,
		},
		{
			Name:    models.DatasetBlogPosts,
			Path:    PathBlogPosts,
			Subject: endpoints.BlogPostsSubject,
		},
		{
			Name:        models.DatasetBlogCategories,
			Path:        PathBlogTaxonomies,
			QueryParams: map[string]string{ParamTaxonomy: string(models.TaxonomyCategories)},
			Subject:     endpoints.BlogTaxonomiesSubject,
		},
		{
			Name:        models.DatasetBlogTags,
			Path:        PathBlogTaxonomies,
			QueryParams: map[string]string{ParamTaxonomy: string(models.TaxonomyTags)},
			Subject:     endpoints.BlogTaxonomiesSubject,
		},
		{
			Name:        models.DatasetArticles,
			Path:        PathCollections,
			QueryParams: map[string]string{ParamCollection: models.CollectionTypeArticles},
			Subject:     endpoints.CollectionSubject,
		},
		{
			Name:        models.DatasetArticlesCategories,
			Path:        PathCollections,
			QueryParams: map[string]string{ParamCollection: models.CollectionTypeArticlesCategories},
			Subject:     endpoints.CollectionSubject,
		},
		{
			Name:    models.DatasetMembers,
			Path:    PathMembers,
			Subject: endpoints.MembersSubject,
		},
	}
}

// SelectDatasets returns the datasets named in names, keeping the order of
// all. An empty names selects everything.
func SelectDatasets(all []models.Dataset, names []string) ([]models.Dataset, error) {
	if len(names) == 0 {
		return all, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	selected := make([]models.Dataset, 0, len(names))
	for _, dataset := range all {
		if wanted[dataset.Name] {
			selected = append(selected, dataset)
			delete(wanted, dataset.Name)
		}
	}

	for name := range wanted {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDataset, name)
	}

	return selected, nil
}
