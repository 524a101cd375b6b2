// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-site-gateway/internal/service"
	"github.com/MKhiriev/go-site-gateway/models"
)

func (h *Handler) getEvents(w http.ResponseWriter, r *http.Request) {
	h.serveEndpoint(w, r, h.endpoints.Events(), h.services.EventService.GetAllEvents)
}

func (h *Handler) getBlogPosts(w http.ResponseWriter, r *http.Request) {
	h.serveEndpoint(w, r, h.endpoints.BlogPosts(), h.services.BlogService.GetPosts)
}

// getBlogTaxonomies serves ?tax=categories|tags. A missing tax is rejected
// before the token is checked; an unknown value after.
func (h *Handler) getBlogTaxonomies(w http.ResponseWriter, r *http.Request) {
	endpoint := h.endpoints.BlogTaxonomies()

	taxonomy := r.URL.Query().Get(service.ParamTaxonomy)
	if taxonomy == "" {
		h.writeError(w, r, endpoint, ErrMissingTaxonomy)
		return
	}

	h.serveEndpoint(w, r, endpoint, func(ctx context.Context) ([]json.RawMessage, error) {
		switch models.Taxonomy(taxonomy) {
		case models.TaxonomyCategories:
			return h.services.BlogService.GetCategories(ctx)
		case models.TaxonomyTags:
			return h.services.BlogService.GetTags(ctx)
		default:
			return nil, ErrInvalidTaxonomy
		}
	})
}

// getCollection serves ?coll=articles|articles-category. Both a missing and
// an unknown coll are rejected before the token is checked.
func (h *Handler) getCollection(w http.ResponseWriter, r *http.Request) {
	endpoint := h.endpoints.Collection()

	collectionType := r.URL.Query().Get(service.ParamCollection)
	if collectionType == "" {
		h.writeError(w, r, endpoint, ErrMissingCollection)
		return
	}

	collectionID, err := h.services.CollectionService.CollectionID(collectionType)
	if err != nil {
		h.writeError(w, r, endpoint, err)
		return
	}

	h.serveEndpoint(w, r, endpoint, func(ctx context.Context) ([]json.RawMessage, error) {
		return h.services.CollectionService.GetCollection(ctx, collectionID)
	})
}

func (h *Handler) getMembers(w http.ResponseWriter, r *http.Request) {
	h.serveEndpoint(w, r, h.endpoints.Members(), h.services.MemberService.GetMembers)
}
