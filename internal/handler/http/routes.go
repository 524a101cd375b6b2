// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-site-gateway/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// compressionLevel is the gzip level used for responses.
const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(compressionLevel, "application/json", "text/plain"))

	// public routes
	router.Group(func(r chi.Router) {
		r.Get(service.PathVersion, h.getServerVersion)
	})

	// token-protected routes, each checking its own subject
	router.Group(func(r chi.Router) {
		r.Get(service.PathEvents, h.getEvents)
		r.Get(service.PathBlogPosts, h.getBlogPosts)
		r.Get(service.PathBlogTaxonomies, h.getBlogTaxonomies)
		r.Get(service.PathCollections, h.getCollection)
		r.Get(service.PathMembers, h.getMembers)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
