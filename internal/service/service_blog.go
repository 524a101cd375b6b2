// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-site-gateway/internal/logger"
	"github.com/MKhiriev/go-site-gateway/internal/store"
	"github.com/MKhiriev/go-site-gateway/models"
)

type blogService struct {
	postRepository     store.DocumentRepository
	categoryRepository store.DocumentRepository
	tagRepository      store.DocumentRepository

	logger *logger.Logger
}

func NewBlogService(postRepository, categoryRepository, tagRepository store.DocumentRepository, logger *logger.Logger) BlogService {
	return &blogService{
		postRepository:     postRepository,
		categoryRepository: categoryRepository,
		tagRepository:      tagRepository,
		logger:             logger,
	}
}

func (s *blogService) GetPosts(ctx context.Context) ([]json.RawMessage, error) {
	posts, err := drainPages(ctx, repositoryPages(s.postRepository.Find, models.Query{Limit: models.DefaultPageSize}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "blogService.GetPosts").Msg("error retrieving posts")
		return nil, ErrRetrievePosts
	}

	return posts, nil
}

func (s *blogService) GetCategories(ctx context.Context) ([]json.RawMessage, error) {
	categories, err := drainPages(ctx, repositoryPages(s.categoryRepository.Find, models.Query{Limit: models.DefaultPageSize}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "blogService.GetCategories").Msg("error retrieving blog categories")
		return nil, ErrRetrieveBlogCategories
	}

	return categories, nil
}

func (s *blogService) GetTags(ctx context.Context) ([]json.RawMessage, error) {
	tags, err := drainPages(ctx, repositoryPages(s.tagRepository.Find, models.Query{Limit: models.DefaultPageSize}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "blogService.GetTags").Msg("error retrieving blog tags")
		return nil, ErrRetrieveBlogTags
	}

	return tags, nil
}
