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

type memberService struct {
	memberRepository store.DocumentRepository

	logger *logger.Logger
}

func NewMemberService(memberRepository store.DocumentRepository, logger *logger.Logger) MemberService {
	return &memberService{
		memberRepository: memberRepository,
		logger:           logger,
	}
}

func (s *memberService) GetMembers(ctx context.Context) ([]json.RawMessage, error) {
	members, err := drainPages(ctx, repositoryPages(s.memberRepository.Find, models.Query{Limit: models.DefaultPageSize}))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "memberService.GetMembers").Msg("error retrieving members")
		return nil, ErrRetrieveMembers
	}

	return members, nil
}
