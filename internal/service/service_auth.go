// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-site-gateway/internal/config"
	"github.com/MKhiriev/go-site-gateway/internal/logger"
	"github.com/MKhiriev/go-site-gateway/internal/utils"
	"github.com/MKhiriev/go-site-gateway/models"
)

// authService verifies HS256 tokens against the shared secret. All state is
// read-only after construction.
type authService struct {
	// tokenSignKey is the HMAC secret shared with the token issuers.
	tokenSignKey string

	logger *logger.Logger
}

func NewAuthService(cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		tokenSignKey: cfg.AuthSecret,
		logger:       logger,
	}
}

// ParseToken implements [AuthService]. The concrete reason (bad signature,
// expired, wrong subject) is only logged; callers always get ErrInvalidToken.
func (a *authService) ParseToken(ctx context.Context, tokenString string, endpoint models.Endpoint) (models.Token, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateJWTToken(tokenString, a.tokenSignKey, endpoint.Subject)
	if err != nil {
		log.Err(err).
			Str("func", "authService.ParseToken").
			Str("endpoint", endpoint.ID).
			Msg("token verification failed")
		return models.Token{}, ErrInvalidToken
	}

	log.Debug().
		Str("func", "authService.ParseToken").
		Str("endpoint", endpoint.ID).
		Str("sub", token.Subject).
		Msg("token verified")

	return token, nil
}
