// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-site-gateway/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidJWTParams is returned by GenerateJWTToken when a required
// parameter is empty or zero.
var ErrInvalidJWTParams = errors.New("invalid params for generating JWT Token")

// GenerateJWTToken creates an HS256-signed JWT for the given subject.
//
// The token carries the "sub", "iat" and "exp" claims, where exp is now plus
// tokenDuration. A negative duration yields an already expired token.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("events-reader", 5*time.Minute, "secret")
func GenerateJWTToken(subject string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if subject == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, ErrInvalidJWTParams
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{RegisteredClaims: claims, SignedString: tokenString}, nil
}

// ValidateJWTToken verifies tokenString against signKey and checks that its
// "sub" claim equals expectedSubject.
//
// Only HS256 is accepted. Expired and not-yet-valid tokens are rejected; a
// token without "exp" is accepted.
//
// Example usage:
//
//	token, err := utils.ValidateJWTToken(rawToken, "secret", "events-reader")
//	if err != nil {
//	    // reject the request
//	}
func ValidateJWTToken(tokenString, signKey, expectedSubject string) (models.Token, error) {
	claims := &models.Token{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithSubject(expectedSubject),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	claims.SignedString = tokenString
	return *claims, nil
}
