// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token is a verified (or freshly signed) JWT.
//
// It embeds [jwt.RegisteredClaims] so it can be passed directly to
// [jwt.ParseWithClaims]; only the "sub" claim takes part in authorization.
type Token struct {
	jwt.RegisteredClaims

	// SignedString is the compact JWS form (header.payload.signature).
	// Excluded from JSON so it never ends up in logs.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
