// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token is the claim set of a bearer token issued at login.
//
// It embeds [jwt.RegisteredClaims] for the standard claims (sub, iss, iat and
// the optional exp) and adds the username the token was issued for, so that
// [Token] itself can be passed to jwt.ParseWithClaims.
type Token struct {
	jwt.RegisteredClaims

	// Username identifies the user the token was issued for.
	Username string `json:"username"`

	// SignedString is the compact JWS form (header.payload.signature).
	// Only populated on issuance.
	SignedString string `json:"-"`
}

// String returns the compact serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
