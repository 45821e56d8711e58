// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-calculator/models"
	"github.com/golang-jwt/jwt/v5"
)

// bearerScheme is the only authorization scheme accepted for tokens.
const bearerScheme = "Bearer"

var (
	// ErrInvalidBearerHeader is returned by ParseBearerToken when the header
	// does not have the "Bearer <token>" form.
	ErrInvalidBearerHeader = errors.New("invalid bearer authorization header")

	errEmptyUsername = errors.New("empty username claim")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for username.
//
// The token carries the following claims:
//   - username: the user the token is issued for
//   - Subject   (sub): the username as well
//   - Issuer    (iss): identifies the issuing service, omitted when empty
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): now plus tokenDuration; omitted when tokenDuration is
//     zero, in which case the token never expires
//
// Returns an error if username or signKey are empty.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("calculator-microservice", "user1", 0, "secret")
func GenerateJWTToken(issuer, username string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if username == "" || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   issuer,
			Subject:  username,
			IssuedAt: jwt.NewNumericDate(now),
		},
		Username: username,
	}
	if tokenDuration != 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(tokenDuration))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	claims.SignedString = tokenString
	return *claims, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts
// its claims.
//
// Validation includes:
//   - Signature verification with tokenSignKey; only HS256 is accepted
//   - Issuer (iss) claim check when tokenIssuer is not empty
//   - Expiration (exp) claim check when the claim is present
//   - Presence of a non-empty username claim
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(rawToken, "secret", "calculator-microservice")
//	if err != nil {
//	    // handle invalid token
//	}
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if tokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(tokenIssuer))
	}

	claims := &models.Token{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Username == "" {
		return models.Token{}, errEmptyUsername
	}

	claims.SignedString = tokenString
	return *claims, nil
}

// ParseBearerToken extracts the token from an "Authorization" header value of
// the form "Bearer <token>". The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", ErrInvalidBearerHeader
	}

	token = strings.TrimSpace(token)
	if token == "" || strings.Contains(token, " ") {
		return "", ErrInvalidBearerHeader
	}

	return token, nil
}
