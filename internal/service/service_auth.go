// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-calculator/internal/config"
	"github.com/MKhiriev/go-calculator/internal/logger"
	"github.com/MKhiriev/go-calculator/internal/store"
	"github.com/MKhiriev/go-calculator/internal/utils"
	"github.com/MKhiriev/go-calculator/models"
)

// authService is the concrete implementation of AuthService.
// It checks credentials against a CredentialStore and issues HS256 tokens.
type authService struct {
	// credentialStore is the fixed user list.
	credentialStore store.CredentialStore

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	// Zero issues tokens without expiry.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// CredentialStore and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(credentialStore store.CredentialStore, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		credentialStore: credentialStore,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		tokenDuration:   cfg.TokenDuration,
		logger:          logger,
	}
}

// Login authenticates a user by exact username and password match.
//
// Returns the matched user or ErrInvalidCredentials, which wraps
// store.ErrNoUserWasFound when the lookup found nothing.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if !(models.User{Username: username, Password: password}).HasCredentials() {
		log.Debug().Msg("empty username or password provided")
		return models.User{}, ErrInvalidCredentials
	}

	user, err := a.credentialStore.FindByCredentials(ctx, username, password)
	if err != nil {
		log.Debug().Err(err).Str("username", username).Msg("credentials lookup failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	return user, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration when one is
// set.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (bad signature, wrong issuer, expired, malformed) is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token validation failed")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// ResolveUser returns the store entry for the token's username. A token for a
// user missing from the store is treated as invalid.
func (a *authService) ResolveUser(ctx context.Context, token models.Token) (models.User, error) {
	user, err := a.credentialStore.FindByUsername(ctx, token.Username)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("username", token.Username).Msg("token user not found")
		return models.User{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return user, nil
}
