// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-calculator/internal/service"
	"github.com/MKhiriev/go-calculator/internal/utils"
)

// authenticate is the gate stage that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and resolves the token's user through
// the credential store. On success the user is stored in the request context
// under [utils.UserCtxKey].
//
// It fails when:
//   - the header is absent ([ErrEmptyAuthorizationHeader]);
//   - the header carries the scheme but no token ([ErrEmptyToken]);
//   - the header is not of the "Bearer <token>" form
//     ([ErrInvalidAuthorizationHeader]);
//   - the token is invalid or expired, or its user is not in the store
//     ([service.ErrTokenIsExpiredOrInvalid]).
func (h *Handler) authenticate(r *http.Request) (context.Context, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, ErrEmptyAuthorizationHeader
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		if strings.EqualFold(strings.TrimSpace(authHeader), "Bearer") {
			return nil, ErrEmptyToken
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
	}

	ctx := r.Context()
	token, err := h.services.AuthService.ParseToken(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	user, err := h.services.AuthService.ResolveUser(ctx, token)
	if err != nil {
		return nil, err
	}

	return context.WithValue(ctx, utils.UserCtxKey, user), nil
}

// authorize returns a gate stage that applies rule to the user placed in the
// context by [Handler.authenticate].
func (h *Handler) authorize(rule service.AccessRule) stage {
	return func(r *http.Request) (context.Context, error) {
		ctx := r.Context()

		user, ok := utils.GetUserFromContext(ctx)
		if !ok {
			return nil, ErrNoAuthenticatedUser
		}

		if err := rule(user); err != nil {
			return nil, err
		}

		return ctx, nil
	}
}
