// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the gate stages when reading the "Authorization"
// HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the incoming request does
	// not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the "Bearer <token>" form.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// scheme but the token value itself is missing.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrNoAuthenticatedUser is returned by an authorization stage that runs
	// without a preceding authentication stage.
	ErrNoAuthenticatedUser = errors.New("no authenticated user in request context")
)

// ErrInvalidRequestBody is returned when a request body cannot be decoded.
var ErrInvalidRequestBody = errors.New("invalid request body")
