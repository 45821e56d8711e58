// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")

	// ErrInvalidResponseHash is returned when a response's HashSHA256 header
	// is missing or does not match its body.
	ErrInvalidResponseHash = errors.New("invalid response hash")

	ErrNotLoggedIn = errors.New("no token: login first")
)
