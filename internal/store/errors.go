// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the store. Callers should use [errors.Is] to
// match against these values.
var (
	// ErrNoUserWasFound is returned when a lookup matches no user in the
	// credential list.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrReadingUsersFile is returned when the users file cannot be read.
	ErrReadingUsersFile = errors.New("error reading users file")

	// ErrDecodingUsersFile is returned when the users file is not valid YAML.
	ErrDecodingUsersFile = errors.New("error decoding users file")

	// ErrNoUsersConfigured is returned when the users file holds no usable
	// entry.
	ErrNoUsersConfigured = errors.New("no users configured")

	// ErrDuplicateUsername is returned when the users file lists the same
	// username twice.
	ErrDuplicateUsername = errors.New("duplicate username")
)
