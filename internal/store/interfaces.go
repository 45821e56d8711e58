// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-calculator/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CredentialStore answers credential lookups against a fixed user list.
// Implementations are read-only after construction and safe for concurrent
// use. A failed lookup returns [ErrNoUserWasFound].
type CredentialStore interface {
	// FindByCredentials returns the user whose username and password both
	// match exactly.
	FindByCredentials(ctx context.Context, username, password string) (models.User, error)
	// FindByUsername returns the user with the given username.
	FindByUsername(ctx context.Context, username string) (models.User, error)
}
