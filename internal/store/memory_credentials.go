// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-calculator/internal/logger"
	"github.com/MKhiriev/go-calculator/models"
)

// credentialStore is the in-memory implementation of [CredentialStore].
// The user slice is never modified after construction, so no locking is
// needed.
type credentialStore struct {
	users  []models.User
	logger *logger.Logger
}

// NewCredentialStore constructs a [CredentialStore] over a private copy of
// users.
func NewCredentialStore(users []models.User, logger *logger.Logger) CredentialStore {
	logger.Debug().Int("users", len(users)).Msg("creating credential store")
	return &credentialStore{
		users:  slices.Clone(users),
		logger: logger,
	}
}

// FindByCredentials scans the list for an exact, case-sensitive match of
// both username and password.
func (s *credentialStore) FindByCredentials(ctx context.Context, username, password string) (models.User, error) {
	idx := slices.IndexFunc(s.users, func(u models.User) bool {
		return u.Username == username && u.Password == password
	})
	if idx < 0 {
		logger.FromContext(ctx).Debug().Str("username", username).Msg("credentials did not match any user")
		return models.User{}, ErrNoUserWasFound
	}

	return s.users[idx], nil
}

func (s *credentialStore) FindByUsername(ctx context.Context, username string) (models.User, error) {
	idx := slices.IndexFunc(s.users, func(u models.User) bool {
		return u.Username == username
	})
	if idx < 0 {
		logger.FromContext(ctx).Debug().Str("username", username).Msg("no user with such username")
		return models.User{}, ErrNoUserWasFound
	}

	return s.users[idx], nil
}
