// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-calculator/internal/config"
	"github.com/MKhiriev/go-calculator/internal/logger"
)

// Storages groups every store used by the service layer.
type Storages struct {
	CredentialStore CredentialStore
}

// NewStorages builds the stores described by cfg. The credential list is read
// from cfg.UsersFile when set, otherwise [DefaultUsers] is used.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	users := DefaultUsers()

	if cfg.UsersFile != "" {
		fileUsers, err := LoadUsersFile(cfg.UsersFile)
		if err != nil {
			logger.Err(err).Str("func", "store.NewStorages").Msg("error loading users file")
			return nil, err
		}
		users = fileUsers
		logger.Info().Str("path", cfg.UsersFile).Int("users", len(users)).Msg("credential list loaded from file")
	}

	return &Storages{
		CredentialStore: NewCredentialStore(users, logger),
	}, nil
}
