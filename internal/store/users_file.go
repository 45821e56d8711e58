// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-calculator/models"
	"gopkg.in/yaml.v3"
)

type usersFile struct {
	Users []models.User `yaml:"users"`
}

// DefaultUsers returns the built-in credential list used when no users file
// is configured.
func DefaultUsers() []models.User {
	return []models.User{
		{Username: "user1", Password: "pass1"},
		{Username: "user2", Password: "pass2"},
	}
}

// LoadUsersFile reads a YAML credential list of the form
//
//	users:
//	  - username: user1
//	    password: pass1
//
// Entries with an empty username or password are skipped.
func LoadUsersFile(path string) ([]models.User, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingUsersFile, err)
	}

	var uf usersFile
	if err = yaml.Unmarshal(data, &uf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodingUsersFile, err)
	}

	users := make([]models.User, 0, len(uf.Users))
	seen := make(map[string]struct{}, len(uf.Users))
	for _, u := range uf.Users {
		if u.Username == "" || u.Password == "" {
			continue
		}
		if _, ok := seen[u.Username]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateUsername, u.Username)
		}
		seen[u.Username] = struct{}{}
		users = append(users, u)
	}

	if len(users) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoUsersConfigured, path)
	}

	return users, nil
}
