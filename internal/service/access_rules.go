// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"slices"

	"github.com/MKhiriev/go-calculator/models"
)

// AccessRule decides whether an authenticated user may use a route. It
// returns nil to allow and an error wrapping ErrForbidden to deny.
type AccessRule func(user models.User) error

// OnlyUsers allows exactly the listed usernames.
func OnlyUsers(usernames ...string) AccessRule {
	allowed := slices.Clone(usernames)

	return func(user models.User) error {
		if slices.Contains(allowed, user.Username) {
			return nil
		}
		return fmt.Errorf("%w: user %q is not allowed", ErrForbidden, user.Username)
	}
}
