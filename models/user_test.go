// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_HasCredentials(t *testing.T) {
	tests := []struct {
		name string
		user User
		want bool
	}{
		{"both set", User{Username: "user1", Password: "pass1"}, true},
		{"missing password", User{Username: "user1"}, false},
		{"missing username", User{Password: "pass1"}, false},
		{"empty", User{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.HasCredentials())
		})
	}
}
