// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User is an entry of the credential list the service authenticates against.
//
// The list is fixed for the lifetime of the process: users are never created
// or deleted through the API. Password is stored and compared as plain text.
type User struct {
	// Username is the unique login of the user. It is the only value embedded
	// into issued tokens.
	Username string `json:"username" yaml:"username"`

	// Password is the plain-text password. It is never written to responses.
	Password string `json:"password,omitempty" yaml:"password"`
}

// HasCredentials reports whether both username and password are set.
func (u User) HasCredentials() bool {
	return u.Username != "" && u.Password != ""
}
