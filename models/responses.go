// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoginResponse is the JSON body returned by a successful POST /login.
type LoginResponse struct {
	// Token is the signed bearer token to be sent back in the
	// "Authorization: Bearer <token>" header.
	Token string `json:"token"`
}
