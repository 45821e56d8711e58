// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-calculator/internal/app"
	"github.com/MKhiriev/go-calculator/internal/service"
	"github.com/MKhiriev/go-calculator/internal/store"
)

// errorStatusMap maps domain errors to response status codes. A rejected
// authorization rule answers 401 like a failed authentication.
var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrForbidden:               http.StatusUnauthorized,
	service.ErrInvalidInput:            http.StatusBadRequest,
	service.ErrDivisionByZero:          http.StatusBadRequest,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrNoUserWasFound: http.StatusUnauthorized,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
	ErrNoAuthenticatedUser:        http.StatusUnauthorized,
	ErrInvalidRequestBody:         http.StatusBadRequest,
}

// errorTextMap holds response bodies that differ from the status text.
var errorTextMap = map[error]string{
	service.ErrInvalidInput:   app.MsgInvalidInput,
	service.ErrDivisionByZero: app.MsgDivisionByZero,
	ErrInvalidRequestBody:     app.MsgInvalidRequestBody,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// textFromError returns the response body for err.
func textFromError(err error) string {
	for target, text := range errorTextMap {
		if errors.Is(err, target) {
			return text
		}
	}
	return http.StatusText(statusFromError(err))
}
