// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-calculator/internal/app"
	"github.com/MKhiriev/go-calculator/internal/logger"
	"github.com/MKhiriev/go-calculator/internal/utils"
	"github.com/MKhiriev/go-calculator/models"
)

const maxLoginBodySize = 1 << 20

// login exchanges a username and password for a bearer token. The token is
// returned both as {"token": "..."} and in the Authorization header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	credentials, err := decodeCredentials(w, r)
	if err != nil {
		log.Err(err).Msg(app.MsgInvalidLoginRequest)
		http.Error(w, textFromError(err), statusFromError(err))
		return
	}

	user, err := h.services.AuthService.Login(ctx, credentials.Username, credentials.Password)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Msg(app.MsgUnauthorizedRequest)
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Debug().Str("username", user.Username).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	if _, err = utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing login response")
	}
}

// decodeCredentials reads username and password from a JSON or form body.
// An empty JSON body yields empty credentials, which the auth service
// rejects as a mismatch.
func decodeCredentials(w http.ResponseWriter, r *http.Request) (models.User, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxLoginBodySize)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
		}
		return models.User{
			Username: r.PostForm.Get("username"),
			Password: r.PostForm.Get("password"),
		}, nil
	}

	var credentials models.User
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil && !errors.Is(err, io.EOF) {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}

	return credentials, nil
}
