// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-calculator/internal/app"
	"github.com/MKhiriev/go-calculator/internal/logger"
)

// stage is one check of the access gate. It returns the context the next
// stage runs with, or an error that rejects the request.
type stage func(r *http.Request) (context.Context, error)

// gate runs stages in order before next. The first failing stage ends the
// request: the rejection is logged at error level and answered with the
// status mapped from its error, so next is never reached.
func (h *Handler) gate(stages ...stage) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, check := range stages {
				ctx, err := check(r)
				if err != nil {
					status := statusFromError(err)
					logger.FromRequest(r).Err(err).Msg(app.MsgUnauthorizedRequest)
					http.Error(w, http.StatusText(status), status)
					return
				}
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}
}
