// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"

	"github.com/MKhiriev/go-calculator/internal/logger"
)

// HashHeader carries the hex HMAC-SHA256 of the response body.
const HashHeader = "HashSHA256"

// withResponseHashing buffers the response, signs the body with the
// configured hash key and sends it with the signature in [HashHeader].
func (h *Handler) withResponseHashing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		bw := &bufferedResponseWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(bw, r)

		body := bw.body.Bytes()
		w.Header().Set(HashHeader, h.hasher.SumHex(body))
		w.WriteHeader(bw.status)
		if _, err := w.Write(body); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.withResponseHashing").Msg("failed to write signed response")
		}
	})
}

// bufferedResponseWriter holds the status and body until the handler
// returns. Headers go straight to the underlying writer's header map.
type bufferedResponseWriter struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (w *bufferedResponseWriter) WriteHeader(statusCode int) {
	w.status = statusCode
}

func (w *bufferedResponseWriter) Write(b []byte) (int, error) {
	return w.body.Write(b)
}
