// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-calculator/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.hasher != nil {
		router.Use(h.withResponseHashing)
	}
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/version", h.getServerVersion)
		r.Post("/login", h.login)
	})

	// calculator routes
	router.Group(func(r chi.Router) {
		for _, op := range models.Operations {
			stages := []stage{h.authenticate}
			if rule, ok := h.accessRules[op]; ok {
				stages = append(stages, h.authorize(rule))
			}
			r.With(h.gate(stages...)).Get("/"+string(op), h.calculate(op))
		}
	})

	// frontend
	router.Get("/*", http.FileServerFS(h.static).ServeHTTP)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
