// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io/fs"
	"os"
	"time"

	"github.com/MKhiriev/go-calculator/internal/config"
	"github.com/MKhiriev/go-calculator/internal/logger"
	"github.com/MKhiriev/go-calculator/internal/service"
	"github.com/MKhiriev/go-calculator/internal/utils"
	"github.com/MKhiriev/go-calculator/models"
	"github.com/MKhiriev/go-calculator/web"
)

type Handler struct {
	services *service.Services

	// accessRules holds the extra authorization rule of each operation that
	// has one. Operations without an entry only require authentication.
	accessRules map[models.Operation]service.AccessRule

	requestTimeout time.Duration
	static         fs.FS
	// hasher signs response bodies; nil disables signing.
	hasher *utils.Hasher

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		accessRules: map[models.Operation]service.AccessRule{
			models.OperationAdd: service.OnlyUsers("user1"),
		},
		requestTimeout: cfg.Server.RequestTimeout,
		static:         web.Static(),
		logger:         logger,
	}

	if cfg.Server.StaticDir != "" {
		h.static = os.DirFS(cfg.Server.StaticDir)
	}
	if cfg.App.HashKey != "" {
		h.hasher = utils.NewHasher(cfg.App.HashKey)
	}

	logger.Info().Msg("http handler created")
	return h
}
