// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-calculator/internal/config"
	"github.com/MKhiriev/go-calculator/internal/logger"
	"github.com/MKhiriev/go-calculator/internal/store"
	"github.com/MKhiriev/go-calculator/models"
)

type Services struct {
	AuthService       AuthService
	CalculatorService CalculatorService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(storages.CredentialStore, cfg.App, logger),
		CalculatorService: NewCalculatorLoggingService().Wrap(NewCalculatorService()),
		AppInfoService:    NewAppInfoService(cfg.App, buildInfo, logger),
	}
}
