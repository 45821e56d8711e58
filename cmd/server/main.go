// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/go-calculator/internal/config"
	"github.com/MKhiriev/go-calculator/internal/handler"
	"github.com/MKhiriev/go-calculator/internal/logger"
	"github.com/MKhiriev/go-calculator/internal/server"
	"github.com/MKhiriev/go-calculator/internal/service"
	"github.com/MKhiriev/go-calculator/internal/store"
	"github.com/MKhiriev/go-calculator/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	bootLog := logger.NewLogger("calculator-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error getting configs")
	}

	log, closer, err := logger.NewServiceLogger(cfg.Log)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("error creating logger")
	}
	defer closer.Close()

	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("log_dir", cfg.Log.Dir).Msg("received configs")

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}
