// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-calculator/internal/adapter"
	"github.com/MKhiriev/go-calculator/internal/client"
	"github.com/MKhiriev/go-calculator/internal/config"
	"github.com/MKhiriev/go-calculator/internal/logger"
)

func main() {
	var cmd client.Command
	// registered before config.GetClientConfig parses the command line
	flag.StringVar(&cmd.Op, "op", client.CommandHealth, "add, subtract, multiply, divide, health or version")
	flag.StringVar(&cmd.Num1, "num1", "", "First operand")
	flag.StringVar(&cmd.Num2, "num2", "", "Second operand")
	flag.StringVar(&cmd.Username, "user", "", "Username to log in with")
	flag.StringVar(&cmd.Password, "password", "", "Password to log in with")

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewClientLogger("calculator-client", config.Log{}).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("calculator-client", cfg.Log)

	calculatorAdapter, err := adapter.NewHTTPCalculatorAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = client.NewApp(calculatorAdapter, os.Stdout, log).Run(ctx, cmd); err != nil {
		log.Error().Err(err).Str("op", cmd.Op).Msg("client run error")
		stop()
		os.Exit(1)
	}
}
