// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-calculator/internal/adapter"
	"github.com/MKhiriev/go-calculator/internal/logger"
	"github.com/MKhiriev/go-calculator/models"
)

const (
	// CommandHealth checks the service health instead of calculating.
	CommandHealth = "health"
	// CommandVersion prints the service version.
	CommandVersion = "version"
)

var ErrUnknownCommand = errors.New("unknown command")

// Command is one client invocation. Op is an operation name ("add", ...),
// [CommandHealth] or [CommandVersion].
type Command struct {
	Op       string
	Num1     string
	Num2     string
	Username string
	Password string
}

type App struct {
	adapter adapter.CalculatorAdapter
	out     io.Writer
	logger  *logger.Logger
}

func NewApp(calculatorAdapter adapter.CalculatorAdapter, out io.Writer, logger *logger.Logger) *App {
	return &App{
		adapter: calculatorAdapter,
		out:     out,
		logger:  logger,
	}
}

// Run executes cmd and writes its result to the app's output, one line.
func (a *App) Run(ctx context.Context, cmd Command) error {
	switch cmd.Op {
	case CommandHealth:
		if err := a.adapter.Health(ctx); err != nil {
			return fmt.Errorf("health check: %w", err)
		}
		return a.print("OK")

	case CommandVersion:
		version, err := a.adapter.Version(ctx)
		if err != nil {
			return fmt.Errorf("get version: %w", err)
		}
		return a.print(version)
	}

	op := models.Operation(cmd.Op)
	if !op.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Op)
	}

	if a.adapter.Token() == "" {
		if _, err := a.adapter.Login(ctx, cmd.Username, cmd.Password); err != nil {
			return fmt.Errorf("login as %q: %w", cmd.Username, err)
		}
		a.logger.Debug().Str("username", cmd.Username).Msg("logged in")
	}

	result, err := a.adapter.Calculate(ctx, op, cmd.Num1, cmd.Num2)
	if err != nil {
		return fmt.Errorf("%s: %w", op.Noun(), err)
	}

	return a.print(result)
}

func (a *App) print(line string) error {
	_, err := fmt.Fprintln(a.out, line)
	return err
}
