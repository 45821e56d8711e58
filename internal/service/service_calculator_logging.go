// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-calculator/internal/app"
	"github.com/MKhiriev/go-calculator/internal/logger"
	"github.com/MKhiriev/go-calculator/models"
)

// CalculatorLoggingService writes one log line per calculation: info on
// success, error on rejection.
type CalculatorLoggingService struct {
	inner CalculatorService
}

func NewCalculatorLoggingService() CalculatorServiceWrapper {
	return &CalculatorLoggingService{}
}

func (l *CalculatorLoggingService) Wrap(wrapped CalculatorService) CalculatorService {
	l.inner = wrapped
	return l
}

func (l *CalculatorLoggingService) Calculate(ctx context.Context, op models.Operation, num1, num2 float64) (models.Calculation, error) {
	log := logger.FromContext(ctx)

	calculation, err := l.inner.Calculate(ctx, op, num1, num2)
	switch {
	case errors.Is(err, ErrDivisionByZero):
		log.Error().Msg(app.MsgDivisionByZero)
	case err != nil:
		log.Error().Msg(app.InvalidInputMessage(op))
	default:
		log.Info().Msg(app.CalculationMessage(calculation))
	}

	return calculation, err
}

// CalculatorServiceWrapper defines middleware composition for
// CalculatorService. Implementations wrap an existing CalculatorService to add
// behavior such as logging.
type CalculatorServiceWrapper interface {
	Wrap(CalculatorService) CalculatorService // returns a decorated CalculatorService
}
