// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"math"

	"github.com/MKhiriev/go-calculator/models"
)

type calculatorService struct{}

// NewCalculatorService returns the stateless arithmetic service. Results
// follow IEEE-754 double precision; overflow yields ±Inf and is not an error.
func NewCalculatorService() CalculatorService {
	return &calculatorService{}
}

// Calculate applies op to num1 and num2.
//
// Errors:
//   - ErrInvalidInput for an unknown operation or a NaN/Inf operand;
//   - ErrDivisionByZero when dividing by zero of either sign.
func (s *calculatorService) Calculate(ctx context.Context, op models.Operation, num1, num2 float64) (models.Calculation, error) {
	if !op.IsValid() {
		return models.Calculation{}, fmt.Errorf("%w: unknown operation %q", ErrInvalidInput, op)
	}
	if !isFinite(num1) || !isFinite(num2) {
		return models.Calculation{}, fmt.Errorf("%w: operands must be finite numbers", ErrInvalidInput)
	}

	var result float64
	switch op {
	case models.OperationAdd:
		result = num1 + num2
	case models.OperationSubtract:
		result = num1 - num2
	case models.OperationMultiply:
		result = num1 * num2
	case models.OperationDivide:
		if num2 == 0 {
			return models.Calculation{}, ErrDivisionByZero
		}
		result = num1 / num2
	}

	return models.Calculation{
		Operation: op,
		Num1:      num1,
		Num2:      num2,
		Result:    result,
	}, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
