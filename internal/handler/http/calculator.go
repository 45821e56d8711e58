// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-calculator/internal/app"
	"github.com/MKhiriev/go-calculator/internal/logger"
	"github.com/MKhiriev/go-calculator/internal/service"
	"github.com/MKhiriev/go-calculator/internal/utils"
	"github.com/MKhiriev/go-calculator/models"
)

// calculate returns the handler of op. Operands come from the num1 and num2
// query parameters; the result is written as plain text, e.g. "2 + 3 = 5".
func (h *Handler) calculate(op models.Operation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		query := r.URL.Query()

		num1, err1 := parseOperand(query.Get("num1"))
		num2, err2 := parseOperand(query.Get("num2"))
		if err := errors.Join(err1, err2); err != nil {
			log.Err(err).Msg(app.InvalidInputMessage(op))
			http.Error(w, textFromError(err), statusFromError(err))
			return
		}

		calculation, err := h.services.CalculatorService.Calculate(r.Context(), op, num1, num2)
		if err != nil {
			http.Error(w, textFromError(err), statusFromError(err))
			return
		}

		if _, err = utils.WriteText(w, calculation.String(), http.StatusOK); err != nil {
			log.Err(err).Msg("error writing calculation result")
		}
	}
}

// decimalNumber matches plain decimal notation with an optional exponent.
// strconv.ParseFloat alone also accepts hex floats and digit separators.
var decimalNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// parseOperand parses a decimal operand. Empty values, trailing garbage,
// Go literal syntax and non-finite numbers are rejected with
// service.ErrInvalidInput.
func parseOperand(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: missing operand", service.ErrInvalidInput)
	}
	if !decimalNumber.MatchString(raw) {
		return 0, fmt.Errorf("%w: %q is not a decimal number", service.ErrInvalidInput, raw)
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", service.ErrInvalidInput, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %q is not a finite number", service.ErrInvalidInput, raw)
	}

	return f, nil
}
