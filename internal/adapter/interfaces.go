// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the calculator HTTP API.
//
// [CalculatorAdapter] decouples callers from the protocol; the package ships
// an HTTP implementation built on resty ([NewHTTPCalculatorAdapter]).
//
// Error statuses are mapped by mapHTTPError to the sentinel values in
// errors.go so callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401,
// [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-calculator/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CalculatorAdapter talks to a running calculator service.
type CalculatorAdapter interface {
	// SetToken stores the bearer token attached to subsequent calculator
	// requests. Login calls it on success.
	SetToken(token string)

	// Token returns the stored bearer token, or "" before a login.
	Token() string

	// Login exchanges credentials for a bearer token, stores it via SetToken
	// and returns it.
	Login(ctx context.Context, username, password string) (string, error)

	// Calculate runs op on the raw operands and returns the server's textual
	// result, e.g. "2 + 3 = 5". Operands are sent unparsed; the server
	// validates them.
	Calculate(ctx context.Context, op models.Operation, num1, num2 string) (string, error)

	// Health returns nil when GET /health answers 200.
	Health(ctx context.Context) error

	// Version returns the server version reported by GET /version.
	Version(ctx context.Context) (string, error)
}
