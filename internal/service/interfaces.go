// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-calculator/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService verifies credentials and issues and checks bearer tokens.
type AuthService interface {
	// Login returns the user matching username and password or
	// ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	// ParseToken verifies a compact token; every failure is reported as
	// ErrTokenIsExpiredOrInvalid.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// ResolveUser looks up the user a verified token was issued for.
	ResolveUser(ctx context.Context, token models.Token) (models.User, error)
}

// CalculatorService performs the four arithmetic operations.
type CalculatorService interface {
	Calculate(ctx context.Context, op models.Operation, num1, num2 float64) (models.Calculation, error)
}

// AppInfoService reports application metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
