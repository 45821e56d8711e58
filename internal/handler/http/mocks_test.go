// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-calculator/internal/config"
	"github.com/MKhiriev/go-calculator/internal/logger"
	"github.com/MKhiriev/go-calculator/internal/service"
	"github.com/MKhiriev/go-calculator/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	loginFn       func(ctx context.Context, username, password string) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
	resolveUserFn func(ctx context.Context, token models.Token) (models.User, error)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	return m.loginFn(ctx, username, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

func (m *mockAuthService) ResolveUser(ctx context.Context, token models.Token) (models.User, error) {
	return m.resolveUserFn(ctx, token)
}

// tokenAuthService accepts "token-<username>" for every username in users.
func tokenAuthService(users ...string) *mockAuthService {
	known := make(map[string]bool, len(users))
	for _, u := range users {
		known[u] = true
	}

	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			username, ok := strings.CutPrefix(tokenString, "token-")
			if !ok || username == "" {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{Username: username}, nil
		},
		resolveUserFn: func(_ context.Context, token models.Token) (models.User, error) {
			if !known[token.Username] {
				return models.User{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.User{Username: token.Username}, nil
		},
	}
}

// mockCalculatorService counts calls and delegates to the real calculator.
type mockCalculatorService struct {
	calls int
}

func (m *mockCalculatorService) Calculate(ctx context.Context, op models.Operation, num1, num2 float64) (models.Calculation, error) {
	m.calls++
	return service.NewCalculatorService().Calculate(ctx, op, num1, num2)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{}
}

// newTestHandler builds a Handler with a nop logger.
func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	if services.AppInfoService == nil {
		services.AppInfoService = &mockAppInfoService{version: "test"}
	}
	if services.CalculatorService == nil {
		services.CalculatorService = &mockCalculatorService{}
	}
	return NewHandler(services, testConfig(), logger.Nop())
}

// withCapturedLogger attaches a JSON logger writing to buf, the way
// withTraceID does.
func withCapturedLogger(r *http.Request, buf *bytes.Buffer) *http.Request {
	l := zerolog.New(buf)
	return r.WithContext(l.WithContext(r.Context()))
}

// logEntries decodes every JSON line in buf.
func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry))
		entries = append(entries, entry)
	}
	return entries
}
