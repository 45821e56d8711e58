// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-calculator/internal/config"
	"github.com/MKhiriev/go-calculator/internal/logger"
	"github.com/MKhiriev/go-calculator/internal/utils"
	"github.com/MKhiriev/go-calculator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpCalculatorAdapter pointed at serverURL.
func newTestAdapter(t *testing.T, serverURL, hashKey string) *httpCalculatorAdapter {
	t.Helper()

	a, err := NewHTTPCalculatorAdapter(
		config.ClientAdapter{HTTPAddress: serverURL},
		config.ClientApp{HashKey: hashKey},
		logger.Nop(),
	)
	require.NoError(t, err)
	return a.(*httpCalculatorAdapter)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)

		var user models.User
		require.NoError(t, json.NewDecoder(r.Body).Decode(&user))
		assert.Equal(t, models.User{Username: "user1", Password: "pass1"}, user)

		w.Header().Set("Authorization", "Bearer header-token")
		utils.WriteJSON(w, models.LoginResponse{Token: "body-token"}, http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	token, err := a.Login(context.Background(), "user1", "pass1")

	require.NoError(t, err)
	assert.Equal(t, "body-token", token)
	assert.Equal(t, "body-token", a.Token())
}

func TestLogin_TokenFromHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Authorization", "Bearer header-token")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	token, err := a.Login(context.Background(), "user1", "pass1")

	require.NoError(t, err)
	assert.Equal(t, "header-token", token)
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.Login(context.Background(), "user1", "wrong")

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

// ── Calculate ───────────────────────────────────────────────────────────────

func TestCalculate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/add", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "2", r.URL.Query().Get("num1"))
		assert.Equal(t, "3", r.URL.Query().Get("num2"))

		utils.WriteText(w, "2 + 3 = 5", http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	a.SetToken(" tok ")

	got, err := a.Calculate(context.Background(), models.OperationAdd, "2", "3")

	require.NoError(t, err)
	assert.Equal(t, "2 + 3 = 5", got)
}

func TestCalculate_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"division by zero", http.StatusBadRequest, "Division by zero error", ErrBadRequest},
		{"forbidden user", http.StatusUnauthorized, "Unauthorized", ErrUnauthorized},
		{"unknown route", http.StatusNotFound, "", ErrNotFound},
		{"server failure", http.StatusInternalServerError, "boom", ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, tt.body, tt.status)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, "")
			a.SetToken("tok")

			_, err := a.Calculate(context.Background(), models.OperationDivide, "1", "0")

			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.body)
		})
	}
}

func TestCalculate_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	a.SetToken("tok")

	_, err := a.Calculate(context.Background(), models.OperationSubtract, "1", "1")

	require.Error(t, err)
	assert.Equal(t, "http 503: Service Unavailable", err.Error())
}

func TestCalculate_RequiresToken(t *testing.T) {
	a := newTestAdapter(t, "http://127.0.0.1:1", "")

	_, err := a.Calculate(context.Background(), models.OperationAdd, "1", "2")

	require.ErrorIs(t, err, ErrNotLoggedIn)
}

// ── Response hash ───────────────────────────────────────────────────────────

func TestResponseHash(t *testing.T) {
	tests := []struct {
		name    string
		sign    func(body string) string
		wantErr bool
	}{
		{"valid signature", func(body string) string { return utils.HashString(body, "key") }, false},
		{"wrong key", func(body string) string { return utils.HashString(body, "other") }, true},
		{"missing header", func(string) string { return "" }, true},
		{"not hex", func(string) string { return "zz" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if digest := tt.sign("OK"); digest != "" {
					w.Header().Set(hashHeader, digest)
				}
				utils.WriteText(w, "OK", http.StatusOK)
			}))
			defer srv.Close()

			err := newTestAdapter(t, srv.URL, "key").Health(context.Background())

			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidResponseHash)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestResponseHash_IgnoredWithoutKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(hashHeader, "garbage")
		utils.WriteText(w, "OK", http.StatusOK)
	}))
	defer srv.Close()

	require.NoError(t, newTestAdapter(t, srv.URL, "").Health(context.Background()))
}

// ── Health / Version ────────────────────────────────────────────────────────

func TestHealth_Failure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL, "").Health(context.Background())

	require.ErrorIs(t, err, ErrInternalServerError)
}

func TestVersion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/version", r.URL.Path)
		utils.WriteText(w, "1.2.3", http.StatusOK)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL, "").Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got)
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{"localhost:3000", "http://localhost:3000", false},
		{"http://localhost:3000/", "http://localhost:3000", false},
		{"  https://calc.example.com  ", "https://calc.example.com", false},
		{"", "", true},
		{"   ", "", true},
		{"http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPCalculatorAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPCalculatorAdapter(config.ClientAdapter{}, config.ClientApp{}, logger.Nop())

	require.Error(t, err)
}
