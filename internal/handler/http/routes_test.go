// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-calculator/internal/config"
	"github.com/MKhiriev/go-calculator/internal/logger"
	"github.com/MKhiriev/go-calculator/internal/service"
	"github.com/MKhiriev/go-calculator/internal/store"
	"github.com/MKhiriev/go-calculator/internal/utils"
	"github.com/MKhiriev/go-calculator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, cfg *config.StructuredConfig) *httptest.Server {
	t.Helper()

	if cfg.App.TokenSignKey == "" {
		cfg.App.TokenSignKey = "test-sign-key"
	}
	cfg.App.TokenIssuer = "calculator-microservice"

	storages, err := store.NewStorages(cfg.Storage, logger.Nop())
	require.NoError(t, err)

	services := service.NewServices(storages, cfg, models.NewAppBuildInfo("1.2.3", "", ""), logger.Nop())
	srv := httptest.NewServer(NewHandler(services, cfg, logger.Nop()).Init())
	t.Cleanup(srv.Close)
	return srv
}

func doRequest(t *testing.T, method, url, token, body string) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var sb strings.Builder
	_, err = io.Copy(&sb, resp.Body)
	require.NoError(t, err)
	return resp, sb.String()
}

func loginAs(t *testing.T, srv *httptest.Server, username, password string) string {
	t.Helper()

	resp, body := doRequest(t, http.MethodPost, srv.URL+"/login", "",
		`{"username":"`+username+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode, body)

	var login models.LoginResponse
	require.NoError(t, json.Unmarshal([]byte(body), &login))
	require.NotEmpty(t, login.Token)
	return login.Token
}

func TestRoutes_Scenario(t *testing.T) {
	srv := newTestServer(t, &config.StructuredConfig{})

	token1 := loginAs(t, srv, "user1", "pass1")
	token2 := loginAs(t, srv, "user2", "pass2")

	tests := []struct {
		name       string
		path       string
		token      string
		wantStatus int
		wantBody   string
	}{
		{"user1 adds", "/add?num1=2&num2=3", token1, http.StatusOK, "2 + 3 = 5"},
		{"user2 may not add", "/add?num1=2&num2=3", token2, http.StatusUnauthorized, "Unauthorized\n"},
		{"user2 subtracts", "/subtract?num1=10&num2=4", token2, http.StatusOK, "10 - 4 = 6"},
		{"user2 multiplies", "/multiply?num1=2.5&num2=4", token2, http.StatusOK, "2.5 * 4 = 10"},
		{"user1 divides", "/divide?num1=9&num2=3", token1, http.StatusOK, "9 / 3 = 3"},
		{"division by zero", "/divide?num1=5&num2=0", token1, http.StatusBadRequest, "Division by zero error\n"},
		{"invalid operand", "/multiply?num1=abc&num2=2", token1, http.StatusBadRequest, "Invalid input\n"},
		{"no token", "/subtract?num1=1&num2=1", "", http.StatusUnauthorized, "Unauthorized\n"},
		{"forged token", "/subtract?num1=1&num2=1", token1 + "x", http.StatusUnauthorized, "Unauthorized\n"},
		{"auth precedes validation", "/divide?num1=abc&num2=0", "", http.StatusUnauthorized, "Unauthorized\n"},
		{"health", "/health", "", http.StatusOK, "OK"},
		{"version", "/version", "", http.StatusOK, "1.2.3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doRequest(t, http.MethodGet, srv.URL+tt.path, tt.token, "")

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantBody, body)
			assert.NotEmpty(t, resp.Header.Get(traceIDHeader))
		})
	}
}

func TestRoutes_LoginRejected(t *testing.T) {
	srv := newTestServer(t, &config.StructuredConfig{})

	resp, body := doRequest(t, http.MethodPost, srv.URL+"/login", "", `{"username":"user1","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Unauthorized\n", body)
}

func TestRoutes_TokenFromOtherKeyIsRejected(t *testing.T) {
	srv := newTestServer(t, &config.StructuredConfig{})
	other := newTestServer(t, &config.StructuredConfig{App: config.App{TokenSignKey: "another-key"}})

	token := loginAs(t, other, "user1", "pass1")
	resp, _ := doRequest(t, http.MethodGet, srv.URL+"/subtract?num1=1&num2=1", token, "")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRoutes_WrongMethodIsNotFound(t *testing.T) {
	srv := newTestServer(t, &config.StructuredConfig{})

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/add"},
		{http.MethodPut, "/health"},
		{http.MethodGet, "/login"},
		{http.MethodDelete, "/"},
		{http.MethodGet, "/missing.js"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp, _ := doRequest(t, tt.method, srv.URL+tt.path, "", "")

			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}

func TestRoutes_ServesEmbeddedFrontend(t *testing.T) {
	srv := newTestServer(t, &config.StructuredConfig{})

	resp, body := doRequest(t, http.MethodGet, srv.URL+"/", "", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	assert.Contains(t, body, "/login")
}

func TestRoutes_ServesStaticDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>custom</h1>"), 0o644))

	srv := newTestServer(t, &config.StructuredConfig{Server: config.Server{StaticDir: dir}})

	resp, body := doRequest(t, http.MethodGet, srv.URL+"/", "", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "<h1>custom</h1>", body)
}

func TestRoutes_SignsResponsesWithHashKey(t *testing.T) {
	srv := newTestServer(t, &config.StructuredConfig{App: config.App{HashKey: "hash-key"}})

	resp, body := doRequest(t, http.MethodGet, srv.URL+"/health", "", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, utils.NewHasher("hash-key").Verify([]byte(body), resp.Header.Get(HashHeader)))
}

func TestRoutes_UsersFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.yaml")
	require.NoError(t, os.WriteFile(path, []byte("users:\n  - username: user1\n    password: s3cret\n"), 0o600))

	srv := newTestServer(t, &config.StructuredConfig{Storage: config.Storage{UsersFile: path}})

	resp, _ := doRequest(t, http.MethodPost, srv.URL+"/login", "", `{"username":"user1","password":"pass1"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token := loginAs(t, srv, "user1", "s3cret")
	resp, body := doRequest(t, http.MethodGet, srv.URL+"/add?num1=1&num2=1", token, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1 + 1 = 2", body)
}
