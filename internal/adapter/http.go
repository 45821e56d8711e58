// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-calculator/internal/config"
	"github.com/MKhiriev/go-calculator/internal/logger"
	"github.com/MKhiriev/go-calculator/internal/utils"
	"github.com/MKhiriev/go-calculator/models"
	"github.com/go-resty/resty/v2"
)

// hashHeader is the response header the server signs bodies into.
const hashHeader = "HashSHA256"

type httpCalculatorAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPCalculatorAdapter constructs the HTTP implementation of
// [CalculatorAdapter]. The base URL is normalised from
// adapterCfg.HTTPAddress ("localhost:3000" becomes "http://localhost:3000").
//
// When appCfg.HashKey is set every response must carry a valid HashSHA256
// header; otherwise the request fails with [ErrInvalidResponseHash].
func NewHTTPCalculatorAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (CalculatorAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	if appCfg.HashKey != "" {
		hasher := utils.NewHasher(appCfg.HashKey)
		client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			return verifyResponseHash(hasher, resp)
		})
	}

	return &httpCalculatorAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func verifyResponseHash(hasher *utils.Hasher, resp *resty.Response) error {
	digest := resp.Header().Get(hashHeader)
	if digest == "" {
		return fmt.Errorf("%w: missing %s header", ErrInvalidResponseHash, hashHeader)
	}
	if !hasher.Verify(resp.Body(), digest) {
		return ErrInvalidResponseHash
	}
	return nil
}

// SetToken implements [CalculatorAdapter].
func (h *httpCalculatorAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [CalculatorAdapter].
func (h *httpCalculatorAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [CalculatorAdapter]. It POSTs the credentials as JSON to
// /login and reads the token from the {"token": ...} body.
func (h *httpCalculatorAdapter) Login(ctx context.Context, username, password string) (string, error) {
	var loginResponse models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Username: username, Password: password}).
		SetResult(&loginResponse).
		Post("/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token := loginResponse.Token
	if token == "" {
		// fall back to the header copy of the token
		if token, err = utils.ParseBearerToken(resp.Header().Get("Authorization")); err != nil {
			return "", fmt.Errorf("login parse bearer token: %w", err)
		}
	}

	h.SetToken(token)
	h.logger.Debug().Str("username", username).Msg("logged in")
	return token, nil
}

// Calculate implements [CalculatorAdapter]. It requires a prior Login or
// SetToken and returns [ErrNotLoggedIn] otherwise.
func (h *httpCalculatorAdapter) Calculate(ctx context.Context, op models.Operation, num1, num2 string) (string, error) {
	token := h.Token()
	if token == "" {
		return "", ErrNotLoggedIn
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetQueryParams(map[string]string{
			"num1": num1,
			"num2": num2,
		}).
		Get("/" + string(op))
	if err != nil {
		return "", fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

// Health implements [CalculatorAdapter].
func (h *httpCalculatorAdapter) Health(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}
	return mapHTTPError(resp)
}

// Version implements [CalculatorAdapter].
func (h *httpCalculatorAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return resp.String(), nil
}
