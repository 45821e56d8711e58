// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-calculator application. It aggregates all sub-configurations and is
// populated by merging built-in defaults, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token signing parameters, the response hash key and the
	// application version.
	App App `envPrefix:"APP_"`

	// Storage holds the credential store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout and static content settings for
	// the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Log holds logger settings: level, service label and log directory.
	Log Log `envPrefix:"LOG_"`

	// Adapter holds the settings used by the calculator client to reach the
	// server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// issuance and response integrity.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Required by the server. Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token and
	// checked on every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m"). Zero means tokens never expire.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey is the HMAC key used to sign response bodies into the
	// HashSHA256 header. Signing is disabled when empty.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the semantic version string served by GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m"). Zero disables
	// the timeout.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// StaticDir is a directory served at "/". When empty the embedded
	// frontend is served.
	// Env: SERVER_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`
}

// Storage groups the configuration of the credential store.
type Storage struct {
	// UsersFile is an optional YAML file with the credential list. When
	// empty the built-in list of two users is used.
	// Env: STORAGE_USERS_FILE
	UsersFile string `env:"USERS_FILE"`
}

// Log holds logger settings.
type Log struct {
	// Level is the minimal level written ("debug", "info", "error", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// Label is the fixed service label attached to every log line.
	// Env: LOG_LABEL
	Label string `env:"LABEL"`

	// Dir is the directory that receives error.log and combined.log.
	// File logging is disabled when empty.
	// Env: LOG_DIR
	Dir string `env:"DIR"`
}

// Adapter holds the client-side settings for reaching the server.
type Adapter struct {
	// HTTPAddress is the server address, with or without scheme
	// (e.g. "localhost:3000" or "http://localhost:3000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order
// (later sources win for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
	if err != nil {
		return nil, err
	}

	if err = cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
