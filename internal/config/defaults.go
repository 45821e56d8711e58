// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	// DefaultServiceName is used as token issuer and log label when none is
	// configured.
	DefaultServiceName = "calculator-microservice"

	// DefaultHTTPAddress is the listen address of the server.
	DefaultHTTPAddress = "0.0.0.0:3000"

	// DefaultAdapterAddress is the server address used by the client.
	DefaultAdapterAddress = "localhost:3000"

	// DefaultLogDir receives error.log and combined.log.
	DefaultLogDir = "logs"

	// DefaultLogLevel is the minimal level written by the logger.
	DefaultLogLevel = "info"

	// DefaultAdapterRequestTimeout bounds client requests.
	DefaultAdapterRequestTimeout = 10 * time.Second
)

// defaultConfig returns the lowest-priority configuration layer. The token
// sign key has no default.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer: DefaultServiceName,
		},
		Server: Server{
			HTTPAddress: DefaultHTTPAddress,
		},
		Log: Log{
			Level: DefaultLogLevel,
			Label: DefaultServiceName,
			Dir:   DefaultLogDir,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterRequestTimeout,
		},
	}
}
