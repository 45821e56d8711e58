// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the calculator's HTTP server.
//
// It covers startup, signal handling and graceful shutdown: SIGINT, SIGTERM
// and SIGQUIT stop accepting connections and let in-flight requests finish.
package server
