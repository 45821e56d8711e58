// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle contract of the servers managed by this
// package.
//
// Implementations block in [RunServer] until shutdown is requested and
// release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	// It returns nil after a graceful shutdown and an error when the
	// listener could not be opened or stopped serving on its own.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
