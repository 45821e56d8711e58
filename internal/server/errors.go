// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned by NewServer when no HTTP address
	// or no HTTP handler is configured, and by run when it has nothing to
	// serve.
	errNoServersAreCreated = errors.New("no servers are created")

	// errListenFailed is returned together with the net.Listen error when the
	// HTTP address cannot be bound.
	errListenFailed = errors.New("failed to listen on HTTP address")
)
