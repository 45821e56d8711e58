// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the calculator service.
// It provides middleware, route handlers, and request/response utilities.
// Authentication, authorization, logging, tracing, compression and response
// signing are all handled at this layer before requests reach the service
// layer.
package http
