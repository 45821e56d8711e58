// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command line calculator client.
//
// An [App] runs one command against a calculator service through an
// [adapter.CalculatorAdapter]: it logs in when an operation needs a token,
// performs the request and prints the result.
package client
