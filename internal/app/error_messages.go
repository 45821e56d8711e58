// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings shared by the calculator's
// handlers and services.
//
// Msg* constants are written into response bodies or log entries. Clients
// and log consumers match on this wording, so it lives in one place.
package app

import "github.com/MKhiriev/go-calculator/models"

const (
	// MsgUnauthorizedRequest is logged for every request rejected by the
	// access gate or by a failed login.
	MsgUnauthorizedRequest = "Unauthorized request"

	// MsgInvalidInput is the response body for operands that are missing or
	// not numbers.
	MsgInvalidInput = "Invalid input"

	// MsgDivisionByZero is both the response body and the log line of a
	// division with a zero divisor.
	MsgDivisionByZero = "Division by zero error"

	// MsgInvalidRequestBody is the response body for a login request whose
	// body cannot be decoded.
	MsgInvalidRequestBody = "Invalid request body"

	// MsgInvalidLoginRequest is logged together with MsgInvalidRequestBody.
	MsgInvalidLoginRequest = "Invalid login request"
)

// InvalidInputMessage is the error log line for rejected operands of op,
// e.g. "Invalid input for addition operation".
func InvalidInputMessage(op models.Operation) string {
	return "Invalid input for " + op.Noun() + " operation"
}

// CalculationMessage is the info log line of a successful calculation,
// e.g. "Addition operation: 2 + 3 = 5".
func CalculationMessage(calculation models.Calculation) string {
	return calculation.Operation.Title() + " operation: " + calculation.String()
}
