// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Operation names one of the four arithmetic operations exposed by the
// service. Its value is also the route path segment (e.g. "/add").
type Operation string

const (
	OperationAdd      Operation = "add"
	OperationSubtract Operation = "subtract"
	OperationMultiply Operation = "multiply"
	OperationDivide   Operation = "divide"
)

// Operations lists every supported operation in route registration order.
var Operations = []Operation{
	OperationAdd,
	OperationSubtract,
	OperationMultiply,
	OperationDivide,
}

// IsValid reports whether o is one of the supported operations.
func (o Operation) IsValid() bool {
	switch o {
	case OperationAdd, OperationSubtract, OperationMultiply, OperationDivide:
		return true
	}
	return false
}

// Symbol returns the infix operator sign used in textual results.
func (o Operation) Symbol() string {
	switch o {
	case OperationAdd:
		return "+"
	case OperationSubtract:
		return "-"
	case OperationMultiply:
		return "*"
	case OperationDivide:
		return "/"
	}
	return "?"
}

// Noun returns the lower-case name of the operation ("addition", ...),
// used in log and error messages.
func (o Operation) Noun() string {
	switch o {
	case OperationAdd:
		return "addition"
	case OperationSubtract:
		return "subtraction"
	case OperationMultiply:
		return "multiplication"
	case OperationDivide:
		return "division"
	}
	return string(o)
}

// Title returns the capitalised operation name ("Addition", ...).
func (o Operation) Title() string {
	noun := o.Noun()
	if noun == "" {
		return noun
	}
	return strings.ToUpper(noun[:1]) + noun[1:]
}

// Calculation is the outcome of a successful arithmetic operation.
type Calculation struct {
	Operation Operation
	Num1      float64
	Num2      float64
	Result    float64
}

// String renders the calculation as "<num1> <op> <num2> = <result>",
// e.g. "2 + 3 = 5".
func (c Calculation) String() string {
	return fmt.Sprintf("%s %s %s = %s",
		FormatNumber(c.Num1), c.Operation.Symbol(), FormatNumber(c.Num2), FormatNumber(c.Result))
}

// FormatNumber renders f in the shortest decimal form that round-trips
// (5 rather than 5.000000). Magnitudes of 1e21 and above or below 1e-6 use
// exponent notation ("1e+21", "1e-7"). Infinite values are written as
// "Infinity" and "-Infinity", and negative zero as "0".
func FormatNumber(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	case f == 0:
		return "0"
	}

	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		// strconv pads the exponent to two digits: 1e-07
		mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mantissa + "e" + sign + digits
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}
