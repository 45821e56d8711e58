// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package web holds the browser frontend served at "/".
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// Static returns the embedded frontend rooted at its index.html.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		// the directory is embedded at build time
		panic(err)
	}
	return sub
}
