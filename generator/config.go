// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

// DefaultHeader is the comment placed at the top of every generated file.
const DefaultHeader = "This class is generated code from Sensor Lib. Do not modify!"

// Config contains generator configuration.
type Config struct {
	// OutputDir is the output source root.
	OutputDir string

	// Header overrides DefaultHeader when non-empty.
	Header string

	// Parallel renders hosts concurrently.
	Parallel bool

	// Options contains target-specific options.
	Options map[string]string
}

// Option returns a target-specific option with default.
func (c Config) Option(key, defaultValue string) string {
	if v, ok := c.Options[key]; ok {
		return v
	}
	return defaultValue
}

// HeaderText returns the header comment text to emit.
func (c Config) HeaderText() string {
	if c.Header != "" {
		return c.Header
	}
	return DefaultHeader
}
