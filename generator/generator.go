// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package generator defines the interface for binder code generators.
package generator

import (
	"context"

	"github.com/albertocavalcante/sensorbind/model"
)

// Generator is the interface that all code generators must implement.
type Generator interface {
	// Metadata returns information about this generator.
	Metadata() Metadata

	// Generate renders the binder for a single host. Implementations must be
	// deterministic and safe to call concurrently for different hosts.
	Generate(ctx context.Context, host *model.HostBinding, cfg Config) (*model.GeneratedUnit, error)
}

// Metadata describes a generator.
type Metadata struct {
	// Name is the short identifier (e.g., "java").
	Name string

	// Version is the generator version (semver).
	Version string

	// Description is a human-readable description.
	Description string

	// FileExtensions lists typical output extensions (e.g., [".java"]).
	FileExtensions []string

	// URL is the homepage/documentation URL (optional).
	URL string
}
