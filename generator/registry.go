// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// ErrUnknownTarget is returned by Get for a target nothing registered.
var ErrUnknownTarget = errors.New("unknown target")

var (
	mu       sync.RWMutex
	registry = make(map[string]Generator)
)

// Register adds a generator under its metadata name. Registering the same
// target twice panics.
func Register(g Generator) {
	mu.Lock()
	defer mu.Unlock()
	meta := g.Metadata()
	if meta.Name == "" {
		panic("generator registered without a target name")
	}
	if _, exists := registry[meta.Name]; exists {
		panic(fmt.Sprintf("target %q already registered", meta.Name))
	}
	registry[meta.Name] = g
}

// Get returns the generator for a target. The error names the registered
// targets.
func Get(target string) (Generator, error) {
	mu.RLock()
	defer mu.RUnlock()
	if g, ok := registry[target]; ok {
		return g, nil
	}
	return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownTarget, target, strings.Join(names(), ", "))
}

// Targets returns the metadata of every registered generator, sorted by
// target name.
func Targets() []Metadata {
	mu.RLock()
	defer mu.RUnlock()
	metas := make([]Metadata, 0, len(registry))
	for _, name := range names() {
		metas = append(metas, registry[name].Metadata())
	}
	return metas
}

// names returns the registered target names, sorted. Callers hold mu.
func names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Reset clears the registry (for testing).
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Generator)
}
