// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/albertocavalcante/sensorbind/model"
)

// Output contains generated files.
type Output struct {
	// Files maps slash-separated path to content.
	Files map[string][]byte
}

// NewOutput creates a new Output.
func NewOutput() *Output {
	return &Output{Files: make(map[string][]byte)}
}

// Add adds a file to the output.
func (o *Output) Add(name string, content []byte) {
	o.Files[name] = content
}

// AddUnit adds a generated unit under its path.
func (o *Output) AddUnit(u *model.GeneratedUnit) {
	o.Add(u.Path, u.Source)
}

// Names returns the file names, sorted.
func (o *Output) Names() []string {
	names := make([]string, 0, len(o.Files))
	for name := range o.Files {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// WriteDir writes every file below dir, creating package directories. It
// returns the written paths in sorted order.
func (o *Output) WriteDir(dir string) ([]string, error) {
	var written []string
	for _, name := range o.Names() {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return written, fmt.Errorf("create output directory: %w", err)
		}
		if err := os.WriteFile(path, o.Files[name], 0o644); err != nil {
			return written, fmt.Errorf("write %s: %w", name, err)
		}
		written = append(written, path)
	}
	return written, nil
}
