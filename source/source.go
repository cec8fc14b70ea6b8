// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package source loads compilation units from disk.
//
// Java files go through the tree-sitter front end. JSON and YAML files are
// declaration feeds: records produced by some other tool that already knows
// the program's declarations.
package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/albertocavalcante/sensorbind/internal/javasrc"
	"github.com/albertocavalcante/sensorbind/model"
)

// Options configures how sources are loaded.
type Options struct {
	// Paths are files or directories. Directories are walked recursively.
	Paths []string

	// SkipDirs names directories not to descend into (e.g., "build").
	// Hidden directories are always skipped.
	SkipDirs []string
}

// Result contains the loaded units.
type Result struct {
	// Units in file path order; a feed may contribute several.
	Units []*model.CompilationUnit

	// Files lists every file that was read, sorted.
	Files []string
}

// FeedSuffix marks declaration feeds found while walking directories.
const FeedSuffix = ".decls"

// Feed is the document format of JSON and YAML declaration feeds.
type Feed struct {
	Units []*model.CompilationUnit `json:"units" yaml:"units"`
}

// Kind classifies a path by extension.
type Kind int

const (
	Unsupported Kind = iota
	Java
	JSON
	YAML
)

// KindOf returns the kind of path.
func KindOf(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".java":
		return Java
	case ".json":
		return JSON
	case ".yaml", ".yml":
		return YAML
	default:
		return Unsupported
	}
}

// Load reads every supported file under opts.Paths.
func Load(ctx context.Context, opts Options) (*Result, error) {
	files, err := collect(opts)
	if err != nil {
		return nil, err
	}

	var reader *javasrc.Reader
	defer func() {
		if reader != nil {
			reader.Close()
		}
	}()

	res := &Result{Files: files}
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		switch KindOf(path) {
		case Java:
			if reader == nil {
				if reader, err = javasrc.NewReader(); err != nil {
					return nil, err
				}
			}
			u, err := reader.ReadFile(path)
			if err != nil {
				return nil, err
			}
			res.Units = append(res.Units, u)
		case JSON, YAML:
			units, err := ReadFeed(path)
			if err != nil {
				return nil, err
			}
			res.Units = append(res.Units, units...)
		}
	}
	return res, nil
}

// ReadFeed reads a JSON or YAML declaration feed.
func ReadFeed(path string) ([]*model.CompilationUnit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	units, err := ParseFeed(KindOf(path), data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for _, u := range units {
		if u != nil && u.Path == "" {
			u.Path = path
		}
	}
	return units, nil
}

// ParseFeed decodes feed data of the given kind.
func ParseFeed(kind Kind, data []byte) ([]*model.CompilationUnit, error) {
	var feed Feed
	switch kind {
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&feed); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&feed); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported feed kind %d", kind)
	}
	return feed.Units, nil
}

// collect expands opts.Paths into a sorted, de-duplicated file list.
func collect(opts Options) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		path = filepath.Clean(path)
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, root := range opts.Paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", root, err)
		}
		if !info.IsDir() {
			if KindOf(root) == Unsupported {
				return nil, fmt.Errorf("unsupported source file %s", root)
			}
			add(root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && skipDir(d.Name(), opts.SkipDirs) {
					return filepath.SkipDir
				}
				return nil
			}
			if discoverable(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	slices.Sort(files)
	return files, nil
}

// discoverable reports whether a file found by walking a directory is
// loaded. Feeds must be named *.decls.json or *.decls.yaml so unrelated
// JSON and YAML files are left alone; explicit paths have no such rule.
func discoverable(path string) bool {
	switch KindOf(path) {
	case Java:
		return true
	case JSON, YAML:
		base := filepath.Base(path)
		return strings.HasSuffix(strings.TrimSuffix(base, filepath.Ext(base)), FeedSuffix)
	default:
		return false
	}
}

func skipDir(name string, skip []string) bool {
	return strings.HasPrefix(name, ".") || slices.Contains(skip, name)
}
