// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package javasrc reads Java source files into compilation-unit records.
//
// It extracts only what the scanner needs: the package, imports, type
// declarations (nested ones included), their methods, formal parameters and
// method annotations. Parameter types are resolved to fully qualified names
// where the file makes that possible; annotation arguments are evaluated to
// integers, resolving static final int constants declared in the file and
// the platform Sensor.TYPE_* and SensorManager.SENSOR_DELAY_* constants the
// file imports.
package javasrc

import (
	"fmt"
	"os"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"

	"github.com/albertocavalcante/sensorbind/model"
)

// Reader parses Java files. A Reader is not safe for concurrent use.
type Reader struct {
	parser *sitter.Parser
}

// NewReader returns a Reader ready to parse Java source.
func NewReader() (*Reader, error) {
	p := sitter.NewParser()
	if err := p.SetLanguage(sitter.NewLanguage(tree_sitter_java.Language())); err != nil {
		p.Close()
		return nil, fmt.Errorf("load java grammar: %w", err)
	}
	return &Reader{parser: p}, nil
}

// Close releases the parser.
func (r *Reader) Close() {
	r.parser.Close()
}

// ReadFile parses the file at path.
func (r *Reader) ReadFile(path string) (*model.CompilationUnit, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return r.Parse(path, src)
}

// Parse parses src. path is recorded in the unit and in positions.
func (r *Reader) Parse(path string, src []byte) (*model.CompilationUnit, error) {
	tree := r.parser.Parse(src, nil)
	if tree == nil {
		return nil, fmt.Errorf("parse %s: parser returned no tree", path)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		if n := firstError(root); n != nil {
			p := n.StartPosition()
			return nil, fmt.Errorf("parse %s:%d:%d: syntax error", path, p.Row+1, p.Column+1)
		}
		return nil, fmt.Errorf("parse %s: syntax error", path)
	}

	f := &file{path: path, src: src, imports: newImports()}
	unit, err := f.unit(root)
	if err != nil {
		return nil, err
	}
	return unit, nil
}

// Parse parses a single source with a throwaway Reader.
func Parse(path string, src []byte) (*model.CompilationUnit, error) {
	r, err := NewReader()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return r.Parse(path, src)
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.IsError() || n.IsMissing() {
		return n
	}
	for i := uint(0); i < n.ChildCount(); i++ {
		c := n.Child(i)
		if c == nil || !c.HasError() && !c.IsMissing() {
			continue
		}
		if e := firstError(c); e != nil {
			return e
		}
	}
	return nil
}
