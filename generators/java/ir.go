// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package java

// File is the in-memory form of one generated Java source file. Codegen
// decides what goes in it; render decides how it is laid out.
type File struct {
	// Comment is the single-line header comment, without "// ".
	Comment string

	// Package is empty for the default package.
	Package string

	Imports *importSet
	Type    *Class

	// Indent is one indentation level. Empty means two spaces.
	Indent string
}

// Class is a top-level class declaration.
type Class struct {
	Modifiers  []string
	Name       string
	Implements []string
	Fields     []Field
	Methods    []Method
}

// Field is a member variable.
type Field struct {
	Modifiers []string
	Type      string
	Name      string
}

// Method is a method or, when Result is empty, a constructor.
type Method struct {
	Annotations []string
	Modifiers   []string
	Result      string
	Name        string
	Params      []Param
	Body        []Line
}

// Param is a formal parameter.
type Param struct {
	Final bool
	Type  string
	Name  string
}

// Line is one body line. Depth counts indentation steps relative to the
// method body.
type Line struct {
	Depth int
	Text  string
}
