// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package javabase

// Primitive type names.
var primitives = map[string]bool{
	"boolean": true,
	"byte":    true,
	"char":    true,
	"short":   true,
	"int":     true,
	"long":    true,
	"float":   true,
	"double":  true,
	"void":    true,
}

// IsPrimitive reports whether name is a Java primitive type or void.
func IsPrimitive(name string) bool {
	return primitives[name]
}

// langTypes are the java.lang types a source file can name without an
// import. Only the ones plausible as parameter types are listed.
var langTypes = map[string]bool{
	"Object":           true,
	"String":           true,
	"CharSequence":     true,
	"Integer":          true,
	"Long":             true,
	"Double":           true,
	"Float":            true,
	"Boolean":          true,
	"Byte":             true,
	"Character":        true,
	"Short":            true,
	"Void":             true,
	"Number":           true,
	"Class":            true,
	"Enum":             true,
	"Iterable":         true,
	"Runnable":         true,
	"Comparable":       true,
	"Thread":           true,
	"Throwable":        true,
	"Exception":        true,
	"RuntimeException": true,
	"Error":            true,
	"StringBuilder":    true,
}

// IsLangType reports whether simple names a java.lang type.
func IsLangType(simple string) bool {
	return langTypes[simple]
}
