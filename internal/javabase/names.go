// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package javabase provides Java naming and type classification helpers
// shared by the front end, the validator and the generator.
package javabase

import "strings"

// BinderSuffix is appended to a host's binary simple name to form the
// generated binder type name.
const BinderSuffix = "$$SensorBinder"

// SimpleName returns the innermost simple name of a dotted name.
// "Outer.Inner" -> "Inner", "android.hardware.SensorEvent" -> "SensorEvent".
func SimpleName(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}

// BinaryName converts a package-relative nested type name to its binary
// form: "Outer.Inner" -> "Outer$Inner".
func BinaryName(host string) string {
	return strings.ReplaceAll(host, ".", "$")
}

// BinderName returns the generated binder type name for a host.
// "Test" -> "Test$$SensorBinder", "Outer.Inner" -> "Outer$Inner$$SensorBinder".
func BinderName(host string) string {
	return BinaryName(host) + BinderSuffix
}

// Qualify joins a package and a package-relative name.
func Qualify(pkg, name string) string {
	if pkg == "" {
		return name
	}
	return pkg + "." + name
}

// SourcePath returns the slash-separated path of a top-level type's source
// file relative to the source root: ("a.b", "T") -> "a/b/T.java".
func SourcePath(pkg, typeName string) string {
	file := typeName + ".java"
	if pkg == "" {
		return file
	}
	return strings.ReplaceAll(pkg, ".", "/") + "/" + file
}
