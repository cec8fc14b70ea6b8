// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package model defines the records that flow through the sensorbind
// pipeline.
//
// The input side mirrors what a host compiler knows about a program:
// compilation units, the types they declare, the methods on those types and
// the annotations on those methods. Front ends (the Java source reader, JSON
// and YAML feeds) produce these records; the engine never re-parses them.
//
// The output side is the intermediate binding model and the generated units.
// Every value is built once per pass and never mutated afterwards.
package model

import (
	"fmt"
	"strings"
)

const (
	// SensorTypeUnset is the sentinel for a marker without a sensor type.
	// No platform sensor type uses zero.
	SensorTypeUnset = 0

	// DefaultDelay is SensorManager.SENSOR_DELAY_NORMAL, used when the
	// marker does not name a delay.
	DefaultDelay = 3
)

// CompilationUnit is a single source file as seen by the scanner.
type CompilationUnit struct {
	// Path is the file the unit was read from (informational).
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// Package is the dotted package name; empty for the default package.
	Package string `json:"package,omitempty" yaml:"package,omitempty"`

	// Types lists the types declared in the unit, nested types included,
	// in declaration order.
	Types []*TypeDecl `json:"types" yaml:"types"`
}

// TypeDecl is a class-like declaration.
type TypeDecl struct {
	// Name is relative to the package, dot-separated for nested types
	// (e.g., "Outer.Inner").
	Name string `json:"name" yaml:"name"`

	// Methods in declaration order.
	Methods []*MethodDecl `json:"methods,omitempty" yaml:"methods,omitempty"`
}

// MethodDecl is a method declared directly on a TypeDecl.
type MethodDecl struct {
	Name        string       `json:"name" yaml:"name"`
	Params      []Parameter  `json:"params,omitempty" yaml:"params,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty" yaml:"annotations,omitempty"`
	Pos         Position     `json:"pos,omitzero" yaml:"pos,omitempty"`
}

// Parameter is one formal parameter.
type Parameter struct {
	// Type is the declared type, fully qualified where the front end could
	// resolve it (e.g., "android.hardware.SensorEvent", "int").
	Type string `json:"type" yaml:"type"`
	Name string `json:"name" yaml:"name"`
}

// Annotation is an annotation applied to a method.
type Annotation struct {
	// Name is the annotation type as written or resolved: either the simple
	// name ("OnSensorChanged") or the fully qualified one.
	Name string          `json:"name" yaml:"name"`
	Args []AnnotationArg `json:"args,omitempty" yaml:"args,omitempty"`
}

// AnnotationArg is a resolved integer annotation element.
type AnnotationArg struct {
	// Name is the element name; "value" for the single unnamed element.
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

// Arg returns the value of the named element.
func (a Annotation) Arg(name string) (int, bool) {
	for _, arg := range a.Args {
		if arg.Name == name {
			return arg.Value, true
		}
	}
	return 0, false
}

// Position is a 1-based source location. The zero value means unknown.
type Position struct {
	File   string `json:"file,omitempty" yaml:"file,omitempty"`
	Line   int    `json:"line,omitempty" yaml:"line,omitempty"`
	Column int    `json:"column,omitempty" yaml:"column,omitempty"`
}

// IsValid reports whether the position carries a line number.
func (p Position) IsValid() bool {
	return p.Line > 0
}

func (p Position) String() string {
	switch {
	case !p.IsValid() && p.File == "":
		return "-"
	case !p.IsValid():
		return p.File
	case p.Column > 0:
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	default:
		return fmt.Sprintf("%s:%d", p.File, p.Line)
	}
}

// Marker holds the arguments of an @OnSensorChanged annotation.
type Marker struct {
	// SensorType is the platform sensor type code, or SensorTypeUnset.
	SensorType int `json:"sensorType" yaml:"sensorType"`

	// Delay is the sampling-rate hint passed through to the listener
	// wrapper. Nil when the marker did not specify one.
	Delay *int `json:"delay,omitempty" yaml:"delay,omitempty"`
}

// DelayOrDefault returns the marker delay, or DefaultDelay when unset.
func (m Marker) DelayOrDefault() int {
	if m.Delay == nil {
		return DefaultDelay
	}
	return *m.Delay
}

// AnnotatedMethodDecl is a method carrying the binding marker, together with
// everything the validator and generator need to know about it.
type AnnotatedMethodDecl struct {
	Package string      `json:"package,omitempty" yaml:"package,omitempty"`
	Host    string      `json:"host" yaml:"host"`
	Method  string      `json:"method" yaml:"method"`
	Params  []Parameter `json:"params,omitempty" yaml:"params,omitempty"`
	Marker  Marker      `json:"marker" yaml:"marker"`
	Pos     Position    `json:"pos,omitzero" yaml:"pos,omitempty"`
}

// HostKey identifies the host a declaration belongs to.
func (d AnnotatedMethodDecl) HostKey() HostKey {
	return HostKey{Package: d.Package, Host: d.Host}
}

// HostKey identifies a host type across packages.
type HostKey struct {
	Package string
	Host    string
}

func (k HostKey) String() string {
	if k.Package == "" {
		return k.Host
	}
	return k.Package + "." + k.Host
}

// ListenerBinding is a validated declaration ready for generation.
type ListenerBinding struct {
	// SensorType is the platform sensor type code. Never SensorTypeUnset.
	SensorType int

	// Delay is the value paired with SensorType in the listener wrapper.
	Delay int

	// Ordinal is the 0-based position within the host's binding list. It is
	// a generation key only and unrelated to SensorType.
	Ordinal int

	// Method is the host method receiving sensor events.
	Method string
}

// HostBinding groups the bindings of one host type. It always holds at
// least one binding.
type HostBinding struct {
	Package  string
	Host     string
	Bindings []ListenerBinding
}

// Key returns the host's identity.
func (h *HostBinding) Key() HostKey {
	return HostKey{Package: h.Package, Host: h.Host}
}

// GeneratedUnit is one emitted source file.
type GeneratedUnit struct {
	Package string

	// Host is the host type name relative to Package.
	Host string

	// TypeName is the generated binder type, e.g. "Test$$SensorBinder".
	TypeName string

	// Path is the slash-separated output path relative to the source root,
	// e.g. "test/Test$$SensorBinder.java".
	Path string

	Source []byte
}

// QualifiedHost returns the fully qualified host type name.
func (u *GeneratedUnit) QualifiedHost() string {
	return HostKey{Package: u.Package, Host: u.Host}.String()
}

// QualifiedTypeName returns the binder's binary name as the runtime looks it
// up (package, dot, TypeName).
func (u *GeneratedUnit) QualifiedTypeName() string {
	if u.Package == "" {
		return u.TypeName
	}
	return strings.Join([]string{u.Package, u.TypeName}, ".")
}
