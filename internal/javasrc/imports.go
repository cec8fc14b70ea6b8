// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package javasrc

import (
	"strings"

	"github.com/albertocavalcante/sensorbind/internal/javabase"
	"github.com/albertocavalcante/sensorbind/internal/sensor"
)

// knownTypes are platform types a wildcard import can be resolved against.
var knownTypes = []string{
	sensor.EventType,
	sensor.SensorClass,
	sensor.ManagerClass,
	sensor.ListenerInterface,
	sensor.ContextClass,
	sensor.MarkerQualified,
}

// imports is the import table of one file.
type imports struct {
	// single maps simple name to fully qualified name.
	single map[string]string

	// static maps member name to its fully qualified reference.
	static map[string]string

	// wildcard lists packages imported on demand.
	wildcard []string

	// staticWildcard lists types whose static members are imported on
	// demand.
	staticWildcard []string
}

func newImports() *imports {
	return &imports{
		single: make(map[string]string),
		static: make(map[string]string),
	}
}

// add records one import declaration as written, without "import" and ";".
func (im *imports) add(decl string) {
	decl = strings.TrimSpace(decl)
	isStatic := false
	if rest, ok := strings.CutPrefix(decl, "static "); ok {
		isStatic = true
		decl = strings.TrimSpace(rest)
	}
	decl = strings.Join(strings.Fields(decl), "")

	if owner, ok := strings.CutSuffix(decl, ".*"); ok {
		if isStatic {
			im.staticWildcard = append(im.staticWildcard, owner)
		} else {
			im.wildcard = append(im.wildcard, owner)
		}
		return
	}
	if isStatic {
		im.static[javabase.SimpleName(decl)] = decl
		return
	}
	im.single[javabase.SimpleName(decl)] = decl
}

// lookupWildcard resolves simple through on-demand imports of known
// platform packages.
func (im *imports) lookupWildcard(simple string) (string, bool) {
	for _, pkg := range im.wildcard {
		for _, t := range knownTypes {
			if t == pkg+"."+simple {
				return t, true
			}
		}
	}
	return "", false
}

// resolver turns type names as written into qualified names.
type resolver struct {
	pkg     string
	imports *imports

	// local maps simple names of types declared in the file to their
	// package-relative names.
	local map[string]string
}

// resolveType resolves a type as written in a parameter list. Type
// arguments are dropped; array brackets and varargs dots are kept.
func (r *resolver) resolveType(written string) string {
	written = strings.Join(strings.Fields(written), "")
	if i := strings.IndexByte(written, '<'); i >= 0 {
		if j := strings.LastIndexByte(written, '>'); j > i {
			written = written[:i] + written[j+1:]
		}
	}

	base, suffix := written, ""
	for {
		switch {
		case strings.HasSuffix(base, "..."):
			base, suffix = strings.TrimSuffix(base, "..."), "..."+suffix
		case strings.HasSuffix(base, "[]"):
			base, suffix = strings.TrimSuffix(base, "[]"), "[]"+suffix
		default:
			return r.resolveName(base) + suffix
		}
	}
}

// resolveName resolves a plain or dotted type name.
func (r *resolver) resolveName(name string) string {
	if javabase.IsPrimitive(name) {
		return name
	}

	head, tail, dotted := strings.Cut(name, ".")
	if dotted {
		if fqn, ok := r.imports.single[head]; ok {
			return fqn + "." + tail
		}
		if rel, ok := r.local[head]; ok {
			return javabase.Qualify(r.pkg, rel+"."+tail)
		}
		return name
	}

	if fqn, ok := r.imports.single[name]; ok {
		return fqn
	}
	if rel, ok := r.local[name]; ok {
		return javabase.Qualify(r.pkg, rel)
	}
	if javabase.IsLangType(name) {
		return "java.lang." + name
	}
	if fqn, ok := r.imports.lookupWildcard(name); ok {
		return fqn
	}
	return javabase.Qualify(r.pkg, name)
}

// resolveAnnotation resolves an annotation name. Unknown simple names are
// kept as written.
func (r *resolver) resolveAnnotation(name string) string {
	if strings.Contains(name, ".") {
		return name
	}
	if fqn, ok := r.imports.single[name]; ok {
		return fqn
	}
	if fqn, ok := r.imports.lookupWildcard(name); ok {
		return fqn
	}
	return name
}
