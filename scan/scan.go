// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package scan discovers methods carrying the @OnSensorChanged marker.
//
// Discovery is purely structural. Malformed declarations are returned as-is
// so the validator can reject them with a precise message.
package scan

import (
	"github.com/albertocavalcante/sensorbind/internal/sensor"
	"github.com/albertocavalcante/sensorbind/model"
)

// Marker element names.
const (
	ArgValue = "value"
	ArgDelay = "delay"
)

// IsMarker reports whether an annotation name denotes @OnSensorChanged.
func IsMarker(name string) bool {
	return name == sensor.MarkerName || name == sensor.MarkerQualified
}

// Units returns every marked method in units, in unit order, then type
// order, then method order. Nil units and types are skipped.
func Units(units []*model.CompilationUnit) []model.AnnotatedMethodDecl {
	var decls []model.AnnotatedMethodDecl
	for _, u := range units {
		if u == nil {
			continue
		}
		decls = append(decls, Unit(u)...)
	}
	return decls
}

// Unit returns the marked methods of a single compilation unit.
func Unit(u *model.CompilationUnit) []model.AnnotatedMethodDecl {
	var decls []model.AnnotatedMethodDecl
	for _, t := range u.Types {
		if t == nil {
			continue
		}
		for _, m := range t.Methods {
			if m == nil {
				continue
			}
			ann, ok := findMarker(m.Annotations)
			if !ok {
				continue
			}
			decls = append(decls, model.AnnotatedMethodDecl{
				Package: u.Package,
				Host:    t.Name,
				Method:  m.Name,
				Params:  cloneParams(m.Params),
				Marker:  markerOf(ann),
				Pos:     posOf(m.Pos, u.Path),
			})
		}
	}
	return decls
}

// findMarker returns the first marker annotation. Repeated markers on one
// method are not legal Java; only the first is honored.
func findMarker(anns []model.Annotation) (model.Annotation, bool) {
	for _, a := range anns {
		if IsMarker(a.Name) {
			return a, true
		}
	}
	return model.Annotation{}, false
}

func markerOf(a model.Annotation) model.Marker {
	var m model.Marker
	if v, ok := a.Arg(ArgValue); ok {
		m.SensorType = v
	}
	if d, ok := a.Arg(ArgDelay); ok {
		m.Delay = &d
	}
	return m
}

func cloneParams(ps []model.Parameter) []model.Parameter {
	if ps == nil {
		return nil
	}
	out := make([]model.Parameter, len(ps))
	copy(out, ps)
	return out
}

func posOf(p model.Position, path string) model.Position {
	if p.File == "" {
		p.File = path
	}
	return p
}
