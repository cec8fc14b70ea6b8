// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package validate enforces the @OnSensorChanged usage contract.
//
// Rules are checked in a fixed order and the first failure wins:
//
//  1. the marker names a sensor type
//  2. the method takes exactly one parameter
//  3. that parameter is an android.hardware.SensorEvent
//
// A failing declaration yields a Rejected result and one diagnostic; the
// remaining declarations are still validated.
package validate

import (
	"fmt"

	"github.com/albertocavalcante/sensorbind/diag"
	"github.com/albertocavalcante/sensorbind/internal/javabase"
	"github.com/albertocavalcante/sensorbind/internal/sensor"
	"github.com/albertocavalcante/sensorbind/model"
)

// RequiredParams is the number of parameters a marked method must declare.
const RequiredParams = 1

// Message formats. They are user-facing and matched verbatim by tests.
const (
	msgMissingSensorType = "No sensor type specified in @OnSensorChanged for method %s. Set a sensor type such as Sensor.TYPE_ACCELEROMETER."
	msgParameterArity    = "@OnSensorChanged methods can only have %d parameter(s). (%s)"
	msgParameterType     = "Method parameters are not valid for @OnSensorChanged annotated method. Expected parameters of type(s): %s. (%s)"
)

// Result is the outcome of validating one declaration: either Accepted or
// Rejected. The set of implementations is closed.
type Result interface {
	isResult()
}

// Accepted wraps a declaration that satisfies the contract.
type Accepted struct {
	Decl model.AnnotatedMethodDecl
}

// Rejected describes why a declaration was refused.
type Rejected struct {
	Kind     diag.Kind
	Message  string
	Location string
	Pos      model.Position
}

func (Accepted) isResult() {}
func (Rejected) isResult() {}

// Diagnostic converts r to the reporter's representation.
func (r Rejected) Diagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Kind:     r.Kind,
		Message:  r.Message,
		Location: r.Location,
		Pos:      r.Pos,
	}
}

// Location returns "HostSimpleName.method" for messages.
func Location(d model.AnnotatedMethodDecl) string {
	return javabase.SimpleName(d.Host) + "." + d.Method
}

// Check applies the rules to d without reporting.
func Check(d model.AnnotatedMethodDecl) Result {
	loc := Location(d)
	reject := func(kind diag.Kind, msg string) Result {
		return Rejected{Kind: kind, Message: msg, Location: loc, Pos: d.Pos}
	}

	if d.Marker.SensorType == model.SensorTypeUnset {
		return reject(diag.MissingSensorType, fmt.Sprintf(msgMissingSensorType, d.Method))
	}
	if len(d.Params) != RequiredParams {
		return reject(diag.InvalidParameterArity, fmt.Sprintf(msgParameterArity, RequiredParams, loc))
	}
	if d.Params[0].Type != sensor.EventType {
		return reject(diag.InvalidParameterType, fmt.Sprintf(msgParameterType, sensor.EventType, loc))
	}
	return Accepted{Decl: d}
}

// Validate checks d and forwards a rejection to rep.
func Validate(d model.AnnotatedMethodDecl, rep *diag.Reporter) Result {
	res := Check(d)
	if rej, ok := res.(Rejected); ok {
		rep.Report(rej.Diagnostic())
	}
	return res
}

// All validates decls in order and returns one result per declaration.
func All(decls []model.AnnotatedMethodDecl, rep *diag.Reporter) []Result {
	results := make([]Result, 0, len(decls))
	for _, d := range decls {
		results = append(results, Validate(d, rep))
	}
	return results
}
