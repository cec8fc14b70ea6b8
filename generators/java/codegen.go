// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package java generates Java SensorBinder implementations.
//
// For a host type Test with @OnSensorChanged methods the generator emits
// Test$$SensorBinder in the host's package. The binder:
//   - acquires the SensorManager from the Context in its constructor
//   - builds one SensorEventListenerWrapper per binding, forwarding
//     onSensorChanged to the host method and ignoring onAccuracyChanged
//   - registers every wrapper in bind and unregisters them in unbind
package java

import (
	"fmt"
	"strings"

	"github.com/albertocavalcante/sensorbind/internal/javabase"
	"github.com/albertocavalcante/sensorbind/internal/sensor"
	"github.com/albertocavalcante/sensorbind/model"
)

const (
	fieldManager   = "sensorManager"
	fieldListeners = "listeners"
	paramContext   = "context"
	paramTarget    = "target"

	javaOverride  = "java.lang.Override"
	javaList      = "java.util.List"
	javaArrayList = "java.util.ArrayList"
)

// Codegen builds the Java model of one host's binder.
type Codegen struct {
	host   *model.HostBinding
	header string
	indent string
	imp    *importSet
}

// New creates a Codegen for host. An empty header omits the comment.
func New(host *model.HostBinding, header string) *Codegen {
	outer, _, _ := strings.Cut(host.Host, ".")
	return &Codegen{
		host:   host,
		header: header,
		imp:    newImportSet(outer, javabase.BinderName(host.Host)),
	}
}

// TypeName returns the binder's simple type name.
func (g *Codegen) TypeName() string {
	return javabase.BinderName(g.host.Host)
}

// File builds the binder's Java model.
func (g *Codegen) File() *File {
	hostRef := g.host.Host
	binderIface := fmt.Sprintf("%s<%s>", g.imp.add(sensor.BinderInterface), hostRef)

	cls := &Class{
		Modifiers:  []string{"final"},
		Name:       g.TypeName(),
		Implements: []string{binderIface},
		Fields: []Field{
			{Modifiers: []string{"private", "final"}, Type: g.imp.add(sensor.ManagerClass), Name: fieldManager},
			{Modifiers: []string{"private", "final"}, Type: fmt.Sprintf("%s<%s>", g.imp.add(javaList), g.imp.add(sensor.WrapperInterface)), Name: fieldListeners},
		},
		Methods: []Method{
			g.constructor(hostRef),
			g.bindMethod(hostRef),
			g.unbindMethod(),
		},
	}

	return &File{
		Comment: g.header,
		Package: g.host.Package,
		Imports: g.imp,
		Type:    cls,
		Indent:  g.indent,
	}
}

// Generate renders the binder source.
func (g *Codegen) Generate() *model.GeneratedUnit {
	f := g.File()
	return &model.GeneratedUnit{
		Package:  g.host.Package,
		Host:     g.host.Host,
		TypeName: g.TypeName(),
		Path:     javabase.SourcePath(g.host.Package, g.TypeName()),
		Source:   render(f),
	}
}

func (g *Codegen) constructor(hostRef string) Method {
	manager := g.imp.add(sensor.ManagerClass)
	service := g.imp.addStatic(sensor.ServiceKey)

	body := []Line{
		{Text: fmt.Sprintf("this.%s = (%s) %s.getSystemService(%s);", fieldManager, manager, paramContext, service)},
		{Text: fmt.Sprintf("this.%s = new %s();", fieldListeners, g.imp.add(javaArrayList))},
	}
	for _, b := range g.host.Bindings {
		body = append(body, g.listenerLines(b)...)
	}

	return Method{
		Modifiers: []string{"public"},
		Name:      g.TypeName(),
		Params: []Param{
			{Type: g.imp.add(sensor.ContextClass), Name: paramContext},
			{Final: true, Type: hostRef, Name: paramTarget},
		},
		Body: body,
	}
}

// listenerLines builds the statement adding one wrapper. The anonymous
// listener uses fully qualified names so it does not depend on imports.
func (g *Codegen) listenerLines(b model.ListenerBinding) []Line {
	wrapper := g.imp.add(sensor.WrapperImplementer)
	listener := g.imp.add(sensor.ListenerInterface)
	return []Line{
		{Text: fmt.Sprintf("this.%s.add(new %s(%d, %d, new %s() {", fieldListeners, wrapper, b.SensorType, b.Delay, listener)},
		{Depth: 3, Text: "@" + javaOverride},
		{Depth: 3, Text: fmt.Sprintf("public void onSensorChanged(%s event) {", sensor.EventType)},
		{Depth: 4, Text: fmt.Sprintf("%s.%s(event);", paramTarget, b.Method)},
		{Depth: 3, Text: "}"},
		{Depth: 3, Text: "@" + javaOverride},
		{Depth: 3, Text: fmt.Sprintf("public void onAccuracyChanged(%s sensor, int accuracy) {", sensor.SensorClass)},
		{Depth: 3, Text: "}"},
		{Depth: 2, Text: "}));"},
	}
}

func (g *Codegen) bindMethod(hostRef string) Method {
	wrapper := g.imp.add(sensor.WrapperInterface)
	return Method{
		Annotations: []string{g.imp.add(javaOverride)},
		Modifiers:   []string{"public"},
		Result:      "void",
		Name:        "bind",
		Params:      []Param{{Final: true, Type: hostRef, Name: paramTarget}},
		Body: []Line{
			{Text: "int sensorType;"},
			{Text: g.imp.add(sensor.SensorClass) + " sensor;"},
			{Text: fmt.Sprintf("for (%s wrapper : %s) {", wrapper, fieldListeners)},
			{Depth: 1, Text: "sensorType = wrapper.getSensorType();"},
			{Depth: 1, Text: fmt.Sprintf("sensor = wrapper.getSensor(%s);", fieldManager)},
			{Depth: 1, Text: fmt.Sprintf("wrapper.registerListener(%s);", fieldManager)},
			{Text: "}"},
		},
	}
}

func (g *Codegen) unbindMethod() Method {
	wrapper := g.imp.add(sensor.WrapperInterface)
	return Method{
		Annotations: []string{g.imp.add(javaOverride)},
		Modifiers:   []string{"public"},
		Result:      "void",
		Name:        "unbind",
		Body: []Line{
			{Text: fmt.Sprintf("if (this.%s != null) {", fieldManager)},
			{Depth: 1, Text: fmt.Sprintf("for (%s wrapper : %s) {", wrapper, fieldListeners)},
			{Depth: 2, Text: fmt.Sprintf("wrapper.unregisterListener(%s);", fieldManager)},
			{Depth: 1, Text: "}"},
			{Text: "}"},
		},
	}
}
