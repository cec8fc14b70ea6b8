// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package java

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/albertocavalcante/sensorbind/generator"
	"github.com/albertocavalcante/sensorbind/model"
)

// OptionIndent is the target option holding the number of spaces per
// indentation level.
const OptionIndent = "indent"

// Generator implements [generator.Generator] for Java binders.
type Generator struct{}

// NewGenerator creates a new Java generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Metadata returns information about this generator.
func (g *Generator) Metadata() generator.Metadata {
	return generator.Metadata{
		Name:           "java",
		Version:        "1.0.0",
		Description:    "Generate Java SensorBinder classes for @OnSensorChanged hosts",
		FileExtensions: []string{".java"},
		URL:            "https://github.com/albertocavalcante/sensorbind",
	}
}

// Generate renders the binder for host.
func (g *Generator) Generate(ctx context.Context, host *model.HostBinding, cfg generator.Config) (*model.GeneratedUnit, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(host.Bindings) == 0 {
		return nil, fmt.Errorf("host %s has no bindings", host.Key())
	}
	width, err := strconv.Atoi(cfg.Option(OptionIndent, "2"))
	if err != nil || width < 1 || width > 8 {
		return nil, fmt.Errorf("option %s=%q: want a number of spaces from 1 to 8", OptionIndent, cfg.Option(OptionIndent, ""))
	}

	cg := New(host, cfg.HeaderText())
	cg.indent = strings.Repeat(" ", width)
	return cg.Generate(), nil
}
