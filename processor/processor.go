// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package processor runs one sensorbind pass: scan, validate, build the
// per-host model, and generate a binder for every host with at least one
// valid binding.
package processor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/albertocavalcante/sensorbind/binding"
	"github.com/albertocavalcante/sensorbind/diag"
	"github.com/albertocavalcante/sensorbind/generator"
	"github.com/albertocavalcante/sensorbind/internal/sensor"
	"github.com/albertocavalcante/sensorbind/model"
	"github.com/albertocavalcante/sensorbind/scan"
	"github.com/albertocavalcante/sensorbind/validate"
)

// Config configures a pass.
type Config struct {
	// Generator renders binders. Required.
	Generator generator.Generator

	// Generate is passed through to the generator.
	Generate generator.Config

	// Logger receives debug output. Nil discards it.
	Logger *slog.Logger
}

// Result is the outcome of a pass.
type Result struct {
	// Units holds one generated unit per host, in first-seen host order.
	Units []*model.GeneratedUnit

	// Hosts is the model the units were generated from.
	Hosts []*model.HostBinding

	// Diagnostics lists every rejected declaration.
	Diagnostics []diag.Diagnostic
}

// OK reports whether the pass produced no diagnostics.
func (r *Result) OK() bool {
	return len(r.Diagnostics) == 0
}

// Output collects the units into a generator.Output.
func (r *Result) Output() *generator.Output {
	out := generator.NewOutput()
	for _, u := range r.Units {
		out.AddUnit(u)
	}
	return out
}

// Processor runs passes with a fixed configuration.
type Processor struct {
	cfg    Config
	logger *slog.Logger
}

// New creates a Processor.
func New(cfg Config) *Processor {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Processor{cfg: cfg, logger: logger}
}

// Process runs a pass over units. Validation failures are reported in the
// result and never abort the pass; the returned error is reserved for
// generator failures and cancellation.
func (p *Processor) Process(ctx context.Context, units []*model.CompilationUnit) (*Result, error) {
	return p.ProcessDecls(ctx, scan.Units(units))
}

// ProcessDecls runs a pass over already-scanned declarations.
func (p *Processor) ProcessDecls(ctx context.Context, decls []model.AnnotatedMethodDecl) (*Result, error) {
	if p.cfg.Generator == nil {
		return nil, fmt.Errorf("processor: no generator configured")
	}

	rep := diag.NewReporter()
	p.logger.Debug("scanned declarations", "count", len(decls))

	results := validate.All(decls, rep)
	hosts := binding.Build(results)
	p.logger.Debug("built host bindings", "hosts", len(hosts), "rejected", rep.Len())

	units, err := p.generate(ctx, hosts)
	if err != nil {
		return nil, err
	}
	for i, u := range units {
		p.logger.Debug("generated binder",
			"host", u.QualifiedHost(),
			"type", u.QualifiedTypeName(),
			"sensors", sensorNames(hosts[i]),
			"path", u.Path)
	}

	return &Result{
		Units:       units,
		Hosts:       hosts,
		Diagnostics: rep.Diagnostics(),
	}, nil
}

func (p *Processor) generate(ctx context.Context, hosts []*model.HostBinding) ([]*model.GeneratedUnit, error) {
	units := make([]*model.GeneratedUnit, len(hosts))
	gen := p.cfg.Generator
	cfg := p.cfg.Generate

	if !cfg.Parallel {
		for i, h := range hosts {
			u, err := gen.Generate(ctx, h, cfg)
			if err != nil {
				return nil, fmt.Errorf("generate %s: %w", h.Key(), err)
			}
			units[i] = u
		}
		return units, nil
	}

	// Each goroutine writes its own slot, so units stays in host order.
	g, gctx := errgroup.WithContext(ctx)
	for i, h := range hosts {
		g.Go(func() error {
			u, err := gen.Generate(gctx, h, cfg)
			if err != nil {
				return fmt.Errorf("generate %s: %w", h.Key(), err)
			}
			units[i] = u
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return units, nil
}

// sensorNames lists a host's sensor types for logging, by constant name
// where one is known.
func sensorNames(h *model.HostBinding) string {
	names := make([]string, len(h.Bindings))
	for i, b := range h.Bindings {
		names[i] = sensor.TypeName(b.SensorType)
		if names[i] == "" {
			names[i] = strconv.Itoa(b.SensorType)
		}
	}
	return strings.Join(names, ",")
}

// Process runs a single pass with cfg.
func Process(ctx context.Context, units []*model.CompilationUnit, cfg Config) (*Result, error) {
	return New(cfg).Process(ctx, units)
}
