// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/albertocavalcante/sensorbind/generator"
	"github.com/albertocavalcante/sensorbind/processor"
	"github.com/albertocavalcante/sensorbind/source"
)

// errDiagnostics marks a pass that rejected at least one declaration.
var errDiagnostics = errors.New("validation failed")

func (a *app) generateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate [paths...]",
		Short: "Generate binders for annotated sources",
		Long: `Load every .java file and *.decls.json / *.decls.yaml feed under the given
paths (default: the current directory), validate the @OnSensorChanged
methods and generate one binder per host.

Diagnostics are printed to stderr and make the command exit non-zero.
Binders for valid hosts are still generated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context(), pathsOrDefault(args))
		},
	}
}

// run performs one load, process and emit cycle.
func (a *app) run(ctx context.Context, paths []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	gen, err := generator.Get(a.v.GetString("target"))
	if err != nil {
		return err
	}
	cfg := a.generatorConfig()

	loaded, err := source.Load(ctx, source.Options{
		Paths:    paths,
		SkipDirs: a.v.GetStringSlice("skip"),
	})
	if err != nil {
		return fmt.Errorf("load sources: %w", err)
	}
	a.logger.Debug("loaded sources", "files", len(loaded.Files), "units", len(loaded.Units))

	res, err := processor.Process(ctx, loaded.Units, processor.Config{
		Generator: gen,
		Generate:  cfg,
		Logger:    a.logger,
	})
	if err != nil {
		return err
	}

	for _, d := range res.Diagnostics {
		fmt.Fprintln(a.stderr, d.Error())
	}
	if err := a.emit(res, cfg.OutputDir); err != nil {
		return err
	}
	if !res.OK() {
		return fmt.Errorf("%w: %d diagnostic(s)", errDiagnostics, len(res.Diagnostics))
	}
	return nil
}

func (a *app) generatorConfig() generator.Config {
	return generator.Config{
		OutputDir: a.v.GetString("output"),
		Header:    a.v.GetString("header"),
		Parallel:  a.v.GetBool("parallel"),
		Options:   a.v.GetStringMapString("options"),
	}
}

// emit writes the generated units under dir, or prints them when dir is
// empty.
func (a *app) emit(res *processor.Result, dir string) error {
	out := res.Output()
	if dir == "" {
		for i, name := range out.Names() {
			if i > 0 {
				fmt.Fprintln(a.stdout)
			}
			fmt.Fprintf(a.stdout, "// %s\n", name)
			if _, err := a.stdout.Write(out.Files[name]); err != nil {
				return fmt.Errorf("write %s: %w", name, err)
			}
		}
		return nil
	}

	written, err := out.WriteDir(dir)
	if err != nil {
		return err
	}
	for _, path := range written {
		a.logger.Info("wrote binder", "path", path)
	}
	return nil
}

func pathsOrDefault(args []string) []string {
	if len(args) == 0 {
		return []string{"."}
	}
	return args
}
