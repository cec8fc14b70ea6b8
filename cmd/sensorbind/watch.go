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
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/albertocavalcante/sensorbind/source"
)

const defaultDebounce = 300 * time.Millisecond

func (a *app) watchCmd() *cobra.Command {
	var debounce time.Duration
	cmd := &cobra.Command{
		Use:   "watch [paths...]",
		Short: "Regenerate binders whenever sources change",
		Long: `Run generate once, then watch the given paths and run it again after
every burst of changes to .java files or declaration feeds.

Changes below the output root are ignored. Stop with Ctrl+C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.watch(ctx, pathsOrDefault(args), debounce)
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", defaultDebounce, "quiet period before regenerating")
	return cmd
}

// watch regenerates on change until ctx is done.
func (a *app) watch(ctx context.Context, paths []string, debounce time.Duration) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	skip := a.v.GetStringSlice("skip")
	for _, p := range paths {
		if err := a.addWatch(w, p, skip); err != nil {
			return err
		}
	}

	a.regenerate(ctx, paths)
	a.logger.Info("watching for changes", "paths", paths)

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Create) {
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() && !skipped(filepath.Base(ev.Name), skip) {
					if err := a.addWatch(w, ev.Name, skip); err != nil {
						a.logger.Warn("watch new directory", "path", ev.Name, "err", err)
					}
					continue
				}
			}
			if !a.relevant(ev.Name) {
				continue
			}
			a.logger.Debug("source changed", "path", ev.Name, "op", ev.Op.String())
			pending = time.After(debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			a.logger.Warn("watcher error", "err", err)
		case <-pending:
			pending = nil
			a.regenerate(ctx, paths)
		}
	}
}

// regenerate runs one pass and logs instead of failing.
func (a *app) regenerate(ctx context.Context, paths []string) {
	switch err := a.run(ctx, paths); {
	case err == nil:
		a.logger.Info("binders up to date")
	case errors.Is(err, errDiagnostics):
		a.logger.Warn("binders generated with diagnostics", "err", err)
	case ctx.Err() != nil:
	default:
		a.logger.Error("generate", "err", err)
	}
}

// addWatch watches root and, for directories, every non-skipped directory
// below it. A file is watched through its parent so editors that replace
// files on save keep being seen.
func (a *app) addWatch(w *fsnotify.Watcher, root string, skip []string) error {
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}
	if !info.IsDir() {
		return w.Add(filepath.Dir(root))
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && skipped(d.Name(), skip) {
			return filepath.SkipDir
		}
		if a.underOutput(path) {
			return filepath.SkipDir
		}
		if err := w.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

// relevant reports whether a change to path can affect the output.
func (a *app) relevant(path string) bool {
	return source.KindOf(path) != source.Unsupported && !a.underOutput(path)
}

func (a *app) underOutput(path string) bool {
	out := a.v.GetString("output")
	if out == "" {
		return false
	}
	return within(path, out)
}

// within reports whether path is dir or lies below it.
func within(path, dir string) bool {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return false
	}
	return rel == "." || rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func skipped(name string, skip []string) bool {
	return strings.HasPrefix(name, ".") || slices.Contains(skip, name)
}
