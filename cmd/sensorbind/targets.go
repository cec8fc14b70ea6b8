// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/albertocavalcante/sensorbind/generator"
	"github.com/albertocavalcante/sensorbind/generators/java"
)

func init() {
	generator.Register(java.NewGenerator())
}

func (a *app) targetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List available generator targets",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			for _, meta := range generator.Targets() {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", meta.Name, meta.Version, meta.Description)
			}
			return tw.Flush()
		},
	}
}
