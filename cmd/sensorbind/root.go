// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix      = "SENSORBIND"
	envConfigFile  = envPrefix + "_CONFIG"
	defaultConfig  = "sensorbind"
	defaultTarget  = "java"
	defaultSkipDir = "build"
)

// app holds the state shared by all commands of one invocation.
type app struct {
	v       *viper.Viper
	stdout  io.Writer
	stderr  io.Writer
	cfgFile string
	logger  *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{
		v:      viper.New(),
		stdout: stdout,
		stderr: stderr,
		logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}

	root := &cobra.Command{
		Use:   "sensorbind",
		Short: "Generate SensorBinder classes for @OnSensorChanged methods",
		Long: `sensorbind reads Java sources (or JSON/YAML declaration feeds), validates
every method annotated with @OnSensorChanged and generates one
<Host>$$SensorBinder class per host type.

Configuration is read from flags, SENSORBIND_* environment variables and
an optional sensorbind.yaml, in that order of precedence.

Examples:
  sensorbind generate ./app/src/main/java -o ./build/generated
  sensorbind watch ./app/src/main/java -o ./build/generated
  sensorbind targets`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.initConfig()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default ./sensorbind.yaml, or "+envConfigFile+")")
	flags.StringP("output", "o", "", "output source root (default: stdout)")
	flags.StringP("target", "t", defaultTarget, "generator target")
	flags.String("header", "", "header comment for generated files")
	flags.Bool("parallel", false, "render hosts concurrently")
	flags.StringSlice("skip", []string{defaultSkipDir}, "directories not to descend into")
	flags.Bool("verbose", false, "verbose output")
	for _, name := range []string{"output", "target", "header", "parallel", "skip", "verbose"} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}

	root.AddCommand(
		a.generateCmd(),
		a.watchCmd(),
		a.targetsCmd(),
		a.versionCmd(),
	)
	return root
}

// initConfig reads the config file and environment and sets up logging.
func (a *app) initConfig() error {
	explicit := a.cfgFile
	if explicit == "" {
		explicit = os.Getenv(envConfigFile)
	}
	if explicit != "" {
		a.v.SetConfigFile(explicit)
	} else {
		a.v.AddConfigPath(".")
		a.v.SetConfigName(defaultConfig)
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	level := slog.LevelInfo
	if a.v.GetBool("verbose") {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("using config file", "path", used)
	}
	return nil
}
