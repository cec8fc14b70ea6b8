// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command sensorbind generates SensorBinder classes for methods annotated
// with @OnSensorChanged.
//
// Usage:
//
//	sensorbind generate [flags] [paths...]
//	sensorbind watch [flags] [paths...]
//	sensorbind targets
//	sensorbind version
//
// Flags:
//
//	-o, --output     Output source root (default: stdout)
//	-t, --target     Generator target (default: java)
//	--header         Header comment for generated files
//	--parallel       Render hosts concurrently
//	--skip           Directories not to descend into (default: build)
//	--config         Config file (default: ./sensorbind.yaml)
//	--verbose        Verbose output
//
// Every flag can also be set in the config file or as a SENSORBIND_*
// environment variable (e.g., SENSORBIND_OUTPUT).
package main

import (
	"fmt"
	"os"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
