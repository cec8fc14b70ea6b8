// SPDX-License-Identifier: MIT

// Package testutil provides testing utilities for sensorbind.
package testutil

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

// DiagnosticsFile is the archive member listing expected diagnostics, one
// message per line.
const DiagnosticsFile = "diagnostics"

// Case represents a parsed test case from a txtar archive.
type Case struct {
	// Name is the test case name (typically the filename without extension).
	Name string

	// Description is the first comment block before any files.
	Description string

	// Flags contains any flags parsed from "Flags: ..." line in the description.
	Flags []string

	// Inputs maps "input/<name>" members, keyed by <name>, to their content.
	Inputs map[string][]byte

	// Want maps relative paths (e.g., "test/Test$$SensorBinder.java") to
	// expected content.
	Want map[string][]byte

	// Diagnostics are the expected diagnostic messages, in order.
	Diagnostics []string

	// Path and Archive are set by LoadTestCases for golden updates.
	Path    string
	Archive *txtar.Archive
}

// ParseCase parses a txtar archive into a test Case.
// The archive should contain:
//   - A description comment (text before first file)
//   - One or more "input/<file>" members (.java sources or declaration feeds)
//   - Zero or more "want/<path>" files with expected output
//   - An optional "diagnostics" file with expected messages
//
// An archive must expect something: output files, diagnostics, or both.
func ParseCase(name string, ar *txtar.Archive) (*Case, error) {
	c := &Case{
		Name:        name,
		Description: string(ar.Comment),
		Inputs:      make(map[string][]byte),
		Want:        make(map[string][]byte),
	}

	c.parseFlags()

	for _, f := range ar.Files {
		switch {
		case strings.HasPrefix(f.Name, "input/"):
			c.Inputs[strings.TrimPrefix(f.Name, "input/")] = f.Data
		case strings.HasPrefix(f.Name, "want/"):
			c.Want[strings.TrimPrefix(f.Name, "want/")] = f.Data
		case f.Name == DiagnosticsFile:
			for _, line := range strings.Split(string(f.Data), "\n") {
				if line = strings.TrimSpace(line); line != "" {
					c.Diagnostics = append(c.Diagnostics, line)
				}
			}
		default:
			return nil, fmt.Errorf("unexpected file in archive: %q (expected input/*, want/* or %s)", f.Name, DiagnosticsFile)
		}
	}

	if len(c.Inputs) == 0 {
		return nil, fmt.Errorf("missing input/* files in archive")
	}

	if len(c.Want) == 0 && len(c.Diagnostics) == 0 {
		return nil, fmt.Errorf("archive expects neither want/* files nor %s", DiagnosticsFile)
	}

	return c, nil
}

// parseFlags extracts flags from "Flags: ..." line in the description.
func (c *Case) parseFlags() {
	for _, line := range strings.Split(c.Description, "\n") {
		line = strings.TrimSpace(line)
		if flagStr, ok := strings.CutPrefix(line, "Flags:"); ok {
			for _, f := range strings.Split(flagStr, ",") {
				if f = strings.TrimSpace(f); f != "" {
					c.Flags = append(c.Flags, f)
				}
			}
			break
		}
	}
}

// GenerateFunc runs the engine over inputs. It returns generated files by
// relative path and the diagnostic messages in report order.
type GenerateFunc func(inputs map[string][]byte, flags []string) (files map[string][]byte, diagnostics []string, err error)

// Run executes the test case using the provided generate function.
// Generated files must match byte for byte; diagnostics must match in order.
func (c *Case) Run(t *testing.T, generate GenerateFunc) {
	t.Helper()

	got, diags, err := generate(c.Inputs, c.Flags)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if diff := cmp.Diff(c.Diagnostics, diags); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}

	// Check for missing expected files
	for wantFile := range c.Want {
		if _, ok := got[wantFile]; !ok {
			t.Errorf("missing output file: %q", wantFile)
		}
	}

	// Check for unexpected files
	for gotFile := range got {
		if _, ok := c.Want[gotFile]; !ok {
			t.Errorf("unexpected output file: %q", gotFile)
		}
	}

	for wantFile, wantContent := range c.Want {
		gotContent, ok := got[wantFile]
		if !ok {
			continue // Already reported as missing
		}
		if diff := cmp.Diff(string(wantContent), string(gotContent)); diff != "" {
			t.Errorf("file %q mismatch (-want +got):\n%s", wantFile, diff)
		}
	}
}

// UpdateArchive updates a txtar archive with new generated content.
// Used for golden file updates with -update flag.
func UpdateArchive(ar *txtar.Archive, got map[string][]byte, diagnostics []string) *txtar.Archive {
	result := &txtar.Archive{
		Comment: ar.Comment,
	}

	for _, f := range ar.Files {
		if strings.HasPrefix(f.Name, "input/") {
			result.Files = append(result.Files, f)
		}
	}

	if len(diagnostics) > 0 {
		result.Files = append(result.Files, txtar.File{
			Name: DiagnosticsFile,
			Data: []byte(strings.Join(diagnostics, "\n") + "\n"),
		})
	}

	// Add want/* files in sorted order for determinism
	var wantFiles []string
	for name := range got {
		wantFiles = append(wantFiles, name)
	}
	sort.Strings(wantFiles)

	for _, name := range wantFiles {
		result.Files = append(result.Files, txtar.File{
			Name: "want/" + name,
			Data: got[name],
		})
	}

	return result
}

// FormatArchive formats an archive to bytes.
func FormatArchive(ar *txtar.Archive) []byte {
	return txtar.Format(ar)
}

// LoadTestCases loads all txtar test cases from a directory.
func LoadTestCases(t *testing.T, dir string) []*Case {
	t.Helper()

	pattern := filepath.Join(dir, "*.txtar")
	files, err := filepath.Glob(pattern)
	if err != nil {
		t.Fatalf("glob %q: %v", pattern, err)
	}

	if len(files) == 0 {
		t.Fatalf("no txtar files found in %q", dir)
	}

	var cases []*Case
	for _, file := range files {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatalf("parse %q: %v", file, err)
		}

		name := strings.TrimSuffix(filepath.Base(file), ".txtar")
		c, err := ParseCase(name, ar)
		if err != nil {
			t.Fatalf("parse case %q: %v", name, err)
		}
		c.Path = file
		c.Archive = ar

		cases = append(cases, c)
	}

	// Sort by name for determinism
	sort.Slice(cases, func(i, j int) bool {
		return cases[i].Name < cases[j].Name
	})

	return cases
}

// StripHeader removes the leading "//" header comment from generated code.
// This allows tests to compare just the meaningful code.
func StripHeader(content []byte) []byte {
	lines := bytes.Split(content, []byte("\n"))
	var result [][]byte
	inHeader := true

	for _, line := range lines {
		if inHeader {
			if bytes.HasPrefix(line, []byte("//")) || len(line) == 0 {
				continue
			}
			inHeader = false
		}
		result = append(result, line)
	}

	return bytes.Join(result, []byte("\n"))
}
