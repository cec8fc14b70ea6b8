// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package diag collects validation failures produced during a pipeline pass.
//
// A Reporter is created per pass and handed back to the caller; there is no
// package-level sink. Reporting never aborts the pass.
package diag

import (
	"fmt"
	"sync"

	"github.com/albertocavalcante/sensorbind/model"
)

// Kind classifies a diagnostic.
type Kind int

const (
	// MissingSensorType: the marker has no sensor type.
	MissingSensorType Kind = iota + 1

	// InvalidParameterArity: the method does not take exactly one parameter.
	InvalidParameterArity

	// InvalidParameterType: the single parameter is not a SensorEvent.
	InvalidParameterType
)

func (k Kind) String() string {
	switch k {
	case MissingSensorType:
		return "MissingSensorType"
	case InvalidParameterArity:
		return "InvalidParameterArity"
	case InvalidParameterType:
		return "InvalidParameterType"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Diagnostic is one reported failure.
type Diagnostic struct {
	Kind Kind

	// Message is the user-facing text. Tests compare it verbatim.
	Message string

	// Location is "Host.method" for the offending declaration.
	Location string

	// Pos is the declaration's source position, if known.
	Pos model.Position
}

// Error implements error so a single diagnostic can travel as one.
func (d Diagnostic) Error() string {
	if d.Pos.IsValid() || d.Pos.File != "" {
		return d.Pos.String() + ": " + d.Message
	}
	return d.Message
}

// Reporter accumulates diagnostics. It is safe for concurrent use; when used
// from a single goroutine it preserves report order.
type Reporter struct {
	mu          sync.Mutex
	diagnostics []Diagnostic
}

// NewReporter returns an empty Reporter.
func NewReporter() *Reporter {
	return &Reporter{}
}

// Report records d.
func (r *Reporter) Report(d Diagnostic) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.diagnostics = append(r.diagnostics, d)
}

// Diagnostics returns a copy of everything reported so far.
func (r *Reporter) Diagnostics() []Diagnostic {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Diagnostic, len(r.diagnostics))
	copy(out, r.diagnostics)
	return out
}

// Len returns the number of diagnostics.
func (r *Reporter) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.diagnostics)
}
