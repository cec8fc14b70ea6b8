// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package binding folds validated declarations into per-host models.
package binding

import (
	"fmt"

	"github.com/albertocavalcante/sensorbind/model"
	"github.com/albertocavalcante/sensorbind/validate"
)

// Build groups accepted results by host. Hosts appear in the order their
// first accepted declaration was seen, and each host's bindings keep
// declaration order with ordinals 0..n-1. Rejected results are skipped, so
// a host whose declarations all failed produces no HostBinding.
func Build(results []validate.Result) []*model.HostBinding {
	var hosts []*model.HostBinding
	index := make(map[model.HostKey]*model.HostBinding)

	for _, res := range results {
		switch r := res.(type) {
		case validate.Accepted:
			key := r.Decl.HostKey()
			h, ok := index[key]
			if !ok {
				h = &model.HostBinding{Package: key.Package, Host: key.Host}
				index[key] = h
				hosts = append(hosts, h)
			}
			h.Bindings = append(h.Bindings, listenerOf(r.Decl, len(h.Bindings)))
		case validate.Rejected:
			// already reported
		default:
			panic(fmt.Sprintf("binding: unexpected validation result %T", res))
		}
	}
	return hosts
}

func listenerOf(d model.AnnotatedMethodDecl, ordinal int) model.ListenerBinding {
	if d.Marker.SensorType == model.SensorTypeUnset {
		panic(fmt.Sprintf("binding: accepted declaration %s.%s has no sensor type", d.Host, d.Method))
	}
	return model.ListenerBinding{
		SensorType: d.Marker.SensorType,
		Delay:      d.Marker.DelayOrDefault(),
		Ordinal:    ordinal,
		Method:     d.Method,
	}
}
