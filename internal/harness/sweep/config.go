// Copyright 2025 Esteban Alvarez. All Rights Reserved.
//
// Created: October 2025
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sweep drives the benchmark matrix: for every workload kind, key
// count step, and candidate implementation it runs best-of-N trials and
// appends the winning measurement to the result log. The traversal order is
// fixed (workload outer, key count middle, implementation inner) so re-runs
// are comparable line by line.
package sweep

import (
	"fmt"
	"strings"
)

// Kind names a key-access pattern used to drive a candidate during
// measurement.
type Kind string

const (
	Sequential       Kind = "sequential"
	Random           Kind = "random"
	Delete           Kind = "delete"
	SequentialString Kind = "sequential_string"
	RandomString     Kind = "random_string"
	DeleteString     Kind = "delete_string"
)

// AllKinds lists every workload kind in canonical sweep order.
var AllKinds = []Kind{Sequential, Random, Delete, SequentialString, RandomString, DeleteString}

// ParseKinds parses a comma-separated workload list, preserving order. An
// empty input selects AllKinds.
func ParseKinds(csv string) ([]Kind, error) {
	if strings.TrimSpace(csv) == "" {
		return append([]Kind(nil), AllKinds...), nil
	}
	var out []Kind
	for _, part := range strings.Split(csv, ",") {
		k := Kind(strings.TrimSpace(part))
		if !k.valid() {
			return nil, fmt.Errorf("unknown workload kind: %q", part)
		}
		out = append(out, k)
	}
	return out, nil
}

func (k Kind) valid() bool {
	for _, known := range AllKinds {
		if k == known {
			return true
		}
	}
	return false
}

// Implementation identifies one external candidate: an id for reports and
// the executable implementing the candidate contract. Supplied by
// configuration and never mutated by the harness.
type Implementation struct {
	ID   string
	Path string
}

// ParseImplementations parses a comma-separated list of either "id=path" or
// bare "path" entries (the basename then serves as the id).
func ParseImplementations(csv string) ([]Implementation, error) {
	var out []Implementation
	for _, part := range strings.Split(csv, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, path, found := strings.Cut(part, "=")
		if !found {
			path = part
			if i := strings.LastIndexByte(part, '/'); i >= 0 {
				id = part[i+1:]
			} else {
				id = part
			}
		}
		if id == "" || path == "" {
			return nil, fmt.Errorf("malformed implementation entry: %q", part)
		}
		out = append(out, Implementation{ID: id, Path: path})
	}
	return out, nil
}

// Config is the full sweep matrix specification.
type Config struct {
	MinKeys   int
	MaxKeys   int
	Interval  int
	BestOutOf int
	Kinds     []Kind
	Impls     []Implementation
}

// Validate reports the first configuration error. Called before any candidate
// process is spawned; a bad matrix is the only fatal class of error the
// sweep recognizes.
func (c *Config) Validate() error {
	if c.MinKeys <= 0 {
		return fmt.Errorf("minkeys must be positive, got %d", c.MinKeys)
	}
	if c.MinKeys > c.MaxKeys {
		return fmt.Errorf("minkeys %d exceeds maxkeys %d", c.MinKeys, c.MaxKeys)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %d", c.Interval)
	}
	if c.BestOutOf < 1 {
		return fmt.Errorf("best_out_of must be at least 1, got %d", c.BestOutOf)
	}
	if len(c.Kinds) == 0 {
		return fmt.Errorf("no workload kinds configured")
	}
	for _, k := range c.Kinds {
		if !k.valid() {
			return fmt.Errorf("unknown workload kind: %q", k)
		}
	}
	if len(c.Impls) == 0 {
		return fmt.Errorf("no candidate implementations configured")
	}
	for _, impl := range c.Impls {
		if impl.ID == "" || impl.Path == "" {
			return fmt.Errorf("implementation needs both id and path: %+v", impl)
		}
	}
	return nil
}

// Cells returns the number of cells the matrix will visit.
func (c *Config) Cells() int {
	steps := 0
	for keys := c.MinKeys; keys <= c.MaxKeys; keys += c.Interval {
		steps++
	}
	return len(c.Kinds) * steps * len(c.Impls)
}
