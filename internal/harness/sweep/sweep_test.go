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

package sweep

import (
	"context"
	"testing"

	"shootout/internal/harness/results"
	"shootout/internal/harness/sampler"
)

// scriptedSampler returns canned trials in sequence, cycling when exhausted.
type scriptedSampler struct {
	trials []sampler.Trial
	calls  int
}

func (s *scriptedSampler) Sample(_ context.Context, _ string, _ int, _ string) sampler.Trial {
	t := s.trials[s.calls%len(s.trials)]
	s.calls++
	return t
}

// recordingSink captures appended records in order.
type recordingSink struct {
	records []results.Record
}

func (s *recordingSink) Append(_ context.Context, rec results.Record) error {
	s.records = append(s.records, rec)
	return nil
}

func (s *recordingSink) Close() error { return nil }

func okTrial(runtime float64) sampler.Trial {
	return sampler.Trial{RuntimeSeconds: runtime, MemoryBytes: 1 << 20, OK: true}
}

// TestTrialRunnerPicksMinimumRuntime verifies best-of-N selection is the
// strict minimum among successful trials.
func TestTrialRunnerPicksMinimumRuntime(t *testing.T) {
	r := &TrialRunner{
		Sampler:   &scriptedSampler{trials: []sampler.Trial{okTrial(0.5), okTrial(0.3), okTrial(0.8)}},
		BestOutOf: 3,
	}
	best, ok := r.Best(context.Background(), Implementation{ID: "x", Path: "/bin/x"}, 1000, Sequential)
	if !ok {
		t.Fatalf("expected a successful trial")
	}
	if best.RuntimeSeconds != 0.3 {
		t.Fatalf("best runtime = %g, want 0.3", best.RuntimeSeconds)
	}
}

// TestTrialRunnerIgnoresFailedTrials verifies failed trials never win even
// when their recorded runtime would be the minimum.
func TestTrialRunnerIgnoresFailedTrials(t *testing.T) {
	failed := sampler.Trial{RuntimeSeconds: 0.01, Reason: "crashed"}
	r := &TrialRunner{
		Sampler:   &scriptedSampler{trials: []sampler.Trial{failed, okTrial(0.4), failed}},
		BestOutOf: 3,
	}
	best, ok := r.Best(context.Background(), Implementation{ID: "x", Path: "/bin/x"}, 1000, Random)
	if !ok || best.RuntimeSeconds != 0.4 {
		t.Fatalf("best = (%+v, %v), want the 0.4s trial", best, ok)
	}
}

// TestTrialRunnerAllFail verifies an all-fail cell yields "no result", not an
// error.
func TestTrialRunnerAllFail(t *testing.T) {
	failed := sampler.Trial{Reason: "timeout"}
	r := &TrialRunner{
		Sampler:   &scriptedSampler{trials: []sampler.Trial{failed}},
		BestOutOf: 3,
	}
	if _, ok := r.Best(context.Background(), Implementation{ID: "x", Path: "/bin/x"}, 1000, Delete); ok {
		t.Fatalf("expected no result when every trial fails")
	}
}

// TestDriverTraversalOrder verifies records land in the fixed order: workload
// outer, key count middle, implementation inner.
func TestDriverTraversalOrder(t *testing.T) {
	sink := &recordingSink{}
	d := &Driver{
		Config: Config{
			MinKeys:   100,
			MaxKeys:   200,
			Interval:  100,
			BestOutOf: 1,
			Kinds:     []Kind{Sequential, Random},
			Impls: []Implementation{
				{ID: "a", Path: "/bin/a"},
				{ID: "b", Path: "/bin/b"},
			},
		},
		Runner: &TrialRunner{Sampler: &scriptedSampler{trials: []sampler.Trial{okTrial(0.2)}}, BestOutOf: 1},
		Sink:   sink,
	}
	sum, err := d.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if sum.Cells != 8 || sum.Skipped != 0 {
		t.Fatalf("summary = %+v, want 8 cells, 0 skipped", sum)
	}
	want := []struct {
		workload string
		keys     int
		impl     string
	}{
		{"sequential", 100, "a"}, {"sequential", 100, "b"},
		{"sequential", 200, "a"}, {"sequential", 200, "b"},
		{"random", 100, "a"}, {"random", 100, "b"},
		{"random", 200, "a"}, {"random", 200, "b"},
	}
	if len(sink.records) != len(want) {
		t.Fatalf("got %d records, want %d", len(sink.records), len(want))
	}
	for i, w := range want {
		got := sink.records[i]
		if got.Workload != w.workload || got.KeyCount != w.keys || got.Impl != w.impl {
			t.Fatalf("record %d = %s/%d/%s, want %s/%d/%s",
				i, got.Workload, got.KeyCount, got.Impl, w.workload, w.keys, w.impl)
		}
	}
}

// TestDriverSkipsExhaustedCell verifies an all-fail cell appends nothing and
// the sweep continues to later cells.
func TestDriverSkipsExhaustedCell(t *testing.T) {
	failed := sampler.Trial{Reason: "crashed"}
	// With BestOutOf=1 and this script, cell 1 fails and cells 2 and 3
	// succeed.
	script := &scriptedSampler{trials: []sampler.Trial{failed, okTrial(0.6), okTrial(0.7)}}
	sink := &recordingSink{}
	d := &Driver{
		Config: Config{
			MinKeys:   100,
			MaxKeys:   100,
			Interval:  100,
			BestOutOf: 1,
			Kinds:     []Kind{Sequential},
			Impls: []Implementation{
				{ID: "a", Path: "/bin/a"},
				{ID: "b", Path: "/bin/b"},
				{ID: "c", Path: "/bin/c"},
			},
		},
		Runner: &TrialRunner{Sampler: script, BestOutOf: 1},
		Sink:   sink,
	}
	sum, err := d.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if sum.Cells != 3 || sum.Skipped != 1 {
		t.Fatalf("summary = %+v, want 3 cells with 1 skipped", sum)
	}
	if len(sink.records) != 2 {
		t.Fatalf("got %d records, want 2", len(sink.records))
	}
	if sink.records[0].Impl != "b" || sink.records[1].Impl != "c" {
		t.Fatalf("surviving records = %s, %s; want b then c", sink.records[0].Impl, sink.records[1].Impl)
	}
}

// TestDriverHonorsCancellation verifies cancellation stops the sweep between
// cells.
func TestDriverHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d := &Driver{
		Config: Config{
			MinKeys:   100,
			MaxKeys:   100,
			Interval:  100,
			BestOutOf: 1,
			Kinds:     []Kind{Sequential},
			Impls:     []Implementation{{ID: "a", Path: "/bin/a"}},
		},
		Runner: &TrialRunner{Sampler: &scriptedSampler{trials: []sampler.Trial{okTrial(0.2)}}, BestOutOf: 1},
		Sink:   &recordingSink{},
	}
	if _, err := d.Run(ctx); err == nil {
		t.Fatalf("expected context error from canceled sweep")
	}
}

// TestConfigValidate exercises the fatal configuration checks.
func TestConfigValidate(t *testing.T) {
	valid := Config{
		MinKeys:   100,
		MaxKeys:   200,
		Interval:  100,
		BestOutOf: 2,
		Kinds:     []Kind{Sequential},
		Impls:     []Implementation{{ID: "a", Path: "/bin/a"}},
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero minkeys", func(c *Config) { c.MinKeys = 0 }},
		{"minkeys above maxkeys", func(c *Config) { c.MinKeys = 300 }},
		{"zero interval", func(c *Config) { c.Interval = 0 }},
		{"negative interval", func(c *Config) { c.Interval = -1 }},
		{"zero best_out_of", func(c *Config) { c.BestOutOf = 0 }},
		{"no kinds", func(c *Config) { c.Kinds = nil }},
		{"bad kind", func(c *Config) { c.Kinds = []Kind{"sequentialish"} }},
		{"no impls", func(c *Config) { c.Impls = nil }},
		{"impl missing path", func(c *Config) { c.Impls = []Implementation{{ID: "a"}} }},
	}
	for _, tc := range cases {
		cfg := valid
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
	}
}

// TestParseKinds verifies CSV parsing, ordering, and the all-kinds default.
func TestParseKinds(t *testing.T) {
	kinds, err := ParseKinds("random, delete")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(kinds) != 2 || kinds[0] != Random || kinds[1] != Delete {
		t.Fatalf("kinds = %v, want [random delete]", kinds)
	}
	if _, err := ParseKinds("bogus"); err == nil {
		t.Fatalf("expected error for unknown kind")
	}
	all, err := ParseKinds("")
	if err != nil {
		t.Fatalf("parse default: %v", err)
	}
	if len(all) != len(AllKinds) {
		t.Fatalf("default kinds = %v, want all %d", all, len(AllKinds))
	}
}

// TestParseImplementations verifies id=path entries and the bare-path
// basename fallback.
func TestParseImplementations(t *testing.T) {
	impls, err := ParseImplementations("stl=./benches/stl_map, ./benches/google_dense")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(impls) != 2 {
		t.Fatalf("got %d implementations, want 2", len(impls))
	}
	if impls[0].ID != "stl" || impls[0].Path != "./benches/stl_map" {
		t.Fatalf("first = %+v", impls[0])
	}
	if impls[1].ID != "google_dense" || impls[1].Path != "./benches/google_dense" {
		t.Fatalf("second = %+v", impls[1])
	}
	if _, err := ParseImplementations("=nope"); err == nil {
		t.Fatalf("expected error for empty id")
	}
}
