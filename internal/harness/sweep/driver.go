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
	"fmt"
	"log"

	"shootout/internal/harness/results"
	"shootout/internal/harness/sampler"
	"shootout/internal/harness/telemetry"
)

// Runner produces the best trial for one sweep cell. *TrialRunner is the
// production implementation.
type Runner interface {
	Best(ctx context.Context, impl Implementation, keyCount int, kind Kind) (trial sampler.Trial, ok bool)
}

// Driver walks the sweep matrix sequentially. Cells run one at a time on
// purpose: each candidate is expected to occupy a large share of RAM, and
// running cells concurrently would contaminate the memory samples.
type Driver struct {
	Config Config
	Runner Runner
	Sink   results.Sink
}

// Summary is what a completed sweep reports: how many cells ran and how many
// were skipped because no trial succeeded.
type Summary struct {
	Cells   int
	Skipped int
}

// Run iterates workloads (outer), key counts (middle), and implementations
// (inner), appending one record per successful cell in traversal order. A
// cell whose trials all failed is logged and skipped; only configuration
// errors, sink failures, and cancellation abort the sweep.
func (d *Driver) Run(ctx context.Context) (Summary, error) {
	var sum Summary
	if err := d.Config.Validate(); err != nil {
		return sum, fmt.Errorf("sweep config: %w", err)
	}
	for _, kind := range d.Config.Kinds {
		for keys := d.Config.MinKeys; keys <= d.Config.MaxKeys; keys += d.Config.Interval {
			for _, impl := range d.Config.Impls {
				if err := ctx.Err(); err != nil {
					return sum, err
				}
				sum.Cells++
				telemetry.RecordCell()

				trial, ok := d.Runner.Best(ctx, impl, keys, kind)
				if !ok {
					sum.Skipped++
					telemetry.RecordSkippedCell()
					log.Printf("skipping cell %s/%d/%s: no successful trial", kind, keys, impl.ID)
					continue
				}
				rec := results.Record{
					Workload:       string(kind),
					KeyCount:       keys,
					Impl:           impl.ID,
					MemoryBytes:    trial.MemoryBytes,
					RuntimeSeconds: trial.RuntimeSeconds,
					Aux:            trial.Aux,
				}
				if err := d.Sink.Append(ctx, rec); err != nil {
					return sum, fmt.Errorf("append result for %s/%d/%s: %w", kind, keys, impl.ID, err)
				}
				fmt.Printf("%s,%d,%s,%d,%0.6f\n",
					rec.Workload, rec.KeyCount, rec.Impl, rec.MemoryBytes, rec.RuntimeSeconds)
			}
		}
	}
	return sum, nil
}
