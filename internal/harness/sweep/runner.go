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
	"log"

	"shootout/internal/harness/sampler"
	"shootout/internal/harness/telemetry"
)

// Sampler measures one candidate execution. *sampler.ProcessSampler is the
// production implementation; tests substitute scripted ones.
type Sampler interface {
	Sample(ctx context.Context, executable string, keyCount int, workload string) sampler.Trial
}

// TrialRunner repeats a measurement to suppress scheduler and OS noise and
// keeps the best sample. Selection is strictly minimum runtime among
// successful trials, no averaging: the sweep is deliberately biased toward
// best-case throughput rather than typical-case latency.
type TrialRunner struct {
	Sampler   Sampler
	BestOutOf int
}

// Best runs BestOutOf trials for one cell and returns the fastest successful
// one. The second return is false when every trial failed; that is an
// expected outcome under resource pressure, not an error.
func (r *TrialRunner) Best(ctx context.Context, impl Implementation, keyCount int, kind Kind) (sampler.Trial, bool) {
	var best sampler.Trial
	found := false
	for attempt := 0; attempt < r.BestOutOf; attempt++ {
		trial := r.Sampler.Sample(ctx, impl.Path, keyCount, string(kind))
		telemetry.RecordTrial(trial.OK, trial.RuntimeSeconds)
		if !trial.OK {
			log.Printf("trial %d/%d failed for %s %s/%d: %s",
				attempt+1, r.BestOutOf, impl.ID, kind, keyCount, trial.Reason)
			continue
		}
		if !found || trial.RuntimeSeconds < best.RuntimeSeconds {
			best = trial
			found = true
		}
	}
	return best, found
}
