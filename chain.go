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

package shootout

// ChainStats summarizes the clustering of a final slot array. A "chain" here
// is a maximal run of contiguously occupied slots, a proxy for clustering
// severity under linear probing, not a linked-list bucket chain.
type ChainStats struct {
	// LongestChain is the length of the longest occupied run.
	LongestChain int
	// LongestChainKeys is the key sequence composing that run, kept for
	// diagnostic inspection of which insertions piled up.
	LongestChainKeys []int
	// Chains is the number of maximal occupied runs.
	Chains int
	// AverageChainLength is occupied slots divided by Chains (0 when the
	// array is empty).
	AverageChainLength float64
	// TotalProbes is accumulated by the simulator during insertion; the
	// analyzer does not recompute it.
	TotalProbes int
}

// AnalyzeChains scans slots in index order and identifies maximal runs of
// occupied positions. The scan is non-circular: a run touching the last index
// is not merged with one starting at index 0. That simplification is
// intentional and matched to how the sweep's statistics are interpreted.
func AnalyzeChains(slots []int) ChainStats {
	var stats ChainStats
	occupied := 0
	current := 0
	var currentKeys []int

	endRun := func() {
		if current == 0 {
			return
		}
		stats.Chains++
		if current > stats.LongestChain {
			stats.LongestChain = current
			stats.LongestChainKeys = append([]int(nil), currentKeys...)
		}
		current = 0
		currentKeys = currentKeys[:0]
	}

	for _, key := range slots {
		if key != EmptySlot {
			occupied++
			current++
			currentKeys = append(currentKeys, key)
			continue
		}
		endRun()
	}
	endRun() // a run ending at the last index still counts

	if stats.Chains > 0 {
		stats.AverageChainLength = float64(occupied) / float64(stats.Chains)
	}
	return stats
}
