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

// Package shootout provides the analysis half of the hash-table shootout: a
// linear-probing insertion simulator over a fixed-size slot array and the
// clustering statistics derived from its final occupancy. The measurement half
// (spawning and sampling candidate hash-table processes) lives under
// internal/harness.
package shootout

import (
	"errors"
	"fmt"
	"strconv"

	"shootout/hasher"
)

// ErrTableExhausted reports that a probe sequence could not find an empty
// slot. It is returned (wrapped with the offending load factor) instead of
// letting the probe loop run forever.
var ErrTableExhausted = errors.New("probe table exhausted")

// EmptySlot marks an unoccupied position in a slot array.
const EmptySlot = -1

// ProbeResult is the outcome of one simulation run. Slots holds, per table
// position, either EmptySlot or the index of the key occupying it.
// ProbeCounts holds the number of probes (>= 1) each key took to land, in key
// order. The result is a pure function of (tableSize, loadFactor, hasher).
type ProbeResult struct {
	TableSize   int
	LoadFactor  float64
	Hash        string
	Slots       []int
	ProbeCounts []int
	TotalProbes int
}

// Occupied returns the number of occupied slots, which equals the number of
// keys inserted.
func (r *ProbeResult) Occupied() int { return len(r.ProbeCounts) }

// Simulate inserts keys "0" .. strconv.Itoa(n-1), n = floor(tableSize *
// loadFactor), in ascending order into a fresh table of tableSize slots using
// linear probing: home slot h.Hash(key) mod tableSize, stride +1 with
// wraparound. The table never resizes; studying a non-resizing table is the
// point.
//
// A load factor >= 1 is rejected up front as ErrTableExhausted, and each
// insertion is additionally bounded to tableSize probes, so a degenerate hash
// function turns into a reported failure rather than an unbounded loop.
func Simulate(tableSize int, loadFactor float64, h hasher.Hasher) (*ProbeResult, error) {
	if tableSize <= 0 {
		return nil, fmt.Errorf("table size must be positive, got %d", tableSize)
	}
	if loadFactor < 0 {
		return nil, fmt.Errorf("load factor must be non-negative, got %g", loadFactor)
	}
	keys := int(float64(tableSize) * loadFactor)
	if keys >= tableSize {
		return nil, fmt.Errorf("%w at load factor %g (%d keys into %d slots)",
			ErrTableExhausted, loadFactor, keys, tableSize)
	}

	res := &ProbeResult{
		TableSize:   tableSize,
		LoadFactor:  loadFactor,
		Hash:        h.Name(),
		Slots:       make([]int, tableSize),
		ProbeCounts: make([]int, 0, keys),
	}
	for i := range res.Slots {
		res.Slots[i] = EmptySlot
	}

	for key := 0; key < keys; key++ {
		slot := int(h.Hash(strconv.Itoa(key)) % uint64(tableSize))
		probes := 1
		for res.Slots[slot] != EmptySlot {
			if probes >= tableSize {
				return nil, fmt.Errorf("%w at load factor %g (key %d exceeded %d probes)",
					ErrTableExhausted, loadFactor, key, tableSize)
			}
			slot = (slot + 1) % tableSize
			probes++
		}
		res.Slots[slot] = key
		res.ProbeCounts = append(res.ProbeCounts, probes)
		res.TotalProbes += probes
	}
	return res, nil
}

// Stats runs the chain analyzer over the result's final occupancy and carries
// the simulator-accumulated probe total into the returned statistics.
func (r *ProbeResult) Stats() ChainStats {
	stats := AnalyzeChains(r.Slots)
	stats.TotalProbes = r.TotalProbes
	return stats
}
