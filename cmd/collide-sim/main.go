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

// Package main sweeps the linear-probing collision simulator across load
// factors and prints the clustering statistics per run, followed by the two
// ordered pair lists, (load_factor, longest_chain) and (load_factor,
// average_chain_length), that the plotting scripts consume.
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"shootout"
	"shootout/hasher"
)

// maxChainKeysShown bounds the diagnostic key dump; near-full tables produce
// chains spanning most of the array.
const maxChainKeysShown = 16

func main() {
	var (
		tableSize   = flag.Int("table_size", 1_000_000, "Number of slots in the simulated table")
		loadFactors = flag.String("load_factors", "", "Comma-separated load factors to sweep (empty = 0.01,0.05,0.1,0.2,0.5,0.75,0.99,0.999)")
		hashName    = flag.String("hash", "siphash", fmt.Sprintf("Hash function under study: %s", strings.Join(hasher.Names(), "|")))
		seed        = flag.Uint64("seed", 1, "Seed for the hash function's key material")
	)
	flag.Parse()

	factors, err := parseLoadFactors(*loadFactors)
	if err != nil {
		log.Fatalf("bad -load_factors: %v", err)
	}
	h, err := hasher.New(*hashName, *seed)
	if err != nil {
		log.Fatalf("bad -hash: %v", err)
	}

	points, sweepErr := shootout.LoadFactorSweep(*tableSize, factors, h)
	for _, p := range points {
		fmt.Printf("load_factor=%g total_probes=%d chains=%d longest_chain=%d average_chain=%g\n",
			p.LoadFactor, p.Stats.TotalProbes, p.Stats.Chains, p.Stats.LongestChain, p.Stats.AverageChainLength)
		fmt.Printf("  longest chain keys: %s\n", formatKeys(p.Stats.LongestChainKeys))
	}
	if sweepErr != nil {
		// Table exhaustion is fatal for the runs past this point, not for
		// the ones already printed.
		log.Printf("sweep stopped early: %v", sweepErr)
	}

	longest := make([]string, 0, len(points))
	average := make([]string, 0, len(points))
	for _, p := range points {
		longest = append(longest, fmt.Sprintf("(%g, %d)", p.LoadFactor, p.Stats.LongestChain))
		average = append(average, fmt.Sprintf("(%g, %g)", p.LoadFactor, p.Stats.AverageChainLength))
	}
	fmt.Printf("longest_chain: [%s]\n", strings.Join(longest, ", "))
	fmt.Printf("average_chain: [%s]\n", strings.Join(average, ", "))
}

func parseLoadFactors(csv string) ([]float64, error) {
	if strings.TrimSpace(csv) == "" {
		return append([]float64(nil), shootout.DefaultLoadFactors...), nil
	}
	var out []float64
	for _, part := range strings.Split(csv, ",") {
		lf, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("load factor %q: %w", part, err)
		}
		out = append(out, lf)
	}
	return out, nil
}

func formatKeys(keys []int) string {
	shown := keys
	truncated := false
	if len(shown) > maxChainKeysShown {
		shown = shown[:maxChainKeysShown]
		truncated = true
	}
	parts := make([]string, len(shown))
	for i, k := range shown {
		parts[i] = strconv.Itoa(k)
	}
	s := strings.Join(parts, " ")
	if truncated {
		s += fmt.Sprintf(" ... (%d total)", len(keys))
	}
	return s
}
