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

import (
	"fmt"

	"shootout/hasher"
)

// DefaultLoadFactors is the load-factor sweep used when none is configured.
// The top entries sit deliberately close to full so clustering blowup is
// visible.
var DefaultLoadFactors = []float64{0.01, 0.05, 0.1, 0.2, 0.5, 0.75, 0.99, 0.999}

// LoadPoint pairs one swept load factor with the statistics of its run.
type LoadPoint struct {
	LoadFactor float64
	Stats      ChainStats
}

// LoadFactorSweep runs Simulate once per load factor, in the given order, and
// returns the ordered (load factor, stats) points. Each run is independent
// and side-effect free.
//
// The sweep stops at the first failing run and returns the points gathered so
// far along with the error naming the load factor that triggered it; with an
// ascending sweep every later factor would exhaust the table too.
func LoadFactorSweep(tableSize int, loadFactors []float64, h hasher.Hasher) ([]LoadPoint, error) {
	points := make([]LoadPoint, 0, len(loadFactors))
	for _, lf := range loadFactors {
		res, err := Simulate(tableSize, lf, h)
		if err != nil {
			return points, fmt.Errorf("load factor sweep: %w", err)
		}
		points = append(points, LoadPoint{LoadFactor: lf, Stats: res.Stats()})
	}
	return points, nil
}
