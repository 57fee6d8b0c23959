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

// Package results defines the persisted unit of the benchmark sweep and the
// sinks that record it. The primary sink is an append-only JSONL file whose
// lines are independently parseable, so plotting tools can resume reading a
// log that an interrupted sweep left behind.
package results

import (
	"context"
	"encoding/json"
)

// Record is one sweep cell's outcome: the best-of-N trial for a (workload,
// key count, implementation) triple. It is written once and never mutated.
//
// Aux carries the candidate's optional second stdout line (implementation
// specific counters such as collision totals) through unmodified; the harness
// does not interpret it.
type Record struct {
	Workload       string          `json:"workload"`
	KeyCount       int             `json:"key_count"`
	Impl           string          `json:"impl"`
	MemoryBytes    uint64          `json:"memory_bytes"`
	RuntimeSeconds float64         `json:"runtime_seconds"`
	Aux            json.RawMessage `json:"aux,omitempty"`
}

// Sink receives records in sweep traversal order. Append must make the record
// durable before returning so partial progress survives an interrupted sweep.
type Sink interface {
	Append(ctx context.Context, rec Record) error
	Close() error
}
