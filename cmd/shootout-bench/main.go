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

// Package main runs the hash-table shootout sweep.
//
// Each candidate implementation is a separately built executable honoring the
// candidate contract: invoked as `<executable> <key_count> <workload_kind>`,
// it constructs its table, prints its elapsed seconds as the first stdout
// line (optionally a second line of JSON metrics), and stays resident until
// killed. The harness measures wall-clock runtime and peak resident memory
// per (workload, key count, implementation) cell, keeps the fastest of N
// trials, and streams one record per cell to the result log so an
// interrupted sweep still leaves usable output.
//
// For trustworthy numbers, run on an idle machine with swap off; the sweep is
// sequential by design so memory samples never contend.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shootout/internal/harness/results"
	"shootout/internal/harness/sampler"
	"shootout/internal/harness/sweep"
	"shootout/internal/harness/telemetry"
)

func main() {
	var (
		minKeys   = flag.Int("minkeys", 2_000_000, "Smallest key count in the sweep")
		maxKeys   = flag.Int("maxkeys", 8_000_000, "Largest key count in the sweep")
		interval  = flag.Int("interval", 2_000_000, "Key count step between cells")
		bestOutOf = flag.Int("best_out_of", 2, "Trials per cell; the fastest successful one is recorded")
		workloads = flag.String("workloads", "", "Comma-separated workload kinds (empty = all: sequential,random,delete,sequential_string,random_string,delete_string)")
		impls     = flag.String("impls", "", "Comma-separated candidates, id=path or bare path")
		timeout   = flag.Duration("ready_timeout", sampler.DefaultReadyTimeout, "Bound on waiting for a candidate's ready line")

		sinkKind  = flag.String("sink", "jsonl", "Result sink: jsonl|sqlite|redis")
		out       = flag.String("out", "output.jsonl", "Result log path (jsonl and sqlite sinks)")
		redisAddr = flag.String("redis_addr", "", "Redis address for the redis sink; empty uses a logging client")
		redisList = flag.String("redis_list", "", "Redis list name for the redis sink")

		metricsAddr = flag.String("metrics_addr", "", "If non-empty, expose Prometheus /metrics on this address (e.g., :9090)")
	)
	flag.Parse()

	kinds, err := sweep.ParseKinds(*workloads)
	if err != nil {
		log.Fatalf("bad -workloads: %v", err)
	}
	candidates, err := sweep.ParseImplementations(*impls)
	if err != nil {
		log.Fatalf("bad -impls: %v", err)
	}
	cfg := sweep.Config{
		MinKeys:   *minKeys,
		MaxKeys:   *maxKeys,
		Interval:  *interval,
		BestOutOf: *bestOutOf,
		Kinds:     kinds,
		Impls:     candidates,
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("bad sweep configuration: %v", err)
	}

	sink, err := results.BuildSink(*sinkKind, results.Options{
		Path:      *out,
		RedisAddr: *redisAddr,
		RedisList: *redisList,
	})
	if err != nil {
		log.Fatalf("result sink: %v", err)
	}
	defer sink.Close()

	telemetry.Serve(*metricsAddr)

	// Ctrl+C stops the sweep between cells; the record for every completed
	// cell is already on disk by then.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	driver := &sweep.Driver{
		Config: cfg,
		Runner: &sweep.TrialRunner{
			Sampler:   sampler.NewProcessSampler(*timeout),
			BestOutOf: cfg.BestOutOf,
		},
		Sink: sink,
	}

	fmt.Printf("Sweeping %d cells (%d workloads x keys %d..%d step %d x %d candidates), best of %d\n",
		cfg.Cells(), len(cfg.Kinds), cfg.MinKeys, cfg.MaxKeys, cfg.Interval, len(cfg.Impls), cfg.BestOutOf)

	start := time.Now()
	sum, err := driver.Run(ctx)
	if err != nil && ctx.Err() == nil {
		log.Fatalf("sweep aborted: %v", err)
	}
	if ctx.Err() != nil {
		fmt.Println("sweep interrupted; partial results are on disk")
	}

	// Machine-readable one-line summary for scripts.
	fmt.Printf("Summary: cells=%d skipped=%d duration_ns=%d sink=%s out=%s\n",
		sum.Cells, sum.Skipped, time.Since(start).Nanoseconds(), *sinkKind, *out)

	if ctx.Err() != nil {
		os.Exit(130)
	}
}
