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

// Package sampler runs one candidate hash-table implementation as an external
// process and measures it. The candidate contract is fixed: invoked as
// `<executable> <key_count> <workload_kind>`, it builds its structure, writes
// its elapsed seconds as the first stdout line, optionally a second line of
// JSON metrics, and then stays resident until the harness kills it. The
// harness owns the process lifecycle end to end; no orphans survive a sample,
// whatever the exit path.
package sampler

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/procfs"
	"github.com/sugawarayuuta/sonnet"
)

// Trial is one measurement attempt. OK is false iff the candidate crashed,
// reported a non-positive or garbled runtime, timed out, or its memory could
// not be sampled; Reason then says which. A failed trial is an expected
// outcome under resource pressure, never an error to the caller.
type Trial struct {
	RuntimeSeconds float64
	MemoryBytes    uint64
	Aux            json.RawMessage
	OK             bool
	Reason         string
}

const (
	// DefaultReadyTimeout bounds the wait for the candidate's first stdout
	// line so a hung candidate cannot stall the sweep.
	DefaultReadyTimeout = 10 * time.Minute
	// DefaultAuxGrace bounds the wait for the optional metrics line. The
	// candidate writes both lines back to back, so this only needs to cover
	// pipe latency.
	DefaultAuxGrace = 250 * time.Millisecond
)

// ProcessSampler spawns, measures, and terminates candidate processes.
type ProcessSampler struct {
	ReadyTimeout time.Duration
	AuxGrace     time.Duration
}

// NewProcessSampler returns a sampler with the given ready timeout;
// non-positive values select the defaults.
func NewProcessSampler(readyTimeout time.Duration) *ProcessSampler {
	if readyTimeout <= 0 {
		readyTimeout = DefaultReadyTimeout
	}
	return &ProcessSampler{ReadyTimeout: readyTimeout, AuxGrace: DefaultAuxGrace}
}

// Sample launches executable with keyCount and workload as its arguments,
// waits for the ready line, samples resident memory while the candidate still
// holds its populated structure, then force-terminates and reaps it.
func (s *ProcessSampler) Sample(ctx context.Context, executable string, keyCount int, workload string) Trial {
	fail := func(reason string) Trial { return Trial{Reason: reason} }

	cmd := exec.Command(executable, strconv.Itoa(keyCount), workload)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fail("stdout pipe: " + err.Error())
	}
	if err := cmd.Start(); err != nil {
		return fail("start: " + err.Error())
	}
	// Teardown runs on every exit path, including timeout and parse
	// failures: kill first, then reap so no zombie is left behind.
	defer func() {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
	}()

	lines := readLines(stdout, 2)

	auxGrace := s.AuxGrace
	if auxGrace <= 0 {
		auxGrace = DefaultAuxGrace
	}
	ready := time.NewTimer(s.ReadyTimeout)
	defer ready.Stop()

	var first string
	select {
	case line, ok := <-lines:
		if !ok {
			return fail("process exited before reporting a runtime")
		}
		first = line
	case <-ready.C:
		return fail("timed out waiting for ready line")
	case <-ctx.Done():
		return fail("canceled: " + ctx.Err().Error())
	}

	runtime, err := strconv.ParseFloat(strings.TrimSpace(first), 64)
	if err != nil {
		return fail("unparsable runtime line: " + strconv.Quote(first))
	}
	if runtime <= 0 {
		return fail("non-positive runtime reported")
	}

	// Sample memory now, before the optional metrics line and before
	// termination: the candidate is still resident with its structure fully
	// populated at this point.
	mem, err := residentBytes(cmd.Process.Pid)
	if err != nil {
		return fail("memory sample: " + err.Error())
	}
	if mem == 0 {
		return fail("zero-byte memory sample")
	}

	trial := Trial{RuntimeSeconds: runtime, MemoryBytes: mem, OK: true}

	grace := time.NewTimer(auxGrace)
	defer grace.Stop()
	select {
	case line, ok := <-lines:
		if ok {
			trial.Aux = parseAux(line)
		}
	case <-grace.C:
		// No metrics line; that is allowed by the contract.
	case <-ctx.Done():
	}
	return trial
}

// readLines reads up to max lines from r and delivers them on the returned
// channel, which is closed on EOF or error. The channel is buffered so the
// goroutine never outlives its input even when the caller stops listening.
func readLines(r io.Reader, max int) <-chan string {
	ch := make(chan string, max)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(r)
		for n := 0; n < max && sc.Scan(); n++ {
			ch <- sc.Text()
		}
	}()
	return ch
}

// residentBytes reads the process's current VmRSS from /proc.
func residentBytes(pid int) (uint64, error) {
	proc, err := procfs.NewProc(pid)
	if err != nil {
		return 0, err
	}
	status, err := proc.NewStatus()
	if err != nil {
		return 0, err
	}
	return status.VmRSS, nil
}

// parseAux validates the candidate's metrics line as a JSON object and
// returns it verbatim, preserving whatever key order the candidate chose. An
// invalid line is dropped; metrics are advisory and never fail a trial.
func parseAux(line string) json.RawMessage {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	var probe map[string]any
	if err := sonnet.Unmarshal([]byte(line), &probe); err != nil {
		return nil
	}
	return json.RawMessage(line)
}
