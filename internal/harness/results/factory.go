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

package results

import "fmt"

// Options carries sink-specific settings for BuildSink.
type Options struct {
	// Path is the file path for the jsonl and sqlite sinks.
	Path string
	// RedisAddr, when non-empty, makes the redis sink use a real client;
	// otherwise it falls back to a logging client so the adapter can be
	// exercised without infrastructure.
	RedisAddr string
	// RedisList is the Redis list name; empty uses the default.
	RedisList string
}

// BuildSink constructs a Sink based on a string selector. Supported sinks:
//   - "jsonl" (default): append-only JSON-lines file
//   - "sqlite": SQLite database, one row per record
//   - "redis": RPUSH to a Redis list; logs instead when no address is given
func BuildSink(kind string, opts Options) (Sink, error) {
	path := opts.Path
	if path == "" {
		path = "output.jsonl"
	}
	switch kind {
	case "", "jsonl":
		return NewJSONLSink(path)
	case "sqlite":
		return NewSQLiteSink(path)
	case "redis":
		var client RedisPusher
		if opts.RedisAddr != "" {
			client = NewGoRedisPusher(opts.RedisAddr)
		} else {
			client = LoggingPusher{}
		}
		return NewRedisSink(client, opts.RedisList), nil
	default:
		return nil, fmt.Errorf("unknown result sink: %s", kind)
	}
}
