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

import (
	"context"
	"fmt"

	redis "github.com/redis/go-redis/v9"
	"github.com/sugawarayuuta/sonnet"
)

// RedisPusher abstracts the minimal surface we need from a Redis client.
// Implementations may wrap github.com/redis/go-redis/v9 or any equivalent.
type RedisPusher interface {
	RPush(ctx context.Context, list string, value []byte) error
}

// RedisSink appends records to a Redis list, preserving sweep traversal
// order (RPUSH is append-only). Useful when a dashboard tails results from a
// long sweep running on a dedicated benchmark box.
type RedisSink struct {
	client RedisPusher
	list   string
}

// NewRedisSink returns a sink pushing to the named list.
func NewRedisSink(client RedisPusher, list string) *RedisSink {
	if list == "" {
		list = "shootout-results"
	}
	return &RedisSink{client: client, list: list}
}

// Append pushes one record as JSON onto the tail of the list.
func (s *RedisSink) Append(ctx context.Context, rec Record) error {
	b, err := sonnet.Marshal(&rec)
	if err != nil {
		return fmt.Errorf("encode result record: %w", err)
	}
	if err := s.client.RPush(ctx, s.list, b); err != nil {
		return fmt.Errorf("redis rpush %s: %w", s.list, err)
	}
	return nil
}

func (s *RedisSink) Close() error { return nil }

// GoRedisPusher is a production client wrapper implementing RedisPusher on
// top of github.com/redis/go-redis/v9. Construct with an address like
// "127.0.0.1:6379".
type GoRedisPusher struct{ c *redis.Client }

func NewGoRedisPusher(addr string) *GoRedisPusher {
	return &GoRedisPusher{c: redis.NewClient(&redis.Options{Addr: addr})}
}

func (g *GoRedisPusher) RPush(ctx context.Context, list string, value []byte) error {
	return g.c.RPush(ctx, list, value).Err()
}

// LoggingPusher is a tiny demo client that just logs the push. It lets the
// redis sink be selected without a running Redis. Not for production use.
type LoggingPusher struct{}

func (LoggingPusher) RPush(ctx context.Context, list string, value []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	fmt.Printf("[redis-demo] RPUSH %s %s\n", list, value)
	return nil
}
