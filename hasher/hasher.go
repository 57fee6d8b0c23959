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

// Package hasher provides the pluggable hash functions used by the collision
// simulator. Every implementation is constructed from an explicit seed so a
// simulation run is reproducible: the same (function, seed, key) always yields
// the same slot.
package hasher

import (
	"fmt"
	"sort"
)

// Hasher maps a string key to a 64-bit hash value. Implementations must be
// pure: repeated calls with the same key return the same value for the
// lifetime of the instance.
type Hasher interface {
	// Name identifies the hash function for reports and logs.
	Name() string
	// Hash returns the 64-bit hash of key.
	Hash(key string) uint64
}

// builders maps a function name to its seeded constructor.
var builders = map[string]func(seed uint64) (Hasher, error){
	"siphash": func(seed uint64) (Hasher, error) { return NewSipHash(splitmix(&seed), splitmix(&seed)), nil },
	"highway": func(seed uint64) (Hasher, error) { return NewHighway(expandKey(seed, 32)) },
	"t1ha":    func(seed uint64) (Hasher, error) { return NewT1ha(seed), nil },
	"spooky":  func(seed uint64) (Hasher, error) { return NewSpooky(uint32(seed)), nil },
	"xxhash":  func(seed uint64) (Hasher, error) { return NewXX(seed), nil },
	"blake2b": func(seed uint64) (Hasher, error) { return NewBlake2b(expandKey(seed, 32)) },
	"fnv":     func(seed uint64) (Hasher, error) { return NewFNV(), nil },
}

// New constructs a named hash function with all key material derived
// deterministically from seed. Known names are listed by Names.
func New(name string, seed uint64) (Hasher, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown hash function: %q (known: %v)", name, Names())
	}
	return build(seed)
}

// Names returns the known hash function names in sorted order.
func Names() []string {
	out := make([]string, 0, len(builders))
	for name := range builders {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// splitmix advances a splitmix64 state and returns the next value. It is used
// to stretch one user-supplied seed into however many words a hash function
// needs, without the functions sharing identical key material.
func splitmix(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	z := *state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// expandKey derives n bytes of key material from seed.
func expandKey(seed uint64, n int) []byte {
	key := make([]byte, n)
	state := seed
	for i := 0; i < n; i += 8 {
		word := splitmix(&state)
		for j := 0; j < 8 && i+j < n; j++ {
			key[i+j] = byte(word >> (8 * j))
		}
	}
	return key
}
