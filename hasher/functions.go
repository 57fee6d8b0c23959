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

package hasher

import (
	"fmt"
	"hash/fnv"

	"github.com/OneOfOne/xxhash"
	"github.com/dchest/siphash"
	"github.com/dgryski/go-t1ha"
	spooky "github.com/inspirent/go-spooky"
	"github.com/minio/highwayhash"
	"golang.org/x/crypto/blake2b"
)

// SipHash is the keyed SipHash-2-4 function.
type SipHash struct {
	key0, key1 uint64
}

// NewSipHash returns a SipHash instance keyed with the two 64-bit words.
func NewSipHash(key0, key1 uint64) *SipHash {
	return &SipHash{key0: key0, key1: key1}
}

func (h *SipHash) Name() string { return "siphash" }

func (h *SipHash) Hash(key string) uint64 {
	return siphash.Hash(h.key0, h.key1, []byte(key))
}

// Highway is the keyed HighwayHash-64 function.
type Highway struct {
	key []byte
}

// NewHighway returns a HighwayHash instance. The key must be exactly 32 bytes.
func NewHighway(key []byte) (*Highway, error) {
	if len(key) != 32 {
		return nil, fmt.Errorf("highwayhash key must be 32 bytes, got %d", len(key))
	}
	return &Highway{key: key}, nil
}

func (h *Highway) Name() string { return "highway" }

func (h *Highway) Hash(key string) uint64 {
	return highwayhash.Sum64([]byte(key), h.key)
}

// T1ha is the seeded t1ha function.
type T1ha struct {
	seed uint64
}

func NewT1ha(seed uint64) *T1ha { return &T1ha{seed: seed} }

func (h *T1ha) Name() string { return "t1ha" }

func (h *T1ha) Hash(key string) uint64 {
	return t1ha.Sum64([]byte(key), h.seed)
}

// Spooky is the seeded 32-bit SpookyHash, widened to 64 bits. Its narrower
// output makes clustering effects easier to provoke in small tables, which is
// useful when eyeballing simulator output.
type Spooky struct {
	seed uint32
}

func NewSpooky(seed uint32) *Spooky { return &Spooky{seed: seed} }

func (h *Spooky) Name() string { return "spooky" }

func (h *Spooky) Hash(key string) uint64 {
	return uint64(spooky.Hash32Seed([]byte(key), h.seed))
}

// XX is the seeded xxHash64 function.
type XX struct {
	seed uint64
}

func NewXX(seed uint64) *XX { return &XX{seed: seed} }

func (h *XX) Name() string { return "xxhash" }

func (h *XX) Hash(key string) uint64 {
	return xxhash.Checksum64S([]byte(key), h.seed)
}

// Blake2b is the keyed BLAKE2b function, truncated to its first 8 output
// bytes. It is the crypto-grade reference point among the candidates.
type Blake2b struct {
	key []byte
}

// NewBlake2b returns a keyed BLAKE2b instance. The key may be up to 64 bytes.
func NewBlake2b(key []byte) (*Blake2b, error) {
	// Construct once to surface key-size errors at build time, not per call.
	if _, err := blake2b.New256(key); err != nil {
		return nil, fmt.Errorf("blake2b key: %w", err)
	}
	return &Blake2b{key: key}, nil
}

func (h *Blake2b) Name() string { return "blake2b" }

func (h *Blake2b) Hash(key string) uint64 {
	d, _ := blake2b.New256(h.key)
	d.Write([]byte(key))
	sum := d.Sum(nil)
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(sum[i]) << (8 * i)
	}
	return v
}

// FNV is unseeded FNV-1a, the deliberately weak baseline: with sequential
// string keys it clusters early, which is exactly the behavior the collision
// sweep is meant to expose.
type FNV struct{}

func NewFNV() *FNV { return &FNV{} }

func (h *FNV) Name() string { return "fnv" }

func (h *FNV) Hash(key string) uint64 {
	d := fnv.New64a()
	d.Write([]byte(key))
	return d.Sum64()
}
