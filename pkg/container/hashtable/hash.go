// Copyright 2021 Matrix Origin
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

package hashtable

import (
	"hash/maphash"
	"math/bits"
	"math/rand"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"
)

// Hasher maps a key to a bucket-independent 64 bit hash. It must be
// deterministic for the lifetime of the table using it and must not panic.
type Hasher[K any] func(key K) uint64

var hashkey [2]uint64

func init() {
	hashkey[0] = rand.Uint64()
	hashkey[1] = rand.Uint64()
}

const (
	m1 = 0xa0761d6478bd642f
	m2 = 0xe7037ed1a0b428db
	m5 = 0x1d8e4e27c47d124f
)

func mix(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return hi ^ lo
}

func wyhash64(x uint64) uint64 {
	return mix(m5^8, mix(x^m2, x^hashkey[1]^hashkey[0]^m1))
}

// StringHasher hashes string-like keys with xxhash.
func StringHasher[K ~string]() Hasher[K] {
	return func(key K) uint64 {
		return xxhash.Sum64String(string(key))
	}
}

// IntegerHasher hashes integer keys with the wyhash 64 bit mixer, seeded
// once per process.
func IntegerHasher[K constraints.Integer]() Hasher[K] {
	return func(key K) uint64 {
		return wyhash64(uint64(key))
	}
}

// ComparableHasher hashes any comparable key with hash/maphash. Each call
// draws a new seed, so hashes are only stable for the returned Hasher.
func ComparableHasher[K comparable]() Hasher[K] {
	seed := maphash.MakeSeed()
	return func(key K) uint64 {
		return maphash.Comparable(seed, key)
	}
}

// DefaultHasher picks a hasher for K: xxhash for strings, wyhash for the
// builtin integer types and maphash for everything else.
func DefaultHasher[K comparable]() Hasher[K] {
	var zero K
	var h any
	switch any(zero).(type) {
	case string:
		h = StringHasher[string]()
	case int:
		h = IntegerHasher[int]()
	case int8:
		h = IntegerHasher[int8]()
	case int16:
		h = IntegerHasher[int16]()
	case int32:
		h = IntegerHasher[int32]()
	case int64:
		h = IntegerHasher[int64]()
	case uint:
		h = IntegerHasher[uint]()
	case uint8:
		h = IntegerHasher[uint8]()
	case uint16:
		h = IntegerHasher[uint16]()
	case uint32:
		h = IntegerHasher[uint32]()
	case uint64:
		h = IntegerHasher[uint64]()
	case uintptr:
		h = IntegerHasher[uintptr]()
	default:
		return ComparableHasher[K]()
	}
	return h.(Hasher[K])
}
