// Copyright 2023 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package linkedmap

import (
	"iter"

	"github.com/RoaringBitmap/roaring"
	"go.uber.org/zap"

	"github.com/matrixorigin/linkedmap/pkg/common/moerr"
	"github.com/matrixorigin/linkedmap/pkg/container/hashtable"
	"github.com/matrixorigin/linkedmap/pkg/util/list"
)

// New returns an empty Map using hashtable.DefaultHasher for K.
func New[K comparable, V any](opts ...Option) *Map[K, V] {
	return NewWithHasher[K, V](hashtable.DefaultHasher[K](), opts...)
}

// NewWithHasher returns an empty Map hashing keys with hasher.
func NewWithHasher[K comparable, V any](hasher hashtable.Hasher[K], opts ...Option) *Map[K, V] {
	if hasher == nil {
		panic(moerr.NewInvalidInputNoCtx("nil hasher"))
	}
	m := &Map[K, V]{hasher: hasher}
	m.init(newOptions(opts))
	return m
}

// FromSeq builds a Map by inserting the pairs of seq in order. Later
// duplicates of a key are dropped.
func FromSeq[K comparable, V any](seq iter.Seq2[K, V], opts ...Option) *Map[K, V] {
	m := New[K, V](opts...)
	m.InsertAll(seq)
	return m
}

// FromPairs builds a Map by inserting pairs in order. Later duplicates of a
// key are dropped.
func FromPairs[K comparable, V any](pairs []Pair[K, V], opts ...Option) *Map[K, V] {
	m := New[K, V](opts...)
	for _, p := range pairs {
		m.Insert(p.Key, p.Value)
	}
	return m
}

// FromRange builds a Map from the entries in [begin, end) of another map.
func FromRange[K comparable, V any](begin, end Iterator[K, V], opts ...Option) *Map[K, V] {
	m := New[K, V](opts...)
	for it := begin; !it.Equal(end) && !it.IsEnd(); it = it.Next() {
		e := it.Entry()
		m.Insert(e.key, e.Value)
	}
	return m
}

func (m *Map[K, V]) init(opts options) {
	m.opts = opts
	m.buckets = hashtable.NewBucketTable(opts.bucketCount)
	m.warned = roaring.New()
	m.opts.logger.Debug("new map",
		zap.Int("buckets", opts.bucketCount),
		zap.Int("chain-warn-threshold", opts.chainWarnThreshold))
}

// lazyInit makes the zero Map usable.
func (m *Map[K, V]) lazyInit() {
	if m.buckets != nil {
		return
	}
	if m.hasher == nil {
		m.hasher = hashtable.DefaultHasher[K]()
	}
	m.init(newOptions(nil))
}

func (m *Map[K, V]) locate(key K) (bucket uint64, chain, entry list.Handle, ok bool) {
	m.lazyInit()
	bucket = m.buckets.Bucket(m.hasher(key))
	chain, entry, ok = m.buckets.Locate(bucket, func(h list.Handle) bool {
		return m.entries.Get(h).key == key
	})
	return
}

// link appends the entry to the insertion order and indexes it in bucket.
// The first time a chain reaches the warn threshold it is logged, later
// growth of the same bucket is not.
func (m *Map[K, V]) link(bucket uint64, key K, value V) list.Handle {
	h := m.entries.PushBack(Entry[K, V]{key: key, Value: value})
	m.buckets.Link(bucket, h)
	n := m.buckets.ChainLen(bucket)
	if m.opts.chainWarnThreshold > 0 && n >= m.opts.chainWarnThreshold &&
		m.warned.CheckedAdd(uint32(bucket)) {
		m.opts.logger.Warn("hash chain too long, check the hasher or the bucket count",
			zap.Uint64("bucket", bucket),
			zap.Int("chain-length", n),
			zap.Int("buckets", m.buckets.Count()),
			zap.Int("entries", m.entries.Len()))
	}
	return h
}

// Insert adds key with value if key is absent and reports whether it did.
// An existing entry is never overwritten.
func (m *Map[K, V]) Insert(key K, value V) bool {
	bucket, _, _, ok := m.locate(key)
	if ok {
		return false
	}
	m.link(bucket, key, value)
	return true
}

// InsertAll inserts the pairs of seq in order, keeping the first value of
// duplicated keys.
func (m *Map[K, V]) InsertAll(seq iter.Seq2[K, V]) {
	for k, v := range seq {
		m.Insert(k, v)
	}
}

// Erase removes key and reports whether it was present.
func (m *Map[K, V]) Erase(key K) bool {
	bucket, chain, entry, ok := m.locate(key)
	if !ok {
		return false
	}
	m.buckets.Unlink(bucket, chain)
	m.entries.Remove(entry)
	return true
}

// Find returns the iterator at key, or End if key is absent.
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	_, _, entry, ok := m.locate(key)
	if !ok {
		return m.End()
	}
	return Iterator[K, V]{it: m.entries.IteratorAt(entry)}
}

func (m *Map[K, V]) Contains(key K) bool {
	_, _, _, ok := m.locate(key)
	return ok
}

// Get returns the value of key and whether it is present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	_, _, entry, ok := m.locate(key)
	if !ok {
		var zero V
		return zero, false
	}
	return m.entries.Get(entry).Value, true
}

// Index returns a pointer to the value of key, inserting the zero value
// first if key is absent. The pointer stays valid until key is erased.
func (m *Map[K, V]) Index(key K) *V {
	bucket, _, entry, ok := m.locate(key)
	if !ok {
		var zero V
		entry = m.link(bucket, key, zero)
	}
	return &m.entries.Get(entry).Value
}

// At returns the value of key. It fails with moerr.ErrOutOfRange if key is
// absent and never inserts.
func (m *Map[K, V]) At(key K) (V, error) {
	v, ok := m.Get(key)
	if !ok {
		return v, moerr.NewOutOfRangeNoCtx("linkedmap", "key %v not found", key)
	}
	return v, nil
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int {
	return m.entries.Len()
}

func (m *Map[K, V]) Empty() bool {
	return m.entries.Len() == 0
}

// Clear erases every entry. Iterators and value pointers obtained before
// become invalid.
func (m *Map[K, V]) Clear() {
	if m.buckets == nil {
		return
	}
	n := m.entries.Len()
	m.buckets.Reset()
	m.entries.Clear()
	m.warned.Clear()
	m.opts.logger.Debug("map cleared", zap.Int("entries", n))
}

// Begin returns the iterator at the oldest entry, End if the map is empty.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{it: m.entries.Begin()}
}

func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{it: m.entries.End()}
}

// All returns an iterator over keys and values in insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.entries.All() {
			if !yield(e.key, e.Value) {
				return
			}
		}
	}
}

// Backward returns an iterator over keys and values, newest first.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.entries.Backward() {
			if !yield(e.key, e.Value) {
				return
			}
		}
	}
}

func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, e := range m.entries.All() {
			if !yield(e.key) {
				return
			}
		}
	}
}

func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, e := range m.entries.All() {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Clone returns an independent copy with the same hasher and options,
// inserting the entries in insertion order.
func (m *Map[K, V]) Clone() *Map[K, V] {
	m.lazyInit()
	c := &Map[K, V]{hasher: m.hasher}
	c.init(m.opts)
	for _, e := range m.entries.All() {
		c.Insert(e.key, e.Value)
	}
	return c
}

// Assign replaces the content of m with a copy of the entries of src, in
// order. m keeps its own hasher and bucket count. Assigning a map to itself
// is a no-op.
func (m *Map[K, V]) Assign(src *Map[K, V]) {
	if m == src {
		return
	}
	m.lazyInit()
	m.Clear()
	for _, e := range src.entries.All() {
		m.Insert(e.key, e.Value)
	}
	m.opts.logger.Debug("map assigned", zap.Int("entries", m.entries.Len()))
}

// HashFunction returns the hasher of m.
func (m *Map[K, V]) HashFunction() hashtable.Hasher[K] {
	m.lazyInit()
	return m.hasher
}

// BucketCount returns the fixed number of buckets.
func (m *Map[K, V]) BucketCount() int {
	m.lazyInit()
	return m.buckets.Count()
}

// Stats reports how entries are spread over the buckets.
func (m *Map[K, V]) Stats() hashtable.BucketStats {
	m.lazyInit()
	return m.buckets.Stats()
}
