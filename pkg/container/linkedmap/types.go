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
	"github.com/RoaringBitmap/roaring"

	"github.com/matrixorigin/linkedmap/pkg/container/hashtable"
	"github.com/matrixorigin/linkedmap/pkg/util/list"
)

// Entry is a stored key value pair. The key is fixed once stored, the value
// may be changed in place.
type Entry[K comparable, V any] struct {
	key   K
	Value V
}

func (e *Entry[K, V]) Key() K {
	return e.key
}

// Pair is a key value pair used to build a Map.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is a hash map that iterates in insertion order.
//
// Entries live only in the entries list, which is the insertion order. Each
// bucket of the table holds one chain node per entry hashed to it, and a
// chain node only stores the handle of its entry. Insert and Erase update
// both structures together, so every entry is reachable from exactly one
// bucket. The bucket count is fixed at construction.
//
// A Map is not safe for concurrent use.
type Map[K comparable, V any] struct {
	hasher  hashtable.Hasher[K]
	entries list.List[Entry[K, V]]
	buckets *hashtable.BucketTable
	// warned holds the buckets whose chain length was already reported.
	warned *roaring.Bitmap
	opts   options
}

// Iterator is a position in a Map's insertion order.
type Iterator[K comparable, V any] struct {
	it list.Iterator[Entry[K, V]]
}

// Next returns the iterator at the next entry. Advancing End stays at End.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	return Iterator[K, V]{it: it.it.Next()}
}

// Prev returns the iterator at the previous entry; Prev of End is the last entry.
func (it Iterator[K, V]) Prev() Iterator[K, V] {
	return Iterator[K, V]{it: it.it.Prev()}
}

// Equal reports whether both iterators are at the same entry of the same map.
func (it Iterator[K, V]) Equal(o Iterator[K, V]) bool {
	return it.it.Equal(o.it)
}

func (it Iterator[K, V]) IsEnd() bool {
	return it.it.IsEnd()
}

// Entry returns the entry at it. It panics at End or when the entry has been
// erased since the iterator was obtained.
func (it Iterator[K, V]) Entry() *Entry[K, V] {
	return it.it.Value()
}

func (it Iterator[K, V]) Key() K {
	return it.Entry().key
}

func (it Iterator[K, V]) Value() V {
	return it.Entry().Value
}
