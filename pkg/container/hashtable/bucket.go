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
	"math"

	"github.com/RoaringBitmap/roaring"

	"github.com/matrixorigin/linkedmap/pkg/common/moerr"
	"github.com/matrixorigin/linkedmap/pkg/util/list"
)

// MaxBucketCount bounds the bucket count so bucket indexes fit the
// occupancy bitmap.
const MaxBucketCount = math.MaxUint32

// BucketTable is a fixed-size array of hash chains. A chain node holds the
// handle of an entry stored elsewhere; the table locates entries but never
// owns them. The bucket count never changes after construction.
type BucketTable struct {
	chains   []list.List[list.Handle]
	count    uint64
	links    int
	occupied *roaring.Bitmap
}

// BucketStats describes how chain nodes are spread over the buckets.
type BucketStats struct {
	Buckets  int
	Occupied int
	Links    int
	MaxChain int
}

// NewBucketTable returns a table with count empty buckets. It panics if
// count is outside [1, MaxBucketCount].
func NewBucketTable(count int) *BucketTable {
	if count < 1 || uint64(count) > MaxBucketCount {
		panic(moerr.NewInvalidInputNoCtx("bucket count %d out of range [1, %d]", count, uint64(MaxBucketCount)))
	}
	return &BucketTable{
		count:    uint64(count),
		occupied: roaring.New(),
	}
}

// Count returns the number of buckets.
func (bt *BucketTable) Count() int {
	return int(bt.count)
}

// Len returns the number of chain nodes over all buckets.
func (bt *BucketTable) Len() int {
	return bt.links
}

// Bucket maps a hash to its bucket index.
func (bt *BucketTable) Bucket(hash uint64) uint64 {
	return hash % bt.count
}

// ChainLen returns the length of the chain of bucket b.
func (bt *BucketTable) ChainLen(b uint64) int {
	if bt.chains == nil {
		return 0
	}
	return bt.chains[b].Len()
}

// Locate scans the chain of bucket b and returns the first chain node whose
// entry satisfies match, with the entry handle it references.
func (bt *BucketTable) Locate(b uint64, match func(entry list.Handle) bool) (chain, entry list.Handle, ok bool) {
	if bt.chains == nil {
		return list.Handle{}, list.Handle{}, false
	}
	for h, e := range bt.chains[b].All() {
		if match(*e) {
			return h, *e, true
		}
	}
	return list.Handle{}, list.Handle{}, false
}

// Link appends a chain node referencing entry to bucket b and returns the
// handle of the chain node.
func (bt *BucketTable) Link(b uint64, entry list.Handle) list.Handle {
	if bt.chains == nil {
		bt.chains = make([]list.List[list.Handle], bt.count)
	}
	h := bt.chains[b].PushBack(entry)
	bt.links++
	bt.occupied.Add(uint32(b))
	return h
}

// Unlink removes the chain node from bucket b. The referenced entry is not
// touched. A zero or stale chain handle is a no-op.
func (bt *BucketTable) Unlink(b uint64, chain list.Handle) bool {
	if bt.chains == nil {
		return false
	}
	if _, ok := bt.chains[b].Remove(chain); !ok {
		return false
	}
	bt.links--
	if bt.chains[b].Len() == 0 {
		bt.occupied.Remove(uint32(b))
	}
	return true
}

// Reset empties every bucket. Only occupied buckets are visited.
func (bt *BucketTable) Reset() {
	it := bt.occupied.Iterator()
	for it.HasNext() {
		bt.chains[it.Next()].Clear()
	}
	bt.occupied.Clear()
	bt.links = 0
}

// Stats reports bucket occupancy and the longest chain.
func (bt *BucketTable) Stats() BucketStats {
	stats := BucketStats{
		Buckets:  int(bt.count),
		Occupied: int(bt.occupied.GetCardinality()),
		Links:    bt.links,
	}
	it := bt.occupied.Iterator()
	for it.HasNext() {
		if n := bt.chains[it.Next()].Len(); n > stats.MaxChain {
			stats.MaxChain = n
		}
	}
	return stats
}
