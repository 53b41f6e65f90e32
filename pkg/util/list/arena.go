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

package list

import "math/bits"

// minChunkBits sizes the first chunk; chunk k holds 1<<(minChunkBits+k) nodes.
const minChunkBits = 2

// freeSlot marks a node that sits on the free list.
const freeSlot int32 = -1

// Handle is a stable reference to a node of a List. The zero Handle refers
// to no element and doubles as the end position.
type Handle struct {
	slot int32
	gen  uint32
}

// IsZero reports whether h is the null handle.
func (h Handle) IsZero() bool {
	return h.slot == 0
}

type node[E any] struct {
	value      E
	prev, next int32
	gen        uint32
}

// arena stores nodes in chunks that never move once allocated, so the
// address of a node value stays valid until the node is released.
// Slot 0 is reserved for the list's sentinel.
type arena[E any] struct {
	chunks [][]node[E]
	slots  int32 // slots handed out so far, including the sentinel
	free   int32 // head of the free list, 0 when empty
}

// chunkOf maps a slot to its chunk and the offset inside it.
func chunkOf(slot int32) (int, int) {
	q := uint32(slot)>>minChunkBits + 1
	k := bits.Len32(q) - 1
	base := ((1 << k) - 1) << minChunkBits
	return k, int(slot) - base
}

func (a *arena[E]) at(slot int32) *node[E] {
	k, off := chunkOf(slot)
	return &a.chunks[k][off]
}

func (a *arena[E]) alloc() int32 {
	if a.free != 0 {
		slot := a.free
		n := a.at(slot)
		a.free = n.next
		n.prev, n.next = 0, 0
		return slot
	}
	slot := a.slots
	if k, _ := chunkOf(slot); k == len(a.chunks) {
		a.chunks = append(a.chunks, make([]node[E], 1<<(minChunkBits+k)))
	}
	a.slots++
	return slot
}

// release puts slot on the free list and bumps its generation, which
// invalidates every Handle still pointing at it.
func (a *arena[E]) release(slot int32) E {
	n := a.at(slot)
	v := n.value
	var zero E
	n.value = zero
	n.gen++
	n.prev = freeSlot
	n.next = a.free
	a.free = slot
	return v
}

// live reports whether h names an allocated, non-sentinel node of the
// current generation.
func (a *arena[E]) live(h Handle) bool {
	if h.slot <= 0 || h.slot >= a.slots {
		return false
	}
	n := a.at(h.slot)
	return n.prev != freeSlot && n.gen == h.gen
}
