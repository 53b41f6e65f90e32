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

import "iter"

// List is a doubly linked list whose nodes live in an arena owned by the
// list. Nodes are addressed by Handle instead of pointers: removing a node
// invalidates its handle, so a stale handle is detected rather than followed.
//
// Internally the list is a ring around the sentinel in slot 0, such that
// the sentinel is both the next node of Back and the previous node of Front.
//
// The zero value is an empty list ready to use.
type List[E any] struct {
	nodes arena[E]
	len   int // current list length excluding the sentinel
}

// lazyInit lazily allocates the sentinel of a zero List value.
func (l *List[E]) lazyInit() {
	if l.nodes.slots == 0 {
		l.nodes.alloc()
	}
}

// Len returns the number of elements of List.
// The complexity is O(1).
func (l *List[E]) Len() int { return l.len }

// PushBack inserts a new element with value v at the back of the list and
// returns its handle.
func (l *List[E]) PushBack(v E) Handle {
	l.lazyInit()
	return l.insertValue(v, l.nodes.at(0).prev)
}

// insertValue links a new node holding v after the node at slot at.
func (l *List[E]) insertValue(v E, at int32) Handle {
	slot := l.nodes.alloc()
	n := l.nodes.at(slot)
	n.value = v
	n.prev = at
	n.next = l.nodes.at(at).next
	l.nodes.at(n.prev).next = slot
	l.nodes.at(n.next).prev = slot
	l.len++
	return Handle{slot: slot, gen: n.gen}
}

// Remove removes the element h from the list and returns its value. A zero
// or stale handle is a no-op that returns false.
func (l *List[E]) Remove(h Handle) (E, bool) {
	if !l.nodes.live(h) {
		var zero E
		return zero, false
	}
	n := l.nodes.at(h.slot)
	l.nodes.at(n.prev).next = n.next
	l.nodes.at(n.next).prev = n.prev
	l.len--
	return l.nodes.release(h.slot), true
}

// Clear removes every element. All outstanding handles become stale; the
// arena keeps its chunks for reuse.
func (l *List[E]) Clear() {
	if l.nodes.slots == 0 {
		return
	}
	root := l.nodes.at(0)
	for slot := root.next; slot != 0; {
		next := l.nodes.at(slot).next
		l.nodes.release(slot)
		slot = next
	}
	root.next, root.prev = 0, 0
	l.len = 0
}

// Get returns a pointer to the value stored at h, or nil if h is stale. The
// pointer stays valid until the element is removed.
func (l *List[E]) Get(h Handle) *E {
	if !l.nodes.live(h) {
		return nil
	}
	return &l.nodes.at(h.slot).value
}

// Front returns the first element of List, the zero Handle if the list is empty.
func (l *List[E]) Front() Handle {
	if l.len == 0 {
		return Handle{}
	}
	return l.handle(l.nodes.at(0).next)
}

// Back returns the last element of List, the zero Handle if the list is empty.
func (l *List[E]) Back() Handle {
	if l.len == 0 {
		return Handle{}
	}
	return l.handle(l.nodes.at(0).prev)
}

// Next returns the element after h, or the zero Handle at the end or when
// h is stale.
func (l *List[E]) Next(h Handle) Handle {
	if !l.nodes.live(h) {
		return Handle{}
	}
	return l.handle(l.nodes.at(h.slot).next)
}

// Prev returns the element before h, or the zero Handle at the front or when
// h is stale.
func (l *List[E]) Prev(h Handle) Handle {
	if !l.nodes.live(h) {
		return Handle{}
	}
	return l.handle(l.nodes.at(h.slot).prev)
}

func (l *List[E]) handle(slot int32) Handle {
	if slot == 0 {
		return Handle{}
	}
	return Handle{slot: slot, gen: l.nodes.at(slot).gen}
}

// All returns an iterator over handles and value pointers from front to back.
// The element just yielded may be removed during the iteration.
func (l *List[E]) All() iter.Seq2[Handle, *E] {
	return func(yield func(Handle, *E) bool) {
		for h := l.Front(); l.nodes.live(h); {
			next := l.Next(h)
			if !yield(h, &l.nodes.at(h.slot).value) {
				return
			}
			h = next
		}
	}
}

// Backward returns an iterator over handles and value pointers from back to front.
func (l *List[E]) Backward() iter.Seq2[Handle, *E] {
	return func(yield func(Handle, *E) bool) {
		for h := l.Back(); l.nodes.live(h); {
			prev := l.Prev(h)
			if !yield(h, &l.nodes.at(h.slot).value) {
				return
			}
			h = prev
		}
	}
}
