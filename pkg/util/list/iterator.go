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

import "github.com/matrixorigin/linkedmap/pkg/common/moerr"

// Iterator is a position in a List. It is a small value: copying it copies
// the position, not the element.
type Iterator[E any] struct {
	l *List[E]
	h Handle
}

// Begin returns an iterator at the front of the list, equal to End if the
// list is empty.
func (l *List[E]) Begin() Iterator[E] {
	return Iterator[E]{l: l, h: l.Front()}
}

// End returns the one-past-the-last position.
func (l *List[E]) End() Iterator[E] {
	return Iterator[E]{l: l}
}

// IteratorAt returns an iterator positioned at h. A zero or stale handle
// gives End.
func (l *List[E]) IteratorAt(h Handle) Iterator[E] {
	if !l.nodes.live(h) {
		return l.End()
	}
	return Iterator[E]{l: l, h: h}
}

// Next returns the iterator advanced by one. Advancing End stays at End.
func (it Iterator[E]) Next() Iterator[E] {
	if it.h.IsZero() {
		return it
	}
	it.h = it.l.Next(it.h)
	return it
}

// Prev returns the iterator moved back by one. Moving back from End gives
// the last element; moving back from the first element gives End.
func (it Iterator[E]) Prev() Iterator[E] {
	if it.h.IsZero() {
		it.h = it.l.Back()
		return it
	}
	it.h = it.l.Prev(it.h)
	return it
}

// Equal reports whether both iterators are at the same node of the same list.
func (it Iterator[E]) Equal(o Iterator[E]) bool {
	return it.l == o.l && it.h == o.h
}

// IsEnd reports whether it is past the last element.
func (it Iterator[E]) IsEnd() bool {
	return it.h.IsZero()
}

// Value returns a pointer to the element. It panics when it is End or when
// the element has been removed since the iterator was obtained.
func (it Iterator[E]) Value() *E {
	if it.h.IsZero() {
		panic(moerr.NewInvalidStateNoCtx("dereference of end iterator"))
	}
	v := it.l.Get(it.h)
	if v == nil {
		panic(moerr.NewInvalidStateNoCtx("dereference of removed element"))
	}
	return v
}
