// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

import (
	"iter"

	"github.com/lundmikkel/C6/container"
)

// Linked provides a doubly linked list with O(1) insertion and removal at
// either end. Positional access is O(n); prefer Array when random access
// dominates.
type Linked[T any] struct {
	sentinel linkedItem[T] // sentinel to avoid having to handle head/tail corner cases.
	len      int
	observer container.Observer[T]
	gen      uint64
}

type linkedItem[T any] struct {
	next *linkedItem[T]
	prev *linkedItem[T]
	T    T
}

// NewLinked creates a new doubly linked list.
func NewLinked[T any](opts ...Option[T]) *Linked[T] {
	var o options[T]
	for _, fn := range opts {
		fn(&o)
	}
	l := &Linked[T]{observer: o.observer}
	l.reset()
	return l
}

func (l *Linked[T]) reset() {
	l.len = 0
	l.sentinel.next = &l.sentinel
	l.sentinel.prev = &l.sentinel
}

func (l *Linked[T]) commit(ch container.Change[T]) {
	l.gen++
	if l.observer != nil {
		l.observer(ch)
	}
}

// Len returns the number of items in the list.
func (l *Linked[T]) Len() int {
	return l.len
}

func (l *Linked[T]) insertAfter(v T, it *linkedItem[T]) {
	n := &linkedItem[T]{T: v, prev: it, next: it.next}
	n.prev.next = n
	n.next.prev = n
	l.len++
	l.commit(container.Change[T]{Added: []T{v}})
}

func (l *Linked[T]) removeItem(it *linkedItem[T]) T {
	it.prev.next = it.next
	it.next.prev = it.prev
	v := it.T
	*it = linkedItem[T]{}
	l.len--
	l.commit(container.Change[T]{Removed: []T{v}})
	return v
}

// Append adds v at the end of the list.
func (l *Linked[T]) Append(v T) {
	l.insertAfter(v, l.sentinel.prev)
}

// Prepend adds v at the front of the list.
func (l *Linked[T]) Prepend(v T) {
	l.insertAfter(v, &l.sentinel)
}

// First returns the first item.
func (l *Linked[T]) First() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, container.ErrEmpty
	}
	return l.sentinel.next.T, nil
}

// Last returns the last item.
func (l *Linked[T]) Last() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, container.ErrEmpty
	}
	return l.sentinel.prev.T, nil
}

// RemoveFirst removes and returns the first item.
func (l *Linked[T]) RemoveFirst() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, container.ErrEmpty
	}
	return l.removeItem(l.sentinel.next), nil
}

// RemoveLast removes and returns the last item.
func (l *Linked[T]) RemoveLast() (T, error) {
	if l.len == 0 {
		var zero T
		return zero, container.ErrEmpty
	}
	return l.removeItem(l.sentinel.prev), nil
}

// Remove removes the first item equal to v under eq, reporting whether
// one was found.
func (l *Linked[T]) Remove(v T, eq container.Equality[T]) bool {
	for n := l.sentinel.next; n != &l.sentinel; n = n.next {
		if eq(n.T, v) {
			l.removeItem(n)
			return true
		}
	}
	return false
}

// RemoveReverse is Remove searching from the end of the list.
func (l *Linked[T]) RemoveReverse(v T, eq container.Equality[T]) bool {
	for n := l.sentinel.prev; n != &l.sentinel; n = n.prev {
		if eq(n.T, v) {
			l.removeItem(n)
			return true
		}
	}
	return false
}

// Contains reports whether the list holds an item equal to v under eq.
func (l *Linked[T]) Contains(v T, eq container.Equality[T]) bool {
	for n := l.sentinel.next; n != &l.sentinel; n = n.next {
		if eq(n.T, v) {
			return true
		}
	}
	return false
}

// Clear removes all items.
func (l *Linked[T]) Clear() {
	if l.len == 0 {
		return
	}
	l.reset()
	l.commit(container.Change[T]{Cleared: true})
}

// Forward iterates from the first item to the last. Mutating the list
// during iteration panics with container.ErrConcurrentModification.
func (l *Linked[T]) Forward() iter.Seq[T] {
	return func(yield func(T) bool) {
		gen := l.gen
		for n := l.sentinel.next; n != &l.sentinel; n = n.next {
			if l.gen != gen {
				panic(container.ErrConcurrentModification)
			}
			if !yield(n.T) {
				return
			}
		}
	}
}

// Reverse iterates from the last item to the first.
func (l *Linked[T]) Reverse() iter.Seq[T] {
	return func(yield func(T) bool) {
		gen := l.gen
		for n := l.sentinel.prev; n != &l.sentinel; n = n.prev {
			if l.gen != gen {
				panic(container.ErrConcurrentModification)
			}
			if !yield(n.T) {
				return
			}
		}
	}
}

// Values is Forward; it satisfies container.Container.
func (l *Linked[T]) Values() iter.Seq[T] {
	return l.Forward()
}
