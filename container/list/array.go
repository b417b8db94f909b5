// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package list provides sequenced list containers: an array backed list
// with O(1) random access and a doubly linked list with O(1) insertion at
// either end. Neither is safe for concurrent use.
package list

import (
	"iter"

	"github.com/lundmikkel/C6/container"
)

// Array provides an array backed list. Appends are O(1) amortized,
// positional access O(1), and insertion or removal at arbitrary positions
// O(n). Out of range indices are programming errors and panic.
type Array[T any] struct {
	items    []T
	observer container.Observer[T]
	gen      uint64
}

// NewArray creates a new array backed list.
func NewArray[T any](opts ...Option[T]) *Array[T] {
	var o options[T]
	for _, fn := range opts {
		fn(&o)
	}
	return &Array[T]{
		items:    make([]T, 0, o.capacity),
		observer: o.observer,
	}
}

// Len returns the number of items in the list.
func (a *Array[T]) Len() int {
	return len(a.items)
}

// Cap returns the current capacity of the list.
func (a *Array[T]) Cap() int {
	return cap(a.items)
}

func (a *Array[T]) commit(ch container.Change[T]) {
	a.gen++
	if a.observer != nil {
		a.observer(ch)
	}
}

func (a *Array[T]) boundsCheck(i, n int) {
	if i < 0 || i >= n {
		panic("list: index out of range")
	}
}

// Append adds v at the end of the list.
func (a *Array[T]) Append(v T) {
	a.items = append(a.items, v)
	a.commit(container.Change[T]{Added: []T{v}})
}

// At returns the item at position i.
func (a *Array[T]) At(i int) T {
	a.boundsCheck(i, len(a.items))
	return a.items[i]
}

// Set replaces the item at position i with v, returning the previous
// item.
func (a *Array[T]) Set(i int, v T) T {
	a.boundsCheck(i, len(a.items))
	old := a.items[i]
	a.items[i] = v
	a.commit(container.Change[T]{Added: []T{v}, Removed: []T{old}})
	return old
}

// InsertAt inserts v at position i, shifting the items at i and beyond
// one place toward the end. i may equal Len, in which case InsertAt is
// Append.
func (a *Array[T]) InsertAt(i int, v T) {
	a.boundsCheck(i, len(a.items)+1)
	var zero T
	a.items = append(a.items, zero)
	copy(a.items[i+1:], a.items[i:])
	a.items[i] = v
	a.commit(container.Change[T]{Added: []T{v}})
}

// RemoveAt removes and returns the item at position i, shifting the items
// beyond it one place toward the front.
func (a *Array[T]) RemoveAt(i int) T {
	a.boundsCheck(i, len(a.items))
	v := a.items[i]
	n := len(a.items) - 1
	copy(a.items[i:], a.items[i+1:])
	var zero T
	a.items[n] = zero
	a.items = a.items[:n]
	a.commit(container.Change[T]{Removed: []T{v}})
	return v
}

// First returns the first item.
func (a *Array[T]) First() (T, error) {
	if len(a.items) == 0 {
		var zero T
		return zero, container.ErrEmpty
	}
	return a.items[0], nil
}

// Last returns the last item.
func (a *Array[T]) Last() (T, error) {
	if len(a.items) == 0 {
		var zero T
		return zero, container.ErrEmpty
	}
	return a.items[len(a.items)-1], nil
}

// IndexOf returns the position of the first item equal to v under eq, or
// -1 if there is none.
func (a *Array[T]) IndexOf(v T, eq container.Equality[T]) int {
	for i, item := range a.items {
		if eq(item, v) {
			return i
		}
	}
	return -1
}

// Contains reports whether the list holds an item equal to v under eq.
func (a *Array[T]) Contains(v T, eq container.Equality[T]) bool {
	return a.IndexOf(v, eq) >= 0
}

// Remove removes the first item equal to v under eq, reporting whether
// one was found.
func (a *Array[T]) Remove(v T, eq container.Equality[T]) bool {
	i := a.IndexOf(v, eq)
	if i < 0 {
		return false
	}
	a.RemoveAt(i)
	return true
}

// Clear removes all items.
func (a *Array[T]) Clear() {
	if len(a.items) == 0 {
		return
	}
	clear(a.items)
	a.items = a.items[:0]
	a.commit(container.Change[T]{Cleared: true})
}

// Forward iterates from the first item to the last. Mutating the list
// during iteration panics with container.ErrConcurrentModification.
func (a *Array[T]) Forward() iter.Seq[T] {
	return func(yield func(T) bool) {
		gen := a.gen
		for i := 0; i < len(a.items); i++ {
			if a.gen != gen {
				panic(container.ErrConcurrentModification)
			}
			if !yield(a.items[i]) {
				return
			}
		}
	}
}

// Reverse iterates from the last item to the first.
func (a *Array[T]) Reverse() iter.Seq[T] {
	return func(yield func(T) bool) {
		gen := a.gen
		for i := len(a.items) - 1; i >= 0; i-- {
			if a.gen != gen {
				panic(container.ErrConcurrentModification)
			}
			if !yield(a.items[i]) {
				return
			}
		}
	}
}

// Values is Forward; it satisfies container.Container.
func (a *Array[T]) Values() iter.Seq[T] {
	return a.Forward()
}
