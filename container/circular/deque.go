// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package circular provides a growable ring buffer deque.
package circular

import (
	"iter"

	"github.com/lundmikkel/C6/container"
)

// Deque provides a double ended queue backed by a circular buffer that
// grows as needed. Insertion and removal at either end are O(1)
// amortized. It is not safe for concurrent use.
type Deque[T any] struct {
	// NOTE, head is the index of the first item; used == 0 must be used
	// to distinguish an empty deque from a full one.
	storage  []T
	used     int
	head     int
	observer container.Observer[T]
	gen      uint64
}

// NewDeque creates a new deque with the specified initial capacity.
func NewDeque[T any](size int, opts ...Option[T]) *Deque[T] {
	if size < 0 {
		panic("circular: negative capacity")
	}
	if size == 0 {
		size = 1
	}
	var o options[T]
	for _, fn := range opts {
		fn(&o)
	}
	return &Deque[T]{
		storage:  make([]T, size),
		observer: o.observer,
	}
}

// Len returns the current number of items in the deque.
func (d *Deque[T]) Len() int {
	return d.used
}

// Cap returns the current capacity of the deque.
func (d *Deque[T]) Cap() int {
	return cap(d.storage)
}

func (d *Deque[T]) commit(ch container.Change[T]) {
	d.gen++
	if d.observer != nil {
		d.observer(ch)
	}
}

func (d *Deque[T]) at(i int) int {
	return (d.head + i) % len(d.storage)
}

func (d *Deque[T]) grow(size int) {
	n := make([]T, size)
	for i := 0; i < d.used; i++ {
		n[i] = d.storage[d.at(i)]
	}
	d.head = 0
	d.storage = n
}

// PushBack appends v at the back of the deque, growing it as needed.
func (d *Deque[T]) PushBack(v T) {
	if d.used == len(d.storage) {
		d.grow(2 * len(d.storage))
	}
	d.storage[d.at(d.used)] = v
	d.used++
	d.commit(container.Change[T]{Added: []T{v}})
}

// PushFront prepends v at the front of the deque, growing it as needed.
func (d *Deque[T]) PushFront(v T) {
	if d.used == len(d.storage) {
		d.grow(2 * len(d.storage))
	}
	d.head = (d.head - 1 + len(d.storage)) % len(d.storage)
	d.storage[d.head] = v
	d.used++
	d.commit(container.Change[T]{Added: []T{v}})
}

// PopFront removes and returns the item at the front.
func (d *Deque[T]) PopFront() (T, error) {
	if d.used == 0 {
		var zero T
		return zero, container.ErrEmpty
	}
	v := d.storage[d.head]
	var zero T
	d.storage[d.head] = zero
	d.head = d.at(1)
	d.used--
	d.commit(container.Change[T]{Removed: []T{v}})
	return v, nil
}

// PopBack removes and returns the item at the back.
func (d *Deque[T]) PopBack() (T, error) {
	if d.used == 0 {
		var zero T
		return zero, container.ErrEmpty
	}
	i := d.at(d.used - 1)
	v := d.storage[i]
	var zero T
	d.storage[i] = zero
	d.used--
	d.commit(container.Change[T]{Removed: []T{v}})
	return v, nil
}

// Front returns the item at the front without removing it.
func (d *Deque[T]) Front() (T, error) {
	if d.used == 0 {
		var zero T
		return zero, container.ErrEmpty
	}
	return d.storage[d.head], nil
}

// Back returns the item at the back without removing it.
func (d *Deque[T]) Back() (T, error) {
	if d.used == 0 {
		var zero T
		return zero, container.ErrEmpty
	}
	return d.storage[d.at(d.used-1)], nil
}

// Clear removes all items.
func (d *Deque[T]) Clear() {
	if d.used == 0 {
		return
	}
	clear(d.storage)
	d.used, d.head = 0, 0
	d.commit(container.Change[T]{Cleared: true})
}

// Compact reduces the storage used by the deque to the minimum necessary
// to hold its current contents. This also frees any pointers no longer
// reachable through the deque so that they may be GC'd.
func (d *Deque[T]) Compact() {
	size := d.used
	if size == 0 {
		size = 1
	}
	d.grow(size)
}

// Forward iterates from the front of the deque to the back. Mutating the
// deque during iteration panics with container.ErrConcurrentModification.
func (d *Deque[T]) Forward() iter.Seq[T] {
	return func(yield func(T) bool) {
		gen := d.gen
		for i := 0; i < d.used; i++ {
			if d.gen != gen {
				panic(container.ErrConcurrentModification)
			}
			if !yield(d.storage[d.at(i)]) {
				return
			}
		}
	}
}

// Reverse iterates from the back of the deque to the front.
func (d *Deque[T]) Reverse() iter.Seq[T] {
	return func(yield func(T) bool) {
		gen := d.gen
		for i := d.used - 1; i >= 0; i-- {
			if d.gen != gen {
				panic(container.ErrConcurrentModification)
			}
			if !yield(d.storage[d.at(i)]) {
				return
			}
		}
	}
}

// Values is Forward; it satisfies container.Container.
func (d *Deque[T]) Values() iter.Seq[T] {
	return d.Forward()
}
