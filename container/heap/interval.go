// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package heap provides an addressable, double-ended priority queue
// backed by an interval heap. In addition to O(1) access to both the
// minimum and the maximum and O(log n) extraction of either extreme, any
// stored item can be removed or replaced in O(log n) through the opaque
// handle issued when the item was added. Handles remain valid across the
// internal reorganizations the heap performs.
//
// The queue is not safe for concurrent use; callers that share one across
// goroutines must serialize access externally.
package heap

import (
	"fmt"
	"iter"

	"cloudeng.io/errors"
	"github.com/lundmikkel/C6/container"
)

// Interval implements the priority queue. The zero value is not usable;
// use New.
type Interval[T any] struct {
	core     core[T]
	table    handles
	observer container.Observer[T]
	// gen increments on every committed mutation and guards iteration
	// against concurrent structural modification.
	gen uint64
}

// New creates an interval heap ordered by cmp. A nil comparator is a
// programming error and panics.
func New[T any](cmp container.Comparator[T], opts ...Option[T]) *Interval[T] {
	if cmp == nil {
		panic("heap: nil comparator")
	}
	var o options[T]
	for _, fn := range opts {
		fn(&o)
	}
	q := &Interval[T]{}
	q.core.cmp = cmp
	q.core.items = make([]T, 0, o.capacity)
	q.core.onSwap = q.table.swap
	q.core.onMove = q.table.move
	q.table.refs = make([]*Handle, 0, o.capacity)
	for _, v := range o.items {
		q.push(v, q.table.alloc())
	}
	q.observer = o.observer
	return q
}

// Len returns the number of items in the queue.
func (q *Interval[T]) Len() int {
	return q.core.len()
}

// Cap returns the current slot capacity.
func (q *Interval[T]) Cap() int {
	return cap(q.core.items)
}

func (q *Interval[T]) push(v T, h *Handle) {
	q.table.bindNext(h)
	q.core.insert(v)
}

func (q *Interval[T]) commit(ch container.Change[T]) {
	q.gen++
	if q.observer != nil {
		q.observer(ch)
	}
}

// Push adds v to the queue and returns the handle bound to it.
func (q *Interval[T]) Push(v T) *Handle {
	h := q.table.alloc()
	q.push(v, h)
	q.commit(container.Change[T]{Added: []T{v}})
	return h
}

// PushReuse is like Push but recycles a retired handle previously issued
// by this queue, binding it to v. A nil handle, a handle from another
// queue or one still bound to an item fails with
// container.ErrInvalidHandle before any mutation takes place.
func (q *Interval[T]) PushReuse(v T, h *Handle) (*Handle, error) {
	if err := q.table.reusable(h); err != nil {
		return nil, err
	}
	q.push(v, h)
	q.commit(container.Change[T]{Added: []T{v}})
	return h, nil
}

// Contains reports whether h is currently bound to an item in this queue.
func (q *Interval[T]) Contains(h *Handle) bool {
	_, err := q.table.resolve(h)
	return err == nil
}

// Min returns the smallest item without removing it.
func (q *Interval[T]) Min() (T, error) {
	if q.core.len() == 0 {
		var zero T
		return zero, container.ErrEmpty
	}
	return q.core.items[0], nil
}

// Max returns the largest item without removing it.
func (q *Interval[T]) Max() (T, error) {
	if q.core.len() == 0 {
		var zero T
		return zero, container.ErrEmpty
	}
	return q.core.items[q.core.maxSlot(0)], nil
}

// MinHandle returns the handle bound to the smallest item.
func (q *Interval[T]) MinHandle() (*Handle, error) {
	if q.core.len() == 0 {
		return nil, container.ErrEmpty
	}
	return q.table.refs[0], nil
}

// MaxHandle returns the handle bound to the largest item.
func (q *Interval[T]) MaxHandle() (*Handle, error) {
	if q.core.len() == 0 {
		return nil, container.ErrEmpty
	}
	return q.table.refs[q.core.maxSlot(0)], nil
}

// PopMin removes and returns the smallest item, retiring its handle.
func (q *Interval[T]) PopMin() (T, error) {
	if q.core.len() == 0 {
		var zero T
		return zero, container.ErrEmpty
	}
	return q.removeAt(0), nil
}

// PopMax removes and returns the largest item, retiring its handle.
func (q *Interval[T]) PopMax() (T, error) {
	if q.core.len() == 0 {
		var zero T
		return zero, container.ErrEmpty
	}
	return q.removeAt(q.core.maxSlot(0)), nil
}

// Remove removes the item h is bound to and retires h.
func (q *Interval[T]) Remove(h *Handle) (T, error) {
	s, err := q.table.resolve(h)
	if err != nil {
		var zero T
		return zero, err
	}
	return q.removeAt(s), nil
}

func (q *Interval[T]) removeAt(s int) T {
	q.table.unbind(q.table.refs[s])
	v := q.core.deleteAt(s)
	q.table.truncate(q.core.len())
	q.commit(container.Change[T]{Removed: []T{v}})
	return v
}

// Update replaces the item h is bound to with v and returns the previous
// item. The replacement is repaired in place, which is cheaper than a
// remove followed by a push; h stays bound throughout.
func (q *Interval[T]) Update(h *Handle, v T) (T, error) {
	s, err := q.table.resolve(h)
	if err != nil {
		var zero T
		return zero, err
	}
	old := q.core.updateAt(s, v)
	q.commit(container.Change[T]{Added: []T{v}, Removed: []T{old}})
	return old, nil
}

// Get returns the item h is bound to.
func (q *Interval[T]) Get(h *Handle) (T, error) {
	s, err := q.table.resolve(h)
	if err != nil {
		var zero T
		return zero, err
	}
	return q.core.items[s], nil
}

// Set replaces the item h is bound to with v; it is Update without the
// previous item.
func (q *Interval[T]) Set(h *Handle, v T) error {
	_, err := q.Update(h, v)
	return err
}

// Clear removes all items, retiring every handle.
func (q *Interval[T]) Clear() {
	if q.core.len() == 0 {
		return
	}
	q.core.reset()
	q.table.reset()
	q.commit(container.Change[T]{Cleared: true})
}

// Values iterates over the stored items in unspecified order. Mutating
// the queue during iteration panics with
// container.ErrConcurrentModification.
func (q *Interval[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		gen := q.gen
		for i := 0; i < len(q.core.items); i++ {
			if q.gen != gen {
				panic(container.ErrConcurrentModification)
			}
			if !yield(q.core.items[i]) {
				return
			}
		}
	}
}

// Check validates every invariant the queue maintains: the intra-node
// order, the nesting of child intervals within their parents' and the
// handle/slot bindings. All violations are collected and returned as a
// single error.
func (q *Interval[T]) Check() error {
	errs := errors.M{}
	items := q.core.items
	cmp := q.core.cmp
	n := len(items)
	for j := 0; loSlot(j) < n; j++ {
		lo, hi := loSlot(j), hiSlot(j)
		if hi < n && cmp(items[lo], items[hi]) > 0 {
			errs.Append(fmt.Errorf("node %v: lo %v > hi %v", j, items[lo], items[hi]))
		}
		if j == 0 {
			continue
		}
		p := parentNode(j)
		if cmp(items[lo], items[loSlot(p)]) < 0 {
			errs.Append(fmt.Errorf("node %v: lo %v below parent lo %v", j, items[lo], items[loSlot(p)]))
		}
		if top := q.core.maxSlot(j); cmp(items[top], items[hiSlot(p)]) > 0 {
			errs.Append(fmt.Errorf("node %v: hi %v above parent hi %v", j, items[top], items[hiSlot(p)]))
		}
	}
	if got, want := len(q.table.refs), n; got != want {
		errs.Append(fmt.Errorf("handle table tracks %v slots, heap holds %v", got, want))
	}
	for s, h := range q.table.refs {
		switch {
		case h == nil:
			errs.Append(fmt.Errorf("slot %v: no handle bound", s))
		case h.owner != &q.table:
			errs.Append(fmt.Errorf("slot %v: handle owned by another queue", s))
		case h.slot != s:
			errs.Append(fmt.Errorf("slot %v: handle bound to slot %v", s, h.slot))
		}
	}
	return errs.Err()
}
