// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import "github.com/lundmikkel/C6/container"

type options[T any] struct {
	capacity int
	items    []T
	observer container.Observer[T]
}

// Option represents the options that can be passed to New.
type Option[T any] func(*options[T])

// WithCapacity sets the initial slot capacity. A negative capacity is a
// programming error and panics.
func WithCapacity[T any](n int) Option[T] {
	if n < 0 {
		panic("heap: negative capacity")
	}
	return func(o *options[T]) {
		o.capacity = n
	}
}

// WithItems seeds the queue with the supplied items. Seeding does not
// notify the observer.
func WithItems[T any](items ...T) Option[T] {
	return func(o *options[T]) {
		o.items = items
	}
}

// WithObserver registers a single observer that is invoked after every
// committed mutation. Fan-out to multiple subscribers is provided by the
// event package.
func WithObserver[T any](fn container.Observer[T]) Option[T] {
	return func(o *options[T]) {
		o.observer = fn
	}
}
