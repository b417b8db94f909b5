// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package list

import "github.com/lundmikkel/C6/container"

type options[T any] struct {
	capacity int
	observer container.Observer[T]
}

// Option represents the options that can be passed to NewArray and
// NewLinked.
type Option[T any] func(*options[T])

// WithCapacity sets the initial capacity of an array backed list. A
// negative capacity is a programming error and panics. Linked lists
// ignore it.
func WithCapacity[T any](n int) Option[T] {
	if n < 0 {
		panic("list: negative capacity")
	}
	return func(o *options[T]) {
		o.capacity = n
	}
}

// WithObserver registers a single observer that is invoked after every
// committed mutation.
func WithObserver[T any](fn container.Observer[T]) Option[T] {
	return func(o *options[T]) {
		o.observer = fn
	}
}
