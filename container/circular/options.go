// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package circular

import "github.com/lundmikkel/C6/container"

type options[T any] struct {
	observer container.Observer[T]
}

// Option represents the options that can be passed to NewDeque.
type Option[T any] func(*options[T])

// WithObserver registers a single observer that is invoked after every
// committed mutation.
func WithObserver[T any](fn container.Observer[T]) Option[T] {
	return func(o *options[T]) {
		o.observer = fn
	}
}
