// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package container

import "errors"

var (
	// ErrEmpty is returned by operations that require at least one item
	// when the container holds none.
	ErrEmpty = errors.New("container: empty")

	// ErrInvalidHandle is returned when a handle is nil, was issued by a
	// different container instance, or no longer refers to a stored item.
	ErrInvalidHandle = errors.New("container: invalid handle")

	// ErrConcurrentModification is the panic value raised by an iterator
	// that observes a structural mutation of its container mid-iteration.
	ErrConcurrentModification = errors.New("container: concurrent modification during iteration")
)
