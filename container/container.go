// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package container defines the interfaces and supporting types shared by
// the concrete containers in this module.
package container

import "iter"

// Container is the minimal interface implemented by every container.
type Container[T any] interface {
	Len() int
	Values() iter.Seq[T]
}

// Extensible is a container that accepts new items at an unspecified
// position.
type Extensible[T any] interface {
	Container[T]
	Append(v T)
}

// Sequenced is a container whose items have a stable traversal order in
// both directions.
type Sequenced[T any] interface {
	Container[T]
	Forward() iter.Seq[T]
	Reverse() iter.Seq[T]
	First() (T, error)
	Last() (T, error)
}

// Indexed is a sequenced container with random access by position.
// Implementations treat out of range indices as programming errors and
// panic.
type Indexed[T any] interface {
	Sequenced[T]
	At(i int) T
	Set(i int, v T) T
	InsertAt(i int, v T)
	RemoveAt(i int) T
}

// Queue is a first-in first-out container.
type Queue[T any] interface {
	Container[T]
	PushBack(v T)
	PopFront() (T, error)
	Front() (T, error)
}

// Deque is a queue that supports insertion and removal at both ends.
type Deque[T any] interface {
	Queue[T]
	PushFront(v T)
	PopBack() (T, error)
	Back() (T, error)
}
