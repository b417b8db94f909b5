// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package event provides multi-subscriber dispatch for container change
// notifications. The containers themselves invoke at most one observer;
// a Dispatcher fans a change out to any number of subscribers, each
// filtered by an event kind mask. Like the containers it observes, a
// Dispatcher is not safe for concurrent use.
package event

import "github.com/lundmikkel/C6/container"

// Kind is a bitmask selecting the change kinds a subscriber receives.
type Kind uint8

const (
	Added Kind = 1 << iota
	Removed
	Cleared

	// All subscribes to every change kind.
	All = Added | Removed | Cleared
)

// kinds returns the mask describing ch.
func kinds[T any](ch container.Change[T]) Kind {
	var k Kind
	if len(ch.Added) > 0 {
		k |= Added
	}
	if len(ch.Removed) > 0 {
		k |= Removed
	}
	if ch.Cleared {
		k |= Cleared
	}
	return k
}

type subscriber[T any] struct {
	id   int
	mask Kind
	fn   container.Observer[T]
}

// Dispatcher fans container changes out to subscribers. Its Notify method
// is a container.Observer and can be registered directly with a
// container's WithObserver option.
type Dispatcher[T any] struct {
	subs   []subscriber[T]
	nextID int
}

// NewDispatcher creates a new Dispatcher.
func NewDispatcher[T any]() *Dispatcher[T] {
	return &Dispatcher[T]{}
}

// Subscribe registers fn for the change kinds selected by mask and
// returns a function that cancels the subscription. Subscribers are
// notified in subscription order.
func (d *Dispatcher[T]) Subscribe(mask Kind, fn container.Observer[T]) func() {
	id := d.nextID
	d.nextID++
	d.subs = append(d.subs, subscriber[T]{id: id, mask: mask, fn: fn})
	return func() {
		for i, s := range d.subs {
			if s.id == id {
				d.subs = append(d.subs[:i], d.subs[i+1:]...)
				return
			}
		}
	}
}

// Len returns the number of active subscriptions.
func (d *Dispatcher[T]) Len() int {
	return len(d.subs)
}

// Notify delivers ch to every subscriber whose mask matches it.
func (d *Dispatcher[T]) Notify(ch container.Change[T]) {
	k := kinds(ch)
	for _, s := range d.subs {
		if s.mask&k != 0 {
			s.fn(ch)
		}
	}
}
