// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import "github.com/lundmikkel/C6/container"

// Handle is an opaque reference to a single item held by an Interval
// queue. The handle follows its item as the item moves between slots and
// is retired the moment the item is removed. Handles compare by identity,
// carry no ownership of the item, and are only meaningful to the queue
// that issued them; passing a handle to any other queue fails with
// container.ErrInvalidHandle. A retired handle stays inert until it is
// deliberately recycled via PushReuse.
type Handle struct {
	owner *handles
	slot  int
}

// retired marks a handle that is not bound to any slot.
const retired = -1

// handles maintains the bidirectional association between handles and the
// item slots of one queue. refs is parallel to the queue's item slice:
// refs[s] is the handle bound to slot s.
type handles struct {
	refs []*Handle
}

func (t *handles) alloc() *Handle {
	return &Handle{owner: t, slot: retired}
}

// bindNext binds h to the slot one past the currently highest bound slot.
// The caller appends the corresponding item immediately afterwards.
func (t *handles) bindNext(h *Handle) {
	h.slot = len(t.refs)
	t.refs = append(t.refs, h)
}

// unbind retires h. Its slot keeps the item until the heap core vacates
// it.
func (t *handles) unbind(h *Handle) {
	t.refs[h.slot] = nil
	h.slot = retired
}

// resolve returns the slot h is currently bound to.
func (t *handles) resolve(h *Handle) (int, error) {
	if h == nil || h.owner != t || h.slot == retired {
		return 0, container.ErrInvalidHandle
	}
	return h.slot, nil
}

// reusable reports whether h may be recycled by this table: it must have
// been issued here and since retired. Foreign or still-bound handles are
// rejected, never silently replaced with a fresh allocation.
func (t *handles) reusable(h *Handle) error {
	if h == nil || h.owner != t || h.slot != retired {
		return container.ErrInvalidHandle
	}
	return nil
}

// swap relocates the bindings for two slots whose items were exchanged.
func (t *handles) swap(i, j int) {
	t.refs[i], t.refs[j] = t.refs[j], t.refs[i]
	if h := t.refs[i]; h != nil {
		h.slot = i
	}
	if h := t.refs[j]; h != nil {
		h.slot = j
	}
}

// move relocates the binding for slot from to slot to; from becomes
// unbound.
func (t *handles) move(from, to int) {
	h := t.refs[from]
	t.refs[from] = nil
	t.refs[to] = h
	if h != nil {
		h.slot = to
	}
}

// truncate drops the bindings for slots at and beyond n, which must
// already be unbound.
func (t *handles) truncate(n int) {
	t.refs = t.refs[:n]
}

func (t *handles) reset() {
	for _, h := range t.refs {
		if h != nil {
			h.slot = retired
		}
	}
	t.refs = t.refs[:0]
}
