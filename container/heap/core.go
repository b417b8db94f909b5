// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package heap

import "github.com/lundmikkel/C6/container"

// core implements the interval heap slot array. Node j owns slots 2j (lo)
// and 2j+1 (hi). Within a node lo <= hi, and every node's [lo, hi]
// interval nests inside its parent's, so the root holds the global
// minimum in slot 0 and the global maximum in slot 1. Only the last node
// may be half filled, holding its single item in the lo slot.
//
// The core reports every slot relocation through the onSwap/onMove
// callbacks so that externally held handles stay bound to their items.
type core[T any] struct {
	cmp    container.Comparator[T]
	items  []T
	onSwap func(i, j int)
	onMove func(from, to int)
}

func loSlot(j int) int     { return 2 * j }
func hiSlot(j int) int     { return 2*j + 1 }
func nodeOf(s int) int     { return s / 2 }
func parentNode(j int) int { return (j - 1) / 2 }

// maxSlot returns the slot holding node j's largest item, which is the lo
// slot when the node is half filled.
func (c *core[T]) maxSlot(j int) int {
	if s := hiSlot(j); s < len(c.items) {
		return s
	}
	return loSlot(j)
}

func (c *core[T]) len() int { return len(c.items) }

func (c *core[T]) less(i, j int) bool {
	return c.cmp(c.items[i], c.items[j]) < 0
}

func (c *core[T]) swap(i, j int) {
	c.items[i], c.items[j] = c.items[j], c.items[i]
	if c.onSwap != nil {
		c.onSwap(i, j)
	}
}

// insert places v in the next free half slot, restores the intra-node
// order and then bubbles across node boundaries until the nesting
// invariant holds. O(log n) comparisons.
func (c *core[T]) insert(v T) {
	s := len(c.items)
	c.items = append(c.items, v)
	if s == 0 {
		return
	}
	if s%2 == 1 {
		// v completes node s/2.
		if c.less(s, s-1) {
			c.swap(s-1, s)
			c.siftUpMin(s - 1)
			return
		}
		c.siftUpMax(s)
		return
	}
	// v starts a new half-filled node and must lie within the parent's
	// interval; at most one of the two bubbles can run.
	p := parentNode(nodeOf(s))
	if c.less(s, loSlot(p)) {
		c.siftUpMin(s)
		return
	}
	if c.less(hiSlot(p), s) {
		c.siftUpMax(s)
	}
}

// siftUpMin walks the item at lo-type slot s along the ancestors' lo
// slots toward the root.
func (c *core[T]) siftUpMin(s int) {
	for j := nodeOf(s); j > 0; j = nodeOf(s) {
		p := loSlot(parentNode(j))
		if !c.less(s, p) {
			break
		}
		c.swap(s, p)
		s = p
	}
}

// siftUpMax walks the item at slot s along the ancestors' hi slots toward
// the root. s may be a half-filled node's lo slot, whose item doubles as
// the node's maximum.
func (c *core[T]) siftUpMax(s int) {
	for j := nodeOf(s); j > 0; j = nodeOf(s) {
		p := hiSlot(parentNode(j))
		if !c.less(p, s) {
			break
		}
		c.swap(s, p)
		s = p
	}
}

// siftDownMin repairs node j's lo slot toward the leaves, reporting
// whether anything moved. After each cross-node swap the displaced item is
// re-ordered within its new node, and the walk continues with whichever
// item then occupies the lo slot.
func (c *core[T]) siftDownMin(j int) bool {
	n := len(c.items)
	s := loSlot(j)
	start := s
	for {
		m := loSlot(2*j + 1)
		if m >= n {
			break
		}
		if r := loSlot(2*j + 2); r < n && c.less(r, m) {
			m = r
		}
		if !c.less(m, s) {
			break
		}
		c.swap(s, m)
		if m+1 < n && c.less(m+1, m) {
			c.swap(m, m+1)
		}
		j = nodeOf(m)
		s = m
	}
	return s != start
}

// siftDownMax is the mirror of siftDownMin for the hi slots. A half
// filled child participates with its single item.
func (c *core[T]) siftDownMax(j int) bool {
	n := len(c.items)
	s := c.maxSlot(j)
	start := s
	for {
		l := 2*j + 1
		if loSlot(l) >= n {
			break
		}
		m := c.maxSlot(l)
		if r := 2*j + 2; loSlot(r) < n {
			if rs := c.maxSlot(r); c.less(m, rs) {
				m = rs
			}
		}
		if !c.less(s, m) {
			break
		}
		c.swap(s, m)
		if m%2 == 1 && c.less(m, m-1) {
			c.swap(m-1, m)
		}
		j = nodeOf(m)
		s = m
	}
	return s != start
}

// fix restores the heap invariants around slot s after its item changed.
// A single comparison against the node partner decides whether the new
// item belongs on the min or the max side, and one more whether it sifts
// toward the root or away from it.
func (c *core[T]) fix(s int) {
	n := len(c.items)
	j := nodeOf(s)
	if s%2 == 1 {
		if c.less(s, s-1) {
			c.swap(s-1, s)
			c.siftUpMin(s - 1)
			c.siftDownMax(j)
			return
		}
		if !c.siftDownMax(j) {
			c.siftUpMax(s)
		}
		return
	}
	if s+1 < n {
		if c.less(s+1, s) {
			c.swap(s, s+1)
			c.siftUpMax(s + 1)
			c.siftDownMin(j)
			return
		}
		if !c.siftDownMin(j) {
			c.siftUpMin(s)
		}
		return
	}
	// Half-filled last node: the item is both its node's min and max and
	// only needs to lie within the parent's interval.
	if j == 0 {
		return
	}
	p := parentNode(j)
	if c.less(s, loSlot(p)) {
		c.siftUpMin(s)
	} else if c.less(hiSlot(p), s) {
		c.siftUpMax(s)
	}
}

// deleteAt removes the item at slot s, backfilling from the structurally
// last occupied slot and repairing in whichever direction the replacement
// item requires.
func (c *core[T]) deleteAt(s int) T {
	n := len(c.items) - 1
	v := c.items[s]
	if s != n {
		c.items[s] = c.items[n]
		if c.onMove != nil {
			c.onMove(n, s)
		}
	}
	var zero T
	c.items[n] = zero
	c.items = c.items[:n]
	c.maybeShrink()
	if s != n {
		c.fix(s)
	}
	return v
}

// updateAt replaces the item at slot s in place, avoiding the cost of a
// delete and reinsert, and returns the previous item.
func (c *core[T]) updateAt(s int, v T) T {
	old := c.items[s]
	c.items[s] = v
	c.fix(s)
	return old
}

const minShrinkCap = 16

// maybeShrink releases slack once occupancy drops below a quarter of the
// allocated capacity.
func (c *core[T]) maybeShrink() {
	if n, m := len(c.items), cap(c.items); m > minShrinkCap && n*4 <= m {
		c.items = append(make([]T, 0, m/2), c.items...)
	}
}

func (c *core[T]) reset() {
	clear(c.items)
	c.items = c.items[:0]
}
